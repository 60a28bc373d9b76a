package services

import (
	"context"
	"time"

	"github.com/NomadCrew/feedback-api/logger"
	"github.com/NomadCrew/feedback-api/types"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	dbPingAttempts   = 3
	dbPingRetryDelay = 100 * time.Millisecond
)

// Pinger is anything that can report database reachability. The feedback
// store satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthService struct {
	db          Pinger
	redisClient *redis.Client
	version     string
	log         *zap.SugaredLogger
	startTime   time.Time
	retryDelay  time.Duration
}

// NewHealthService creates a HealthService. redisClient may be nil when the
// rate limiter is disabled; the redis component is then omitted.
func NewHealthService(db Pinger, redisClient *redis.Client, version string) *HealthService {
	return &HealthService{
		db:          db,
		redisClient: redisClient,
		version:     version,
		log:         logger.GetLogger(),
		startTime:   time.Now(),
		retryDelay:  dbPingRetryDelay,
	}
}

func (h *HealthService) CheckHealth(ctx context.Context) types.HealthCheck {
	components := make(map[string]types.HealthComponent)
	overallStatus := types.HealthStatusUp

	dbStatus := h.checkDatabase(ctx)
	components["database"] = dbStatus
	overallStatus = overallStatus.Worse(dbStatus.Status)

	if h.redisClient != nil {
		redisStatus := h.checkRedis(ctx)
		components["redis"] = redisStatus
		overallStatus = overallStatus.Worse(redisStatus.Status)
	}

	return types.HealthCheck{
		Status:     overallStatus,
		Components: components,
		Version:    h.version,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Uptime:     time.Since(h.startTime).Round(time.Second).String(),
	}
}

func (h *HealthService) checkDatabase(ctx context.Context) types.HealthComponent {
	var err error
	for attempt := 1; attempt <= dbPingAttempts; attempt++ {
		if err = h.db.Ping(ctx); err == nil {
			return types.HealthComponent{Status: types.HealthStatusUp}
		}
		h.log.Warnw("Database ping failed", "attempt", attempt, "error", err)

		if attempt == dbPingAttempts {
			break
		}
		select {
		case <-ctx.Done():
			h.log.Errorw("Database health check cancelled", "error", ctx.Err())
			return types.HealthComponent{
				Status:  types.HealthStatusDown,
				Details: "Database health check cancelled",
			}
		case <-time.After(h.retryDelay):
		}
	}

	h.log.Errorw("Database health check failed", "error", err)
	return types.HealthComponent{
		Status:  types.HealthStatusDown,
		Details: "Database connection failed after multiple attempts",
	}
}

func (h *HealthService) checkRedis(ctx context.Context) types.HealthComponent {
	if err := h.redisClient.Ping(ctx).Err(); err != nil {
		h.log.Errorw("Redis health check failed", "error", err)
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: "Redis connection failed",
		}
	}

	return types.HealthComponent{
		Status: types.HealthStatusUp,
	}
}
