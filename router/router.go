package router

import (
	"net/http"

	"github.com/NomadCrew/feedback-api/config"
	_ "github.com/NomadCrew/feedback-api/docs" // registers swagger docs
	"github.com/NomadCrew/feedback-api/handlers"
	"github.com/NomadCrew/feedback-api/middleware"
	"github.com/NomadCrew/feedback-api/types"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Dependencies struct holds all dependencies required for setting up routes.
type Dependencies struct {
	Config          *config.Config
	FeedbackHandler *handlers.FeedbackHandler
	HealthHandler   *handlers.HealthHandler
	// RedisClient backs the rate limiter. Nil disables rate limiting.
	RedisClient *redis.Client
	// Registry receives the HTTP metrics and is served on /metrics.
	// Nil uses the default Prometheus registry.
	Registry *prometheus.Registry
	Logger   *zap.SugaredLogger
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()

	var registerer prometheus.Registerer = prometheus.DefaultRegisterer
	var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}
	metrics := middleware.NewHTTPMetrics(registerer)

	// Global Middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.MetricsMiddleware(metrics))
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config))
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))
	r.Use(middleware.ErrorHandler())

	// Health and Metrics Routes
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.Use(middleware.RequestTimeout(deps.Config.RequestTimeout()))
	rateLimited := deps.RedisClient != nil && deps.Config.RateLimit.Enabled
	if rateLimited {
		api.Use(middleware.RateLimiter(deps.RedisClient, deps.Config.RateLimit))
	}
	{
		api.GET("/healthchecker", deps.HealthHandler.HealthChecker)

		feedbackRoutes := api.Group("/feedbacks")
		{
			feedbackRoutes.GET("", deps.FeedbackHandler.ListFeedbacks)
			feedbackRoutes.POST("", deps.FeedbackHandler.CreateFeedback)
			feedbackRoutes.POST("/", deps.FeedbackHandler.CreateFeedback)
			feedbackRoutes.GET("/:id", deps.FeedbackHandler.GetFeedback)
			feedbackRoutes.PATCH("/:id", deps.FeedbackHandler.UpdateFeedback)
			feedbackRoutes.DELETE("/:id", deps.FeedbackHandler.DeleteFeedback)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{Status: types.StatusFail, Message: "Route not found"})
	})

	if deps.Logger != nil {
		deps.Logger.Infow("Router configured",
			"routes", len(r.Routes()),
			"rate_limited", rateLimited,
			"request_timeout", deps.Config.RequestTimeout())
	}

	return r
}
