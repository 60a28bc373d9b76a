package handlers

import (
	"net/http"

	"github.com/NomadCrew/feedback-api/types"
	"github.com/gin-gonic/gin"
)

const healthCheckerMessage = "Feedback CRUD API with Go, pgx, Postgres, and Gin"

type HealthHandler struct {
	healthService HealthServiceInterface
}

func NewHealthHandler(healthService HealthServiceInterface) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
	}
}

// HealthChecker godoc
// @Summary      Service banner
// @Tags         health
// @Produce      json
// @Success      200  {object}  types.MessageResponse
// @Router       /healthchecker [get]
func (h *HealthHandler) HealthChecker(c *gin.Context) {
	c.JSON(http.StatusOK, types.MessageResponse{
		Status:  types.StatusSuccess,
		Message: healthCheckerMessage,
	})
}

// LivenessCheck handles kubernetes liveness probe
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.Status(http.StatusOK)
}

// ReadinessCheck handles kubernetes readiness probe
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	health := h.healthService.CheckHealth(c.Request.Context())

	if health.Status == types.HealthStatusDown {
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}

	c.JSON(http.StatusOK, health)
}
