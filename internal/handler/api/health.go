package api

import (
	"context"
	"net/http"
	"time"

	"room-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const healthTimeout = 2 * time.Second

type HealthHandler struct {
	uow shared.UnitOfWork
	rdb *redis.Client
}

// NewHealthHandler accepts a nil Redis client when caching is disabled.
func NewHealthHandler(uow shared.UnitOfWork, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{uow: uow, rdb: rdb}
}

// @Summary Health check
// @Description Check the store and, when configured, Redis
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 503 {object} map[string]any
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	checks := gin.H{"store": "ok"}
	status := http.StatusOK

	if err := h.uow.Ping(ctx); err != nil {
		checks["store"] = err.Error()
		status = http.StatusServiceUnavailable
	}
	if h.rdb != nil {
		checks["redis"] = "ok"
		if err := h.rdb.Ping(ctx).Err(); err != nil {
			checks["redis"] = err.Error()
			status = http.StatusServiceUnavailable
		}
	}

	overall := "ok"
	if status != http.StatusOK {
		overall = "degraded"
	}
	c.JSON(status, gin.H{"status": overall, "checks": checks})
}
