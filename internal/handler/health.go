package handler

import (
	"context"
	"time"

	"tam-survey/internal/dto"
	"tam-survey/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Pinger is satisfied by *sqlx.DB. Wrap domain.Cache.Ping in PingFunc.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PingFunc adapts a plain ping function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) PingContext(ctx context.Context) error { return f(ctx) }

type HealthHandler struct {
	db      Pinger
	cache   Pinger
	timeout time.Duration
}

// NewHealthHandler builds the health check. cache may be nil when the
// service runs without redis.
func NewHealthHandler(db Pinger, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, timeout: 2 * time.Second}
}

// Check godoc
// @Summary Health check
// @Description Reports database and cache reachability
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	resp := dto.HealthResponse{Status: "ok", Checks: map[string]string{}}
	if err := h.db.PingContext(ctx); err != nil {
		logger.Get().Error("Database health check failed", zap.Error(err))
		resp.Status = "unavailable"
		resp.Checks["database"] = "down"
	} else {
		resp.Checks["database"] = "up"
	}

	// The cache is optional, so a failing redis degrades instead of failing.
	switch {
	case h.cache == nil:
		resp.Checks["cache"] = "disabled"
	case h.cache.PingContext(ctx) != nil:
		resp.Checks["cache"] = "down"
		if resp.Status == "ok" {
			resp.Status = "degraded"
		}
	default:
		resp.Checks["cache"] = "up"
	}

	if resp.Status == "unavailable" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return c.JSON(resp)
}
