package middleware

import (
	"errors"
	"time"

	"tam-survey/internal/domain"
	"tam-survey/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger logs one line per request with its outcome and duration.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// The error handler has not run yet; report what it will send.
			status = statusForError(err)
		}
		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
		}
		if userID, ok := c.Locals(UserIDKey).(string); ok {
			fields = append(fields, zap.String("userID", userID))
		}
		logger.Get().Info("request", fields...)
		return err
	}
}

func statusForError(err error) int {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return mapDomainErrorToHTTPStatus(domainErr)
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}
