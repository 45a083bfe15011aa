package middleware

import (
	"strings"

	"tam-survey/internal/logger"
	"tam-survey/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	UserIDKey           = "userID" // Key for storing UserID in fiber.Ctx locals
	RoleKey             = "role"   // Key for storing the caller's role in fiber.Ctx locals
)

// Protected requires a valid bearer JWT and stores the caller's id and role in the context.
func Protected(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(AuthorizationHeader)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "MISSING_AUTH_HEADER",
				Message: "Authorization header is missing",
				Status:  fiber.StatusUnauthorized,
			})
		}

		if !strings.HasPrefix(authHeader, BearerSchema) {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "INVALID_AUTH_SCHEME",
				Message: "Authorization scheme is not Bearer",
				Status:  fiber.StatusUnauthorized,
			})
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerSchema))
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "EMPTY_TOKEN",
				Message: "Token is empty",
				Status:  fiber.StatusUnauthorized,
			})
		}

		claims, err := authService.ValidateJWT(c.Context(), tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "INVALID_TOKEN",
				Message: err.Error(),
				Status:  fiber.StatusUnauthorized,
			})
		}

		c.Locals(UserIDKey, claims.UserID)
		c.Locals(RoleKey, claims.Role)
		return c.Next()
	}
}

// RequireRole rejects callers whose token does not carry role. Must run after Protected.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if got, _ := c.Locals(RoleKey).(string); got != role {
			logger.Get().Debug("Role check failed",
				zap.String("required", role),
				zap.String("got", got),
				zap.String("path", c.Path()))
			return c.Status(fiber.StatusForbidden).JSON(ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "This action requires the " + role + " role",
				Status:  fiber.StatusForbidden,
			})
		}
		return c.Next()
	}
}
