package middleware

import (
	"tam-survey/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(v *validation.Validator) *ValidationMiddleware {
	return &ValidationMiddleware{validator: v}
}

// ValidateIDParam rejects requests whose path parameter is not a ULID.
func (vm *ValidationMiddleware) ValidateIDParam(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := vm.validator.ValidateID(param, c.Params(param)); err != nil {
			return err // rendered by ErrorHandler
		}
		return c.Next()
	}
}
