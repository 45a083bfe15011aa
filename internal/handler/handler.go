package handler

import (
	"tam-survey/internal/domain"
	"tam-survey/internal/middleware"
	"tam-survey/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// currentUserID returns the caller set by middleware.Protected.
func currentUserID(c *fiber.Ctx) (string, error) {
	userID, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return "", domain.NewUnauthorizedError("user id not found in context")
	}
	return userID, nil
}

// bindAndValidate parses the JSON body into req and checks its validate tags.
func bindAndValidate(c *fiber.Ctx, v *validation.Validator, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return domain.NewValidationError("invalid request body")
	}
	return v.ValidateStruct(req)
}
