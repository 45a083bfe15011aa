package handler

import (
	"tam-survey/internal/dto"
	"tam-survey/internal/service"
	"tam-survey/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	service   service.ProfileService
	validator *validation.Validator
}

func NewProfileHandler(service service.ProfileService, validator *validation.Validator) *ProfileHandler {
	return &ProfileHandler{service: service, validator: validator}
}

// GetMine retrieves the profile of the authenticated user.
// @Summary Get My Profile
// @Tags profile
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 404 {object} middleware.ErrorResponse "Profile not created yet"
// @Router /profile [get]
func (h *ProfileHandler) GetMine(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	profile, err := h.service.Get(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// PutMine creates or replaces the profile of the authenticated user.
// @Summary Save My Profile
// @Tags profile
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.ProfileRequest true "Profile"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /profile [put]
func (h *ProfileHandler) PutMine(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	var req dto.ProfileRequest
	if err := bindAndValidate(c, h.validator, &req); err != nil {
		return err
	}
	profile, err := h.service.Upsert(c.Context(), userID, &req)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}
