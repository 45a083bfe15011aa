package handler

import (
	"tam-survey/internal/dto"
	"tam-survey/internal/service"
	"tam-survey/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ResponseHandler handles the respondent's answer sheets
type ResponseHandler struct {
	service   service.ResponseService
	validator *validation.Validator
}

func NewResponseHandler(service service.ResponseService, validator *validation.Validator) *ResponseHandler {
	return &ResponseHandler{service: service, validator: validator}
}

// Save godoc
// @Summary Save a draft or submit answers
// @Description Answers are stored on the caller's draft. With submit=true all questions must be answered and the response becomes final.
// @Tags responses
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Questionnaire ID"
// @Param request body dto.SaveResponseRequest true "Answers"
// @Success 200 {object} dto.ResponseDetail
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse "Already submitted"
// @Router /questionnaires/{id}/response [put]
func (h *ResponseHandler) Save(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	var req dto.SaveResponseRequest
	if err := bindAndValidate(c, h.validator, &req); err != nil {
		return err
	}
	detail, err := h.service.Save(c.Context(), userID, c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(detail)
}

// ListMine godoc
// @Summary List the caller's responses
// @Tags responses
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} dto.ResponseSummary
// @Router /responses [get]
func (h *ResponseHandler) ListMine(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	list, err := h.service.ListMine(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// Get godoc
// @Summary Get one of the caller's responses
// @Tags responses
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Response ID"
// @Success 200 {object} dto.ResponseDetail
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /responses/{id} [get]
func (h *ResponseHandler) Get(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	detail, err := h.service.Get(c.Context(), userID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(detail)
}
