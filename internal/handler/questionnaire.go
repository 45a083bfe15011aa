package handler

import (
	"tam-survey/internal/dto"
	"tam-survey/internal/logger"
	"tam-survey/internal/service"
	"tam-survey/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuestionnaireHandler handles questionnaire authoring and listing requests
type QuestionnaireHandler struct {
	service   service.QuestionnaireService
	validator *validation.Validator
}

// NewQuestionnaireHandler creates a new QuestionnaireHandler instance
func NewQuestionnaireHandler(service service.QuestionnaireService, validator *validation.Validator) *QuestionnaireHandler {
	return &QuestionnaireHandler{service: service, validator: validator}
}

// Create godoc
// @Summary Create a questionnaire
// @Description Builds a TAM questionnaire from the construct templates, the chosen secondary constructs and custom questions
// @Tags questionnaires
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateQuestionnaireRequest true "Questionnaire definition"
// @Success 201 {object} dto.QuestionnaireDetailResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Router /questionnaires [post]
func (h *QuestionnaireHandler) Create(c *fiber.Ctx) error {
	adminID, err := currentUserID(c)
	if err != nil {
		return err
	}
	var req dto.CreateQuestionnaireRequest
	if err := bindAndValidate(c, h.validator, &req); err != nil {
		return err
	}

	detail, err := h.service.Create(c.Context(), adminID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(detail)
}

// List godoc
// @Summary List all questionnaires
// @Tags questionnaires
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} dto.QuestionnaireResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Router /questionnaires [get]
func (h *QuestionnaireHandler) List(c *fiber.Ctx) error {
	list, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// ListAvailable godoc
// @Summary List questionnaires the caller has not answered yet
// @Tags questionnaires
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} dto.QuestionnaireResponse
// @Router /questionnaires/available [get]
func (h *QuestionnaireHandler) ListAvailable(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	list, err := h.service.ListAvailable(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// Get godoc
// @Summary Get a questionnaire with its questions and answer scale
// @Tags questionnaires
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Questionnaire ID"
// @Success 200 {object} dto.QuestionnaireDetailResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /questionnaires/{id} [get]
func (h *QuestionnaireHandler) Get(c *fiber.Ctx) error {
	detail, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(detail)
}

// Delete godoc
// @Summary Delete a questionnaire and all of its responses
// @Tags questionnaires
// @Security ApiKeyAuth
// @Param id path string true "Questionnaire ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /questionnaires/{id} [delete]
func (h *QuestionnaireHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	logger.Get().Info("Questionnaire deleted", zap.String("questionnaireID", id))
	return c.SendStatus(fiber.StatusNoContent)
}
