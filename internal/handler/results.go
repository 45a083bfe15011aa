package handler

import (
	"tam-survey/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ResultsHandler serves the analysis of submitted responses
type ResultsHandler struct {
	service service.ResultsService
}

func NewResultsHandler(service service.ResultsService) *ResultsHandler {
	return &ResultsHandler{service: service}
}

// Results godoc
// @Summary Questionnaire results
// @Description Category scores, composite score, answer distributions and the correlation report
// @Tags results
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Questionnaire ID"
// @Success 200 {object} dto.ResultsResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /questionnaires/{id}/results [get]
func (h *ResultsHandler) Results(c *fiber.Ctx) error {
	results, err := h.service.Results(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(results)
}

// Charts godoc
// @Summary Chart options for the results page
// @Tags results
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Questionnaire ID"
// @Success 200 {object} dto.ChartsResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /questionnaires/{id}/results/charts [get]
func (h *ResultsHandler) Charts(c *fiber.Ctx) error {
	charts, err := h.service.Charts(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(charts)
}
