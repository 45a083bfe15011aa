package main

import (
	"tam-survey/internal/handler"
	"tam-survey/internal/middleware"
	"tam-survey/internal/service"

	"github.com/gofiber/fiber/v2"
)

type handlers struct {
	questionnaire *handler.QuestionnaireHandler
	response      *handler.ResponseHandler
	results       *handler.ResultsHandler
	profile       *handler.ProfileHandler
	health        *handler.HealthHandler
}

// registerRoutes mounts the API. Every /api route requires a bearer token;
// authoring and results are admin only.
func registerRoutes(app *fiber.App, h handlers, authService service.AuthService, vm *middleware.ValidationMiddleware) {
	app.Get("/health", h.health.Check)

	api := app.Group("/api", middleware.Protected(authService))
	adminOnly := middleware.RequireRole(service.RoleAdmin)
	validID := vm.ValidateIDParam("id")

	questionnaires := api.Group("/questionnaires")
	questionnaires.Post("/", adminOnly, h.questionnaire.Create)
	questionnaires.Get("/", adminOnly, h.questionnaire.List)
	// Registered before /:id so "available" is not taken for an id.
	questionnaires.Get("/available", h.questionnaire.ListAvailable)
	questionnaires.Get("/:id", validID, h.questionnaire.Get)
	questionnaires.Delete("/:id", adminOnly, validID, h.questionnaire.Delete)
	questionnaires.Put("/:id/response", validID, h.response.Save)
	questionnaires.Get("/:id/results", adminOnly, validID, h.results.Results)
	questionnaires.Get("/:id/results/charts", adminOnly, validID, h.results.Charts)

	responses := api.Group("/responses")
	responses.Get("/", h.response.ListMine)
	responses.Get("/:id", validID, h.response.Get)

	api.Get("/profile", h.profile.GetMine)
	api.Put("/profile", h.profile.PutMine)
}
