package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tam-survey/internal/config"
	"tam-survey/internal/domain"
	"tam-survey/internal/dto"
	"tam-survey/internal/handler"
	"tam-survey/internal/middleware"
	"tam-survey/internal/service"
	"tam-survey/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProfileService struct{}

func (stubProfileService) Get(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	return &dto.ProfileResponse{ID: userID}, nil
}

func (stubProfileService) Upsert(ctx context.Context, userID string, req *dto.ProfileRequest) (*dto.ProfileResponse, error) {
	return nil, domain.NewInternalError("not used", nil)
}

// newRouterUnderTest wires the real middleware chain. Only the profile and
// health handlers are backed; other requests must be stopped before reaching
// a handler.
func newRouterUnderTest(t *testing.T) (*fiber.App, service.AuthService) {
	t.Helper()
	authService, err := service.NewAuthService(config.AuthConfig{JWTSecret: "routes-test-secret"})
	require.NoError(t, err)

	v := validation.NewValidator()
	up := handler.PingFunc(func(ctx context.Context) error { return nil })
	h := handlers{
		questionnaire: handler.NewQuestionnaireHandler(nil, v),
		response:      handler.NewResponseHandler(nil, v),
		results:       handler.NewResultsHandler(nil),
		profile:       handler.NewProfileHandler(stubProfileService{}, v),
		health:        handler.NewHealthHandler(up, nil),
	}
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	registerRoutes(app, h, authService, middleware.NewValidationMiddleware(v))
	return app, authService
}

func TestRoutes_AccessControl(t *testing.T) {
	app, authService := newRouterUnderTest(t)
	respondent, err := authService.CreateJWT("user-1", service.RoleRespondent, time.Minute)
	require.NoError(t, err)
	admin, err := authService.CreateJWT("admin-1", service.RoleAdmin, time.Minute)
	require.NoError(t, err)

	const validID = "01HZX5Y8J6T4Q2N7K9M3P5R8S2"
	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"health is public", http.MethodGet, "/health", "", fiber.StatusOK},
		{"api needs a token", http.MethodGet, "/api/profile", "", fiber.StatusUnauthorized},
		{"garbage token", http.MethodGet, "/api/profile", "garbage", fiber.StatusUnauthorized},
		{"respondent reads profile", http.MethodGet, "/api/profile", respondent, fiber.StatusOK},
		{"respondent cannot create", http.MethodPost, "/api/questionnaires", respondent, fiber.StatusForbidden},
		{"respondent cannot list all", http.MethodGet, "/api/questionnaires", respondent, fiber.StatusForbidden},
		{"respondent cannot delete", http.MethodDelete, "/api/questionnaires/" + validID, respondent, fiber.StatusForbidden},
		{"respondent cannot read results", http.MethodGet, "/api/questionnaires/" + validID + "/results", respondent, fiber.StatusForbidden},
		{"respondent cannot read charts", http.MethodGet, "/api/questionnaires/" + validID + "/results/charts", respondent, fiber.StatusForbidden},
		{"malformed questionnaire id", http.MethodGet, "/api/questionnaires/not-an-id", respondent, fiber.StatusBadRequest},
		{"malformed id on results", http.MethodGet, "/api/questionnaires/xyz/results", admin, fiber.StatusBadRequest},
		{"malformed response id", http.MethodGet, "/api/responses/xyz", respondent, fiber.StatusBadRequest},
		{"malformed id on save", http.MethodPut, "/api/questionnaires/xyz/response", respondent, fiber.StatusBadRequest},
		{"unknown route", http.MethodGet, "/api/nothing-here", admin, fiber.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set(middleware.AuthorizationHeader, middleware.BearerSchema+tt.token)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
