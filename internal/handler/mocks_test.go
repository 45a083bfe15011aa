package handler_test

import (
	"context"
	"errors"

	"tam-survey/internal/dto"
)

var errNotMocked = errors.New("func not set on mock")

// ManualMockQuestionnaireService implements service.QuestionnaireService
type ManualMockQuestionnaireService struct {
	CreateFunc        func(ctx context.Context, adminID string, req *dto.CreateQuestionnaireRequest) (*dto.QuestionnaireDetailResponse, error)
	GetFunc           func(ctx context.Context, id string) (*dto.QuestionnaireDetailResponse, error)
	ListFunc          func(ctx context.Context) ([]dto.QuestionnaireResponse, error)
	ListAvailableFunc func(ctx context.Context, userID string) ([]dto.QuestionnaireResponse, error)
	DeleteFunc        func(ctx context.Context, id string) error
}

func (m *ManualMockQuestionnaireService) Create(ctx context.Context, adminID string, req *dto.CreateQuestionnaireRequest) (*dto.QuestionnaireDetailResponse, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, adminID, req)
	}
	return nil, errNotMocked
}

func (m *ManualMockQuestionnaireService) Get(ctx context.Context, id string) (*dto.QuestionnaireDetailResponse, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, errNotMocked
}

func (m *ManualMockQuestionnaireService) List(ctx context.Context) ([]dto.QuestionnaireResponse, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, errNotMocked
}

func (m *ManualMockQuestionnaireService) ListAvailable(ctx context.Context, userID string) ([]dto.QuestionnaireResponse, error) {
	if m.ListAvailableFunc != nil {
		return m.ListAvailableFunc(ctx, userID)
	}
	return nil, errNotMocked
}

func (m *ManualMockQuestionnaireService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errNotMocked
}

// ManualMockResponseService implements service.ResponseService
type ManualMockResponseService struct {
	SaveFunc     func(ctx context.Context, userID, questionnaireID string, req *dto.SaveResponseRequest) (*dto.ResponseDetail, error)
	GetFunc      func(ctx context.Context, userID, responseID string) (*dto.ResponseDetail, error)
	ListMineFunc func(ctx context.Context, userID string) ([]dto.ResponseSummary, error)
}

func (m *ManualMockResponseService) Save(ctx context.Context, userID, questionnaireID string, req *dto.SaveResponseRequest) (*dto.ResponseDetail, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, userID, questionnaireID, req)
	}
	return nil, errNotMocked
}

func (m *ManualMockResponseService) Get(ctx context.Context, userID, responseID string) (*dto.ResponseDetail, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID, responseID)
	}
	return nil, errNotMocked
}

func (m *ManualMockResponseService) ListMine(ctx context.Context, userID string) ([]dto.ResponseSummary, error) {
	if m.ListMineFunc != nil {
		return m.ListMineFunc(ctx, userID)
	}
	return nil, errNotMocked
}

// ManualMockResultsService implements service.ResultsService
type ManualMockResultsService struct {
	ResultsFunc func(ctx context.Context, questionnaireID string) (*dto.ResultsResponse, error)
	ChartsFunc  func(ctx context.Context, questionnaireID string) (*dto.ChartsResponse, error)
}

func (m *ManualMockResultsService) Results(ctx context.Context, questionnaireID string) (*dto.ResultsResponse, error) {
	if m.ResultsFunc != nil {
		return m.ResultsFunc(ctx, questionnaireID)
	}
	return nil, errNotMocked
}

func (m *ManualMockResultsService) Charts(ctx context.Context, questionnaireID string) (*dto.ChartsResponse, error) {
	if m.ChartsFunc != nil {
		return m.ChartsFunc(ctx, questionnaireID)
	}
	return nil, errNotMocked
}

// ManualMockProfileService implements service.ProfileService
type ManualMockProfileService struct {
	GetFunc    func(ctx context.Context, userID string) (*dto.ProfileResponse, error)
	UpsertFunc func(ctx context.Context, userID string, req *dto.ProfileRequest) (*dto.ProfileResponse, error)
}

func (m *ManualMockProfileService) Get(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID)
	}
	return nil, errNotMocked
}

func (m *ManualMockProfileService) Upsert(ctx context.Context, userID string, req *dto.ProfileRequest) (*dto.ProfileResponse, error) {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, userID, req)
	}
	return nil, errNotMocked
}
