package service

import (
	"context"

	"tam-survey/internal/domain"
	"tam-survey/internal/dto"

	"github.com/stretchr/testify/mock"
)

// --- MockQuestionnaireRepository ---
type MockQuestionnaireRepository struct {
	mock.Mock
}

func (m *MockQuestionnaireRepository) Create(ctx context.Context, q *domain.Questionnaire) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *MockQuestionnaireRepository) CreateQuestions(ctx context.Context, questions []domain.Question) error {
	args := m.Called(ctx, questions)
	return args.Error(0)
}

func (m *MockQuestionnaireRepository) GetByID(ctx context.Context, id string) (*domain.Questionnaire, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Questionnaire), args.Error(1)
}

func (m *MockQuestionnaireRepository) List(ctx context.Context) ([]domain.Questionnaire, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Questionnaire), args.Error(1)
}

func (m *MockQuestionnaireRepository) ListAvailableForUser(ctx context.Context, userID string) ([]domain.Questionnaire, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Questionnaire), args.Error(1)
}

func (m *MockQuestionnaireRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuestionnaireRepository) GetQuestions(ctx context.Context, questionnaireID string) ([]domain.Question, error) {
	args := m.Called(ctx, questionnaireID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Question), args.Error(1)
}

func (m *MockQuestionnaireRepository) CreateLikertScale(ctx context.Context, scale *domain.LikertScale) error {
	args := m.Called(ctx, scale)
	return args.Error(0)
}

func (m *MockQuestionnaireRepository) GetLikertScale(ctx context.Context, questionnaireID string) (*domain.LikertScale, error) {
	args := m.Called(ctx, questionnaireID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LikertScale), args.Error(1)
}

// --- MockResponseRepository ---
type MockResponseRepository struct {
	mock.Mock
}

func (m *MockResponseRepository) Create(ctx context.Context, r *domain.Response) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockResponseRepository) GetByID(ctx context.Context, id string) (*domain.Response, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Response), args.Error(1)
}

func (m *MockResponseRepository) FindDraft(ctx context.Context, userID, questionnaireID string) (*domain.Response, error) {
	args := m.Called(ctx, userID, questionnaireID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Response), args.Error(1)
}

func (m *MockResponseRepository) HasSubmitted(ctx context.Context, userID, questionnaireID string) (bool, error) {
	args := m.Called(ctx, userID, questionnaireID)
	return args.Bool(0), args.Error(1)
}

func (m *MockResponseRepository) MarkSubmitted(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockResponseRepository) ListByUser(ctx context.Context, userID string) ([]domain.Response, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Response), args.Error(1)
}

func (m *MockResponseRepository) CountSubmitted(ctx context.Context, questionnaireID string) (int, error) {
	args := m.Called(ctx, questionnaireID)
	return args.Int(0), args.Error(1)
}

// --- MockAnswerRepository ---
type MockAnswerRepository struct {
	mock.Mock
}

func (m *MockAnswerRepository) UpsertAnswers(ctx context.Context, answers []domain.Answer) error {
	args := m.Called(ctx, answers)
	return args.Error(0)
}

func (m *MockAnswerRepository) ListByResponse(ctx context.Context, responseID string) ([]domain.AnswerDetail, error) {
	args := m.Called(ctx, responseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AnswerDetail), args.Error(1)
}

func (m *MockAnswerRepository) ListSubmittedByQuestionnaire(ctx context.Context, questionnaireID string) ([]domain.AnswerDetail, error) {
	args := m.Called(ctx, questionnaireID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AnswerDetail), args.Error(1)
}

func (m *MockAnswerRepository) CategoryMeans(ctx context.Context, questionnaireID string) ([]domain.CategoryMean, error) {
	args := m.Called(ctx, questionnaireID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryMean), args.Error(1)
}

// --- MockProfileRepository ---
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) Upsert(ctx context.Context, p *domain.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// --- MockTransactionManager runs fn inline ---
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Called(ctx)
	return fn(ctx)
}

// --- MockResultsCacheService ---
type MockResultsCacheService struct {
	mock.Mock
}

func (m *MockResultsCacheService) Put(ctx context.Context, questionnaireID string, results *dto.ResultsResponse) error {
	args := m.Called(ctx, questionnaireID, results)
	return args.Error(0)
}

func (m *MockResultsCacheService) Get(ctx context.Context, questionnaireID string) (*dto.ResultsResponse, error) {
	args := m.Called(ctx, questionnaireID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ResultsResponse), args.Error(1)
}

func (m *MockResultsCacheService) Invalidate(ctx context.Context, questionnaireID string) error {
	args := m.Called(ctx, questionnaireID)
	return args.Error(0)
}
