package service

import (
	"context"
	"errors"
	"time"

	"tam-survey/internal/domain"
	"tam-survey/internal/dto"
	"tam-survey/internal/logger"
	"tam-survey/internal/util"

	"go.uber.org/zap"
)

// QuestionnaireService defines questionnaire authoring and listing operations
type QuestionnaireService interface {
	Create(ctx context.Context, adminID string, req *dto.CreateQuestionnaireRequest) (*dto.QuestionnaireDetailResponse, error)
	Get(ctx context.Context, id string) (*dto.QuestionnaireDetailResponse, error)
	List(ctx context.Context) ([]dto.QuestionnaireResponse, error)
	// ListAvailable returns the questionnaires the user has not submitted yet.
	ListAvailable(ctx context.Context, userID string) ([]dto.QuestionnaireResponse, error)
	Delete(ctx context.Context, id string) error
}

type questionnaireService struct {
	repo         domain.QuestionnaireRepository
	profiles     domain.ProfileRepository
	tm           domain.TransactionManager
	resultsCache ResultsCacheService
	newID        func() string
	now          func() time.Time
}

// NewQuestionnaireService creates a new instance of questionnaireService
func NewQuestionnaireService(
	repo domain.QuestionnaireRepository,
	profiles domain.ProfileRepository,
	tm domain.TransactionManager,
	resultsCache ResultsCacheService,
) QuestionnaireService {
	return &questionnaireService{
		repo:         repo,
		profiles:     profiles,
		tm:           tm,
		resultsCache: resultsCache,
		newID:        util.NewULID,
		now:          time.Now,
	}
}

// repoError passes domain errors through and wraps anything else as internal.
func repoError(msg string, err error) error {
	var derr *domain.DomainError
	if errors.As(err, &derr) {
		return err
	}
	return domain.NewInternalError(msg, err)
}

// Create validates the whole request before anything is written, then
// persists the questionnaire, its questions and its scale in one transaction.
func (s *questionnaireService) Create(ctx context.Context, adminID string, req *dto.CreateQuestionnaireRequest) (*dto.QuestionnaireDetailResponse, error) {
	profile, err := s.profiles.GetByID(ctx, adminID)
	if err != nil {
		return nil, repoError("failed to load creator profile", err)
	}
	if profile == nil {
		return nil, domain.NewValidationError("create your profile before authoring questionnaires").
			WithContext("created_by", adminID)
	}

	b := domain.NewQuestionnaireBuilder(req.AppName, req.Details, adminID)
	if err := b.WithSecondary(req.SecondaryCategories...); err != nil {
		return nil, err
	}
	if err := b.WithLikertLabels(req.LikertLabels); err != nil {
		return nil, err
	}
	for _, cq := range req.CustomQuestions {
		if err := b.AddCustomQuestion(domain.CustomQuestion{
			Category:   cq.Category,
			Text:       cq.Text,
			IsNegative: cq.IsNegative,
		}); err != nil {
			return nil, err
		}
	}
	draft, err := b.Build(s.newID, s.now())
	if err != nil {
		return nil, err
	}

	err = s.tm.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, draft.Questionnaire); err != nil {
			return err
		}
		if err := s.repo.CreateQuestions(ctx, draft.Questions); err != nil {
			return err
		}
		return s.repo.CreateLikertScale(ctx, draft.Scale)
	})
	if err != nil {
		return nil, repoError("failed to save questionnaire", err)
	}

	logger.Get().Info("Questionnaire created",
		zap.String("questionnaireID", draft.Questionnaire.ID),
		zap.String("createdBy", adminID),
		zap.Int("questions", len(draft.Questions)))
	return toQuestionnaireDetail(draft.Questionnaire, draft.Questions, draft.Scale), nil
}

func (s *questionnaireService) Get(ctx context.Context, id string) (*dto.QuestionnaireDetailResponse, error) {
	q, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError("failed to get questionnaire", err)
	}
	if q == nil {
		return nil, domain.NewNotFoundError("questionnaire not found").WithContext("id", id)
	}
	questions, err := s.repo.GetQuestions(ctx, id)
	if err != nil {
		return nil, repoError("failed to get questions", err)
	}
	scale, err := s.repo.GetLikertScale(ctx, id)
	if err != nil {
		return nil, repoError("failed to get likert scale", err)
	}
	if scale == nil {
		return nil, domain.NewInternalError("questionnaire has no likert scale", nil)
	}
	return toQuestionnaireDetail(q, questions, scale), nil
}

func (s *questionnaireService) List(ctx context.Context) ([]dto.QuestionnaireResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, repoError("failed to list questionnaires", err)
	}
	return toQuestionnaireResponses(list), nil
}

func (s *questionnaireService) ListAvailable(ctx context.Context, userID string) ([]dto.QuestionnaireResponse, error) {
	list, err := s.repo.ListAvailableForUser(ctx, userID)
	if err != nil {
		return nil, repoError("failed to list available questionnaires", err)
	}
	return toQuestionnaireResponses(list), nil
}

func (s *questionnaireService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return repoError("failed to delete questionnaire", err)
	}
	if err := s.resultsCache.Invalidate(ctx, id); err != nil {
		logger.Get().Warn("Failed to invalidate results cache", zap.String("questionnaireID", id), zap.Error(err))
	}
	return nil
}

func toQuestionnaireResponse(q *domain.Questionnaire) dto.QuestionnaireResponse {
	return dto.QuestionnaireResponse{
		ID:        q.ID,
		Title:     q.Title,
		Details:   q.Details,
		CreatedBy: q.CreatedBy,
		CreatedAt: q.CreatedAt,
	}
}

func toQuestionnaireResponses(list []domain.Questionnaire) []dto.QuestionnaireResponse {
	out := make([]dto.QuestionnaireResponse, 0, len(list))
	for i := range list {
		out = append(out, toQuestionnaireResponse(&list[i]))
	}
	return out
}

func toQuestionnaireDetail(q *domain.Questionnaire, questions []domain.Question, scale *domain.LikertScale) *dto.QuestionnaireDetailResponse {
	detail := &dto.QuestionnaireDetailResponse{
		QuestionnaireResponse: toQuestionnaireResponse(q),
		Questions:             make([]dto.QuestionResponse, 0, len(questions)),
		Scale:                 make([]dto.LikertOptionResponse, 0, scale.Size()),
	}
	for _, qu := range questions {
		detail.Questions = append(detail.Questions, dto.QuestionResponse{
			ID:         qu.ID,
			Position:   qu.Position,
			Text:       qu.Text,
			Category:   qu.Category,
			IsCustom:   qu.IsCustom,
			IsNegative: qu.IsNegative,
		})
	}
	for _, opt := range scale.Options() {
		detail.Scale = append(detail.Scale, dto.LikertOptionResponse{ID: opt.ID, Value: opt.Value, Label: opt.Label})
	}
	return detail
}
