package service

import (
	"context"
	"fmt"
	"time"

	"tam-survey/internal/domain"
	"tam-survey/internal/dto"
	"tam-survey/internal/logger"
	"tam-survey/internal/util"

	"go.uber.org/zap"
)

// ResponseService defines the respondent's draft and submit operations
type ResponseService interface {
	// Save stores answers on the user's draft, creating it when absent.
	// With Submit set every question must be answered and the response
	// becomes final.
	Save(ctx context.Context, userID, questionnaireID string, req *dto.SaveResponseRequest) (*dto.ResponseDetail, error)
	Get(ctx context.Context, userID, responseID string) (*dto.ResponseDetail, error)
	ListMine(ctx context.Context, userID string) ([]dto.ResponseSummary, error)
}

type responseService struct {
	questionnaires domain.QuestionnaireRepository
	responses      domain.ResponseRepository
	answers        domain.AnswerRepository
	tm             domain.TransactionManager
	resultsCache   ResultsCacheService
	newID          func() string
}

// NewResponseService creates a new instance of responseService
func NewResponseService(
	questionnaires domain.QuestionnaireRepository,
	responses domain.ResponseRepository,
	answers domain.AnswerRepository,
	tm domain.TransactionManager,
	resultsCache ResultsCacheService,
) ResponseService {
	return &responseService{
		questionnaires: questionnaires,
		responses:      responses,
		answers:        answers,
		tm:             tm,
		resultsCache:   resultsCache,
		newID:          util.NewULID,
	}
}

func (s *responseService) Save(ctx context.Context, userID, questionnaireID string, req *dto.SaveResponseRequest) (*dto.ResponseDetail, error) {
	q, err := s.questionnaires.GetByID(ctx, questionnaireID)
	if err != nil {
		return nil, repoError("failed to get questionnaire", err)
	}
	if q == nil {
		return nil, domain.NewNotFoundError("questionnaire not found").WithContext("id", questionnaireID)
	}

	submitted, err := s.responses.HasSubmitted(ctx, userID, questionnaireID)
	if err != nil {
		return nil, repoError("failed to check existing response", err)
	}
	if submitted {
		return nil, domain.NewConflictError("questionnaire already answered").WithContext("questionnaire_id", questionnaireID)
	}

	questions, err := s.questionnaires.GetQuestions(ctx, questionnaireID)
	if err != nil {
		return nil, repoError("failed to get questions", err)
	}
	scale, err := s.questionnaires.GetLikertScale(ctx, questionnaireID)
	if err != nil {
		return nil, repoError("failed to get likert scale", err)
	}
	if scale == nil {
		return nil, domain.NewInternalError("questionnaire has no likert scale", nil)
	}

	belongs := make(map[string]bool, len(questions))
	for _, qu := range questions {
		belongs[qu.ID] = true
	}
	answered := make(map[string]bool, len(req.Answers))
	answers := make([]domain.Answer, 0, len(req.Answers))
	for _, in := range req.Answers {
		if !belongs[in.QuestionID] {
			return nil, domain.NewValidationError("question does not belong to the questionnaire").
				WithContext("question_id", in.QuestionID)
		}
		if answered[in.QuestionID] {
			return nil, domain.NewValidationError("question answered more than once").
				WithContext("question_id", in.QuestionID)
		}
		opt, err := scale.OptionByValue(in.Value)
		if err != nil {
			return nil, domain.NewValidationError(fmt.Sprintf("value %d is not on the answer scale", in.Value)).
				WithContext("question_id", in.QuestionID)
		}
		answered[in.QuestionID] = true
		answers = append(answers, domain.Answer{ID: s.newID(), QuestionID: in.QuestionID, SelectedOptionID: opt.ID})
	}

	var response *domain.Response
	err = s.tm.WithTransaction(ctx, func(ctx context.Context) error {
		draft, err := s.responses.FindDraft(ctx, userID, questionnaireID)
		if err != nil {
			return err
		}
		if draft == nil {
			draft = &domain.Response{ID: s.newID(), UserID: userID, QuestionnaireID: questionnaireID}
			if err := s.responses.Create(ctx, draft); err != nil {
				return err
			}
		} else if req.Submit {
			existing, err := s.answers.ListByResponse(ctx, draft.ID)
			if err != nil {
				return err
			}
			for _, a := range existing {
				answered[a.QuestionID] = true
			}
		}

		if req.Submit {
			if missing := len(questions) - len(answered); missing > 0 {
				return domain.NewValidationError("answer all questions before submitting").
					WithContext("unanswered", missing)
			}
		}

		for i := range answers {
			answers[i].ResponseID = draft.ID
		}
		if err := s.answers.UpsertAnswers(ctx, answers); err != nil {
			return err
		}
		if req.Submit {
			if err := s.responses.MarkSubmitted(ctx, draft.ID); err != nil {
				return err
			}
			draft.IsSubmitted = true
			draft.UpdatedAt = time.Now()
		}
		response = draft
		return nil
	})
	if err != nil {
		return nil, repoError("failed to save response", err)
	}
	response.QuestionnaireTitle = q.Title

	if response.IsSubmitted {
		logger.Get().Info("Response submitted",
			zap.String("responseID", response.ID),
			zap.String("questionnaireID", questionnaireID))
		if err := s.resultsCache.Invalidate(ctx, questionnaireID); err != nil {
			logger.Get().Warn("Failed to invalidate results cache", zap.String("questionnaireID", questionnaireID), zap.Error(err))
		}
	}
	return s.detail(ctx, response, scale)
}

// Get returns one of the caller's own responses.
func (s *responseService) Get(ctx context.Context, userID, responseID string) (*dto.ResponseDetail, error) {
	r, err := s.responses.GetByID(ctx, responseID)
	if err != nil {
		return nil, repoError("failed to get response", err)
	}
	if r == nil {
		return nil, domain.NewNotFoundError("response not found").WithContext("id", responseID)
	}
	if r.UserID != userID {
		return nil, domain.NewForbiddenError("response belongs to another user")
	}
	scale, err := s.questionnaires.GetLikertScale(ctx, r.QuestionnaireID)
	if err != nil {
		return nil, repoError("failed to get likert scale", err)
	}
	if scale == nil {
		return nil, domain.NewInternalError("questionnaire has no likert scale", nil)
	}
	return s.detail(ctx, r, scale)
}

func (s *responseService) ListMine(ctx context.Context, userID string) ([]dto.ResponseSummary, error) {
	list, err := s.responses.ListByUser(ctx, userID)
	if err != nil {
		return nil, repoError("failed to list responses", err)
	}
	out := make([]dto.ResponseSummary, 0, len(list))
	for i := range list {
		out = append(out, toResponseSummary(&list[i]))
	}
	return out, nil
}

func (s *responseService) detail(ctx context.Context, r *domain.Response, scale *domain.LikertScale) (*dto.ResponseDetail, error) {
	details, err := s.answers.ListByResponse(ctx, r.ID)
	if err != nil {
		return nil, repoError("failed to list answers", err)
	}
	out := &dto.ResponseDetail{
		ResponseSummary: toResponseSummary(r),
		Answers:         make([]dto.AnsweredQuestion, 0, len(details)),
	}
	for _, d := range details {
		aq := dto.AnsweredQuestion{
			QuestionID: d.QuestionID,
			Position:   d.Position,
			Text:       d.Text,
			Category:   d.Category,
			Label:      d.Label,
		}
		if v, ok := scale.ValueByLabel(d.Label); ok {
			aq.PrefillValue = &v
		}
		out.Answers = append(out.Answers, aq)
	}
	return out, nil
}

func toResponseSummary(r *domain.Response) dto.ResponseSummary {
	return dto.ResponseSummary{
		ID:                 r.ID,
		QuestionnaireID:    r.QuestionnaireID,
		QuestionnaireTitle: r.QuestionnaireTitle,
		IsSubmitted:        r.IsSubmitted,
		UpdatedAt:          r.UpdatedAt,
	}
}
