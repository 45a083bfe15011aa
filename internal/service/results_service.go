package service

import (
	"context"
	"errors"

	"tam-survey/internal/chart"
	"tam-survey/internal/config"
	"tam-survey/internal/domain"
	"tam-survey/internal/dto"
	"tam-survey/internal/logger"
	"tam-survey/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	compositeNoResponses = "No submitted responses yet"
	compositeNoBasic     = "No answers in the basic categories"
)

// ResultsService computes the analysis of a questionnaire's submitted responses
type ResultsService interface {
	Results(ctx context.Context, questionnaireID string) (*dto.ResultsResponse, error)
	Charts(ctx context.Context, questionnaireID string) (*dto.ChartsResponse, error)
}

type resultsService struct {
	questionnaires domain.QuestionnaireRepository
	responses      domain.ResponseRepository
	answers        domain.AnswerRepository
	profiles       domain.ProfileRepository
	cache          ResultsCacheService
	analyzer       *domain.CorrelationAnalyzer
	basic          []string
}

// NewResultsService creates a new instance of resultsService
func NewResultsService(
	questionnaires domain.QuestionnaireRepository,
	responses domain.ResponseRepository,
	answers domain.AnswerRepository,
	profiles domain.ProfileRepository,
	cache ResultsCacheService,
	cfg config.AnalysisConfig,
) ResultsService {
	analyzer := domain.NewCorrelationAnalyzer(cfg.MinResponses, cfg.BasicCategories)
	return &resultsService{
		questionnaires: questionnaires,
		responses:      responses,
		answers:        answers,
		profiles:       profiles,
		cache:          cache,
		analyzer:       analyzer,
		basic:          analyzer.Basic,
	}
}

// resultsInput is everything the computation reads, loaded concurrently.
type resultsInput struct {
	questionnaire *domain.Questionnaire
	questions     []domain.Question
	scale         *domain.LikertScale
	details       []domain.AnswerDetail
	submitted     int
	means         []domain.CategoryMean
}

func (s *resultsService) load(ctx context.Context, questionnaireID string) (*resultsInput, error) {
	in := &resultsInput{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		in.questionnaire, err = s.questionnaires.GetByID(gctx, questionnaireID)
		return err
	})
	g.Go(func() (err error) {
		in.questions, err = s.questionnaires.GetQuestions(gctx, questionnaireID)
		return err
	})
	g.Go(func() (err error) {
		in.scale, err = s.questionnaires.GetLikertScale(gctx, questionnaireID)
		return err
	})
	g.Go(func() (err error) {
		in.details, err = s.answers.ListSubmittedByQuestionnaire(gctx, questionnaireID)
		return err
	})
	g.Go(func() (err error) {
		in.submitted, err = s.responses.CountSubmitted(gctx, questionnaireID)
		return err
	})
	g.Go(func() (err error) {
		in.means, err = s.answers.CategoryMeans(gctx, questionnaireID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, repoError("failed to load questionnaire results", err)
	}
	if in.questionnaire == nil {
		return nil, domain.NewNotFoundError("questionnaire not found").WithContext("id", questionnaireID)
	}
	if in.scale == nil {
		return nil, domain.NewInternalError("questionnaire has no likert scale", nil)
	}
	return in, nil
}

func (s *resultsService) Results(ctx context.Context, questionnaireID string) (*dto.ResultsResponse, error) {
	cached, err := s.cache.Get(ctx, questionnaireID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ErrResultsNotCached) {
		logger.Get().Warn("Results cache read failed, recomputing", zap.String("questionnaireID", questionnaireID), zap.Error(err))
	}

	in, err := s.load(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}
	results, err := s.compute(in)
	if err != nil {
		return nil, err
	}

	if in.questionnaire.CreatedBy != "" {
		profile, err := s.profiles.GetByID(ctx, in.questionnaire.CreatedBy)
		if err != nil {
			logger.Get().Warn("Failed to load creator profile", zap.String("userID", in.questionnaire.CreatedBy), zap.Error(err))
		} else if profile != nil {
			results.CreatedByName = profile.FullName
		}
	}

	if err := s.cache.Put(ctx, questionnaireID, results); err != nil {
		logger.Get().Warn("Failed to cache results", zap.String("questionnaireID", questionnaireID), zap.Error(err))
	}
	return results, nil
}

func (s *resultsService) compute(in *resultsInput) (*dto.ResultsResponse, error) {
	n := in.scale.Size()
	records := make([]domain.AnswerRecord, 0, len(in.details))
	for _, d := range in.details {
		records = append(records, d.Record())
	}
	records, err := domain.ResolveAnswerValues(in.scale, records)
	if err != nil {
		return nil, domain.NewInternalError("stored answer references an unknown option", err)
	}

	categories := domain.QuestionCategories(in.questions)
	var secondary []string
	for _, c := range categories {
		if !containsCategory(s.basic, c) {
			secondary = append(secondary, c)
		}
	}

	results := &dto.ResultsResponse{
		QuestionnaireID:             in.questionnaire.ID,
		Title:                       in.questionnaire.Title,
		ScaleSize:                   n,
		SubmittedResponses:          in.submitted,
		CategoryDistributions:       []dto.Distribution{},
		CustomQuestionDistributions: []dto.Distribution{},
	}

	if results.BasicCategoryScores, err = categoryScores(records, n, s.basic); err != nil {
		return nil, err
	}
	if results.SecondaryCategoryScores, err = categoryScores(records, n, secondary); err != nil {
		return nil, err
	}

	if in.submitted == 0 {
		results.CompositeMessage = compositeNoResponses
	} else {
		composite, err := domain.CompositeScore(records, n, s.basic)
		switch {
		case domain.IsCode(err, domain.CodeInsufficientData):
			results.CompositeMessage = compositeNoBasic
		case err != nil:
			return nil, err
		default:
			rounded := util.RoundTo(composite, 3)
			results.CompositeScore = &rounded
		}
	}

	for _, c := range categories {
		counts, err := domain.CountByLabel(in.scale, domain.AnswersInCategory(records, c))
		if err != nil {
			return nil, domain.NewInternalError("failed to count answers", err)
		}
		results.CategoryDistributions = append(results.CategoryDistributions, dto.Distribution{
			Key:    c,
			Title:  c,
			Counts: domain.OrderedCounts(in.scale, counts),
		})
	}
	for _, q := range in.questions {
		if !q.IsCustom {
			continue
		}
		counts, err := domain.CountByLabel(in.scale, domain.AnswersForQuestion(records, q.ID))
		if err != nil {
			return nil, domain.NewInternalError("failed to count answers", err)
		}
		results.CustomQuestionDistributions = append(results.CustomQuestionDistributions, dto.Distribution{
			Key:    q.ID,
			Title:  q.Text,
			Counts: domain.OrderedCounts(in.scale, counts),
		})
	}

	results.Correlation = s.analyzer.Analyze(domain.PivotCategoryMeans(in.means), in.submitted, categories)
	return results, nil
}

func (s *resultsService) Charts(ctx context.Context, questionnaireID string) (*dto.ChartsResponse, error) {
	results, err := s.Results(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}
	return chart.ResultsCharts(results), nil
}

func categoryScores(records []domain.AnswerRecord, n int, categories []string) ([]dto.CategoryScore, error) {
	out := make([]dto.CategoryScore, 0, len(categories))
	if len(categories) == 0 {
		return out, nil
	}
	sums, err := domain.CategorySums(records, n, categories)
	if err != nil {
		return nil, domain.NewInternalError("stored answer is outside the scale", err)
	}
	for _, c := range categories {
		out = append(out, dto.CategoryScore{Category: c, Acronym: domain.CategoryAcronym(c), Score: sums[c]})
	}
	return out, nil
}

func containsCategory(list []string, c string) bool {
	for _, item := range list {
		if item == c {
			return true
		}
	}
	return false
}
