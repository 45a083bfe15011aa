package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tam-survey/internal/cache"
	"tam-survey/internal/domain"
	"tam-survey/internal/dto"
	"tam-survey/internal/logger"

	"go.uber.org/zap"
)

// resultsReportField is the hash field holding the serialized report.
const resultsReportField = "report"

// ErrResultsNotCached is returned when no cached results exist for a questionnaire.
var ErrResultsNotCached = errors.New("questionnaire results not found in cache")

// ResultsCacheService caches computed questionnaire results.
type ResultsCacheService interface {
	Put(ctx context.Context, questionnaireID string, results *dto.ResultsResponse) error
	Get(ctx context.Context, questionnaireID string) (*dto.ResultsResponse, error)
	// Invalidate drops the cached results; called whenever the underlying data changes.
	Invalidate(ctx context.Context, questionnaireID string) error
}

type resultsCacheServiceImpl struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewResultsCacheService falls back to a no-op implementation when cache is nil.
func NewResultsCacheService(c domain.Cache, ttl time.Duration) ResultsCacheService {
	if c == nil {
		logger.Get().Warn("ResultsCacheService initialized with nil cache. Service will be no-op.")
		return &noopResultsCacheService{}
	}
	return &resultsCacheServiceImpl{cache: c, ttl: ttl}
}

func (s *resultsCacheServiceImpl) Put(ctx context.Context, questionnaireID string, results *dto.ResultsResponse) error {
	if results == nil {
		return domain.NewValidationError("cannot cache nil results")
	}

	key := cache.ResultsKey(questionnaireID)
	data, err := json.Marshal(results)
	if err != nil {
		return domain.NewInternalError("failed to marshal results for caching", err)
	}
	if err := s.cache.HSet(ctx, key, resultsReportField, string(data)); err != nil {
		logger.Get().Error("Failed to cache results", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to cache results for key %s", key), err)
	}
	if s.ttl > 0 {
		if err := s.cache.Expire(ctx, key, s.ttl); err != nil {
			logger.Get().Error("Failed to set results cache expiration", zap.Error(err), zap.String("key", key))
			return domain.NewInternalError(fmt.Sprintf("failed to set expiration for key %s", key), err)
		}
	}
	logger.Get().Debug("Cached questionnaire results", zap.String("key", key), zap.Duration("ttl", s.ttl))
	return nil
}

func (s *resultsCacheServiceImpl) Get(ctx context.Context, questionnaireID string) (*dto.ResultsResponse, error) {
	key := cache.ResultsKey(questionnaireID)
	data, err := s.cache.HGet(ctx, key, resultsReportField)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, ErrResultsNotCached
		}
		return nil, domain.NewInternalError(fmt.Sprintf("failed to read results for key %s", key), err)
	}
	if data == "" {
		return nil, ErrResultsNotCached
	}

	var results dto.ResultsResponse
	if err := json.Unmarshal([]byte(data), &results); err != nil {
		return nil, domain.NewInternalError(fmt.Sprintf("failed to unmarshal results for key %s", key), err)
	}
	return &results, nil
}

func (s *resultsCacheServiceImpl) Invalidate(ctx context.Context, questionnaireID string) error {
	key := cache.ResultsKey(questionnaireID)
	if err := s.cache.Delete(ctx, key); err != nil {
		return domain.NewInternalError(fmt.Sprintf("failed to invalidate results for key %s", key), err)
	}
	return nil
}

// noopResultsCacheService is used when caching is disabled or failed to initialize.
type noopResultsCacheService struct{}

func (s *noopResultsCacheService) Put(ctx context.Context, questionnaireID string, results *dto.ResultsResponse) error {
	return nil
}

func (s *noopResultsCacheService) Get(ctx context.Context, questionnaireID string) (*dto.ResultsResponse, error) {
	return nil, ErrResultsNotCached
}

func (s *noopResultsCacheService) Invalidate(ctx context.Context, questionnaireID string) error {
	return nil
}
