package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tam-survey/internal/domain"
	"tam-survey/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// ResponseDatabaseAdapter implements domain.ResponseRepository using sqlx
type ResponseDatabaseAdapter struct {
	db DBTX
}

func NewResponseDatabaseAdapter(db *sqlx.DB) domain.ResponseRepository {
	return &ResponseDatabaseAdapter{db: db}
}

const responseSelect = `SELECT r.id, r.user_id, r.questionnaire_id, r.is_submitted, r.created_at, r.updated_at,
	       q.title AS questionnaire_title
	FROM responses r
	JOIN questionnaires q ON q.id = r.questionnaire_id`

func toDomainResponse(m *models.Response) *domain.Response {
	if m == nil {
		return nil
	}
	return &domain.Response{
		ID:                 m.ID,
		UserID:             m.UserID,
		QuestionnaireID:    m.QuestionnaireID,
		IsSubmitted:        m.IsSubmitted,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
		QuestionnaireTitle: m.QuestionnaireTitle.String,
	}
}

// Create inserts a response. A second draft for the same pair violates the
// partial unique index and is reported as a conflict.
func (a *ResponseDatabaseAdapter) Create(ctx context.Context, r *domain.Response) error {
	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
	m := models.Response{
		ID:              r.ID,
		UserID:          r.UserID,
		QuestionnaireID: r.QuestionnaireID,
		IsSubmitted:     r.IsSubmitted,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	query := `INSERT INTO responses (id, user_id, questionnaire_id, is_submitted, created_at, updated_at)
	          VALUES (:id, :user_id, :questionnaire_id, :is_submitted, :created_at, :updated_at)`
	if _, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, query, m); err != nil {
		if isUniqueViolation(err) {
			return domain.NewError(domain.CodeConflict, "a draft response already exists for this questionnaire", err)
		}
		return fmt.Errorf("failed to create response: %w", err)
	}
	return nil
}

func (a *ResponseDatabaseAdapter) getOne(ctx context.Context, query string, args ...interface{}) (*domain.Response, error) {
	var m models.Response
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &m, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainResponse(&m), nil
}

// GetByID implements domain.ResponseRepository
func (a *ResponseDatabaseAdapter) GetByID(ctx context.Context, id string) (*domain.Response, error) {
	r, err := a.getOne(ctx, responseSelect+` WHERE r.id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get response by id: %w", err)
	}
	return r, nil
}

// FindDraft implements domain.ResponseRepository
func (a *ResponseDatabaseAdapter) FindDraft(ctx context.Context, userID, questionnaireID string) (*domain.Response, error) {
	r, err := a.getOne(ctx,
		responseSelect+` WHERE r.user_id = $1 AND r.questionnaire_id = $2 AND r.is_submitted = FALSE`,
		userID, questionnaireID)
	if err != nil {
		return nil, fmt.Errorf("failed to find draft response: %w", err)
	}
	return r, nil
}

// HasSubmitted implements domain.ResponseRepository
func (a *ResponseDatabaseAdapter) HasSubmitted(ctx context.Context, userID, questionnaireID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (
	              SELECT 1 FROM responses
	              WHERE user_id = $1 AND questionnaire_id = $2 AND is_submitted = TRUE
	          )`
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &exists, query, userID, questionnaireID); err != nil {
		return false, fmt.Errorf("failed to check submitted response: %w", err)
	}
	return exists, nil
}

// MarkSubmitted flips a draft to submitted. A missing or already submitted
// response is a conflict, as is a second submitted response of the same user.
func (a *ResponseDatabaseAdapter) MarkSubmitted(ctx context.Context, id string) error {
	result, err := GetExecutor(ctx, a.db).ExecContext(ctx,
		`UPDATE responses SET is_submitted = TRUE, updated_at = $2 WHERE id = $1 AND is_submitted = FALSE`,
		id, time.Now())
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewError(domain.CodeConflict, "questionnaire already answered", err)
		}
		return fmt.Errorf("failed to submit response: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.NewConflictError(fmt.Sprintf("response %s is not an open draft", id))
	}
	return nil
}

// ListByUser implements domain.ResponseRepository
func (a *ResponseDatabaseAdapter) ListByUser(ctx context.Context, userID string) ([]domain.Response, error) {
	var ms []models.Response
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &ms,
		responseSelect+` WHERE r.user_id = $1 ORDER BY r.updated_at DESC`, userID); err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	out := make([]domain.Response, 0, len(ms))
	for i := range ms {
		out = append(out, *toDomainResponse(&ms[i]))
	}
	return out, nil
}

// CountSubmitted implements domain.ResponseRepository
func (a *ResponseDatabaseAdapter) CountSubmitted(ctx context.Context, questionnaireID string) (int, error) {
	var count int
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &count,
		`SELECT COUNT(DISTINCT id) FROM responses WHERE questionnaire_id = $1 AND is_submitted = TRUE`,
		questionnaireID); err != nil {
		return 0, fmt.Errorf("failed to count submitted responses: %w", err)
	}
	return count, nil
}
