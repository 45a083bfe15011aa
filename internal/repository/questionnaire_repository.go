package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tam-survey/internal/domain"
	"tam-survey/internal/repository/models"
	"tam-survey/internal/util"

	"github.com/jmoiron/sqlx"
)

// QuestionnaireDatabaseAdapter implements domain.QuestionnaireRepository using sqlx
type QuestionnaireDatabaseAdapter struct {
	db DBTX
}

// NewQuestionnaireDatabaseAdapter creates a new instance of QuestionnaireDatabaseAdapter
func NewQuestionnaireDatabaseAdapter(db *sqlx.DB) domain.QuestionnaireRepository {
	return &QuestionnaireDatabaseAdapter{db: db}
}

const questionnaireColumns = `id, title, details, created_by, created_at`

func toDomainQuestionnaire(m *models.Questionnaire) *domain.Questionnaire {
	if m == nil {
		return nil
	}
	return &domain.Questionnaire{
		ID:        m.ID,
		Title:     m.Title,
		Details:   m.Details.String,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
	}
}

func toDomainQuestionnaires(ms []models.Questionnaire) []domain.Questionnaire {
	out := make([]domain.Questionnaire, 0, len(ms))
	for i := range ms {
		out = append(out, *toDomainQuestionnaire(&ms[i]))
	}
	return out
}

func toModelQuestion(q domain.Question) models.Question {
	return models.Question{
		ID:              q.ID,
		QuestionnaireID: q.QuestionnaireID,
		QuestionText:    q.Text,
		Position:        q.Position,
		Category:        q.Category,
		IsCustom:        q.IsCustom,
		IsNegative:      q.IsNegative,
	}
}

func toDomainQuestion(m models.Question) domain.Question {
	return domain.Question{
		ID:              m.ID,
		QuestionnaireID: m.QuestionnaireID,
		Text:            m.QuestionText,
		Position:        m.Position,
		Category:        m.Category,
		IsCustom:        m.IsCustom,
		IsNegative:      m.IsNegative,
	}
}

// Create implements domain.QuestionnaireRepository
func (a *QuestionnaireDatabaseAdapter) Create(ctx context.Context, q *domain.Questionnaire) error {
	query := `INSERT INTO questionnaires (id, title, details, created_by, created_at)
	          VALUES (:id, :title, :details, :created_by, :created_at)`
	m := models.Questionnaire{
		ID:        q.ID,
		Title:     q.Title,
		Details:   util.StringToNullString(q.Details),
		CreatedBy: q.CreatedBy,
		CreatedAt: q.CreatedAt,
	}
	if _, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to create questionnaire: %w", err)
	}
	return nil
}

// CreateQuestions inserts all questions in one statement.
func (a *QuestionnaireDatabaseAdapter) CreateQuestions(ctx context.Context, questions []domain.Question) error {
	if len(questions) == 0 {
		return nil
	}
	rows := make([]models.Question, len(questions))
	for i, q := range questions {
		rows[i] = toModelQuestion(q)
	}
	query := `INSERT INTO questions (id, questionnaire_id, question_text, position, category, is_custom, is_negative)
	          VALUES (:id, :questionnaire_id, :question_text, :position, :category, :is_custom, :is_negative)`
	if _, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, query, rows); err != nil {
		return fmt.Errorf("failed to create questions: %w", err)
	}
	return nil
}

// GetByID implements domain.QuestionnaireRepository
func (a *QuestionnaireDatabaseAdapter) GetByID(ctx context.Context, id string) (*domain.Questionnaire, error) {
	var m models.Questionnaire
	query := `SELECT ` + questionnaireColumns + ` FROM questionnaires WHERE id = $1`
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get questionnaire by id: %w", err)
	}
	return toDomainQuestionnaire(&m), nil
}

// List implements domain.QuestionnaireRepository
func (a *QuestionnaireDatabaseAdapter) List(ctx context.Context) ([]domain.Questionnaire, error) {
	var ms []models.Questionnaire
	query := `SELECT ` + questionnaireColumns + ` FROM questionnaires ORDER BY created_at DESC`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &ms, query); err != nil {
		return nil, fmt.Errorf("failed to list questionnaires: %w", err)
	}
	return toDomainQuestionnaires(ms), nil
}

// ListAvailableForUser returns questionnaires without a submitted response of the user.
func (a *QuestionnaireDatabaseAdapter) ListAvailableForUser(ctx context.Context, userID string) ([]domain.Questionnaire, error) {
	var ms []models.Questionnaire
	query := `SELECT q.id, q.title, q.details, q.created_by, q.created_at
	          FROM questionnaires q
	          WHERE NOT EXISTS (
	              SELECT 1 FROM responses r
	              WHERE r.questionnaire_id = q.id AND r.user_id = $1 AND r.is_submitted = TRUE
	          )
	          ORDER BY q.created_at DESC`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &ms, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list available questionnaires: %w", err)
	}
	return toDomainQuestionnaires(ms), nil
}

// Delete removes the questionnaire; the schema cascades to everything below it.
func (a *QuestionnaireDatabaseAdapter) Delete(ctx context.Context, id string) error {
	result, err := GetExecutor(ctx, a.db).ExecContext(ctx, `DELETE FROM questionnaires WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete questionnaire: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("questionnaire %s not found", id))
	}
	return nil
}

// GetQuestions implements domain.QuestionnaireRepository
func (a *QuestionnaireDatabaseAdapter) GetQuestions(ctx context.Context, questionnaireID string) ([]domain.Question, error) {
	var ms []models.Question
	query := `SELECT id, questionnaire_id, question_text, position, category, is_custom, is_negative
	          FROM questions WHERE questionnaire_id = $1 ORDER BY position`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &ms, query, questionnaireID); err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}
	out := make([]domain.Question, len(ms))
	for i, m := range ms {
		out[i] = toDomainQuestion(m)
	}
	return out, nil
}

// CreateLikertScale inserts the scale row followed by its options.
func (a *QuestionnaireDatabaseAdapter) CreateLikertScale(ctx context.Context, scale *domain.LikertScale) error {
	exec := GetExecutor(ctx, a.db)
	if _, err := exec.ExecContext(ctx,
		`INSERT INTO likert_scales (id, questionnaire_id) VALUES ($1, $2)`,
		scale.ID, scale.QuestionnaireID); err != nil {
		return fmt.Errorf("failed to create likert scale: %w", err)
	}

	options := scale.Options()
	rows := make([]models.LikertScaleOption, len(options))
	for i, opt := range options {
		rows[i] = models.LikertScaleOption{ID: opt.ID, LikertScaleID: scale.ID, Value: opt.Value, Label: opt.Label}
	}
	query := `INSERT INTO likert_scale_options (id, likert_scale_id, value, label)
	          VALUES (:id, :likert_scale_id, :value, :label)`
	if _, err := exec.NamedExecContext(ctx, query, rows); err != nil {
		return fmt.Errorf("failed to create likert scale options: %w", err)
	}
	return nil
}

// GetLikertScale implements domain.QuestionnaireRepository
func (a *QuestionnaireDatabaseAdapter) GetLikertScale(ctx context.Context, questionnaireID string) (*domain.LikertScale, error) {
	exec := GetExecutor(ctx, a.db)
	var scale models.LikertScale
	if err := exec.GetContext(ctx, &scale,
		`SELECT id, questionnaire_id FROM likert_scales WHERE questionnaire_id = $1`, questionnaireID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get likert scale: %w", err)
	}

	var ms []models.LikertScaleOption
	if err := exec.SelectContext(ctx, &ms,
		`SELECT id, likert_scale_id, value, label FROM likert_scale_options WHERE likert_scale_id = $1 ORDER BY value`,
		scale.ID); err != nil {
		return nil, fmt.Errorf("failed to get likert scale options: %w", err)
	}

	options := make([]domain.LikertScaleOption, len(ms))
	for i, m := range ms {
		options[i] = domain.LikertScaleOption{ID: m.ID, LikertScaleID: m.LikertScaleID, Value: m.Value, Label: m.Label}
	}
	result, err := domain.NewLikertScaleFromOptions(scale.ID, options)
	if err != nil {
		return nil, err
	}
	result.QuestionnaireID = scale.QuestionnaireID
	return result, nil
}
