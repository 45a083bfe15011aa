package repository

import (
	"context"
	"fmt"

	"tam-survey/internal/domain"
	"tam-survey/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// AnswerDatabaseAdapter implements domain.AnswerRepository using sqlx
type AnswerDatabaseAdapter struct {
	db DBTX
}

func NewAnswerDatabaseAdapter(db *sqlx.DB) domain.AnswerRepository {
	return &AnswerDatabaseAdapter{db: db}
}

const answerDetailSelect = `SELECT a.response_id, a.question_id, q.position, q.question_text, q.category,
	       q.is_custom, q.is_negative, a.selected_option_id, o.value, o.label
	FROM answers a
	JOIN questions q ON q.id = a.question_id
	JOIN likert_scale_options o ON o.id = a.selected_option_id`

func toDomainAnswerDetails(ms []models.AnswerDetail) []domain.AnswerDetail {
	out := make([]domain.AnswerDetail, len(ms))
	for i, m := range ms {
		out[i] = domain.AnswerDetail{
			ResponseID: m.ResponseID,
			QuestionID: m.QuestionID,
			Position:   m.Position,
			Text:       m.QuestionText,
			Category:   m.Category,
			IsCustom:   m.IsCustom,
			IsNegative: m.IsNegative,
			OptionID:   m.OptionID,
			Value:      m.Value,
			Label:      m.Label,
		}
	}
	return out
}

// UpsertAnswers writes the batch in one statement; an existing answer to the
// same question of the same response gets the new option.
func (a *AnswerDatabaseAdapter) UpsertAnswers(ctx context.Context, answers []domain.Answer) error {
	if len(answers) == 0 {
		return nil
	}
	rows := make([]models.Answer, len(answers))
	for i, ans := range answers {
		rows[i] = models.Answer{
			ID:               ans.ID,
			ResponseID:       ans.ResponseID,
			QuestionID:       ans.QuestionID,
			SelectedOptionID: ans.SelectedOptionID,
		}
	}
	query := `INSERT INTO answers (id, response_id, question_id, selected_option_id)
	          VALUES (:id, :response_id, :question_id, :selected_option_id)
	          ON CONFLICT (response_id, question_id) DO UPDATE SET selected_option_id = EXCLUDED.selected_option_id`
	if _, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, query, rows); err != nil {
		return fmt.Errorf("failed to upsert answers: %w", err)
	}
	return nil
}

// ListByResponse returns the answers of a response ordered by question position.
func (a *AnswerDatabaseAdapter) ListByResponse(ctx context.Context, responseID string) ([]domain.AnswerDetail, error) {
	var ms []models.AnswerDetail
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &ms,
		answerDetailSelect+` WHERE a.response_id = $1 ORDER BY q.position`, responseID); err != nil {
		return nil, fmt.Errorf("failed to list answers of response: %w", err)
	}
	return toDomainAnswerDetails(ms), nil
}

// ListSubmittedByQuestionnaire returns every answer of submitted responses.
func (a *AnswerDatabaseAdapter) ListSubmittedByQuestionnaire(ctx context.Context, questionnaireID string) ([]domain.AnswerDetail, error) {
	var ms []models.AnswerDetail
	query := answerDetailSelect + `
	JOIN responses r ON r.id = a.response_id
	WHERE r.questionnaire_id = $1 AND r.is_submitted = TRUE
	ORDER BY a.response_id, q.position`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &ms, query, questionnaireID); err != nil {
		return nil, fmt.Errorf("failed to list submitted answers: %w", err)
	}
	return toDomainAnswerDetails(ms), nil
}

// CategoryMeans reads the response_category_means view, which applies the
// same reverse scoring as the scoring engine.
func (a *AnswerDatabaseAdapter) CategoryMeans(ctx context.Context, questionnaireID string) ([]domain.CategoryMean, error) {
	var means []domain.CategoryMean
	query := `SELECT response_id, category, mean_score
	          FROM response_category_means
	          WHERE questionnaire_id = $1
	          ORDER BY response_id, category`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &means, query, questionnaireID); err != nil {
		return nil, fmt.Errorf("failed to load category means: %w", err)
	}
	return means, nil
}
