package models

import (
	"database/sql"
	"time"
)

// Questionnaire represents a row of the questionnaires table.
type Questionnaire struct {
	ID        string         `db:"id"`
	Title     string         `db:"title"`
	Details   sql.NullString `db:"details"`
	CreatedBy string         `db:"created_by"`
	CreatedAt time.Time      `db:"created_at"`
}

type Question struct {
	ID              string `db:"id"`
	QuestionnaireID string `db:"questionnaire_id"`
	QuestionText    string `db:"question_text"`
	Position        int    `db:"position"`
	Category        string `db:"category"`
	IsCustom        bool   `db:"is_custom"`
	IsNegative      bool   `db:"is_negative"`
}

type LikertScale struct {
	ID              string `db:"id"`
	QuestionnaireID string `db:"questionnaire_id"`
}

type LikertScaleOption struct {
	ID            string `db:"id"`
	LikertScaleID string `db:"likert_scale_id"`
	Value         int    `db:"value"`
	Label         string `db:"label"`
}

// Response represents a row of the responses table. QuestionnaireTitle is
// only populated by queries that join questionnaires.
type Response struct {
	ID                 string         `db:"id"`
	UserID             string         `db:"user_id"`
	QuestionnaireID    string         `db:"questionnaire_id"`
	IsSubmitted        bool           `db:"is_submitted"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
	QuestionnaireTitle sql.NullString `db:"questionnaire_title"`
}

type Answer struct {
	ID               string `db:"id"`
	ResponseID       string `db:"response_id"`
	QuestionID       string `db:"question_id"`
	SelectedOptionID string `db:"selected_option_id"`
}

// AnswerDetail is an answer joined with its question and selected option.
type AnswerDetail struct {
	ResponseID   string `db:"response_id"`
	QuestionID   string `db:"question_id"`
	Position     int    `db:"position"`
	QuestionText string `db:"question_text"`
	Category     string `db:"category"`
	IsCustom     bool   `db:"is_custom"`
	IsNegative   bool   `db:"is_negative"`
	OptionID     string `db:"selected_option_id"`
	Value        int    `db:"value"`
	Label        string `db:"label"`
}

type Profile struct {
	ID        string         `db:"id"`
	FullName  string         `db:"full_name"`
	Birthdate sql.NullTime   `db:"birthdate"`
	City      sql.NullString `db:"city"`
	Country   sql.NullString `db:"country"`
	UpdatedAt time.Time      `db:"updated_at"`
}
