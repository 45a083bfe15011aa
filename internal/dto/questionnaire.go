package dto

import "time"

// CustomQuestionRequest is an administrator-authored statement.
// @Description Custom question added to one of the questionnaire's categories
type CustomQuestionRequest struct {
	Category   string `json:"category" validate:"required"`
	Text       string `json:"text" validate:"required,max=500"`
	IsNegative bool   `json:"is_negative"`
}

// CreateQuestionnaireRequest represents the body for creating a questionnaire
// @Description Request body for creating a TAM questionnaire
type CreateQuestionnaireRequest struct {
	AppName             string                  `json:"app_name" validate:"required,max=200"`
	Details             string                  `json:"details" validate:"max=2000"`
	SecondaryCategories []string                `json:"secondary_categories" validate:"dive,required"`
	CustomQuestions     []CustomQuestionRequest `json:"custom_questions" validate:"dive"`
	LikertLabels        []string                `json:"likert_labels" validate:"omitempty,min=2,max=7,dive,required"`
}

// QuestionnaireResponse represents a questionnaire in listings
// @Description Questionnaire summary
type QuestionnaireResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Details   string    `json:"details,omitempty"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// QuestionResponse represents one question of a questionnaire
type QuestionResponse struct {
	ID         string `json:"id"`
	Position   int    `json:"position"`
	Text       string `json:"text"`
	Category   string `json:"category"`
	IsCustom   bool   `json:"is_custom"`
	IsNegative bool   `json:"is_negative"`
}

// LikertOptionResponse represents one option of the answer scale
type LikertOptionResponse struct {
	ID    string `json:"id"`
	Value int    `json:"value"`
	Label string `json:"label"`
}

// QuestionnaireDetailResponse represents a questionnaire with its questions and scale
// @Description Full questionnaire as shown to respondents
type QuestionnaireDetailResponse struct {
	QuestionnaireResponse
	Questions []QuestionResponse     `json:"questions"`
	Scale     []LikertOptionResponse `json:"scale"`
}
