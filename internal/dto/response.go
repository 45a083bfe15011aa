package dto

import "time"

// AnswerInput is one selected value for one question.
type AnswerInput struct {
	QuestionID string `json:"question_id" validate:"required"`
	Value      int    `json:"value" validate:"required,min=1"`
}

// SaveResponseRequest represents the body for saving or submitting a response
// @Description Answers in question order; submit=true finalises the response
type SaveResponseRequest struct {
	Answers []AnswerInput `json:"answers" validate:"dive"`
	Submit  bool          `json:"submit"`
}

// ResponseSummary represents a response in the user's listing
type ResponseSummary struct {
	ID                 string    `json:"id"`
	QuestionnaireID    string    `json:"questionnaire_id"`
	QuestionnaireTitle string    `json:"questionnaire_title"`
	IsSubmitted        bool      `json:"is_submitted"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// AnsweredQuestion is one answer shown back to its author.
// PrefillValue is the scale value matching the stored label, or nil.
type AnsweredQuestion struct {
	QuestionID   string `json:"question_id"`
	Position     int    `json:"position"`
	Text         string `json:"text"`
	Category     string `json:"category"`
	Label        string `json:"label"`
	PrefillValue *int   `json:"prefill_value"`
}

// ResponseDetail represents a response with its answers
// @Description A response and its answers ordered by question position
type ResponseDetail struct {
	ResponseSummary
	Answers []AnsweredQuestion `json:"answers"`
}
