package domain

import (
	"time"
)

// Questionnaire is a TAM survey about one application.
type Questionnaire struct {
	ID        string
	Title     string
	Details   string
	CreatedBy string
	CreatedAt time.Time
}

// Question is one statement of a questionnaire. Position is 1-based and
// contiguous within the questionnaire.
type Question struct {
	ID              string
	QuestionnaireID string
	Text            string
	Position        int
	Category        string
	IsCustom        bool
	IsNegative      bool
}

// Response is one user's answer sheet for a questionnaire. A submitted
// response never returns to draft.
type Response struct {
	ID              string
	UserID          string
	QuestionnaireID string
	IsSubmitted     bool
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// QuestionnaireTitle is filled by listing queries for display.
	QuestionnaireTitle string
}

// Answer links a response and a question to the selected scale option.
type Answer struct {
	ID               string
	ResponseID       string
	QuestionID       string
	SelectedOptionID string
}

// AnswerDetail is an answer joined with its question and selected option.
type AnswerDetail struct {
	ResponseID string
	QuestionID string
	Position   int
	Text       string
	Category   string
	IsCustom   bool
	IsNegative bool
	OptionID   string
	Value      int
	Label      string
}

// Record converts the joined row to the scoring engine's input.
func (d AnswerDetail) Record() AnswerRecord {
	return AnswerRecord{
		ResponseID: d.ResponseID,
		QuestionID: d.QuestionID,
		Category:   d.Category,
		IsNegative: d.IsNegative,
		IsCustom:   d.IsCustom,
		OptionID:   d.OptionID,
		Value:      d.Value,
	}
}

// Profile is the personal data attached to an external identity.
type Profile struct {
	ID        string
	FullName  string
	Birthdate *time.Time
	City      string
	Country   string
	UpdatedAt time.Time
}

// Validate validates the profile
func (p *Profile) Validate() error {
	if p.ID == "" {
		return NewValidationError("profile id is required")
	}
	if p.FullName == "" {
		return NewValidationError("full_name is required")
	}
	return nil
}

// QuestionCategories returns the distinct categories of questions in position order.
func QuestionCategories(questions []Question) []string {
	var categories []string
	for _, q := range questions {
		if !containsString(categories, q.Category) {
			categories = append(categories, q.Category)
		}
	}
	return categories
}
