package domain

import (
	"fmt"
	"strings"
	"time"
)

// CustomQuestion is an administrator-authored statement.
type CustomQuestion struct {
	Category   string
	Text       string
	IsNegative bool
}

// QuestionnaireDraft is a fully validated questionnaire ready to persist.
type QuestionnaireDraft struct {
	Questionnaire *Questionnaire
	Questions     []Question
	Scale         *LikertScale
}

// QuestionnaireBuilder collects one authoring session's choices. It is owned
// by a single request and never shared.
type QuestionnaireBuilder struct {
	appName   string
	details   string
	createdBy string
	secondary []string
	custom    []CustomQuestion
	labels    []string
}

// NewQuestionnaireBuilder starts a questionnaire about appName.
func NewQuestionnaireBuilder(appName, details, createdBy string) *QuestionnaireBuilder {
	return &QuestionnaireBuilder{
		appName:   strings.TrimSpace(appName),
		details:   strings.TrimSpace(details),
		createdBy: createdBy,
		labels:    DefaultLikertLabels,
	}
}

// WithSecondary adds optional constructs. Unknown or basic categories are rejected.
func (b *QuestionnaireBuilder) WithSecondary(categories ...string) error {
	for _, c := range categories {
		if !containsString(SecondaryCategories, c) {
			return NewValidationError(fmt.Sprintf("%q is not a secondary TAM category", c))
		}
		if !containsString(b.secondary, c) {
			b.secondary = append(b.secondary, c)
		}
	}
	return nil
}

// WithLikertLabels overrides the default five-point scale. An empty list keeps the default.
func (b *QuestionnaireBuilder) WithLikertLabels(labels []string) error {
	if len(labels) == 0 {
		return nil
	}
	if err := ValidateLikertLabels(labels); err != nil {
		return err
	}
	b.labels = labels
	return nil
}

// AddCustomQuestion appends a custom statement to a category that is part of
// the questionnaire.
func (b *QuestionnaireBuilder) AddCustomQuestion(q CustomQuestion) error {
	text := strings.TrimSpace(q.Text)
	if text == "" {
		return NewValidationError("custom question text is required")
	}
	if !containsString(b.categories(), q.Category) {
		return NewValidationError(fmt.Sprintf("category %q is not part of the questionnaire", q.Category))
	}
	q.Text = text
	b.custom = append(b.custom, q)
	return nil
}

func (b *QuestionnaireBuilder) categories() []string {
	out := append([]string(nil), BasicCategories...)
	for _, c := range SecondaryCategories {
		if containsString(b.secondary, c) {
			out = append(out, c)
		}
	}
	return out
}

// Build validates everything and assigns ids. Nothing is returned unless the
// whole questionnaire is valid.
func (b *QuestionnaireBuilder) Build(newID func() string, now time.Time) (*QuestionnaireDraft, error) {
	if b.appName == "" {
		return nil, NewValidationError("app name is required")
	}
	if b.createdBy == "" {
		return nil, NewValidationError("creator is required")
	}
	scale, err := NewLikertScale(b.labels)
	if err != nil {
		return nil, err
	}

	q := &Questionnaire{
		ID:        newID(),
		Title:     fmt.Sprintf("%s TAM Questionnaire", b.appName),
		Details:   b.details,
		CreatedBy: b.createdBy,
		CreatedAt: now,
	}

	var questions []Question
	add := func(category, text string, custom, negative bool) {
		questions = append(questions, Question{
			ID:              newID(),
			QuestionnaireID: q.ID,
			Text:            text,
			Position:        len(questions) + 1,
			Category:        category,
			IsCustom:        custom,
			IsNegative:      negative,
		})
	}
	for _, category := range b.categories() {
		for _, t := range TemplatesFor(category) {
			add(category, t.Render(b.appName), false, t.IsNegative)
		}
		for _, c := range b.custom {
			if c.Category == category {
				add(category, c.Text, true, c.IsNegative)
			}
		}
	}

	scale.AssignIDs(newID(), q.ID, newID)
	return &QuestionnaireDraft{Questionnaire: q, Questions: questions, Scale: scale}, nil
}
