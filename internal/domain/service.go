package domain

import "context"

// TransactionManager runs fn inside one database transaction; repositories
// called with the ctx passed to fn join it.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// QuestionnaireRepository defines the interface for questionnaire persistence
type QuestionnaireRepository interface {
	// Create persists the questionnaire row
	Create(ctx context.Context, q *Questionnaire) error

	// CreateQuestions persists all questions of a questionnaire
	CreateQuestions(ctx context.Context, questions []Question) error

	// GetByID returns nil, nil when the questionnaire does not exist
	GetByID(ctx context.Context, id string) (*Questionnaire, error)

	// List returns every questionnaire, newest first
	List(ctx context.Context) ([]Questionnaire, error)

	// ListAvailableForUser returns questionnaires the user has not submitted yet
	ListAvailableForUser(ctx context.Context, userID string) ([]Questionnaire, error)

	// Delete removes the questionnaire and everything that hangs off it
	Delete(ctx context.Context, id string) error

	// GetQuestions returns questions ordered by position
	GetQuestions(ctx context.Context, questionnaireID string) ([]Question, error)

	// CreateLikertScale persists the scale and its options
	CreateLikertScale(ctx context.Context, scale *LikertScale) error

	// GetLikertScale returns nil, nil when the questionnaire has no scale
	GetLikertScale(ctx context.Context, questionnaireID string) (*LikertScale, error)
}

// ResponseRepository defines the interface for response persistence
type ResponseRepository interface {
	Create(ctx context.Context, r *Response) error
	GetByID(ctx context.Context, id string) (*Response, error)
	// FindDraft returns the unsubmitted response of the pair, or nil.
	FindDraft(ctx context.Context, userID, questionnaireID string) (*Response, error)
	HasSubmitted(ctx context.Context, userID, questionnaireID string) (bool, error)
	// MarkSubmitted only flips a draft; it never reverts a submission.
	MarkSubmitted(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]Response, error)
	// CountSubmitted counts distinct submitted responses of a questionnaire.
	CountSubmitted(ctx context.Context, questionnaireID string) (int, error)
}

// AnswerRepository defines the interface for answer persistence
type AnswerRepository interface {
	// UpsertAnswers inserts or replaces one answer per (response, question).
	UpsertAnswers(ctx context.Context, answers []Answer) error
	ListByResponse(ctx context.Context, responseID string) ([]AnswerDetail, error)
	ListSubmittedByQuestionnaire(ctx context.Context, questionnaireID string) ([]AnswerDetail, error)
	// CategoryMeans returns per-response category means with reverse scoring applied.
	CategoryMeans(ctx context.Context, questionnaireID string) ([]CategoryMean, error)
}

// ProfileRepository defines the interface for profile persistence
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*Profile, error)
	Upsert(ctx context.Context, p *Profile) error
}
