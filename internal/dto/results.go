package dto

import "tam-survey/internal/domain"

// CategoryScore is the summed item score of one category.
type CategoryScore struct {
	Category string `json:"category"`
	Acronym  string `json:"acronym"`
	Score    int    `json:"score"`
}

// Distribution is the label histogram of one category or question.
type Distribution struct {
	Key    string              `json:"key"`
	Title  string              `json:"title"`
	Counts []domain.LabelCount `json:"counts"`
}

// ResultsResponse represents the computed results of a questionnaire
// @Description Scores, answer distributions and correlation report
type ResultsResponse struct {
	QuestionnaireID             string                   `json:"questionnaire_id"`
	Title                       string                   `json:"title"`
	CreatedByName               string                   `json:"created_by_name,omitempty"`
	ScaleSize                   int                      `json:"scale_size"`
	SubmittedResponses          int                      `json:"submitted_responses"`
	BasicCategoryScores         []CategoryScore          `json:"basic_category_scores"`
	SecondaryCategoryScores     []CategoryScore          `json:"secondary_category_scores"`
	CompositeScore              *float64                 `json:"composite_score"`
	CompositeMessage            string                   `json:"composite_message,omitempty"`
	CategoryDistributions       []Distribution           `json:"category_distributions"`
	CustomQuestionDistributions []Distribution           `json:"custom_question_distributions"`
	Correlation                 domain.CorrelationReport `json:"correlation"`
}

// ChartsResponse carries echarts option objects ready for the client to render
// @Description Chart options for the results page
type ChartsResponse struct {
	QuestionnaireID string                 `json:"questionnaire_id"`
	CategoryScores  map[string]interface{} `json:"category_scores"`
	Distributions   []NamedChart           `json:"distributions"`
}

// NamedChart is one chart option keyed by what it plots.
type NamedChart struct {
	Key   string                 `json:"key"`
	Chart map[string]interface{} `json:"chart"`
}
