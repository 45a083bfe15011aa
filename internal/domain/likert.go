package domain

import (
	"fmt"
	"sort"
	"strings"
)

const (
	MinLikertLevels = 2
	MaxLikertLevels = 7
)

// DefaultLikertLabels is the five-point agreement scale used when the
// administrator does not configure one.
var DefaultLikertLabels = []string{
	"Strongly disagree",
	"Disagree",
	"Neutral",
	"Agree",
	"Strongly agree",
}

// LikertScaleOption is one level of a scale. Value is the 1-based ordinal.
type LikertScaleOption struct {
	ID            string
	LikertScaleID string
	Value         int
	Label         string
}

// LikertScale is the ordered answer scale of one questionnaire.
// It is immutable once built.
type LikertScale struct {
	ID              string
	QuestionnaireID string
	options         []LikertScaleOption
	byID            map[string]int
}

// NewLikertScale builds a scale from labels; values are assigned 1..N in list order.
func NewLikertScale(labels []string) (*LikertScale, error) {
	if err := ValidateLikertLabels(labels); err != nil {
		return nil, err
	}
	options := make([]LikertScaleOption, len(labels))
	for i, label := range labels {
		options[i] = LikertScaleOption{Value: i + 1, Label: strings.TrimSpace(label)}
	}
	return &LikertScale{options: options, byID: map[string]int{}}, nil
}

// ValidateLikertLabels checks level count and label uniqueness.
func ValidateLikertLabels(labels []string) error {
	if len(labels) < MinLikertLevels || len(labels) > MaxLikertLevels {
		return NewValidationError(fmt.Sprintf("likert scale must have between %d and %d levels, got %d",
			MinLikertLevels, MaxLikertLevels, len(labels)))
	}
	seen := make(map[string]struct{}, len(labels))
	for i, label := range labels {
		trimmed := strings.TrimSpace(label)
		if trimmed == "" {
			return NewValidationError(fmt.Sprintf("likert label at level %d is empty", i+1))
		}
		if _, dup := seen[trimmed]; dup {
			return NewValidationError(fmt.Sprintf("duplicate likert label %q", trimmed))
		}
		seen[trimmed] = struct{}{}
	}
	return nil
}

// NewLikertScaleFromOptions rebuilds a stored scale. Options may come in any
// order but their values must form the contiguous range 1..N.
func NewLikertScaleFromOptions(id string, options []LikertScaleOption) (*LikertScale, error) {
	if len(options) < MinLikertLevels || len(options) > MaxLikertLevels {
		return nil, NewValidationError(fmt.Sprintf("likert scale %s has %d options", id, len(options)))
	}
	sorted := make([]LikertScaleOption, len(options))
	copy(sorted, options)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Value < sorted[j].Value })

	byID := make(map[string]int, len(sorted))
	for i, opt := range sorted {
		if opt.Value != i+1 {
			return nil, NewValidationError(fmt.Sprintf("likert scale %s values are not contiguous 1..%d", id, len(sorted)))
		}
		if opt.ID != "" {
			byID[opt.ID] = i
		}
	}
	return &LikertScale{ID: id, options: sorted, byID: byID}, nil
}

// Size is the number of levels.
func (s *LikertScale) Size() int {
	return len(s.options)
}

// Options returns a copy of the options ordered by value.
func (s *LikertScale) Options() []LikertScaleOption {
	out := make([]LikertScaleOption, len(s.options))
	copy(out, s.options)
	return out
}

// Labels returns labels ordered by value.
func (s *LikertScale) Labels() []string {
	labels := make([]string, len(s.options))
	for i, opt := range s.options {
		labels[i] = opt.Label
	}
	return labels
}

// ResolveValue returns the ordinal value of an option belonging to this scale.
func (s *LikertScale) ResolveValue(optionID string) (int, error) {
	idx, ok := s.byID[optionID]
	if !ok {
		return 0, NewNotFoundError(fmt.Sprintf("likert option %s does not belong to the scale", optionID))
	}
	return s.options[idx].Value, nil
}

// ValueByLabel finds the value of the option with exactly this label.
func (s *LikertScale) ValueByLabel(label string) (int, bool) {
	for _, opt := range s.options {
		if opt.Label == label {
			return opt.Value, true
		}
	}
	return 0, false
}

// OptionByValue returns the option with the given ordinal value.
func (s *LikertScale) OptionByValue(value int) (LikertScaleOption, error) {
	if value < 1 || value > len(s.options) {
		return LikertScaleOption{}, NewNotFoundError(fmt.Sprintf("likert value %d is outside 1..%d", value, len(s.options)))
	}
	return s.options[value-1], nil
}

// AssignIDs sets the persistence ids for the scale and its options.
func (s *LikertScale) AssignIDs(scaleID string, questionnaireID string, newID func() string) {
	s.ID = scaleID
	s.QuestionnaireID = questionnaireID
	s.byID = make(map[string]int, len(s.options))
	for i := range s.options {
		s.options[i].ID = newID()
		s.options[i].LikertScaleID = scaleID
		s.byID[s.options[i].ID] = i
	}
}
