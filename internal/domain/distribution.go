package domain

import "fmt"

// LabelCount is one bar of a distribution, kept in scale order.
type LabelCount struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Count int    `json:"count"`
}

// CountByLabel tallies how often each scale label was selected. Every label of
// the scale is present in the result, with zero for unselected labels.
// Counting uses the selected value, not the reverse-scored one.
func CountByLabel(scale *LikertScale, answers []AnswerRecord) (map[string]int, error) {
	counts := make(map[string]int, scale.Size())
	for _, label := range scale.Labels() {
		counts[label] = 0
	}
	for _, a := range answers {
		opt, err := scale.OptionByValue(a.Value)
		if err != nil {
			return nil, NewNotFoundError(fmt.Sprintf("answer to question %s: %s", a.QuestionID, err.Error()))
		}
		counts[opt.Label]++
	}
	return counts, nil
}

// OrderedCounts lays out counts in scale order for charts and reports.
func OrderedCounts(scale *LikertScale, counts map[string]int) []LabelCount {
	out := make([]LabelCount, 0, scale.Size())
	for _, opt := range scale.Options() {
		out = append(out, LabelCount{Label: opt.Label, Value: opt.Value, Count: counts[opt.Label]})
	}
	return out
}

// AnswersInCategory keeps answers whose question belongs to category.
func AnswersInCategory(answers []AnswerRecord, category string) []AnswerRecord {
	var out []AnswerRecord
	for _, a := range answers {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out
}

// AnswersForQuestion keeps answers to a single question.
func AnswersForQuestion(answers []AnswerRecord, questionID string) []AnswerRecord {
	var out []AnswerRecord
	for _, a := range answers {
		if a.QuestionID == questionID {
			out = append(out, a)
		}
	}
	return out
}
