package domain

import "fmt"

// AnswerRecord is one answered item as the scoring engine sees it. Either Value
// is set, or OptionID is set and resolved through the scale first.
type AnswerRecord struct {
	ResponseID string
	QuestionID string
	Category   string
	IsNegative bool
	IsCustom   bool
	OptionID   string
	Value      int
}

// ItemScore applies reverse scoring on an N-point scale.
func ItemScore(value, scaleSize int, negative bool) int {
	if negative {
		return (scaleSize + 1) - value
	}
	return value
}

// ResolveAnswerValues fills Value from OptionID for records that carry only an
// option reference. Unknown options fail; there is no default value.
func ResolveAnswerValues(scale *LikertScale, answers []AnswerRecord) ([]AnswerRecord, error) {
	out := make([]AnswerRecord, len(answers))
	for i, a := range answers {
		if a.Value == 0 {
			v, err := scale.ResolveValue(a.OptionID)
			if err != nil {
				return nil, err
			}
			a.Value = v
		}
		out[i] = a
	}
	return out, nil
}

func checkValue(a AnswerRecord, scaleSize int) error {
	if a.Value < 1 || a.Value > scaleSize {
		return NewValidationError(fmt.Sprintf("answer to question %s has value %d outside 1..%d",
			a.QuestionID, a.Value, scaleSize))
	}
	return nil
}

// CategorySums sums item scores per category. With a non-empty categories list
// the result has exactly those keys (zero-filled) and other answers are ignored;
// otherwise every category present in answers is reported.
func CategorySums(answers []AnswerRecord, scaleSize int, categories []string) (map[string]int, error) {
	sums := make(map[string]int, len(categories))
	for _, c := range categories {
		sums[c] = 0
	}
	for _, a := range answers {
		if len(categories) > 0 {
			if _, ok := sums[a.Category]; !ok {
				continue
			}
		}
		if err := checkValue(a, scaleSize); err != nil {
			return nil, err
		}
		sums[a.Category] += ItemScore(a.Value, scaleSize, a.IsNegative)
	}
	return sums, nil
}

// CompositeScore is the normalized TAM score over the basic categories:
// sum of their category sums divided by (qualifying answers * scale size).
// Only answers in basic categories count towards the denominator.
func CompositeScore(answers []AnswerRecord, scaleSize int, basic []string) (float64, error) {
	if len(basic) == 0 {
		return 0, NewValidationError("basic categories must not be empty")
	}
	sums, err := CategorySums(answers, scaleSize, basic)
	if err != nil {
		return 0, err
	}
	qualifying := 0
	for _, a := range answers {
		if containsString(basic, a.Category) {
			qualifying++
		}
	}
	if qualifying == 0 {
		return 0, NewInsufficientDataError("no answers in the basic categories")
	}
	total := 0
	for _, c := range basic {
		total += sums[c]
	}
	return float64(total) / float64(qualifying*scaleSize), nil
}
