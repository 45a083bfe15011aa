package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemScore_ReverseSymmetry(t *testing.T) {
	for n := MinLikertLevels; n <= MaxLikertLevels; n++ {
		for v := 1; v <= n; v++ {
			assert.Equal(t, n+1, ItemScore(v, n, true)+ItemScore(n+1-v, n, true), "n=%d v=%d", n, v)
			assert.Equal(t, v, ItemScore(v, n, false), "n=%d v=%d", n, v)
		}
	}
}

func TestCompositeScore_SingleAnswer(t *testing.T) {
	answers := []AnswerRecord{{QuestionID: "q1", Category: PerceivedUsefulness, Value: 4}}

	sums, err := CategorySums(answers, 5, []string{PerceivedUsefulness})
	require.NoError(t, err)
	assert.Equal(t, 4, sums[PerceivedUsefulness])

	score, err := CompositeScore(answers, 5, []string{PerceivedUsefulness})
	require.NoError(t, err)
	assert.InDelta(t, 0.8, score, 1e-12)
}

func TestCategorySums_NegativeRisk(t *testing.T) {
	answers := []AnswerRecord{{QuestionID: "q1", Category: Risk, IsNegative: true, Value: 5}}
	sums, err := CategorySums(answers, 5, []string{Risk})
	require.NoError(t, err)
	assert.Equal(t, 1, sums[Risk])
}

func TestCategorySums_ZeroFillAndFilter(t *testing.T) {
	answers := []AnswerRecord{
		{QuestionID: "q1", Category: PerceivedUsefulness, Value: 3},
		{QuestionID: "q2", Category: Trust, IsNegative: true, Value: 2},
	}
	sums, err := CategorySums(answers, 5, BasicCategories)
	require.NoError(t, err)
	assert.Len(t, sums, 4)
	assert.Equal(t, 3, sums[PerceivedUsefulness])
	assert.Equal(t, 0, sums[Attitude])
	_, hasTrust := sums[Trust]
	assert.False(t, hasTrust)

	all, err := CategorySums(answers, 5, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{PerceivedUsefulness: 3, Trust: 4}, all)
}

func TestCategorySums_ValueOutOfRange(t *testing.T) {
	_, err := CategorySums([]AnswerRecord{{QuestionID: "q1", Category: Attitude, Value: 6}}, 5, nil)
	assert.True(t, IsCode(err, CodeValidation))
}

func TestCompositeScore_FilteredDenominator(t *testing.T) {
	answers := []AnswerRecord{
		{QuestionID: "q1", Category: PerceivedUsefulness, Value: 5},
		{QuestionID: "q2", Category: Attitude, Value: 5},
		{QuestionID: "q3", Category: Trust, Value: 1},
		{QuestionID: "q4", Category: Trust, Value: 1},
	}
	score, err := CompositeScore(answers, 5, BasicCategories)
	require.NoError(t, err)
	// only the two basic answers count: 10 / (2*5)
	assert.InDelta(t, 1.0, score, 1e-12)
}

func TestCompositeScore_Errors(t *testing.T) {
	answers := []AnswerRecord{{QuestionID: "q1", Category: Trust, Value: 3}}

	_, err := CompositeScore(answers, 5, nil)
	assert.True(t, IsCode(err, CodeValidation))

	_, err = CompositeScore(answers, 5, BasicCategories)
	assert.True(t, IsCode(err, CodeInsufficientData))
}

func randomBasicAnswers(r *rand.Rand, n, scaleSize int) []AnswerRecord {
	answers := make([]AnswerRecord, n)
	for i := range answers {
		answers[i] = AnswerRecord{
			QuestionID: string(rune('a' + i%26)),
			Category:   BasicCategories[r.Intn(len(BasicCategories))],
			IsNegative: r.Intn(3) == 0,
			Value:      1 + r.Intn(scaleSize),
		}
	}
	return answers
}

func TestCompositeScore_Bounds(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		size := MinLikertLevels + r.Intn(MaxLikertLevels-MinLikertLevels+1)
		answers := randomBasicAnswers(r, 1+r.Intn(40), size)
		score, err := CompositeScore(answers, size, BasicCategories)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestScores_IndependentOfLabels(t *testing.T) {
	original, err := NewLikertScale(DefaultLikertLabels)
	require.NoError(t, err)
	original.AssignIDs("s1", "q", sequentialIDs("o"))
	relabeled, err := NewLikertScale([]string{"1", "2", "3", "4", "5"})
	require.NoError(t, err)
	relabeled.AssignIDs("s1", "q", sequentialIDs("o"))

	answers := []AnswerRecord{
		{QuestionID: "q1", Category: PerceivedUsefulness, OptionID: "o2"},
		{QuestionID: "q2", Category: Attitude, OptionID: "o5", IsNegative: true},
		{QuestionID: "q3", Category: BehavioralIntention, OptionID: "o4"},
	}

	a, err := ResolveAnswerValues(original, answers)
	require.NoError(t, err)
	b, err := ResolveAnswerValues(relabeled, answers)
	require.NoError(t, err)

	sa, err := CompositeScore(a, original.Size(), BasicCategories)
	require.NoError(t, err)
	sb, err := CompositeScore(b, relabeled.Size(), BasicCategories)
	require.NoError(t, err)
	assert.Equal(t, sa, sb)

	ca, _ := CategorySums(a, 5, BasicCategories)
	cb, _ := CategorySums(b, 5, BasicCategories)
	assert.Equal(t, ca, cb)
}

func TestResolveAnswerValues_UnknownOption(t *testing.T) {
	scale, err := NewLikertScale(DefaultLikertLabels)
	require.NoError(t, err)
	scale.AssignIDs("s1", "q", sequentialIDs("o"))

	_, err = ResolveAnswerValues(scale, []AnswerRecord{{QuestionID: "q1", OptionID: "missing"}})
	assert.True(t, IsCode(err, CodeNotFound))
}

func TestCategorySums_AdditiveWithComposite(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 100; i++ {
		answers := randomBasicAnswers(r, 1+r.Intn(30), 5)
		sums, err := CategorySums(answers, 5, BasicCategories)
		require.NoError(t, err)
		total := 0
		for _, c := range BasicCategories {
			total += sums[c]
		}
		score, err := CompositeScore(answers, 5, BasicCategories)
		require.NoError(t, err)
		assert.InDelta(t, float64(total)/float64(len(answers)*5), score, 1e-12)
	}
}
