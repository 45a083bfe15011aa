package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionnaireBuilder_Build(t *testing.T) {
	b := NewQuestionnaireBuilder("Moodle", "Course platform", "admin-1")
	require.NoError(t, b.WithSecondary(Trust, ComputerAnxiety, Trust))
	require.NoError(t, b.AddCustomQuestion(CustomQuestion{Category: Attitude, Text: " I enjoy Moodle quizzes. "}))
	require.NoError(t, b.AddCustomQuestion(CustomQuestion{Category: Trust, Text: "Moodle keeps my data safe."}))

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	draft, err := b.Build(sequentialIDs("id-"), now)
	require.NoError(t, err)

	assert.Equal(t, "Moodle TAM Questionnaire", draft.Questionnaire.Title)
	assert.Equal(t, "Course platform", draft.Questionnaire.Details)
	assert.Equal(t, now, draft.Questionnaire.CreatedAt)

	// 16 basic + 2 CA + 2 T templates + 2 custom
	require.Len(t, draft.Questions, 22)
	for i, q := range draft.Questions {
		assert.Equal(t, i+1, q.Position)
		assert.Equal(t, draft.Questionnaire.ID, q.QuestionnaireID)
		assert.NotContains(t, q.Text, AppNamePlaceholder)
	}
	assert.Equal(t, "Using Moodle improves my work performance.", draft.Questions[0].Text)

	// custom attitude question follows the attitude templates
	custom := draft.Questions[12]
	assert.Equal(t, Attitude, custom.Category)
	assert.True(t, custom.IsCustom)
	assert.Equal(t, "I enjoy Moodle quizzes.", custom.Text)

	// secondary constructs follow catalogue order: CA before T
	assert.Equal(t, ComputerAnxiety, draft.Questions[17].Category)
	assert.True(t, draft.Questions[17].IsNegative)
	assert.Equal(t, Trust, draft.Questions[19].Category)
	assert.Equal(t, Trust, draft.Questions[21].Category)
	assert.True(t, draft.Questions[21].IsCustom)
	assert.False(t, draft.Questions[21].IsNegative)

	assert.Equal(t, 5, draft.Scale.Size())
	assert.Equal(t, draft.Questionnaire.ID, draft.Scale.QuestionnaireID)
	for _, opt := range draft.Scale.Options() {
		assert.NotEmpty(t, opt.ID)
		assert.Equal(t, draft.Scale.ID, opt.LikertScaleID)
	}
	assert.Equal(t, []string{Attitude}, QuestionCategories(draft.Questions[8:13]))
}

func TestQuestionnaireBuilder_Validation(t *testing.T) {
	t.Run("unknown secondary", func(t *testing.T) {
		b := NewQuestionnaireBuilder("App", "", "admin")
		assert.True(t, IsCode(b.WithSecondary(Attitude), CodeValidation))
		assert.True(t, IsCode(b.WithSecondary("Fun"), CodeValidation))
	})

	t.Run("custom question outside questionnaire", func(t *testing.T) {
		b := NewQuestionnaireBuilder("App", "", "admin")
		err := b.AddCustomQuestion(CustomQuestion{Category: Risk, Text: "Risky?"})
		assert.True(t, IsCode(err, CodeValidation))
	})

	t.Run("empty custom text", func(t *testing.T) {
		b := NewQuestionnaireBuilder("App", "", "admin")
		err := b.AddCustomQuestion(CustomQuestion{Category: Attitude, Text: "   "})
		assert.True(t, IsCode(err, CodeValidation))
	})

	t.Run("bad likert labels", func(t *testing.T) {
		b := NewQuestionnaireBuilder("App", "", "admin")
		assert.True(t, IsCode(b.WithLikertLabels([]string{"Yes", "Yes"}), CodeValidation))
	})

	t.Run("missing app name", func(t *testing.T) {
		_, err := NewQuestionnaireBuilder("  ", "", "admin").Build(sequentialIDs("x"), time.Now())
		assert.True(t, IsCode(err, CodeValidation))
	})

	t.Run("builders do not share state", func(t *testing.T) {
		a := NewQuestionnaireBuilder("A", "", "admin")
		require.NoError(t, a.AddCustomQuestion(CustomQuestion{Category: Attitude, Text: "Only in A"}))
		draft, err := NewQuestionnaireBuilder("B", "", "admin").Build(sequentialIDs("x"), time.Now())
		require.NoError(t, err)
		assert.Len(t, draft.Questions, 16)
	})
}

func TestQuestionnaireBuilder_CustomScale(t *testing.T) {
	b := NewQuestionnaireBuilder("App", "", "admin")
	require.NoError(t, b.WithLikertLabels([]string{"Never", "Sometimes", "Always"}))
	draft, err := b.Build(sequentialIDs("x"), time.Now())
	require.NoError(t, err)
	assert.Equal(t, []string{"Never", "Sometimes", "Always"}, draft.Scale.Labels())
}
