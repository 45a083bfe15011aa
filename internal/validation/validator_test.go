package validation

import (
	"testing"

	"tam-survey/internal/domain"
	"tam-survey/internal/dto"
	"tam-survey/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	v := NewValidator()

	t.Run("valid questionnaire request", func(t *testing.T) {
		err := v.ValidateStruct(&dto.CreateQuestionnaireRequest{
			AppName:             "Moodle",
			SecondaryCategories: []string{domain.Trust},
			CustomQuestions:     []dto.CustomQuestionRequest{{Category: domain.Attitude, Text: "I enjoy it"}},
		})
		assert.NoError(t, err)
	})

	t.Run("missing app name", func(t *testing.T) {
		err := v.ValidateStruct(&dto.CreateQuestionnaireRequest{})
		require.Error(t, err)
		var derr *domain.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, domain.CodeValidation, derr.Code)
		assert.Equal(t, "required", derr.Context["app_name"])
	})

	t.Run("too many likert labels", func(t *testing.T) {
		err := v.ValidateStruct(&dto.CreateQuestionnaireRequest{
			AppName:      "Moodle",
			LikertLabels: []string{"1", "2", "3", "4", "5", "6", "7", "8"},
		})
		var derr *domain.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "max", derr.Context["likert_labels"])
	})

	t.Run("nested answer value", func(t *testing.T) {
		err := v.ValidateStruct(&dto.SaveResponseRequest{
			Answers: []dto.AnswerInput{{QuestionID: "q1", Value: 3}, {QuestionID: "q2", Value: 0}},
		})
		var derr *domain.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "required", derr.Context["answers[1].value"])
		assert.Len(t, derr.Context, 1)
	})

	t.Run("birthdate format", func(t *testing.T) {
		assert.NoError(t, v.ValidateStruct(&dto.ProfileRequest{FullName: "Ada", Birthdate: "1990-03-04"}))
		err := v.ValidateStruct(&dto.ProfileRequest{FullName: "Ada", Birthdate: "04/03/1990"})
		assert.True(t, domain.IsCode(err, domain.CodeValidation))
	})
}

func TestValidateID(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.ValidateID("id", util.NewULID()))
	assert.True(t, domain.IsCode(v.ValidateID("id", ""), domain.CodeValidation))
	assert.True(t, domain.IsCode(v.ValidateID("id", "not-a-ulid"), domain.CodeValidation))
}
