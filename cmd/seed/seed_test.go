package main

import (
	"os"
	"path/filepath"
	"testing"

	"tam-survey/internal/domain"
	"tam-survey/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSeedFile_Demo(t *testing.T) {
	seed, err := loadSeedFile(filepath.Join("..", "..", seedFilePath))
	require.NoError(t, err)
	assert.NotEmpty(t, seed.Admin.UserID)
	require.NotEmpty(t, seed.Questionnaires)

	q := seed.Questionnaires[0]
	assert.NotEmpty(t, q.Request.AppName)
	for _, c := range q.Request.SecondaryCategories {
		assert.True(t, domain.IsKnownCategory(c), c)
	}
	assert.GreaterOrEqual(t, len(q.Respondents), 3)
}

func TestLoadSeedFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := loadSeedFile(filepath.Join(dir, "missing.json"))
	assert.ErrorContains(t, err, "failed to read seed file")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
	_, err = loadSeedFile(bad)
	assert.ErrorContains(t, err, "failed to unmarshal")

	noAdmin := filepath.Join(dir, "no_admin.json")
	require.NoError(t, os.WriteFile(noAdmin, []byte(`{"questionnaires": []}`), 0o600))
	_, err = loadSeedFile(noAdmin)
	assert.ErrorContains(t, err, "no admin user")
}

func TestAnswersFor(t *testing.T) {
	questions := []dto.QuestionResponse{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	answers := answersFor(questions, []int{5, 4})
	assert.Equal(t, []dto.AnswerInput{
		{QuestionID: "a", Value: 5},
		{QuestionID: "b", Value: 4},
		{QuestionID: "c", Value: 5},
	}, answers)

	assert.Nil(t, answersFor(questions, nil))
}
