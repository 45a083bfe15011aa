package main

import (
	"encoding/json"
	"fmt"
	"os"

	"tam-survey/cmd/seed/internal/seedmodels"
	"tam-survey/internal/dto"
)

func loadSeedFile(path string) (*seedmodels.SeedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	var seed seedmodels.SeedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed data: %w", err)
	}
	if seed.Admin.UserID == "" {
		return nil, fmt.Errorf("seed file %s has no admin user", path)
	}
	return &seed, nil
}

// answersFor spreads the respondent's values over the questions in order.
func answersFor(questions []dto.QuestionResponse, values []int) []dto.AnswerInput {
	if len(values) == 0 {
		return nil
	}
	answers := make([]dto.AnswerInput, len(questions))
	for i, q := range questions {
		answers[i] = dto.AnswerInput{QuestionID: q.ID, Value: values[i%len(values)]}
	}
	return answers
}
