package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{"without paramsKey", "results", "questionnaire", "01HX", nil, "tamsurvey:results:questionnaire:01HX"},
		{"with empty paramsKey", "results", "questionnaire", "01HX", []string{}, "tamsurvey:results:questionnaire:01HX"},
		{"with one paramsKey", "results", "questionnaire", "01HX", []string{"charts"}, "tamsurvey:results:questionnaire:01HX:charts"},
		{"with multiple paramsKey", "profile", "user", "u1", []string{"a", "b"}, "tamsurvey:profile:user:u1:a_b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedKey, GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...))
		})
	}
}

func TestResultsKey(t *testing.T) {
	assert.Equal(t, "tamsurvey:results:questionnaire:q1", ResultsKey("q1"))
}
