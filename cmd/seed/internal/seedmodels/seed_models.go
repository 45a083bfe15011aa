package seedmodels

import "tam-survey/internal/dto"

// SeedUser is an account known to the identity provider.
type SeedUser struct {
	UserID  string             `json:"user_id"`
	Profile dto.ProfileRequest `json:"profile"`
}

// SeedRespondent answers a seeded questionnaire. Values are applied to the
// questions in order and repeat when there are more questions than values.
type SeedRespondent struct {
	SeedUser
	Values []int `json:"values"`
	Submit bool  `json:"submit"`
}

// SeedQuestionnaire defines one questionnaire and the responses it receives.
type SeedQuestionnaire struct {
	Request     dto.CreateQuestionnaireRequest `json:"request"`
	Respondents []SeedRespondent               `json:"respondents"`
}

// SeedFile is the top-level structure of the JSON seed file.
type SeedFile struct {
	Admin          SeedUser            `json:"admin"`
	Questionnaires []SeedQuestionnaire `json:"questionnaires"`
}
