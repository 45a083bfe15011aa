package domain

import "strings"

// AppNamePlaceholder is substituted with the evaluated application's name.
const AppNamePlaceholder = "{app_name}"

// QuestionTemplate is one catalogue statement for a construct.
type QuestionTemplate struct {
	Text       string
	IsNegative bool
}

// Render substitutes the application name into the template text.
func (t QuestionTemplate) Render(appName string) string {
	return strings.ReplaceAll(t.Text, AppNamePlaceholder, appName)
}

func positive(texts ...string) []QuestionTemplate {
	out := make([]QuestionTemplate, len(texts))
	for i, text := range texts {
		out[i] = QuestionTemplate{Text: text}
	}
	return out
}

func negative(texts ...string) []QuestionTemplate {
	out := positive(texts...)
	for i := range out {
		out[i].IsNegative = true
	}
	return out
}

var questionTemplates = map[string][]QuestionTemplate{
	PerceivedUsefulness: positive(
		"Using {app_name} improves my work performance.",
		"{app_name} improves the results of my work.",
		"I found {app_name} useful.",
		"Using {app_name} allows me to complete my tasks faster.",
	),
	PerceivedEaseOfUse: positive(
		"{app_name} is easy to use.",
		"The training provided for using {app_name} is easy to follow.",
		"My interaction with {app_name} is understandable and clear.",
		"It is easy to use {app_name} to complete related tasks.",
	),
	Attitude: positive(
		"Using {app_name} is a good idea for me.",
		"I like to use {app_name}.",
		"Using {app_name} is fun.",
		"{app_name} is an attractive way to complete related tasks.",
	),
	BehavioralIntention: positive(
		"I predict I will use {app_name} in the distant future.",
		"I will often use {app_name} in the future, if I can.",
		"I intend to continue using {app_name}.",
		"I will recommend the {app_name} to others.",
	),
	TechnologySupport: positive(
		"{app_name} technical problem hotline is available at any time.",
		"{app_name} technical team offers good technical support.",
	),
	UserSatisfaction: positive(
		"The use of {app_name} makes me completely satisfied.",
		"I feel very confident in using {app_name}.",
	),
	ComputerAnxiety: negative(
		"I feel apprehensive about using {app_name}.",
		"I am afraid of making a mistake using {app_name} that I cannot correct.",
	),
	ComputerSelfEfficacy: positive(
		"I expect to become proficient in using {app_name}.",
		"I would feel confident that I can use {app_name}.",
	),
	Compatibility: positive(
		"Using {app_name} is appropriate for my lifestyle.",
		"Using {app_name} is appropriate for the completion of my related tasks.",
	),
	InformationQuality: positive(
		"Information of {app_name} is accurate and relevant.",
		"Information of {app_name} is rich in detail.",
	),
	SystemQuality: positive(
		"{app_name} allows information to be readily accessible to you.",
		"{app_name} is easy to use at the first time I access it.",
	),
	Risk: negative(
		"I believe the use of {app_name} comes with too many risks.",
		"I believe the use of {app_name} is time consuming.",
	),
	SubjectiveNorm: positive(
		"People who are important to me would think that I should use {app_name}.",
		"Using {app_name} would make me prestigious among my peers.",
	),
	BehavioralControl: positive(
		"I have absolute control while using {app_name}.",
		"I am capable of using {app_name}.",
	),
	Trust: negative(
		"I have serious doubts about using {app_name}.",
		"I do not trust {app_name}.",
	),
}

// TemplatesFor returns the catalogue statements of a construct.
func TemplatesFor(category string) []QuestionTemplate {
	return append([]QuestionTemplate(nil), questionTemplates[category]...)
}
