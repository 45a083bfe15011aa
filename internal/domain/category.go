package domain

// TAM constructs.
const (
	PerceivedUsefulness  = "Perceived Usefulness"
	PerceivedEaseOfUse   = "Perceived Ease of Use"
	Attitude             = "Attitude"
	BehavioralIntention  = "Behavioral Intention"
	TechnologySupport    = "Technology Support"
	UserSatisfaction     = "User Satisfaction"
	ComputerAnxiety      = "Computer Anxiety"
	ComputerSelfEfficacy = "Computer Self-Efficacy"
	Compatibility        = "Compatibility"
	InformationQuality   = "Information Quality"
	SystemQuality        = "System Quality"
	Risk                 = "Risk"
	SubjectiveNorm       = "Subjective Norm"
	BehavioralControl    = "Behavioral Control"
	Trust                = "Trust"
)

// BasicCategories are the four core constructs that make up the composite score.
var BasicCategories = []string{PerceivedUsefulness, PerceivedEaseOfUse, Attitude, BehavioralIntention}

// SecondaryCategories are the optional constructs, in catalogue order.
var SecondaryCategories = []string{
	TechnologySupport, UserSatisfaction, ComputerAnxiety, ComputerSelfEfficacy, Compatibility,
	InformationQuality, SystemQuality, Risk, SubjectiveNorm, BehavioralControl, Trust,
}

var categoryAcronyms = map[string]string{
	PerceivedUsefulness:  "PU",
	PerceivedEaseOfUse:   "PEOU",
	Attitude:             "AT",
	BehavioralIntention:  "BI",
	TechnologySupport:    "TS",
	UserSatisfaction:     "US",
	ComputerAnxiety:      "CA",
	ComputerSelfEfficacy: "CSE",
	Compatibility:        "COMP",
	InformationQuality:   "IQ",
	SystemQuality:        "SQ",
	Risk:                 "R",
	SubjectiveNorm:       "SN",
	BehavioralControl:    "BC",
	Trust:                "T",
}

// UsefulnessAntecedents are correlated against Perceived Usefulness.
var UsefulnessAntecedents = []string{SubjectiveNorm, InformationQuality, Compatibility, Trust, Risk}

// EaseOfUseAntecedents are correlated against Perceived Ease of Use.
var EaseOfUseAntecedents = []string{
	TechnologySupport, ComputerSelfEfficacy, ComputerAnxiety, UserSatisfaction, SystemQuality, BehavioralControl,
}

// CategoryAcronym maps a construct to its short column name. Categories outside
// the catalogue keep their own name.
func CategoryAcronym(category string) string {
	if acronym, ok := categoryAcronyms[category]; ok {
		return acronym
	}
	return category
}

// IsKnownCategory reports whether category is part of the construct catalogue.
func IsKnownCategory(category string) bool {
	_, ok := categoryAcronyms[category]
	return ok
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
