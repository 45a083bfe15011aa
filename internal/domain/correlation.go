package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// DefaultMinResponses is the distinct submitted response count below which
	// correlation analysis is skipped.
	DefaultMinResponses = 10

	// ReasonInsufficientSample is reported on a skipped analysis.
	ReasonInsufficientSample = "insufficient sample"

	minSpearmanObservations = 3
)

// CorrelationRow is one line of the correlation report. Both variables are in
// acronym form. NaN statistics (constant input) are encoded as null.
type CorrelationRow struct {
	ResponseVariable  string
	DependentVariable string
	SpearmanR         float64
	PValue            float64
	SampleSize        int
}

type correlationRowJSON struct {
	ResponseVariable  string   `json:"response_variable"`
	DependentVariable string   `json:"dependent_variable"`
	SpearmanR         *float64 `json:"spearman_r"`
	PValue            *float64 `json:"p_value"`
	SampleSize        int      `json:"n"`
}

func nullableFloat(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func (r CorrelationRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(correlationRowJSON{
		ResponseVariable:  r.ResponseVariable,
		DependentVariable: r.DependentVariable,
		SpearmanR:         nullableFloat(r.SpearmanR),
		PValue:            nullableFloat(r.PValue),
		SampleSize:        r.SampleSize,
	})
}

func (r *CorrelationRow) UnmarshalJSON(data []byte) error {
	var raw correlationRowJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.ResponseVariable = raw.ResponseVariable
	r.DependentVariable = raw.DependentVariable
	r.SampleSize = raw.SampleSize
	r.SpearmanR, r.PValue = math.NaN(), math.NaN()
	if raw.SpearmanR != nil {
		r.SpearmanR = *raw.SpearmanR
	}
	if raw.PValue != nil {
		r.PValue = *raw.PValue
	}
	return nil
}

// CorrelationReport is the outcome of one analysis run. A skipped run carries
// the reason and no rows.
type CorrelationReport struct {
	Skipped    bool             `json:"skipped"`
	Reason     string           `json:"reason,omitempty"`
	SampleSize int              `json:"sample_size"`
	MinSample  int              `json:"min_sample"`
	Rows       []CorrelationRow `json:"rows"`
}

// averageRanks assigns 1-based ranks, giving tied values the mean of their positions.
func averageRanks(values []float64) []float64 {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return values[idx[a]] < values[idx[b]] })

	ranks := make([]float64, len(values))
	for i := 0; i < len(idx); {
		j := i
		for j+1 < len(idx) && values[idx[j+1]] == values[idx[i]] {
			j++
		}
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[idx[k]] = avg
		}
		i = j + 1
	}
	return ranks
}

// Spearman returns the rank correlation of x and y with its two-sided p-value.
// A constant input yields NaN for both.
func Spearman(x, y []float64) (float64, float64, error) {
	if len(x) != len(y) {
		return 0, 0, NewValidationError(fmt.Sprintf("spearman inputs differ in length: %d vs %d", len(x), len(y)))
	}
	n := len(x)
	if n < minSpearmanObservations {
		return 0, 0, NewInsufficientDataError(fmt.Sprintf("spearman needs at least %d observations, got %d",
			minSpearmanObservations, n))
	}

	r := stat.Correlation(averageRanks(x), averageRanks(y), nil)
	if math.IsNaN(r) {
		return math.NaN(), math.NaN(), nil
	}
	// perfectly monotonic data can come out a few ulps away from ±1
	if math.Abs(r) > 1-1e-12 {
		return math.Copysign(1, r), 0, nil
	}

	df := float64(n - 2)
	t := r * math.Sqrt(df/(1-r*r))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	p := 2 * dist.Survival(math.Abs(t))
	return r, math.Min(1, p), nil
}

// CalcSpearmanCorrelation correlates two categories of the means table. The
// first category is reported as the dependent variable.
func CalcSpearmanCorrelation(table *MeansTable, dependent, response string) (CorrelationRow, error) {
	depCol, respCol := CategoryAcronym(dependent), CategoryAcronym(response)
	xs, ys, err := table.PairwiseComplete(depCol, respCol)
	if err != nil {
		return CorrelationRow{}, err
	}
	r, p, err := Spearman(xs, ys)
	if err != nil {
		return CorrelationRow{}, err
	}
	return CorrelationRow{
		ResponseVariable:  respCol,
		DependentVariable: depCol,
		SpearmanR:         r,
		PValue:            p,
		SampleSize:        len(xs),
	}, nil
}

// CorrelationAnalyzer runs the fixed TAM correlation plan.
type CorrelationAnalyzer struct {
	MinResponses int
	Basic        []string
}

// NewCorrelationAnalyzer falls back to DefaultMinResponses for a non-positive threshold.
func NewCorrelationAnalyzer(minResponses int, basic []string) *CorrelationAnalyzer {
	if minResponses <= 0 {
		minResponses = DefaultMinResponses
	}
	if len(basic) == 0 {
		basic = BasicCategories
	}
	return &CorrelationAnalyzer{MinResponses: minResponses, Basic: basic}
}

type correlationPair struct {
	dependent string
	response  string
}

// plan lists the pairs to compute for a questionnaire with the given
// categories. Core pairs and antecedent targets must be basic categories.
func (a *CorrelationAnalyzer) plan(categories []string) []correlationPair {
	var pairs []correlationPair
	for _, core := range []correlationPair{
		{Attitude, BehavioralIntention},
		{PerceivedUsefulness, Attitude},
		{PerceivedEaseOfUse, Attitude},
	} {
		if containsString(a.Basic, core.dependent) && containsString(a.Basic, core.response) {
			pairs = append(pairs, core)
		}
	}
	for _, group := range []struct {
		target  string
		members []string
	}{
		{PerceivedUsefulness, UsefulnessAntecedents},
		{PerceivedEaseOfUse, EaseOfUseAntecedents},
	} {
		if !containsString(a.Basic, group.target) {
			continue
		}
		for _, member := range group.members {
			if containsString(categories, member) {
				pairs = append(pairs, correlationPair{member, group.target})
			}
		}
	}
	return pairs
}

// Analyze builds the correlation report. categories are the categories the
// questionnaire actually contains. Pairs with a column absent from the table
// are left out; pairs with fewer than three complete observations are
// reported with null statistics.
func (a *CorrelationAnalyzer) Analyze(table *MeansTable, distinctResponses int, categories []string) CorrelationReport {
	report := CorrelationReport{SampleSize: distinctResponses, MinSample: a.MinResponses, Rows: []CorrelationRow{}}
	if distinctResponses < a.MinResponses {
		report.Skipped = true
		report.Reason = ReasonInsufficientSample
		return report
	}

	for _, pair := range a.plan(categories) {
		depCol, respCol := CategoryAcronym(pair.dependent), CategoryAcronym(pair.response)
		if !table.HasColumn(depCol) || !table.HasColumn(respCol) {
			continue
		}
		row, err := CalcSpearmanCorrelation(table, pair.dependent, pair.response)
		if err != nil {
			xs, _, _ := table.PairwiseComplete(depCol, respCol)
			row = CorrelationRow{
				ResponseVariable:  respCol,
				DependentVariable: depCol,
				SpearmanR:         math.NaN(),
				PValue:            math.NaN(),
				SampleSize:        len(xs),
			}
		}
		report.Rows = append(report.Rows, row)
	}
	return report
}
