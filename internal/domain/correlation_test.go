package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpearman(t *testing.T) {
	r, p, err := Spearman([]float64{1, 2, 3, 4, 5}, []float64{5, 6, 7, 8, 7})
	require.NoError(t, err)
	assert.InDelta(t, 0.8207826816681233, r, 1e-9)
	assert.InDelta(t, 0.0885870053, p, 1e-6)

	r, p, err = Spearman(
		[]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		[]float64{2, 1, 4, 3, 6, 5, 8, 7, 10, 9},
	)
	require.NoError(t, err)
	assert.InDelta(t, 0.9393939393939394, r, 1e-9)
	assert.InDelta(t, 5.484e-5, p, 1e-7)
}

func TestSpearman_PerfectMonotonic(t *testing.T) {
	r, p, err := Spearman([]float64{1, 2, 3, 4}, []float64{10, 20, 30, 1000})
	require.NoError(t, err)
	assert.Equal(t, 1.0, r)
	assert.Equal(t, 0.0, p)

	r, _, err = Spearman([]float64{1, 2, 3, 4}, []float64{4, 3, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, -1.0, r)
}

func TestSpearman_EdgeCases(t *testing.T) {
	_, _, err := Spearman([]float64{1, 2}, []float64{1, 2})
	assert.True(t, IsCode(err, CodeInsufficientData))

	_, _, err = Spearman([]float64{1, 2, 3}, []float64{1, 2})
	assert.True(t, IsCode(err, CodeValidation))

	r, p, err := Spearman([]float64{3, 3, 3, 3}, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(r))
	assert.True(t, math.IsNaN(p))
}

func TestAverageRanks(t *testing.T) {
	assert.Equal(t, []float64{1, 2, 3.5, 5, 3.5}, averageRanks([]float64{5, 6, 7, 8, 7}))
	assert.Equal(t, []float64{2, 2, 2}, averageRanks([]float64{1, 1, 1}))
}

// tamTable builds n responses where AT tracks BI closely and PU/PEOU vary.
func tamTable(n int, extra ...string) *MeansTable {
	var records []CategoryMean
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("r%02d", i)
		base := 1 + float64(i%5)
		records = append(records,
			CategoryMean{ResponseID: id, Category: PerceivedUsefulness, MeanScore: base + float64(i%3)/4},
			CategoryMean{ResponseID: id, Category: PerceivedEaseOfUse, MeanScore: 5 - base/2},
			CategoryMean{ResponseID: id, Category: Attitude, MeanScore: base},
			CategoryMean{ResponseID: id, Category: BehavioralIntention, MeanScore: base + float64(i%2)/10},
		)
		for j, c := range extra {
			records = append(records, CategoryMean{ResponseID: id, Category: c, MeanScore: float64((i + j) % 4)})
		}
	}
	return PivotCategoryMeans(records)
}

func TestCalcSpearmanCorrelation(t *testing.T) {
	table := tamTable(12)

	row, err := CalcSpearmanCorrelation(table, Attitude, BehavioralIntention)
	require.NoError(t, err)
	assert.Equal(t, "AT", row.DependentVariable)
	assert.Equal(t, "BI", row.ResponseVariable)
	assert.Equal(t, 12, row.SampleSize)
	assert.GreaterOrEqual(t, row.SpearmanR, -1.0)
	assert.LessOrEqual(t, row.SpearmanR, 1.0)
	assert.GreaterOrEqual(t, row.PValue, 0.0)
	assert.LessOrEqual(t, row.PValue, 1.0)

	_, err = CalcSpearmanCorrelation(table, Attitude, Trust)
	assert.True(t, IsCode(err, CodeNotFound))
}

func TestCorrelationAnalyzer_InsufficientSample(t *testing.T) {
	analyzer := NewCorrelationAnalyzer(0, BasicCategories)
	for _, n := range []int{0, 1, 6, 9} {
		report := analyzer.Analyze(tamTable(n), n, BasicCategories)
		assert.True(t, report.Skipped, "n=%d", n)
		assert.Equal(t, ReasonInsufficientSample, report.Reason)
		assert.Empty(t, report.Rows)
		assert.Equal(t, DefaultMinResponses, report.MinSample)
	}
}

func TestCorrelationAnalyzer_Plan(t *testing.T) {
	analyzer := NewCorrelationAnalyzer(10, BasicCategories)

	report := analyzer.Analyze(tamTable(12), 12, BasicCategories)
	require.False(t, report.Skipped)
	require.Len(t, report.Rows, 3)
	assert.Equal(t, [2]string{"AT", "BI"}, [2]string{report.Rows[0].DependentVariable, report.Rows[0].ResponseVariable})
	assert.Equal(t, [2]string{"PU", "AT"}, [2]string{report.Rows[1].DependentVariable, report.Rows[1].ResponseVariable})
	assert.Equal(t, [2]string{"PEOU", "AT"}, [2]string{report.Rows[2].DependentVariable, report.Rows[2].ResponseVariable})

	categories := append(append([]string(nil), BasicCategories...), Trust, ComputerAnxiety, SubjectiveNorm)
	report = analyzer.Analyze(tamTable(12, Trust, ComputerAnxiety, SubjectiveNorm), 12, categories)
	require.Len(t, report.Rows, 6)
	// antecedents follow group order, not questionnaire order
	assert.Equal(t, "SN", report.Rows[3].DependentVariable)
	assert.Equal(t, "PU", report.Rows[3].ResponseVariable)
	assert.Equal(t, "T", report.Rows[4].DependentVariable)
	assert.Equal(t, "PU", report.Rows[4].ResponseVariable)
	assert.Equal(t, "CA", report.Rows[5].DependentVariable)
	assert.Equal(t, "PEOU", report.Rows[5].ResponseVariable)
}

func TestCorrelationAnalyzer_ConfigurableThreshold(t *testing.T) {
	analyzer := NewCorrelationAnalyzer(5, BasicCategories)
	report := analyzer.Analyze(tamTable(6), 6, BasicCategories)
	assert.False(t, report.Skipped)
	assert.Len(t, report.Rows, 3)
}

func TestCorrelationRow_JSONNaN(t *testing.T) {
	row := CorrelationRow{ResponseVariable: "BI", DependentVariable: "AT", SpearmanR: math.NaN(), PValue: math.NaN(), SampleSize: 10}
	data, err := json.Marshal(row)
	require.NoError(t, err)
	assert.JSONEq(t, `{"response_variable":"BI","dependent_variable":"AT","spearman_r":null,"p_value":null,"n":10}`, string(data))

	var decoded CorrelationRow
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, math.IsNaN(decoded.SpearmanR))
	assert.Equal(t, "AT", decoded.DependentVariable)

	data, err = json.Marshal(CorrelationRow{ResponseVariable: "BI", DependentVariable: "AT", SpearmanR: 0.5, PValue: 0.01})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"spearman_r":0.5`)
}
