package chart

import (
	"tam-survey/internal/domain"
	"tam-survey/internal/dto"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// CategoryScoresBar plots the summed score of every category, basic ones first.
// The returned chart is validated and ready for JSON.
func CategoryScoresBar(title string, scores []dto.CategoryScore) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Total Score per Category",
			Subtitle: title,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Score",
			Type: "value",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	labels := make([]string, 0, len(scores))
	items := make([]opts.BarData, 0, len(scores))
	for _, s := range scores {
		labels = append(labels, s.Acronym)
		items = append(items, opts.BarData{Name: s.Category, Value: s.Score})
	}
	bar.SetXAxis(labels).AddSeries("Score", items)
	// Validate copies the axis labels into the options that JSON renders.
	bar.Validate()
	return bar
}

// DistributionBar plots how often each scale label was chosen.
func DistributionBar(title string, counts []domain.LabelCount) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Answers", Type: "value"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	labels := make([]string, 0, len(counts))
	items := make([]opts.BarData, 0, len(counts))
	for _, c := range counts {
		labels = append(labels, c.Label)
		items = append(items, opts.BarData{Value: c.Count})
	}
	bar.SetXAxis(labels).AddSeries("Answers", items)
	bar.Validate()
	return bar
}

// ResultsCharts renders the option objects of every results chart.
func ResultsCharts(results *dto.ResultsResponse) *dto.ChartsResponse {
	scores := append(append([]dto.CategoryScore(nil), results.BasicCategoryScores...), results.SecondaryCategoryScores...)

	resp := &dto.ChartsResponse{
		QuestionnaireID: results.QuestionnaireID,
		CategoryScores:  CategoryScoresBar(results.Title, scores).JSON(),
		Distributions:   make([]dto.NamedChart, 0, len(results.CategoryDistributions)+len(results.CustomQuestionDistributions)),
	}
	for _, d := range results.CategoryDistributions {
		resp.Distributions = append(resp.Distributions, dto.NamedChart{Key: d.Key, Chart: DistributionBar(d.Title, d.Counts).JSON()})
	}
	for _, d := range results.CustomQuestionDistributions {
		resp.Distributions = append(resp.Distributions, dto.NamedChart{Key: d.Key, Chart: DistributionBar(d.Title, d.Counts).JSON()})
	}
	return resp
}
