package report

import (
	"fmt"

	"github.com/go-analyze/charts"
)

// RenderWeightChart draws the weight-trend series as a PNG line chart.
// Requires at least two points; a single weigh-in has no trend to draw.
func RenderWeightChart(trend Trend) ([]byte, error) {
	if len(trend.Points) < 2 {
		return nil, fmt.Errorf("need at least 2 weight logs to chart a trend")
	}

	values := make([]float64, 0, len(trend.Points))
	labels := make([]string, 0, len(trend.Points))
	for _, p := range trend.Points {
		values = append(values, p.WeightKg)
		labels = append(labels, p.Date)
	}

	title := "Weight trend"
	if trend.HasDelta {
		title = fmt.Sprintf("Weight trend (%+.1f kg)", trend.Delta)
	}

	p, err := charts.LineRender(
		[][]float64{values},
		charts.TitleOptionFunc(charts.TitleOption{Text: title}),
		charts.XAxisLabelsOptionFunc(labels),
		charts.LegendLabelsOptionFunc([]string{"Weight (kg)"}),
	)
	if err != nil {
		return nil, fmt.Errorf("create weight chart: %w", err)
	}
	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("render weight chart: %w", err)
	}
	return buf, nil
}
