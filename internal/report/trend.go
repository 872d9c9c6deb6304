package report

import (
	"sort"

	"github.com/kalorieapp/kalorie-cli/internal/model"
)

// TrendPoint is one weigh-in annotated with that date's calorie intake, nil
// when nothing was logged that day.
type TrendPoint struct {
	model.WeightLog
	Calories *int
}

type Trend struct {
	Points []TrendPoint
	// Delta is last minus first weight, meaningful only with two or more
	// points.
	Delta    float64
	HasDelta bool
}

// WeightTrendSeries orders the weight logs by creation time ascending and
// joins each against the daily calorie totals, correlating weight change
// with intake.
func WeightTrendSeries(logs []model.WeightLog, dailyTotals map[string]int) Trend {
	points := make([]TrendPoint, 0, len(logs))
	for _, l := range logs {
		p := TrendPoint{WeightLog: l}
		if cal, ok := dailyTotals[l.Date]; ok {
			c := cal
			p.Calories = &c
		}
		points = append(points, p)
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].CreatedAt < points[j].CreatedAt
	})
	trend := Trend{Points: points}
	if len(points) >= 2 {
		trend.Delta = points[len(points)-1].WeightKg - points[0].WeightKg
		trend.HasDelta = true
	}
	return trend
}
