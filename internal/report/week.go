package report

import (
	"math"
	"time"

	"github.com/kalorieapp/kalorie-cli/internal/model"
)

type WeekDay struct {
	Date     string
	DayName  string
	Calories int
	IsToday  bool
}

type WeekStats struct {
	Days []WeekDay
	// Average over days that have data; days without entries are excluded
	// from the average rather than counted as zero-calorie days.
	Average      int
	Total        int
	DaysWithData int
	// MaxCalories is floored at 1 so chart scaling never divides by zero.
	MaxCalories int
}

// WeeklyStats covers the trailing 7 calendar days ending at now's date,
// oldest first.
func WeeklyStats(entries []model.FoodEntry, now time.Time) WeekStats {
	totals := DailyCalorieTotals(entries)
	stats := WeekStats{MaxCalories: 1}
	sum := 0
	for i := 6; i >= 0; i-- {
		d := now.AddDate(0, 0, -i)
		day := WeekDay{
			Date:     model.DateString(d),
			DayName:  d.Weekday().String()[:3],
			Calories: totals[model.DateString(d)],
			IsToday:  i == 0,
		}
		stats.Days = append(stats.Days, day)
		stats.Total += day.Calories
		if day.Calories > 0 {
			stats.DaysWithData++
			sum += day.Calories
		}
		if day.Calories > stats.MaxCalories {
			stats.MaxCalories = day.Calories
		}
	}
	if stats.DaysWithData > 0 {
		stats.Average = int(math.Round(float64(sum) / float64(stats.DaysWithData)))
	}
	return stats
}
