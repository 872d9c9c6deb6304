// Package report derives all read-side views over store data. Every function
// is a pure projection recomputed on demand; with bounded local data there is
// nothing worth caching.
package report

import (
	"sort"

	"github.com/kalorieapp/kalorie-cli/internal/model"
)

// TodayEntries filters entries down to the given date key.
func TodayEntries(entries []model.FoodEntry, today string) []model.FoodEntry {
	out := make([]model.FoodEntry, 0)
	for _, e := range entries {
		if e.Date == today {
			out = append(out, e)
		}
	}
	return out
}

// TodayTotal sums the calories of one day's entries.
func TodayTotal(entries []model.FoodEntry, today string) int {
	total := 0
	for _, e := range TodayEntries(entries, today) {
		total += e.Calories
	}
	return total
}

type MealGroup struct {
	Entries       []model.FoodEntry
	TotalCalories int
}

// MealBreakdown groups one day's entries by meal slot. All four slots are
// present in the result; entries with an unknown slot count as snacks.
func MealBreakdown(entries []model.FoodEntry, today string) map[model.MealSlot]MealGroup {
	groups := map[model.MealSlot]MealGroup{}
	for _, slot := range model.MealSlots {
		groups[slot] = MealGroup{}
	}
	for _, e := range TodayEntries(entries, today) {
		slot := model.NormalizeMealSlot(e.Meal)
		g := groups[slot]
		g.Entries = append(g.Entries, e)
		g.TotalCalories += e.Calories
		groups[slot] = g
	}
	return groups
}

type DayGroup struct {
	Date          string
	Entries       []model.FoodEntry
	TotalCalories int
}

// AllDaysGrouped groups every entry by date, newest day first. Ordering
// parses the date strings; it is calendar order, not lexical order.
func AllDaysGrouped(entries []model.FoodEntry) []DayGroup {
	byDate := map[string]*DayGroup{}
	order := make([]string, 0)
	for _, e := range entries {
		g, ok := byDate[e.Date]
		if !ok {
			g = &DayGroup{Date: e.Date}
			byDate[e.Date] = g
			order = append(order, e.Date)
		}
		g.Entries = append(g.Entries, e)
		g.TotalCalories += e.Calories
	}
	sort.SliceStable(order, func(i, j int) bool {
		return model.CompareDateStrings(order[i], order[j]) > 0
	})
	out := make([]DayGroup, 0, len(order))
	for _, date := range order {
		out = append(out, *byDate[date])
	}
	return out
}

// DailyCalorieTotals maps each date to its summed calories, the join table
// between entries and weight logs.
func DailyCalorieTotals(entries []model.FoodEntry) map[string]int {
	totals := map[string]int{}
	for _, e := range entries {
		totals[e.Date] += e.Calories
	}
	return totals
}

// SuggestedMealSlot picks a default slot from the wall-clock hour. It is only
// a default, never enforced.
func SuggestedMealSlot(hour int) model.MealSlot {
	switch {
	case hour < 10:
		return model.MealBreakfast
	case hour < 14:
		return model.MealLunch
	case hour < 18:
		return model.MealDinner
	default:
		return model.MealSnack
	}
}
