package report_test

import (
	"testing"

	"github.com/kalorieapp/kalorie-cli/internal/model"
	"github.com/kalorieapp/kalorie-cli/internal/report"
)

func entry(date string, meal model.MealSlot, calories int) model.FoodEntry {
	return model.FoodEntry{FoodName: "Food", Calories: calories, Date: date, Meal: meal}
}

func TestTodayEntriesAndTotal(t *testing.T) {
	t.Parallel()
	entries := []model.FoodEntry{
		entry("09.03.2026", model.MealBreakfast, 300),
		entry("08.03.2026", model.MealLunch, 700),
		entry("09.03.2026", model.MealDinner, 500),
	}
	today := report.TodayEntries(entries, "09.03.2026")
	if len(today) != 2 {
		t.Fatalf("got %d entries, want 2", len(today))
	}
	if got := report.TodayTotal(entries, "09.03.2026"); got != 800 {
		t.Fatalf("total = %d, want 800", got)
	}
	if got := report.TodayTotal(entries, "10.03.2026"); got != 0 {
		t.Fatalf("empty day total = %d, want 0", got)
	}
}

func TestMealBreakdownHasAllSlots(t *testing.T) {
	t.Parallel()
	entries := []model.FoodEntry{
		entry("09.03.2026", model.MealBreakfast, 300),
		entry("09.03.2026", "brunch", 150),
	}
	groups := report.MealBreakdown(entries, "09.03.2026")
	if len(groups) != 4 {
		t.Fatalf("got %d slots, want all 4", len(groups))
	}
	if got := groups[model.MealBreakfast].TotalCalories; got != 300 {
		t.Fatalf("breakfast total = %d, want 300", got)
	}
	// An unknown slot counts as a snack.
	if got := groups[model.MealSnack].TotalCalories; got != 150 {
		t.Fatalf("snack total = %d, want 150", got)
	}
	if len(groups[model.MealLunch].Entries) != 0 || len(groups[model.MealDinner].Entries) != 0 {
		t.Fatalf("empty slots must stay empty")
	}
}

func TestAllDaysGroupedCalendarOrder(t *testing.T) {
	t.Parallel()
	// Lexical order would put 02.01.2026 before 28.12.2025's neighbours.
	entries := []model.FoodEntry{
		entry("28.12.2025", model.MealLunch, 600),
		entry("02.01.2026", model.MealLunch, 500),
		entry("30.12.2025", model.MealLunch, 400),
		entry("02.01.2026", model.MealDinner, 300),
	}
	days := report.AllDaysGrouped(entries)
	if len(days) != 3 {
		t.Fatalf("got %d days, want 3", len(days))
	}
	wantOrder := []string{"02.01.2026", "30.12.2025", "28.12.2025"}
	for i, want := range wantOrder {
		if days[i].Date != want {
			t.Fatalf("day %d = %s, want %s", i, days[i].Date, want)
		}
	}
	if days[0].TotalCalories != 800 || len(days[0].Entries) != 2 {
		t.Fatalf("newest day group = %+v", days[0])
	}
}

func TestDailyCalorieTotals(t *testing.T) {
	t.Parallel()
	totals := report.DailyCalorieTotals([]model.FoodEntry{
		entry("09.03.2026", model.MealBreakfast, 300),
		entry("09.03.2026", model.MealDinner, 500),
		entry("08.03.2026", model.MealLunch, 700),
	})
	if totals["09.03.2026"] != 800 || totals["08.03.2026"] != 700 {
		t.Fatalf("totals = %v", totals)
	}
}

func TestSuggestedMealSlot(t *testing.T) {
	t.Parallel()
	cases := []struct {
		hour int
		want model.MealSlot
	}{
		{0, model.MealBreakfast},
		{9, model.MealBreakfast},
		{10, model.MealLunch},
		{13, model.MealLunch},
		{14, model.MealDinner},
		{17, model.MealDinner},
		{18, model.MealSnack},
		{23, model.MealSnack},
	}
	for _, tc := range cases {
		if got := report.SuggestedMealSlot(tc.hour); got != tc.want {
			t.Fatalf("hour %d = %q, want %q", tc.hour, got, tc.want)
		}
	}
}
