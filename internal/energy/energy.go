// Package energy holds the anthropometric calculations: BMI, Mifflin-St Jeor
// BMR, TDEE, and the activity-level table. Everything here is a pure function
// of its inputs.
package energy

import (
	"fmt"
	"math"
	"strings"

	"github.com/kalorieapp/kalorie-cli/internal/model"
)

type ActivityLevel struct {
	ID          string
	Label       string
	Description string
	Factor      float64
}

// Levels in ascending factor order. The IDs are the persisted values.
var Levels = []ActivityLevel{
	{ID: "sedentary", Label: "Sedentary", Description: "Little or no exercise", Factor: 1.2},
	{ID: "light", Label: "Lightly active", Description: "Light exercise 1-3 days/week", Factor: 1.375},
	{ID: "moderate", Label: "Moderately active", Description: "Moderate exercise 3-5 days/week", Factor: 1.55},
	{ID: "active", Label: "Very active", Description: "Hard exercise 6-7 days/week", Factor: 1.725},
	{ID: "extreme", Label: "Extremely active", Description: "Very hard exercise, physical job", Factor: 1.9},
}

const DefaultLevelID = "moderate"

func LevelByID(id string) (ActivityLevel, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, l := range Levels {
		if l.ID == id {
			return l, nil
		}
	}
	return ActivityLevel{}, fmt.Errorf("unknown activity level %q (use sedentary, light, moderate, active, or extreme)", id)
}

// BMI computes weight/height² in kg/m². ok is false when either input is
// non-positive or not a finite number.
func BMI(weightKg, heightCm float64) (float64, bool) {
	if !isFinite(weightKg) || !isFinite(heightCm) || weightKg <= 0 || heightCm <= 0 {
		return 0, false
	}
	m := heightCm / 100
	return weightKg / (m * m), true
}

// BMR estimates resting energy expenditure via Mifflin-St Jeor:
// 10w + 6.25h - 5a, +5 for male and -161 for female.
func BMR(weightKg, heightCm, ageYears float64, sex model.Sex) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*ageYears
	if sex == model.SexMale {
		return bmr + 5
	}
	return bmr - 161
}

// TDEE scales BMR by the activity factor, rounded to whole kcal.
func TDEE(bmr, factor float64) int {
	return int(math.Round(bmr * factor))
}

type Category struct {
	Label string
	// Max is the exclusive upper BMI bound; the last band is open-ended and
	// uses 100 as a practical ceiling, not a validation bound.
	Max float64
}

var categories = []Category{
	{Label: "Underweight", Max: 18.5},
	{Label: "Normal weight", Max: 25},
	{Label: "Overweight", Max: 30},
	{Label: "Obese", Max: 100},
}

// CategoryFor returns the first category whose upper bound exceeds bmi;
// values at or above every bound fall in the last band.
func CategoryFor(bmi float64) Category {
	for _, c := range categories {
		if bmi < c.Max {
			return c
		}
	}
	return categories[len(categories)-1]
}

// KcalPerKg is the rule-of-thumb energy content of one kg of body weight.
// It is an approximation, not a guaranteed weight-change predictor.
const KcalPerKg = 7700

// WeeklyWeightDelta estimates the weekly weight change in kg implied by an
// average daily calorie surplus or deficit.
func WeeklyWeightDelta(avgDailyDiff float64) float64 {
	return avgDailyDiff * 7 / KcalPerKg
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
