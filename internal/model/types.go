package model

// Food is a row of the static catalog. The name doubles as the identity key
// for favorites and recents (case-sensitive exact match).
type Food struct {
	Name            string  `json:"name"`
	CaloriesPer100g float64 `json:"calories_per_100g"`
}

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

type MealSlot string

const (
	MealBreakfast MealSlot = "breakfast"
	MealLunch     MealSlot = "lunch"
	MealDinner    MealSlot = "dinner"
	MealSnack     MealSlot = "snack"
)

// MealSlots lists the slots in display order.
var MealSlots = []MealSlot{MealBreakfast, MealLunch, MealDinner, MealSnack}

// NormalizeMealSlot maps unknown or empty slots to snack.
func NormalizeMealSlot(s MealSlot) MealSlot {
	switch s {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return s
	default:
		return MealSnack
	}
}

type Profile struct {
	Name     string  `json:"name"`
	WeightKg float64 `json:"weight"`
	HeightCm float64 `json:"height"`
	AgeYears float64 `json:"age"`
	Sex      Sex     `json:"sex"`
}

type FoodEntry struct {
	ID          int64    `json:"id"`
	FoodName    string   `json:"food"`
	AmountGrams float64  `json:"amount"`
	Calories    int      `json:"calories"`
	Date        string   `json:"date"`
	Meal        MealSlot `json:"meal"`
	Time        string   `json:"time"`
}

type WeightLog struct {
	Date      string  `json:"date"`
	WeightKg  float64 `json:"weight"`
	CreatedAt int64   `json:"ts"`
}
