package store_test

import (
	"testing"

	"github.com/kalorieapp/kalorie-cli/internal/model"
	"github.com/kalorieapp/kalorie-cli/internal/store"
)

func TestAddEntryComputesCalories(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore()

	entry, ok := s.AddEntry(model.Food{Name: "Oatmeal", CaloriesPer100g: 200}, 150, model.MealBreakfast)
	if !ok {
		t.Fatalf("add entry rejected")
	}
	if entry.Calories != 300 {
		t.Fatalf("calories = %d, want 300", entry.Calories)
	}
	if entry.Date != "09.03.2026" || entry.Time != "12:30" {
		t.Fatalf("entry stamped %s %s, want clock date and time", entry.Date, entry.Time)
	}
	if entry.Meal != model.MealBreakfast {
		t.Fatalf("meal = %q", entry.Meal)
	}
}

func TestAddEntryRoundsHalfUp(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore()
	// 36 kcal/100g * 12.5 g = 4.5, rounds to 5.
	entry, _ := s.AddEntry(model.Food{Name: "Chicken Soup", CaloriesPer100g: 36}, 12.5, model.MealLunch)
	if entry.Calories != 5 {
		t.Fatalf("calories = %d, want 5", entry.Calories)
	}
}

func TestAddEntryGuards(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore()
	if _, ok := s.AddEntry(model.Food{Name: "  "}, 100, model.MealSnack); ok {
		t.Fatalf("blank food accepted")
	}
	if _, ok := s.AddEntry(model.Food{Name: "Banana", CaloriesPer100g: 89}, 0, model.MealSnack); ok {
		t.Fatalf("zero amount accepted")
	}
	if len(s.Entries()) != 0 {
		t.Fatalf("rejected entries stored")
	}
}

func TestAddEntryIDsAreUniqueAndOrdered(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore()
	// The fixed clock makes every entry land in the same millisecond.
	var prev int64
	for i := 0; i < 5; i++ {
		entry, _ := s.AddEntry(model.Food{Name: "Banana", CaloriesPer100g: 89}, 50, model.MealSnack)
		if entry.ID <= prev {
			t.Fatalf("entry %d id %d not above previous %d", i, entry.ID, prev)
		}
		prev = entry.ID
	}
}

func TestAddCustomEntry(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore()
	entry, ok := s.AddCustomEntry("Grandma's Stew", 150, 200, model.MealDinner)
	if !ok {
		t.Fatalf("custom entry rejected")
	}
	if entry.Calories != 300 || entry.FoodName != "Grandma's Stew" {
		t.Fatalf("entry = %+v", entry)
	}
	if _, ok := s.AddCustomEntry("Mystery", 0, 100, model.MealDinner); ok {
		t.Fatalf("zero-calorie custom food accepted")
	}
	recents := s.Recents()
	if len(recents) != 1 || recents[0].Name != "Grandma's Stew" {
		t.Fatalf("custom food not recorded as recent: %v", recents)
	}
}

func TestRemoveEntry(t *testing.T) {
	t.Parallel()
	s, backend := newTestStore()
	first, _ := s.AddEntry(model.Food{Name: "Apple", CaloriesPer100g: 52}, 100, model.MealSnack)
	second, _ := s.AddEntry(model.Food{Name: "Banana", CaloriesPer100g: 89}, 100, model.MealSnack)

	if !s.RemoveEntry(first.ID) {
		t.Fatalf("remove existing entry failed")
	}
	if s.RemoveEntry(first.ID) {
		t.Fatalf("second removal of the same id succeeded")
	}
	entries := s.Entries()
	if len(entries) != 1 || entries[0].ID != second.ID {
		t.Fatalf("entries after removal = %v", entries)
	}

	reopened := store.Open(backend)
	if got := reopened.Entries(); len(got) != 1 || got[0].ID != second.ID {
		t.Fatalf("removal not persisted: %v", got)
	}
}

func TestToggleFavorite(t *testing.T) {
	t.Parallel()
	s, backend := newTestStore()
	if !s.ToggleFavorite("Apple") {
		t.Fatalf("first toggle must add")
	}
	if !s.ToggleFavorite("Banana") {
		t.Fatalf("first toggle must add")
	}
	if s.ToggleFavorite("Apple") {
		t.Fatalf("second toggle must remove")
	}
	if s.IsFavorite("Apple") || !s.IsFavorite("Banana") {
		t.Fatalf("membership wrong after toggles")
	}
	if got := s.Favorites(); len(got) != 1 || got[0] != "Banana" {
		t.Fatalf("favorites = %v", got)
	}

	if got := store.Open(backend).Favorites(); len(got) != 1 || got[0] != "Banana" {
		t.Fatalf("favorites not persisted: %v", got)
	}
}

func TestRecentsDedupeAndCap(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore()
	a := model.Food{Name: "Apple", CaloriesPer100g: 52}
	b := model.Food{Name: "Banana", CaloriesPer100g: 89}

	s.RecordRecent(a)
	s.RecordRecent(b)
	s.RecordRecent(a)
	got := s.Recents()
	if len(got) != 2 || got[0].Name != "Apple" || got[1].Name != "Banana" {
		t.Fatalf("recents = %v, want [Apple Banana]", got)
	}

	for i := 0; i < 20; i++ {
		s.RecordRecent(model.Food{Name: string(rune('A' + i)), CaloriesPer100g: 1})
	}
	if got := s.Recents(); len(got) != 15 {
		t.Fatalf("recents length = %d, want cap of 15", len(got))
	}
}
