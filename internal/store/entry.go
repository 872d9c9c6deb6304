package store

import (
	"math"
	"strings"

	"github.com/kalorieapp/kalorie-cli/internal/model"
)

// AddEntry logs amountGrams of a catalog (or already-resolved) food into the
// given meal slot. Amounts <= 0 or an unset food are a silent no-op, not an
// error: the store's contract expects validated input and the guard only
// backstops it. The food is also recorded as recently used.
func (s *Store) AddEntry(food model.Food, amountGrams float64, meal model.MealSlot) (*model.FoodEntry, bool) {
	if strings.TrimSpace(food.Name) == "" || amountGrams <= 0 {
		return nil, false
	}
	now := s.now()
	entry := model.FoodEntry{
		ID:          s.nextEntryID(now.UnixMilli()),
		FoodName:    food.Name,
		AmountGrams: amountGrams,
		Calories:    int(math.Round(food.CaloriesPer100g / 100 * amountGrams)),
		Date:        model.DateString(now),
		Meal:        model.NormalizeMealSlot(meal),
		Time:        model.TimeString(now),
	}
	s.entries = append(s.entries, entry)
	s.persist(keyEntries, s.entries)
	s.RecordRecent(food)

	out := entry
	return &out, true
}

// AddCustomEntry logs a one-off food that is not part of the catalog. The
// synthesized food feeds recency tracking only; the catalog itself is
// immutable.
func (s *Store) AddCustomEntry(name string, caloriesPer100g, amountGrams float64, meal model.MealSlot) (*model.FoodEntry, bool) {
	name = strings.TrimSpace(name)
	if name == "" || caloriesPer100g <= 0 || amountGrams <= 0 {
		return nil, false
	}
	return s.AddEntry(model.Food{Name: name, CaloriesPer100g: caloriesPer100g}, amountGrams, meal)
}

// RemoveEntry deletes by id, reporting whether an entry was removed.
func (s *Store) RemoveEntry(id int64) bool {
	kept := s.entries[:0]
	removed := false
	for _, e := range s.entries {
		if e.ID == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if !removed {
		return false
	}
	s.entries = kept
	s.persist(keyEntries, s.entries)
	return true
}

// Entries returns the full append-only entry list, oldest first.
func (s *Store) Entries() []model.FoodEntry {
	out := make([]model.FoodEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Entry ids are creation timestamps in milliseconds, bumped past the current
// maximum so two entries in the same millisecond stay distinct and ordered.
func (s *Store) nextEntryID(millis int64) int64 {
	id := millis
	for _, e := range s.entries {
		if e.ID >= id {
			id = e.ID + 1
		}
	}
	return id
}

// ToggleFavorite adds the food name when absent and removes it when present,
// returning the new membership. Insertion order is preserved for display.
func (s *Store) ToggleFavorite(name string) bool {
	for i, f := range s.favorites {
		if f == name {
			s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
			s.persist(keyFavorites, s.favorites)
			return false
		}
	}
	s.favorites = append(s.favorites, name)
	s.persist(keyFavorites, s.favorites)
	return true
}

func (s *Store) IsFavorite(name string) bool {
	for _, f := range s.favorites {
		if f == name {
			return true
		}
	}
	return false
}

func (s *Store) Favorites() []string {
	out := make([]string, len(s.favorites))
	copy(out, s.favorites)
	return out
}

// RecordRecent moves food to the front of the recents list, de-duplicated by
// name and capped at 15.
func (s *Store) RecordRecent(food model.Food) {
	kept := make([]model.Food, 0, len(s.recents)+1)
	kept = append(kept, food)
	for _, f := range s.recents {
		if f.Name == food.Name {
			continue
		}
		kept = append(kept, f)
	}
	if len(kept) > maxRecentFoods {
		kept = kept[:maxRecentFoods]
	}
	s.recents = kept
	s.persist(keyRecents, s.recents)
}

// Recents returns the most-recently-used foods, most recent first.
func (s *Store) Recents() []model.Food {
	out := make([]model.Food, len(s.recents))
	copy(out, s.recents)
	return out
}
