// Package catalog supplies the static, read-only food table. The bundled
// dataset ships with the binary; a JSON file with the same shape can replace
// it per invocation.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/kalorieapp/kalorie-cli/internal/model"
)

//go:embed foods.json
var embeddedFoods []byte

// Default returns the bundled food table. Source order is preserved; it is
// the tie-break order for search ranking.
func Default() ([]model.Food, error) {
	foods, err := decode(embeddedFoods)
	if err != nil {
		return nil, fmt.Errorf("decode bundled food table: %w", err)
	}
	return foods, nil
}

// LoadFile reads a replacement food table from a JSON array of
// {"name": ..., "calories_per_100g": ...} records.
func LoadFile(path string) ([]model.Food, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read food table %s: %w", path, err)
	}
	foods, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode food table %s: %w", path, err)
	}
	if len(foods) == 0 {
		return nil, fmt.Errorf("food table %s is empty", path)
	}
	return foods, nil
}

func decode(raw []byte) ([]model.Food, error) {
	var foods []model.Food
	if err := json.Unmarshal(raw, &foods); err != nil {
		return nil, err
	}
	for i, f := range foods {
		if strings.TrimSpace(f.Name) == "" {
			return nil, fmt.Errorf("food %d has a blank name", i)
		}
		if f.CaloriesPer100g < 0 {
			return nil, fmt.Errorf("food %q has negative calories", f.Name)
		}
	}
	return foods, nil
}
