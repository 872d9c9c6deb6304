package kalorie

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kalorieapp/kalorie-cli/internal/app"
	"github.com/kalorieapp/kalorie-cli/internal/catalog"
	"github.com/kalorieapp/kalorie-cli/internal/model"
	"github.com/kalorieapp/kalorie-cli/internal/search"
	"github.com/kalorieapp/kalorie-cli/internal/storage"
	"github.com/kalorieapp/kalorie-cli/internal/store"
)

func resolveStorePath() (string, error) {
	if storePath != "" {
		return storePath, nil
	}
	return app.DefaultStorePath()
}

func withStore(run func(*store.Store) error) error {
	path, err := resolveStorePath()
	if err != nil {
		return err
	}
	if err := app.EnsureStoreDir(path); err != nil {
		return err
	}
	backend, err := storage.Open(path)
	if err != nil {
		return err
	}
	defer backend.Close()

	return run(store.Open(backend))
}

func loadCatalog() ([]model.Food, error) {
	if catalogPath != "" {
		return catalog.LoadFile(catalogPath)
	}
	return catalog.Default()
}

// resolveFood finds the catalog food matching name exactly, falling back to
// ranked suggestions in the error when there is no exact match.
func resolveFood(foods []model.Food, name string) (model.Food, error) {
	for _, f := range foods {
		if f.Name == name {
			return f, nil
		}
	}
	suggestions := search.Rank(name, foods)
	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	if len(suggestions) == 0 {
		return model.Food{}, fmt.Errorf("no food named %q in the catalog", name)
	}
	names := make([]string, 0, len(suggestions))
	for _, f := range suggestions {
		names = append(names, strconv.Quote(f.Name))
	}
	return model.Food{}, fmt.Errorf("no food named %q in the catalog; did you mean %s?", name, strings.Join(names, ", "))
}

func parseMealSlot(value string) (model.MealSlot, error) {
	slot := model.MealSlot(strings.ToLower(strings.TrimSpace(value)))
	switch slot {
	case model.MealBreakfast, model.MealLunch, model.MealDinner, model.MealSnack:
		return slot, nil
	}
	return "", fmt.Errorf("invalid meal %q (use breakfast, lunch, dinner, or snack)", value)
}

func parsePositiveFloatArg(name, value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s %q (must be a number > 0)", name, value)
	}
	return v, nil
}

func parseInt64Arg(name, value string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return v, nil
}
