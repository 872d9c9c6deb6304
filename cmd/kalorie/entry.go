package kalorie

import (
	"fmt"

	"github.com/kalorieapp/kalorie-cli/internal/model"
	"github.com/kalorieapp/kalorie-cli/internal/report"
	"github.com/kalorieapp/kalorie-cli/internal/store"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log food entries",
}

var (
	logAmount float64
	logMeal   string
)

var logAddCmd = &cobra.Command{
	Use:   "add <food name>",
	Short: "Log a catalog food by its exact name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if logAmount <= 0 {
			return fmt.Errorf("--amount must be > 0 grams")
		}
		foods, err := loadCatalog()
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			food, err := resolveFood(foods, args[0])
			if err != nil {
				return err
			}
			meal, err := mealOrSuggested(s)
			if err != nil {
				return err
			}
			entry, ok := s.AddEntry(food, logAmount, meal)
			if !ok {
				return fmt.Errorf("entry was not added")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %.0fg %s: %d kcal (%s, id %d)\n", entry.AmountGrams, entry.FoodName, entry.Calories, entry.Meal, entry.ID)
			return nil
		})
	},
}

var (
	customName   string
	customPer100 float64
)

var logCustomCmd = &cobra.Command{
	Use:   "custom",
	Short: "Log a one-off food that is not in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		if customName == "" {
			return fmt.Errorf("--name is required")
		}
		if customPer100 <= 0 {
			return fmt.Errorf("--kcal must be > 0 (kcal per 100g)")
		}
		if logAmount <= 0 {
			return fmt.Errorf("--amount must be > 0 grams")
		}
		return withStore(func(s *store.Store) error {
			meal, err := mealOrSuggested(s)
			if err != nil {
				return err
			}
			entry, ok := s.AddCustomEntry(customName, customPer100, logAmount, meal)
			if !ok {
				return fmt.Errorf("entry was not added")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %.0fg %s: %d kcal (%s, id %d)\n", entry.AmountGrams, entry.FoodName, entry.Calories, entry.Meal, entry.ID)
			return nil
		})
	},
}

var logListDate string

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries for one day (default today)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			date := logListDate
			if date == "" {
				date = s.Today()
			} else if _, err := model.ParseDateString(date); err != nil {
				return err
			}
			entries := report.TodayEntries(s.Entries(), date)
			if len(entries) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No entries on %s\n", date)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tTIME\tMEAL\tFOOD\tAMOUNT\tKCAL")
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%.0fg\t%d\n", e.ID, e.Time, e.Meal, e.FoodName, e.AmountGrams, e.Calories)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %d kcal\n", report.TodayTotal(s.Entries(), date))
			return nil
		})
	},
}

var logRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove an entry by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("entry id", args[0])
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			if !s.RemoveEntry(id) {
				fmt.Fprintf(cmd.OutOrStdout(), "No entry %d\n", id)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed entry %d\n", id)
			return nil
		})
	},
}

// mealOrSuggested parses --meal, defaulting to the time-of-day suggestion.
func mealOrSuggested(s *store.Store) (model.MealSlot, error) {
	if logMeal == "" {
		return report.SuggestedMealSlot(s.Now().Hour()), nil
	}
	return parseMealSlot(logMeal)
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logAddCmd, logCustomCmd, logListCmd, logRemoveCmd)

	logAddCmd.Flags().Float64Var(&logAmount, "amount", 0, "Amount in grams")
	logAddCmd.Flags().StringVar(&logMeal, "meal", "", "Meal slot (breakfast, lunch, dinner, snack; default by time of day)")
	logCustomCmd.Flags().StringVar(&customName, "name", "", "Food name")
	logCustomCmd.Flags().Float64Var(&customPer100, "kcal", 0, "Calories per 100g")
	logCustomCmd.Flags().Float64Var(&logAmount, "amount", 0, "Amount in grams")
	logCustomCmd.Flags().StringVar(&logMeal, "meal", "", "Meal slot (breakfast, lunch, dinner, snack; default by time of day)")
	logListCmd.Flags().StringVar(&logListDate, "date", "", "Date DD.MM.YYYY (default today)")
}
