package kalorie

import (
	"fmt"

	"github.com/kalorieapp/kalorie-cli/internal/energy"
	"github.com/kalorieapp/kalorie-cli/internal/model"
	"github.com/kalorieapp/kalorie-cli/internal/report"
	"github.com/kalorieapp/kalorie-cli/internal/store"
	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's meals and calorie budget",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			out := cmd.OutOrStdout()
			entries := report.TodayEntries(s.Entries(), s.Today())
			total := report.TodayTotal(s.Entries(), s.Today())
			breakdown := report.MealBreakdown(s.Entries(), s.Today())

			fmt.Fprintf(out, "Today (%s)\n\n", s.Today())
			for _, slot := range model.MealSlots {
				group := breakdown[slot]
				if len(group.Entries) == 0 {
					continue
				}
				fmt.Fprintf(out, "%s (%d kcal)\n", mealLabel(slot), group.TotalCalories)
				for _, e := range group.Entries {
					fmt.Fprintf(out, "  %s\t%s\t%.0f g\t%d kcal\n", e.Time, e.FoodName, e.AmountGrams, e.Calories)
				}
				fmt.Fprintln(out)
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, "Nothing logged yet. Run: kalorie log add <food name> --amount <grams>")
				fmt.Fprintln(out)
			}

			fmt.Fprintf(out, "Total: %d kcal\n", total)
			p := s.Profile()
			if p == nil {
				fmt.Fprintln(out, "Set up a profile to see your daily budget: kalorie profile set")
				return nil
			}
			level, err := energy.LevelByID(s.Activity())
			if err != nil {
				return err
			}
			bmr := energy.BMR(p.WeightKg, p.HeightCm, p.AgeYears, p.Sex)
			tdee := energy.TDEE(bmr, level.Factor)
			remaining := tdee - total
			fmt.Fprintf(out, "Budget: %d kcal (%s)\n", tdee, level.Label)
			if remaining >= 0 {
				fmt.Fprintf(out, "Remaining: %d kcal\n", remaining)
			} else {
				fmt.Fprintf(out, "Over budget by %d kcal\n", -remaining)
			}
			return nil
		})
	},
}

func mealLabel(slot model.MealSlot) string {
	switch slot {
	case model.MealBreakfast:
		return "Breakfast"
	case model.MealLunch:
		return "Lunch"
	case model.MealDinner:
		return "Dinner"
	default:
		return "Snacks"
	}
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
