package kalorie

import (
	"fmt"

	"github.com/kalorieapp/kalorie-cli/internal/report"
	"github.com/kalorieapp/kalorie-cli/internal/store"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show all logged days, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			out := cmd.OutOrStdout()
			days := report.AllDaysGrouped(s.Entries())
			if len(days) == 0 {
				fmt.Fprintln(out, "No entries yet. Run: kalorie log add <food name> --amount <grams>")
				return nil
			}
			if historyLimit > 0 && len(days) > historyLimit {
				days = days[:historyLimit]
			}
			for i, day := range days {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%s (%d kcal)\n", day.Date, day.TotalCalories)
				for _, e := range day.Entries {
					fmt.Fprintf(out, "  %s\t%s\t%.0f g\t%d kcal\n", e.Time, e.FoodName, e.AmountGrams, e.Calories)
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "show at most this many days (0 = all)")
}
