package kalorie

import (
	"fmt"

	"github.com/kalorieapp/kalorie-cli/internal/energy"
	"github.com/kalorieapp/kalorie-cli/internal/report"
	"github.com/kalorieapp/kalorie-cli/internal/store"
	"github.com/spf13/cobra"
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the last 7 days of calories",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			out := cmd.OutOrStdout()
			stats := report.WeeklyStats(s.Entries(), s.Now())

			fmt.Fprintln(out, "DAY\tDATE\tKCAL")
			for _, d := range stats.Days {
				marker := ""
				if d.IsToday {
					marker = " *"
				}
				if d.Calories == 0 {
					fmt.Fprintf(out, "%s\t%s\t-%s\n", d.DayName, d.Date, marker)
					continue
				}
				fmt.Fprintf(out, "%s\t%s\t%d%s\n", d.DayName, d.Date, d.Calories, marker)
			}
			fmt.Fprintln(out)

			if stats.DaysWithData == 0 {
				fmt.Fprintln(out, "No entries in the last 7 days.")
				return nil
			}
			fmt.Fprintf(out, "Average: %d kcal over %d day(s)\n", stats.Average, stats.DaysWithData)
			fmt.Fprintf(out, "Total: %d kcal\n", stats.Total)

			p := s.Profile()
			if p == nil {
				return nil
			}
			level, err := energy.LevelByID(s.Activity())
			if err != nil {
				return err
			}
			bmr := energy.BMR(p.WeightKg, p.HeightCm, p.AgeYears, p.Sex)
			tdee := energy.TDEE(bmr, level.Factor)
			diff := stats.Average - tdee
			delta := energy.WeeklyWeightDelta(float64(diff))
			fmt.Fprintf(out, "Budget: %d kcal/day (%s)\n", tdee, level.Label)
			fmt.Fprintf(out, "Trend: %+d kcal/day vs budget, about %+.2f kg/week\n", diff, delta)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(weekCmd)
}
