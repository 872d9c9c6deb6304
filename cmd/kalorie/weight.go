package kalorie

import (
	"fmt"
	"os"

	"github.com/kalorieapp/kalorie-cli/internal/report"
	"github.com/kalorieapp/kalorie-cli/internal/store"
	"github.com/spf13/cobra"
)

var (
	weightDate     string
	weightChartOut string
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Track body weight over time",
}

var weightLogCmd = &cobra.Command{
	Use:   "log <kg>",
	Short: "Log a weight, one entry per day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kg, err := parsePositiveFloatArg("weight", args[0])
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			log, err := s.LogWeight(kg, weightDate)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %.1f kg on %s\n", log.WeightKg, log.Date)
			return nil
		})
	},
}

var weightListCmd = &cobra.Command{
	Use:   "list",
	Short: "List weight logs with day-over-day change",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			out := cmd.OutOrStdout()
			trend := report.WeightTrendSeries(s.WeightLogs(), report.DailyCalorieTotals(s.Entries()))
			if len(trend.Points) == 0 {
				fmt.Fprintln(out, "No weight logs yet. Run: kalorie weight log <kg>")
				return nil
			}
			fmt.Fprintln(out, "DATE\tKG\tCHANGE\tKCAL\tID")
			var prev float64
			for i, p := range trend.Points {
				change := "-"
				if i > 0 {
					change = fmt.Sprintf("%+.1f", p.WeightKg-prev)
				}
				kcal := "-"
				if p.Calories != nil {
					kcal = fmt.Sprintf("%d", *p.Calories)
				}
				fmt.Fprintf(out, "%s\t%.1f\t%s\t%s\t%d\n", p.Date, p.WeightKg, change, kcal, p.CreatedAt)
				prev = p.WeightKg
			}
			if trend.HasDelta {
				fmt.Fprintf(out, "\nTotal change: %+.1f kg\n", trend.Delta)
			}
			return nil
		})
	},
}

var weightRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a weight log by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("id", args[0])
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			if !s.RemoveWeightLog(id) {
				return fmt.Errorf("no weight log with id %d", id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed weight log %d\n", id)
			return nil
		})
	},
}

var weightChartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render the weight trend as a PNG chart",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			trend := report.WeightTrendSeries(s.WeightLogs(), report.DailyCalorieTotals(s.Entries()))
			png, err := report.RenderWeightChart(trend)
			if err != nil {
				return err
			}
			if err := os.WriteFile(weightChartOut, png, 0o644); err != nil {
				return fmt.Errorf("write chart: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d weight logs)\n", weightChartOut, len(trend.Points))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(weightCmd)
	weightCmd.AddCommand(weightLogCmd, weightListCmd, weightRemoveCmd, weightChartCmd)
	weightLogCmd.Flags().StringVar(&weightDate, "date", "", "date as DD.MM.YYYY (default today)")
	weightChartCmd.Flags().StringVar(&weightChartOut, "out", "weight.png", "output PNG path")
}
