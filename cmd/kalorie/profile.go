package kalorie

import (
	"fmt"

	"github.com/kalorieapp/kalorie-cli/internal/energy"
	"github.com/kalorieapp/kalorie-cli/internal/model"
	"github.com/kalorieapp/kalorie-cli/internal/store"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your body profile and activity level",
}

var (
	profileName   string
	profileWeight float64
	profileHeight float64
	profileAge    float64
	profileSex    string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Save your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			draft := store.ProfileDraft{
				Name:     profileName,
				WeightKg: profileWeight,
				HeightCm: profileHeight,
				AgeYears: profileAge,
				Sex:      model.Sex(profileSex),
			}
			// Pre-fill unset fields from the stored profile so a single
			// field can be edited without retyping the rest.
			if existing := s.Profile(); existing != nil {
				if draft.Name == "" {
					draft.Name = existing.Name
				}
				if draft.WeightKg == 0 {
					draft.WeightKg = existing.WeightKg
				}
				if draft.HeightCm == 0 {
					draft.HeightCm = existing.HeightCm
				}
				if draft.AgeYears == 0 {
					draft.AgeYears = existing.AgeYears
				}
				if profileSex == "" {
					draft.Sex = existing.Sex
				}
			}
			p, err := s.SaveProfile(draft)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved profile for %s\n", p.Name)
			printEnergySummary(cmd, s, p)
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored profile with BMI, BMR, and TDEE",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			p := s.Profile()
			if p == nil || !s.ProfileSaved() {
				fmt.Fprintln(cmd.OutOrStdout(), "No profile saved yet. Run: kalorie profile set")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Name: %s\n", p.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Weight: %.1f kg\n", p.WeightKg)
			fmt.Fprintf(cmd.OutOrStdout(), "Height: %.0f cm\n", p.HeightCm)
			fmt.Fprintf(cmd.OutOrStdout(), "Age: %.0f years\n", p.AgeYears)
			fmt.Fprintf(cmd.OutOrStdout(), "Sex: %s\n", p.Sex)
			printEnergySummary(cmd, s, p)
			return nil
		})
	},
}

var profileActivityCmd = &cobra.Command{
	Use:   "activity [level]",
	Short: "Show or set the activity level",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if len(args) == 0 {
				current := s.Activity()
				fmt.Fprintln(cmd.OutOrStdout(), "LEVEL\tFACTOR\tDESCRIPTION")
				for _, l := range energy.Levels {
					marker := " "
					if l.ID == current {
						marker = "*"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%.3f\t%s\n", marker, l.ID, l.Factor, l.Description)
				}
				return nil
			}
			if err := s.SetActivity(args[0]); err != nil {
				return err
			}
			level, _ := energy.LevelByID(s.Activity())
			fmt.Fprintf(cmd.OutOrStdout(), "Activity level set to %s (x%.3f)\n", level.ID, level.Factor)
			return nil
		})
	},
}

func printEnergySummary(cmd *cobra.Command, s *store.Store, p *model.Profile) {
	bmi, ok := energy.BMI(p.WeightKg, p.HeightCm)
	if !ok {
		return
	}
	cat := energy.CategoryFor(bmi)
	bmr := energy.BMR(p.WeightKg, p.HeightCm, p.AgeYears, p.Sex)
	level, err := energy.LevelByID(s.Activity())
	if err != nil {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "BMI: %.1f (%s)\n", bmi, cat.Label)
	fmt.Fprintf(cmd.OutOrStdout(), "BMR: %.0f kcal/day\n", bmr)
	fmt.Fprintf(cmd.OutOrStdout(), "TDEE: %d kcal/day (%s x%.3f)\n", energy.TDEE(bmr, level.Factor), level.ID, level.Factor)
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd, profileShowCmd, profileActivityCmd)

	profileSetCmd.Flags().StringVar(&profileName, "name", "", "First name")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Weight in kg")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
	profileSetCmd.Flags().Float64Var(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().StringVar(&profileSex, "sex", "", "Sex (male or female)")
}
