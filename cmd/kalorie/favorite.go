package kalorie

import (
	"fmt"

	"github.com/kalorieapp/kalorie-cli/internal/store"
	"github.com/spf13/cobra"
)

var favoriteCmd = &cobra.Command{
	Use:   "favorite",
	Short: "Manage favorite foods",
}

var favoriteToggleCmd = &cobra.Command{
	Use:   "toggle <food name>",
	Short: "Add or remove a favorite",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		foods, err := loadCatalog()
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			food, err := resolveFood(foods, args[0])
			if err != nil {
				return err
			}
			if s.ToggleFavorite(food.Name) {
				fmt.Fprintf(cmd.OutOrStdout(), "Added favorite: %s\n", food.Name)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed favorite: %s\n", food.Name)
			}
			return nil
		})
	},
}

var favoriteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorites in the order they were added",
	RunE: func(cmd *cobra.Command, args []string) error {
		foods, err := loadCatalog()
		if err != nil {
			return err
		}
		byName := make(map[string]float64, len(foods))
		for _, f := range foods {
			byName[f.Name] = f.CaloriesPer100g
		}
		return withStore(func(s *store.Store) error {
			favorites := s.Favorites()
			if len(favorites) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No favorites yet. Run: kalorie favorite toggle <food name>")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "FOOD\tKCAL/100G")
			for _, name := range favorites {
				if kcal, ok := byName[name]; ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.0f\n", name, kcal)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t-\n", name)
			}
			return nil
		})
	},
}

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently used foods, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			recents := s.Recents()
			if len(recents) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No recent foods yet. Logged foods show up here automatically.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "FOOD\tKCAL/100G")
			for _, f := range recents {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.0f\n", f.Name, f.CaloriesPer100g)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(favoriteCmd, recentCmd)
	favoriteCmd.AddCommand(favoriteToggleCmd, favoriteListCmd)
}
