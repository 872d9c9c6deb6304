package kalorie

import (
	"fmt"
	"strings"

	"github.com/kalorieapp/kalorie-cli/internal/search"
	"github.com/kalorieapp/kalorie-cli/internal/store"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search the food catalog",
	Long:  "Search the food catalog by name. Without a query the first entries of the catalog are listed as a browse view. Favorites are marked with *.",
	RunE: func(cmd *cobra.Command, args []string) error {
		foods, err := loadCatalog()
		if err != nil {
			return err
		}
		query := strings.Join(args, " ")
		return withStore(func(s *store.Store) error {
			results := search.Rank(query, foods)
			if len(results) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No foods match %q\n", query)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "FOOD\tKCAL/100G")
			for _, f := range results {
				marker := ""
				if s.IsFavorite(f.Name) {
					marker = " *"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s\t%.0f\n", f.Name, marker, f.CaloriesPer100g)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
