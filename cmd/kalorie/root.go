package kalorie

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	storePath   string
	catalogPath string
)

var rootCmd = &cobra.Command{
	Use:   "kalorie",
	Short: "kalorie tracks calories and weight from your terminal",
	Long:  "kalorie is a local-first calorie and weight tracking CLI with a built-in food catalog, meal slots, favorites, weight logs, and TDEE-based daily targets.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "Path to the kalorie data file")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Path to a replacement food table (JSON array)")
}
