package kalorie

import (
	"fmt"

	"github.com/kalorieapp/kalorie-cli/internal/app"
	"github.com/kalorieapp/kalorie-cli/internal/storage"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local kalorie data file",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized kalorie data file at %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
