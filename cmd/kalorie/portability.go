package kalorie

import (
	"fmt"
	"os"

	"github.com/kalorieapp/kalorie-cli/internal/store"
	"github.com/spf13/cobra"
)

var (
	exportOut       string
	importFile      string
	resetKeepBackup bool
	resetBackupPath string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data as a JSON backup",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			blob, err := s.ExportAll()
			if err != nil {
				return err
			}
			if exportOut == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(blob))
				return nil
			}
			if err := os.WriteFile(exportOut, blob, 0o644); err != nil {
				return fmt.Errorf("write backup: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote backup to %s\n", exportOut)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a JSON backup, overwriting matching keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		blob, err := os.ReadFile(importFile)
		if err != nil {
			return fmt.Errorf("read backup: %w", err)
		}
		return withStore(func(s *store.Store) error {
			applied, err := s.ImportAll(blob)
			if err != nil {
				return err
			}
			for _, key := range applied {
				fmt.Fprintf(cmd.OutOrStdout(), "applied %s\n", key)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d key(s)\n", len(applied))
			return nil
		})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all stored data",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			backup, err := s.ResetAll(resetKeepBackup)
			if err != nil {
				return err
			}
			if resetKeepBackup {
				if err := os.WriteFile(resetBackupPath, backup, 0o644); err != nil {
					return fmt.Errorf("write backup: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote backup to %s\n", resetBackupPath)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All data deleted")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd, resetCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "write backup to this file instead of stdout")
	importCmd.Flags().StringVar(&importFile, "file", "", "backup file to import")
	_ = importCmd.MarkFlagRequired("file")
	resetCmd.Flags().BoolVar(&resetKeepBackup, "keep-backup", false, "write a backup before deleting")
	resetCmd.Flags().StringVar(&resetBackupPath, "backup-out", "kalorie-backup.json", "backup file path when --keep-backup is set")
}
