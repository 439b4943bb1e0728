// ABOUTME: CLI commands for exporting and importing the journal.
// ABOUTME: One JSON document covering foods, activities, and favorites.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/nosh/internal/storage"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the journal as JSON",
	Long: `Export all food entries, activities, and favorites as one JSON
document, suitable for backup and restore with 'nosh import'.

EXAMPLES:

  nosh export                   # Write JSON to stdout
  nosh export -o backup.json    # Write to a file`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := store.ExportAll()
		if err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}

		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return err
		}

		if exportOutput == "" {
			fmt.Println(string(out))
			return nil
		}
		if err := os.WriteFile(exportOutput, out, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		color.Green("✓ Exported to %s", exportOutput)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a journal export",
	Long: `Import a JSON export produced by 'nosh export'.

CAUTION:

  Import replaces all three collections with the file's contents.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		var data storage.ExportData
		if err := json.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("failed to parse %s: %w", args[0], err)
		}

		if err := store.ImportAll(&data); err != nil {
			return fmt.Errorf("failed to import: %w", err)
		}

		color.Green("✓ Imported %d foods, %d activities, %d favorites",
			len(data.Foods), len(data.Activities), len(data.Favorites))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd, importCmd)
}
