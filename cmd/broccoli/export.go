// ABOUTME: CLI commands for exporting and importing workout data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats and JSON import.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/harperreed/broccoli/internal/export"
	"github.com/harperreed/broccoli/internal/models"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportSince  string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export workout data",
	Long: `Export categories, exercises, and sets fetched from the backend.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export grouped by date (human-readable)
  markdown   Markdown sections per day (for sharing)

OPTIONS:

  --output, -o   Write to file instead of stdout
  --since        Only include sets on or after this date (YYYY-MM-DD)

EXAMPLES:

  broccoli export json                         # Export everything as JSON
  broccoli export json -o backup.json          # Save to file
  broccoli export markdown --since 2025-01-01  # Sets from 2025 onward`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]
		switch format {
		case "json", "yaml", "markdown", "md":
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", format)
		}

		if exportSince != "" {
			if _, err := models.ParseDate(exportSince); err != nil {
				return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", exportSince)
			}
		}

		d, err := export.Collect(cmd.Context(), svc.Backend(), exportSince, time.Now())
		if err != nil {
			return fail("Export failed", err)
		}

		var data []byte
		switch format {
		case "json":
			data, err = export.JSON(d)
		case "yaml":
			data, err = export.YAML(d)
		default:
			data = []byte(export.Markdown(d))
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			notifier.Success(fmt.Sprintf("Exported to %s", exportOutput))
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import workout data from JSON",
	Long: `Import a JSON export into the backend.

Categories, exercises, and sets are created anew; the backend assigns
fresh ids and references are remapped along the way.

EXAMPLES:

  broccoli import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		res, err := export.ImportJSON(cmd.Context(), svc.Backend(), data)
		if err != nil {
			return fail("Import failed", err)
		}

		notifier.Success(fmt.Sprintf("Imported %d categories, %d exercises, %d sets from %s",
			res.Categories, res.Exercises, res.Records, filename))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "only include data since date (YYYY-MM-DD)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
