// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs the stdio-based MCP server over the configured backend.
package main

import (
	"github.com/harperreed/broccoli/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout and talks to the same backend as
the CLI.

DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "broccoli": {
        "command": "broccoli",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  list_categories   List categories (optionally only assigned ones)
  add_category      Create a category
  list_exercises    List exercises, optionally by category
  add_exercise      Create an exercise
  log_record        Log a set
  list_records_on   Sets logged on a date
  delete_record     Delete a set (requires confirm=true)
  history           Filtered, paginated sets
  calendar          Per-day counts and intensity for a week, month, or year
  dashboard         Workout day counts and per-category totals

AVAILABLE RESOURCES:

  broccoli://dashboard   Dashboard summary
  broccoli://today       Today's sets
  broccoli://catalog     Categories with their exercises`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(svc, version)
		if err != nil {
			return err
		}
		return server.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
