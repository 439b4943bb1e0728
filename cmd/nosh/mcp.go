// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs the stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/nosh/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant
integration. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "nosh": {
        "command": "nosh",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_food         Log a food entry with nutrients
  log_activity     Log an activity with calories burned
  get_day          Get a day's aggregated log
  delete_entry     Delete a food or activity entry
  toggle_favorite  Toggle a favorite by food ID or name
  list_favorites   List favorite foods
  log_favorite     Log a favorite onto a day
  trends           Per-day totals for the last N days

AVAILABLE RESOURCES:

  nosh://today       Today's aggregated log
  nosh://favorites   Saved favorites`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(store)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
