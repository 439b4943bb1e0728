// ABOUTME: Root Cobra command for the nosh CLI.
// ABOUTME: Handles config and store lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/nosh/internal/config"
	"github.com/harperreed/nosh/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg   *config.Config
	store *storage.Store
)

var rootCmd = &cobra.Command{
	Use:   "nosh",
	Short: "Food and activity journal",
	Long: `Nosh is a CLI food journal: log what you eat and what you burn,
per calendar day, and watch your nutrient trends.

QUICK START:

  $ nosh food add "Apple" --cal 95 --fiber 4       # Log a food
  $ nosh activity add "Run" --burned 300           # Log an activity
  $ nosh log                                       # Today's log and totals
  $ nosh log 2024-01-01                            # Any day's log
  $ nosh trends --days 7                           # Nutrient trend charts

AI ESTIMATION:

  Describe a meal (or point at a photo) and let a model estimate the
  nutrients. You confirm before anything is saved.

  $ nosh estimate "two eggs and buttered toast"
  $ nosh estimate --image lunch.jpg

  Set NOSH_AI_API_KEY (and optionally NOSH_AI_BASE_URL, NOSH_AI_MODEL)
  for any OpenAI-compatible endpoint.

FAVORITES:

  Favorites are name-keyed snapshots of a food's nutrients, reusable to
  seed new entries on any day.

  $ nosh fav toggle a1b2c3d4          # Favorite a logged food by ID
  $ nosh fav use "Apple" --date 2024-01-02
  $ nosh fav list

MCP INTEGRATION:

  Run 'nosh mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants.

DATA STORAGE:

  The journal lives in a local Badger store at ~/.local/share/nosh.
  Every change is written back immediately.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		store, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}
