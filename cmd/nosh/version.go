// ABOUTME: CLI command printing the nosh version.
// ABOUTME: Version is set at build time via ldflags.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the nosh version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("nosh %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
