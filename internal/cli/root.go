// Package cli defines the jamsched command tree.
package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jamsched",
	Short: "Hackathon judging schedule generator",
	Long: `jamsched turns a project submissions export into judging schedules:
per-room and per-category CSVs, a master schedule, and a per-team lookup,
with a configurable buffer between any two slots of the same team.

Configuration layers: built-in defaults, an optional YAML file pointed to by
JAMSCHED_CONFIG, env vars with the JAMSCHED_ prefix, then command flags.`,
	SilenceUsage: true,
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
