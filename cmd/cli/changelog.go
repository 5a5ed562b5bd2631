package main

import (
	"github.com/spf13/cobra"

	"github.com/relforge/herald/internal/core"
)

var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Draft changelog entries for recently merged pull requests",
	Long: `Draft changelog entries for recently merged pull requests.

The changelog command fetches pull requests merged since the newest
published entry, rehosts any attached images and videos, summarizes each
PR with the configured LLM, and creates one draft entry per PR.

Examples:
  herald changelog
  herald changelog --verbose`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runTask(core.TaskChangelog)
	},
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.AddCommand(changelogCmd)
}
