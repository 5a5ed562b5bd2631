package main

import (
	"github.com/spf13/cobra"

	"github.com/relforge/herald/internal/core"
)

var authorsCmd = &cobra.Command{
	Use:   "authors",
	Short: "Post the weekly author leaderboard to Slack",
	Long: `Post the weekly author leaderboard to Slack.

The authors command aggregates the week's closed issues per author, sums
their estimate points from the project board, and posts a ranked
leaderboard to the configured Slack channel.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runTask(core.TaskAuthors)
	},
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.AddCommand(authorsCmd)
}
