package main

import (
	"github.com/spf13/cobra"

	"github.com/relforge/herald/internal/core"
)

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Post a weekly shipped-work digest to Slack",
	Long: `Post a weekly shipped-work digest to Slack.

The digest command collects the last week of merged pull requests and
closed issues, asks the LLM for a short narrative summary, and posts it
to the configured Slack channel. A quiet week posts nothing.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runTask(core.TaskDigest)
	},
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.AddCommand(digestCmd)
}
