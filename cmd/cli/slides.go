package main

import (
	"github.com/spf13/cobra"

	"github.com/relforge/herald/internal/core"
)

var slidesCmd = &cobra.Command{
	Use:   "slides",
	Short: "Build the cycle review slide deck",
	Long: `Build the cycle review slide deck.

The slides command only does work on the Monday that starts a new
four-week cycle; on any other day it logs the next cycle start and
exits. On a cycle Monday it summarizes the previous cycle's highlights,
rehosts screenshots, paginates bullets and images onto slides, and sends
the deck to the slide service.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runTask(core.TaskSlides)
	},
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.AddCommand(slidesCmd)
}
