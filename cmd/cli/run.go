package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/relforge/herald/internal/app"
	"github.com/relforge/herald/internal/config"
	"github.com/relforge/herald/internal/core"
	"github.com/relforge/herald/internal/logger"
)

// Color definitions
var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	dimColor     = color.New(color.FgHiBlack)
)

// stepTimer tracks timing for verbose output
type stepTimer struct {
	stepNum    int
	totalSteps int
	start      time.Time
	verbose    bool
}

func newStepTimer(totalSteps int, verbose bool) *stepTimer {
	return &stepTimer{
		stepNum:    0,
		totalSteps: totalSteps,
		verbose:    verbose,
	}
}

func (t *stepTimer) step(name string) {
	t.stepNum++
	t.start = time.Now()
	if t.verbose {
		titleColor.Printf("\nStep %d/%d: %s...\n", t.stepNum, t.totalSteps, name)
	} else {
		fmt.Printf("%s...\n", name)
	}
}

func (t *stepTimer) done(details ...string) {
	if t.verbose {
		elapsed := time.Since(t.start).Round(time.Millisecond)
		successColor.Printf("   done (%s)\n", elapsed)
		for _, d := range details {
			dimColor.Printf("   %s\n", d)
		}
	}
}

// runTask is the shared body of all subcommands: load configuration, wire
// the application, run one task to completion.
func runTask(name core.TaskName) error {
	ctx := context.Background()
	overallStart := time.Now()

	timer := newStepTimer(3, verbose)
	titleColor.Printf("Herald - %s\n", name)

	timer.step("Loading configuration")
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w\n\nTip: Set GITHUB_ORG, GITHUB_REPO, and GITHUB_TOKEN (or GitHub App credentials)", err)
	}
	log := logger.NewLogger(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}, os.Stderr)
	timer.done(fmt.Sprintf("repository: %s/%s", cfg.GitHubOrg, cfg.GitHubRepo))

	timer.step("Initializing application")
	appInstance, err := app.NewApp(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	timer.done()

	timer.step(fmt.Sprintf("Running %s task", name))
	event := &core.TaskEvent{
		Task:    name,
		Now:     time.Now().UTC(),
		Trigger: "cli",
	}
	if err := appInstance.RunTask(ctx, event); err != nil {
		return fmt.Errorf("%s task failed: %w", name, err)
	}
	timer.done()

	if verbose {
		dimColor.Printf("\nTotal time: %s\n", time.Since(overallStart).Round(time.Millisecond))
	}
	successColor.Printf("%s task completed\n", name)
	return nil
}
