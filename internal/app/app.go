// Package app initializes and orchestrates the main components of Herald.
// It wires together the configuration, clients, tasks, and dispatch server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/relforge/herald/internal/changelog"
	"github.com/relforge/herald/internal/config"
	"github.com/relforge/herald/internal/core"
	"github.com/relforge/herald/internal/github"
	"github.com/relforge/herald/internal/jobs"
	"github.com/relforge/herald/internal/llm"
	"github.com/relforge/herald/internal/rehost"
	"github.com/relforge/herald/internal/server"
	"github.com/relforge/herald/internal/slack"
	"github.com/relforge/herald/internal/slides"
	"github.com/relforge/herald/internal/tasks"
)

// App holds the wired application components.
type App struct {
	Cfg    *config.Config
	Logger *slog.Logger

	registry   map[core.TaskName]core.Task
	dispatcher *jobs.Dispatcher
	server     *server.Server
}

// NewApp sets up the application with all its dependencies. Destination
// clients are constructed unconditionally; their credentials are validated
// per task just before a run.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	rules, err := config.LoadRules(cfg.RulesPath)
	if err != nil {
		if !errors.Is(err, config.ErrRulesNotFound) {
			return nil, fmt.Errorf("failed to load publishing rules: %w", err)
		}
		logger.Info("no rules file found, using defaults", "path", cfg.RulesPath)
	}

	ghClient, token, err := github.CreateClient(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}
	projects := github.NewProjectLookup(ctx, token, logger)

	logger.Info("connecting to generator LLM", "provider", cfg.LLMProvider, "model", cfg.GeneratorModelName)
	model, err := llm.CreateModel(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator LLM: %w", err)
	}

	promptMgr, err := llm.NewPromptManager()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize prompt manager: %w", err)
	}
	summarizer := llm.NewSummarizer(model, promptMgr, cfg.LLMProvider, logger)

	deps := &tasks.Deps{
		Cfg:        cfg,
		Rules:      rules,
		GitHub:     ghClient,
		Projects:   projects,
		Summarizer: summarizer,
		Logger:     logger,
	}

	changelogClient := changelog.NewClient(cfg.ChangelogBaseURL, cfg.ChangelogAPIKey, logger)
	cdn := rehost.NewHTTPCDN(cfg.CDNUploadURL, cfg.CDNAPIKey, logger)
	slackClient := slack.NewClient(cfg.SlackToken, logger)
	slidesService := slides.NewHTTPService(cfg.SlidesBaseURL, cfg.SlidesAPIKey, logger)

	// Every task is wrapped with its per-task credential check so both the
	// CLI and the dispatch server fail before any API call is made.
	registry := map[core.TaskName]core.Task{
		core.TaskChangelog: validated{cfg, core.TaskChangelog, tasks.NewChangelogTask(deps, changelogClient, cdn)},
		core.TaskDigest:    validated{cfg, core.TaskDigest, tasks.NewDigestTask(deps, slackClient)},
		core.TaskSlides:    validated{cfg, core.TaskSlides, tasks.NewSlidesTask(deps, slidesService, cdn)},
		core.TaskAuthors:   validated{cfg, core.TaskAuthors, tasks.NewAuthorsTask(deps, slackClient)},
	}

	// Dispatcher and server are built here, not in StartServer, so every
	// field is in place before the listener goroutine spawns and an early
	// shutdown signal finds a fully constructed App.
	dispatcher := jobs.NewDispatcher(registry, logger)
	srv := server.NewServer(cfg.ServerPort, dispatcher, logger)

	logger.Info("Herald application initialized")
	return &App{
		Cfg:        cfg,
		Logger:     logger,
		registry:   registry,
		dispatcher: dispatcher,
		server:     srv,
	}, nil
}

// validated runs the per-task credential check before the task itself.
type validated struct {
	cfg  *config.Config
	name core.TaskName
	task core.Task
}

func (v validated) Run(ctx context.Context, event *core.TaskEvent) error {
	if err := v.cfg.ValidateFor(v.name); err != nil {
		return err
	}
	return v.task.Run(ctx, event)
}

// RunTask runs one task to completion. This is the CLI path: one task per
// process, sequential, exit code derived from the returned error.
func (a *App) RunTask(ctx context.Context, event *core.TaskEvent) error {
	task, ok := a.registry[event.Task]
	if !ok {
		return fmt.Errorf("no task registered for %q", event.Task)
	}
	return task.Run(ctx, event)
}

// StartServer runs the manual-dispatch HTTP server until Stop is called.
func (a *App) StartServer() error {
	a.Logger.Info("starting Herald dispatch server", "port", a.Cfg.ServerPort)
	return a.server.Start()
}

// Stop shuts down the server first to refuse new dispatches, then drains
// the task queue. Stopping a server that never started is a no-op.
func (a *App) Stop() error {
	serverErr := a.server.Stop()
	if serverErr != nil {
		a.Logger.Error("error during HTTP server shutdown", "error", serverErr)
	}

	a.dispatcher.Stop()

	if serverErr != nil {
		return serverErr
	}
	a.Logger.Info("Herald stopped")
	return nil
}
