package tasks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/relforge/herald/internal/core"
	"github.com/relforge/herald/internal/slack"
	"github.com/relforge/herald/internal/stats"
)

const authorsWindow = 7 * 24 * time.Hour

// AuthorsTask posts a weekly author leaderboard to Slack.
type AuthorsTask struct {
	deps  *Deps
	slack slack.Client
}

// NewAuthorsTask wires the leaderboard pipeline.
func NewAuthorsTask(deps *Deps, sl slack.Client) *AuthorsTask {
	return &AuthorsTask{deps: deps, slack: sl}
}

func (t *AuthorsTask) Run(ctx context.Context, event *core.TaskEvent) error {
	d := t.deps
	since := event.Now.Add(-authorsWindow)

	issues, err := d.GitHub.ListClosedIssues(ctx, d.Cfg.GitHubOrg, d.Cfg.GitHubRepo, since)
	if err != nil {
		return fmt.Errorf("list closed issues: %w", err)
	}
	issues = filterIssues(d, issues)
	issues = enrichWithProjectData(ctx, d, issues)

	leaderboard := stats.Aggregate(issues)
	if len(leaderboard) == 0 {
		d.Logger.Info("no closed issues this week, skipping leaderboard")
		return nil
	}

	blocks := []slack.Block{
		slack.Header(fmt.Sprintf("Weekly leaderboard - %s", event.Now.Format("Jan 2, 2006"))),
		slack.Section(formatLeaderboard(leaderboard)),
	}

	channel := d.Rules.ChannelFor(core.TaskAuthors, d.Cfg.SlackChannel)
	if err := t.slack.PostMessage(ctx, channel, blocks); err != nil {
		return fmt.Errorf("post leaderboard: %w", err)
	}

	d.Logger.Info("leaderboard posted", "channel", channel, "authors", len(leaderboard))
	return nil
}

func formatLeaderboard(leaderboard []core.AuthorStats) string {
	var b strings.Builder
	medals := []string{":first_place_medal:", ":second_place_medal:", ":third_place_medal:"}

	for i, s := range leaderboard {
		prefix := fmt.Sprintf("%d.", i+1)
		if i < len(medals) {
			prefix = medals[i]
		}
		fmt.Fprintf(&b, "%s *%s*: %d issues, %d points\n", prefix, s.Author, len(s.Issues), s.Size)
	}
	return b.String()
}
