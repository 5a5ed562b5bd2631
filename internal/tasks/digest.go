package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/relforge/herald/internal/core"
	"github.com/relforge/herald/internal/slack"
)

const digestWindow = 7 * 24 * time.Hour

// DigestTask posts a weekly activity summary to Slack.
type DigestTask struct {
	deps  *Deps
	slack slack.Client
}

// NewDigestTask wires the weekly digest pipeline.
func NewDigestTask(deps *Deps, sl slack.Client) *DigestTask {
	return &DigestTask{deps: deps, slack: sl}
}

func (t *DigestTask) Run(ctx context.Context, event *core.TaskEvent) error {
	d := t.deps
	since := event.Now.Add(-digestWindow)

	prs, err := d.GitHub.ListMergedPRs(ctx, d.Cfg.GitHubOrg, d.Cfg.GitHubRepo, since)
	if err != nil {
		return fmt.Errorf("list merged PRs: %w", err)
	}
	prs = filterPRs(d, prs)

	issues, err := d.GitHub.ListClosedIssues(ctx, d.Cfg.GitHubOrg, d.Cfg.GitHubRepo, since)
	if err != nil {
		return fmt.Errorf("list closed issues: %w", err)
	}
	issues = filterIssues(d, issues)
	issues = enrichWithProjectData(ctx, d, issues)

	if len(prs) == 0 && len(issues) == 0 {
		d.Logger.Info("quiet week, skipping digest")
		return nil
	}

	digest, err := d.Summarizer.DigestWeek(ctx, prs, issues)
	if err != nil {
		return fmt.Errorf("generate digest: %w", err)
	}

	blocks := []slack.Block{
		slack.Header(fmt.Sprintf("Weekly digest - %s", event.Now.Format("Jan 2, 2006"))),
		slack.Section(digest),
		slack.Divider(),
		slack.Section(fmt.Sprintf("_%d PRs merged, %d issues closed this week._", len(prs), len(issues))),
	}

	channel := d.Rules.ChannelFor(core.TaskDigest, d.Cfg.SlackChannel)
	if err := t.slack.PostMessage(ctx, channel, blocks); err != nil {
		return fmt.Errorf("post digest: %w", err)
	}

	d.Logger.Info("digest posted", "channel", channel, "prs", len(prs), "issues", len(issues))
	return nil
}
