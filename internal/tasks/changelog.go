package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/relforge/herald/internal/changelog"
	"github.com/relforge/herald/internal/core"
	"github.com/relforge/herald/internal/rehost"
)

// defaultChangelogWindow bounds the first run, when the changelog service
// has no entries to anchor the window on.
const defaultChangelogWindow = 14 * 24 * time.Hour

// ChangelogTask drafts one changelog entry per merged PR since the last
// published entry. Attachment URLs in PR bodies are rehosted to the CDN
// before the draft is created.
type ChangelogTask struct {
	deps      *Deps
	changelog changelog.Client
	cdn       rehost.CDN
}

// NewChangelogTask wires the changelog pipeline.
func NewChangelogTask(deps *Deps, cl changelog.Client, cdn rehost.CDN) *ChangelogTask {
	return &ChangelogTask{deps: deps, changelog: cl, cdn: cdn}
}

// Run executes the pipeline. Per-PR failures (summary, classification,
// draft creation) are logged and the PR is skipped; the run completes
// partially rather than failing outright.
func (t *ChangelogTask) Run(ctx context.Context, event *core.TaskEvent) error {
	d := t.deps

	since, err := t.lastEntryTime(ctx, event.Now)
	if err != nil {
		return err
	}
	d.Logger.Info("collecting merged pull requests", "since", since.Format(time.RFC3339))

	prs, err := d.GitHub.ListMergedPRs(ctx, d.Cfg.GitHubOrg, d.Cfg.GitHubRepo, since)
	if err != nil {
		return fmt.Errorf("list merged PRs: %w", err)
	}
	prs = filterPRs(d, prs)
	if len(prs) == 0 {
		d.Logger.Info("no new merged pull requests, nothing to draft")
		return nil
	}

	// The rehoster and its dedup cache live exactly as long as this run.
	rehoster := rehost.NewRehoster(d.GitHub, t.cdn, d.Logger)

	drafted := 0
	for _, pr := range prs {
		if err := t.draftEntry(ctx, rehoster, pr); err != nil {
			d.Logger.Warn("skipping pull request", "pr", pr.Number, "error", err)
			continue
		}
		drafted++
	}

	d.Logger.Info("changelog run complete", "merged_prs", len(prs), "drafted", drafted, "skipped", len(prs)-drafted)
	if drafted == 0 {
		return fmt.Errorf("all %d pull requests failed to draft", len(prs))
	}
	return nil
}

func (t *ChangelogTask) draftEntry(ctx context.Context, rehoster *rehost.Rehoster, pr core.MergedPR) error {
	d := t.deps

	body, assets := rehoster.RewriteMarkdown(ctx, pr.Body)
	pr.Body = body

	// Commit subjects give the summarizer something to work with when the
	// PR body is thin. A failed listing is a per-item condition.
	subjects, err := d.GitHub.ListPRCommitSubjects(ctx, d.Cfg.GitHubOrg, d.Cfg.GitHubRepo, pr.Number)
	if err != nil {
		d.Logger.Warn("could not list commits, summarizing from the PR body alone", "pr", pr.Number, "error", err)
	} else {
		pr.Commits = subjects
	}

	summary, err := d.Summarizer.SummarizeEntry(ctx, &pr)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	category, ok := d.Rules.LabelCategory(pr.Labels)
	if !ok {
		category, err = d.Summarizer.ClassifyCategory(ctx, pr.Title, summary)
		if err != nil {
			return fmt.Errorf("classify: %w", err)
		}
	}

	markdown := summary
	for _, asset := range assets {
		if asset.Kind == core.MediaImage {
			markdown += fmt.Sprintf("\n\n![](%s)", asset.HostedURL)
		} else {
			markdown += fmt.Sprintf("\n\n%s", asset.HostedURL)
		}
	}

	if _, err := t.changelog.CreateDraft(ctx, pr.Title, markdown, category); err != nil {
		return fmt.Errorf("create draft: %w", err)
	}
	return nil
}

// lastEntryTime anchors the PR window on the newest changelog entry so that
// consecutive runs never draft the same PR twice.
func (t *ChangelogTask) lastEntryTime(ctx context.Context, now time.Time) (time.Time, error) {
	entries, err := t.changelog.ListEntries(ctx, 1)
	if err != nil {
		return time.Time{}, fmt.Errorf("find last changelog entry: %w", err)
	}
	if len(entries) == 0 {
		return now.Add(-defaultChangelogWindow), nil
	}
	return entries[0].CreatedAt, nil
}
