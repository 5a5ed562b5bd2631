// Package tasks implements Herald's automation pipelines. Each task is a
// linear sequence of API calls: fetch from GitHub, transform with the
// language model, push to a destination service. Runs are fully sequential
// and stateless apart from the per-run rehosting cache.
package tasks

import (
	"context"
	"log/slog"

	"github.com/relforge/herald/internal/config"
	"github.com/relforge/herald/internal/core"
	"github.com/relforge/herald/internal/github"
	"github.com/relforge/herald/internal/llm"
)

// Deps bundles the clients shared by the pipelines. Individual tasks take
// the subset they need.
type Deps struct {
	Cfg        *config.Config
	Rules      *core.Rules
	GitHub     github.Client
	Projects   github.ProjectLookup
	Summarizer llm.Summarizer
	Logger     *slog.Logger
}

// enrichWithProjectData fills Status and Size for each issue from the org
// project board. A failed lookup is a per-item condition: it is logged and
// the issue keeps its zero values, so one broken board item never sinks the
// whole run.
func enrichWithProjectData(ctx context.Context, d *Deps, issues []core.ClosedIssue) []core.ClosedIssue {
	if d.Projects == nil {
		return issues
	}

	out := make([]core.ClosedIssue, 0, len(issues))
	for _, issue := range issues {
		data, err := d.Projects.IssueProjectData(ctx, d.Cfg.GitHubOrg, d.Cfg.GitHubRepo, issue.Number)
		if err != nil {
			d.Logger.Warn("skipping project data for issue", "issue", issue.Number, "error", err)
		} else {
			issue.Status = data.Status
			issue.Size = data.Size
		}
		out = append(out, issue)
	}
	return out
}

// filterPRs applies the publishing rules: bot authors and skip-labeled PRs
// never reach a destination.
func filterPRs(d *Deps, prs []core.MergedPR) []core.MergedPR {
	out := make([]core.MergedPR, 0, len(prs))
	for _, pr := range prs {
		if d.Rules.AuthorExcluded(pr.Author) {
			d.Logger.Debug("excluding PR by author rule", "pr", pr.Number, "author", pr.Author)
			continue
		}
		if d.Rules.SkipByLabel(pr.Labels) {
			d.Logger.Debug("excluding PR by label rule", "pr", pr.Number)
			continue
		}
		out = append(out, pr)
	}
	return out
}

// filterIssues drops issues from excluded authors.
func filterIssues(d *Deps, issues []core.ClosedIssue) []core.ClosedIssue {
	out := make([]core.ClosedIssue, 0, len(issues))
	for _, issue := range issues {
		if d.Rules.AuthorExcluded(issue.Author) {
			continue
		}
		out = append(out, issue)
	}
	return out
}
