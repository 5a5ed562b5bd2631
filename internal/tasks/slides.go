package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/relforge/herald/internal/core"
	"github.com/relforge/herald/internal/cycle"
	"github.com/relforge/herald/internal/rehost"
	"github.com/relforge/herald/internal/slides"
	"github.com/relforge/herald/internal/stats"
)

const slidesWindow = 4 * 7 * 24 * time.Hour

// maxHighlights bounds how many PR titles are condensed into bullets.
const maxHighlights = 18

// SlidesTask builds the cycle-review deck. It only runs on days that start
// a 4-week cycle; any other day is a successful no-op.
type SlidesTask struct {
	deps   *Deps
	slides slides.Service
	cdn    rehost.CDN
}

// NewSlidesTask wires the cycle-review pipeline.
func NewSlidesTask(deps *Deps, svc slides.Service, cdn rehost.CDN) *SlidesTask {
	return &SlidesTask{deps: deps, slides: svc, cdn: cdn}
}

func (t *SlidesTask) Run(ctx context.Context, event *core.TaskEvent) error {
	d := t.deps

	if !cycle.StartsCycle(event.Now) {
		d.Logger.Info("today does not start a cycle, skipping slides",
			"today", event.Now.Format("2006-01-02"),
			"next_start", cycle.NextStart(event.Now).Format("2006-01-02"))
		return nil
	}

	since := event.Now.Add(-slidesWindow)
	d.Logger.Info("building cycle review deck", "since", since.Format("2006-01-02"))

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
		d.Logger.Info("nothing shipped this cycle, skipping deck")
		return nil
	}

	bullets, err := t.cycleBullets(ctx, prs, issues)
	if err != nil {
		return fmt.Errorf("build bullets: %w", err)
	}

	imageURLs := t.collectImages(ctx, prs)

	title := fmt.Sprintf("Cycle Review - %s", event.Now.Format("Jan 2, 2006"))
	subtitle := fmt.Sprintf("%s to %s", since.Format("Jan 2"), event.Now.Format("Jan 2, 2006"))
	deck := slides.BuildDeck(title, subtitle, bullets, imageURLs)

	url, err := t.slides.CreateDeck(ctx, deck)
	if err != nil {
		return fmt.Errorf("create deck: %w", err)
	}

	d.Logger.Info("cycle review deck created", "url", url, "slides", len(deck.Slides))
	return nil
}

// cycleBullets condenses PR highlights and the author leaderboard into
// slide bullets.
func (t *SlidesTask) cycleBullets(ctx context.Context, prs []core.MergedPR, issues []core.ClosedIssue) ([]string, error) {
	d := t.deps

	highlights := make([]string, 0, len(prs))
	for _, pr := range prs {
		highlights = append(highlights, pr.Title)
		if len(highlights) == maxHighlights {
			break
		}
	}

	bullets, err := d.Summarizer.SlideBullets(ctx, highlights)
	if err != nil {
		return nil, err
	}

	for _, s := range stats.Aggregate(issues) {
		bullets = append(bullets, fmt.Sprintf("%s closed %d issues (%d points)", s.Author, len(s.Issues), s.Size))
	}
	return bullets, nil
}

// collectImages rehosts the attachments found in PR bodies and returns the
// image URLs for the screenshot pages. Rehost failures keep assets out of
// the deck rather than failing the run, since a token-gated GitHub URL
// would render as a broken image.
func (t *SlidesTask) collectImages(ctx context.Context, prs []core.MergedPR) []string {
	d := t.deps
	rehoster := rehost.NewRehoster(d.GitHub, t.cdn, d.Logger)

	var urls []string
	for _, pr := range prs {
		_, assets := rehoster.RewriteMarkdown(ctx, pr.Body)
		for _, asset := range assets {
			if asset.Kind == core.MediaImage && asset.HostedURL != asset.OriginalURL {
				urls = append(urls, asset.HostedURL)
			}
		}
	}
	return urls
}
