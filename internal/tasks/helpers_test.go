package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/relforge/herald/internal/config"
	"github.com/relforge/herald/internal/core"
	"github.com/relforge/herald/internal/github"
)

func testDeps(gh github.Client) *Deps {
	return &Deps{
		Cfg: &config.Config{
			GitHubOrg:    "relforge",
			GitHubRepo:   "product",
			SlackChannel: "#shipped",
		},
		Rules:      core.DefaultRules(),
		GitHub:     gh,
		Summarizer: &fakeSummarizer{},
		Logger:     slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})),
	}
}

// fakeSummarizer answers deterministically; individual tests override the
// function fields to inject failures. commitsSeen records the commit
// subjects each summarized PR carried.
type fakeSummarizer struct {
	summarizeErr map[int]error
	commitsSeen  map[int][]string
}

func (f *fakeSummarizer) SummarizeEntry(_ context.Context, pr *core.MergedPR) (string, error) {
	if f.commitsSeen == nil {
		f.commitsSeen = make(map[int][]string)
	}
	f.commitsSeen[pr.Number] = pr.Commits

	if err, ok := f.summarizeErr[pr.Number]; ok {
		return "", err
	}
	return fmt.Sprintf("Summary of %s", pr.Title), nil
}

func (f *fakeSummarizer) ClassifyCategory(_ context.Context, _, _ string) (core.Category, error) {
	return core.CategoryImprovement, nil
}

func (f *fakeSummarizer) DigestWeek(_ context.Context, prs []core.MergedPR, issues []core.ClosedIssue) (string, error) {
	return fmt.Sprintf("- %d PRs and %d issues shipped", len(prs), len(issues)), nil
}

func (f *fakeSummarizer) SlideBullets(_ context.Context, items []string) ([]string, error) {
	return items, nil
}

// fakeProjects returns a fixed size for every issue except the ones listed
// in fail, which error out.
type fakeProjects struct {
	size int
	fail map[int]bool
}

func (f *fakeProjects) IssueProjectData(_ context.Context, _, _ string, number int) (*github.ProjectData, error) {
	if f.fail[number] {
		return nil, fmt.Errorf("board item missing")
	}
	return &github.ProjectData{Status: "Done", Size: f.size}, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
