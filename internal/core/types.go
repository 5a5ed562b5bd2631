// Package core defines the domain types and task contracts shared by the
// Herald pipelines. These components stay abstract so that the individual
// tasks, the CLI, and the dispatch server can be wired together loosely.
package core

import (
	"time"
)

// ChangelogEntry is a published or draft release note held by the changelog
// service. Herald only ever reads these; creation goes through drafts.
type ChangelogEntry struct {
	ID        string
	Title     string
	Markdown  string
	CreatedAt time.Time
}

// MergedPR is Herald's view of a merged pull request. Commits holds the
// subject line of each commit; the changelog pipeline fills it before
// summarization so sparse PR bodies still produce useful entries.
type MergedPR struct {
	Number    int
	Title     string
	Body      string
	Author    string
	MergedAt  time.Time
	Additions int
	Deletions int
	Labels    []string
	Commits   []string
}

// ClosedIssue is a closed issue enriched with project-board data where the
// lookup succeeded. Size is zero when the board has no estimate or the
// per-issue lookup failed.
type ClosedIssue struct {
	Number   int
	Title    string
	Body     string
	Author   string
	ClosedAt time.Time
	Status   string
	Size     int
}

// MediaKind distinguishes rehosted asset types.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// MediaAsset maps an original attachment URL to its rehosted CDN URL.
// Assets live for a single run only; there is no cross-run cache.
type MediaAsset struct {
	OriginalURL string
	HostedURL   string
	Kind        MediaKind
}

// AuthorStats aggregates closed issues per author. Recomputed fully on
// every run.
type AuthorStats struct {
	Author string
	Size   int
	Issues []int
}

// Category is the changelog category assigned by classification.
type Category string

const (
	CategoryFeature     Category = "New"
	CategoryImprovement Category = "Improved"
	CategoryFix         Category = "Fixed"
	CategoryOther       Category = "Other"
)

// Categories lists every valid classification target, in display order.
var Categories = []Category{CategoryFeature, CategoryImprovement, CategoryFix, CategoryOther}
