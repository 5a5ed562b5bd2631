// Package stats aggregates per-author statistics from closed issues.
package stats

import (
	"sort"

	"github.com/relforge/herald/internal/core"
)

// Aggregate recomputes author statistics from scratch: the sum of size
// estimates and the list of issue numbers per author. The result is sorted
// by aggregate size descending, then by issue count descending, then by
// login for a stable order.
func Aggregate(issues []core.ClosedIssue) []core.AuthorStats {
	byAuthor := make(map[string]*core.AuthorStats)
	for _, issue := range issues {
		if issue.Author == "" {
			continue
		}
		s, ok := byAuthor[issue.Author]
		if !ok {
			s = &core.AuthorStats{Author: issue.Author}
			byAuthor[issue.Author] = s
		}
		s.Size += issue.Size
		s.Issues = append(s.Issues, issue.Number)
	}

	out := make([]core.AuthorStats, 0, len(byAuthor))
	for _, s := range byAuthor {
		sort.Ints(s.Issues)
		out = append(out, *s)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Size != out[j].Size {
			return out[i].Size > out[j].Size
		}
		if len(out[i].Issues) != len(out[j].Issues) {
			return len(out[i].Issues) > len(out[j].Issues)
		}
		return out[i].Author < out[j].Author
	})
	return out
}
