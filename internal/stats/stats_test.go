package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relforge/herald/internal/core"
)

func TestAggregate(t *testing.T) {
	issues := []core.ClosedIssue{
		{Number: 10, Author: "ada", Size: 3},
		{Number: 12, Author: "grace", Size: 5},
		{Number: 11, Author: "ada", Size: 2},
		{Number: 13, Author: "linus", Size: 5},
		{Number: 14, Author: ""}, // deleted account, dropped
	}

	got := Aggregate(issues)
	require.Len(t, got, 3)

	// ada: 5 points over two issues; grace and linus tie at 5 with one
	// issue each, so ada's higher issue count ranks first among the 5s,
	// and grace beats linus alphabetically.
	assert.Equal(t, "ada", got[0].Author)
	assert.Equal(t, 5, got[0].Size)
	assert.Equal(t, []int{10, 11}, got[0].Issues)
	assert.Equal(t, "grace", got[1].Author)
	assert.Equal(t, "linus", got[2].Author)
}

func TestAggregateEmpty(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
}

func TestAggregateRecomputesFromScratch(t *testing.T) {
	first := Aggregate([]core.ClosedIssue{{Number: 1, Author: "ada", Size: 1}})
	second := Aggregate([]core.ClosedIssue{{Number: 2, Author: "ada", Size: 2}})

	require.Len(t, second, 1)
	assert.Equal(t, 2, second[0].Size, "no state may leak between runs")
	assert.Equal(t, []int{2}, second[0].Issues)
	assert.Equal(t, 1, first[0].Size)
}
