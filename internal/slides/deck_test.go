package slides

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func urls(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("https://cdn.example.com/img-%d.png", i)
	}
	return out
}

func TestBuildDeckPagination(t *testing.T) {
	bullets := make([]string, 13) // 6 + 6 + 1
	for i := range bullets {
		bullets[i] = fmt.Sprintf("bullet %d", i)
	}

	deck := BuildDeck("Cycle 7 Review", "Weeks 25-28", bullets, urls(11)) // 9 + 2

	// 1 title + 3 bullet pages + 2 image pages.
	require.Len(t, deck.Slides, 6)
	assert.Equal(t, SlideTitle, deck.Slides[0].Kind)
	assert.Equal(t, "Cycle 7 Review", deck.Slides[0].Title)

	assert.Len(t, deck.Slides[1].Bullets, 6)
	assert.Len(t, deck.Slides[2].Bullets, 6)
	assert.Len(t, deck.Slides[3].Bullets, 1)
	assert.Equal(t, "Highlights (1/3)", deck.Slides[1].Title)

	assert.Len(t, deck.Slides[4].Images, 9)
	assert.Len(t, deck.Slides[5].Images, 2)

	// Order preserved across page boundaries.
	assert.Equal(t, "bullet 0", deck.Slides[1].Bullets[0])
	assert.Equal(t, "bullet 12", deck.Slides[3].Bullets[0])
	assert.Equal(t, "https://cdn.example.com/img-9.png", deck.Slides[5].Images[0].URL)
}

func TestBuildDeckSinglePagesOmitCounters(t *testing.T) {
	deck := BuildDeck("Cycle 1", "", []string{"only"}, urls(3))

	require.Len(t, deck.Slides, 3)
	assert.Equal(t, "Highlights", deck.Slides[1].Title)
	assert.Equal(t, "Screenshots", deck.Slides[2].Title)
}

func TestBuildDeckEmptyContent(t *testing.T) {
	deck := BuildDeck("Cycle 2", "", nil, nil)
	require.Len(t, deck.Slides, 1)
	assert.Equal(t, SlideTitle, deck.Slides[0].Kind)
}

func TestLayoutGridGeometry(t *testing.T) {
	boxes := layoutGrid(urls(9))
	require.Len(t, boxes, 9)

	// Row-major: the fourth image starts the second row.
	assert.Equal(t, boxes[0].X, boxes[3].X)
	assert.Greater(t, boxes[3].Y, boxes[0].Y)

	// All cells share the same size.
	for _, b := range boxes {
		assert.Equal(t, boxes[0].Width, b.Width)
		assert.Equal(t, boxes[0].Height, b.Height)
	}

	// Deterministic: same input, same geometry.
	again := layoutGrid(urls(9))
	assert.Equal(t, boxes, again)
}
