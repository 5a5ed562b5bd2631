package slides

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunk(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		size     int
		wantLens []int
	}{
		{"empty", 0, 6, nil},
		{"single partial page", 4, 6, []int{4}},
		{"exact page", 6, 6, []int{6}},
		{"one full one partial", 7, 6, []int{6, 1}},
		{"several full pages", 18, 9, []int{9, 9}},
		{"image capacity with remainder", 20, 9, []int{9, 9, 2}},
		{"size one", 3, 1, []int{1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]int, tt.n)
			for i := range items {
				items[i] = i
			}

			chunks := Chunk(items, tt.size)
			require.Len(t, chunks, len(tt.wantLens))
			for i, want := range tt.wantLens {
				assert.Len(t, chunks[i], want)
			}

			// Order must be preserved across the chunk boundaries.
			var flat []int
			for _, c := range chunks {
				flat = append(flat, c...)
			}
			if tt.n > 0 {
				assert.Equal(t, items, flat)
			}
		})
	}
}

func TestChunkNonPositiveSize(t *testing.T) {
	items := []string{"a", "b", "c"}
	chunks := Chunk(items, 0)
	require.Len(t, chunks, 1)
	assert.Equal(t, items, chunks[0])
}
