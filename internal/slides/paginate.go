// Package slides builds cycle-review slide decks from shipped work.
package slides

// Page capacities. A text slide holds at most 6 bullets; an image slide
// lays out a 3x3 grid.
const (
	BulletsPerPage = 6
	ImagesPerPage  = 9
)

// Chunk partitions items into contiguous chunks of at most size elements.
// Order is preserved and nothing is rebalanced; only the final chunk may be
// shorter. A non-positive size yields a single chunk with everything.
func Chunk[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return nil
	}
	if size <= 0 {
		return [][]T{items}
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks
}
