package slides

import (
	"fmt"
)

// Slide geometry in points, matching a standard 10x5.63in page.
const (
	pageWidthPT  = 720.0
	pageHeightPT = 405.0
	marginPT     = 24.0
	gridCols     = 3
	gridRows     = 3
)

// SlideKind distinguishes the layouts Herald produces.
type SlideKind string

const (
	SlideTitle   SlideKind = "title"
	SlideBullets SlideKind = "bullets"
	SlideImages  SlideKind = "images"
)

// ImageBox places one image on an image slide.
type ImageBox struct {
	URL    string  `json:"url"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Slide is one page of the deck request payload.
type Slide struct {
	Kind     SlideKind  `json:"kind"`
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle,omitempty"`
	Bullets  []string   `json:"bullets,omitempty"`
	Images   []ImageBox `json:"images,omitempty"`
}

// Deck is the full presentation request.
type Deck struct {
	Title  string  `json:"title"`
	Slides []Slide `json:"slides"`
}

// BuildDeck lays out a deck: a title slide, then bullet pages of at most
// BulletsPerPage items, then image pages of at most ImagesPerPage items in
// a 3x3 grid. Input order is kept; pagination is pure arithmetic.
func BuildDeck(title, subtitle string, bullets, imageURLs []string) *Deck {
	deck := &Deck{Title: title}
	deck.Slides = append(deck.Slides, Slide{
		Kind:     SlideTitle,
		Title:    title,
		Subtitle: subtitle,
	})

	bulletPages := Chunk(bullets, BulletsPerPage)
	for i, page := range bulletPages {
		slide := Slide{
			Kind:    SlideBullets,
			Title:   "Highlights",
			Bullets: page,
		}
		if len(bulletPages) > 1 {
			slide.Title = fmt.Sprintf("Highlights (%d/%d)", i+1, len(bulletPages))
		}
		deck.Slides = append(deck.Slides, slide)
	}

	imagePages := Chunk(imageURLs, ImagesPerPage)
	for i, page := range imagePages {
		slide := Slide{
			Kind:   SlideImages,
			Title:  "Screenshots",
			Images: layoutGrid(page),
		}
		if len(imagePages) > 1 {
			slide.Title = fmt.Sprintf("Screenshots (%d/%d)", i+1, len(imagePages))
		}
		deck.Slides = append(deck.Slides, slide)
	}

	return deck
}

// layoutGrid places up to 9 images row-major on a 3x3 grid. Geometry is
// deterministic: cell position depends only on the index.
func layoutGrid(urls []string) []ImageBox {
	cellW := (pageWidthPT - 2*marginPT) / gridCols
	cellH := (pageHeightPT - 2*marginPT) / gridRows

	boxes := make([]ImageBox, 0, len(urls))
	for i, url := range urls {
		col := i % gridCols
		row := i / gridCols
		boxes = append(boxes, ImageBox{
			URL:    url,
			X:      marginPT + float64(col)*cellW,
			Y:      marginPT + float64(row)*cellH,
			Width:  cellW,
			Height: cellH,
		})
	}
	return boxes
}
