package slack

import (
	"unicode/utf8"
)

// Block is one Block Kit element of a message payload. Only the block types
// Herald emits are modeled.
type Block struct {
	Type     string `json:"type"`
	Text     *Text  `json:"text,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	AltText  string `json:"alt_text,omitempty"`
}

// Text is the text object inside header and section blocks.
type Text struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// maxHeaderRunes is Slack's limit on header block text.
const maxHeaderRunes = 150

// Header builds a plain-text header block. Overlong text is truncated on a
// rune boundary so the payload stays valid UTF-8.
func Header(text string) Block {
	if utf8.RuneCountInString(text) > maxHeaderRunes {
		runes := []rune(text)
		text = string(runes[:maxHeaderRunes-3]) + "..."
	}
	return Block{
		Type: "header",
		Text: &Text{Type: "plain_text", Text: text},
	}
}

// Section builds a markdown section block.
func Section(markdown string) Block {
	return Block{
		Type: "section",
		Text: &Text{Type: "mrkdwn", Text: markdown},
	}
}

// Divider builds a divider block.
func Divider() Block {
	return Block{Type: "divider"}
}

// Image builds an image block.
func Image(url, alt string) Block {
	return Block{Type: "image", ImageURL: url, AltText: alt}
}
