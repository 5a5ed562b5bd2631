package llm

import (
	"strings"

	"github.com/relforge/herald/internal/core"
)

// stripMarkdownFence removes a wrapping ``` code fence if the model included
// one, with or without a language tag.
func stripMarkdownFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return s
	}

	lines := strings.Split(trimmed, "\n")
	if len(lines) < 2 {
		return s
	}

	// Drop the opening fence line and a closing fence if present.
	lines = lines[1:]
	if strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// normalizeCategory maps free-form model output onto one of the valid
// categories. Matching is case-insensitive and tolerates trailing
// punctuation and surrounding prose on the first line.
func normalizeCategory(output string) (core.Category, bool) {
	line := firstLine(stripMarkdownFence(output))
	line = strings.Trim(line, " \t.*`\"'")

	for _, c := range core.Categories {
		if strings.EqualFold(line, string(c)) {
			return c, true
		}
	}

	// Second chance: the category may be embedded in a sentence.
	lower := strings.ToLower(line)
	for _, c := range core.Categories {
		if strings.Contains(lower, strings.ToLower(string(c))) {
			return c, true
		}
	}
	return "", false
}

// parseBulletLines splits model output into bullets, dropping blank lines
// and stripping list markers the prompt asked the model not to emit anyway.
func parseBulletLines(output string) []string {
	var bullets []string
	for _, line := range strings.Split(stripMarkdownFence(output), "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "- ")
		line = strings.TrimPrefix(line, "* ")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		bullets = append(bullets, line)
	}
	return bullets
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
