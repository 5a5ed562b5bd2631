package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/relforge/herald/internal/core"
)

func TestStripMarkdownFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no fence",
			input: "plain text",
			want:  "plain text",
		},
		{
			name:  "plain fence",
			input: "```\nhello\n```",
			want:  "hello",
		},
		{
			name:  "fence with language tag",
			input: "```markdown\n- a bullet\n- another\n```",
			want:  "- a bullet\n- another",
		},
		{
			name:  "unterminated fence",
			input: "```\nhello",
			want:  "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripMarkdownFence(tt.input))
		})
	}
}

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   core.Category
		wantOK bool
	}{
		{"exact", "Fixed", core.CategoryFix, true},
		{"lowercase", "fixed", core.CategoryFix, true},
		{"trailing period", "Improved.", core.CategoryImprovement, true},
		{"bold markdown", "**New**", core.CategoryFeature, true},
		{"embedded in sentence", "The category is Fixed", core.CategoryFix, true},
		{"fenced", "```\nOther\n```", core.CategoryOther, true},
		{"multiline takes first line", "New\nBecause it adds a feature.", core.CategoryFeature, true},
		{"junk", "I cannot classify this change.", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := normalizeCategory(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNormalizeCategoryJunkFallsBackAtCallSite(t *testing.T) {
	// "I cannot classify" contains no category name at all; the summarizer
	// maps this to CategoryOther rather than failing the run.
	_, ok := normalizeCategory("no idea, sorry")
	assert.False(t, ok)
}

func TestParseBulletLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "clean lines",
			input: "first bullet\nsecond bullet",
			want:  []string{"first bullet", "second bullet"},
		},
		{
			name:  "dash markers and blanks",
			input: "- first\n\n* second\n",
			want:  []string{"first", "second"},
		},
		{
			name:  "fenced output",
			input: "```\nonly one\n```",
			want:  []string{"only one"},
		},
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseBulletLines(tt.input))
		})
	}
}
