package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"plain fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "\n\n  ```json {\"a\": 1} ```  \n", `{"a": 1}`},
		{"clean json", `{"a": 1}`, `{"a": 1}`},
		{"inner whitespace kept", "```json\n{\n  \"a\": \"x  y\"\n}\n```", "{\n  \"a\": \"x  y\"\n}"},
		{"text only", "Here is the transcript.", "Here is the transcript."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripMarkdown(tt.input))
		})
	}
}

func TestStripMarkdownIdempotent(t *testing.T) {
	raw, _ := loadValidReport(t)
	inputs := []string{
		raw,
		"```json\n" + raw + "\n```",
		`{"a": [1, 2, 3]}`,
		"not json at all",
	}

	for _, input := range inputs {
		once := StripMarkdown(input)
		assert.Equal(t, once, StripMarkdown(once))
	}

	clean := `{"soft_skills": {}}`
	assert.Equal(t, clean, StripMarkdown(clean))
}

func TestParseJSON(t *testing.T) {
	parsed, err := ParseJSON(`{"a": 1}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": float64(1)}, parsed)

	_, err = ParseJSON("Sure! Here is the analysis: {")
	require.Error(t, err)

	_, err = ParseJSON(`{"a": 1} trailing`)
	require.Error(t, err)
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short", Excerpt("short", 10))
	assert.Equal(t, "abc", Excerpt("abcdef", 3))
	assert.Equal(t, "пр", Excerpt("привет", 2))
	assert.Len(t, Excerpt(strings.Repeat("x", 2000), detailExcerptLen), detailExcerptLen)
}
