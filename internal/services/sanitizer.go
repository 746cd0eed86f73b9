package services

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

const (
	detailExcerptLen = 500
	logExcerptLen    = 1000
)

var markdownFence = regexp.MustCompile("```json\\s*|\\s*```")

// StripMarkdown removes markdown code fences around a model response and
// trims surrounding whitespace. Content between the fences is kept verbatim.
func StripMarkdown(text string) string {
	return strings.TrimSpace(markdownFence.ReplaceAllString(strings.TrimSpace(text), ""))
}

// ParseJSON strictly parses a single JSON value.
func ParseJSON(text string) (any, error) {
	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return parsed, nil
}

// Excerpt truncates text to at most n runes.
func Excerpt(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
