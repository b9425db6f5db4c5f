// Package markdown converts post content into sanitized HTML fragments.
package markdown

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	engine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// Render converts markdown to an HTML fragment. The result is passed
// through the sanitizer, so raw script tags and event handlers in the
// input never reach the output. Callers may embed the fragment without
// further escaping.
func Render(content string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := engine.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes())), nil
}

const invalidDate = "Invalid Date"

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FormatDate renders an ISO-8601 date as "January 15, 2024". Input that
// cannot be parsed produces the literal "Invalid Date" rather than an error.
func FormatDate(iso string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return FormatTime(t)
		}
	}
	return invalidDate
}

// FormatTime renders an already parsed timestamp the same way FormatDate
// does.
func FormatTime(t time.Time) string {
	return t.Format("January 2, 2006")
}
