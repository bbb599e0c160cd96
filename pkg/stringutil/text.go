// Package stringutil provides some string based helpers.
package stringutil

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// PlainText strips all markup from body and collapses whitespace into single spaces.
func PlainText(body string) string {
	return strings.Join(strings.Fields(html.UnescapeString(bluemonday.StrictPolicy().Sanitize(body))), " ")
}

// Excerpt returns the plain text of body cut to at most size runes. An ellipsis is appended
// when the text was cut. A size <= 0 disables the limit.
func Excerpt(body string, size int) string {
	text := PlainText(body)
	if size <= 0 {
		return text
	}

	runes := []rune(text)
	if len(runes) <= size {
		return text
	}

	return strings.TrimRight(string(runes[:size]), " ") + "..."
}
