// Package htmlutil provides small helpers for pulling text out of raw HTML.
package htmlutil

import (
	"html"
	"regexp"
	"strings"
)

// Pre-compiled patterns for extraction.
var (
	titlePattern   = regexp.MustCompile(`(?i)<title[^>]*>([^<]+)</title>`)
	ogTitlePattern = regexp.MustCompile(`(?i)<meta[^>]+property=["']og:title["'][^>]+content=["']([^"']+)["']`)
	tagPattern     = regexp.MustCompile(`<[^>]+>`)
)

// Title extracts the page title from HTML content.
func Title(htmlContent string) string {
	if matches := titlePattern.FindStringSubmatch(htmlContent); len(matches) > 1 {
		return strings.TrimSpace(html.UnescapeString(matches[1]))
	}

	// Fall back to og:title meta tag
	if matches := ogTitlePattern.FindStringSubmatch(htmlContent); len(matches) > 1 {
		return strings.TrimSpace(html.UnescapeString(matches[1]))
	}

	return ""
}

// StripTags removes all markup from an HTML fragment, leaving the text
// content with surrounding whitespace trimmed.
func StripTags(fragment string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(fragment, ""))
}
