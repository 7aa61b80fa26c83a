package utils

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	controlChars = regexp.MustCompile(`[\p{Cc}\p{Cf}\p{Co}\p{Cs}]`)
	spaceRuns    = regexp.MustCompile(`\s+`)
)

// SanitizeString replaces control characters with spaces, collapses runs of
// whitespace and trims the result
func SanitizeString(s string) string {
	result := controlChars.ReplaceAllString(s, " ")
	result = spaceRuns.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// EncodeURIComponent percent-encodes s the way browsers encode a URI
// component: spaces become %20 and only A-Z a-z 0-9 - _ . ! ~ * ' ( ) are kept.
func EncodeURIComponent(s string) string {
	escaped := url.QueryEscape(s)
	escaped = strings.ReplaceAll(escaped, "+", "%20")
	return strings.NewReplacer(
		"%21", "!",
		"%27", "'",
		"%28", "(",
		"%29", ")",
		"%2A", "*",
	).Replace(escaped)
}
