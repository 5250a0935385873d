// Package text normalizes and tokenizes post/comment bodies before
// sentiment scoring and keyword matching.
package text

import (
	"regexp"
	"strings"
)

var (
	urlRE          = regexp.MustCompile(`http\S+`)
	markdownLinkRE = regexp.MustCompile(`\[.*?\]\(.*?\)`)
	tokenRE        = regexp.MustCompile(`[a-z0-9$#@']+`)
)

// Clean lowercases the input, strips URLs and markdown link syntax and
// trims surrounding whitespace. Empty or absent input yields "".
func Clean(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = urlRE.ReplaceAllString(s, "")
	s = markdownLinkRE.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// Tokenize splits cleaned text into maximal runs of letters, digits and
// the symbols $ # @ '. Ticker tokens like "$sol" stay atomic, so a bare
// "sol" token and "$sol" are distinct.
func Tokenize(s string) []string {
	return tokenRE.FindAllString(strings.ToLower(s), -1)
}
