package interpreter

import (
	"regexp"
	"strings"
)

var (
	fillerRe     = regexp.MustCompile(`\b(the|a|an|my|your|this|that|please|can you|could you|would you)\b`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize lower-cases the utterance, strips filler words and collapses
// whitespace runs. Empty input yields empty output; there are no error
// conditions.
func Normalize(raw string) string {
	text := strings.ToLower(strings.TrimSpace(raw))
	text = fillerRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
