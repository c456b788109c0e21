// Package assistant implements the GloBot classification-and-response core:
// tokenizing, intent classification, context tracking, reply generation and
// the per-session turn-taking state machine.
package assistant

import "strings"

// Tokenize lowercases text and splits it on runs of whitespace. Empty or
// all-whitespace input yields no tokens. No stemming, no punctuation
// stripping.
func Tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}
