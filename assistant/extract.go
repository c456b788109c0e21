package assistant

import (
	"regexp"
	"strings"
)

// Entity extraction is deliberately isolated here so the matching rules can
// change without touching the intent taxonomy.

var (
	searchTermPattern  = regexp.MustCompile(`(?i)(?:find|search|looking for|want|need)\s+(.+)`)
	orderNumberPattern = regexp.MustCompile(`#([A-Za-z0-9]+)`)
)

// ExtractSearchTerm pulls the phrase following a search lead-in
// ("find ...", "looking for ...", etc). Returns "" when no lead-in matches.
func ExtractSearchTerm(text string) string {
	m := searchTermPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// ExtractOrderNumber pulls an order token of the form #ABC123 (without the
// leading '#'). Returns "" when the text carries no order token.
func ExtractOrderNumber(text string) string {
	m := orderNumberPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}
