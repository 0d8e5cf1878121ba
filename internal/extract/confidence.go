package extract

import (
	"regexp"
	"strings"
)

var (
	reDateish = regexp.MustCompile(`\b\d{2}/\d{2}/\d{4}\b`)
	reIDish   = regexp.MustCompile(`\b[A-Z][A-Z0-9]{6,11}\b`)
	reLabels  = regexp.MustCompile(`(?i)\b(name|birth|expiry|passport|gender|sex)\b`)
)

// naive heuristic confidence based on decoded text characteristics
func heuristicConfidence(txt string) float32 {
	// very simple: boost if we see common identity-document artifacts
	// (date-ish, ID-number-ish, field labels). Each adds a little.
	score := float32(0.2) // base
	if reDateish.MatchString(txt) {
		score += 0.2
	}
	if reIDish.MatchString(strings.ToUpper(txt)) {
		score += 0.15
	}
	if reLabels.MatchString(txt) {
		score += 0.15
	}
	if len(txt) > 120 {
		score += 0.1
	} // enough content
	if score > 1.0 {
		score = 1.0
	}
	return score
}
