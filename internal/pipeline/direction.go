package pipeline

import (
	"regexp"
	"strings"
)

// Contextual patterns, each applied once per segment regardless of how
// many times it occurs. Matching runs over the lowercased segment, so no
// case flags are needed.
var (
	// "from <source>", "se mila" — receiving constructions.
	inflowContext = regexp.MustCompile(`from\s+\w+|by\s+\w+|se\s+mila|se\s+aaya|से\s+मिला|से\s+आया`)

	// "for <thing>", "ke liye" — spending constructions. Weaker signal
	// than the inflow one, hence +1 against its +2.
	outflowContext = regexp.MustCompile(`for\s+\w+|on\s+\w+|ke\s+liye|के\s+लिए|mein\s+|में\s+|pe\s+|पे\s+`)

	strongInflowPhrase  = regexp.MustCompile(`paisa\s+aaya|paise\s+mile|payment\s+aa\s+gayi|credit\s+hua|account\s+mein\s+aaya`)
	strongOutflowPhrase = regexp.MustCompile(`paisa\s+diya|paise\s+diye|de\s+diya|kharch\s+kiya|pay\s+kiya|khareed\s+liya`)

	currencyMention     = regexp.MustCompile(`₹|rupaye|rupees|rs\.?`)
	currencyInflowVerb  = regexp.MustCompile(`mila|mile|received|got|earned|aaya|से\s+मिल`)
	currencyOutflowVerb = regexp.MustCompile(`diya|spent|paid|kharcha|kharch|के\s+लिए`)
)

// ScoreDirection tallies the inflow/outflow evidence in one segment.
// High-priority terms count +5, the broader lexicons +2 per present term,
// and the contextual patterns add their one-shot bonuses. Scores are
// presence-based: a term occurring three times still counts once.
func ScoreDirection(segment string) DirectionScore {
	lower := strings.ToLower(segment)
	var score DirectionScore

	for _, term := range highPriorityInflow {
		if strings.Contains(lower, term) {
			score.Inflow += 5
		}
	}
	for _, term := range inflowLexicon {
		if strings.Contains(lower, term) && !isHighPriority(term, highPriorityInflow) {
			score.Inflow += 2
		}
	}

	for _, term := range highPriorityOutflow {
		if strings.Contains(lower, term) {
			score.Outflow += 5
		}
	}
	for _, term := range outflowLexicon {
		if strings.Contains(lower, term) && !isHighPriority(term, highPriorityOutflow) {
			score.Outflow += 2
		}
	}

	if inflowContext.MatchString(lower) {
		score.Inflow += 2
	}
	if outflowContext.MatchString(lower) {
		score.Outflow++
	}
	if strongInflowPhrase.MatchString(lower) {
		score.Inflow += 3
	}
	if strongOutflowPhrase.MatchString(lower) {
		score.Outflow += 3
	}

	// A currency mention next to a direction verb nudges the score by
	// one. Inflow is checked first and the branches are exclusive.
	if currencyMention.MatchString(lower) {
		switch {
		case currencyInflowVerb.MatchString(lower):
			score.Inflow++
		case currencyOutflowVerb.MatchString(lower):
			score.Outflow++
		}
	}

	return score
}

// isHighPriority reports whether term is literally one of the
// high-priority entries. Only exact matches are excluded from the +2
// pass: "payment received" still scores even though it contains
// "received".
func isHighPriority(term string, priority []string) bool {
	for _, p := range priority {
		if term == p {
			return true
		}
	}
	return false
}
