package pipeline

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// amountPattern recognises one monetary mention: an optional currency
	// marker, digits with optional thousands grouping and an optional
	// two-decimal paise fraction.
	amountPattern = regexp.MustCompile(`(?i)(?:rs\.?|rupees?|₹)?\s*\d+(?:,\d{3})*(?:\.\d{2})?`)

	sentenceBoundary = regexp.MustCompile(`[.!?]+`)
	andConjunction   = regexp.MustCompile(`(?i)\s+and\s+`)
	leadingConnector = regexp.MustCompile(`(?i)^(?:and|but|also|then)\s+`)
)

// contextWindow is how many bytes of surrounding speech are kept on each
// side of an amount when window extraction has to carve segments out of a
// run-on utterance.
const contextWindow = 50

// SegmentTranscript splits one utterance into substrings that each
// describe a single transaction. Methods are tried in order and the first
// that yields segments wins: sentence boundaries, "and" conjunctions,
// then windows carved around each amount. A transcript with at most one
// amount mention is always returned whole, as is anything the fallback
// chain cannot split. Segments come back in transcript order.
func SegmentTranscript(text string) []string {
	amounts := amountPattern.FindAllStringIndex(text, -1)
	if len(amounts) <= 1 {
		return []string{text}
	}

	// Method 1: sentence boundaries. Keep only the sentences that carry
	// an amount.
	if segments := splitBySentence(text); len(segments) > 0 {
		return segments
	}

	// Method 2: "and" conjunctions, with context carried across parts.
	if segments := splitByConjunction(text); len(segments) > 0 {
		return segments
	}

	// Method 3: a window around each amount mention.
	if segments := extractWindows(text, amounts); len(segments) > 0 {
		return segments
	}

	return []string{text}
}

func splitBySentence(text string) []string {
	var sentences []string
	for _, s := range sentenceBoundary.Split(text, -1) {
		if t := strings.TrimSpace(s); t != "" {
			sentences = append(sentences, t)
		}
	}
	if len(sentences) < 2 {
		return nil
	}
	var out []string
	for _, s := range sentences {
		if amountPattern.MatchString(s) {
			out = append(out, s)
		}
	}
	return out
}

func splitByConjunction(text string) []string {
	parts := andConjunction.Split(text, -1)
	if len(parts) < 2 {
		return nil
	}
	var out []string
	for i, p := range parts {
		part := strings.TrimSpace(p)
		if !amountPattern.MatchString(part) {
			continue
		}
		if containsTrigger(part) || (i > 0 && containsTrigger(parts[i-1])) {
			// Either the part names its own action ("paid 1500 for Uber")
			// or it leans on the previous one ("... and 200 for food").
			out = append(out, part)
			continue
		}
		// An amount with no action context still reads as a transaction.
		out = append(out, part)
	}
	return out
}

func extractWindows(text string, amounts [][]int) []string {
	var out []string
	for i, m := range amounts {
		start := m[0] - contextWindow
		if start < 0 {
			start = 0
		}
		end := m[1] + contextWindow
		if end > len(text) {
			end = len(text)
		}
		for end < len(text) && !utf8.RuneStart(text[end]) {
			end++
		}

		// Walk the start back to a word boundary, then forward again to
		// the rightmost trigger word preceding the amount, so the window
		// opens on the verb that governs it.
		for start > 0 && text[start] != ' ' && text[start] != '.' {
			start--
		}
		before := strings.ToLower(text[start:m[0]])
		pos := -1
		for _, trigger := range actionTriggers {
			if p := strings.LastIndex(before, trigger); p > pos {
				pos = p
			}
		}
		if pos >= 0 {
			start += pos
		}

		// Never run into the next amount; it belongs to the next window.
		if i < len(amounts)-1 && amounts[i+1][0] < end {
			end = amounts[i+1][0]
		}

		window := strings.TrimSpace(text[start:end])
		window = leadingConnector.ReplaceAllString(window, "")
		if utf8.RuneCountInString(window) > 5 && amountPattern.MatchString(window) {
			out = append(out, window)
		}
	}
	return out
}

func containsTrigger(s string) bool {
	lower := strings.ToLower(s)
	for _, trigger := range actionTriggers {
		if strings.Contains(lower, trigger) {
			return true
		}
	}
	return false
}
