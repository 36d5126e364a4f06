package pipeline

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// currencyAmount: an explicit currency marker directly before the
	// number, e.g. "₹500", "rs 500", "rs. 1,500.50", "rupaye 200".
	currencyAmount = regexp.MustCompile(`(?i)(?:₹|rs\.?\s*|rupees?\s*|rupaye\s*)(\d+(?:,\d{3})*(?:\.\d{2})?)`)

	// plainNumber is deliberately permissive: it grabs the first digit run
	// including stray commas and periods, and malformed input like
	// "12.5.7" resolves to its longest valid prefix. Speech recognisers
	// mangle numbers often enough that best-effort beats rejection here.
	plainNumber  = regexp.MustCompile(`\d+(?:[,.]\d+)*`)
	numberPrefix = regexp.MustCompile(`^\d+(?:\.\d+)?`)
)

// magnitudeUnit is one "numeral times a spoken multiplier" rule.
type magnitudeUnit struct {
	re         *regexp.Regexp
	multiplier int64
}

// magnitudeUnits in fixed priority order. The k rule needs the trailing
// word boundary so "5k" matches but "5kg" does not.
var magnitudeUnits = []magnitudeUnit{
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*k\b`), 1_000},
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:lakh|lac|लाख)`), 100_000},
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:crore|करोड़)`), 10_000_000},
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:thousand|hajar|हज़ार|hazar)`), 1_000},
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:hundred|sau|सौ)`), 100},
}

// ExtractAmount resolves a monetary value from one segment, or returns
// nil when the segment carries none. Rules run in order and the first hit
// wins: explicit currency prefix, magnitude suffix (5k, 2 lakh, das
// hajar), plain number, then the transliterated number-word lexicon.
// Magnitude runs before plain number so the numeral in "5k" cannot be
// claimed as a bare 5. A rule that parses to zero is a no-match, not a
// hit: the chain keeps going, and a segment whose only numeral is zero
// resolves to nil. Every returned Value is strictly positive.
func ExtractAmount(segment string) *AmountMatch {
	lower := strings.ToLower(segment)

	if m := currencyAmount.FindStringSubmatch(lower); m != nil {
		if v, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", "")); err == nil && v.IsPositive() {
			return &AmountMatch{Value: v, RawText: strings.TrimSpace(m[0])}
		}
	}

	for _, unit := range magnitudeUnits {
		m := unit.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		n, err := decimal.NewFromString(m[1])
		if err != nil || !n.IsPositive() {
			continue
		}
		return &AmountMatch{
			Value:   n.Mul(decimal.NewFromInt(unit.multiplier)),
			RawText: strings.TrimSpace(m[0]),
		}
	}

	if m := plainNumber.FindString(lower); m != "" {
		cleaned := strings.ReplaceAll(m, ",", "")
		if p := numberPrefix.FindString(cleaned); p != "" {
			if v, err := decimal.NewFromString(p); err == nil && v.IsPositive() {
				return &AmountMatch{Value: v, RawText: m}
			}
		}
	}

	// hindiNumbers is sorted longest-phrase-first, so compound phrases
	// like "paanch sau" are found before their atomic parts.
	for _, entry := range hindiNumbers {
		if strings.Contains(lower, entry.Phrase) {
			return &AmountMatch{Value: decimal.NewFromInt(entry.Value), RawText: entry.Phrase}
		}
	}

	return nil
}
