package pipeline

import (
	"context"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/fredrick-nadar/MumbaiHacks25-sub002/internal/logger"
)

// Analyzer turns raw speech transcripts into structured transactions.
// It is stateless apart from its category rules; one Analyzer may be
// shared across goroutines and every Analyze call is independent.
type Analyzer struct {
	rules []CategoryRule
}

// NewAnalyzer builds an Analyzer with the built-in category taxonomy.
func NewAnalyzer() *Analyzer {
	return &Analyzer{rules: DefaultCategoryRules()}
}

// NewAnalyzerWithRules builds an Analyzer with a custom ordered taxonomy,
// e.g. one loaded via LoadCategoryRules.
func NewAnalyzerWithRules(rules []CategoryRule) *Analyzer {
	if len(rules) == 0 {
		return NewAnalyzer()
	}
	return &Analyzer{rules: rules}
}

// Analyze runs the full pipeline over one transcript:
//
//  1. Segment the utterance into candidate transaction substrings.
//  2. Per segment: extract an amount, score the direction, classify the
//     category, then reconcile category against direction.
//  3. Assemble one Transaction per segment that produced an amount.
//
// Segments without a resolvable amount are dropped silently — producing
// fewer transactions is the failure mode here, never an error. The
// returned slice preserves segment order and is empty (not nil-checked by
// callers) when nothing in the transcript looks like a transaction.
func (a *Analyzer) Analyze(ctx context.Context, transcript string) []Transaction {
	log := logger.FromContext(ctx).With().
		Str("analysis_run_id", uuid.NewString()).
		Logger()

	segments := SegmentTranscript(transcript)
	log.Debug().Int("segments", len(segments)).Msg("Transcript segmented")

	transactions := make([]Transaction, 0, len(segments))
	for _, segment := range segments {
		amount := ExtractAmount(segment)
		if amount == nil {
			log.Debug().Str("segment", segment).Msg("No amount resolved, segment skipped")
			continue
		}

		score := ScoreDirection(segment)
		txType := score.Type()
		category := AdjustCategoryForDirection(ClassifyCategory(segment, a.rules), txType)

		tx := Transaction{
			Amount:      amount.Value,
			Type:        txType,
			Category:    category,
			Description: buildDescription(segment, amount, txType, category),
			Sentiment:   score.Sentiment(),
		}
		transactions = append(transactions, tx)

		log.Debug().
			Str("amount", amount.Value.String()).
			Str("type", string(txType)).
			Str("category", string(category)).
			Int("inflow_score", score.Inflow).
			Int("outflow_score", score.Outflow).
			Msg("Segment resolved")
	}

	return transactions
}

// buildDescription uses the spoken segment itself, capitalised, as the
// record description. Very short segments carry too little context to be
// useful on a statement line, so anything under 10 runes is replaced by a
// synthesized summary.
func buildDescription(segment string, amount *AmountMatch, txType TransactionType, category Category) string {
	description := capitalizeFirst(segment)
	if utf8.RuneCountInString(description) < 10 {
		verb := "Spent"
		if txType == TypeCredit {
			verb = "Received"
		}
		description = fmt.Sprintf("%s ₹%s - %s", verb, amount.Value.String(), category)
	}
	return description
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
