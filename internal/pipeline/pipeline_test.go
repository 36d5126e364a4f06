package pipeline_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/fredrick-nadar/MumbaiHacks25-sub002/internal/pipeline"
)

func assertTransaction(t *testing.T, got pipeline.Transaction, amount int64, txType pipeline.TransactionType, category pipeline.Category) {
	t.Helper()
	if !got.Amount.Equal(decimal.NewFromInt(amount)) {
		t.Errorf("amount = %s, want %d", got.Amount, amount)
	}
	if got.Type != txType {
		t.Errorf("type = %v, want %v", got.Type, txType)
	}
	if got.Category != category {
		t.Errorf("category = %v, want %v", got.Category, category)
	}
	wantSentiment := pipeline.SentimentNegative
	if txType == pipeline.TypeCredit {
		wantSentiment = pipeline.SentimentPositive
	}
	if got.Sentiment != wantSentiment {
		t.Errorf("sentiment = %v, want %v", got.Sentiment, wantSentiment)
	}
}

func TestAnalyzeMixedLanguageConjunction(t *testing.T) {
	a := pipeline.NewAnalyzer()

	txs := a.Analyze(context.Background(), "Paid 1500 for Uber and Rs 200 I received from my mother")
	if len(txs) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txs))
	}

	assertTransaction(t, txs[0], 1500, pipeline.TypeDebit, pipeline.CategoryTransport)
	if txs[0].Description != "Paid 1500 for Uber" {
		t.Errorf("description = %q", txs[0].Description)
	}

	assertTransaction(t, txs[1], 200, pipeline.TypeCredit, pipeline.CategoryOtherIncome)
	if txs[1].Description != "Rs 200 I received from my mother" {
		t.Errorf("description = %q", txs[1].Description)
	}
}

func TestAnalyzeMagnitudeShorthand(t *testing.T) {
	a := pipeline.NewAnalyzer()

	txs := a.Analyze(context.Background(), "5k salary mili")
	if len(txs) != 1 {
		t.Fatalf("got %d transactions, want 1", len(txs))
	}
	assertTransaction(t, txs[0], 5000, pipeline.TypeCredit, pipeline.CategorySalary)
}

func TestAnalyzeNoTransaction(t *testing.T) {
	a := pipeline.NewAnalyzer()

	for _, transcript := range []string{"hello there", "", "   "} {
		if txs := a.Analyze(context.Background(), transcript); len(txs) != 0 {
			t.Errorf("Analyze(%q) produced %d transactions, want 0", transcript, len(txs))
		}
	}
}

func TestAnalyzeHinglishExpense(t *testing.T) {
	a := pipeline.NewAnalyzer()

	txs := a.Analyze(context.Background(), "Khane mein 500 udaye")
	if len(txs) != 1 {
		t.Fatalf("got %d transactions, want 1", len(txs))
	}
	assertTransaction(t, txs[0], 500, pipeline.TypeDebit, pipeline.CategoryFood)
	if txs[0].Description != "Khane mein 500 udaye" {
		t.Errorf("description = %q", txs[0].Description)
	}
}

func TestAnalyzePreservesSegmentOrder(t *testing.T) {
	a := pipeline.NewAnalyzer()

	txs := a.Analyze(context.Background(), "Got 500 from client. Spent 200 on chai.")
	if len(txs) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txs))
	}
	assertTransaction(t, txs[0], 500, pipeline.TypeCredit, pipeline.CategoryFreelance)
	assertTransaction(t, txs[1], 200, pipeline.TypeDebit, pipeline.CategoryFood)
}

func TestAnalyzeSynthesizesShortDescription(t *testing.T) {
	a := pipeline.NewAnalyzer()

	txs := a.Analyze(context.Background(), "₹99 chai")
	if len(txs) != 1 {
		t.Fatalf("got %d transactions, want 1", len(txs))
	}
	assertTransaction(t, txs[0], 99, pipeline.TypeDebit, pipeline.CategoryFood)
	if txs[0].Description != "Spent ₹99 - food" {
		t.Errorf("description = %q, want synthesized summary", txs[0].Description)
	}
}

func TestAnalyzeWithCustomRules(t *testing.T) {
	rules := []pipeline.CategoryRule{
		{Category: pipeline.CategoryEntertainment, Keywords: []string{"chai"}},
	}
	a := pipeline.NewAnalyzerWithRules(rules)

	txs := a.Analyze(context.Background(), "Spent 200 on chai")
	if len(txs) != 1 {
		t.Fatalf("got %d transactions, want 1", len(txs))
	}
	if txs[0].Category != pipeline.CategoryEntertainment {
		t.Errorf("category = %v, want entertainment via custom rules", txs[0].Category)
	}

	// Empty rule set falls back to the built-in taxonomy.
	fallback := pipeline.NewAnalyzerWithRules(nil)
	txs = fallback.Analyze(context.Background(), "Spent 200 on chai")
	if len(txs) != 1 || txs[0].Category != pipeline.CategoryFood {
		t.Errorf("fallback analyzer got %v, want food", txs)
	}
}

func TestAnalyzeSkipsZeroAmounts(t *testing.T) {
	a := pipeline.NewAnalyzer()

	for _, transcript := range []string{"spent 0 on chai", "paid rs 0 fee"} {
		if txs := a.Analyze(context.Background(), transcript); len(txs) != 0 {
			t.Errorf("Analyze(%q) produced %d transactions, want 0", transcript, len(txs))
		}
	}

	// Only the zero-amount segment drops; the rest of the transcript still
	// resolves.
	txs := a.Analyze(context.Background(), "Spent 0 on chai. Got 500 from client.")
	if len(txs) != 1 {
		t.Fatalf("got %d transactions, want 1", len(txs))
	}
	assertTransaction(t, txs[0], 500, pipeline.TypeCredit, pipeline.CategoryFreelance)
	if !txs[0].Amount.IsPositive() {
		t.Errorf("amount = %s, want strictly positive", txs[0].Amount)
	}
}
