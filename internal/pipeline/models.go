package pipeline

import (
	"github.com/shopspring/decimal"
)

// TransactionType says which way money moved: into or out of the account.
type TransactionType string

const (
	TypeCredit TransactionType = "credit"
	TypeDebit  TransactionType = "debit"
)

// Sentiment mirrors the transaction type for the dashboard widgets:
// inflows read as positive, outflows as negative.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
)

// Category is one label from the fixed spending/income taxonomy.
type Category string

const (
	CategorySalary        Category = "salary"
	CategoryFreelance     Category = "freelance"
	CategoryInvestment    Category = "investment"
	CategoryRefund        Category = "refund"
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryShopping      Category = "shopping"
	CategoryUtilities     Category = "utilities"
	CategoryEntertainment Category = "entertainment"
	CategoryHealth        Category = "health"
	CategoryEducation     Category = "education"
	CategoryRent          Category = "rent"
	CategoryEMI           Category = "emi"
	CategoryOtherIncome   Category = "other_income"
	CategoryOther         Category = "other"
)

// incomeCategories are the labels a credit-typed transaction may keep.
// Any other label is overridden to other_income after classification.
var incomeCategories = map[Category]bool{
	CategorySalary:      true,
	CategoryFreelance:   true,
	CategoryInvestment:  true,
	CategoryRefund:      true,
	CategoryOtherIncome: true,
}

// AmountMatch is a monetary value resolved from a segment, together with
// the text it was resolved from. Re-running extraction on RawText yields
// the same value.
type AmountMatch struct {
	Value   decimal.Decimal
	RawText string
}

// DirectionScore holds the weighted keyword tallies for one segment.
// Both counters are non-negative.
type DirectionScore struct {
	Inflow  int
	Outflow int
}

// Type returns credit only when the inflow score is strictly greater.
// Ties resolve to debit; an utterance that says nothing about direction
// is treated as an expense.
func (s DirectionScore) Type() TransactionType {
	if s.Inflow > s.Outflow {
		return TypeCredit
	}
	return TypeDebit
}

// Sentiment follows the same strict comparison as Type.
func (s DirectionScore) Sentiment() Sentiment {
	if s.Inflow > s.Outflow {
		return SentimentPositive
	}
	return SentimentNegative
}

// Transaction is one structured record produced from a transcript segment,
// ready to be handed to the transactions API. It carries no identity of
// its own; position in the output slice is its only ordering.
type Transaction struct {
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    Category        `json:"category"`
	Description string          `json:"description"`
	Sentiment   Sentiment       `json:"sentiment"`
}
