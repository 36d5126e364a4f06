package pipeline

import (
	"strings"
)

// ClassifyCategory walks the rule list in order and returns the first
// category with any keyword present in the lowercased segment. Rule order
// decides ties, which is why rules are a slice and not a map. No match
// falls through to "other".
func ClassifyCategory(segment string, rules []CategoryRule) Category {
	lower := strings.ToLower(segment)
	for _, rule := range rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return rule.Category
			}
		}
	}
	return CategoryOther
}

// AdjustCategoryForDirection reconciles the two classifiers after both
// have run: a credit cannot keep an expense label, so anything outside
// the income categories is reassigned to other_income. Debits pass
// through untouched.
func AdjustCategoryForDirection(category Category, txType TransactionType) Category {
	if txType == TypeCredit && !incomeCategories[category] {
		return CategoryOtherIncome
	}
	return category
}
