// Package categorize assigns spending categories to transaction descriptions
// using a deterministic rule cascade. No ML, no probabilities: every match is
// explainable by the tier and token that produced it, and the same input
// always yields the same output.
package categorize

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rupeetrail/stmt-ledger/internal/models"
)

// Confidence constants per cascade tier.
const (
	confidenceMerchant = 95
	confidenceKeyword  = 80
	confidenceUPI      = 85

	confidenceSmallAmount  = 40
	confidenceMediumAmount = 35
	confidenceLargeAmount  = 30

	// reviewThreshold flags matches below this confidence for human review.
	reviewThreshold = 70
)

// Amount fallback buckets.
var (
	smallAmountLimit  = decimal.NewFromInt(500)
	mediumAmountLimit = decimal.NewFromInt(5000)
)

// Result is the outcome of categorizing a single description.
type Result struct {
	Category   string
	Confidence int
	Method     models.MatchMethod
	Matched    string
}

// Categorizer matches descriptions against an ordered category rule table.
// The table is set at construction and never mutated, so a single Categorizer
// is safe for concurrent use.
type Categorizer struct {
	rules []CategoryRule
}

// NewCategorizer returns a categorizer with the built-in rule table.
func NewCategorizer() *Categorizer {
	return &Categorizer{rules: DefaultRules()}
}

// NewCategorizerWithRules returns a categorizer using a custom rule table.
func NewCategorizerWithRules(rules []CategoryRule) *Categorizer {
	return &Categorizer{rules: rules}
}

var (
	nonAlnumPattern  = regexp.MustCompile(`[^a-z0-9]+`)
	upiTokenPattern  = regexp.MustCompile(`upi[/-]([^/\- ]+)[/-]`)
	amountInDescText = regexp.MustCompile(`[\d,]+\.\d{1,2}|\d+`)
)

// normalizeDescription lowercases and collapses every non-alphanumeric run
// to a single space, so "UPI/PAYTM/ZOMATO" and "upi paytm zomato" match the
// same tokens.
func normalizeDescription(s string) string {
	s = strings.ToLower(s)
	s = nonAlnumPattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Categorize assigns a category to a description. It is total: when no rule
// matches, the amount fallback tier guarantees an answer.
func (c *Categorizer) Categorize(description string) Result {
	return c.categorize(description, decimal.Zero)
}

// categorize runs the cascade in strict priority order, first hit wins.
// txnAmount is a hint for the fallback tier when the description itself
// carries no amount; zero means no hint.
func (c *Categorizer) categorize(description string, txnAmount decimal.Decimal) Result {
	normalized := normalizeDescription(description)

	// Tier 1: curated merchant names, highest confidence.
	for _, rule := range c.rules {
		for _, merchant := range rule.Merchants {
			if strings.Contains(normalized, merchant) {
				return Result{rule.Category, confidenceMerchant, models.MatchMerchant, merchant}
			}
		}
	}

	// Tier 2: broader keywords.
	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(normalized, keyword) {
				return Result{rule.Category, confidenceKeyword, models.MatchKeyword, keyword}
			}
		}
	}

	// Tier 3: structural UPI token. The token between the UPI delimiters is
	// re-tested against the merchant lists with spaces squashed on both
	// sides, which catches multi-word merchants whose UPI ids run the words
	// together. Confidence is always 85 here, even for tokens that sit on a
	// tier-1 merchant list.
	if token := extractUPIToken(description); token != "" {
		for _, rule := range c.rules {
			for _, merchant := range rule.Merchants {
				if strings.Contains(token, strings.ReplaceAll(merchant, " ", "")) {
					return Result{rule.Category, confidenceUPI, models.MatchUPI, merchant}
				}
			}
		}
	}

	// Tier 4: amount heuristic. Guarantees every transaction gets some
	// category; always low confidence.
	amount, matched := extractAmount(description)
	if matched == "" && !txnAmount.IsZero() {
		amount = txnAmount.Abs()
		matched = amount.String()
	}
	switch {
	case amount.LessThan(smallAmountLimit):
		return Result{"Food & Dining", confidenceSmallAmount, models.MatchAmount, matched}
	case amount.LessThan(mediumAmountLimit):
		return Result{"Shopping", confidenceMediumAmount, models.MatchAmount, matched}
	default:
		return Result{"Investment", confidenceLargeAmount, models.MatchAmount, matched}
	}
}

// extractUPIToken pulls the merchant token out of "upi/merchant/..." or
// "upi-merchant-..." forms, case-insensitively, stripped down to its
// alphanumeric characters. Returns "" when the description has no such
// structure.
func extractUPIToken(description string) string {
	m := upiTokenPattern.FindStringSubmatch(strings.ToLower(description))
	if m == nil {
		return ""
	}
	return nonAlnumPattern.ReplaceAllString(m[1], "")
}

// extractAmount finds the first decimal amount embedded in the description.
func extractAmount(description string) (decimal.Decimal, string) {
	m := amountInDescText.FindString(description)
	if m == "" {
		return decimal.Zero, ""
	}
	amount, err := decimal.NewFromString(strings.ReplaceAll(m, ",", ""))
	if err != nil {
		return decimal.Zero, ""
	}
	return amount, m
}

// Subcategory derives a finer-grained label for an already-assigned
// category. Returns "" when the category has no subcategory table or nothing
// matches.
func Subcategory(category, description string) string {
	lower := strings.ToLower(description)
	for _, sub := range subcategoryTables[category] {
		if sub.pattern.MatchString(lower) {
			return sub.name
		}
	}
	return ""
}

// ProcessTransaction enriches a parsed transaction with its category,
// subcategory, and review flag.
func (c *Categorizer) ProcessTransaction(tx models.RawTransaction) models.CategorizedTransaction {
	res := c.categorize(tx.Description, tx.Amount)
	return models.CategorizedTransaction{
		RawTransaction: tx,
		Category:       res.Category,
		Subcategory:    Subcategory(res.Category, tx.Description),
		Confidence:     res.Confidence,
		NeedsReview:    res.Confidence < reviewThreshold,
		MatchMethod:    res.Method,
		MatchedToken:   res.Matched,
	}
}
