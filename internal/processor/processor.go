// Package processor composes the statement parser and the categorizer into
// the full text-to-ledger pipeline.
package processor

import (
	"github.com/shopspring/decimal"

	"github.com/rupeetrail/stmt-ledger/internal/categorize"
	"github.com/rupeetrail/stmt-ledger/internal/models"
	"github.com/rupeetrail/stmt-ledger/internal/parser"
)

// Extraction is the full pipeline output for one statement.
type Extraction struct {
	Bank         models.BankCode                 `json:"bank"`
	BankName     string                          `json:"bankName"`
	Transactions []models.CategorizedTransaction `json:"transactions"`
	Summary      models.Summary                  `json:"summary"`
}

// Processor runs statement text through parsing and categorization.
// It holds only the immutable rule tables, so one Processor can serve
// concurrent callers.
type Processor struct {
	categorizer *categorize.Categorizer
}

// New returns a processor using the built-in category rules.
func New() *Processor {
	return &Processor{categorizer: categorize.NewCategorizer()}
}

// NewWithRules returns a processor with a custom category rule table.
func NewWithRules(rules []categorize.CategoryRule) *Processor {
	return &Processor{categorizer: categorize.NewCategorizerWithRules(rules)}
}

// ExtractTransactions parses the statement text, categorizes every
// transaction, and computes summary statistics. Parse failures propagate
// unchanged; categorization never fails.
func (p *Processor) ExtractTransactions(text string) (*Extraction, error) {
	result, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}

	categorized := make([]models.CategorizedTransaction, 0, len(result.Transactions))
	for _, tx := range result.Transactions {
		categorized = append(categorized, p.categorizer.ProcessTransaction(tx))
	}

	return &Extraction{
		Bank:         result.Bank,
		BankName:     result.BankName,
		Transactions: categorized,
		Summary:      Summarize(categorized),
	}, nil
}

// Summarize aggregates categorized transactions: debit/credit totals,
// per-category debit totals, review count, and mean confidence.
func Summarize(txns []models.CategorizedTransaction) models.Summary {
	s := models.Summary{
		TotalDebits:      decimal.Zero,
		TotalCredits:     decimal.Zero,
		DebitsByCategory: make(map[string]decimal.Decimal),
	}

	confidenceSum := 0
	for _, tx := range txns {
		if tx.Type == models.TxnDebit {
			amount := tx.Amount.Abs()
			s.TotalDebits = s.TotalDebits.Add(amount)
			s.DebitsByCategory[tx.Category] = s.DebitsByCategory[tx.Category].Add(amount)
		} else {
			s.TotalCredits = s.TotalCredits.Add(tx.Amount)
		}
		if tx.NeedsReview {
			s.NeedsReviewCount++
		}
		confidenceSum += tx.Confidence
	}

	if len(txns) > 0 {
		s.MeanConfidence = float64(confidenceSum) / float64(len(txns))
	}
	return s
}
