package models

import "github.com/shopspring/decimal"

// TxnType marks the direction of a transaction.
type TxnType string

const (
	TxnDebit  TxnType = "DEBIT"
	TxnCredit TxnType = "CREDIT"
)

// RawTransaction is a single parsed statement entry before categorization.
// Debits carry a negative amount, credits a positive one. Balance is only
// set by formats that print a running balance column.
type RawTransaction struct {
	Date        string              `json:"date"` // ISO YYYY-MM-DD
	Description string              `json:"description"`
	Amount      decimal.Decimal     `json:"amount"`
	Type        TxnType             `json:"type"`
	Balance     decimal.NullDecimal `json:"balance,omitempty"`
	RawText     string              `json:"rawText,omitempty"`
}

// BankCode identifies a supported statement format.
type BankCode string

const (
	BankSBI     BankCode = "sbi"
	BankHDFC    BankCode = "hdfc"
	BankICICI   BankCode = "icici"
	BankUnknown BankCode = ""
)

// ParseResult is the output of parsing one statement.
// Transactions keep document order.
type ParseResult struct {
	Bank         BankCode         `json:"bank"`
	BankName     string           `json:"bankName"`
	Transactions []RawTransaction `json:"transactions"`
}

// MatchMethod names the categorization tier that produced a match.
type MatchMethod string

const (
	MatchMerchant MatchMethod = "merchant_match"
	MatchKeyword  MatchMethod = "keyword_match"
	MatchUPI      MatchMethod = "upi_pattern"
	MatchAmount   MatchMethod = "amount_heuristic"
)

// CategorizedTransaction is a RawTransaction enriched with a spending
// category. Confidence is a fixed per-tier constant, not a probability.
type CategorizedTransaction struct {
	RawTransaction
	Category     string      `json:"category"`
	Subcategory  string      `json:"subcategory,omitempty"`
	Confidence   int         `json:"confidence"`
	NeedsReview  bool        `json:"needsReview"`
	MatchMethod  MatchMethod `json:"matchMethod"`
	MatchedToken string      `json:"matchedToken"`
}

// Summary aggregates one statement's categorized transactions.
type Summary struct {
	TotalDebits      decimal.Decimal            `json:"totalDebits"`  // absolute sum of debit amounts
	TotalCredits     decimal.Decimal            `json:"totalCredits"` // sum of credit amounts
	DebitsByCategory map[string]decimal.Decimal `json:"debitsByCategory"`
	NeedsReviewCount int                        `json:"needsReviewCount"`
	MeanConfidence   float64                    `json:"meanConfidence"`
}
