package parser

import (
	"fmt"

	"github.com/rupeetrail/stmt-ledger/internal/models"
)

// Format defines the interface for per-bank statement grammars.
type Format interface {
	// ParseTransactions extracts transactions from statement text,
	// preserving document order. A statement that yields no transactions
	// is a valid empty result, not an error.
	ParseTransactions(text string) ([]models.RawTransaction, error)
	// BankName returns the human-readable bank name.
	BankName() string
}

// UnsupportedBankError is returned when no bank signature matches the text.
type UnsupportedBankError struct {
	Snippet string
}

func (e *UnsupportedBankError) Error() string {
	return fmt.Sprintf("could not identify bank from statement text (starts with %q)", e.Snippet)
}

// bankSignatures are checked in order; first match wins.
var bankSignatures = []struct {
	code       models.BankCode
	signatures []string
}{
	{models.BankSBI, []string{"STATE BANK OF INDIA", "SBIN000"}},
	{models.BankHDFC, []string{"HDFC BANK", "HDFC0"}},
	{models.BankICICI, []string{"ICICI BANK", "ICIC0"}},
}

// Detect identifies the issuing bank by scanning for signature substrings.
// The scan is case-sensitive. Returns BankUnknown when nothing matches;
// it never fails.
func Detect(text string) models.BankCode {
	for _, b := range bankSignatures {
		if containsAny(text, b.signatures) {
			return b.code
		}
	}
	return models.BankUnknown
}

// New returns the format implementation for the given bank code.
func New(code models.BankCode) (Format, error) {
	switch code {
	case models.BankSBI:
		return &SBIFormat{}, nil
	case models.BankHDFC:
		return &HDFCFormat{}, nil
	case models.BankICICI:
		return &ICICIFormat{}, nil
	default:
		return nil, fmt.Errorf("unsupported bank code: %q", code)
	}
}

// Parse detects the bank and runs the matching format over the text.
// It performs no categorization.
func Parse(text string) (*models.ParseResult, error) {
	code := Detect(text)
	if code == models.BankUnknown {
		return nil, &UnsupportedBankError{Snippet: snippet(text, 80)}
	}

	f, err := New(code)
	if err != nil {
		return nil, err
	}

	txns, err := f.ParseTransactions(text)
	if err != nil {
		return nil, fmt.Errorf("parsing %s statement: %w", f.BankName(), err)
	}

	return &models.ParseResult{
		Bank:         code,
		BankName:     f.BankName(),
		Transactions: txns,
	}, nil
}

func snippet(text string, n int) string {
	text = collapseWhitespace(text)
	if len(text) > n {
		return text[:n] + "..."
	}
	return text
}
