package processor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rupeetrail/stmt-ledger/internal/models"
	"github.com/rupeetrail/stmt-ledger/internal/parser"
)

const hdfcSampleStatement = `HDFC BANK
Statement of account XXXXXXXX1234

15/01/2024  UPI/PAYTM/ZOMATO/12345  340.00  Dr
16/01/2024  NEFT CR ACME CORP JAN SALARY  50,000.00  Cr
17/01/2024  ATM CASH WITHDRAWAL 2500.00  2,500.00  Dr`

func TestExtractTransactions(t *testing.T) {
	p := New()

	ex, err := p.ExtractTransactions(hdfcSampleStatement)
	require.NoError(t, err)

	assert.Equal(t, models.BankHDFC, ex.Bank)
	assert.Equal(t, "HDFC Bank", ex.BankName)
	require.Len(t, ex.Transactions, 3)

	zomato := ex.Transactions[0]
	assert.Equal(t, "2024-01-15", zomato.Date)
	assert.Equal(t, "-340.00", zomato.Amount.StringFixed(2))
	assert.Equal(t, models.TxnDebit, zomato.Type)
	assert.Equal(t, "Food & Dining", zomato.Category)
	assert.Equal(t, "Food Delivery", zomato.Subcategory)
	assert.Equal(t, 95, zomato.Confidence)
	assert.Equal(t, models.MatchMerchant, zomato.MatchMethod)
	assert.Equal(t, "zomato", zomato.MatchedToken)
	assert.False(t, zomato.NeedsReview)

	atm := ex.Transactions[2]
	assert.Equal(t, "Shopping", atm.Category)
	assert.Equal(t, 35, atm.Confidence)
	assert.Equal(t, models.MatchAmount, atm.MatchMethod)
	assert.True(t, atm.NeedsReview)
}

func TestExtractTransactions_Summary(t *testing.T) {
	p := New()

	ex, err := p.ExtractTransactions(hdfcSampleStatement)
	require.NoError(t, err)

	s := ex.Summary
	assert.Equal(t, "2840.00", s.TotalDebits.StringFixed(2))
	assert.Equal(t, "50000.00", s.TotalCredits.StringFixed(2))
	assert.Equal(t, "340.00", s.DebitsByCategory["Food & Dining"].StringFixed(2))
	assert.Equal(t, "2500.00", s.DebitsByCategory["Shopping"].StringFixed(2))

	// The salary credit has no rule match and falls to the amount tier, so
	// two of three transactions need review.
	assert.Equal(t, 2, s.NeedsReviewCount)
	assert.InDelta(t, (95.0+30.0+35.0)/3.0, s.MeanConfidence, 0.001)
}

func TestExtractTransactions_UnsupportedBankPropagates(t *testing.T) {
	p := New()

	_, err := p.ExtractTransactions("Acme Credit Union\n01/01/2024 COFFEE 4.50 Dr")
	require.Error(t, err)

	var unsupported *parser.UnsupportedBankError
	assert.True(t, errors.As(err, &unsupported), "expected UnsupportedBankError, got %T", err)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.True(t, s.TotalDebits.IsZero())
	assert.True(t, s.TotalCredits.IsZero())
	assert.Equal(t, 0, s.NeedsReviewCount)
	assert.Equal(t, 0.0, s.MeanConfidence)
}
