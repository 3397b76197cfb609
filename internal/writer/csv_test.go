package writer

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rupeetrail/stmt-ledger/internal/models"
	"github.com/rupeetrail/stmt-ledger/internal/processor"
)

func sampleExtraction() *processor.Extraction {
	txns := []models.CategorizedTransaction{
		{
			RawTransaction: models.RawTransaction{
				Date:        "2024-01-15",
				Description: "UPI/PAYTM/ZOMATO/12345",
				Amount:      decimal.RequireFromString("-340.00"),
				Type:        models.TxnDebit,
			},
			Category:     "Food & Dining",
			Subcategory:  "Food Delivery",
			Confidence:   95,
			MatchMethod:  models.MatchMerchant,
			MatchedToken: "zomato",
		},
		{
			RawTransaction: models.RawTransaction{
				Date:        "2024-01-16",
				Description: "NEFT-ACME CORP SALARY",
				Amount:      decimal.RequireFromString("50000.00"),
				Type:        models.TxnCredit,
				Balance:     decimal.NewNullDecimal(decimal.RequireFromString("61050.00")),
			},
			Category:    "Investment",
			Confidence:  30,
			NeedsReview: true,
			MatchMethod: models.MatchAmount,
		},
	}
	return &processor.Extraction{
		Bank:         models.BankICICI,
		BankName:     "ICICI Bank",
		Transactions: txns,
		Summary:      processor.Summarize(txns),
	}
}

func TestCSVWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{IncludeHeader: false}
	require.NoError(t, w.Write(&buf, sampleExtraction()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // column header + 2 rows

	assert.Equal(t, []string{
		"Date", "Description", "Type", "Amount", "Balance",
		"Category", "Subcategory", "Confidence", "Needs Review",
	}, records[0])

	assert.Equal(t, []string{
		"2024-01-15", "UPI/PAYTM/ZOMATO/12345", "DEBIT", "-340.00", "",
		"Food & Dining", "Food Delivery", "95", "false",
	}, records[1])

	assert.Equal(t, "61050.00", records[2][4])
	assert.Equal(t, "true", records[2][8])
}

func TestCSVWriter_IncludeHeader(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{IncludeHeader: true}
	require.NoError(t, w.Write(&buf, sampleExtraction()))

	r := csv.NewReader(&buf)
	r.FieldsPerRecord = -1 // metadata rows are shorter than data rows
	records, err := r.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"# Bank", "ICICI Bank"}, records[0])
	assert.Equal(t, []string{"# Total Debits", "340.00"}, records[1])
	assert.Equal(t, []string{"# Total Credits", "50000.00"}, records[2])
}
