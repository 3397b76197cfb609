package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/rupeetrail/stmt-ledger/internal/processor"
)

// CSVWriter writes a categorized ledger to CSV format.
type CSVWriter struct {
	IncludeHeader bool
}

// WriteToFile writes the extraction to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, ex *processor.Extraction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, ex)
}

// Write writes the extraction in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, ex *processor.Extraction) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	if w.IncludeHeader {
		writer.Write([]string{"# Bank", ex.BankName})
		writer.Write([]string{"# Total Debits", ex.Summary.TotalDebits.StringFixed(2)})
		writer.Write([]string{"# Total Credits", ex.Summary.TotalCredits.StringFixed(2)})
		writer.Write([]string{"# Needs Review", strconv.Itoa(ex.Summary.NeedsReviewCount)})
	}

	header := []string{
		"Date", "Description", "Type", "Amount", "Balance",
		"Category", "Subcategory", "Confidence", "Needs Review",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, txn := range ex.Transactions {
		row := []string{
			txn.Date,
			txn.Description,
			string(txn.Type),
			txn.Amount.StringFixed(2),
			formatBalance(txn.Balance),
			txn.Category,
			txn.Subcategory,
			strconv.Itoa(txn.Confidence),
			strconv.FormatBool(txn.NeedsReview),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}

func formatBalance(b decimal.NullDecimal) string {
	if !b.Valid {
		return ""
	}
	return b.Decimal.StringFixed(2)
}
