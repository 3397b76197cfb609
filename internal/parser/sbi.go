package parser

import (
	"regexp"
	"strings"

	"github.com/rupeetrail/stmt-ledger/internal/models"
)

// SBIFormat handles State Bank of India statements.
//
// SBI statements print one transaction per line:
//
//	Date | Description | Amount | Dr/Cr
//
// Date format: DD-MM-YYYY
// Example line: "15-01-2024  POS 416021XXXXXX SWIGGY BANGALORE  450.00 Dr"
type SBIFormat struct{}

func (f *SBIFormat) BankName() string {
	return "State Bank of India"
}

// SBI transaction line pattern: DATE  DESCRIPTION  AMOUNT  Dr|Cr
var sbiTxnPattern = regexp.MustCompile(
	`(\d{2}-\d{2}-\d{4})\s+(.+?)\s+([\d,]+\.\d{2})\s*(Dr|Cr)\b`,
)

// ParseTransactions scans the whole text for transaction lines. No state
// carries between matches; match order in the text is transaction order.
func (f *SBIFormat) ParseTransactions(text string) ([]models.RawTransaction, error) {
	var txns []models.RawTransaction
	for _, m := range sbiTxnPattern.FindAllStringSubmatch(text, -1) {
		amount, err := parseAmount(m[3])
		if err != nil {
			continue
		}
		txn := models.RawTransaction{
			Date:        normalizeDate(m[1]),
			Description: collapseWhitespace(m[2]),
			Amount:      amount,
			Type:        models.TxnCredit,
			RawText:     strings.TrimSpace(m[0]),
		}
		if m[4] == "Dr" {
			txn.Amount = amount.Neg()
			txn.Type = models.TxnDebit
		}
		txns = append(txns, txn)
	}
	return txns, nil
}
