package parser

import (
	"regexp"
	"strings"

	"github.com/rupeetrail/stmt-ledger/internal/models"
)

// HDFCFormat handles HDFC Bank statements.
//
// HDFC statements print one transaction per line:
//
//	Date | Narration | Amount | Dr/Cr
//
// Date format: DD/MM/YYYY
// Example line: "15/01/2024  UPI/PAYTM/ZOMATO/12345  340.00  Dr"
type HDFCFormat struct{}

func (f *HDFCFormat) BankName() string {
	return "HDFC Bank"
}

// HDFC transaction line pattern: DATE  NARRATION  AMOUNT  Dr|Cr
var hdfcTxnPattern = regexp.MustCompile(
	`(\d{2}/\d{2}/\d{4})\s+(.+?)\s+([\d,]+\.\d{2})\s*(Dr|Cr)\b`,
)

// ParseTransactions scans the whole text for transaction lines, stateless,
// preserving match order.
func (f *HDFCFormat) ParseTransactions(text string) ([]models.RawTransaction, error) {
	var txns []models.RawTransaction
	for _, m := range hdfcTxnPattern.FindAllStringSubmatch(text, -1) {
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
