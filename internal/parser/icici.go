package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rupeetrail/stmt-ledger/internal/models"
)

// ICICIFormat handles ICICI Bank statements.
//
// ICICI statements wrap a single logical transaction across multiple physical
// lines (long UPI reference strings wrap unpredictably) and surround the
// transaction table with boilerplate. A single-pass regex cannot reliably
// pair dates with amounts here, so parsing runs as an explicit line-oriented
// state machine with one pending accumulator at a time:
//
//	seeking -> inTable  on the concatenated column-header line
//	inTable -> done     on a "Total:" or "Page " line
//
// While in the table, a line starting with DD-MM-YYYY begins a new
// transaction (flushing the previous one); any other line either carries the
// trailing amount pair or is a description continuation.
type ICICIFormat struct{}

func (f *ICICIFormat) BankName() string {
	return "ICICI Bank"
}

// iciciHeaderToken is the table header as it comes out of PDF extraction,
// with the column titles run together.
const iciciHeaderToken = "DATEMODEPARTICULARSDEPOSITSWITHDRAWALSBALANCE"

var (
	iciciDateLinePattern = regexp.MustCompile(`^(\d{2}-\d{2}-\d{4})\s*(.*)$`)

	// Withdrawal rows print the amount and running balance with no
	// separating whitespace; deposit rows separate them.
	iciciWithdrawalPattern = regexp.MustCompile(`([\d,]+\.\d{2})([\d,]+\.\d{2})\s*$`)
	iciciDepositPattern    = regexp.MustCompile(`([\d,]+\.\d{2})\s+([\d,]+\.\d{2})\s*$`)

	iciciBoilerplatePattern = regexp.MustCompile(`(?i)CMS TRANSACTION|NET BANKING`)
)

type iciciParseState int

const (
	iciciSeeking iciciParseState = iota
	iciciInTable
	iciciDone
)

// iciciAccumulator holds one in-progress transaction while later lines may
// still supply description text or the amount pair.
type iciciAccumulator struct {
	date      string // DD-MM-YYYY as printed
	descParts []string
	amount    decimal.Decimal
	balance   decimal.NullDecimal
	hasAmount bool
	rawLines  []string
}

func (f *ICICIFormat) ParseTransactions(text string) ([]models.RawTransaction, error) {
	var txns []models.RawTransaction
	var pending *iciciAccumulator
	state := iciciSeeking

	for _, rawLine := range strings.Split(text, "\n") {
		if state == iciciDone {
			break
		}
		line := normalizeLine(rawLine)

		if state == iciciSeeking {
			if strings.Contains(line, iciciHeaderToken) {
				state = iciciInTable
			}
			continue
		}

		// In the table.
		if strings.Contains(line, "Total:") || strings.Contains(line, "Page ") {
			state = iciciDone
			break
		}
		if line == "" || strings.Contains(line, "B/F") {
			continue
		}

		if m := iciciDateLinePattern.FindStringSubmatch(line); m != nil {
			if pending != nil {
				txns = append(txns, pending.flush())
			}
			pending = &iciciAccumulator{date: m[1], rawLines: []string{line}}
			pending.consume(m[2])
			continue
		}

		// Continuation of the current transaction.
		if pending == nil {
			continue
		}
		pending.rawLines = append(pending.rawLines, line)
		pending.consume(line)
	}

	if pending != nil {
		txns = append(txns, pending.flush())
	}
	return txns, nil
}

// consume inspects transaction text following the date (or a continuation
// line). If it ends with the two-amount pair the amounts are captured and
// only the text before them contributes to the description; otherwise the
// whole text is description.
func (acc *iciciAccumulator) consume(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	// Adjacent amounts first: withdrawal+balance. A deposit row would never
	// print the pair without whitespace between.
	if m := iciciWithdrawalPattern.FindStringSubmatchIndex(text); m != nil {
		amount, err1 := parseAmount(text[m[2]:m[3]])
		balance, err2 := parseAmount(text[m[4]:m[5]])
		if err1 == nil && err2 == nil {
			acc.amount = amount.Neg()
			acc.balance = decimal.NewNullDecimal(balance)
			acc.hasAmount = true
			acc.appendDesc(text[:m[0]])
			return
		}
	}

	if m := iciciDepositPattern.FindStringSubmatchIndex(text); m != nil {
		amount, err1 := parseAmount(text[m[2]:m[3]])
		balance, err2 := parseAmount(text[m[4]:m[5]])
		if err1 == nil && err2 == nil {
			acc.amount = amount
			acc.balance = decimal.NewNullDecimal(balance)
			acc.hasAmount = true
			acc.appendDesc(text[:m[0]])
			return
		}
	}

	// No amount pair yet; amount and balance stay pending.
	acc.appendDesc(text)
}

func (acc *iciciAccumulator) appendDesc(s string) {
	s = strings.TrimSpace(s)
	if s != "" {
		acc.descParts = append(acc.descParts, s)
	}
}

// flush finalizes the accumulator into a RawTransaction.
func (acc *iciciAccumulator) flush() models.RawTransaction {
	desc := strings.Join(acc.descParts, " ")
	desc = iciciBoilerplatePattern.ReplaceAllString(desc, "")
	desc = collapseWhitespace(desc)

	txn := models.RawTransaction{
		Date:        normalizeDate(acc.date),
		Description: desc,
		Amount:      acc.amount,
		Type:        models.TxnCredit,
		Balance:     acc.balance,
		RawText:     strings.Join(acc.rawLines, "\n"),
	}
	if acc.amount.IsNegative() {
		txn.Type = models.TxnDebit
	}
	return txn
}
