package parser

import (
	"testing"

	"github.com/rupeetrail/stmt-ledger/internal/models"
)

const iciciSampleStatement = `ICICI BANK LIMITED
Statement of Transactions
Account Number: 000401234567

DATEMODEPARTICULARSDEPOSITSWITHDRAWALSBALANCE
B/F 11,500.00
15-01-2024 UPI/ZOMATO/401122334455/Dinner
order ref 887766 450.0011,050.00
16-01-2024 NEFT-ACME CORP SALARY JAN 50,000.00 61,050.00
Total: 50,000.00 450.00
Page 1 of 2
17-01-2024 SHOULD NOT APPEAR 1.00 2.00`

func TestICICIFormat_Parse(t *testing.T) {
	f := &ICICIFormat{}

	txns, err := f.ParseTransactions(iciciSampleStatement)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txns) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txns))
	}

	withdrawal := txns[0]
	if withdrawal.Date != "2024-01-15" {
		t.Errorf("date: got %q, want %q", withdrawal.Date, "2024-01-15")
	}
	if withdrawal.Description != "UPI/ZOMATO/401122334455/Dinner order ref 887766" {
		t.Errorf("description: got %q", withdrawal.Description)
	}
	if withdrawal.Amount.StringFixed(2) != "-450.00" {
		t.Errorf("amount: got %s, want -450.00", withdrawal.Amount.StringFixed(2))
	}
	if withdrawal.Type != models.TxnDebit {
		t.Errorf("type: got %q, want DEBIT", withdrawal.Type)
	}
	if !withdrawal.Balance.Valid || withdrawal.Balance.Decimal.StringFixed(2) != "11050.00" {
		t.Errorf("balance: got %+v, want 11050.00", withdrawal.Balance)
	}

	deposit := txns[1]
	if deposit.Amount.StringFixed(2) != "50000.00" {
		t.Errorf("amount: got %s, want 50000.00", deposit.Amount.StringFixed(2))
	}
	if deposit.Type != models.TxnCredit {
		t.Errorf("type: got %q, want CREDIT", deposit.Type)
	}
	if !deposit.Balance.Valid || deposit.Balance.Decimal.StringFixed(2) != "61050.00" {
		t.Errorf("balance: got %+v, want 61050.00", deposit.Balance)
	}
}

func TestICICIFormat_ContinuationCarriesAmounts(t *testing.T) {
	// The amount pair appears two lines after the date line; the emitted
	// transaction must pair the first line's date with the later amounts and
	// join the intervening text as the description.
	text := `DATEMODEPARTICULARSDEPOSITSWITHDRAWALSBALANCE
20-01-2024 UPI/SWIGGY/512233445566
/PAYMENT FROM PH
ONE 320.0010,730.00`

	f := &ICICIFormat{}
	txns, err := f.ParseTransactions(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txns) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txns))
	}

	txn := txns[0]
	if txn.Date != "2024-01-20" {
		t.Errorf("date: got %q", txn.Date)
	}
	if txn.Description != "UPI/SWIGGY/512233445566 /PAYMENT FROM PH ONE" {
		t.Errorf("description: got %q", txn.Description)
	}
	if txn.Amount.StringFixed(2) != "-320.00" {
		t.Errorf("amount: got %s, want -320.00", txn.Amount.StringFixed(2))
	}
}

func TestICICIFormat_IgnoresTextBeforeHeader(t *testing.T) {
	// Lines that look like transactions before the table header are
	// boilerplate, not data.
	text := `ICICI BANK
Previous statement recap
01-01-2024 NOT A TRANSACTION 100.00 200.00
DATEMODEPARTICULARSDEPOSITSWITHDRAWALSBALANCE
02-01-2024 REAL ONE 100.00 300.00`

	f := &ICICIFormat{}
	txns, err := f.ParseTransactions(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txns) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txns))
	}
	if txns[0].Description != "REAL ONE" {
		t.Errorf("description: got %q", txns[0].Description)
	}
}

func TestICICIFormat_StripsBoilerplateFromDescription(t *testing.T) {
	text := `DATEMODEPARTICULARSDEPOSITSWITHDRAWALSBALANCE
05-01-2024 CMS TRANSACTION RENT PAYMENT
Net Banking transfer 15,000.0045,000.00`

	f := &ICICIFormat{}
	txns, err := f.ParseTransactions(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txns) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txns))
	}
	if txns[0].Description != "RENT PAYMENT transfer" {
		t.Errorf("description: got %q", txns[0].Description)
	}
}

func TestICICIFormat_FlushesFinalAccumulatorAtEOF(t *testing.T) {
	// No Total: or Page footer — the in-progress transaction must still be
	// emitted at end of text.
	text := `DATEMODEPARTICULARSDEPOSITSWITHDRAWALSBALANCE
08-01-2024 IMPS TRANSFER
1,200.009,530.00`

	f := &ICICIFormat{}
	txns, err := f.ParseTransactions(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txns) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txns))
	}
	if txns[0].Amount.StringFixed(2) != "-1200.00" {
		t.Errorf("amount: got %s, want -1200.00", txns[0].Amount.StringFixed(2))
	}
}

func TestICICIFormat_SkipsBroughtForwardRows(t *testing.T) {
	text := `DATEMODEPARTICULARSDEPOSITSWITHDRAWALSBALANCE
B/F 10,000.00
03-01-2024 COFFEE 150.009,850.00`

	f := &ICICIFormat{}
	txns, err := f.ParseTransactions(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txns) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txns))
	}
	if txns[0].Description != "COFFEE" {
		t.Errorf("description: got %q", txns[0].Description)
	}
}

func TestICICIFormat_NoHeaderNoTransactions(t *testing.T) {
	f := &ICICIFormat{}
	txns, err := f.ParseTransactions("ICICI BANK\n01-01-2024 LOOKS LIKE ONE 1.00 2.00\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txns) != 0 {
		t.Errorf("expected no transactions without a table header, got %d", len(txns))
	}
}
