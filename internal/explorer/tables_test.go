package explorer

import (
	"testing"
	"time"

	"mina_explorer/internal/app"
)

func TestTransactionRow(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	tx := app.Transaction{
		Hash:   "CkpZ",
		From:   "B62qrPN5Y5yq8kGE3FbVKbGTdTAJNdtNtB5sNVpxyRwWGcDEhpMzc8g",
		To:     "B62qshort",
		Fee:    10000000,
		Amount: 1500000000,
		Block:  &app.TransactionBlock{DateTime: &at},
	}

	expected := []string{"CkpZ", "2024-03-01 12:30:00", "B62qrP...pMzc8g", "B62qshort", "0.01", "1.5"}
	got := TransactionRow(tx)

	if len(got) != len(TransactionColumns) {
		t.Fatalf("Expected %d cells, got %d", len(TransactionColumns), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Cell %d: expected %q, got %q", i, expected[i], got[i])
		}
	}
}

func TestTransactionRowPending(t *testing.T) {
	got := TransactionRow(app.Transaction{Hash: "CkpP"})
	if got[1] != "" {
		t.Errorf("Expected empty date for pending transaction, got %q", got[1])
	}
}

func TestStakeRow(t *testing.T) {
	stake := app.Stake{
		PublicKey:       "B62qA",
		Balance:         66000.5,
		Delegate:        "B62qB",
		DelegatorsCount: 3,
		LedgerHash:      "jx1",
	}

	expected := []string{"B62qA", "66000.5", "B62qB", "3", "jx1"}
	got := StakeRow(stake)

	if len(got) != len(StakeColumns) {
		t.Fatalf("Expected %d cells, got %d", len(StakeColumns), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Cell %d: expected %q, got %q", i, expected[i], got[i])
		}
	}
}

func TestRows(t *testing.T) {
	rows := Rows([]app.Stake{{PublicKey: "a"}, {PublicKey: "b"}}, StakeRow)
	if len(rows) != 2 || rows[1][0] != "b" {
		t.Errorf("Expected 2 formatted rows, got %v", rows)
	}

	if rows := Rows(nil, StakeRow); len(rows) != 0 {
		t.Errorf("Expected no rows, got %v", rows)
	}
}
