package explorer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSnapshot(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("Failed to write snapshot: %v", err)
	}
	return path
}

func TestLoadTransactions(t *testing.T) {
	path := writeSnapshot(t, `{
		"data": {
			"transactions": [
				{"hash": "CkpA", "from": "B62qA", "to": "B62qB", "fee": 10000000, "amount": 1500000000,
				 "block": {"stateHash": "3NK1", "dateTime": "2024-03-01T12:00:00Z", "blockHeight": 100}},
				null,
				{"hash": "CkpC", "block": null}
			]
		}
	}`)

	txs, err := LoadTransactions(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(txs) != 3 {
		t.Fatalf("Expected 3 slots, got %d", len(txs))
	}
	if txs[1] != nil {
		t.Errorf("Expected null slot to decode as nil, got %+v", txs[1])
	}
	if txs[0].Amount != 1500000000 {
		t.Errorf("Expected amount 1500000000, got %v", txs[0].Amount)
	}
	if at, ok := TransactionTime(*txs[0]); !ok || at.Year() != 2024 {
		t.Errorf("Expected 2024 block date, got %v (%v)", at, ok)
	}
	if _, ok := TransactionTime(*txs[2]); ok {
		t.Error("Expected transaction without block to be untimed")
	}
}

func TestLoadBareDataObject(t *testing.T) {
	path := writeSnapshot(t, `{"stakes": [{"publicKey": "B62qA", "balance": 66000.5, "delegate": "B62qB", "countDelegates": 3, "ledgerHash": "jx1"}]}`)

	stakes, err := LoadStakes(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(stakes) != 1 {
		t.Fatalf("Expected 1 stake, got %d", len(stakes))
	}
	if stakes[0].DelegatorsCount != 3 {
		t.Errorf("Expected 3 delegators, got %d", stakes[0].DelegatorsCount)
	}
}

func TestLoadBlocks(t *testing.T) {
	path := writeSnapshot(t, `{"data": {"blocks": [{
		"stateHash": "3NK1",
		"blockHeight": 100,
		"snarkFees": "500000000",
		"txFees": "20000000",
		"transactions": {
			"coinbase": "720000000000",
			"coinbaseReceiver": "B62qA",
			"feeTransfer": [{"fee": "10000000", "recipient": "B62qA", "type": "Fee_transfer"}],
			"userCommands": [{"hash": "CkpA", "to": "B62qB", "amount": 1000, "fee": 10}]
		}
	}]}}`)

	blocks, err := LoadBlocks(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(blocks) != 1 || blocks[0].Transactions == nil {
		t.Fatalf("Expected 1 block with transactions, got %+v", blocks)
	}
	if got := len(blocks[0].Transactions.FeeTransfer); got != 1 {
		t.Errorf("Expected 1 fee transfer, got %d", got)
	}
	if got := *blocks[0].Transactions.UserCommands[0].Amount; got != 1000 {
		t.Errorf("Expected amount 1000, got %v", got)
	}
}

func TestLoadSnarks(t *testing.T) {
	path := writeSnapshot(t, `{"data": {"snarks": [{"prover": "B62qA", "fee": 1000, "blockHeight": 7}]}}`)

	snarks, err := LoadSnarks(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(snarks) != 1 || snarks[0].BlockHeight != 7 {
		t.Errorf("Expected 1 snark at height 7, got %+v", snarks)
	}
}

func TestLoadSnapshotErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadTransactions(filepath.Join(t.TempDir(), "missing.json")); err == nil {
			t.Error("Expected error for missing file")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		if _, err := LoadTransactions(writeSnapshot(t, `{"data": [`)); err == nil {
			t.Error("Expected error for malformed json")
		}
	})

	t.Run("query errors", func(t *testing.T) {
		_, err := LoadTransactions(writeSnapshot(t, `{"errors": [{"message": "rate limited"}, {"message": "bad query"}]}`))
		if err == nil || !strings.Contains(err.Error(), "rate limited; bad query") {
			t.Errorf("Expected joined query errors, got %v", err)
		}
	})

	t.Run("null data", func(t *testing.T) {
		_, err := LoadTransactions(writeSnapshot(t, `{"data": null}`))
		if !errors.Is(err, ErrEmptyResponse) {
			t.Errorf("Expected ErrEmptyResponse, got %v", err)
		}
	})
}
