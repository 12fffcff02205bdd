package app

import "time"

// Transaction is a user command as returned by the transactions query.
// Nullable GraphQL fields are pointers.
type Transaction struct {
	Hash          string            `json:"hash"`
	From          string            `json:"from"`
	To            string            `json:"to"`
	Fee           float64           `json:"fee"`
	Amount        float64           `json:"amount"`
	Nonce         int64             `json:"nonce"`
	Memo          string            `json:"memo"`
	Kind          string            `json:"kind"`
	Canonical     bool              `json:"canonical"`
	FailureReason *string           `json:"failureReason"`
	Block         *TransactionBlock `json:"block"`
}

// TransactionBlock is the block a transaction was included in
type TransactionBlock struct {
	StateHash   string     `json:"stateHash"`
	DateTime    *time.Time `json:"dateTime"`
	BlockHeight int64      `json:"blockHeight"`
}

// Block represents a block from the blocks query
type Block struct {
	StateHash         string             `json:"stateHash"`
	PreviousStateHash string             `json:"previousStateHash"`
	BlockHeight       int64              `json:"blockHeight"`
	DateTime          *time.Time         `json:"dateTime"`
	Canonical         bool               `json:"canonical"`
	Creator           string             `json:"creator"`
	SnarkFees         string             `json:"snarkFees"`
	TxFees            string             `json:"txFees"`
	Transactions      *BlockTransactions `json:"transactions"`
}

// BlockTransactions groups the commands included in a block
type BlockTransactions struct {
	Coinbase         string         `json:"coinbase"`
	CoinbaseReceiver *string        `json:"coinbaseReceiver"`
	FeeTransfer      []*FeeTransfer `json:"feeTransfer"`
	UserCommands     []*UserCommand `json:"userCommands"`
}

// FeeTransfer is an internal command paying fees to a recipient.
// The remote service encodes fees as decimal strings.
type FeeTransfer struct {
	Fee       *string `json:"fee"`
	Recipient *string `json:"recipient"`
	Type      string  `json:"type"`
}

// UserCommand is a payment or delegation included in a block
type UserCommand struct {
	Hash   string   `json:"hash"`
	From   *string  `json:"from"`
	To     *string  `json:"to"`
	Fee    float64  `json:"fee"`
	Amount *float64 `json:"amount"`
}

// Snark is a completed SNARK work bundle
type Snark struct {
	Prover      string     `json:"prover"`
	Fee         float64    `json:"fee"`
	DateTime    *time.Time `json:"dateTime"`
	BlockHeight int64      `json:"blockHeight"`
	Canonical   bool       `json:"canonical"`
}

// Stake is one staking ledger entry
type Stake struct {
	PublicKey       string  `json:"publicKey"`
	Balance         float64 `json:"balance"`
	Delegate        string  `json:"delegate"`
	DelegatorsCount int     `json:"countDelegates"`
	LedgerHash      string  `json:"ledgerHash"`
	Epoch           int     `json:"epoch"`
}

// TransactionsResponse is the data payload of a transactions query
type TransactionsResponse struct {
	Transactions []*Transaction `json:"transactions"`
}

// BlocksResponse is the data payload of a blocks query
type BlocksResponse struct {
	Blocks []*Block `json:"blocks"`
}

// SnarksResponse is the data payload of a snarks query
type SnarksResponse struct {
	Snarks []*Snark `json:"snarks"`
}

// StakesResponse is the data payload of a stakes query
type StakesResponse struct {
	Stakes []*Stake `json:"stakes"`
}
