package explorer

import (
	"math"
	"strconv"

	"mina_explorer/internal/app"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02 15:04:05"

// Table names used for page logging and report tabs
const (
	TransactionsTable = "Transactions"
	StakesTable       = "Stakes"
)

// TransactionColumns are the headers of the transactions table
var TransactionColumns = []string{"Hash", "Date", "From", "To", "Fee (MINA)", "Amount (MINA)"}

// StakeColumns are the headers of the stakes table
var StakeColumns = []string{"Key", "Stake (MINA)", "Delegate", "Delegators", "Ledger Hash"}

// TransactionRow formats a transaction for display. Pending transactions have an empty date.
func TransactionRow(tx app.Transaction) []string {
	date := ""
	if at, ok := TransactionTime(tx); ok {
		date = at.UTC().Format(dateLayout)
	}
	return []string{
		tx.Hash,
		date,
		AbbreviateKey(tx.From),
		AbbreviateKey(tx.To),
		formatFloatMina(tx.Fee),
		formatFloatMina(tx.Amount),
	}
}

// StakeRow formats a staking ledger entry for display.
// Ledger balances are reported in MINA already.
func StakeRow(stake app.Stake) []string {
	return []string{
		AbbreviateKey(stake.PublicKey),
		decimal.NewFromFloat(stake.Balance).String(),
		AbbreviateKey(stake.Delegate),
		strconv.Itoa(stake.DelegatorsCount),
		stake.LedgerHash,
	}
}

// Rows formats every record of a page window
func Rows[T any](records []T, format func(T) []string) [][]string {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = format(r)
	}
	return rows
}

func formatFloatMina(nanomina float64) string {
	return FormatMina(decimal.NewFromFloat(math.Round(nanomina)))
}
