// Package explorer binds the generic paging, feed and aggregate engines to the
// blockchain explorer's record schema.
package explorer

import (
	"time"

	"mina_explorer/internal/app"
)

const abbreviationEdge = 6

// TransactionTime returns the date of the block that included tx.
// Transactions without a block or block date have no timestamp.
func TransactionTime(tx app.Transaction) (time.Time, bool) {
	if tx.Block == nil || tx.Block.DateTime == nil {
		return time.Time{}, false
	}
	return *tx.Block.DateTime, true
}

// AbbreviateKey shortens a public key to its first and last six characters,
// e.g. "B62qrP...Kd4Ex3". Short keys are returned unchanged.
func AbbreviateKey(key string) string {
	runes := []rune(key)
	if len(runes) <= 2*abbreviationEdge {
		return key
	}
	return string(runes[:abbreviationEdge]) + "..." + string(runes[len(runes)-abbreviationEdge:])
}

// Limit truncates a fetched slot list to the configured fetch limit.
// A non-positive limit leaves the list untouched.
func Limit[T any](slots []*T, limit int) []*T {
	if limit <= 0 || len(slots) <= limit {
		return slots
	}
	return slots[:limit]
}
