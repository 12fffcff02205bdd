package explorer

import (
	"math"

	"mina_explorer/internal/app"
	"mina_explorer/internal/domain/aggregate"

	"github.com/shopspring/decimal"
)

// Chart titles used by the block spotlight analytics tab
const (
	FeeTransferChartTitle = "Top Internal Transfers"
	PaymentChartTitle     = "Top Payments"
)

// recipientValue is one chartable (recipient, value) pair extracted from a block
type recipientValue struct {
	recipient string
	value     int64
}

func recipientOf(rv recipientValue) string { return rv.recipient }
func valueOf(rv recipientValue) int64      { return rv.value }

// BlockAnalytics holds the totals shown above a block's charts, in nanomina
type BlockAnalytics struct {
	UserCommands      int
	FeeTransfers      int
	TotalUserAmount   decimal.Decimal
	TotalFeeTransfers decimal.Decimal
	TransactionFees   decimal.Decimal
	SnarkFees         decimal.Decimal
}

// FeeTransferChart aggregates a block's fee transfers by recipient.
// Transfers missing a fee or recipient are skipped; unparsable fees count as zero.
func FeeTransferChart(block app.Block, topK int, otherLabel string) ([]aggregate.Entry[int64], error) {
	var rows []recipientValue
	if block.Transactions != nil {
		for _, ft := range block.Transactions.FeeTransfer {
			if ft == nil || ft.Fee == nil || ft.Recipient == nil {
				continue
			}
			rows = append(rows, recipientValue{
				recipient: AbbreviateKey(*ft.Recipient),
				value:     ParseNanomina(*ft.Fee).IntPart(),
			})
		}
	}
	return aggregate.TopN(rows, recipientOf, valueOf, topK, otherLabel)
}

// PaymentChart aggregates a block's user command amounts by recipient.
// Commands missing an amount or recipient are skipped.
func PaymentChart(block app.Block, topK int, otherLabel string) ([]aggregate.Entry[int64], error) {
	var rows []recipientValue
	if block.Transactions != nil {
		for _, uc := range block.Transactions.UserCommands {
			if uc == nil || uc.Amount == nil || uc.To == nil {
				continue
			}
			rows = append(rows, recipientValue{
				recipient: AbbreviateKey(*uc.To),
				value:     int64(math.Round(*uc.Amount)),
			})
		}
	}
	return aggregate.TopN(rows, recipientOf, valueOf, topK, otherLabel)
}

// AnalyzeBlock computes the summary totals for a block.
// Each user command amount is rounded to a whole nanomina; missing amounts count as zero.
func AnalyzeBlock(block app.Block) BlockAnalytics {
	analytics := BlockAnalytics{
		TotalUserAmount:   decimal.Zero,
		TotalFeeTransfers: decimal.Zero,
		TransactionFees:   ParseNanomina(block.TxFees),
		SnarkFees:         ParseNanomina(block.SnarkFees),
	}

	if block.Transactions == nil {
		return analytics
	}

	for _, uc := range block.Transactions.UserCommands {
		if uc == nil {
			continue
		}
		analytics.UserCommands++
		if uc.Amount != nil {
			analytics.TotalUserAmount = analytics.TotalUserAmount.Add(decimal.NewFromFloat(math.Round(*uc.Amount)))
		}
	}

	for _, ft := range block.Transactions.FeeTransfer {
		if ft == nil {
			continue
		}
		analytics.FeeTransfers++
		analytics.TotalFeeTransfers = analytics.TotalFeeTransfers.Add(ParseNanominaPtr(ft.Fee))
	}

	return analytics
}

// Rows returns labelled MINA totals for display
func (a BlockAnalytics) Rows() [][2]string {
	return [][2]string{
		{"Total User Amounts Transferred", FormatMina(a.TotalUserAmount)},
		{"Total Internal Fees Transferred", FormatMina(a.TransactionFees)},
		{"Total Fee Transfers", FormatMina(a.TotalFeeTransfers)},
		{"Total SNARK Fees", FormatMina(a.SnarkFees)},
	}
}
