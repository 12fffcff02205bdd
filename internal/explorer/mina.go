package explorer

import (
	"strings"

	"github.com/shopspring/decimal"
)

// nanominaExponent scales nanomina to MINA (1 MINA = 10^9 nanomina)
const nanominaExponent = -9

// FormatMina converts a nanomina amount to a MINA string, e.g. 1500000000 -> "1.5".
func FormatMina(nanomina decimal.Decimal) string {
	return nanomina.Shift(nanominaExponent).String()
}

// ParseNanomina parses a nanomina amount encoded as a decimal string.
// Empty or malformed values parse as zero.
func ParseNanomina(raw string) decimal.Decimal {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return value
}

// ParseNanominaPtr is ParseNanomina for nullable fields
func ParseNanominaPtr(raw *string) decimal.Decimal {
	if raw == nil {
		return decimal.Zero
	}
	return ParseNanomina(*raw)
}
