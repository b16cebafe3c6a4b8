// Package money handles đồng amounts. Prices are whole-đồng int64
// values everywhere; decimals only appear transiently for the tax
// computation so the rounding rule lives in exactly one place.
package money

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Tax returns VAT on a subtotal at the given percent rate, rounded
// half-up to the whole đồng. Tax is computed once over the subtotal,
// never per line.
func Tax(subtotal, ratePercent int64) int64 {
	return decimal.NewFromInt(subtotal).
		Mul(decimal.NewFromInt(ratePercent)).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}

// Format renders an amount the way the storefront prints it:
// 2800000 -> "2.800.000đ".
func Format(amount int64) string {
	digits := strconv.FormatInt(amount, 10)
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 && !(neg && b.Len() == 1) {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	b.WriteString("đ")
	return b.String()
}
