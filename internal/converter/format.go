package converter

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Format renders amount as a currency-symbol-prefixed two-decimal
// string, e.g. Format(135, "CAD") == "$135.00". Rounding happens only
// here, at display time; amounts are never rounded before arithmetic.
// Codes without a known symbol fall back to the code itself.
func Format(amount float64, code string) string {
	prefix := code + " "
	if cur := money.GetCurrency(code); cur != nil {
		prefix = cur.Grapheme
	}
	return prefix + decimal.NewFromFloat(amount).StringFixed(2)
}
