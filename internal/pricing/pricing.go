package pricing

import "github.com/shopspring/decimal"

// DefaultTaxRate is applied to every order subtotal.
var DefaultTaxRate = decimal.RequireFromString("0.05")

type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

type Summary struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Calculate sums price*quantity over lines and applies rate. Values keep full
// precision; round only when displaying.
func Calculate(lines []Line, rate decimal.Decimal) Summary {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	tax := subtotal.Mul(rate)
	return Summary{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// Display renders a money value with two decimals.
func Display(d decimal.Decimal) string {
	return d.StringFixed(2)
}
