// Package present turns valuations into display strings. Nothing here feeds
// back into a calculation.
package present

import (
	"cryptodash/internal/valuation"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const currency = money.USD

const notApplicable = "-"

func toMoney(d decimal.Decimal) *money.Money {
	cur := money.GetCurrency(currency)
	return money.New(d.Shift(int32(cur.Fraction)).Round(0).IntPart(), currency)
}

// USD formats d as US dollars rounded to cents, e.g. "$21,625.00".
func USD(d decimal.Decimal) string {
	return toMoney(d).Display()
}

// SignedUSD is USD with an explicit "+" on gains.
func SignedUSD(d decimal.Decimal) string {
	m := toMoney(d)
	if m.IsPositive() {
		return "+" + m.Display()
	}
	return m.Display()
}

// Percent formats p with two decimals, or "-" when it is not applicable.
func Percent(p valuation.Percent) string {
	if !p.Applicable {
		return notApplicable
	}
	return p.Value.StringFixed(2) + "%"
}

// SignedPercent is Percent with an explicit "+" on non-negative values.
func SignedPercent(p valuation.Percent) string {
	if !p.Applicable {
		return notApplicable
	}
	if !p.Value.IsNegative() {
		return "+" + p.Value.StringFixed(2) + "%"
	}
	return p.Value.StringFixed(2) + "%"
}
