package calculation

import "github.com/shopspring/decimal"

var (
	hundred = decimal.NewFromInt(100)
	cent    = decimal.New(1, -2)
)

// roundMoney rounds to 2 places, half away from zero
func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// percentOf returns amount * rate / 100 without rounding; rate is on a 0-100 scale
func percentOf(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Div(hundred)
}

// contribution is a percentage of amount rounded to money
func contribution(amount, rate decimal.Decimal) decimal.Decimal {
	return roundMoney(percentOf(amount, rate))
}
