package calculation

import (
	"github.com/rgehrsitz/payrolltr/internal/domain"
	"github.com/shopspring/decimal"
)

// ProgressiveTaxCalculator computes income tax on a cumulative annual tax base
// using the four-tier schedule of a TaxYearRates.
//
// A base exactly equal to a bracket limit is taxed entirely in the lower
// bracket. Bracket 4 has no upper limit, so the bracket 5 rate is unreachable.
type ProgressiveTaxCalculator struct{}

// NewProgressiveTaxCalculator creates a new progressive tax calculator
func NewProgressiveTaxCalculator() *ProgressiveTaxCalculator {
	return &ProgressiveTaxCalculator{}
}

// ComputeTax returns the tax owed on base, rounded to 2 places.
// Non-positive bases owe nothing.
func (ptc *ProgressiveTaxCalculator) ComputeTax(base decimal.Decimal, rates domain.TaxYearRates) decimal.Decimal {
	if !base.IsPositive() {
		return decimal.Zero
	}

	bracketRates := rates.Rates()
	tax := decimal.Zero
	lower := decimal.Zero
	for i, limit := range rates.Limits() {
		if base.LessThanOrEqual(limit) {
			return roundMoney(tax.Add(percentOf(base.Sub(lower), bracketRates[i])))
		}
		tax = tax.Add(percentOf(limit.Sub(lower), bracketRates[i]))
		lower = limit
	}

	// above bracket 3: open-ended bracket 4
	return roundMoney(tax.Add(percentOf(base.Sub(lower), rates.Bracket4Rate)))
}
