package calculation

import (
	"github.com/rgehrsitz/payrolltr/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultCreditPolicies is the built-in year -> minimum-wage credit rule table.
// Years absent here (and without a policy in the rate file) use DefaultCreditPolicy.
func DefaultCreditPolicies() map[int]domain.CreditPolicy {
	return map[int]domain.CreditPolicy{
		2022: {Mode: domain.CreditFull},
	}
}

// DefaultCreditPolicy halves the reference tax
func DefaultCreditPolicy() domain.CreditPolicy {
	return domain.CreditPolicy{Mode: domain.CreditScaled, Factor: decimal.NewFromFloat(0.5)}
}

// MinimumWageCreditCalculator derives the monthly income-tax credit tied to
// the gross minimum wage. The credit is a step function of the tax year.
type MinimumWageCreditCalculator struct {
	TaxCalc  *ProgressiveTaxCalculator
	Policies map[int]domain.CreditPolicy
	Fallback domain.CreditPolicy
}

// NewMinimumWageCreditCalculator creates a calculator with the built-in policy table
func NewMinimumWageCreditCalculator(taxCalc *ProgressiveTaxCalculator) *MinimumWageCreditCalculator {
	return &MinimumWageCreditCalculator{
		TaxCalc:  taxCalc,
		Policies: DefaultCreditPolicies(),
		Fallback: DefaultCreditPolicy(),
	}
}

// PolicyFor resolves the credit rule for a year. A policy carried on the
// rates themselves wins over the built-in table.
func (mwc *MinimumWageCreditCalculator) PolicyFor(rates domain.TaxYearRates) domain.CreditPolicy {
	if rates.MinimumWageCredit != nil {
		return *rates.MinimumWageCredit
	}
	if p, ok := mwc.Policies[rates.Year]; ok {
		return p
	}
	return mwc.Fallback
}

// ReferenceTax is the income tax on one month of gross minimum wage,
// after its own employee social-security and unemployment deductions
func (mwc *MinimumWageCreditCalculator) ReferenceTax(rates domain.TaxYearRates) decimal.Decimal {
	gross := rates.MinimumWageGross
	base := gross.
		Sub(contribution(gross, rates.SGKEmployeeRate)).
		Sub(contribution(gross, rates.UnemploymentEmployeeRate))
	return mwc.TaxCalc.ComputeTax(base, rates)
}

// ComputeCredit returns the credit for the rates' year, rounded to 2 places
func (mwc *MinimumWageCreditCalculator) ComputeCredit(rates domain.TaxYearRates) decimal.Decimal {
	policy := mwc.PolicyFor(rates)
	switch policy.Mode {
	case domain.CreditFixed:
		return roundMoney(policy.Amount)
	case domain.CreditScaled:
		return roundMoney(mwc.ReferenceTax(rates).Mul(policy.Factor))
	default:
		return mwc.ReferenceTax(rates)
	}
}
