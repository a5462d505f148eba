package calculation

import (
	"github.com/rgehrsitz/payrolltr/internal/domain"
	"github.com/shopspring/decimal"
)

// MonthlyProjector walks the months from a start month through December,
// carrying the cumulative tax base and the tax already attributed to earlier
// months. Months are strictly sequential and cannot be computed out of order.
type MonthlyProjector struct {
	TaxCalc    *ProgressiveTaxCalculator
	CreditCalc *MinimumWageCreditCalculator
}

// NewMonthlyProjector creates a projector over the given calculators
func NewMonthlyProjector(taxCalc *ProgressiveTaxCalculator, creditCalc *MinimumWageCreditCalculator) *MonthlyProjector {
	return &MonthlyProjector{TaxCalc: taxCalc, CreditCalc: creditCalc}
}

// projectionState is the state carried from one month to the next
type projectionState struct {
	cumulativeTaxBase     decimal.Decimal
	previousCumulativeTax decimal.Decimal
}

// Project produces one breakdown per month from startMonth to 12, in order.
// grossSalary is constant across months.
func (mp *MonthlyProjector) Project(grossSalary decimal.Decimal, rates domain.TaxYearRates, startMonth int, includeEmployerCost bool) ([]domain.MonthlyBreakdown, error) {
	if startMonth < 1 || startMonth > 12 {
		return nil, &domain.ValidationError{Field: "start_month", Message: "must be between 1 and 12"}
	}

	credit := mp.CreditCalc.ComputeCredit(rates)
	state := &projectionState{}
	months := make([]domain.MonthlyBreakdown, 0, 13-startMonth)

	for month := startMonth; month <= 12; month++ {
		m := mp.projectMonth(grossSalary, rates, credit, state)
		m.Month = month
		m.MonthName = domain.MonthName(month)
		m.SequenceOrder = month - startMonth
		if includeEmployerCost {
			m.EmployerCost = EmployerCostFor(grossSalary, rates)
		}
		months = append(months, m)
	}
	return months, nil
}

// TrialNet runs a single month as if it were the first month of the year, so the
// cumulative base equals that month's base. credit is the precomputed
// minimum-wage credit for the rates' year.
func (mp *MonthlyProjector) TrialNet(grossSalary decimal.Decimal, rates domain.TaxYearRates, credit decimal.Decimal) decimal.Decimal {
	return mp.projectMonth(grossSalary, rates, credit, &projectionState{}).NetSalary
}

func (mp *MonthlyProjector) projectMonth(grossSalary decimal.Decimal, rates domain.TaxYearRates, credit decimal.Decimal, state *projectionState) domain.MonthlyBreakdown {
	sgk := contribution(grossSalary, rates.SGKEmployeeRate)
	unemployment := contribution(grossSalary, rates.UnemploymentEmployeeRate)
	taxBase := grossSalary.Sub(sgk).Sub(unemployment)

	state.cumulativeTaxBase = state.cumulativeTaxBase.Add(taxBase)

	// marginal tax: tax on the year-to-date base minus tax attributed to earlier months
	cumulativeTax := mp.TaxCalc.ComputeTax(state.cumulativeTaxBase, rates)
	incomeTax := cumulativeTax.Sub(state.previousCumulativeTax)
	state.previousCumulativeTax = cumulativeTax

	stampTax := contribution(grossSalary, rates.StampTaxRate)

	net := grossSalary.
		Sub(sgk).
		Sub(unemployment).
		Sub(incomeTax).
		Sub(stampTax).
		Add(credit)

	return domain.MonthlyBreakdown{
		GrossSalary:                   grossSalary,
		EmployeeSocialSecurity:        sgk,
		EmployeeUnemploymentInsurance: unemployment,
		TaxBase:                       taxBase,
		StampTax:                      stampTax,
		IncomeTax:                     incomeTax,
		CumulativeTaxBase:             state.cumulativeTaxBase,
		MinimumWageTaxCredit:          credit,
		NetSalary:                     net,
	}
}

// EmployerCostFor derives the employer-side contributions for a gross salary
func EmployerCostFor(grossSalary decimal.Decimal, rates domain.TaxYearRates) *domain.EmployerCost {
	sgk := contribution(grossSalary, rates.SGKEmployerRate)
	unemployment := contribution(grossSalary, rates.UnemploymentEmployerRate)
	return &domain.EmployerCost{
		SocialSecurity:        sgk,
		UnemploymentInsurance: unemployment,
		Total:                 grossSalary.Add(sgk).Add(unemployment),
	}
}
