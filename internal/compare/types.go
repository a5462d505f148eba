package compare

import (
	"fmt"

	"github.com/rgehrsitz/payrolltr/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult summarises one tax year's projection of the same salary
type ComparisonResult struct {
	Year   int                            `json:"year"`
	Result *domain.SalaryProjectionResult `json:"-"`

	// Key Metrics (sums over the projected months)
	GrossSalary        decimal.Decimal `json:"grossSalary"` // monthly gross used for every month
	AnnualGross        decimal.Decimal `json:"annualGross"`
	AnnualDeductions   decimal.Decimal `json:"annualDeductions"` // employee SGK + unemployment
	AnnualIncomeTax    decimal.Decimal `json:"annualIncomeTax"`
	AnnualStampTax     decimal.Decimal `json:"annualStampTax"`
	AnnualCredit       decimal.Decimal `json:"annualCredit"`
	AnnualNet          decimal.Decimal `json:"annualNet"`
	AnnualEmployerCost decimal.Decimal `json:"annualEmployerCost"`
	Approximate        bool            `json:"approximate"`

	// Comparison to Base
	NetDiffFromBase       decimal.Decimal `json:"netDiffFromBase"`
	NetPctFromBase        decimal.Decimal `json:"netPctFromBase"`
	IncomeTaxDiffFromBase decimal.Decimal `json:"incomeTaxDiffFromBase"`
}

// ComparisonSet is the base year plus every alternative year
type ComparisonSet struct {
	Amount             decimal.Decimal    `json:"amount"`
	AmountIsGross      bool               `json:"amountIsGross"`
	StartMonth         int                `json:"startMonth"`
	BaseYear           int                `json:"baseYear"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
}

// NewComparisonResult builds the summary row for a projection
func NewComparisonResult(result *domain.SalaryProjectionResult) ComparisonResult {
	t := result.Totals()
	return ComparisonResult{
		Year:               result.Request.Year,
		Result:             result,
		GrossSalary:        result.GrossSalary,
		AnnualGross:        t.GrossSalary,
		AnnualDeductions:   t.EmployeeSocialSecurity.Add(t.EmployeeUnemploymentInsurance),
		AnnualIncomeTax:    t.IncomeTax,
		AnnualStampTax:     t.StampTax,
		AnnualCredit:       t.MinimumWageTaxCredit,
		AnnualNet:          t.NetSalary,
		AnnualEmployerCost: t.TotalEmployerCost,
		Approximate:        result.Approximate,
	}
}

// CompareToBase fills the delta fields relative to base
func (cr *ComparisonResult) CompareToBase(base *ComparisonResult) {
	cr.NetDiffFromBase = cr.AnnualNet.Sub(base.AnnualNet)
	cr.IncomeTaxDiffFromBase = cr.AnnualIncomeTax.Sub(base.AnnualIncomeTax)
	if base.AnnualNet.IsZero() {
		cr.NetPctFromBase = decimal.Zero
		return
	}
	cr.NetPctFromBase = cr.NetDiffFromBase.Div(base.AnnualNet).Mul(decimal.NewFromInt(100)).Round(2)
}

// Validate checks the options before any projection runs
func (o CompareOptions) Validate() error {
	if len(o.Years) == 0 {
		return fmt.Errorf("at least one comparison year is required")
	}
	seen := map[int]bool{o.BaseYear: true}
	for _, y := range o.Years {
		if seen[y] {
			return fmt.Errorf("year %d listed more than once", y)
		}
		seen[y] = true
	}
	return nil
}
