package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryProjectionRequest is the caller input for a single projection
type SalaryProjectionRequest struct {
	Amount              decimal.Decimal `yaml:"amount" json:"amount"`
	AmountIsGross       bool            `yaml:"amount_is_gross" json:"amountIsGross"`
	Year                int             `yaml:"year" json:"year"`
	StartMonth          int             `yaml:"start_month" json:"startMonth"`
	IncludeEmployerCost bool            `yaml:"include_employer_cost" json:"includeEmployerCost"`
}

// Validate rejects requests that cannot be projected. Nothing is corrected silently.
func (r SalaryProjectionRequest) Validate() error {
	if !r.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Message: "must be greater than zero"}
	}
	if !r.Amount.Equal(r.Amount.Round(2)) {
		return &ValidationError{Field: "amount", Message: "must have at most 2 decimal places"}
	}
	if r.Year <= 0 {
		return &ValidationError{Field: "year", Message: "must be a positive calendar year"}
	}
	if r.StartMonth < 1 || r.StartMonth > 12 {
		return &ValidationError{Field: "start_month", Message: "must be between 1 and 12"}
	}
	return nil
}

// MonthCount is the number of months projected, start month through December
func (r SalaryProjectionRequest) MonthCount() int {
	return 13 - r.StartMonth
}

// EmployerCost holds the employer-side contributions for one month
type EmployerCost struct {
	SocialSecurity        decimal.Decimal `json:"socialSecurity"`
	UnemploymentInsurance decimal.Decimal `json:"unemploymentInsurance"`
	Total                 decimal.Decimal `json:"total"`
}

// MonthlyBreakdown is one projected month. SequenceOrder is the zero-based
// position in the projection, independent of the calendar month.
type MonthlyBreakdown struct {
	Month         int    `json:"month"`
	MonthName     string `json:"monthName"`
	SequenceOrder int    `json:"sequenceOrder"`

	GrossSalary                   decimal.Decimal `json:"grossSalary"`
	EmployeeSocialSecurity        decimal.Decimal `json:"employeeSocialSecurity"`
	EmployeeUnemploymentInsurance decimal.Decimal `json:"employeeUnemploymentInsurance"`
	TaxBase                       decimal.Decimal `json:"taxBase"`
	StampTax                      decimal.Decimal `json:"stampTax"`
	IncomeTax                     decimal.Decimal `json:"incomeTax"`
	CumulativeTaxBase             decimal.Decimal `json:"cumulativeTaxBase"`
	MinimumWageTaxCredit          decimal.Decimal `json:"minimumWageTaxCredit"`
	NetSalary                     decimal.Decimal `json:"netSalary"`

	// EmployerCost is set only when the request asked for it
	EmployerCost *EmployerCost `json:"employerCost,omitempty"`
}

// TotalEmployeeDeductions is social security plus unemployment insurance
func (m MonthlyBreakdown) TotalEmployeeDeductions() decimal.Decimal {
	return m.EmployeeSocialSecurity.Add(m.EmployeeUnemploymentInsurance)
}

// SalaryProjectionResult is created once per request and handed to the caller
type SalaryProjectionResult struct {
	Request      SalaryProjectionRequest `json:"request"`
	GrossSalary  decimal.Decimal         `json:"grossSalary"`
	Months       []MonthlyBreakdown      `json:"months"`
	CalculatedAt time.Time               `json:"calculatedAt"`

	// Net-to-gross solver outcome; zero values for gross requests
	SolverIterations int                 `json:"solverIterations,omitempty"`
	Approximate      bool                `json:"approximate"`
	Warning          *ConvergenceWarning `json:"-"`
}

// ProjectionTotals sums every monetary column over the projected months
type ProjectionTotals struct {
	GrossSalary                   decimal.Decimal
	EmployeeSocialSecurity        decimal.Decimal
	EmployeeUnemploymentInsurance decimal.Decimal
	TaxBase                       decimal.Decimal
	StampTax                      decimal.Decimal
	IncomeTax                     decimal.Decimal
	MinimumWageTaxCredit          decimal.Decimal
	NetSalary                     decimal.Decimal
	EmployerSocialSecurity        decimal.Decimal
	EmployerUnemployment          decimal.Decimal
	TotalEmployerCost             decimal.Decimal
}

// Totals sums the monthly breakdowns
func (r *SalaryProjectionResult) Totals() ProjectionTotals {
	var t ProjectionTotals
	for _, m := range r.Months {
		t.GrossSalary = t.GrossSalary.Add(m.GrossSalary)
		t.EmployeeSocialSecurity = t.EmployeeSocialSecurity.Add(m.EmployeeSocialSecurity)
		t.EmployeeUnemploymentInsurance = t.EmployeeUnemploymentInsurance.Add(m.EmployeeUnemploymentInsurance)
		t.TaxBase = t.TaxBase.Add(m.TaxBase)
		t.StampTax = t.StampTax.Add(m.StampTax)
		t.IncomeTax = t.IncomeTax.Add(m.IncomeTax)
		t.MinimumWageTaxCredit = t.MinimumWageTaxCredit.Add(m.MinimumWageTaxCredit)
		t.NetSalary = t.NetSalary.Add(m.NetSalary)
		if m.EmployerCost != nil {
			t.EmployerSocialSecurity = t.EmployerSocialSecurity.Add(m.EmployerCost.SocialSecurity)
			t.EmployerUnemployment = t.EmployerUnemployment.Add(m.EmployerCost.UnemploymentInsurance)
			t.TotalEmployerCost = t.TotalEmployerCost.Add(m.EmployerCost.Total)
		}
	}
	return t
}

// FinalCumulativeTaxBase is the year-to-date base after the last projected month
func (r *SalaryProjectionResult) FinalCumulativeTaxBase() decimal.Decimal {
	if len(r.Months) == 0 {
		return decimal.Zero
	}
	return r.Months[len(r.Months)-1].CumulativeTaxBase
}
