package output

import (
	"time"

	"github.com/rgehrsitz/payrolltr/internal/domain"
	"github.com/shopspring/decimal"
)

// resultView is the export shape of a projection: amounts as fixed two-decimal
// strings so every consumer sees the same figures the console shows.
type resultView struct {
	Year             int         `json:"year" yaml:"year"`
	StartMonth       int         `json:"startMonth" yaml:"start_month"`
	AmountIsGross    bool        `json:"amountIsGross" yaml:"amount_is_gross"`
	InputAmount      string      `json:"inputAmount" yaml:"input_amount"`
	GrossSalary      string      `json:"grossSalary" yaml:"gross_salary"`
	CalculatedAt     time.Time   `json:"calculatedAt" yaml:"calculated_at"`
	SolverIterations int         `json:"solverIterations,omitempty" yaml:"solver_iterations,omitempty"`
	Approximate      bool        `json:"approximate" yaml:"approximate"`
	Warning          string      `json:"warning,omitempty" yaml:"warning,omitempty"`
	Columns          []string    `json:"columns" yaml:"columns"`
	Months           []monthView `json:"months" yaml:"months"`
	Totals           totalsView  `json:"totals" yaml:"totals"`
}

type employerView struct {
	SocialSecurity        string `json:"socialSecurity" yaml:"social_security"`
	UnemploymentInsurance string `json:"unemploymentInsurance" yaml:"unemployment_insurance"`
	Total                 string `json:"total" yaml:"total"`
}

type monthView struct {
	SequenceOrder                 int           `json:"sequenceOrder" yaml:"sequence_order"`
	Month                         int           `json:"month" yaml:"month"`
	MonthName                     string        `json:"monthName" yaml:"month_name"`
	GrossSalary                   string        `json:"grossSalary" yaml:"gross_salary"`
	EmployeeSocialSecurity        string        `json:"employeeSocialSecurity" yaml:"employee_social_security"`
	EmployeeUnemploymentInsurance string        `json:"employeeUnemploymentInsurance" yaml:"employee_unemployment_insurance"`
	TaxBase                       string        `json:"taxBase" yaml:"tax_base"`
	StampTax                      string        `json:"stampTax" yaml:"stamp_tax"`
	IncomeTax                     string        `json:"incomeTax" yaml:"income_tax"`
	CumulativeTaxBase             string        `json:"cumulativeTaxBase" yaml:"cumulative_tax_base"`
	MinimumWageTaxCredit          string        `json:"minimumWageTaxCredit" yaml:"minimum_wage_tax_credit"`
	NetSalary                     string        `json:"netSalary" yaml:"net_salary"`
	EmployerCost                  *employerView `json:"employerCost,omitempty" yaml:"employer_cost,omitempty"`
}

type totalsView struct {
	GrossSalary                   string        `json:"grossSalary" yaml:"gross_salary"`
	EmployeeSocialSecurity        string        `json:"employeeSocialSecurity" yaml:"employee_social_security"`
	EmployeeUnemploymentInsurance string        `json:"employeeUnemploymentInsurance" yaml:"employee_unemployment_insurance"`
	TaxBase                       string        `json:"taxBase" yaml:"tax_base"`
	StampTax                      string        `json:"stampTax" yaml:"stamp_tax"`
	IncomeTax                     string        `json:"incomeTax" yaml:"income_tax"`
	FinalCumulativeTaxBase        string        `json:"finalCumulativeTaxBase" yaml:"final_cumulative_tax_base"`
	MinimumWageTaxCredit          string        `json:"minimumWageTaxCredit" yaml:"minimum_wage_tax_credit"`
	NetSalary                     string        `json:"netSalary" yaml:"net_salary"`
	EmployerCost                  *employerView `json:"employerCost,omitempty" yaml:"employer_cost,omitempty"`
}

func money(d decimal.Decimal) string { return d.StringFixed(2) }

func newResultView(result *domain.SalaryProjectionResult) resultView {
	v := resultView{
		Year:             result.Request.Year,
		StartMonth:       result.Request.StartMonth,
		AmountIsGross:    result.Request.AmountIsGross,
		InputAmount:      money(result.Request.Amount),
		GrossSalary:      money(result.GrossSalary),
		CalculatedAt:     result.CalculatedAt,
		SolverIterations: result.SolverIterations,
		Approximate:      result.Approximate,
		Columns:          Headers(result),
		Months:           make([]monthView, 0, len(result.Months)),
	}
	if result.Warning != nil {
		v.Warning = result.Warning.Error()
	}

	for _, m := range result.Months {
		mv := monthView{
			SequenceOrder:                 m.SequenceOrder,
			Month:                         m.Month,
			MonthName:                     m.MonthName,
			GrossSalary:                   money(m.GrossSalary),
			EmployeeSocialSecurity:        money(m.EmployeeSocialSecurity),
			EmployeeUnemploymentInsurance: money(m.EmployeeUnemploymentInsurance),
			TaxBase:                       money(m.TaxBase),
			StampTax:                      money(m.StampTax),
			IncomeTax:                     money(m.IncomeTax),
			CumulativeTaxBase:             money(m.CumulativeTaxBase),
			MinimumWageTaxCredit:          money(m.MinimumWageTaxCredit),
			NetSalary:                     money(m.NetSalary),
		}
		if m.EmployerCost != nil {
			mv.EmployerCost = &employerView{
				SocialSecurity:        money(m.EmployerCost.SocialSecurity),
				UnemploymentInsurance: money(m.EmployerCost.UnemploymentInsurance),
				Total:                 money(m.EmployerCost.Total),
			}
		}
		v.Months = append(v.Months, mv)
	}

	t := result.Totals()
	v.Totals = totalsView{
		GrossSalary:                   money(t.GrossSalary),
		EmployeeSocialSecurity:        money(t.EmployeeSocialSecurity),
		EmployeeUnemploymentInsurance: money(t.EmployeeUnemploymentInsurance),
		TaxBase:                       money(t.TaxBase),
		StampTax:                      money(t.StampTax),
		IncomeTax:                     money(t.IncomeTax),
		FinalCumulativeTaxBase:        money(result.FinalCumulativeTaxBase()),
		MinimumWageTaxCredit:          money(t.MinimumWageTaxCredit),
		NetSalary:                     money(t.NetSalary),
	}
	if result.Request.IncludeEmployerCost {
		v.Totals.EmployerCost = &employerView{
			SocialSecurity:        money(t.EmployerSocialSecurity),
			UnemploymentInsurance: money(t.EmployerUnemployment),
			Total:                 money(t.TotalEmployerCost),
		}
	}
	return v
}
