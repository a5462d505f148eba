package output

import (
	"github.com/rgehrsitz/payrolltr/internal/domain"
	"github.com/shopspring/decimal"
)

// Column is one column of the tabular month-per-row rendering
type Column struct {
	Header string
	Value  func(m domain.MonthlyBreakdown) decimal.Decimal
	Total  func(t domain.ProjectionTotals) decimal.Decimal
}

// baseColumns are always rendered after the month column
var baseColumns = []Column{
	{"Brüt Ücret",
		func(m domain.MonthlyBreakdown) decimal.Decimal { return m.GrossSalary },
		func(t domain.ProjectionTotals) decimal.Decimal { return t.GrossSalary }},
	{"SGK İşçi Primi",
		func(m domain.MonthlyBreakdown) decimal.Decimal { return m.EmployeeSocialSecurity },
		func(t domain.ProjectionTotals) decimal.Decimal { return t.EmployeeSocialSecurity }},
	{"İşsizlik İşçi Sigortası",
		func(m domain.MonthlyBreakdown) decimal.Decimal { return m.EmployeeUnemploymentInsurance },
		func(t domain.ProjectionTotals) decimal.Decimal { return t.EmployeeUnemploymentInsurance }},
	{"Vergi Matrahı",
		func(m domain.MonthlyBreakdown) decimal.Decimal { return m.TaxBase },
		func(t domain.ProjectionTotals) decimal.Decimal { return t.TaxBase }},
	{"Damga Vergisi",
		func(m domain.MonthlyBreakdown) decimal.Decimal { return m.StampTax },
		func(t domain.ProjectionTotals) decimal.Decimal { return t.StampTax }},
	{"Gelir Vergisi",
		func(m domain.MonthlyBreakdown) decimal.Decimal { return m.IncomeTax },
		func(t domain.ProjectionTotals) decimal.Decimal { return t.IncomeTax }},
	// cumulative base has no meaningful sum; the total row shows the final value
	{"KGVM",
		func(m domain.MonthlyBreakdown) decimal.Decimal { return m.CumulativeTaxBase },
		nil},
	{"Asgari Ücret Vergi İndirimi",
		func(m domain.MonthlyBreakdown) decimal.Decimal { return m.MinimumWageTaxCredit },
		func(t domain.ProjectionTotals) decimal.Decimal { return t.MinimumWageTaxCredit }},
	{"Net Ücret",
		func(m domain.MonthlyBreakdown) decimal.Decimal { return m.NetSalary },
		func(t domain.ProjectionTotals) decimal.Decimal { return t.NetSalary }},
}

var employerColumns = []Column{
	{"SGK İşveren Primi",
		func(m domain.MonthlyBreakdown) decimal.Decimal { return employerCost(m).SocialSecurity },
		func(t domain.ProjectionTotals) decimal.Decimal { return t.EmployerSocialSecurity }},
	{"İşsizlik İşveren Sigortası",
		func(m domain.MonthlyBreakdown) decimal.Decimal { return employerCost(m).UnemploymentInsurance },
		func(t domain.ProjectionTotals) decimal.Decimal { return t.EmployerUnemployment }},
	{"Toplam İşveren Maliyeti",
		func(m domain.MonthlyBreakdown) decimal.Decimal { return employerCost(m).Total },
		func(t domain.ProjectionTotals) decimal.Decimal { return t.TotalEmployerCost }},
}

// MonthHeader is the header of the leading month-name column
const MonthHeader = "Ay"

// Columns returns the monetary columns for a result: nine, or twelve when the
// employer cost was requested. With the month column that is 10 or 13 columns.
func Columns(result *domain.SalaryProjectionResult) []Column {
	cols := make([]Column, 0, len(baseColumns)+len(employerColumns))
	cols = append(cols, baseColumns...)
	if result.Request.IncludeEmployerCost {
		cols = append(cols, employerColumns...)
	}
	return cols
}

// Headers returns every column header including the month column
func Headers(result *domain.SalaryProjectionResult) []string {
	cols := Columns(result)
	headers := make([]string, 0, len(cols)+1)
	headers = append(headers, MonthHeader)
	for _, c := range cols {
		headers = append(headers, c.Header)
	}
	return headers
}

func employerCost(m domain.MonthlyBreakdown) domain.EmployerCost {
	if m.EmployerCost == nil {
		return domain.EmployerCost{}
	}
	return *m.EmployerCost
}
