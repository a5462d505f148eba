package domain

import (
	"github.com/shopspring/decimal"
)

// RateTableFile is the on-disk layout of a tax-rate table.
// One entry per tax year; percentages are expressed on a 0-100 scale.
type RateTableFile struct {
	Metadata RateTableMetadata `yaml:"metadata" json:"metadata"`
	Years    []TaxYearRates    `yaml:"years" json:"years"`
}

// RateTableMetadata describes where the rate data came from
type RateTableMetadata struct {
	Country     string `yaml:"country" json:"country"`
	Currency    string `yaml:"currency" json:"currency"`
	LastUpdated string `yaml:"last_updated" json:"lastUpdated"`
	Description string `yaml:"description" json:"description"`
}

// TaxYearRates holds the payroll rates in force for a single tax year.
// Values are never mutated once loaded.
type TaxYearRates struct {
	Year int `yaml:"year" json:"year"`

	SGKEmployeeRate          decimal.Decimal `yaml:"sgk_employee_rate" json:"sgkEmployeeRate"`
	SGKEmployerRate          decimal.Decimal `yaml:"sgk_employer_rate" json:"sgkEmployerRate"`
	UnemploymentEmployeeRate decimal.Decimal `yaml:"unemployment_employee_rate" json:"unemploymentEmployeeRate"`
	UnemploymentEmployerRate decimal.Decimal `yaml:"unemployment_employer_rate" json:"unemploymentEmployerRate"`
	StampTaxRate             decimal.Decimal `yaml:"stamp_tax_rate" json:"stampTaxRate"`

	// Bracket 4 is the open-ended top tier; there is no bracket 4 limit,
	// so Bracket5Rate is carried for completeness but never reached.
	Bracket1Limit decimal.Decimal `yaml:"bracket1_limit" json:"bracket1Limit"`
	Bracket2Limit decimal.Decimal `yaml:"bracket2_limit" json:"bracket2Limit"`
	Bracket3Limit decimal.Decimal `yaml:"bracket3_limit" json:"bracket3Limit"`
	Bracket1Rate  decimal.Decimal `yaml:"bracket1_rate" json:"bracket1Rate"`
	Bracket2Rate  decimal.Decimal `yaml:"bracket2_rate" json:"bracket2Rate"`
	Bracket3Rate  decimal.Decimal `yaml:"bracket3_rate" json:"bracket3Rate"`
	Bracket4Rate  decimal.Decimal `yaml:"bracket4_rate" json:"bracket4Rate"`
	Bracket5Rate  decimal.Decimal `yaml:"bracket5_rate" json:"bracket5Rate"`

	MinimumWageGross decimal.Decimal `yaml:"minimum_wage_gross" json:"minimumWageGross"`

	// MinimumWageCredit overrides the built-in credit policy for this year
	MinimumWageCredit *CreditPolicy `yaml:"minimum_wage_credit,omitempty" json:"minimumWageCredit,omitempty"`
}

// Limits returns the three bracket upper limits in ascending order
func (r TaxYearRates) Limits() []decimal.Decimal {
	return []decimal.Decimal{r.Bracket1Limit, r.Bracket2Limit, r.Bracket3Limit}
}

// Rates returns all five bracket rates in bracket order
func (r TaxYearRates) Rates() []decimal.Decimal {
	return []decimal.Decimal{r.Bracket1Rate, r.Bracket2Rate, r.Bracket3Rate, r.Bracket4Rate, r.Bracket5Rate}
}

// PercentageFields returns every percentage-valued field keyed by its config name
func (r TaxYearRates) PercentageFields() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"sgk_employee_rate":          r.SGKEmployeeRate,
		"sgk_employer_rate":          r.SGKEmployerRate,
		"unemployment_employee_rate": r.UnemploymentEmployeeRate,
		"unemployment_employer_rate": r.UnemploymentEmployerRate,
		"stamp_tax_rate":             r.StampTaxRate,
		"bracket1_rate":              r.Bracket1Rate,
		"bracket2_rate":              r.Bracket2Rate,
		"bracket3_rate":              r.Bracket3Rate,
		"bracket4_rate":              r.Bracket4Rate,
		"bracket5_rate":              r.Bracket5Rate,
	}
}

// CreditMode selects how the minimum-wage tax credit is derived from the
// reference tax on the minimum wage
type CreditMode string

const (
	CreditFull   CreditMode = "full"   // reference tax used verbatim
	CreditScaled CreditMode = "scaled" // reference tax multiplied by Factor
	CreditFixed  CreditMode = "fixed"  // published Amount, reference tax ignored
)

// CreditPolicy is the minimum-wage credit rule for one tax year
type CreditPolicy struct {
	Mode   CreditMode      `yaml:"mode" json:"mode"`
	Factor decimal.Decimal `yaml:"factor,omitempty" json:"factor,omitempty"`
	Amount decimal.Decimal `yaml:"amount,omitempty" json:"amount,omitempty"`
}
