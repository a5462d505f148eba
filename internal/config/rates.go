package config

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"github.com/rgehrsitz/payrolltr/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/tax_rates.yaml
var defaultRatesYAML []byte

var hundred = decimal.NewFromInt(100)

// TaxRateTable is a read-only year -> rates lookup. It is never mutated after
// construction, so concurrent lookups need no locking.
type TaxRateTable struct {
	Metadata domain.RateTableMetadata
	byYear   map[int]domain.TaxYearRates
}

// NewTaxRateTable validates rows and builds the lookup. Duplicate years are rejected.
func NewTaxRateTable(metadata domain.RateTableMetadata, rows []domain.TaxYearRates) (*TaxRateTable, error) {
	byYear := make(map[int]domain.TaxYearRates, len(rows))
	for i, r := range rows {
		if err := ValidateTaxYearRates(r); err != nil {
			return nil, fmt.Errorf("rate entry %d (year %d) validation failed: %w", i, r.Year, err)
		}
		if _, dup := byYear[r.Year]; dup {
			return nil, fmt.Errorf("duplicate rate entry for year %d", r.Year)
		}
		byYear[r.Year] = r
	}
	return &TaxRateTable{Metadata: metadata, byYear: byYear}, nil
}

// Lookup returns the rates for year or a *domain.NotFoundError.
// It never substitutes another year's rates.
func (t *TaxRateTable) Lookup(year int) (domain.TaxYearRates, error) {
	r, ok := t.byYear[year]
	if !ok {
		return domain.TaxYearRates{}, &domain.NotFoundError{Year: year}
	}
	return r, nil
}

// Years lists the configured years, most recent first
func (t *TaxRateTable) Years() []int {
	years := make([]int, 0, len(t.byYear))
	for y := range t.byYear {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// RatesParser handles parsing of tax-rate table files
type RatesParser struct{}

// NewRatesParser creates a new rates parser
func NewRatesParser() *RatesParser {
	return &RatesParser{}
}

// LoadFromFile loads and validates a rate table from a YAML file
func (rp *RatesParser) LoadFromFile(filename string) (*TaxRateTable, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	table, err := rp.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return table, nil
}

// LoadDefault loads the rate table compiled into the binary
func (rp *RatesParser) LoadDefault() (*TaxRateTable, error) {
	return rp.Parse(defaultRatesYAML)
}

// Load reads filename, or the compiled-in table when filename is empty
func (rp *RatesParser) Load(filename string) (*TaxRateTable, error) {
	if filename == "" {
		return rp.LoadDefault()
	}
	return rp.LoadFromFile(filename)
}

// Parse decodes a YAML rate table and validates every entry
func (rp *RatesParser) Parse(data []byte) (*TaxRateTable, error) {
	var file domain.RateTableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(file.Years) == 0 {
		return nil, fmt.Errorf("rate table has no years")
	}
	return NewTaxRateTable(file.Metadata, file.Years)
}

// ValidateTaxYearRates checks a single year's rates
func ValidateTaxYearRates(r domain.TaxYearRates) error {
	if r.Year <= 0 {
		return fmt.Errorf("year must be positive")
	}

	for name, rate := range r.PercentageFields() {
		if rate.IsNegative() || rate.GreaterThan(hundred) {
			return fmt.Errorf("%s must be between 0 and 100, got %s", name, rate.String())
		}
	}

	if !r.Bracket1Limit.IsPositive() {
		return fmt.Errorf("bracket1_limit must be positive")
	}
	if !r.Bracket1Limit.LessThan(r.Bracket2Limit) {
		return fmt.Errorf("bracket2_limit must be greater than bracket1_limit")
	}
	if !r.Bracket2Limit.LessThan(r.Bracket3Limit) {
		return fmt.Errorf("bracket3_limit must be greater than bracket2_limit")
	}

	if !r.MinimumWageGross.IsPositive() {
		return fmt.Errorf("minimum_wage_gross must be positive")
	}

	if r.MinimumWageCredit != nil {
		if err := validateCreditPolicy(*r.MinimumWageCredit); err != nil {
			return fmt.Errorf("minimum_wage_credit: %w", err)
		}
	}
	return nil
}

func validateCreditPolicy(p domain.CreditPolicy) error {
	switch p.Mode {
	case domain.CreditFull:
		return nil
	case domain.CreditScaled:
		if !p.Factor.IsPositive() || p.Factor.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("factor must be greater than 0 and at most 1")
		}
		return nil
	case domain.CreditFixed:
		if p.Amount.IsNegative() {
			return fmt.Errorf("amount cannot be negative")
		}
		return nil
	default:
		return fmt.Errorf("mode must be 'full', 'scaled', or 'fixed'")
	}
}
