package calculation

import (
	"testing"

	"github.com/rgehrsitz/payrolltr/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMinimumWageCreditCalculator_ReferenceTax(t *testing.T) {
	calc := NewMinimumWageCreditCalculator(NewProgressiveTaxCalculator())

	// 17002 - 2380.28 - 170.02 = 14451.70 at 15%
	assert.True(t, calc.ReferenceTax(rates2024()).Equal(d("2167.76")))
	// 5004 - 700.56 - 50.04 = 4253.40 at 15%
	assert.True(t, calc.ReferenceTax(rates2022()).Equal(d("638.01")))
}

func TestMinimumWageCreditCalculator_ComputeCredit(t *testing.T) {
	calc := NewMinimumWageCreditCalculator(NewProgressiveTaxCalculator())

	tests := []struct {
		name   string
		rates  func() domain.TaxYearRates
		want   string
		policy domain.CreditMode
	}{
		{"full policy from rates", rates2022, "638.01", domain.CreditFull},
		{"fallback halves reference tax", rates2024, "1083.88", domain.CreditScaled},
		{"fixed amount rounded", func() domain.TaxYearRates {
			r := rates2024()
			r.MinimumWageCredit = &domain.CreditPolicy{Mode: domain.CreditFixed, Amount: d("1234.567")}
			return r
		}, "1234.57", domain.CreditFixed},
		{"scaled by zero", func() domain.TaxYearRates {
			r := rates2024()
			r.MinimumWageCredit = &domain.CreditPolicy{Mode: domain.CreditScaled, Factor: d("0")}
			return r
		}, "0", domain.CreditScaled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rates := tt.rates()
			assert.Equal(t, tt.policy, calc.PolicyFor(rates).Mode)
			got := calc.ComputeCredit(rates)
			assert.True(t, got.Equal(d(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestMinimumWageCreditCalculator_PolicyTable(t *testing.T) {
	calc := NewMinimumWageCreditCalculator(NewProgressiveTaxCalculator())

	// built-in table covers 2022 even when the rate file is silent
	r := rates2022()
	r.MinimumWageCredit = nil
	assert.Equal(t, domain.CreditFull, calc.PolicyFor(r).Mode)

	// rates carrying a policy win over the table
	r.MinimumWageCredit = &domain.CreditPolicy{Mode: domain.CreditFixed, Amount: d("10")}
	assert.Equal(t, domain.CreditFixed, calc.PolicyFor(r).Mode)

	calc.Policies[2024] = domain.CreditPolicy{Mode: domain.CreditFull}
	assert.True(t, calc.ComputeCredit(rates2024()).Equal(d("2167.76")))
}
