package integration

import (
	"context"
	"testing"
	"time"

	"github.com/rgehrsitz/payrolltr/internal/calculation"
	"github.com/rgehrsitz/payrolltr/internal/compare"
	"github.com/rgehrsitz/payrolltr/internal/config"
	"github.com/rgehrsitz/payrolltr/internal/domain"
	"github.com/rgehrsitz/payrolltr/internal/output"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) (*calculation.CalculationEngine, *config.TaxRateTable) {
	t.Helper()
	table, err := config.NewRatesParser().LoadDefault()
	require.NoError(t, err)
	return calculation.NewCalculationEngine(table), table
}

// TestIntegrationSuite runs all integration tests
func TestIntegrationSuite(t *testing.T) {
	t.Run("Smoke", testSmoke)
	t.Run("Data_Consistency", testDataConsistency)
	t.Run("Round_Trip", testRoundTrip)
	t.Run("Error_Handling", testErrorHandling)
	t.Run("Performance", testPerformance)
}

func testSmoke(t *testing.T) {
	engine, _ := newEngine(t)

	result, err := engine.Calculate(context.Background(), domain.SalaryProjectionRequest{
		Amount:              decimal.NewFromInt(50000),
		AmountIsGross:       true,
		Year:                2024,
		StartMonth:          1,
		IncludeEmployerCost: true,
	})
	require.NoError(t, err)
	require.Len(t, result.Months, 12)

	for _, name := range output.AvailableFormats() {
		data, err := output.GetFormatterByName(name).Format(result)
		require.NoError(t, err, name)
		assert.NotEmpty(t, data, name)
	}
}

// summed monthly tax always equals the tax on the final cumulative base
func testDataConsistency(t *testing.T) {
	engine, table := newEngine(t)

	for _, year := range table.Years() {
		for _, start := range []int{1, 6, 12} {
			for _, gross := range []string{"8500", "47250.55", "310000"} {
				result, err := engine.Calculate(context.Background(), domain.SalaryProjectionRequest{
					Amount:        decimal.RequireFromString(gross),
					AmountIsGross: true,
					Year:          year,
					StartMonth:    start,
				})
				require.NoError(t, err)
				require.Len(t, result.Months, 13-start)

				rates, _ := table.Lookup(year)
				totals := result.Totals()
				expectedTax := engine.TaxCalc.ComputeTax(result.FinalCumulativeTaxBase(), rates)
				assert.True(t, totals.IncomeTax.Equal(expectedTax),
					"year %d start %d gross %s: summed tax %s != %s", year, start, gross, totals.IncomeTax, expectedTax)
				assert.True(t, totals.TaxBase.Equal(result.FinalCumulativeTaxBase()))
			}
		}
	}
}

func testRoundTrip(t *testing.T) {
	engine, table := newEngine(t)

	for _, year := range table.Years() {
		for _, net := range []string{"15000", "30000", "75000.50"} {
			result, err := engine.Calculate(context.Background(), domain.SalaryProjectionRequest{
				Amount:     decimal.RequireFromString(net),
				Year:       year,
				StartMonth: 1,
			})
			require.NoError(t, err)
			assert.False(t, result.Approximate, "year %d net %s", year, net)
			assert.True(t, result.Months[0].NetSalary.Equal(decimal.RequireFromString(net)),
				"year %d: january net %s, want %s", year, result.Months[0].NetSalary, net)
		}
	}
}

func testErrorHandling(t *testing.T) {
	engine, _ := newEngine(t)

	_, err := engine.Calculate(context.Background(), domain.SalaryProjectionRequest{
		Amount: decimal.NewFromInt(1000), AmountIsGross: true, Year: 2099, StartMonth: 1,
	})
	assert.ErrorIs(t, err, domain.ErrRatesNotFound)

	ce := compare.NewCompareEngine(engine)
	_, err = ce.Compare(context.Background(), domain.SalaryProjectionRequest{
		Amount: decimal.NewFromInt(1000), AmountIsGross: true, StartMonth: 1,
	}, compare.CompareOptions{BaseYear: 2024, Years: []int{2099}})
	assert.ErrorIs(t, err, domain.ErrRatesNotFound)
}

func testPerformance(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping performance check in short mode")
	}
	engine, _ := newEngine(t)

	start := time.Now()
	for i := 0; i < 200; i++ {
		_, err := engine.Calculate(context.Background(), domain.SalaryProjectionRequest{
			Amount:     decimal.NewFromInt(int64(20000 + i*250)),
			Year:       2025,
			StartMonth: 1,
		})
		require.NoError(t, err)
	}
	assert.Less(t, time.Since(start), 10*time.Second, "200 net-to-gross projections should be fast")
}
