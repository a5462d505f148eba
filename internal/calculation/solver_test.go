package calculation

import (
	"testing"

	"github.com/rgehrsitz/payrolltr/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetToGrossSolver_RoundTrip(t *testing.T) {
	solver := NewNetToGrossSolver(newTestProjector())

	targets := []struct {
		rates  func() domain.TaxYearRates
		target string
	}{
		{rates2024, "30000"},
		{rates2024, "17002"},
		{rates2024, "200000"},
		{rates2024, "12345.67"},
		{rates2022, "8000"},
		{rates2022, "150000.01"},
	}

	for _, tt := range targets {
		rates := tt.rates()
		t.Run(tt.target, func(t *testing.T) {
			res, err := solver.Solve(d(tt.target), rates)
			require.NoError(t, err)

			assert.True(t, res.Converged, "not converged: %+v", res)
			assert.Nil(t, res.Warning())
			assert.LessOrEqual(t, res.Iterations, 20)
			assert.True(t, res.Residual.Abs().LessThan(d("0.01")))
			assert.True(t, res.Gross.Equal(res.Gross.Round(2)), "gross stays on the cent grid")

			credit := solver.Projector.CreditCalc.ComputeCredit(rates)
			assert.True(t, solver.Projector.TrialNet(res.Gross, rates, credit).Equal(d(tt.target)))
		})
	}
}

func TestNetToGrossSolver_IterationCap(t *testing.T) {
	solver := NewNetToGrossSolver(newTestProjector())
	solver.Options.MaxIterations = 1

	res, err := solver.Solve(d("30000"), rates2024())
	require.NoError(t, err, "non-convergence is not an error")

	assert.False(t, res.Converged)
	assert.Equal(t, 1, res.Iterations)
	// first guess is target * 1.3
	assert.True(t, res.Gross.Equal(d("39000")))

	w := res.Warning()
	require.NotNil(t, w)
	assert.Equal(t, 1, w.Iterations)
	assert.True(t, w.Residual.Equal(res.Residual))
	assert.Contains(t, w.Error(), "did not converge after 1 iterations")
}

func TestNetToGrossSolver_InvalidInput(t *testing.T) {
	solver := NewNetToGrossSolver(newTestProjector())

	_, err := solver.Solve(decimal.Zero, rates2024())
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	_, err = solver.Solve(d("-5"), rates2024())
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	solver.Options.MaxIterations = 0
	_, err = solver.Solve(d("1000"), rates2024())
	assert.Error(t, err)
}

func TestNetToGrossSolver_LogsIterations(t *testing.T) {
	logger := &TestLogger{}
	solver := NewNetToGrossSolver(newTestProjector())
	solver.Logger = logger

	res, err := solver.Solve(d("30000"), rates2024())
	require.NoError(t, err)

	assert.Len(t, logger.Messages["debug"], res.Iterations)
	assert.Contains(t, logger.Messages["debug"][0], "solver iteration 1")
}

func TestNetToGrossSolver_CreditDominatedTargets(t *testing.T) {
	solver := NewNetToGrossSolver(newTestProjector())

	// 2022 credit is 638.01, so these targets sit close to the credit
	for _, target := range []string{"1000", "1100", "1250.50", "1316", "2000", "4999.99"} {
		t.Run(target, func(t *testing.T) {
			res, err := solver.Solve(d(target), rates2022())
			require.NoError(t, err)

			assert.True(t, res.Converged, "not converged: %+v", res)
			assert.Less(t, res.Iterations, 20)
			assert.True(t, res.Residual.Abs().LessThan(d("0.01")))
		})
	}
}

func TestNetToGrossSolver_TargetBelowCredit(t *testing.T) {
	logger := &TestLogger{}
	solver := NewNetToGrossSolver(newTestProjector())
	solver.Logger = logger

	// 2024 credit is 1083.88; even a one-cent gross nets more than 1000
	res, err := solver.Solve(d("1000"), rates2024())
	require.NoError(t, err, "an unreachable target is not an error")

	assert.False(t, res.Converged)
	assert.True(t, res.Gross.Equal(d("0.01")))
	assert.True(t, res.Residual.IsPositive())
	assert.Less(t, res.Iterations, 20, "stops once the smallest gross is reached")
	require.NotNil(t, res.Warning())
	assert.Contains(t, logger.Messages["debug"][len(logger.Messages["debug"])-1], "below the net of the smallest gross")
}
