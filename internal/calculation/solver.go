package calculation

import (
	"fmt"

	"github.com/rgehrsitz/payrolltr/internal/domain"
	"github.com/shopspring/decimal"
)

// SolverOptions configures the net-to-gross fixed-point iteration
type SolverOptions struct {
	MaxIterations int             // hard cap, never more than 20 by default
	Tolerance     decimal.Decimal // converged when |trial net - target| < Tolerance
	InitialRatio  decimal.Decimal // first guess is target * InitialRatio
	CentWalkBelow decimal.Decimal // within this residual, move one cent per iteration
}

// DefaultSolverOptions returns the default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		MaxIterations: 20,
		Tolerance:     decimal.New(1, -2),
		InitialRatio:  decimal.NewFromFloat(1.3),
		CentWalkBelow: decimal.New(5, -2),
	}
}

// SolveResult is the outcome of a net-to-gross solve. Converged is false when
// the iteration cap was hit; Gross is then the best-effort last estimate.
type SolveResult struct {
	Gross      decimal.Decimal
	TrialNet   decimal.Decimal
	Residual   decimal.Decimal // TrialNet - target
	Iterations int
	Converged  bool
}

// Warning returns the convergence warning for an unconverged result, or nil
func (sr SolveResult) Warning() *domain.ConvergenceWarning {
	if sr.Converged {
		return nil
	}
	return &domain.ConvergenceWarning{Iterations: sr.Iterations, Residual: sr.Residual}
}

// NetToGrossSolver finds a single-month gross salary whose projected net matches
// a target. The trial treats the month as the first of the year, so the solved
// gross is a headline figure, not an exact inverse of a multi-month projection.
type NetToGrossSolver struct {
	Projector *MonthlyProjector
	Options   SolverOptions
	Logger    Logger
}

// NewNetToGrossSolver creates a solver with default options
func NewNetToGrossSolver(projector *MonthlyProjector) *NetToGrossSolver {
	return &NetToGrossSolver{
		Projector: projector,
		Options:   DefaultSolverOptions(),
		Logger:    NopLogger{},
	}
}

// Solve iterates on a 2-decimal grid until the trial net is within tolerance or
// the iteration cap is reached. The first step scales gross by target / trialNet;
// later steps take a secant through the last two trials, since net is close to
// affine in gross once the minimum-wage credit is added. When the residual is
// within CentWalkBelow the estimate moves one cent toward the target instead, as
// a one-cent change in gross moves net by at most one cent.
//
// A target below the net of a one-cent gross (the credit alone) cannot be
// reached; the solve stops at gross 0.01 and is reported unconverged.
func (s *NetToGrossSolver) Solve(targetNet decimal.Decimal, rates domain.TaxYearRates) (SolveResult, error) {
	if !targetNet.IsPositive() {
		return SolveResult{}, &domain.ValidationError{Field: "amount", Message: "target net salary must be greater than zero"}
	}
	opts := s.Options
	if opts.MaxIterations <= 0 {
		return SolveResult{}, fmt.Errorf("solver max iterations must be positive, got %d", opts.MaxIterations)
	}

	credit := s.Projector.CreditCalc.ComputeCredit(rates)
	guess := roundMoney(targetNet.Mul(opts.InitialRatio))
	result := SolveResult{}
	var prev *trialPoint

	for result.Iterations < opts.MaxIterations {
		result.Iterations++

		trial := s.Projector.TrialNet(guess, rates, credit)
		result.Gross = guess
		result.TrialNet = trial
		result.Residual = trial.Sub(targetNet)

		s.logger().Debugf("solver iteration %d: gross=%s trial_net=%s residual=%s",
			result.Iterations, guess.StringFixed(2), trial.StringFixed(2), result.Residual.StringFixed(2))

		if result.Residual.Abs().LessThan(opts.Tolerance) {
			result.Converged = true
			return result, nil
		}
		if !trial.IsPositive() {
			break
		}
		if guess.Equal(cent) && result.Residual.IsPositive() {
			s.logger().Debugf("solver: target %s is below the net of the smallest gross", targetNet.StringFixed(2))
			break
		}

		next := s.nextGuess(guess, targetNet, trial, result.Residual, prev)
		prev = &trialPoint{gross: guess, net: trial}
		guess = next
	}

	return result, nil
}

type trialPoint struct {
	gross decimal.Decimal
	net   decimal.Decimal
}

func (s *NetToGrossSolver) nextGuess(guess, targetNet, trial, residual decimal.Decimal, prev *trialPoint) decimal.Decimal {
	var next decimal.Decimal
	switch {
	case residual.Abs().LessThanOrEqual(s.Options.CentWalkBelow):
		next = stepCent(guess, residual)
	default:
		next = roundMoney(guess.Mul(targetNet).Div(trial))
		if slope, ok := secantSlope(prev, guess, trial); ok {
			next = roundMoney(guess.Sub(residual.Div(slope)))
		}
		if next.Equal(guess) {
			next = stepCent(guess, residual)
		}
	}
	if !next.IsPositive() {
		next = cent
	}
	return next
}

// secantSlope is d(net)/d(gross) through the previous and current trial. Slopes
// outside (0, 1] come from rounding noise or a kink and are rejected.
func secantSlope(prev *trialPoint, guess, trial decimal.Decimal) (decimal.Decimal, bool) {
	if prev == nil || prev.gross.Equal(guess) {
		return decimal.Zero, false
	}
	slope := trial.Sub(prev.net).Div(guess.Sub(prev.gross))
	if !slope.IsPositive() || slope.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.Zero, false
	}
	return slope, true
}

func stepCent(guess, residual decimal.Decimal) decimal.Decimal {
	if residual.IsPositive() {
		return guess.Sub(cent)
	}
	return guess.Add(cent)
}

func (s *NetToGrossSolver) logger() Logger {
	if s.Logger == nil {
		return NopLogger{}
	}
	return s.Logger
}
