package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/rgehrsitz/payrolltr/internal/domain"
)

// RateLookup resolves the rates in force for a tax year. Implementations
// return a *domain.NotFoundError for unknown years.
type RateLookup interface {
	Lookup(year int) (domain.TaxYearRates, error)
}

// CalculationEngine orchestrates a salary projection: rate lookup, optional
// net-to-gross solve, and the month-by-month projection.
type CalculationEngine struct {
	Rates      RateLookup
	TaxCalc    *ProgressiveTaxCalculator
	CreditCalc *MinimumWageCreditCalculator
	Projector  *MonthlyProjector
	Solver     *NetToGrossSolver
	Logger     Logger

	// now stamps results; replaced in tests
	now func() time.Time
}

// NewCalculationEngine creates an engine reading rates from rates
func NewCalculationEngine(rates RateLookup) *CalculationEngine {
	taxCalc := NewProgressiveTaxCalculator()
	creditCalc := NewMinimumWageCreditCalculator(taxCalc)
	projector := NewMonthlyProjector(taxCalc, creditCalc)
	return &CalculationEngine{
		Rates:      rates,
		TaxCalc:    taxCalc,
		CreditCalc: creditCalc,
		Projector:  projector,
		Solver:     NewNetToGrossSolver(projector),
		Logger:     NopLogger{},
		now:        time.Now,
	}
}

// SetLogger sets the engine and solver logger; nil restores the no-op logger
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	ce.Logger = l
	if ce.Solver != nil {
		ce.Solver.Logger = l
	}
}

// Calculate validates req, resolves the gross salary and projects every month
// from the start month through December.
//
// A net-to-gross solve that hits its iteration cap still returns a result,
// marked Approximate with the ConvergenceWarning attached.
func (ce *CalculationEngine) Calculate(ctx context.Context, req domain.SalaryProjectionRequest) (*domain.SalaryProjectionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	log := ce.logger()
	log.Debugf("projecting amount=%s gross=%t year=%d start_month=%d employer_cost=%t",
		req.Amount.StringFixed(2), req.AmountIsGross, req.Year, req.StartMonth, req.IncludeEmployerCost)

	rates, err := ce.Rates.Lookup(req.Year)
	if err != nil {
		return nil, fmt.Errorf("rate lookup failed: %w", err)
	}

	result := &domain.SalaryProjectionResult{
		Request:     req,
		GrossSalary: req.Amount,
	}

	if !req.AmountIsGross {
		solved, err := ce.Solver.Solve(req.Amount, rates)
		if err != nil {
			return nil, fmt.Errorf("net-to-gross solve failed: %w", err)
		}
		result.GrossSalary = solved.Gross
		result.SolverIterations = solved.Iterations
		if w := solved.Warning(); w != nil {
			result.Approximate = true
			result.Warning = w
			log.Warnf("%v; using gross %s", w, solved.Gross.StringFixed(2))
		} else {
			log.Debugf("net %s solved to gross %s in %d iterations",
				req.Amount.StringFixed(2), solved.Gross.StringFixed(2), solved.Iterations)
		}
	}

	months, err := ce.Projector.Project(result.GrossSalary, rates, req.StartMonth, req.IncludeEmployerCost)
	if err != nil {
		return nil, err
	}
	result.Months = months
	if ce.now != nil {
		result.CalculatedAt = ce.now()
	} else {
		result.CalculatedAt = time.Now()
	}

	return result, nil
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}
