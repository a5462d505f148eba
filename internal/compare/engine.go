package compare

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/payrolltr/internal/calculation"
	"github.com/rgehrsitz/payrolltr/internal/domain"
)

// CompareEngine projects one salary request across several tax years
type CompareEngine struct {
	CalcEngine *calculation.CalculationEngine
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.CalculationEngine) *CompareEngine {
	return &CompareEngine{CalcEngine: calcEngine}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	BaseYear int   // Year every other year is compared against
	Years    []int // Alternative years, in display order
}

// Compare runs the request for the base year and each alternative year.
// The request's own Year is ignored. Any unknown year fails the whole comparison.
func (ce *CompareEngine) Compare(ctx context.Context, req domain.SalaryProjectionRequest, options CompareOptions) (*ComparisonSet, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}

	base, err := ce.run(ctx, req, options.BaseYear)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base year %d: %w", options.BaseYear, err)
	}

	set := &ComparisonSet{
		Amount:             req.Amount,
		AmountIsGross:      req.AmountIsGross,
		StartMonth:         req.StartMonth,
		BaseYear:           options.BaseYear,
		BaseResult:         base,
		AlternativeResults: make([]ComparisonResult, 0, len(options.Years)),
	}

	for _, year := range options.Years {
		alt, err := ce.run(ctx, req, year)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate year %d: %w", year, err)
		}
		alt.CompareToBase(base)
		set.AlternativeResults = append(set.AlternativeResults, *alt)
	}

	return set, nil
}

func (ce *CompareEngine) run(ctx context.Context, req domain.SalaryProjectionRequest, year int) (*ComparisonResult, error) {
	req.Year = year
	result, err := ce.CalcEngine.Calculate(ctx, req)
	if err != nil {
		return nil, err
	}
	cr := NewComparisonResult(result)
	return &cr, nil
}
