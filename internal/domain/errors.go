package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrRatesNotFound is matched by every NotFoundError
	ErrRatesNotFound = errors.New("tax rates not found")
	// ErrInvalidRequest is matched by every ValidationError
	ErrInvalidRequest = errors.New("invalid salary projection request")
)

// NotFoundError reports a tax year with no configured rates
type NotFoundError struct {
	Year int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("tax rates for year %d not found", e.Year)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrRatesNotFound
}

// ValidationError reports a request rejected before any projection runs
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// ConvergenceWarning marks a net-to-gross estimate that hit the iteration cap.
// It is attached to a result, never returned as a failure.
type ConvergenceWarning struct {
	Iterations int
	Residual   decimal.Decimal // trial net minus target net at the last estimate
}

func (w *ConvergenceWarning) Error() string {
	return fmt.Sprintf("net-to-gross solver did not converge after %d iterations (residual %s)",
		w.Iterations, w.Residual.StringFixed(2))
}
