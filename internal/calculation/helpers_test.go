package calculation

import (
	"fmt"
	"sync"

	"github.com/rgehrsitz/payrolltr/internal/domain"
	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// rates2024 mirrors the 2024 entry of the built-in rate table
func rates2024() domain.TaxYearRates {
	return domain.TaxYearRates{
		Year:                     2024,
		SGKEmployeeRate:          d("14"),
		SGKEmployerRate:          d("20.5"),
		UnemploymentEmployeeRate: d("1"),
		UnemploymentEmployerRate: d("2"),
		StampTaxRate:             d("0.759"),
		Bracket1Limit:            d("110000"),
		Bracket2Limit:            d("230000"),
		Bracket3Limit:            d("880000"),
		Bracket1Rate:             d("15"),
		Bracket2Rate:             d("20"),
		Bracket3Rate:             d("27"),
		Bracket4Rate:             d("35"),
		Bracket5Rate:             d("40"),
		MinimumWageGross:         d("17002"),
	}
}

// rates2022 mirrors the 2022 entry, which carries a full credit policy
func rates2022() domain.TaxYearRates {
	r := rates2024()
	r.Year = 2022
	r.Bracket1Limit = d("32000")
	r.Bracket2Limit = d("70000")
	r.Bracket3Limit = d("250000")
	r.MinimumWageGross = d("5004")
	r.MinimumWageCredit = &domain.CreditPolicy{Mode: domain.CreditFull}
	return r
}

// stubRates is a RateLookup over a fixed set of years
type stubRates map[int]domain.TaxYearRates

func (s stubRates) Lookup(year int) (domain.TaxYearRates, error) {
	r, ok := s[year]
	if !ok {
		return domain.TaxYearRates{}, &domain.NotFoundError{Year: year}
	}
	return r, nil
}

// TestLogger records formatted messages per level
type TestLogger struct {
	mu       sync.Mutex
	Messages map[string][]string
}

func (l *TestLogger) record(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.Messages == nil {
		l.Messages = map[string][]string{}
	}
	l.Messages[level] = append(l.Messages[level], fmt.Sprintf(format, args...))
}

func (l *TestLogger) Debugf(format string, args ...any) { l.record("debug", format, args...) }
func (l *TestLogger) Infof(format string, args ...any)  { l.record("info", format, args...) }
func (l *TestLogger) Warnf(format string, args ...any)  { l.record("warn", format, args...) }
func (l *TestLogger) Errorf(format string, args ...any) { l.record("error", format, args...) }
