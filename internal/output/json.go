package output

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/rgehrsitz/payrolltr/internal/domain"
)

// JSONFormatter emits the projection as JSON
type JSONFormatter struct {
	Pretty bool
}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.SalaryProjectionResult) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("no result to format")
	}
	view := newResultView(result)
	if j.Pretty {
		return json.MarshalIndent(view, "", "  ")
	}
	return json.Marshal(view)
}
