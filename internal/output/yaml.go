package output

import (
	"bytes"
	"fmt"

	"github.com/rgehrsitz/payrolltr/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter emits the projection as YAML
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(result *domain.SalaryProjectionResult) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("no result to format")
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(newResultView(result)); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	return buf.Bytes(), nil
}
