package compare

import (
	"fmt"

	"github.com/goccy/go-json"
)

// JSONFormatter formats a year comparison as JSON
type JSONFormatter struct {
	Pretty bool // indent with two spaces
}

// Format encodes the whole comparison set, base year first
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	if compSet == nil || compSet.BaseResult == nil {
		return "", fmt.Errorf("comparison has no base year result")
	}

	marshal := json.Marshal
	if jf.Pretty {
		marshal = func(v any) ([]byte, error) { return json.MarshalIndent(v, "", "  ") }
	}

	data, err := marshal(compSet)
	if err != nil {
		return "", fmt.Errorf("failed to encode comparison: %w", err)
	}
	return string(data), nil
}
