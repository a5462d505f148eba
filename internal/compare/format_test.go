package compare

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleComparisonSet() *ComparisonSet {
	return &ComparisonSet{
		Amount:        decimal.NewFromInt(50000),
		AmountIsGross: true,
		StartMonth:    1,
		BaseYear:      2024,
		BaseResult: &ComparisonResult{
			Year:            2024,
			GrossSalary:     decimal.NewFromInt(50000),
			AnnualGross:     decimal.NewFromInt(600000),
			AnnualIncomeTax: decimal.NewFromInt(120000),
			AnnualNet:       decimal.NewFromInt(400000),
		},
		AlternativeResults: []ComparisonResult{
			{
				Year:                  2025,
				GrossSalary:           decimal.NewFromInt(50000),
				AnnualGross:           decimal.NewFromInt(600000),
				AnnualIncomeTax:       decimal.NewFromInt(110000),
				AnnualNet:             decimal.NewFromInt(410000),
				NetDiffFromBase:       decimal.NewFromInt(10000),
				NetPctFromBase:        decimal.NewFromFloat(2.5),
				IncomeTaxDiffFromBase: decimal.NewFromInt(-10000),
			},
		},
	}
}

func TestTableFormatter_Format(t *testing.T) {
	formatter := &TableFormatter{}

	result := formatter.Format(sampleComparisonSet())
	require.NotEmpty(t, result)

	assert.Contains(t, result, "TAX YEAR COMPARISON")
	assert.Contains(t, result, "Monthly gross salary: 50000.00 TL from month 1")
	assert.Contains(t, result, "Base Year: 2024")
	assert.Contains(t, result, "2024 (base)")
	assert.Contains(t, result, "410000.00")
	assert.Contains(t, result, "COMPARISON TO BASE")
	assert.Contains(t, result, "Annual Net:  +10000.00 TL (2.50%)")
	assert.Contains(t, result, "Income Tax:  -10000.00 TL")
}

func TestTableFormatter_Format_BaseOnly(t *testing.T) {
	formatter := &TableFormatter{}
	set := sampleComparisonSet()
	set.AlternativeResults = nil
	set.AmountIsGross = false

	result := formatter.Format(set)

	assert.Contains(t, result, "Monthly net salary")
	assert.NotContains(t, result, "COMPARISON TO BASE")
	// employer cost was not requested
	assert.True(t, strings.Contains(result, " -\n"))
}

func TestTableFormatter_ApproximateMarker(t *testing.T) {
	formatter := &TableFormatter{}
	set := sampleComparisonSet()
	set.BaseResult.Approximate = true

	result := formatter.Format(set)

	assert.Contains(t, result, "2024 (base)~")
}

func TestJSONFormatter_Format(t *testing.T) {
	for _, pretty := range []bool{false, true} {
		formatter := &JSONFormatter{Pretty: pretty}

		out, err := formatter.Format(sampleComparisonSet())
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.EqualValues(t, 2024, decoded["baseYear"])

		alts, ok := decoded["alternativeResults"].([]any)
		require.True(t, ok)
		assert.Len(t, alts, 1)
		if pretty {
			assert.Contains(t, out, "\n  ")
		}
	}
}

func TestJSONFormatter_EmptySet(t *testing.T) {
	_, err := (&JSONFormatter{}).Format(&ComparisonSet{})
	assert.Error(t, err)
}
