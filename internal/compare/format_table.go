package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing tax years
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	direction := "gross"
	if !compSet.AmountIsGross {
		direction = "net"
	}

	// Header
	sb.WriteString("TAX YEAR COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 96) + "\n")
	sb.WriteString(fmt.Sprintf("Monthly %s salary: %s TL from month %d\n", direction, compSet.Amount.StringFixed(2), compSet.StartMonth))
	sb.WriteString(fmt.Sprintf("Base Year: %d\n", compSet.BaseYear))
	sb.WriteString("\n")

	yearWidth := 12
	numWidth := 16

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s %*s\n",
		yearWidth, "Year",
		numWidth, "Monthly Gross",
		numWidth, "Annual Gross",
		numWidth, "Income Tax",
		numWidth, "Annual Net",
		numWidth, "Employer Cost"))
	sb.WriteString(strings.Repeat("-", 96) + "\n")

	sb.WriteString(tf.formatRow(compSet.BaseResult, yearWidth, numWidth, true))

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 96) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&alt, yearWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 96) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 96) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%d:\n", alt.Year))
			sb.WriteString(fmt.Sprintf("  Annual Net:  %s%s TL (%s%%)\n",
				tf.deltaSymbol(alt.NetDiffFromBase),
				alt.NetDiffFromBase.StringFixed(2),
				alt.NetPctFromBase.StringFixed(2)))
			if !alt.IncomeTaxDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Income Tax:  %s%s TL\n",
					tf.deltaSymbol(alt.IncomeTaxDiffFromBase),
					alt.IncomeTaxDiffFromBase.StringFixed(2)))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single year row
func (tf *TableFormatter) formatRow(result *ComparisonResult, yearWidth, numWidth int, isBase bool) string {
	year := fmt.Sprintf("%d", result.Year)
	if isBase {
		year += " (base)"
	}
	if result.Approximate {
		year += "~"
	}

	employerCost := "-"
	if !result.AnnualEmployerCost.IsZero() {
		employerCost = result.AnnualEmployerCost.StringFixed(2)
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s %*s\n",
		yearWidth, year,
		numWidth, result.GrossSalary.StringFixed(2),
		numWidth, result.AnnualGross.StringFixed(2),
		numWidth, result.AnnualIncomeTax.StringFixed(2),
		numWidth, result.AnnualNet.StringFixed(2),
		numWidth, employerCost)
}

// deltaSymbol returns "+" for positive deltas; negatives already carry a sign
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	}
	return ""
}
