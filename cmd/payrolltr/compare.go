package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/payrolltr/internal/compare"
	"github.com/spf13/cobra"
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [request-file]",
		Short: "Compare the same salary across tax years",
		Long: `Project one salary under several tax years and compare the annual totals
against a base year.

Examples:
  payrolltr compare --amount 50000 --base-year 2024 --years 2023,2025
  payrolltr compare --amount 30000 --net --years 2022,2023 --format json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, table, err := newEngine(cmd)
			if err != nil {
				return err
			}

			req, err := requestFromFlags(cmd, args, table)
			if err != nil {
				return err
			}

			baseYear, _ := cmd.Flags().GetInt("base-year")
			if baseYear == 0 {
				baseYear = req.Year
			}
			years, _ := cmd.Flags().GetIntSlice("years")
			if len(years) == 0 {
				for _, y := range table.Years() {
					if y != baseYear {
						years = append(years, y)
					}
				}
			}
			// the base year still has to pass request validation
			req.Year = baseYear

			compareEngine := compare.NewCompareEngine(engine)
			comparisonSet, err := compareEngine.Compare(cmd.Context(), req, compare.CompareOptions{
				BaseYear: baseYear,
				Years:    years,
			})
			if err != nil {
				return fmt.Errorf("comparison failed: %w", err)
			}

			outputFormat, _ := cmd.Flags().GetString("format")
			out := cmd.OutOrStdout()
			switch strings.ToLower(outputFormat) {
			case "json":
				formatter := &compare.JSONFormatter{Pretty: true}
				s, err := formatter.Format(comparisonSet)
				if err != nil {
					return fmt.Errorf("failed to format JSON: %w", err)
				}
				fmt.Fprintln(out, s)
			case "table", "console", "":
				formatter := &compare.TableFormatter{}
				fmt.Fprint(out, formatter.Format(comparisonSet))
			default:
				return fmt.Errorf("unknown output format: %s (valid: table, json)", outputFormat)
			}
			return nil
		},
	}

	addRequestFlags(cmd)
	cmd.Flags().Int("base-year", 0, "Year every other year is compared against (default: most recent)")
	cmd.Flags().IntSlice("years", nil, "Comma-separated years to compare (default: every other year in the table)")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, json)")
	return cmd
}
