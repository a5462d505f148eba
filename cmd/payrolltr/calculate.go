package main

import (
	"fmt"

	"github.com/rgehrsitz/payrolltr/internal/config"
	"github.com/rgehrsitz/payrolltr/internal/domain"
	"github.com/rgehrsitz/payrolltr/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func calculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate [request-file]",
		Short: "Project a monthly salary through the end of the year",
		Long: `Project a monthly salary from the start month through December.

The request comes from flags, from a YAML request file, or both; flags that are
set override the file.

Examples:
  payrolltr calculate --amount 50000 --year 2024
  payrolltr calculate --amount 30000 --net --year 2024 --start-month 7 --employer-cost
  payrolltr calculate request.yaml --format json
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

			outputFormat, _ := cmd.Flags().GetString("format")
			f := output.GetFormatterByName(outputFormat)
			if f == nil {
				return fmt.Errorf("unknown output format: %s (valid: %v)", outputFormat, output.AvailableFormats())
			}

			result, err := engine.Calculate(cmd.Context(), req)
			if err != nil {
				return err
			}

			data, err := f.Format(result)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	addRequestFlags(cmd)
	cmd.Flags().Int("year", 0, "Tax year (default: most recent year in the rate table)")
	cmd.Flags().StringP("format", "f", "console", "Output format (console, json, yaml)")
	return cmd
}

// addRequestFlags registers the flags shared by calculate and compare
func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().String("amount", "", "Monthly amount in TL, at most 2 decimal places")
	cmd.Flags().Bool("net", false, "Treat --amount as the target net salary")
	cmd.Flags().Int("start-month", 1, "First month to project (1-12)")
	cmd.Flags().Bool("employer-cost", false, "Include employer-side contributions")
}

// requestFromFlags builds the request from an optional file plus the flags that
// were set. The file is validated only after the overrides are applied.
func requestFromFlags(cmd *cobra.Command, args []string, table *config.TaxRateTable) (domain.SalaryProjectionRequest, error) {
	req := domain.SalaryProjectionRequest{AmountIsGross: true, StartMonth: 1}
	if len(args) == 1 {
		var err error
		req, err = config.DecodeRequestFile(args[0])
		if err != nil {
			return req, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("amount") {
		raw, _ := flags.GetString("amount")
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return req, &domain.ValidationError{Field: "amount", Message: fmt.Sprintf("not a number: %q", raw)}
		}
		req.Amount = amount
	}
	if flags.Changed("net") {
		net, _ := flags.GetBool("net")
		req.AmountIsGross = !net
	}
	if flags.Changed("start-month") {
		req.StartMonth, _ = flags.GetInt("start-month")
	}
	if flags.Changed("employer-cost") {
		req.IncludeEmployerCost, _ = flags.GetBool("employer-cost")
	}
	if flags.Changed("year") {
		req.Year, _ = flags.GetInt("year")
	}
	if req.Year == 0 {
		if years := table.Years(); len(years) > 0 {
			req.Year = years[0]
		}
	}

	if len(args) == 0 && !flags.Changed("amount") {
		return req, &domain.ValidationError{Field: "amount", Message: "--amount or a request file is required"}
	}
	return req, req.Validate()
}
