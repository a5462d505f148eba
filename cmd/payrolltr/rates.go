package main

import (
	"fmt"
	"strconv"

	"github.com/rgehrsitz/payrolltr/internal/calculation"
	"github.com/rgehrsitz/payrolltr/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func ratesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Inspect the tax rate table",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List the tax years with configured rates, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadRates(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if table.Metadata.Description != "" {
				fmt.Fprintf(out, "%s (updated %s)\n", table.Metadata.Description, table.Metadata.LastUpdated)
			}
			for _, y := range table.Years() {
				fmt.Fprintln(out, y)
			}
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show <year>",
		Short: "Show the rates for a tax year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q: %w", args[0], err)
			}
			table, err := loadRates(cmd)
			if err != nil {
				return err
			}
			rates, err := table.Lookup(year)
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(rates)
			if err != nil {
				return fmt.Errorf("failed to encode rates: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, string(data))

			credits := calculation.NewMinimumWageCreditCalculator(calculation.NewProgressiveTaxCalculator())
			policy := credits.PolicyFor(rates)
			fmt.Fprintf(out, "# effective minimum wage credit: %s (%s)\n",
				credits.ComputeCredit(rates).StringFixed(2), policy.Mode)
			return nil
		},
	}

	cmd.AddCommand(list, show)
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <rates-file>",
		Short: "Validate a tax rate file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := config.NewRatesParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rate file %s is valid (years: %v)\n", args[0], table.Years())
			return nil
		},
	}
}
