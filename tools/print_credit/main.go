package main

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/payrolltr/internal/calculation"
	"github.com/rgehrsitz/payrolltr/internal/config"
)

func main() {
	table, err := config.NewRatesParser().Load(os.Getenv("PAYROLLTR_RATES"))
	if err != nil {
		panic(err)
	}

	credits := calculation.NewMinimumWageCreditCalculator(calculation.NewProgressiveTaxCalculator())

	fmt.Println("Minimum wage tax credit by year:")
	for _, y := range table.Years() {
		rates, err := table.Lookup(y)
		if err != nil {
			panic(err)
		}
		policy := credits.PolicyFor(rates)
		fmt.Printf("%d: minimum wage %s, reference tax %s, policy %s, credit %s\n",
			y,
			rates.MinimumWageGross.StringFixed(2),
			credits.ReferenceTax(rates).StringFixed(2),
			policy.Mode,
			credits.ComputeCredit(rates).StringFixed(2))
	}
}
