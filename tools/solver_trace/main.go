package main

import (
	"fmt"
	"os"
	"strconv"

	calc "github.com/rgehrsitz/payrolltr/internal/calculation"
	"github.com/rgehrsitz/payrolltr/internal/config"
	"github.com/shopspring/decimal"
)

// traceLogger prints solver iterations as CSV rows
type traceLogger struct {
	calc.NopLogger
	year int
}

func (t traceLogger) Debugf(format string, args ...any) {
	fmt.Printf("%d,%s\n", t.year, fmt.Sprintf(format, args...))
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: solver_trace <target-net> [year ...]")
		return
	}
	target, err := decimal.NewFromString(os.Args[1])
	if err != nil {
		panic(err)
	}

	table, err := config.NewRatesParser().Load(os.Getenv("PAYROLLTR_RATES"))
	if err != nil {
		panic(err)
	}

	years := table.Years()
	if len(os.Args) > 2 {
		years = years[:0]
		for _, a := range os.Args[2:] {
			y, err := strconv.Atoi(a)
			if err != nil {
				panic(err)
			}
			years = append(years, y)
		}
	}

	engine := calc.NewCalculationEngine(table)

	fmt.Println("Year,Iteration")
	for _, y := range years {
		rates, err := table.Lookup(y)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		engine.Solver.Logger = traceLogger{year: y}
		res, err := engine.Solver.Solve(target, rates)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Printf("%d,result gross=%s trial_net=%s iterations=%d converged=%t\n",
			y, res.Gross.StringFixed(2), res.TrialNet.StringFixed(2), res.Iterations, res.Converged)
	}
}
