package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rgehrsitz/payrolltr/internal/calculation"
	"github.com/rgehrsitz/payrolltr/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ratesEnvVar names an alternative rate file when --rates is not given
const ratesEnvVar = "PAYROLLTR_RATES"

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "payrolltr %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(out, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}

// newLogger builds the CLI logger. LOG_LEVEL sets the level (default warn);
// --debug forces debug.
func newLogger(out io.Writer, debugMode bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.WarnLevel
	}
	if debugMode {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadRates resolves the rate table: --rates, then $PAYROLLTR_RATES, then the embedded default
func loadRates(cmd *cobra.Command) (*config.TaxRateTable, error) {
	path, _ := cmd.Flags().GetString("rates")
	if path == "" {
		path = strings.TrimSpace(os.Getenv(ratesEnvVar))
	}
	return config.NewRatesParser().Load(path)
}

// newEngine loads the rate table and builds an engine logging through logrus
func newEngine(cmd *cobra.Command) (*calculation.CalculationEngine, *config.TaxRateTable, error) {
	table, err := loadRates(cmd)
	if err != nil {
		return nil, nil, err
	}
	debugMode, _ := cmd.Flags().GetBool("debug")
	logger := newLogger(cmd.ErrOrStderr(), debugMode)

	engine := calculation.NewCalculationEngine(table)
	engine.SetLogger(logger)
	logger.Debugf("rate table loaded: %s, years %v", table.Metadata.Description, table.Years())
	return engine, table, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "payrolltr",
		Short: "Turkish payroll gross/net calculator",
		Long: `Projects a monthly salary from a start month through December under the
Turkish payroll rules of a tax year: SGK and unemployment contributions,
cumulative progressive income tax, stamp tax and the minimum-wage tax credit.

Amounts may be given as gross or as a target net salary.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("rates", "", "Path to a tax rate YAML file (default: $"+ratesEnvVar+" or the built-in table)")
	root.PersistentFlags().Bool("debug", false, "Enable debug logging")

	root.AddCommand(calculateCmd())
	root.AddCommand(compareCmd())
	root.AddCommand(ratesCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(versionCmd())
	return root
}

func main() {
	// a missing .env is not an error
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
