package output

import (
	"sort"
	"strings"

	"github.com/rgehrsitz/payrolltr/internal/domain"
	"github.com/shopspring/decimal"
)

// Formatter renders a salary projection into bytes for a given output format
type Formatter interface {
	Name() string
	Format(result *domain.SalaryProjectionResult) ([]byte, error)
}

var formatters = map[string]Formatter{}

// aliases maps alternate names onto registered formatters
var aliases = map[string]string{
	"table": "console",
	"text":  "console",
	"yml":   "yaml",
}

func register(f Formatter) {
	formatters[f.Name()] = f
}

func init() {
	register(ConsoleFormatter{})
	register(JSONFormatter{Pretty: true})
	register(YAMLFormatter{})
}

// GetFormatterByName returns the formatter registered under name or an alias, or nil
func GetFormatterByName(name string) Formatter {
	name = strings.ToLower(strings.TrimSpace(name))
	if target, ok := aliases[name]; ok {
		name = target
	}
	return formatters[name]
}

// AvailableFormats lists the registered formatter names, sorted
func AvailableFormats() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases lists the accepted alternate names, sorted
func AvailableFormatAliases() []string {
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FormatCurrency renders an amount the Turkish way: "." groups thousands,
// "," separates the two decimal places, e.g. 42.500,00
func FormatCurrency(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}

	out := grouped.String() + "," + fracPart
	if negative {
		out = "-" + out
	}
	return out
}
