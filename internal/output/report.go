package output

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/DigitariaWebs/safyr-paie/internal/domain"
)

// Formatter renders a run report into one output format. Rounding to cents
// happens here and only here; the pipeline upstream accumulates unrounded
// decimals.
type Formatter interface {
	Name() string
	Format(report *domain.PayrollRunReport) ([]byte, error)
}

// GetFormatterByName returns the formatter registered under name, or nil.
func GetFormatterByName(name string) Formatter {
	switch name {
	case "console":
		return ConsoleFormatter{}
	case "csv":
		return CSVFormatter{}
	case "json":
		return JSONFormatter{}
	case "pdf":
		return PDFFormatter{}
	}
	return nil
}

// FormatterNames lists the registered formatter names.
func FormatterNames() []string {
	return []string{"console", "csv", "json", "pdf"}
}

// FormatEuros renders an amount rounded to cents with the euro sign.
func FormatEuros(amount decimal.Decimal) string {
	return fmt.Sprintf("%s €", amount.StringFixed(2))
}
