package output

import (
	"encoding/json"

	"github.com/DigitariaWebs/safyr-paie/internal/domain"
)

// JSONFormatter renders the full run report, intermediates included, for
// downstream export tooling.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(report *domain.PayrollRunReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
