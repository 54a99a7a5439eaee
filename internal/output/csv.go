package output

import (
	"bytes"
	"encoding/csv"

	"github.com/DigitariaWebs/safyr-paie/internal/domain"
)

// CSVFormatter renders one row per employee plus a totals row.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(report *domain.PayrollRunReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{
		"EmployeeID", "EmployeeName", "Period", "Status",
		"BruteSalary", "Indemnites", "EmployeeDeductions", "EmployerCharges",
		"StateHelp", "EmployeeTaxes", "NetToPay", "EmployerCost",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for i := range report.Calculations {
		c := &report.Calculations[i]
		row := []string{
			c.EmployeeID,
			c.EmployeeName,
			c.Period,
			string(c.Status),
			c.BruteSalary.StringFixed(2),
			c.IndemnitesTotals.Total.StringFixed(2),
			c.TotalEmployeeDeductions.StringFixed(2),
			c.TotalEmployerCharges.StringFixed(2),
			c.TotalStateHelp.StringFixed(2),
			c.TotalEmployeeTaxes.StringFixed(2),
			c.NetToPay.StringFixed(2),
			c.TotalEmployerCost.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	run := &report.Run
	totals := []string{
		"TOTAL", "", run.Period, "",
		run.TotalBruteSalary.StringFixed(2),
		run.TotalIndemnites.StringFixed(2),
		run.TotalEmployeeDeductions.StringFixed(2),
		run.TotalEmployerCharges.StringFixed(2),
		run.TotalStateHelp.StringFixed(2),
		run.TotalEmployeeTaxes.StringFixed(2),
		run.TotalNetToPay.StringFixed(2),
		run.TotalEmployerCost.StringFixed(2),
	}
	if err := w.Write(totals); err != nil {
		return nil, err
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
