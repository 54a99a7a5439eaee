package output

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/DigitariaWebs/safyr-paie/internal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(34)

	negativeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	positiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("78"))
)

// ConsoleFormatter renders a run report as a styled terminal summary: one
// payslip block per employee followed by the period totals.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(report *domain.PayrollRunReport) ([]byte, error) {
	buf := &bytes.Buffer{}

	fmt.Fprintln(buf, titleStyle.Render(fmt.Sprintf("Paie — période %s", report.Run.Period)))
	fmt.Fprintln(buf)

	for i := range report.Calculations {
		writeEmployeeBlock(buf, &report.Calculations[i])
	}

	writeRunBlock(buf, &report.Run)
	return buf.Bytes(), nil
}

func writeEmployeeBlock(buf *bytes.Buffer, c *domain.PayrollCalculation) {
	header := c.EmployeeID
	if c.EmployeeName != "" {
		header = fmt.Sprintf("%s — %s", c.EmployeeID, c.EmployeeName)
	}
	fmt.Fprintln(buf, sectionStyle.Render(header))

	if c.Status == domain.StatusError {
		for _, e := range c.Errors {
			fmt.Fprintf(buf, "  %s\n", negativeStyle.Render("erreur: "+e))
		}
		fmt.Fprintln(buf)
		return
	}

	line(buf, "Salaire brut", FormatEuros(c.BruteSalary))
	line(buf, "  dont heures majorées", FormatEuros(c.OvertimeAmount))
	bonuses := c.NightBonus.Add(c.SundayBonus).Add(c.HolidayBonus)
	line(buf, "  dont majorations nuit/dim./férié", FormatEuros(bonuses))
	if !c.TotalTimeOffDeduction.IsZero() {
		line(buf, "  dont absences", negativeStyle.Render(FormatEuros(c.TotalTimeOffDeduction)))
	}
	line(buf, "Cotisations salariales", negativeStyle.Render(FormatEuros(c.TotalEmployeeDeductions.Neg())))
	if !c.IndemnitesTotals.Total.IsZero() {
		line(buf, "Indemnités", FormatEuros(c.IndemnitesTotals.Total))
	}
	line(buf, "Net avant impôt", FormatEuros(c.NetBeforeTax))
	line(buf, "Prélèvement à la source", negativeStyle.Render(FormatEuros(c.TotalEmployeeTaxes.Neg())))
	line(buf, "Net à payer", positiveStyle.Render(FormatEuros(c.NetToPay)))
	line(buf, "Charges patronales nettes", FormatEuros(c.EmployerNetCharges))
	line(buf, "Coût total employeur", FormatEuros(c.TotalEmployerCost))
	fmt.Fprintln(buf)
}

func writeRunBlock(buf *bytes.Buffer, run *domain.PayrollCalculationRun) {
	fmt.Fprintln(buf, sectionStyle.Render("Totaux de la période"))
	line(buf, "Salariés", fmt.Sprintf("%d (calculés %d, erreurs %d, validés %d, en attente %d)",
		run.TotalEmployees, run.CalculatedEmployees, run.ErrorEmployees, run.ValidatedEmployees, run.PendingEmployees))
	line(buf, "Masse salariale brute", FormatEuros(run.TotalBruteSalary))
	line(buf, "Cotisations salariales", FormatEuros(run.TotalEmployeeDeductions))
	line(buf, "Charges patronales", FormatEuros(run.TotalEmployerCharges))
	line(buf, "Aides de l'État", FormatEuros(run.TotalStateHelp))
	line(buf, "Prélèvement à la source", FormatEuros(run.TotalEmployeeTaxes))
	line(buf, "Net à payer", positiveStyle.Render(FormatEuros(run.TotalNetToPay)))
	line(buf, "Coût total employeur", FormatEuros(run.TotalEmployerCost))
}

func line(buf *bytes.Buffer, label, value string) {
	fmt.Fprintf(buf, "  %s %s\n", labelStyle.Render(label), value)
}
