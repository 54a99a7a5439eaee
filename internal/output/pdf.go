package output

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/DigitariaWebs/safyr-paie/internal/domain"
)

// PDFFormatter renders one payslip page per employee (bulletin de paie
// simplifié) plus a closing totals page.
type PDFFormatter struct{}

func (PDFFormatter) Name() string { return "pdf" }

func (PDFFormatter) Format(report *domain.PayrollRunReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)

	for i := range report.Calculations {
		writePayslipPage(pdf, &report.Calculations[i])
	}
	writeTotalsPage(pdf, &report.Run)

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func writePayslipPage(pdf *gofpdf.Fpdf, c *domain.PayrollCalculation) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Bulletin de paie")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Salarié : %s (%s)", c.EmployeeName, c.EmployeeID))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Période : %s", c.Period))
	pdf.Ln(10)

	if c.Status == domain.StatusError {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 7, "Calcul en erreur")
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 10)
		for _, e := range c.Errors {
			pdf.Cell(0, 6, e)
			pdf.Ln(5)
		}
		return
	}

	payslipRow(pdf, "Salaire de base (heures payées)", c.HoursAmount.StringFixed(2))
	payslipRow(pdf, "Heures supplémentaires", c.OvertimeAmount.StringFixed(2))
	payslipRow(pdf, "Majoration nuit", c.NightBonus.StringFixed(2))
	payslipRow(pdf, "Majoration dimanche", c.SundayBonus.StringFixed(2))
	payslipRow(pdf, "Majoration jours fériés", c.HolidayBonus.StringFixed(2))
	payslipRow(pdf, "Absences", c.TotalTimeOffDeduction.StringFixed(2))
	payslipRow(pdf, "Salaire brut", c.BruteSalary.StringFixed(2))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, "Cotisations salariales")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
	for _, d := range c.EmployeeDeductions {
		label := d.Label
		if d.Tranche != "" {
			label = fmt.Sprintf("%s (tranche %s)", label, d.Tranche)
		}
		payslipRow(pdf, label, d.Amount.Neg().StringFixed(2))
	}
	pdf.Ln(4)

	if len(c.Indemnites) > 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 7, "Indemnités")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 10)
		for _, ind := range c.Indemnites {
			payslipRow(pdf, ind.Label, ind.Amount.StringFixed(2))
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "", 11)
	payslipRow(pdf, "Net avant impôt", c.NetBeforeTax.StringFixed(2))
	payslipRow(pdf, "Prélèvement à la source", c.TotalEmployeeTaxes.Neg().StringFixed(2))

	pdf.SetFont("Helvetica", "B", 12)
	payslipRow(pdf, "Net à payer", c.NetToPay.StringFixed(2))

	pdf.SetFont("Helvetica", "", 10)
	pdf.Ln(4)
	payslipRow(pdf, "Coût total employeur", c.TotalEmployerCost.StringFixed(2))
	payslipRow(pdf, "Solde de congés", c.LeaveBalance.StringFixed(2))
}

func writeTotalsPage(pdf *gofpdf.Fpdf, run *domain.PayrollCalculationRun) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Récapitulatif de la période")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Période : %s — %d salariés", run.Period, run.TotalEmployees))
	pdf.Ln(10)

	payslipRow(pdf, "Masse salariale brute", run.TotalBruteSalary.StringFixed(2))
	payslipRow(pdf, "Indemnités", run.TotalIndemnites.StringFixed(2))
	payslipRow(pdf, "Cotisations salariales", run.TotalEmployeeDeductions.StringFixed(2))
	payslipRow(pdf, "Charges patronales", run.TotalEmployerCharges.StringFixed(2))
	payslipRow(pdf, "Aides de l'État", run.TotalStateHelp.StringFixed(2))
	payslipRow(pdf, "Prélèvement à la source", run.TotalEmployeeTaxes.StringFixed(2))
	payslipRow(pdf, "Net à payer", run.TotalNetToPay.StringFixed(2))
	payslipRow(pdf, "Coût total employeur", run.TotalEmployerCost.StringFixed(2))
}

func payslipRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.Cell(120, 6, label)
	pdf.CellFormat(40, 6, value, "", 0, "R", false, 0, "")
	pdf.Ln(6)
}
