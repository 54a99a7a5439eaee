package tui

import (
	"fmt"
	"strings"

	"github.com/DigitariaWebs/safyr-paie/internal/domain"
	"github.com/DigitariaWebs/safyr-paie/internal/output"
)

// View renders the current scene.
func (m Model) View() string {
	if m.err != nil {
		return AppStyle.Render(ErrorStyle.Render("Erreur : " + m.err.Error()))
	}
	if m.loading {
		return AppStyle.Render("Calcul de la paie en cours…")
	}

	switch m.currentScene {
	case sceneDetail:
		return m.viewDetail()
	default:
		return m.viewList()
	}
}

func (m Model) viewList() string {
	var b strings.Builder

	run := m.report.Run
	b.WriteString(TitleStyle.Render(fmt.Sprintf("Paie — période %s", run.Period)))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render(fmt.Sprintf(
		"%d salariés — net à payer %s — coût employeur %s",
		run.TotalEmployees,
		output.FormatEuros(run.TotalNetToPay),
		output.FormatEuros(run.TotalEmployerCost),
	)))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n\n")
	b.WriteString(HelpStyle.Render("entrée: bulletin • ↑/↓: navigation • q: quitter"))

	return AppStyle.Render(b.String())
}

func (m Model) viewDetail() string {
	c := m.selected
	if c == nil {
		return m.viewList()
	}

	var b strings.Builder
	header := c.EmployeeID
	if c.EmployeeName != "" {
		header = fmt.Sprintf("%s — %s", c.EmployeeName, c.EmployeeID)
	}
	b.WriteString(TitleStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("Période " + c.Period))
	b.WriteString("\n\n")

	if c.Status == domain.StatusError {
		for _, e := range c.Errors {
			b.WriteString(ErrorStyle.Render("erreur: "+e) + "\n")
		}
	} else {
		b.WriteString(detailLine("Salaire brut", output.FormatEuros(c.BruteSalary)))
		b.WriteString(detailLine("Heures supplémentaires", output.FormatEuros(c.OvertimeAmount)))
		b.WriteString(detailLine("Majorations spéciales", output.FormatEuros(c.NightBonus.Add(c.SundayBonus).Add(c.HolidayBonus))))
		b.WriteString(detailLine("Absences", output.FormatEuros(c.TotalTimeOffDeduction)))
		b.WriteString(detailLine("Cotisations salariales", output.FormatEuros(c.TotalEmployeeDeductions.Neg())))
		b.WriteString(detailLine("Indemnités", output.FormatEuros(c.IndemnitesTotals.Total)))
		b.WriteString(detailLine("Net avant impôt", output.FormatEuros(c.NetBeforeTax)))
		b.WriteString(detailLine("Prélèvement à la source", output.FormatEuros(c.TotalEmployeeTaxes.Neg())))
		b.WriteString(detailLine("Net à payer", NetStyle.Render(output.FormatEuros(c.NetToPay))))
		b.WriteString(detailLine("Charges patronales nettes", output.FormatEuros(c.EmployerNetCharges)))
		b.WriteString(detailLine("Aides de l'État", output.FormatEuros(c.TotalStateHelp)))
		b.WriteString(detailLine("Coût total employeur", output.FormatEuros(c.TotalEmployerCost)))
		b.WriteString(detailLine("Solde de congés", c.LeaveBalance.StringFixed(1)+" j"))
	}

	content := DetailBorderStyle.Render(b.String())
	help := HelpStyle.Render("échap: retour • q: quitter")
	return AppStyle.Render(content + "\n\n" + help)
}

func detailLine(label, value string) string {
	return fmt.Sprintf("%s %s\n", DetailLabelStyle.Render(label), value)
}
