package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/bubbles/table"

	"github.com/DigitariaWebs/safyr-paie/internal/domain"
)

// Update handles all messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(maxInt(4, m.height-8))
		return m, nil

	case ReportLoadedMsg:
		m.report = msg.Report
		m.loading = false
		m.table.SetRows(reportRows(msg.Report))
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "enter":
		if m.currentScene == sceneList && m.report != nil {
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.report.Calculations) {
				m.selected = &m.report.Calculations[idx]
				m.currentScene = sceneDetail
			}
		}
		return m, nil

	case "esc":
		if m.currentScene == sceneDetail {
			m.currentScene = sceneList
			m.selected = nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func reportRows(report *domain.PayrollRunReport) []table.Row {
	rows := make([]table.Row, 0, len(report.Calculations))
	for i := range report.Calculations {
		c := &report.Calculations[i]
		rows = append(rows, table.Row{
			c.EmployeeID,
			c.EmployeeName,
			c.BruteSalary.StringFixed(2),
			c.NetToPay.StringFixed(2),
			string(c.Status),
		})
	}
	return rows
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
