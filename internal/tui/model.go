package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/bubbles/table"

	"github.com/DigitariaWebs/safyr-paie/internal/calculation"
	"github.com/DigitariaWebs/safyr-paie/internal/config"
	"github.com/DigitariaWebs/safyr-paie/internal/domain"
)

type scene int

const (
	sceneList scene = iota
	sceneDetail
)

// Model is the state of the payroll results browser: an employee table and a
// payslip detail view over one calculated run.
type Model struct {
	currentScene scene

	inputPath   string
	baremesPath string

	report *domain.PayrollRunReport
	table  table.Model

	selected *domain.PayrollCalculation

	width  int
	height int

	err     error
	loading bool
}

// NewModel creates a browser that will load and calculate the given input
// file on start.
func NewModel(inputPath, baremesPath string) Model {
	columns := []table.Column{
		{Title: "Matricule", Width: 12},
		{Title: "Salarié", Width: 22},
		{Title: "Brut", Width: 12},
		{Title: "Net à payer", Width: 12},
		{Title: "Statut", Width: 10},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(ColorAccent)
	styles.Selected = styles.Selected.Foreground(ColorPrimary).Bold(true)
	t.SetStyles(styles)

	return Model{
		currentScene: sceneList,
		inputPath:    inputPath,
		baremesPath:  baremesPath,
		table:        t,
		loading:      true,
		width:        80,
		height:       24,
	}
}

// Init kicks off the load-and-calculate command.
func (m Model) Init() tea.Cmd {
	return calculateRunCmd(m.inputPath, m.baremesPath)
}

// calculateRunCmd loads the input and barème files, runs the batch and hands
// the report back as a message.
func calculateRunCmd(inputPath, baremesPath string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		input, err := parser.LoadFromFile(inputPath)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		baremes, err := config.LoadBaremesOrDefault(baremesPath)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		engine := calculation.NewPayrollEngine(baremes)
		return ReportLoadedMsg{Report: engine.RunBatch(input)}
	}
}
