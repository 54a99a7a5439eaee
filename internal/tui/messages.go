package tui

import "github.com/DigitariaWebs/safyr-paie/internal/domain"

// ReportLoadedMsg carries the calculated run report into the model.
type ReportLoadedMsg struct {
	Report *domain.PayrollRunReport
}

// ErrorMsg carries a load or calculation error into the model.
type ErrorMsg struct {
	Err error
}
