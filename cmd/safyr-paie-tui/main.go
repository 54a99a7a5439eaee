package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DigitariaWebs/safyr-paie/internal/tui"
)

func main() {
	baremesPath := flag.String("baremes", "baremes.yaml", "barème file (falls back to built-in 2024 values)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: safyr-paie-tui [flags] input-file")
		os.Exit(2)
	}

	model := tui.NewModel(flag.Arg(0), *baremesPath)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
