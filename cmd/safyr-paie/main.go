package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DigitariaWebs/safyr-paie/internal/calculation"
	"github.com/DigitariaWebs/safyr-paie/internal/config"
	"github.com/DigitariaWebs/safyr-paie/internal/domain"
	"github.com/DigitariaWebs/safyr-paie/internal/output"
)

// cliLogger implements calculation.Logger using the standard log package.
type cliLogger struct{}

func (cliLogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (cliLogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (cliLogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (cliLogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "safyr-paie",
	Short: "Moteur de calcul de paie Safyr",
	Long:  "Calcul brut-net, cotisations sociales, aides de l'État et indemnités pour une période de paie",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Calculate a payroll period from an input file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		report := runCalculation(cmd, args[0])

		formatName, _ := cmd.Flags().GetString("format")
		formatter := output.GetFormatterByName(formatName)
		if formatter == nil {
			log.Fatalf("unsupported format %q (available: %s)", formatName, strings.Join(output.FormatterNames(), ", "))
		}

		data, err := formatter.Format(report)
		if err != nil {
			log.Fatal(err)
		}

		outFile, _ := cmd.Flags().GetString("output")
		if outFile == "" {
			fmt.Print(string(data))
			return
		}
		if err := os.WriteFile(outFile, data, 0o644); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Report written to %s\n", outFile)
	},
}

var payslipCmd = &cobra.Command{
	Use:   "payslip [input-file]",
	Short: "Export PDF payslips, optionally for a single employee",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		report := runCalculation(cmd, args[0])

		employeeID, _ := cmd.Flags().GetString("employee")
		if employeeID != "" {
			filtered := make([]domain.PayrollCalculation, 0, 1)
			for i := range report.Calculations {
				if report.Calculations[i].EmployeeID == employeeID {
					filtered = append(filtered, report.Calculations[i])
				}
			}
			if len(filtered) == 0 {
				log.Fatalf("employee %s not found in input", employeeID)
			}
			report.Calculations = filtered
			report.Run = calculation.AggregateRun(report.Run.Period, filtered)
		}

		data, err := (output.PDFFormatter{}).Format(report)
		if err != nil {
			log.Fatal(err)
		}

		outFile, _ := cmd.Flags().GetString("output")
		if outFile == "" {
			outFile = fmt.Sprintf("bulletins-%s.pdf", report.Run.Period)
		}
		if err := os.WriteFile(outFile, data, 0o644); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Payslips written to %s\n", outFile)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a payroll input file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(args[0]); err != nil {
			log.Fatal(err)
		}

		baremesFile, _ := cmd.Flags().GetString("baremes")
		if _, err := config.LoadBaremesOrDefault(baremesFile); err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Input file %s is valid\n", args[0])
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "safyr-paie %s (commit %s, built %s)\n", version, commit, date)
		if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
			fmt.Fprintln(os.Stdout, bi.Main.Version)
		}
	},
}

// runCalculation loads the input and barème files and runs the batch.
func runCalculation(cmd *cobra.Command, inputFile string) *domain.PayrollRunReport {
	parser := config.NewInputParser()
	input, err := parser.LoadFromFile(inputFile)
	if err != nil {
		log.Fatal(err)
	}

	baremesFile, _ := cmd.Flags().GetString("baremes")
	baremes, err := config.LoadBaremesOrDefault(baremesFile)
	if err != nil {
		log.Fatal(err)
	}

	engine := calculation.NewPayrollEngine(baremes)
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.SetLogger(cliLogger{})
	}

	if parallel, _ := cmd.Flags().GetBool("parallel"); parallel {
		return engine.RunBatchParallel(input)
	}
	return engine.RunBatch(input)
}

func init() {
	calculateCmd.Flags().StringP("format", "f", "console", "output format (console, csv, json, pdf)")
	calculateCmd.Flags().StringP("output", "o", "", "write the report to a file instead of stdout")
	calculateCmd.Flags().String("baremes", "baremes.yaml", "barème file (falls back to built-in 2024 values)")
	calculateCmd.Flags().Bool("parallel", false, "calculate employees in parallel")
	calculateCmd.Flags().Bool("debug", false, "enable step-by-step calculation logging")

	payslipCmd.Flags().StringP("output", "o", "", "output PDF file")
	payslipCmd.Flags().String("employee", "", "restrict to one employee id")
	payslipCmd.Flags().String("baremes", "baremes.yaml", "barème file (falls back to built-in 2024 values)")
	payslipCmd.Flags().Bool("parallel", false, "calculate employees in parallel")
	payslipCmd.Flags().Bool("debug", false, "enable step-by-step calculation logging")

	validateCmd.Flags().String("baremes", "baremes.yaml", "barème file (falls back to built-in 2024 values)")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(payslipCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
