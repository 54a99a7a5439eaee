package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/DigitariaWebs/safyr-paie/internal/domain"
)

// InputParser handles parsing of payroll input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a payroll input document from a YAML file and validates
// it. The calculators never validate on their own; everything the workflow
// consumes must come through here first.
func (ip *InputParser) LoadFromFile(filename string) (*domain.PayrollInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input domain.PayrollInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateInput(&input); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &input, nil
}

// ValidateInput validates a payroll input document.
func (ip *InputParser) ValidateInput(input *domain.PayrollInput) error {
	if input.Period == "" {
		return fmt.Errorf("period is required")
	}
	if _, err := time.Parse("2006-01", input.Period); err != nil {
		return fmt.Errorf("period must be formatted YYYY-MM, got %q", input.Period)
	}

	if len(input.Employees) == 0 {
		return fmt.Errorf("no employees provided")
	}

	seen := make(map[string]bool, len(input.Employees))
	for i := range input.Employees {
		emp := &input.Employees[i]
		if err := ip.validateEmployee(emp); err != nil {
			return fmt.Errorf("employee %d (%s) validation failed: %w", i, emp.EmployeeID, err)
		}
		if seen[emp.EmployeeID] {
			return fmt.Errorf("duplicate employee id %s", emp.EmployeeID)
		}
		seen[emp.EmployeeID] = true
	}

	return nil
}

// validateEmployee validates one employee's payroll input.
func (ip *InputParser) validateEmployee(emp *domain.EmployeePayrollInput) error {
	if emp.EmployeeID == "" {
		return fmt.Errorf("employee id is required")
	}
	if emp.BaseSalary.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("base salary must be positive")
	}
	if emp.HourlyRate.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("hourly rate must be positive")
	}
	if emp.PASRate.LessThan(decimal.Zero) || emp.PASRate.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("PAS rate must be between 0 and 100")
	}
	if emp.LeaveBalance.LessThan(decimal.Zero) {
		return fmt.Errorf("leave balance cannot be negative")
	}

	if err := validateHours(emp.WorkedHours); err != nil {
		return err
	}

	for j, entry := range emp.TimeOff {
		if entry.Days.LessThan(decimal.Zero) || entry.Hours.LessThan(decimal.Zero) {
			return fmt.Errorf("time off entry %d: days and hours cannot be negative", j)
		}
		if entry.Days.IsZero() && entry.Hours.IsZero() {
			return fmt.Errorf("time off entry %d: either days or hours must be set", j)
		}
	}

	for j, req := range emp.Indemnites {
		if req.Code == "" {
			return fmt.Errorf("indemnité %d: code is required", j)
		}
		if req.Quantity != nil && req.Quantity.LessThan(decimal.Zero) {
			return fmt.Errorf("indemnité %d (%s): quantity cannot be negative", j, req.Code)
		}
	}

	return nil
}

func validateHours(hours domain.WorkedHoursBreakdown) error {
	categories := []struct {
		name  string
		value decimal.Decimal
	}{
		{"normal hours", hours.NormalHours},
		{"night hours", hours.NightHours},
		{"sunday hours", hours.SundayHours},
		{"holiday hours", hours.HolidayHours},
		{"overtime 25", hours.Overtime25},
		{"overtime 50", hours.Overtime50},
		{"overtime 100", hours.Overtime100},
	}
	for _, c := range categories {
		if c.value.LessThan(decimal.Zero) {
			return fmt.Errorf("%s cannot be negative", c.name)
		}
	}
	return nil
}
