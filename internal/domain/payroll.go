package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkedHoursBreakdown splits a period's worked hours into mutually exclusive
// categories. TotalHours is a display field carried through from the time
// tracker; it is never re-derived and may drift from the sum of the parts.
type WorkedHoursBreakdown struct {
	NormalHours  decimal.Decimal `yaml:"normal_hours" json:"normalHours"`
	NightHours   decimal.Decimal `yaml:"night_hours" json:"nightHours"`
	SundayHours  decimal.Decimal `yaml:"sunday_hours" json:"sundayHours"`
	HolidayHours decimal.Decimal `yaml:"holiday_hours" json:"holidayHours"`
	Overtime25   decimal.Decimal `yaml:"overtime_25" json:"overtime25"`
	Overtime50   decimal.Decimal `yaml:"overtime_50" json:"overtime50"`
	Overtime100  decimal.Decimal `yaml:"overtime_100" json:"overtime100"`
	TotalHours   decimal.Decimal `yaml:"total_hours" json:"totalHours"`
}

// PaidHours is the sum of the hour categories paid at the base hourly rate.
func (w WorkedHoursBreakdown) PaidHours() decimal.Decimal {
	return w.NormalHours.Add(w.NightHours).Add(w.SundayHours).Add(w.HolidayHours)
}

// OvertimeHours is the sum of the three overtime categories.
func (w WorkedHoursBreakdown) OvertimeHours() decimal.Decimal {
	return w.Overtime25.Add(w.Overtime50).Add(w.Overtime100)
}

// TimeOffType classifies an absence.
type TimeOffType string

const (
	TimeOffSickLeave   TimeOffType = "sick_leave"
	TimeOffVacation    TimeOffType = "vacation"
	TimeOffUnpaid      TimeOffType = "unpaid"
	TimeOffRTT         TimeOffType = "rtt"
	TimeOffFamilyEvent TimeOffType = "family_event"
)

// TimeOffEntry is one absence line of the payroll input. Either Days or
// Hours is expected to be set; when both are, days take priority.
type TimeOffEntry struct {
	Type  TimeOffType     `yaml:"type" json:"type"`
	Days  decimal.Decimal `yaml:"days" json:"days"`
	Hours decimal.Decimal `yaml:"hours" json:"hours"`
}

// TimeOffDeduction is the valued absence line on the calculation result.
// Amount is always zero or negative. SalaryMaintenance is set for sick leave
// only.
type TimeOffDeduction struct {
	Type              TimeOffType     `yaml:"type" json:"type"`
	Days              decimal.Decimal `yaml:"days" json:"days"`
	Hours             decimal.Decimal `yaml:"hours" json:"hours"`
	DailyRate         decimal.Decimal `yaml:"daily_rate" json:"dailyRate"`
	Amount            decimal.Decimal `yaml:"amount" json:"amount"`
	SalaryMaintenance bool            `yaml:"salary_maintenance" json:"salaryMaintenance"`
}

// IndemniteRequest references an allowance on the payroll input. Quantity is
// the day or hour count for per_day/per_hour allowances; Amount overrides the
// default rate or carries the pre-computed value for percentage/custom ones.
type IndemniteRequest struct {
	Code     string           `yaml:"code" json:"code"`
	Quantity *decimal.Decimal `yaml:"quantity,omitempty" json:"quantity,omitempty"`
	Amount   *decimal.Decimal `yaml:"amount,omitempty" json:"amount,omitempty"`
}

// EmployeePayrollInput is everything the workflow needs for one employee and
// one period. It arrives from the HR/time-tracking side already validated.
type EmployeePayrollInput struct {
	EmployeeID   string               `yaml:"employee_id" json:"employeeId"`
	EmployeeName string               `yaml:"employee_name" json:"employeeName"`
	BaseSalary   decimal.Decimal      `yaml:"base_salary" json:"baseSalary"`
	HourlyRate   decimal.Decimal      `yaml:"hourly_rate" json:"hourlyRate"`
	WorkedHours  WorkedHoursBreakdown `yaml:"worked_hours" json:"workedHours"`
	TimeOff      []TimeOffEntry       `yaml:"time_off,omitempty" json:"timeOff,omitempty"`
	Indemnites   []IndemniteRequest   `yaml:"indemnites,omitempty" json:"indemnites,omitempty"`
	PASRate      decimal.Decimal      `yaml:"pas_rate" json:"pasRate"`
	LeaveBalance decimal.Decimal      `yaml:"leave_balance" json:"leaveBalance"`
}

// CompanyProfile carries the employer-side attributes that drive state aids.
type CompanyProfile struct {
	Name                string `yaml:"name" json:"name"`
	SIRET               string `yaml:"siret,omitempty" json:"siret,omitempty"`
	LessThan50Employees bool   `yaml:"less_than_50_employees" json:"lessThan50Employees"`
}

// PayrollInput is the top-level input document for a calculation run.
type PayrollInput struct {
	Period    string                 `yaml:"period" json:"period"`
	Company   CompanyProfile         `yaml:"company" json:"company"`
	Employees []EmployeePayrollInput `yaml:"employees" json:"employees"`
}

// OrganismDeduction is one valued contribution line. Rate is a percentage.
type OrganismDeduction struct {
	RuleCode   string               `yaml:"rule_code" json:"ruleCode"`
	Organism   string               `yaml:"organism" json:"organism"`
	Label      string               `yaml:"label" json:"label"`
	Category   ContributionCategory `yaml:"category" json:"category"`
	BaseAmount decimal.Decimal      `yaml:"base_amount" json:"baseAmount"`
	Rate       decimal.Decimal      `yaml:"rate" json:"rate"`
	Amount     decimal.Decimal      `yaml:"amount" json:"amount"`
	Ceiling    *decimal.Decimal     `yaml:"ceiling,omitempty" json:"ceiling,omitempty"`
	Tranche    string               `yaml:"tranche,omitempty" json:"tranche,omitempty"`
}

// IndemniteApplication is one valued allowance line.
type IndemniteApplication struct {
	Code                   string          `yaml:"code" json:"code"`
	Label                  string          `yaml:"label" json:"label"`
	Amount                 decimal.Decimal `yaml:"amount" json:"amount"`
	Taxable                bool            `yaml:"taxable" json:"taxable"`
	SubjectToContributions bool            `yaml:"subject_to_contributions" json:"subjectToContributions"`
}

// IndemnitesTotals partitions allowance amounts. Taxable/NonTaxable is a true
// partition of Total; SubjectToContributions is an independent overlay.
type IndemnitesTotals struct {
	Taxable                decimal.Decimal `yaml:"taxable" json:"taxable"`
	NonTaxable             decimal.Decimal `yaml:"non_taxable" json:"nonTaxable"`
	SubjectToContributions decimal.Decimal `yaml:"subject_to_contributions" json:"subjectToContributions"`
	Total                  decimal.Decimal `yaml:"total" json:"total"`
}

// StateHelpApplication is one applied employer-side aid.
type StateHelpApplication struct {
	Code          string          `yaml:"code" json:"code"`
	Label         string          `yaml:"label" json:"label"`
	Type          StateHelpType   `yaml:"type" json:"type"`
	AppliedAmount decimal.Decimal `yaml:"applied_amount" json:"appliedAmount"`
}

// EmployeeTax is one employee-side tax line (currently the PAS withholding).
type EmployeeTax struct {
	Code   string          `yaml:"code" json:"code"`
	Label  string          `yaml:"label" json:"label"`
	Base   decimal.Decimal `yaml:"base" json:"base"`
	Rate   decimal.Decimal `yaml:"rate" json:"rate"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// PayrollStatus is the lifecycle state of one employee calculation.
type PayrollStatus string

const (
	StatusPending    PayrollStatus = "pending"
	StatusCalculated PayrollStatus = "calculated"
	StatusError      PayrollStatus = "error"
	StatusValidated  PayrollStatus = "validated"
)

// PayrollCalculation is the complete gross-to-net result for one employee and
// one period. It is created fresh by each workflow invocation and never
// mutated afterwards; re-running the workflow supersedes it.
type PayrollCalculation struct {
	EmployeeID   string `yaml:"employee_id" json:"employeeId"`
	EmployeeName string `yaml:"employee_name" json:"employeeName"`
	Period       string `yaml:"period" json:"period"`

	// Step 1 — gross.
	BaseSalary            decimal.Decimal      `yaml:"base_salary" json:"baseSalary"`
	HourlyRate            decimal.Decimal      `yaml:"hourly_rate" json:"hourlyRate"`
	DailyRate             decimal.Decimal      `yaml:"daily_rate" json:"dailyRate"`
	WorkedHours           WorkedHoursBreakdown `yaml:"worked_hours" json:"workedHours"`
	HoursAmount           decimal.Decimal      `yaml:"hours_amount" json:"hoursAmount"`
	OvertimeAmount        decimal.Decimal      `yaml:"overtime_amount" json:"overtimeAmount"`
	NightBonus            decimal.Decimal      `yaml:"night_bonus" json:"nightBonus"`
	SundayBonus           decimal.Decimal      `yaml:"sunday_bonus" json:"sundayBonus"`
	HolidayBonus          decimal.Decimal      `yaml:"holiday_bonus" json:"holidayBonus"`
	TimeOffDeductions     []TimeOffDeduction   `yaml:"time_off_deductions,omitempty" json:"timeOffDeductions,omitempty"`
	TotalTimeOffDeduction decimal.Decimal      `yaml:"total_time_off_deduction" json:"totalTimeOffDeduction"`
	BruteSalary           decimal.Decimal      `yaml:"brute_salary" json:"bruteSalary"`

	// Steps 2-3 — contributions.
	EmployeeDeductions      []OrganismDeduction `yaml:"employee_deductions,omitempty" json:"employeeDeductions,omitempty"`
	TotalEmployeeDeductions decimal.Decimal     `yaml:"total_employee_deductions" json:"totalEmployeeDeductions"`
	EmployerCharges         []OrganismDeduction `yaml:"employer_charges,omitempty" json:"employerCharges,omitempty"`
	TotalEmployerCharges    decimal.Decimal     `yaml:"total_employer_charges" json:"totalEmployerCharges"`

	// Step 4 — state aids.
	StateHelps         []StateHelpApplication `yaml:"state_helps,omitempty" json:"stateHelps,omitempty"`
	TotalStateHelp     decimal.Decimal        `yaml:"total_state_help" json:"totalStateHelp"`
	EmployerNetCharges decimal.Decimal        `yaml:"employer_net_charges" json:"employerNetCharges"`

	// Step 5 — indemnités.
	Indemnites       []IndemniteApplication `yaml:"indemnites,omitempty" json:"indemnites,omitempty"`
	IndemnitesTotals IndemnitesTotals       `yaml:"indemnites_totals" json:"indemnitesTotals"`

	// Step 6 — net before tax and income tax.
	NetBeforeTax       decimal.Decimal `yaml:"net_before_tax" json:"netBeforeTax"`
	NetTaxableAmount   decimal.Decimal `yaml:"net_taxable_amount" json:"netTaxableAmount"`
	EmployeeTaxes      []EmployeeTax   `yaml:"employee_taxes,omitempty" json:"employeeTaxes,omitempty"`
	TotalEmployeeTaxes decimal.Decimal `yaml:"total_employee_taxes" json:"totalEmployeeTaxes"`

	// Step 7 — final.
	NetToPay          decimal.Decimal `yaml:"net_to_pay" json:"netToPay"`
	TotalEmployerCost decimal.Decimal `yaml:"total_employer_cost" json:"totalEmployerCost"`

	LeaveBalance decimal.Decimal `yaml:"leave_balance" json:"leaveBalance"`
	Status       PayrollStatus   `yaml:"status" json:"status"`
	CalculatedAt time.Time       `yaml:"calculated_at" json:"calculatedAt"`
	Errors       []string        `yaml:"errors,omitempty" json:"errors,omitempty"`
	Warnings     []string        `yaml:"warnings,omitempty" json:"warnings,omitempty"`
}

// PayrollCalculationRun is the immutable aggregate snapshot over one period's
// batch of employee calculations.
type PayrollCalculationRun struct {
	RunID  string `yaml:"run_id" json:"runId"`
	Period string `yaml:"period" json:"period"`

	TotalEmployees      int `yaml:"total_employees" json:"totalEmployees"`
	PendingEmployees    int `yaml:"pending_employees" json:"pendingEmployees"`
	CalculatedEmployees int `yaml:"calculated_employees" json:"calculatedEmployees"`
	ErrorEmployees      int `yaml:"error_employees" json:"errorEmployees"`
	ValidatedEmployees  int `yaml:"validated_employees" json:"validatedEmployees"`

	TotalBruteSalary        decimal.Decimal `yaml:"total_brute_salary" json:"totalBruteSalary"`
	TotalIndemnites         decimal.Decimal `yaml:"total_indemnites" json:"totalIndemnites"`
	TotalEmployeeDeductions decimal.Decimal `yaml:"total_employee_deductions" json:"totalEmployeeDeductions"`
	TotalEmployerCharges    decimal.Decimal `yaml:"total_employer_charges" json:"totalEmployerCharges"`
	TotalStateHelp          decimal.Decimal `yaml:"total_state_help" json:"totalStateHelp"`
	TotalEmployeeTaxes      decimal.Decimal `yaml:"total_employee_taxes" json:"totalEmployeeTaxes"`
	TotalNetToPay           decimal.Decimal `yaml:"total_net_to_pay" json:"totalNetToPay"`
	TotalEmployerCost       decimal.Decimal `yaml:"total_employer_cost" json:"totalEmployerCost"`

	CreatedAt time.Time `yaml:"created_at" json:"createdAt"`
}

// PayrollRunReport bundles a run aggregate with its per-employee results for
// the output formatters.
type PayrollRunReport struct {
	Run          PayrollCalculationRun `yaml:"run" json:"run"`
	Calculations []PayrollCalculation  `yaml:"calculations" json:"calculations"`
}
