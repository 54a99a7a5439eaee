package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/DigitariaWebs/safyr-paie/internal/domain"
)

// PayrollEngine runs the gross-to-net workflow for one employee and one
// period. It composes the organism, state-aid and indemnité calculators over
// a shared, read-only barème set; the computation itself is pure, so one
// engine can serve any number of employee calculations.
type PayrollEngine struct {
	Baremes    *domain.Baremes
	Organismes *OrganismCalculator
	StateAid   *StateHelpCalculator
	Indemnites *IndemniteCalculator
	Logger     Logger
}

// NewPayrollEngine creates an engine over a barème set.
func NewPayrollEngine(baremes *domain.Baremes) *PayrollEngine {
	return &PayrollEngine{
		Baremes:    baremes,
		Organismes: NewOrganismCalculator(baremes.Constants),
		StateAid:   NewStateHelpCalculator(baremes.Constants),
		Indemnites: NewIndemniteCalculator(baremes.IndemniteTypes),
		Logger:     NopLogger{},
	}
}

// SetLogger installs a logger; nil restores the no-op default.
func (pe *PayrollEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// Calculate runs the seven workflow steps for one employee: gross
// computation, employee deductions, employer charges, state aids,
// indemnités, net before tax and income tax, final net and employer cost.
// The input is taken as-is; upstream validation owns rejecting garbage.
func (pe *PayrollEngine) Calculate(input domain.EmployeePayrollInput, period string, company domain.CompanyProfile) *domain.PayrollCalculation {
	consts := pe.Baremes.Constants

	result := &domain.PayrollCalculation{
		EmployeeID:   input.EmployeeID,
		EmployeeName: input.EmployeeName,
		Period:       period,
		BaseSalary:   input.BaseSalary,
		HourlyRate:   input.HourlyRate,
		WorkedHours:  input.WorkedHours,
		LeaveBalance: input.LeaveBalance,
	}

	// Step 1 — gross computation.
	result.DailyRate = input.BaseSalary.Div(consts.JoursMoyensParMois)
	result.HoursAmount = input.WorkedHours.PaidHours().Mul(input.HourlyRate)

	result.OvertimeAmount = input.WorkedHours.Overtime25.Mul(input.HourlyRate).Mul(onePlus(consts.MajorationHS25)).
		Add(input.WorkedHours.Overtime50.Mul(input.HourlyRate).Mul(onePlus(consts.MajorationHS50))).
		Add(input.WorkedHours.Overtime100.Mul(input.HourlyRate).Mul(onePlus(consts.MajorationHS100)))

	result.NightBonus = input.WorkedHours.NightHours.Mul(input.HourlyRate).Mul(consts.MajorationNuit)
	result.SundayBonus = input.WorkedHours.SundayHours.Mul(input.HourlyRate).Mul(consts.MajorationDimanche)
	result.HolidayBonus = input.WorkedHours.HolidayHours.Mul(input.HourlyRate).Mul(consts.MajorationFerie)

	result.TimeOffDeductions = pe.valueTimeOff(input, result.DailyRate)
	result.TotalTimeOffDeduction = decimal.Zero
	for _, d := range result.TimeOffDeductions {
		result.TotalTimeOffDeduction = result.TotalTimeOffDeduction.Add(d.Amount)
	}

	// The base salary is fully carried by the paid-hours amount and never
	// enters the gross as a separate term.
	result.BruteSalary = result.HoursAmount.
		Add(result.OvertimeAmount).
		Add(result.NightBonus).
		Add(result.SundayBonus).
		Add(result.HolidayBonus).
		Add(result.TotalTimeOffDeduction)

	pe.Logger.Debugf("payroll %s/%s: brute salary %s", input.EmployeeID, period, result.BruteSalary.StringFixed(2))

	// Step 2 — employee deductions.
	result.EmployeeDeductions = pe.Organismes.CalculateDeductions(result.BruteSalary, pe.Baremes.OrganismRules, domain.SideEmployee)
	result.TotalEmployeeDeductions = TotalDeductions(result.EmployeeDeductions)

	// Step 3 — employer charges.
	result.EmployerCharges = pe.Organismes.CalculateDeductions(result.BruteSalary, pe.Baremes.OrganismRules, domain.SideEmployer)
	result.TotalEmployerCharges = TotalDeductions(result.EmployerCharges)

	// Step 4 — state aids.
	result.StateHelps = pe.StateAid.CalculateApplications(
		result.BruteSalary,
		input.WorkedHours.OvertimeHours(),
		[]string{domain.HelpCodeFillon, domain.HelpCodeHeuresSup},
		company.LessThan50Employees,
		pe.Baremes.StateHelps,
	)
	result.TotalStateHelp = TotalStateHelp(result.StateHelps)
	result.EmployerNetCharges = result.TotalEmployerCharges.Sub(result.TotalStateHelp)

	// Step 5 — indemnités.
	result.Indemnites = pe.Indemnites.CalculateAll(input.Indemnites)
	result.IndemnitesTotals = IndemnitesTotals(result.Indemnites)

	// Step 6 — net before tax and income tax.
	result.NetBeforeTax = result.BruteSalary.Sub(result.TotalEmployeeDeductions).Add(result.IndemnitesTotals.NonTaxable)
	result.NetTaxableAmount = result.BruteSalary.Sub(result.TotalEmployeeDeductions).Add(result.IndemnitesTotals.Taxable)

	pas := domain.EmployeeTax{
		Code:   "pas",
		Label:  "Prélèvement à la source",
		Base:   result.NetTaxableAmount,
		Rate:   input.PASRate,
		Amount: result.NetTaxableAmount.Mul(input.PASRate).Div(decimal.NewFromInt(100)),
	}
	result.EmployeeTaxes = []domain.EmployeeTax{pas}
	result.TotalEmployeeTaxes = decimal.Zero
	for _, t := range result.EmployeeTaxes {
		result.TotalEmployeeTaxes = result.TotalEmployeeTaxes.Add(t.Amount)
	}

	// Step 7 — final net and employer cost.
	result.NetToPay = result.NetBeforeTax.Sub(result.TotalEmployeeTaxes)
	result.TotalEmployerCost = result.BruteSalary.
		Add(result.IndemnitesTotals.SubjectToContributions).
		Add(result.EmployerNetCharges)

	result.Status = domain.StatusCalculated
	result.CalculatedAt = time.Now()
	result.Errors = []string{}
	result.Warnings = []string{}

	pe.Logger.Infof("payroll %s/%s: net to pay %s", input.EmployeeID, period, result.NetToPay.StringFixed(2))

	return result
}

// valueTimeOff turns absence entries into negative deduction lines. Days take
// priority over hours when both are set; salary maintenance applies to sick
// leave only.
func (pe *PayrollEngine) valueTimeOff(input domain.EmployeePayrollInput, dailyRate decimal.Decimal) []domain.TimeOffDeduction {
	if len(input.TimeOff) == 0 {
		return nil
	}
	deductions := make([]domain.TimeOffDeduction, 0, len(input.TimeOff))
	for _, entry := range input.TimeOff {
		var amount decimal.Decimal
		if entry.Days.GreaterThan(decimal.Zero) {
			amount = entry.Days.Mul(dailyRate)
		} else {
			amount = entry.Hours.Mul(input.HourlyRate)
		}
		deductions = append(deductions, domain.TimeOffDeduction{
			Type:              entry.Type,
			Days:              entry.Days,
			Hours:             entry.Hours,
			DailyRate:         dailyRate,
			Amount:            amount.Neg(),
			SalaryMaintenance: entry.Type == domain.TimeOffSickLeave,
		})
	}
	return deductions
}

func onePlus(rate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Add(rate)
}
