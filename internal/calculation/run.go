package calculation

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/DigitariaWebs/safyr-paie/internal/domain"
)

// RunBatch calculates every employee of the input sequentially and aggregates
// the results. A failure in one employee's calculation is recorded on that
// employee with error status and does not abort the rest of the batch.
func (pe *PayrollEngine) RunBatch(input *domain.PayrollInput) *domain.PayrollRunReport {
	calculations := make([]domain.PayrollCalculation, len(input.Employees))
	for i, emp := range input.Employees {
		calculations[i] = pe.calculateSafe(emp, input.Period, input.Company)
	}
	return &domain.PayrollRunReport{
		Run:          AggregateRun(input.Period, calculations),
		Calculations: calculations,
	}
}

// RunBatchParallel fans the batch out over one goroutine per employee. The
// per-employee calculations are independent and only share the read-only
// barème set, so no ordering is needed between them; results land at their
// input index, keeping the output deterministic.
func (pe *PayrollEngine) RunBatchParallel(input *domain.PayrollInput) *domain.PayrollRunReport {
	calculations := make([]domain.PayrollCalculation, len(input.Employees))

	var wg sync.WaitGroup
	for i := range input.Employees {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			calculations[idx] = pe.calculateSafe(input.Employees[idx], input.Period, input.Company)
		}(i)
	}
	wg.Wait()

	return &domain.PayrollRunReport{
		Run:          AggregateRun(input.Period, calculations),
		Calculations: calculations,
	}
}

// calculateSafe isolates one employee's calculation: a panic inside the
// workflow becomes an error-status record instead of taking the batch down.
func (pe *PayrollEngine) calculateSafe(emp domain.EmployeePayrollInput, period string, company domain.CompanyProfile) (result domain.PayrollCalculation) {
	defer func() {
		if r := recover(); r != nil {
			pe.Logger.Errorf("payroll %s/%s: calculation failed: %v", emp.EmployeeID, period, r)
			result = domain.PayrollCalculation{
				EmployeeID:   emp.EmployeeID,
				EmployeeName: emp.EmployeeName,
				Period:       period,
				Status:       domain.StatusError,
				CalculatedAt: time.Now(),
				Errors:       []string{fmt.Sprintf("calculation failed: %v", r)},
			}
		}
	}()
	return *pe.Calculate(emp, period, company)
}

// AggregateRun reduces a batch of employee calculations into the period-level
// snapshot: status counts plus a plain sum of every financial total. Amounts
// accumulate unrounded; display rounding is the formatters' concern.
func AggregateRun(period string, calculations []domain.PayrollCalculation) domain.PayrollCalculationRun {
	run := domain.PayrollCalculationRun{
		RunID:          uuid.NewString(),
		Period:         period,
		TotalEmployees: len(calculations),
		CreatedAt:      time.Now(),
	}

	for i := range calculations {
		c := &calculations[i]
		switch c.Status {
		case domain.StatusPending:
			run.PendingEmployees++
		case domain.StatusCalculated:
			run.CalculatedEmployees++
		case domain.StatusError:
			run.ErrorEmployees++
		case domain.StatusValidated:
			run.ValidatedEmployees++
		}

		run.TotalBruteSalary = run.TotalBruteSalary.Add(c.BruteSalary)
		run.TotalIndemnites = run.TotalIndemnites.Add(c.IndemnitesTotals.Total)
		run.TotalEmployeeDeductions = run.TotalEmployeeDeductions.Add(c.TotalEmployeeDeductions)
		run.TotalEmployerCharges = run.TotalEmployerCharges.Add(c.TotalEmployerCharges)
		run.TotalStateHelp = run.TotalStateHelp.Add(c.TotalStateHelp)
		run.TotalEmployeeTaxes = run.TotalEmployeeTaxes.Add(c.TotalEmployeeTaxes)
		run.TotalNetToPay = run.TotalNetToPay.Add(c.NetToPay)
		run.TotalEmployerCost = run.TotalEmployerCost.Add(c.TotalEmployerCost)
	}

	return run
}
