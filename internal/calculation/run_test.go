package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DigitariaWebs/safyr-paie/internal/domain"
)

func batchInput() *domain.PayrollInput {
	second := standardMonthInput()
	second.EmployeeID = "EMP-002"
	second.EmployeeName = "Paul Bernard"
	second.BaseSalary = decimal.NewFromInt(3200)
	second.HourlyRate = decimal.NewFromFloat(21.10)
	second.PASRate = decimal.NewFromFloat(7.5)

	return &domain.PayrollInput{
		Period:    "2024-06",
		Company:   smallCompany(),
		Employees: []domain.EmployeePayrollInput{standardMonthInput(), second},
	}
}

func TestRunBatch_AggregatesTotals(t *testing.T) {
	engine := testEngine(t)
	report := engine.RunBatch(batchInput())
	require.NotNil(t, report)
	require.Len(t, report.Calculations, 2)

	run := report.Run
	assert.NotEmpty(t, run.RunID)
	assert.Equal(t, "2024-06", run.Period)
	assert.Equal(t, 2, run.TotalEmployees)
	assert.Equal(t, 2, run.CalculatedEmployees)
	assert.Equal(t, 0, run.ErrorEmployees)
	assert.False(t, run.CreatedAt.IsZero())

	expectedNet := decimal.Zero
	expectedGross := decimal.Zero
	for _, c := range report.Calculations {
		expectedNet = expectedNet.Add(c.NetToPay)
		expectedGross = expectedGross.Add(c.BruteSalary)
	}
	assert.True(t, run.TotalNetToPay.Equal(expectedNet), "Run net must be the plain sum of employee nets")
	assert.True(t, run.TotalBruteSalary.Equal(expectedGross))
}

func TestRunBatch_ResultsKeepInputOrder(t *testing.T) {
	engine := testEngine(t)
	report := engine.RunBatch(batchInput())
	require.Len(t, report.Calculations, 2)
	assert.Equal(t, "EMP-001", report.Calculations[0].EmployeeID)
	assert.Equal(t, "EMP-002", report.Calculations[1].EmployeeID)
}

func TestRunBatchParallel_MatchesSequential(t *testing.T) {
	engine := testEngine(t)
	input := batchInput()

	sequential := engine.RunBatch(input)
	parallel := engine.RunBatchParallel(input)

	require.Len(t, parallel.Calculations, len(sequential.Calculations))
	for i := range sequential.Calculations {
		assert.Equal(t, sequential.Calculations[i].EmployeeID, parallel.Calculations[i].EmployeeID, "Parallel results keep input order")
		assert.True(t, sequential.Calculations[i].NetToPay.Equal(parallel.Calculations[i].NetToPay))
	}
	assert.True(t, sequential.Run.TotalNetToPay.Equal(parallel.Run.TotalNetToPay))
	assert.True(t, sequential.Run.TotalEmployerCost.Equal(parallel.Run.TotalEmployerCost))
}

func TestRunBatch_IsolatesFailures(t *testing.T) {
	// An engine over an empty barème set divides by a zero day count, which
	// panics inside the workflow. The batch must absorb that per employee.
	engine := NewPayrollEngine(&domain.Baremes{})
	report := engine.RunBatch(batchInput())
	require.Len(t, report.Calculations, 2)

	for _, c := range report.Calculations {
		assert.Equal(t, domain.StatusError, c.Status)
		require.NotEmpty(t, c.Errors)
		assert.Contains(t, c.Errors[0], "calculation failed")
		assert.NotEmpty(t, c.EmployeeID, "Identity survives a failed calculation")
	}

	run := report.Run
	assert.Equal(t, 2, run.TotalEmployees)
	assert.Equal(t, 2, run.ErrorEmployees)
	assert.Equal(t, 0, run.CalculatedEmployees)
	assert.True(t, run.TotalNetToPay.IsZero())
}

func TestAggregateRun_StatusPartition(t *testing.T) {
	calculations := []domain.PayrollCalculation{
		{Status: domain.StatusCalculated, NetToPay: decimal.NewFromInt(1500)},
		{Status: domain.StatusValidated, NetToPay: decimal.NewFromInt(1800)},
		{Status: domain.StatusError},
		{Status: domain.StatusPending},
	}

	run := AggregateRun("2024-07", calculations)
	assert.Equal(t, 4, run.TotalEmployees)
	assert.Equal(t, 1, run.CalculatedEmployees)
	assert.Equal(t, 1, run.ValidatedEmployees)
	assert.Equal(t, 1, run.ErrorEmployees)
	assert.Equal(t, 1, run.PendingEmployees)
	total := run.CalculatedEmployees + run.ValidatedEmployees + run.ErrorEmployees + run.PendingEmployees
	assert.Equal(t, run.TotalEmployees, total, "Status counts partition the employee count")
	assert.True(t, run.TotalNetToPay.Equal(decimal.NewFromInt(3300)))
}

func TestAggregateRun_FreshRunID(t *testing.T) {
	first := AggregateRun("2024-06", nil)
	second := AggregateRun("2024-06", nil)
	assert.NotEmpty(t, first.RunID)
	assert.NotEqual(t, first.RunID, second.RunID, "Every aggregation is a distinct run")
}
