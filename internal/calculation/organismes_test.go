package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DigitariaWebs/safyr-paie/internal/domain"
)

func ratePtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func amountPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func TestOrganismCalculator_SideSelection(t *testing.T) {
	oc := NewOrganismCalculator2024()
	rules := []domain.OrganismRule{
		{Code: "EMP_ONLY", AppliesTo: domain.SideEmployee, RateEmployee: ratePtr(2.0), IsActive: true},
		{Code: "ER_ONLY", AppliesTo: domain.SideEmployer, RateEmployer: ratePtr(3.0), IsActive: true},
		{Code: "BOTH", AppliesTo: domain.SideBoth, RateEmployee: ratePtr(1.0), RateEmployer: ratePtr(1.5), IsActive: true},
		{Code: "INACTIVE", AppliesTo: domain.SideEmployee, RateEmployee: ratePtr(9.0), IsActive: false},
	}

	employee := oc.CalculateDeductions(decimal.NewFromInt(2000), rules, domain.SideEmployee)
	require.Len(t, employee, 2, "Should keep employee-side and both-side rules")
	assert.Equal(t, "EMP_ONLY", employee[0].RuleCode, "Should follow rule iteration order")
	assert.Equal(t, "BOTH", employee[1].RuleCode)

	employer := oc.CalculateDeductions(decimal.NewFromInt(2000), rules, domain.SideEmployer)
	require.Len(t, employer, 2)
	assert.Equal(t, "ER_ONLY", employer[0].RuleCode)
	assert.Equal(t, "BOTH", employer[1].RuleCode)
}

func TestOrganismCalculator_MissingRateIsSkipped(t *testing.T) {
	oc := NewOrganismCalculator2024()
	// Declared for both sides but carries no employer rate.
	rules := []domain.OrganismRule{
		{Code: "BROKEN", AppliesTo: domain.SideBoth, RateEmployee: ratePtr(2.0), IsActive: true},
	}

	employer := oc.CalculateDeductions(decimal.NewFromInt(2000), rules, domain.SideEmployer)
	assert.Empty(t, employer, "Rule without the requested side's rate must be skipped silently")

	employee := oc.CalculateDeductions(decimal.NewFromInt(2000), rules, domain.SideEmployee)
	assert.Len(t, employee, 1, "Employee side still applies")
}

func TestOrganismCalculator_CSGAbatement(t *testing.T) {
	oc := NewOrganismCalculator2024()
	rules := []domain.OrganismRule{
		{Code: "CSG_DEDUCTIBLE", Category: domain.CategoryCSG, AppliesTo: domain.SideEmployee, RateEmployee: ratePtr(6.8), IsActive: true},
		{Code: "CRDS", Category: domain.CategoryCRDS, AppliesTo: domain.SideEmployee, RateEmployee: ratePtr(0.5), IsActive: true},
	}

	gross := decimal.NewFromInt(3000)
	deductions := oc.CalculateDeductions(gross, rules, domain.SideEmployee)
	require.Len(t, deductions, 2)

	expectedBase := gross.Mul(decimal.NewFromFloat(0.9825))
	for _, d := range deductions {
		assert.True(t, d.BaseAmount.Equal(expectedBase), "CSG/CRDS base must carry the 1.75%% abatement, got %s", d.BaseAmount)
	}
	expectedCSG := expectedBase.Mul(decimal.NewFromFloat(6.8)).Div(decimal.NewFromInt(100))
	assert.True(t, deductions[0].Amount.Equal(expectedCSG), "CSG amount mismatch: %s", deductions[0].Amount)
}

func TestOrganismCalculator_TrancheACap(t *testing.T) {
	oc := NewOrganismCalculator2024()
	rules := []domain.OrganismRule{
		{Code: "VIEILLESSE_PLAF", AppliesTo: domain.SideEmployee, RateEmployee: ratePtr(6.9), Tranche: domain.TrancheA, IsActive: true},
	}

	// Below the plafond the base is the gross itself.
	below := oc.CalculateDeductions(decimal.NewFromInt(2000), rules, domain.SideEmployee)
	require.Len(t, below, 1)
	assert.True(t, below[0].BaseAmount.Equal(decimal.NewFromInt(2000)))
	assert.Equal(t, domain.TrancheA, below[0].Tranche, "Tranche must be recorded on the result")

	// Above the plafond the base is capped.
	above := oc.CalculateDeductions(decimal.NewFromInt(5000), rules, domain.SideEmployee)
	require.Len(t, above, 1)
	assert.True(t, above[0].BaseAmount.Equal(decimal.NewFromInt(3864)), "Tranche A base must cap at the plafond")
}

func TestOrganismCalculator_TrancheBExcludedBelowPlafond(t *testing.T) {
	oc := NewOrganismCalculator2024()
	rules := []domain.OrganismRule{
		{Code: "RETRAITE_T2", AppliesTo: domain.SideEmployee, RateEmployee: ratePtr(8.64), Tranche: domain.TrancheB, Ceiling: amountPtr(30912), IsActive: true},
	}

	// Gross below the plafond: the tranche B base is empty, so no line at all.
	deductions := oc.CalculateDeductions(decimal.NewFromInt(3000), rules, domain.SideEmployee)
	assert.Empty(t, deductions, "Empty tranche B base must not emit a zero-amount line")
}

func TestOrganismCalculator_TrancheBBand(t *testing.T) {
	oc := NewOrganismCalculator2024()
	rules := []domain.OrganismRule{
		{Code: "RETRAITE_T2", AppliesTo: domain.SideEmployee, RateEmployee: ratePtr(8.64), Tranche: domain.TrancheB, Ceiling: amountPtr(30912), IsActive: true},
	}

	gross := decimal.NewFromInt(6000)
	deductions := oc.CalculateDeductions(gross, rules, domain.SideEmployee)
	require.Len(t, deductions, 1)
	assert.True(t, deductions[0].BaseAmount.Equal(decimal.NewFromInt(6000-3864)), "Tranche B base is the slice above the plafond")
	assert.Equal(t, domain.TrancheB, deductions[0].Tranche)
}

func TestOrganismCalculator_TrancheBDefaultCeiling(t *testing.T) {
	oc := NewOrganismCalculator2024()
	rules := []domain.OrganismRule{
		{Code: "T2_NO_CEILING", AppliesTo: domain.SideEmployee, RateEmployee: ratePtr(1.0), Tranche: domain.TrancheB, IsActive: true},
	}

	// Without an explicit ceiling the band tops out at 8x the plafond.
	gross := decimal.NewFromInt(50000)
	deductions := oc.CalculateDeductions(gross, rules, domain.SideEmployee)
	require.Len(t, deductions, 1)
	expected := decimal.NewFromInt(3864 * 8).Sub(decimal.NewFromInt(3864))
	assert.True(t, deductions[0].BaseAmount.Equal(expected), "Band must top out at 8x plafond, got %s", deductions[0].BaseAmount)
}

func TestOrganismCalculator_PlainCeiling(t *testing.T) {
	oc := NewOrganismCalculator2024()
	rules := []domain.OrganismRule{
		{Code: "CHOMAGE", AppliesTo: domain.SideEmployer, RateEmployer: ratePtr(4.05), Ceiling: amountPtr(15456), IsActive: true},
	}

	deductions := oc.CalculateDeductions(decimal.NewFromInt(20000), rules, domain.SideEmployer)
	require.Len(t, deductions, 1)
	assert.True(t, deductions[0].BaseAmount.Equal(decimal.NewFromInt(15456)), "Plain ceiling caps the base")
}

func TestTotalDeductions(t *testing.T) {
	deductions := []domain.OrganismDeduction{
		{Amount: decimal.NewFromFloat(10.5)},
		{Amount: decimal.NewFromFloat(4.5)},
	}
	assert.True(t, TotalDeductions(deductions).Equal(decimal.NewFromInt(15)))
	assert.True(t, TotalDeductions(nil).IsZero())
}
