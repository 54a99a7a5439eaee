package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/DigitariaWebs/safyr-paie/internal/domain"
)

// StateHelpCalculator values employer-side reductions, exonerations and
// credits. FILLON and HEURES_SUP carry dedicated formulas; the remaining aids
// follow their declared calculation method.
type StateHelpCalculator struct {
	SMICAnnuel decimal.Decimal

	// Fillon T coefficient by company size.
	CoefficientMoins50 decimal.Decimal
	Coefficient50Plus  decimal.Decimal

	// Credit per overtime hour by company size.
	HeuresSupCreditMoins50 decimal.Decimal
	HeuresSupCredit50Plus  decimal.Decimal
}

// NewStateHelpCalculator2024 creates a calculator with the 2024 reference
// values.
func NewStateHelpCalculator2024() *StateHelpCalculator {
	return &StateHelpCalculator{
		SMICAnnuel:             decimal.NewFromFloat(21203.04),
		CoefficientMoins50:     decimal.NewFromFloat(0.3194),
		Coefficient50Plus:      decimal.NewFromFloat(0.3234),
		HeuresSupCreditMoins50: decimal.NewFromFloat(1.50),
		HeuresSupCredit50Plus:  decimal.NewFromFloat(0.50),
	}
}

// NewStateHelpCalculator creates a calculator from configured legal constants.
func NewStateHelpCalculator(constants domain.LegalConstants) *StateHelpCalculator {
	return &StateHelpCalculator{
		SMICAnnuel:             constants.SMICAnnuel,
		CoefficientMoins50:     constants.FillonCoefficientMoins50,
		Coefficient50Plus:      constants.FillonCoefficient50Plus,
		HeuresSupCreditMoins50: constants.HeuresSupCreditMoins50,
		HeuresSupCredit50Plus:  constants.HeuresSupCredit50Plus,
	}
}

// CalculateApplications values the requested aid codes against a monthly
// gross salary. Unknown or inactive codes are skipped; applications that
// resolve to a zero or negative amount are excluded from the result.
func (sc *StateHelpCalculator) CalculateApplications(monthlyGrossSalary, overtimeHours decimal.Decimal, codes []string, lessThan50Employees bool, helps []domain.StateHelp) []domain.StateHelpApplication {
	applications := make([]domain.StateHelpApplication, 0, len(codes))

	for _, code := range codes {
		help := stateHelpByCode(helps, code)
		if help == nil {
			continue
		}

		amount := sc.appliedAmount(help, monthlyGrossSalary, overtimeHours, lessThan50Employees)
		if amount.LessThanOrEqual(decimal.Zero) {
			continue
		}

		applications = append(applications, domain.StateHelpApplication{
			Code:          help.Code,
			Label:         help.Label,
			Type:          help.Type,
			AppliedAmount: amount,
		})
	}

	return applications
}

func (sc *StateHelpCalculator) appliedAmount(help *domain.StateHelp, monthlyGrossSalary, overtimeHours decimal.Decimal, lessThan50Employees bool) decimal.Decimal {
	twelve := decimal.NewFromInt(12)

	switch help.Code {
	case domain.HelpCodeFillon:
		monthly := sc.CalculateFillonReduction(monthlyGrossSalary, lessThan50Employees)
		if help.MaxAmount != nil {
			monthly = decimal.Min(monthly, *help.MaxAmount)
		}
		return monthly

	case domain.HelpCodeHeuresSup:
		credit := sc.HeuresSupCredit50Plus
		if lessThan50Employees {
			credit = sc.HeuresSupCreditMoins50
		}
		return overtimeHours.Mul(credit)
	}

	switch help.CalculationMethod {
	case domain.HelpMethodFixed:
		// Fixed aids are declared as annual lump sums.
		if help.Amount == nil {
			return decimal.Zero
		}
		return help.Amount.Div(twelve)

	case domain.HelpMethodPercentage:
		if help.Rate == nil {
			return decimal.Zero
		}
		amount := monthlyGrossSalary.Mul(*help.Rate).Div(decimal.NewFromInt(100))
		if help.MaxAmount != nil {
			amount = decimal.Min(amount, help.MaxAmount.Div(twelve))
		}
		return amount
	}

	return decimal.Zero
}

// CalculateFillonReduction computes the monthly Fillon reduction for a
// monthly gross salary. The reduction phases out at 1.6 SMIC:
//
//	coefficient = T × (1.6 × SMIC_annuel / rémunération_annuelle − 1)
//
// clamped to [0, T], where T depends on company size.
func (sc *StateHelpCalculator) CalculateFillonReduction(monthlyGrossSalary decimal.Decimal, lessThan50Employees bool) decimal.Decimal {
	if monthlyGrossSalary.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	annualEquivalent := monthlyGrossSalary.Mul(decimal.NewFromInt(12))
	threshold := sc.SMICAnnuel.Mul(decimal.NewFromFloat(1.6))
	if annualEquivalent.GreaterThanOrEqual(threshold) {
		return decimal.Zero
	}

	t := sc.Coefficient50Plus
	if lessThan50Employees {
		t = sc.CoefficientMoins50
	}

	coefficient := t.Mul(threshold.Div(annualEquivalent).Sub(decimal.NewFromInt(1)))
	if coefficient.LessThan(decimal.Zero) {
		coefficient = decimal.Zero
	}
	if coefficient.GreaterThan(t) {
		coefficient = t
	}

	annualReduction := annualEquivalent.Mul(coefficient)
	return annualReduction.Div(decimal.NewFromInt(12))
}

// TotalStateHelp sums the applied amounts of an application list.
func TotalStateHelp(applications []domain.StateHelpApplication) decimal.Decimal {
	total := decimal.Zero
	for _, a := range applications {
		total = total.Add(a.AppliedAmount)
	}
	return total
}

func stateHelpByCode(helps []domain.StateHelp, code string) *domain.StateHelp {
	for i := range helps {
		if helps[i].Code == code && helps[i].IsActive {
			return &helps[i]
		}
	}
	return nil
}
