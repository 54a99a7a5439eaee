package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/DigitariaWebs/safyr-paie/internal/domain"
)

// OrganismCalculator values the social-contribution schedule against a gross
// salary for one side (employee or employer).
type OrganismCalculator struct {
	PlafondSS         decimal.Decimal
	CSGCRDSBaseFactor decimal.Decimal
}

// NewOrganismCalculator2024 creates a calculator with the 2024 reference
// values (monthly plafond 3864, CSG/CRDS abatement of 1.75%).
func NewOrganismCalculator2024() *OrganismCalculator {
	return &OrganismCalculator{
		PlafondSS:         decimal.NewFromInt(3864),
		CSGCRDSBaseFactor: decimal.NewFromFloat(0.9825),
	}
}

// NewOrganismCalculator creates a calculator from configured legal constants.
func NewOrganismCalculator(constants domain.LegalConstants) *OrganismCalculator {
	return &OrganismCalculator{
		PlafondSS:         constants.PlafondMensuelSS,
		CSGCRDSBaseFactor: constants.CSGCRDSBaseFactor,
	}
}

// CalculateDeductions values every applicable rule of the schedule against
// grossSalary for the requested side. A rule participates when it is active
// and applies to that side; a rule missing the side's rate is skipped, as is
// a tranche-B rule whose base collapses to zero below the plafond. Result
// order follows the rule list.
func (oc *OrganismCalculator) CalculateDeductions(grossSalary decimal.Decimal, rules []domain.OrganismRule, side domain.ContributionSide) []domain.OrganismDeduction {
	deductions := make([]domain.OrganismDeduction, 0, len(rules))

	for i := range rules {
		rule := &rules[i]
		if !rule.IsActive {
			continue
		}
		if rule.AppliesTo != side && rule.AppliesTo != domain.SideBoth {
			continue
		}
		rate := rule.RateFor(side)
		if rate == nil {
			continue
		}

		base, tranche, ok := oc.contributionBase(grossSalary, rule)
		if !ok {
			continue
		}

		deductions = append(deductions, domain.OrganismDeduction{
			RuleCode:   rule.Code,
			Organism:   rule.Organism,
			Label:      rule.Label,
			Category:   rule.Category,
			BaseAmount: base,
			Rate:       *rate,
			Amount:     base.Mul(*rate).Div(decimal.NewFromInt(100)),
			Ceiling:    rule.Ceiling,
			Tranche:    tranche,
		})
	}

	return deductions
}

// contributionBase resolves the contribution base for one rule. The first
// matching policy wins: CSG/CRDS abatement, tranche A cap, tranche B band,
// plain ceiling, full gross. ok is false when the rule must not emit a line
// (empty tranche-B base).
func (oc *OrganismCalculator) contributionBase(grossSalary decimal.Decimal, rule *domain.OrganismRule) (base decimal.Decimal, tranche string, ok bool) {
	switch {
	case rule.Category == domain.CategoryCSG || rule.Category == domain.CategoryCRDS:
		return grossSalary.Mul(oc.CSGCRDSBaseFactor), "", true

	case rule.Tranche == domain.TrancheA:
		return decimal.Min(grossSalary, oc.PlafondSS), domain.TrancheA, true

	case rule.Tranche == domain.TrancheB:
		upper := oc.PlafondSS.Mul(decimal.NewFromInt(8))
		if rule.Ceiling != nil {
			upper = *rule.Ceiling
		}
		base = decimal.Min(grossSalary, upper).Sub(oc.PlafondSS)
		if base.LessThanOrEqual(decimal.Zero) {
			return decimal.Zero, "", false
		}
		return base, domain.TrancheB, true

	case rule.Ceiling != nil:
		return decimal.Min(grossSalary, *rule.Ceiling), "", true
	}

	return grossSalary, "", true
}

// TotalDeductions sums the amounts of a deduction list.
func TotalDeductions(deductions []domain.OrganismDeduction) decimal.Decimal {
	total := decimal.Zero
	for _, d := range deductions {
		total = total.Add(d.Amount)
	}
	return total
}
