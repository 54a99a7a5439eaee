package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/DigitariaWebs/safyr-paie/internal/domain"
)

// IndemniteCalculator values allowance requests against the allowance
// catalogue.
type IndemniteCalculator struct {
	Types []domain.IndemniteType
}

// NewIndemniteCalculator creates a calculator over an allowance catalogue.
func NewIndemniteCalculator(types []domain.IndemniteType) *IndemniteCalculator {
	return &IndemniteCalculator{Types: types}
}

// CalculateApplication values one allowance request. It returns nil when the
// code is unknown or inactive. For per_day/per_hour allowances the custom
// amount, when present, overrides the default rate; for percentage and custom
// allowances the custom amount is the value itself (the percentage base is
// resolved by the caller, since it varies by allowance).
func (ic *IndemniteCalculator) CalculateApplication(code string, quantity, customAmount *decimal.Decimal) *domain.IndemniteApplication {
	it := ic.typeByCode(code)
	if it == nil {
		return nil
	}

	var amount decimal.Decimal
	switch it.CalculationMethod {
	case domain.MethodFixed:
		amount = it.DefaultAmount
		if customAmount != nil {
			amount = *customAmount
		}

	case domain.MethodPerDay, domain.MethodPerHour:
		rate := it.DefaultAmount
		if customAmount != nil {
			rate = *customAmount
		}
		qty := decimal.Zero
		if quantity != nil {
			qty = *quantity
		}
		amount = qty.Mul(rate)

	case domain.MethodPercentage, domain.MethodCustom:
		if customAmount != nil {
			amount = *customAmount
		}
	}

	return &domain.IndemniteApplication{
		Code:                   it.Code,
		Label:                  it.Label,
		Amount:                 amount,
		Taxable:                it.Taxable,
		SubjectToContributions: it.SubjectToContributions,
	}
}

// CalculateAll values a request list, dropping unknown codes and zero or
// negative amounts.
func (ic *IndemniteCalculator) CalculateAll(requests []domain.IndemniteRequest) []domain.IndemniteApplication {
	applications := make([]domain.IndemniteApplication, 0, len(requests))
	for _, req := range requests {
		app := ic.CalculateApplication(req.Code, req.Quantity, req.Amount)
		if app == nil || app.Amount.LessThanOrEqual(decimal.Zero) {
			continue
		}
		applications = append(applications, *app)
	}
	return applications
}

func (ic *IndemniteCalculator) typeByCode(code string) *domain.IndemniteType {
	for i := range ic.Types {
		if ic.Types[i].Code == code && ic.Types[i].IsActive {
			return &ic.Types[i]
		}
	}
	return nil
}

// IndemnitesTotals partitions an application list. Taxable plus NonTaxable
// always equals Total; SubjectToContributions cuts across that partition.
func IndemnitesTotals(applications []domain.IndemniteApplication) domain.IndemnitesTotals {
	totals := domain.IndemnitesTotals{
		Taxable:                decimal.Zero,
		NonTaxable:             decimal.Zero,
		SubjectToContributions: decimal.Zero,
		Total:                  decimal.Zero,
	}
	for _, app := range applications {
		totals.Total = totals.Total.Add(app.Amount)
		if app.Taxable {
			totals.Taxable = totals.Taxable.Add(app.Amount)
		} else {
			totals.NonTaxable = totals.NonTaxable.Add(app.Amount)
		}
		if app.SubjectToContributions {
			totals.SubjectToContributions = totals.SubjectToContributions.Add(app.Amount)
		}
	}
	return totals
}
