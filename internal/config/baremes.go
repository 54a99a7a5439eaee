package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/DigitariaWebs/safyr-paie/internal/domain"
)

// LoadBaremes loads a barème file and validates it. Constants left at zero in
// the file are filled in from the shipped 2024 values, so a partial file can
// override just the schedule it cares about.
func LoadBaremes(filename string) (*domain.Baremes, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var baremes domain.Baremes
	if err := yaml.Unmarshal(data, &baremes); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	mergeConstants(&baremes.Constants, DefaultBaremes2024().Constants)

	if err := ValidateBaremes(&baremes); err != nil {
		return nil, fmt.Errorf("barème validation failed: %w", err)
	}

	return &baremes, nil
}

// LoadBaremesOrDefault loads the barème file when it exists and falls back to
// the shipped 2024 schedule otherwise.
func LoadBaremesOrDefault(filename string) (*domain.Baremes, error) {
	if filename == "" {
		return DefaultBaremes2024(), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultBaremes2024(), nil
	}
	return LoadBaremes(filename)
}

// ValidateBaremes checks the structural invariants of a barème set: every
// rule must carry the rates its side requires, tranches must be known, and
// allowance/aid methods must be recognized. CSG/CRDS employer-less rules are
// allowed by convention.
func ValidateBaremes(baremes *domain.Baremes) error {
	if baremes.Constants.PlafondMensuelSS.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("plafond mensuel SS must be positive")
	}
	if baremes.Constants.SMICAnnuel.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("SMIC annuel must be positive")
	}
	if baremes.Constants.JoursMoyensParMois.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("jours moyens par mois must be positive")
	}

	for i := range baremes.OrganismRules {
		rule := &baremes.OrganismRules[i]
		if rule.Code == "" {
			return fmt.Errorf("organism rule %d: code is required", i)
		}
		switch rule.AppliesTo {
		case domain.SideEmployee:
			if rule.RateEmployee == nil {
				return fmt.Errorf("organism rule %s: employee rate is required", rule.Code)
			}
		case domain.SideEmployer:
			if rule.RateEmployer == nil {
				return fmt.Errorf("organism rule %s: employer rate is required", rule.Code)
			}
		case domain.SideBoth:
			if rule.RateEmployee == nil || rule.RateEmployer == nil {
				return fmt.Errorf("organism rule %s: both rates are required", rule.Code)
			}
		default:
			return fmt.Errorf("organism rule %s: unknown applies_to %q", rule.Code, rule.AppliesTo)
		}
		if rule.Tranche != "" && rule.Tranche != domain.TrancheA && rule.Tranche != domain.TrancheB {
			return fmt.Errorf("organism rule %s: unknown tranche %q", rule.Code, rule.Tranche)
		}
	}

	for i := range baremes.IndemniteTypes {
		it := &baremes.IndemniteTypes[i]
		if it.Code == "" {
			return fmt.Errorf("indemnité type %d: code is required", i)
		}
		switch it.CalculationMethod {
		case domain.MethodFixed, domain.MethodPerDay, domain.MethodPerHour, domain.MethodPercentage, domain.MethodCustom:
		default:
			return fmt.Errorf("indemnité type %s: unknown calculation method %q", it.Code, it.CalculationMethod)
		}
	}

	for i := range baremes.StateHelps {
		sh := &baremes.StateHelps[i]
		if sh.Code == "" {
			return fmt.Errorf("state help %d: code is required", i)
		}
		switch sh.CalculationMethod {
		case domain.HelpMethodFormula, domain.HelpMethodPercentage, domain.HelpMethodFixed:
		default:
			return fmt.Errorf("state help %s: unknown calculation method %q", sh.Code, sh.CalculationMethod)
		}
		if sh.CalculationMethod == domain.HelpMethodFixed && sh.Amount == nil {
			return fmt.Errorf("state help %s: fixed method requires an amount", sh.Code)
		}
		if sh.CalculationMethod == domain.HelpMethodPercentage && sh.Rate == nil {
			return fmt.Errorf("state help %s: percentage method requires a rate", sh.Code)
		}
	}

	return nil
}

func mergeConstants(dst *domain.LegalConstants, defaults domain.LegalConstants) {
	fill := func(target *decimal.Decimal, fallback decimal.Decimal) {
		if target.IsZero() {
			*target = fallback
		}
	}
	fill(&dst.PlafondMensuelSS, defaults.PlafondMensuelSS)
	fill(&dst.SMICMensuel, defaults.SMICMensuel)
	fill(&dst.SMICAnnuel, defaults.SMICAnnuel)
	fill(&dst.JoursMoyensParMois, defaults.JoursMoyensParMois)
	fill(&dst.HeuresMensuelles, defaults.HeuresMensuelles)
	fill(&dst.CSGCRDSBaseFactor, defaults.CSGCRDSBaseFactor)
	fill(&dst.FillonCoefficientMoins50, defaults.FillonCoefficientMoins50)
	fill(&dst.FillonCoefficient50Plus, defaults.FillonCoefficient50Plus)
	fill(&dst.HeuresSupCreditMoins50, defaults.HeuresSupCreditMoins50)
	fill(&dst.HeuresSupCredit50Plus, defaults.HeuresSupCredit50Plus)
	fill(&dst.MajorationNuit, defaults.MajorationNuit)
	fill(&dst.MajorationDimanche, defaults.MajorationDimanche)
	fill(&dst.MajorationFerie, defaults.MajorationFerie)
	fill(&dst.MajorationHS25, defaults.MajorationHS25)
	fill(&dst.MajorationHS50, defaults.MajorationHS50)
	fill(&dst.MajorationHS100, defaults.MajorationHS100)
}
