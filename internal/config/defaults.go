package config

import (
	"github.com/shopspring/decimal"

	"github.com/DigitariaWebs/safyr-paie/internal/domain"
)

func rate(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func amount(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

// DefaultBaremes2024 returns the shipped 2024 reference schedule: URSSAF and
// AGIRC-ARRCO contribution rules, the allowance catalogue and the state aids,
// with the legal constants of the period.
func DefaultBaremes2024() *domain.Baremes {
	plafond := decimal.NewFromInt(3864)
	trancheBCeiling := plafond.Mul(decimal.NewFromInt(8))

	return &domain.Baremes{
		Metadata: domain.BaremeMetadata{
			DataYear:    2024,
			LastUpdated: "2024-01-01",
			Description: "Barème social et aides employeur, valeurs 2024",
		},
		Constants: domain.LegalConstants{
			PlafondMensuelSS:         plafond,
			SMICMensuel:              decimal.NewFromFloat(1766.92),
			SMICAnnuel:               decimal.NewFromFloat(21203.04),
			JoursMoyensParMois:       decimal.NewFromFloat(21.67),
			HeuresMensuelles:         decimal.NewFromFloat(151.67),
			CSGCRDSBaseFactor:        decimal.NewFromFloat(0.9825),
			FillonCoefficientMoins50: decimal.NewFromFloat(0.3194),
			FillonCoefficient50Plus:  decimal.NewFromFloat(0.3234),
			HeuresSupCreditMoins50:   decimal.NewFromFloat(1.50),
			HeuresSupCredit50Plus:    decimal.NewFromFloat(0.50),
			MajorationNuit:           decimal.NewFromFloat(0.10),
			MajorationDimanche:       decimal.NewFromFloat(0.25),
			MajorationFerie:          decimal.NewFromFloat(1.00),
			MajorationHS25:           decimal.NewFromFloat(0.25),
			MajorationHS50:           decimal.NewFromFloat(0.50),
			MajorationHS100:          decimal.NewFromFloat(1.00),
		},
		OrganismRules: []domain.OrganismRule{
			{
				Code: "MALADIE", Organism: "URSSAF", Label: "Assurance maladie",
				Category: domain.CategoryHealth, AppliesTo: domain.SideEmployer,
				RateEmployer: rate(13.00), IsActive: true, EffectiveDate: "2024-01-01",
			},
			{
				Code: "VIEILLESSE_PLAF", Organism: "URSSAF", Label: "Assurance vieillesse plafonnée",
				Category: domain.CategoryRetirement, AppliesTo: domain.SideBoth,
				RateEmployee: rate(6.90), RateEmployer: rate(8.55),
				Tranche: domain.TrancheA, IsActive: true, EffectiveDate: "2024-01-01",
			},
			{
				Code: "VIEILLESSE_DEPLAF", Organism: "URSSAF", Label: "Assurance vieillesse déplafonnée",
				Category: domain.CategoryRetirement, AppliesTo: domain.SideBoth,
				RateEmployee: rate(0.40), RateEmployer: rate(2.02),
				IsActive: true, EffectiveDate: "2024-01-01",
			},
			{
				Code: "ALLOC_FAMILIALES", Organism: "URSSAF", Label: "Allocations familiales",
				Category: domain.CategoryFamily, AppliesTo: domain.SideEmployer,
				RateEmployer: rate(5.25), IsActive: true, EffectiveDate: "2024-01-01",
			},
			{
				Code: "ACCIDENT_TRAVAIL", Organism: "URSSAF", Label: "Accidents du travail",
				Category: domain.CategoryAccident, AppliesTo: domain.SideEmployer,
				RateEmployer: rate(2.20), IsActive: true, EffectiveDate: "2024-01-01",
			},
			{
				Code: "CHOMAGE", Organism: "URSSAF", Label: "Assurance chômage",
				Category: domain.CategoryUnemployment, AppliesTo: domain.SideEmployer,
				RateEmployer: rate(4.05), Ceiling: amount(15456), IsActive: true, EffectiveDate: "2024-01-01",
			},
			{
				Code: "AGS", Organism: "URSSAF", Label: "AGS",
				Category: domain.CategoryUnemployment, AppliesTo: domain.SideEmployer,
				RateEmployer: rate(0.15), Ceiling: amount(15456), IsActive: true, EffectiveDate: "2024-01-01",
			},
			{
				Code: "RETRAITE_T1", Organism: "AGIRC-ARRCO", Label: "Retraite complémentaire T1",
				Category: domain.CategoryRetirement, AppliesTo: domain.SideBoth,
				RateEmployee: rate(3.15), RateEmployer: rate(4.72),
				Tranche: domain.TrancheA, IsActive: true, EffectiveDate: "2024-01-01",
			},
			{
				Code: "RETRAITE_T2", Organism: "AGIRC-ARRCO", Label: "Retraite complémentaire T2",
				Category: domain.CategoryRetirement, AppliesTo: domain.SideBoth,
				RateEmployee: rate(8.64), RateEmployer: rate(12.95),
				Tranche: domain.TrancheB, Ceiling: &trancheBCeiling, IsActive: true, EffectiveDate: "2024-01-01",
			},
			{
				Code: "CEG_T1", Organism: "AGIRC-ARRCO", Label: "Contribution d'équilibre général T1",
				Category: domain.CategoryRetirement, AppliesTo: domain.SideBoth,
				RateEmployee: rate(0.86), RateEmployer: rate(1.29),
				Tranche: domain.TrancheA, IsActive: true, EffectiveDate: "2024-01-01",
			},
			{
				Code: "CEG_T2", Organism: "AGIRC-ARRCO", Label: "Contribution d'équilibre général T2",
				Category: domain.CategoryRetirement, AppliesTo: domain.SideBoth,
				RateEmployee: rate(1.08), RateEmployer: rate(1.62),
				Tranche: domain.TrancheB, Ceiling: &trancheBCeiling, IsActive: true, EffectiveDate: "2024-01-01",
			},
			{
				Code: "CSG_DEDUCTIBLE", Organism: "URSSAF", Label: "CSG déductible",
				Category: domain.CategoryCSG, AppliesTo: domain.SideEmployee,
				RateEmployee: rate(6.80), IsActive: true, EffectiveDate: "2024-01-01",
			},
			{
				Code: "CSG_NON_DEDUCTIBLE", Organism: "URSSAF", Label: "CSG non déductible",
				Category: domain.CategoryCSG, AppliesTo: domain.SideEmployee,
				RateEmployee: rate(2.40), IsActive: true, EffectiveDate: "2024-01-01",
			},
			{
				Code: "CRDS", Organism: "URSSAF", Label: "CRDS",
				Category: domain.CategoryCRDS, AppliesTo: domain.SideEmployee,
				RateEmployee: rate(0.50), IsActive: true, EffectiveDate: "2024-01-01",
			},
		},
		IndemniteTypes: []domain.IndemniteType{
			{
				Code: "PANIER_JOUR", Label: "Panier repas (jour)", Category: "repas",
				Taxable: false, SubjectToContributions: false,
				DefaultAmount: decimal.NewFromFloat(7.30), CalculationMethod: domain.MethodPerDay, IsActive: true,
			},
			{
				Code: "PANIER_NUIT", Label: "Panier repas (nuit)", Category: "repas",
				Taxable: false, SubjectToContributions: false,
				DefaultAmount: decimal.NewFromFloat(7.30), CalculationMethod: domain.MethodPerDay, IsActive: true,
			},
			{
				Code: "TRANSPORT", Label: "Indemnité transport", Category: "transport",
				Taxable: false, SubjectToContributions: false,
				DefaultAmount: decimal.NewFromFloat(42.60), CalculationMethod: domain.MethodFixed, IsActive: true,
			},
			{
				Code: "TELETRAVAIL", Label: "Indemnité télétravail", Category: "teletravail",
				Taxable: false, SubjectToContributions: false,
				DefaultAmount: decimal.NewFromFloat(2.60), CalculationMethod: domain.MethodPerDay, IsActive: true,
			},
			{
				Code: "ASTREINTE", Label: "Prime d'astreinte", Category: "sujétion",
				Taxable: true, SubjectToContributions: true,
				DefaultAmount: decimal.NewFromFloat(5.00), CalculationMethod: domain.MethodPerHour, IsActive: true,
			},
			{
				Code: "ANCIENNETE", Label: "Prime d'ancienneté", Category: "prime",
				Taxable: true, SubjectToContributions: true,
				DefaultAmount: decimal.Zero, CalculationMethod: domain.MethodPercentage, IsActive: true,
			},
			{
				Code: "PRIME_EXCEPTIONNELLE", Label: "Prime exceptionnelle", Category: "prime",
				Taxable: true, SubjectToContributions: true,
				DefaultAmount: decimal.Zero, CalculationMethod: domain.MethodCustom, IsActive: true,
			},
		},
		StateHelps: []domain.StateHelp{
			{
				Code: "FILLON", Label: "Réduction générale des cotisations patronales",
				Type: domain.HelpReduction, CalculationMethod: domain.HelpMethodFormula,
				Conditions: []string{"Rémunération inférieure à 1,6 SMIC"},
				IsActive:   true,
			},
			{
				Code: "HEURES_SUP", Label: "Déduction forfaitaire heures supplémentaires",
				Type: domain.HelpCredit, CalculationMethod: domain.HelpMethodFormula,
				Conditions: []string{"Heures supplémentaires effectuées"},
				IsActive:   true,
			},
			{
				Code: "APPRENTI", Label: "Aide à l'embauche d'apprentis",
				Type: domain.HelpCredit, CalculationMethod: domain.HelpMethodFixed,
				Amount:     amount(6000),
				Conditions: []string{"Contrat d'apprentissage en cours"},
				IsActive:   true,
			},
			{
				Code: "EMPLOI_FRANC", Label: "Aide emploi franc",
				Type: domain.HelpCredit, CalculationMethod: domain.HelpMethodFixed,
				Amount:     amount(5000),
				Conditions: []string{"Salarié résidant en QPV"},
				IsActive:   true,
			},
			{
				Code: "CONTRAT_PRO", Label: "Aide contrat de professionnalisation",
				Type: domain.HelpCredit, CalculationMethod: domain.HelpMethodFixed,
				Amount:     amount(8000),
				Conditions: []string{"Contrat de professionnalisation en cours"},
				IsActive:   true,
			},
			{
				Code: "HANDICAP", Label: "Aide à l'embauche de travailleurs handicapés",
				Type: domain.HelpCredit, CalculationMethod: domain.HelpMethodFixed,
				Amount:     amount(4000),
				Conditions: []string{"Reconnaissance de la qualité de travailleur handicapé"},
				IsActive:   true,
			},
		},
	}
}
