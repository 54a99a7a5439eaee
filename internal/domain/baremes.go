package domain

import (
	"github.com/shopspring/decimal"
)

// ContributionCategory classifies an organism rule within the social schedule.
type ContributionCategory string

const (
	CategoryHealth       ContributionCategory = "health"
	CategoryFamily       ContributionCategory = "family"
	CategoryAccident     ContributionCategory = "accident"
	CategoryRetirement   ContributionCategory = "retirement"
	CategoryUnemployment ContributionCategory = "unemployment"
	CategoryCSG          ContributionCategory = "csg"
	CategoryCRDS         ContributionCategory = "crds"
	CategoryOther        ContributionCategory = "other"
)

// ContributionSide identifies who bears a contribution.
type ContributionSide string

const (
	SideEmployee ContributionSide = "employee"
	SideEmployer ContributionSide = "employer"
	SideBoth     ContributionSide = "both"
)

// Tranche identifiers for the social-security contribution bands.
const (
	TrancheA = "A"
	TrancheB = "B"
)

// OrganismRule is one line of the social-contribution schedule (URSSAF,
// AGIRC-ARRCO, ...). Rates are percentages, ceilings are monthly caps on the
// contribution base. A rule that applies to a side must carry the matching
// rate; CSG/CRDS are employee-only by convention in the shipped schedule.
type OrganismRule struct {
	Code          string               `yaml:"code" json:"code"`
	Organism      string               `yaml:"organism" json:"organism"`
	Label         string               `yaml:"label" json:"label"`
	Category      ContributionCategory `yaml:"category" json:"category"`
	AppliesTo     ContributionSide     `yaml:"applies_to" json:"appliesTo"`
	RateEmployee  *decimal.Decimal     `yaml:"rate_employee,omitempty" json:"rateEmployee,omitempty"`
	RateEmployer  *decimal.Decimal     `yaml:"rate_employer,omitempty" json:"rateEmployer,omitempty"`
	Ceiling       *decimal.Decimal     `yaml:"ceiling,omitempty" json:"ceiling,omitempty"`
	Tranche       string               `yaml:"tranche,omitempty" json:"tranche,omitempty"`
	IsActive      bool                 `yaml:"is_active" json:"isActive"`
	EffectiveDate string               `yaml:"effective_date" json:"effectiveDate"`
}

// RateFor returns the rate the rule defines for the requested side, or nil
// when the rule does not carry one.
func (r *OrganismRule) RateFor(side ContributionSide) *decimal.Decimal {
	switch side {
	case SideEmployee:
		return r.RateEmployee
	case SideEmployer:
		return r.RateEmployer
	}
	return nil
}

// IndemniteMethod selects how an allowance amount is computed.
type IndemniteMethod string

const (
	MethodFixed      IndemniteMethod = "fixed"
	MethodPerDay     IndemniteMethod = "per_day"
	MethodPerHour    IndemniteMethod = "per_hour"
	MethodPercentage IndemniteMethod = "percentage"
	MethodCustom     IndemniteMethod = "custom"
)

// IndemniteType defines a named allowance. Taxable and
// SubjectToContributions are independent flags: an allowance can be exempt
// from income tax while still entering the contribution base.
type IndemniteType struct {
	Code                   string          `yaml:"code" json:"code"`
	Label                  string          `yaml:"label" json:"label"`
	Category               string          `yaml:"category" json:"category"`
	Taxable                bool            `yaml:"taxable" json:"taxable"`
	SubjectToContributions bool            `yaml:"subject_to_contributions" json:"subjectToContributions"`
	DefaultAmount          decimal.Decimal `yaml:"default_amount" json:"defaultAmount"`
	CalculationMethod      IndemniteMethod `yaml:"calculation_method" json:"calculationMethod"`
	IsActive               bool            `yaml:"is_active" json:"isActive"`
}

// StateHelpType classifies an employer-side aid.
type StateHelpType string

const (
	HelpReduction   StateHelpType = "reduction"
	HelpExoneration StateHelpType = "exoneration"
	HelpCredit      StateHelpType = "credit"
)

// StateHelpMethod selects how an aid amount is computed.
type StateHelpMethod string

const (
	HelpMethodFormula    StateHelpMethod = "formula"
	HelpMethodPercentage StateHelpMethod = "percentage"
	HelpMethodFixed      StateHelpMethod = "fixed"
)

// Well-known state-aid codes carrying dedicated formulas.
const (
	HelpCodeFillon    = "FILLON"
	HelpCodeHeuresSup = "HEURES_SUP"
)

// StateHelp defines an employer-side reduction, exoneration or credit.
// Amount is annual for fixed-method aids. Conditions are informational text,
// never machine-evaluated.
type StateHelp struct {
	Code              string           `yaml:"code" json:"code"`
	Label             string           `yaml:"label" json:"label"`
	Type              StateHelpType    `yaml:"type" json:"type"`
	CalculationMethod StateHelpMethod  `yaml:"calculation_method" json:"calculationMethod"`
	Rate              *decimal.Decimal `yaml:"rate,omitempty" json:"rate,omitempty"`
	Amount            *decimal.Decimal `yaml:"amount,omitempty" json:"amount,omitempty"`
	MaxAmount         *decimal.Decimal `yaml:"max_amount,omitempty" json:"maxAmount,omitempty"`
	Conditions        []string         `yaml:"conditions,omitempty" json:"conditions,omitempty"`
	IsActive          bool             `yaml:"is_active" json:"isActive"`
}

// LegalConstants carries the period's legal reference values. Loaded from the
// barème file and merged over the shipped 2024 values.
type LegalConstants struct {
	PlafondMensuelSS   decimal.Decimal `yaml:"plafond_mensuel_ss" json:"plafondMensuelSS"`
	SMICMensuel        decimal.Decimal `yaml:"smic_mensuel" json:"smicMensuel"`
	SMICAnnuel         decimal.Decimal `yaml:"smic_annuel" json:"smicAnnuel"`
	JoursMoyensParMois decimal.Decimal `yaml:"jours_moyens_par_mois" json:"joursMoyensParMois"`
	HeuresMensuelles   decimal.Decimal `yaml:"heures_mensuelles" json:"heuresMensuelles"`

	// CSG/CRDS base abatement factor (1 - 1.75%).
	CSGCRDSBaseFactor decimal.Decimal `yaml:"csg_crds_base_factor" json:"csgCrdsBaseFactor"`

	// Fillon T coefficients by company size.
	FillonCoefficientMoins50 decimal.Decimal `yaml:"fillon_coefficient_moins_50" json:"fillonCoefficientMoins50"`
	FillonCoefficient50Plus  decimal.Decimal `yaml:"fillon_coefficient_50_plus" json:"fillonCoefficient50Plus"`

	// Employer credit per overtime hour by company size.
	HeuresSupCreditMoins50 decimal.Decimal `yaml:"heures_sup_credit_moins_50" json:"heuresSupCreditMoins50"`
	HeuresSupCredit50Plus  decimal.Decimal `yaml:"heures_sup_credit_50_plus" json:"heuresSupCredit50Plus"`

	// Majoration rates for special hours.
	MajorationNuit     decimal.Decimal `yaml:"majoration_nuit" json:"majorationNuit"`
	MajorationDimanche decimal.Decimal `yaml:"majoration_dimanche" json:"majorationDimanche"`
	MajorationFerie    decimal.Decimal `yaml:"majoration_ferie" json:"majorationFerie"`
	MajorationHS25     decimal.Decimal `yaml:"majoration_hs_25" json:"majorationHS25"`
	MajorationHS50     decimal.Decimal `yaml:"majoration_hs_50" json:"majorationHS50"`
	MajorationHS100    decimal.Decimal `yaml:"majoration_hs_100" json:"majorationHS100"`
}

// BaremeMetadata documents the provenance of a barème file.
type BaremeMetadata struct {
	DataYear    int    `yaml:"data_year" json:"dataYear"`
	LastUpdated string `yaml:"last_updated" json:"lastUpdated"`
	Description string `yaml:"description" json:"description"`
}

// Baremes is the full reference-data set shared read-only by every employee
// calculation in a run: contribution schedule, allowance catalogue, state
// aids and legal constants.
type Baremes struct {
	Metadata       BaremeMetadata  `yaml:"metadata" json:"metadata"`
	Constants      LegalConstants  `yaml:"constants" json:"constants"`
	OrganismRules  []OrganismRule  `yaml:"organism_rules" json:"organismRules"`
	IndemniteTypes []IndemniteType `yaml:"indemnite_types" json:"indemniteTypes"`
	StateHelps     []StateHelp     `yaml:"state_helps" json:"stateHelps"`
}

// IndemniteTypeByCode returns the active allowance definition for code, or
// nil when the code is unknown or inactive.
func (b *Baremes) IndemniteTypeByCode(code string) *IndemniteType {
	for i := range b.IndemniteTypes {
		if b.IndemniteTypes[i].Code == code && b.IndemniteTypes[i].IsActive {
			return &b.IndemniteTypes[i]
		}
	}
	return nil
}

// StateHelpByCode returns the active state-aid definition for code, or nil.
func (b *Baremes) StateHelpByCode(code string) *StateHelp {
	for i := range b.StateHelps {
		if b.StateHelps[i].Code == code && b.StateHelps[i].IsActive {
			return &b.StateHelps[i]
		}
	}
	return nil
}
