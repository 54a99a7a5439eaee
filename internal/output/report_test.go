package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DigitariaWebs/safyr-paie/internal/domain"
)

func sampleReport() *domain.PayrollRunReport {
	return &domain.PayrollRunReport{
		Run: domain.PayrollCalculationRun{
			RunID:               "run-123",
			Period:              "2024-06",
			TotalEmployees:      2,
			CalculatedEmployees: 1,
			ErrorEmployees:      1,
			TotalBruteSalary:    decimal.NewFromFloat(1997.49),
			TotalNetToPay:       decimal.NewFromFloat(1522.33),
			TotalEmployerCost:   decimal.NewFromFloat(2561.07),
		},
		Calculations: []domain.PayrollCalculation{
			{
				EmployeeID:              "EMP-001",
				EmployeeName:            "Claire Martin",
				Period:                  "2024-06",
				Status:                  domain.StatusCalculated,
				BruteSalary:             decimal.NewFromFloat(1997.49),
				TotalEmployeeDeductions: decimal.NewFromFloat(430.12),
				TotalEmployerCharges:    decimal.NewFromFloat(830.45),
				TotalStateHelp:          decimal.NewFromFloat(266.87),
				EmployerNetCharges:      decimal.NewFromFloat(563.58),
				NetBeforeTax:            decimal.NewFromFloat(1567.37),
				TotalEmployeeTaxes:      decimal.NewFromFloat(45.04),
				NetToPay:                decimal.NewFromFloat(1522.33),
				TotalEmployerCost:       decimal.NewFromFloat(2561.07),
				LeaveBalance:            decimal.NewFromFloat(12.5),
				EmployeeDeductions: []domain.OrganismDeduction{
					{RuleCode: "VIEILLESSE_PLAF", Organism: "URSSAF", Label: "Assurance vieillesse plafonnée", BaseAmount: decimal.NewFromFloat(1997.49), Rate: decimal.NewFromFloat(6.9), Amount: decimal.NewFromFloat(137.83), Tranche: domain.TrancheA},
				},
				Indemnites: []domain.IndemniteApplication{
					{Code: "PANIER_JOUR", Label: "Panier repas (jour)", Amount: decimal.NewFromInt(146)},
				},
				IndemnitesTotals: domain.IndemnitesTotals{NonTaxable: decimal.NewFromInt(146), Total: decimal.NewFromInt(146)},
			},
			{
				EmployeeID: "EMP-002",
				Period:     "2024-06",
				Status:     domain.StatusError,
				Errors:     []string{"calculation failed: division by zero"},
			},
		},
	}
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range FormatterNames() {
		f := GetFormatterByName(name)
		require.NotNil(t, f, "Formatter %s must be registered", name)
		assert.Equal(t, name, f.Name())
	}
	assert.Nil(t, GetFormatterByName("xml"))
}

func TestFormatEuros(t *testing.T) {
	assert.Equal(t, "1997.49 €", FormatEuros(decimal.NewFromFloat(1997.494)))
	assert.Equal(t, "0.00 €", FormatEuros(decimal.Zero))
	assert.Equal(t, "-184.59 €", FormatEuros(decimal.NewFromFloat(-184.587)))
}

func TestCSVFormatter(t *testing.T) {
	data, err := (CSVFormatter{}).Format(sampleReport())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4, "Header, two employees, totals row")

	assert.Equal(t, "EmployeeID", records[0][0])
	assert.Equal(t, "EMP-001", records[1][0])
	assert.Equal(t, "1997.49", records[1][4])
	assert.Equal(t, "1522.33", records[1][10])
	assert.Equal(t, "error", records[2][3])
	assert.Equal(t, "TOTAL", records[3][0])
	assert.Equal(t, "1522.33", records[3][10])
}

func TestJSONFormatter_RoundTrips(t *testing.T) {
	data, err := (JSONFormatter{}).Format(sampleReport())
	require.NoError(t, err)

	var decoded domain.PayrollRunReport
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "run-123", decoded.Run.RunID)
	require.Len(t, decoded.Calculations, 2)
	assert.True(t, decoded.Calculations[0].NetToPay.Equal(decimal.NewFromFloat(1522.33)))
	assert.Equal(t, domain.StatusError, decoded.Calculations[1].Status)
}

func TestConsoleFormatter(t *testing.T) {
	data, err := (ConsoleFormatter{}).Format(sampleReport())
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "EMP-001")
	assert.Contains(t, text, "Claire Martin")
	assert.Contains(t, text, "1522.33")
	assert.Contains(t, text, "division by zero", "Error records surface their messages")
	assert.True(t, strings.Contains(text, "2024-06"))
}

func TestPDFFormatter(t *testing.T) {
	data, err := (PDFFormatter{}).Format(sampleReport())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "Output must be a PDF document")
}
