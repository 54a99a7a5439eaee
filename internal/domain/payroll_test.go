package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestWorkedHoursBreakdown_PaidHours(t *testing.T) {
	hours := WorkedHoursBreakdown{
		NormalHours:  decimal.NewFromInt(140),
		NightHours:   decimal.NewFromInt(10),
		SundayHours:  decimal.NewFromInt(4),
		HolidayHours: decimal.NewFromInt(7),
		Overtime25:   decimal.NewFromInt(8),
	}

	assert.True(t, hours.PaidHours().Equal(decimal.NewFromInt(161)), "Paid hours exclude overtime")
	assert.True(t, hours.OvertimeHours().Equal(decimal.NewFromInt(8)))
}

func TestWorkedHoursBreakdown_Empty(t *testing.T) {
	var hours WorkedHoursBreakdown
	assert.True(t, hours.PaidHours().IsZero())
	assert.True(t, hours.OvertimeHours().IsZero())
}

func TestOrganismRule_RateFor(t *testing.T) {
	employee := decimal.NewFromFloat(6.9)
	employer := decimal.NewFromFloat(8.55)
	rule := OrganismRule{RateEmployee: &employee, RateEmployer: &employer}

	assert.Equal(t, &employee, rule.RateFor(SideEmployee))
	assert.Equal(t, &employer, rule.RateFor(SideEmployer))
	assert.Nil(t, rule.RateFor(SideBoth), "A side must be resolved before asking for a rate")
}
