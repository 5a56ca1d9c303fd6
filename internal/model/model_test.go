package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPaystubTotals(t *testing.T) {
	p := &Paystub{}
	p.AddEarning(Earning{PayTypeName: "Regular", Category: PayCategoryBaseWage, CurrentAmount: dec("1600.00"), YTDAmount: dec("8000.00")})
	p.AddEarning(Earning{PayTypeName: "Overtime", Category: PayCategoryVariable, CurrentAmount: dec("200.00"), YTDAmount: dec("800.00")})
	p.AddDeduction(Deduction{Name: "Federal Tax", CurrentAmount: dec("240.00"), YTDAmount: dec("1200.00")})
	p.AddDeduction(Deduction{Name: "Medical", CurrentAmount: dec("85.00"), YTDAmount: dec("425.00")})

	assert.True(t, p.TotalCurrentEarnings().Equal(dec("1800.00")))
	assert.True(t, p.TotalYTDEarnings().Equal(dec("8800.00")))
	assert.True(t, p.TotalCurrentDeductions().Equal(dec("325.00")))
	assert.True(t, p.TotalYTDDeductions().Equal(dec("1625.00")))
	assert.True(t, p.NetCurrentPay().Equal(dec("1475.00")))
}

func TestPaystubTotals_Empty(t *testing.T) {
	p := &Paystub{}
	assert.True(t, p.TotalCurrentEarnings().IsZero())
	assert.True(t, p.NetCurrentPay().IsZero())
}

func TestEarningsByCategory(t *testing.T) {
	p := &Paystub{}
	p.AddEarning(Earning{PayTypeName: "Regular", Category: PayCategoryBaseWage})
	p.AddEarning(Earning{PayTypeName: "Holiday", Category: PayCategoryBaseWage})
	p.AddEarning(Earning{PayTypeName: "Bonus", Category: PayCategoryVariable})
	p.AddEarning(Earning{PayTypeName: "Reimbursement", Category: PayCategoryOther})

	base := p.BaseWageEarnings()
	variable := p.VariableEarnings()

	assert.Len(t, base, 2)
	assert.Len(t, variable, 1)
	assert.Equal(t, "Bonus", variable[0].PayTypeName)
}

func TestPayFrequencyPeriodsPerYear(t *testing.T) {
	assert.Equal(t, 52, PayFrequencyWeekly.PeriodsPerYear())
	assert.Equal(t, 26, PayFrequencyBiWeekly.PeriodsPerYear())
	assert.Equal(t, 24, PayFrequencySemiMonthly.PeriodsPerYear())
	assert.Equal(t, 12, PayFrequencyMonthly.PeriodsPerYear())
	assert.Equal(t, 0, PayFrequency("QUARTERLY").PeriodsPerYear())
}

func TestDisplayNames(t *testing.T) {
	assert.Equal(t, "Base Wage", PayCategoryBaseWage.DisplayName())
	assert.Equal(t, "Variable Income", PayCategoryVariable.DisplayName())
	assert.Equal(t, "Bi-Weekly", PayFrequencyBiWeekly.DisplayName())
	assert.Equal(t, "High", ConfidenceHigh.DisplayName())
	assert.Equal(t, "Parsing failed", ConfidenceFailed.Description())
}

func TestNewParsingResult_Defaults(t *testing.T) {
	r := NewParsingResult()

	assert.NotNil(t, r.Paystub)
	assert.Equal(t, ConfidenceLow, r.Confidence)
	assert.False(t, r.HasErrors())
	assert.False(t, r.HasWarnings())
	assert.True(t, r.Successful())
}

func TestAddError_ForcesFailed(t *testing.T) {
	r := NewParsingResult()
	r.Confidence = ConfidenceHigh

	r.AddError("document unreadable")

	assert.Equal(t, ConfidenceFailed, r.Confidence)
	assert.True(t, r.HasErrors())
	assert.False(t, r.Successful())
}

func TestAddFieldNeedingVerification_DeDuplicates(t *testing.T) {
	r := NewParsingResult()

	r.AddFieldNeedingVerification("Employee Name")
	r.AddFieldNeedingVerification("Pay Date")
	r.AddFieldNeedingVerification("Employee Name")

	assert.Equal(t, []string{"Employee Name", "Pay Date"}, r.FieldsNeedingVerification)
}
