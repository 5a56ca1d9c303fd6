// Package model defines the structured paystub data extracted by the
// parsing pipeline and the result envelope returned to callers.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Earning is one itemized pay line from the earnings table.
type Earning struct {
	PayTypeName   string          `json:"pay_type_name"`
	Category      PayCategory     `json:"category"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	YTDAmount     decimal.Decimal `json:"ytd_amount"`
}

// Deduction is one itemized line from the deductions section.
type Deduction struct {
	Name          string          `json:"name"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	YTDAmount     decimal.Decimal `json:"ytd_amount"`
}

// Paystub aggregates everything extracted from a single document. Fields
// the extractor could not populate stay unset; nothing is ever discarded
// part-way through a parse.
type Paystub struct {
	EmployeeName       string        `json:"employee_name,omitempty"`
	EmployerName       string        `json:"employer_name,omitempty"`
	PayDate            *time.Time    `json:"pay_date,omitempty"`
	PayPeriodStartDate *time.Time    `json:"pay_period_start_date,omitempty"`
	PayPeriodEndDate   *time.Time    `json:"pay_period_end_date,omitempty"`
	PayFrequency       *PayFrequency `json:"pay_frequency,omitempty"`
	Earnings           []Earning     `json:"earnings"`
	Deductions         []Deduction   `json:"deductions"`
}

// AddEarning appends an earning line.
func (p *Paystub) AddEarning(e Earning) {
	p.Earnings = append(p.Earnings, e)
}

// AddDeduction appends a deduction line.
func (p *Paystub) AddDeduction(d Deduction) {
	p.Deductions = append(p.Deductions, d)
}

// TotalCurrentEarnings sums the current amount of every earning line.
func (p *Paystub) TotalCurrentEarnings() decimal.Decimal {
	total := decimal.Zero
	for _, e := range p.Earnings {
		total = total.Add(e.CurrentAmount)
	}
	return total
}

// TotalYTDEarnings sums the year-to-date amount of every earning line.
func (p *Paystub) TotalYTDEarnings() decimal.Decimal {
	total := decimal.Zero
	for _, e := range p.Earnings {
		total = total.Add(e.YTDAmount)
	}
	return total
}

// TotalCurrentDeductions sums the current amount of every deduction line.
func (p *Paystub) TotalCurrentDeductions() decimal.Decimal {
	total := decimal.Zero
	for _, d := range p.Deductions {
		total = total.Add(d.CurrentAmount)
	}
	return total
}

// TotalYTDDeductions sums the year-to-date amount of every deduction line.
func (p *Paystub) TotalYTDDeductions() decimal.Decimal {
	total := decimal.Zero
	for _, d := range p.Deductions {
		total = total.Add(d.YTDAmount)
	}
	return total
}

// BaseWageEarnings returns the earning lines categorized as base wage.
func (p *Paystub) BaseWageEarnings() []Earning {
	return p.earningsByCategory(PayCategoryBaseWage)
}

// VariableEarnings returns the earning lines categorized as variable income.
func (p *Paystub) VariableEarnings() []Earning {
	return p.earningsByCategory(PayCategoryVariable)
}

func (p *Paystub) earningsByCategory(c PayCategory) []Earning {
	var out []Earning
	for _, e := range p.Earnings {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

// NetCurrentPay is total current earnings minus total current deductions.
func (p *Paystub) NetCurrentPay() decimal.Decimal {
	return p.TotalCurrentEarnings().Sub(p.TotalCurrentDeductions())
}
