package model

// PayCategory classifies an earning line for downstream income analysis.
// BaseWage feeds expected monthly income and YTD pacing; Variable income
// (overtime, commission, bonus) is averaged separately.
type PayCategory string

const (
	PayCategoryBaseWage PayCategory = "BASE_WAGE"
	PayCategoryVariable PayCategory = "VARIABLE"
	PayCategoryOther    PayCategory = "OTHER"
)

// DisplayName returns the human-readable name for the category.
func (c PayCategory) DisplayName() string {
	switch c {
	case PayCategoryBaseWage:
		return "Base Wage"
	case PayCategoryVariable:
		return "Variable Income"
	default:
		return "Other"
	}
}

// PayFrequency is how often an employee is paid. Each frequency maps to a
// fixed number of pay periods per year, used when converting to monthly
// income.
type PayFrequency string

const (
	PayFrequencyWeekly      PayFrequency = "WEEKLY"
	PayFrequencyBiWeekly    PayFrequency = "BI_WEEKLY"
	PayFrequencySemiMonthly PayFrequency = "SEMI_MONTHLY"
	PayFrequencyMonthly     PayFrequency = "MONTHLY"
)

// PeriodsPerYear returns the number of pay periods in a calendar year for
// this frequency.
func (f PayFrequency) PeriodsPerYear() int {
	switch f {
	case PayFrequencyWeekly:
		return 52
	case PayFrequencyBiWeekly:
		return 26
	case PayFrequencySemiMonthly:
		return 24
	case PayFrequencyMonthly:
		return 12
	default:
		return 0
	}
}

// DisplayName returns the human-readable name for the frequency.
func (f PayFrequency) DisplayName() string {
	switch f {
	case PayFrequencyWeekly:
		return "Weekly"
	case PayFrequencyBiWeekly:
		return "Bi-Weekly"
	case PayFrequencySemiMonthly:
		return "Semi-Monthly"
	case PayFrequencyMonthly:
		return "Monthly"
	default:
		return string(f)
	}
}

// Confidence rates how much of a document's expected fields were extracted.
type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
	ConfidenceFailed Confidence = "FAILED"
)

// DisplayName returns the short human-readable label for the confidence level.
func (c Confidence) DisplayName() string {
	switch c {
	case ConfidenceHigh:
		return "High"
	case ConfidenceMedium:
		return "Medium"
	case ConfidenceLow:
		return "Low"
	case ConfidenceFailed:
		return "Failed"
	default:
		return string(c)
	}
}

// Description returns reviewer guidance for the confidence level.
func (c Confidence) Description() string {
	switch c {
	case ConfidenceHigh:
		return "Most fields extracted successfully"
	case ConfidenceMedium:
		return "Some fields extracted, verification recommended"
	case ConfidenceLow:
		return "Minimal extraction, manual entry required"
	case ConfidenceFailed:
		return "Parsing failed"
	default:
		return ""
	}
}
