package extract

import (
	"regexp"

	"github.com/paystubkit/paystub-parser/internal/model"
)

// currencyToken matches one currency-shaped amount: an optional dollar
// sign, then either a plain decimal amount or a comma-grouped one. The
// plain-decimal alternative comes first so "1600.00" captures whole
// rather than stopping at the third digit.
const currencyToken = `\$?\s*(\d+\.\d{2}|\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`

// CategoryKeyword maps a substring of a pay-type label to its category.
// The table is ordered; the first keyword found in a label wins.
type CategoryKeyword struct {
	Keyword  string
	Category model.PayCategory
}

// Rules is the read-only configuration for the field extractor: pattern
// lists, date layouts, and keyword tables. Built once at startup and safe
// for concurrent read.
type Rules struct {
	// EmployeePatterns are tried in order; the first match wins. Each
	// pattern captures the name in group 1.
	EmployeePatterns []*regexp.Regexp
	// EmployerPatterns work like EmployeePatterns; the captured value is
	// additionally capped at EmployerMaxLen.
	EmployerPatterns []*regexp.Regexp
	EmployerMaxLen   int

	// DateToken finds candidate date substrings anywhere in the text.
	DateToken *regexp.Regexp
	// DateLayouts are Go time layouts tried in order per token.
	DateLayouts []string

	// LinePattern matches one table row: a label followed by exactly two
	// currency tokens.
	LinePattern *regexp.Regexp
	// HeaderBlacklist suppresses table header rows posing as data rows: a
	// candidate label containing any of these words is discarded.
	HeaderBlacklist []string
	// MinLabelLen discards degenerate one-character labels.
	MinLabelLen int

	// CategoryKeywords classifies accepted earning labels.
	CategoryKeywords []CategoryKeyword

	// DeductionStartWords open the deductions region; DeductionStopWords
	// close it.
	DeductionStartWords []string
	DeductionStopWords  []string
}

// DefaultRules returns the standard rule set covering common paystub
// layouts (ADP, Paychex, and similar providers).
func DefaultRules() Rules {
	return Rules{
		EmployeePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)Employee\s*:?\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`),
			regexp.MustCompile(`(?i)Employee\s+Name\s*:?\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`),
			regexp.MustCompile(`(?i)Name\s*:?\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`),
		},
		EmployerPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)Employer\s*:?\s*([A-Z][A-Za-z0-9\s&,\.]+?)(?:\n|Pay)`),
			regexp.MustCompile(`(?i)Company\s*:?\s*([A-Z][A-Za-z0-9\s&,\.]+?)(?:\n|Pay)`),
		},
		EmployerMaxLen: 50,

		DateToken: regexp.MustCompile(`\b(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})\b`),
		DateLayouts: []string{
			"01/02/2006",
			"01-02-2006",
			"1/2/2006",
			"01/02/06",
			"1/2/06",
			"2006-01-02",
		},

		LinePattern: regexp.MustCompile(`([A-Za-z\s]+?)\s+` + currencyToken + `\s+` + currencyToken),
		HeaderBlacklist: []string{
			"description",
			"current",
			"ytd",
			"rate",
			"hours",
			"amount",
		},
		MinLabelLen: 2,

		CategoryKeywords: []CategoryKeyword{
			{"regular", model.PayCategoryBaseWage},
			{"salary", model.PayCategoryBaseWage},
			{"hourly", model.PayCategoryBaseWage},
			{"holiday", model.PayCategoryBaseWage},
			{"pto", model.PayCategoryBaseWage},
			{"vacation", model.PayCategoryBaseWage},
			{"sick", model.PayCategoryBaseWage},
			{"personal", model.PayCategoryBaseWage},
			{"overtime", model.PayCategoryVariable},
			{"ot", model.PayCategoryVariable},
			{"commission", model.PayCategoryVariable},
			{"bonus", model.PayCategoryVariable},
			{"incentive", model.PayCategoryVariable},
		},

		DeductionStartWords: []string{"deduction", "withholding"},
		DeductionStopWords:  []string{"net pay", "total"},
	}
}
