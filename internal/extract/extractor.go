// Package extract runs ordered pattern-matching rules over acquired raw
// text to populate the structured paystub. Every sub-extraction is
// independent and best-effort: one group failing to match never blocks
// the others.
package extract

import (
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/paystubkit/paystub-parser/internal/model"
)

// Field-group names reported for manual verification when no pattern
// matches.
const (
	FieldEmployeeName = "Employee Name"
	FieldEmployerName = "Employer Name"
	FieldPayDates     = "Pay Dates"
	FieldPayFrequency = "Pay Frequency"
	FieldEarnings     = "Earnings"
)

// Extractor applies a Rules table to raw document text.
type Extractor struct {
	rules  Rules
	logger *slog.Logger
}

// NewExtractor returns an Extractor over the given rules.
func NewExtractor(rules Rules, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{rules: rules, logger: logger}
}

// Extract populates result.Paystub from text and returns the number of
// field groups that succeeded (identity x2, dates, frequency, earnings,
// deductions). Groups that fail are flagged on the result for manual
// verification; the deductions group is optional and never flagged.
func (e *Extractor) Extract(text string, result *model.ParsingResult) int {
	paystub := result.Paystub
	fields := 0

	if e.extractEmployeeName(text, paystub) {
		fields++
	} else {
		result.AddFieldNeedingVerification(FieldEmployeeName)
	}

	if e.extractEmployerName(text, paystub) {
		fields++
	} else {
		result.AddFieldNeedingVerification(FieldEmployerName)
	}

	if e.extractDates(text, paystub) {
		fields++
	} else {
		result.AddFieldNeedingVerification(FieldPayDates)
	}

	if e.extractPayFrequency(text, paystub) {
		fields++
	} else {
		result.AddFieldNeedingVerification(FieldPayFrequency)
	}

	if n := e.extractEarnings(text, paystub); n > 0 {
		fields++
	} else {
		result.AddFieldNeedingVerification(FieldEarnings)
		result.AddWarning("No earnings could be automatically extracted")
	}

	if n := e.extractDeductions(text, paystub); n > 0 {
		fields++
	}

	return fields
}

func (e *Extractor) extractEmployeeName(text string, paystub *model.Paystub) bool {
	for _, pattern := range e.rules.EmployeePatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			paystub.EmployeeName = strings.TrimSpace(m[1])
			e.logger.Debug("extracted employee name", "name", paystub.EmployeeName)
			return true
		}
	}
	return false
}

func (e *Extractor) extractEmployerName(text string, paystub *model.Paystub) bool {
	for _, pattern := range e.rules.EmployerPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			employer := strings.TrimSpace(m[1])
			if len(employer) > e.rules.EmployerMaxLen {
				employer = employer[:e.rules.EmployerMaxLen]
			}
			paystub.EmployerName = employer
			e.logger.Debug("extracted employer name", "name", employer)
			return true
		}
	}
	return false
}

// extractDates collects every parseable date token anywhere in the text,
// sorts ascending, and assigns positionally: the chronologically last
// date is the pay date, the next-to-last the period end, the one before
// that the period start. Unrelated dates elsewhere in the document can
// shift the assignment; the heuristic is kept as-is.
func (e *Extractor) extractDates(text string, paystub *model.Paystub) bool {
	var dates []time.Time
	for _, m := range e.rules.DateToken.FindAllStringSubmatch(text, -1) {
		if d, ok := e.parseDate(m[1]); ok {
			dates = append(dates, d)
		}
	}
	if len(dates) == 0 {
		return false
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	payDate := dates[len(dates)-1]
	paystub.PayDate = &payDate
	e.logger.Debug("extracted pay date", "date", payDate.Format("2006-01-02"))

	if len(dates) >= 2 {
		end := dates[len(dates)-2]
		paystub.PayPeriodEndDate = &end
	}
	if len(dates) >= 3 {
		start := dates[len(dates)-3]
		paystub.PayPeriodStartDate = &start
	}

	return true
}

func (e *Extractor) parseDate(token string) (time.Time, bool) {
	for _, layout := range e.rules.DateLayouts {
		if d, err := time.Parse(layout, token); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// extractPayFrequency does ordered substring checks. The order matters:
// "bi-weekly" contains "weekly" and "semi-monthly" contains "monthly",
// so the compound frequencies are tested first and the simple ones carry
// a negative guard.
func (e *Extractor) extractPayFrequency(text string, paystub *model.Paystub) bool {
	lower := strings.ToLower(text)

	var freq model.PayFrequency
	switch {
	case strings.Contains(lower, "bi-weekly") || strings.Contains(lower, "biweekly") ||
		strings.Contains(lower, "bi weekly"):
		freq = model.PayFrequencyBiWeekly
	case strings.Contains(lower, "semi-monthly") || strings.Contains(lower, "semimonthly") ||
		strings.Contains(lower, "semi monthly"):
		freq = model.PayFrequencySemiMonthly
	case strings.Contains(lower, "monthly") && !strings.Contains(lower, "semi"):
		freq = model.PayFrequencyMonthly
	case strings.Contains(lower, "weekly") && !strings.Contains(lower, "bi"):
		freq = model.PayFrequencyWeekly
	default:
		return false
	}

	paystub.PayFrequency = &freq
	e.logger.Debug("extracted pay frequency", "frequency", freq)
	return true
}

// extractEarnings scans every line of the document for a label followed
// by exactly two currency amounts, discarding header-like labels.
func (e *Extractor) extractEarnings(text string, paystub *model.Paystub) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		m := e.rules.LinePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		label := strings.TrimSpace(m[1])
		if e.isLikelyHeader(label) {
			continue
		}

		current, ok1 := parseCurrency(m[2])
		ytd, ok2 := parseCurrency(m[3])
		if !ok1 || !ok2 {
			e.logger.Warn("failed to parse currency in line", "line", line)
			continue
		}

		paystub.AddEarning(model.Earning{
			PayTypeName:   label,
			Category:      e.categorize(label),
			CurrentAmount: current,
			YTDAmount:     ytd,
		})
		e.logger.Debug("extracted earning", "label", label, "current", current, "ytd", ytd)
		count++
	}
	return count
}

// extractDeductions only looks inside the bounded deductions region:
// lines after one containing a deduction start word, up to the first
// subsequent line containing a stop word.
func (e *Extractor) extractDeductions(text string, paystub *model.Paystub) int {
	count := 0
	inSection := false

	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)

		if !inSection && containsAny(lower, e.rules.DeductionStartWords) {
			inSection = true
			continue
		}
		if inSection && containsAny(lower, e.rules.DeductionStopWords) {
			break
		}
		if !inSection {
			continue
		}

		m := e.rules.LinePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		label := strings.TrimSpace(m[1])
		if e.isLikelyHeader(label) {
			continue
		}

		current, ok1 := parseCurrency(m[2])
		ytd, ok2 := parseCurrency(m[3])
		if !ok1 || !ok2 {
			e.logger.Warn("failed to parse deduction currency in line", "line", line)
			continue
		}

		paystub.AddDeduction(model.Deduction{
			Name:          label,
			CurrentAmount: current,
			YTDAmount:     ytd,
		})
		e.logger.Debug("extracted deduction", "label", label, "current", current, "ytd", ytd)
		count++
	}
	return count
}

func (e *Extractor) categorize(label string) model.PayCategory {
	lower := strings.ToLower(label)
	for _, kw := range e.rules.CategoryKeywords {
		if strings.Contains(lower, kw.Keyword) {
			return kw.Category
		}
	}
	return model.PayCategoryOther
}

func (e *Extractor) isLikelyHeader(label string) bool {
	if len(label) < e.rules.MinLabelLen {
		return true
	}
	lower := strings.ToLower(label)
	return containsAny(lower, e.rules.HeaderBlacklist)
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// parseCurrency converts a currency token to a decimal, stripping the
// dollar sign, spaces, and thousands separators.
func parseCurrency(token string) (decimal.Decimal, bool) {
	cleaned := strings.NewReplacer("$", "", " ", "", ",", "").Replace(strings.TrimSpace(token))
	if cleaned == "" {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
