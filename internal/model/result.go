package model

import "slices"

// ParsingResult is the sole output of a parsing pass: the extracted
// paystub, a confidence rating, and everything a reviewer needs to judge
// it. Treat as a value object once returned.
type ParsingResult struct {
	Paystub                   *Paystub   `json:"paystub"`
	Confidence                Confidence `json:"confidence"`
	FieldsNeedingVerification []string   `json:"fields_needing_verification"`
	Warnings                  []string   `json:"warnings"`
	Errors                    []string   `json:"errors"`
	RawText                   string     `json:"raw_text,omitempty"`
}

// NewParsingResult returns an empty result with an empty paystub and Low
// confidence.
func NewParsingResult() *ParsingResult {
	return &ParsingResult{
		Paystub:    &Paystub{},
		Confidence: ConfidenceLow,
	}
}

// AddError records a hard error. A result with errors is always Failed;
// the confidence tier is forced here so the invariant cannot be missed by
// a caller.
func (r *ParsingResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Confidence = ConfidenceFailed
}

// AddWarning records a non-blocking warning for the reviewer.
func (r *ParsingResult) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// AddFieldNeedingVerification flags a field no extraction pattern matched.
// Order is preserved; duplicates are dropped.
func (r *ParsingResult) AddFieldNeedingVerification(field string) {
	if slices.Contains(r.FieldsNeedingVerification, field) {
		return
	}
	r.FieldsNeedingVerification = append(r.FieldsNeedingVerification, field)
}

// HasErrors reports whether any hard error was recorded.
func (r *ParsingResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings reports whether any warning was recorded.
func (r *ParsingResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Successful reports whether the parse produced a usable result.
func (r *ParsingResult) Successful() bool {
	return r.Confidence != ConfidenceFailed
}
