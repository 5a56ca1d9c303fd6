package parser

import "github.com/paystubkit/paystub-parser/internal/model"

// scoreConfidence reduces the extraction outcome to a confidence tier.
// Any recorded hard error forces Failed; otherwise the tier is a
// deterministic rule table over the number of successful field groups and
// the number of extracted earnings.
func scoreConfidence(result *model.ParsingResult, fieldsExtracted int) {
	earnings := len(result.Paystub.Earnings)

	switch {
	case result.HasErrors():
		result.Confidence = model.ConfidenceFailed
	case fieldsExtracted >= 5 && earnings >= 2:
		result.Confidence = model.ConfidenceHigh
	case fieldsExtracted >= 3 && earnings >= 1:
		result.Confidence = model.ConfidenceMedium
	default:
		result.Confidence = model.ConfidenceLow
	}

	if result.Confidence == model.ConfidenceLow {
		result.AddWarning("Low confidence result; manual review recommended")
	}
}
