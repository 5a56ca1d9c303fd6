package acquire

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// DirectExtractor pulls the embedded text layer out of a PDF without any
// rendering or recognition.
type DirectExtractor interface {
	ExtractText(path string) (string, error)
}

// PDFTextExtractor implements DirectExtractor over the PDF text layer.
type PDFTextExtractor struct {
	maxTextSize int
}

// NewPDFTextExtractor returns a direct extractor capped at 10MB of text.
func NewPDFTextExtractor() *PDFTextExtractor {
	return &PDFTextExtractor{maxTextSize: 10 * 1024 * 1024}
}

// ExtractText concatenates the plain text of every page, separated by
// page breaks. A page that fails to yield text is skipped; only a
// document that cannot be opened is an error.
func (e *PDFTextExtractor) ExtractText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open PDF: %w", err)
	}
	defer f.Close()

	var builder strings.Builder
	total := 0

	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			// Continue with other pages even if one fails
			continue
		}

		if total+len(content) > e.maxTextSize {
			remaining := e.maxTextSize - total
			if remaining > 0 {
				builder.WriteString(content[:remaining])
			}
			break
		}

		builder.WriteString(content)
		total += len(content)

		if pageNum < reader.NumPage() {
			builder.WriteString("\n")
		}
	}

	return builder.String(), nil
}
