// Package acquire obtains raw text from a document. It tries the direct
// text layer first and falls back to rendering pages and running OCR,
// walking an explicit ladder of resolutions, image variants, and page
// segmentation strategies until one yields usable text or every option is
// exhausted.
package acquire

import (
	"context"
	"errors"
	"image"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/paystubkit/paystub-parser/internal/imageproc"
	"github.com/paystubkit/paystub-parser/internal/ocr"
	"github.com/paystubkit/paystub-parser/internal/render"
)

// MinMeaningfulText is the minimum trimmed length for extracted text to
// count as real content rather than boilerplate or whitespace.
const MinMeaningfulText = 10

// ErrNoText is the hard acquisition failure: nothing usable came back
// from the direct read or any OCR attempt.
var ErrNoText = errors.New("no meaningful text extracted via direct read or OCR")

// Variant marks which preprocessing form of a page image an OCR attempt
// ran against.
type Variant string

const (
	VariantBinarized Variant = "binarized"
	VariantOriginal  Variant = "original"
)

// Attempt records one OCR try. A failed strategy is an expected outcome,
// not an exception: the loop inspects Text and Err and moves on.
type Attempt struct {
	Page    int
	DPI     int
	Variant Variant
	Mode    ocr.PageSegMode
	Chars   int
	Err     error
}

// Succeeded reports whether the attempt produced non-empty text.
func (a Attempt) Succeeded() bool {
	return a.Err == nil && a.Chars > 0
}

// Outcome is the result of one acquisition run.
type Outcome struct {
	Text     string
	Method   string // "direct", "ocr", or "image-ocr"
	Attempts []Attempt
	Err      error
}

// Acquirer runs the acquisition state machine. One Acquirer serves one
// document at a time; separate documents get separate values.
type Acquirer struct {
	direct   DirectExtractor
	renderer render.Renderer
	engine   ocr.Engine
	language string
	dpis     []int
	maxPages int
	logger   *slog.Logger
}

// Options configures an Acquirer.
type Options struct {
	Language string // OCR language, e.g. "eng"
	DPIs     []int  // render resolutions in preference order
	MaxPages int    // 0 means no limit
	Logger   *slog.Logger
}

// NewAcquirer wires an Acquirer from its collaborators.
func NewAcquirer(direct DirectExtractor, renderer render.Renderer, engine ocr.Engine, opts Options) *Acquirer {
	if opts.Language == "" {
		opts.Language = "eng"
	}
	if len(opts.DPIs) == 0 {
		opts.DPIs = []int{300, 200, 150}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Acquirer{
		direct:   direct,
		renderer: renderer,
		engine:   engine,
		language: opts.Language,
		dpis:     opts.DPIs,
		maxPages: opts.MaxPages,
		logger:   opts.Logger,
	}
}

// Acquire obtains raw text for the document at path. PDF inputs try the
// text layer first; raster image inputs go straight to OCR. The returned
// Outcome carries either text of at least MinMeaningfulText trimmed
// characters or Err set to ErrNoText.
func (a *Acquirer) Acquire(ctx context.Context, path string) Outcome {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return a.acquirePDF(ctx, path)
	}
	return a.acquireImageFile(ctx, path)
}

func (a *Acquirer) acquirePDF(ctx context.Context, path string) Outcome {
	text, err := a.direct.ExtractText(path)
	if err != nil {
		a.logger.Warn("direct text extraction failed", "path", path, "error", err)
	} else if len(strings.TrimSpace(text)) >= MinMeaningfulText {
		a.logger.Debug("direct extraction succeeded", "path", path, "chars", len(text))
		return Outcome{Text: text, Method: "direct"}
	} else {
		a.logger.Info("no meaningful text layer, falling back to OCR",
			"path", path, "trimmed_chars", len(strings.TrimSpace(text)))
	}

	return a.ocrFallback(ctx, path)
}

// ocrFallback renders each page and runs the OCR strategy ladder over it.
// Pages that recover nothing contribute nothing; the run only fails hard
// when the concatenation of every page stays under MinMeaningfulText.
func (a *Acquirer) ocrFallback(ctx context.Context, path string) Outcome {
	outcome := Outcome{Method: "ocr"}

	pageCount, err := a.renderer.PageCount(path)
	if err != nil {
		a.logger.Error("page count failed", "path", path, "error", err)
		outcome.Err = ErrNoText
		return outcome
	}
	if a.maxPages > 0 && pageCount > a.maxPages {
		pageCount = a.maxPages
	}

	var builder strings.Builder
	for pageIndex := 0; pageIndex < pageCount; pageIndex++ {
		if ctx.Err() != nil {
			break
		}

		img, dpi := a.renderPage(ctx, path, pageIndex)
		if img == nil {
			a.logger.Warn("page could not be rendered at any DPI", "path", path, "page", pageIndex+1)
			continue
		}

		text, attempts := a.ocrImage(ctx, img, pageIndex, dpi)
		outcome.Attempts = append(outcome.Attempts, attempts...)
		if text != "" {
			builder.WriteString(text)
			builder.WriteString("\n")
		}
	}

	outcome.Text = builder.String()
	if len(strings.TrimSpace(outcome.Text)) < MinMeaningfulText {
		outcome.Err = ErrNoText
	}
	return outcome
}

// renderPage walks the DPI preference list and returns the first render
// that is not blank. When every render is blank the last one is kept
// anyway so the OCR ladder still gets a chance at it.
func (a *Acquirer) renderPage(ctx context.Context, path string, pageIndex int) (image.Image, int) {
	var img image.Image
	var usedDPI int

	for _, dpi := range a.dpis {
		rendered, err := a.renderer.RenderPage(ctx, path, pageIndex, dpi)
		if err != nil {
			a.logger.Warn("render failed", "page", pageIndex+1, "dpi", dpi, "error", err)
			continue
		}
		img, usedDPI = rendered, dpi
		if !imageproc.IsBlank(rendered) {
			break
		}
		a.logger.Warn("rendered page appears blank", "page", pageIndex+1, "dpi", dpi)
	}

	return img, usedDPI
}

func (a *Acquirer) acquireImageFile(ctx context.Context, path string) Outcome {
	outcome := Outcome{Method: "image-ocr"}

	img, err := render.LoadImageFile(path)
	if err != nil {
		a.logger.Error("image load failed", "path", path, "error", err)
		outcome.Err = ErrNoText
		return outcome
	}

	text, attempts := a.ocrImage(ctx, img, 0, 0)
	outcome.Attempts = attempts
	outcome.Text = text
	if len(strings.TrimSpace(text)) < MinMeaningfulText {
		outcome.Err = ErrNoText
	}
	return outcome
}

// ocrImage runs the strategy ladder for one page image: the binarized
// variant through every segmentation mode, then the original. The first
// attempt returning non-empty text wins.
func (a *Acquirer) ocrImage(ctx context.Context, img image.Image, pageIndex, dpi int) (string, []Attempt) {
	variants := []struct {
		variant Variant
		img     image.Image
	}{
		{VariantBinarized, imageproc.Binarize(img)},
		{VariantOriginal, img},
	}

	var attempts []Attempt
	for _, v := range variants {
		for _, mode := range ocr.FallbackModes {
			if ctx.Err() != nil {
				return "", attempts
			}

			text, err := a.engine.Recognize(ctx, ocr.Request{
				Image:    v.img,
				Language: a.language,
				Mode:     mode,
				DPI:      dpi,
			})
			attempt := Attempt{
				Page:    pageIndex,
				DPI:     dpi,
				Variant: v.variant,
				Mode:    mode,
				Chars:   len(text),
				Err:     err,
			}
			attempts = append(attempts, attempt)

			if err != nil {
				a.logger.Warn("ocr attempt failed",
					"page", pageIndex+1, "variant", v.variant, "mode", mode.String(), "error", err)
				continue
			}
			if text == "" {
				a.logger.Debug("ocr attempt empty",
					"page", pageIndex+1, "variant", v.variant, "mode", mode.String())
				continue
			}

			a.logger.Info("ocr attempt succeeded",
				"page", pageIndex+1, "variant", v.variant, "mode", mode.String(), "chars", len(text))
			return text, attempts
		}
	}

	return "", attempts
}
