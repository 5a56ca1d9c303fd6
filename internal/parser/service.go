// Package parser orchestrates one extraction pass per document: text
// acquisition, field extraction, and confidence scoring, assembled into a
// single ParsingResult.
package parser

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/paystubkit/paystub-parser/internal/acquire"
	"github.com/paystubkit/paystub-parser/internal/config"
	"github.com/paystubkit/paystub-parser/internal/extract"
	"github.com/paystubkit/paystub-parser/internal/model"
	"github.com/paystubkit/paystub-parser/internal/ocr"
	"github.com/paystubkit/paystub-parser/internal/render"
)

// TextAcquirer is the acquisition collaborator; satisfied by
// acquire.Acquirer and by stubs in tests.
type TextAcquirer interface {
	Acquire(ctx context.Context, path string) acquire.Outcome
}

// Service parses paystub documents. One Service handles one document at a
// time; run separate Services on separate goroutines for parallel
// documents.
type Service struct {
	validator *Validator
	acquirer  TextAcquirer
	extractor *extract.Extractor
	logger    *slog.Logger
}

// NewService wires a Service from configuration. Tessdata resolution
// failure is not fatal here: direct text extraction still works, and the
// per-attempt OCR failures it causes are soft.
func NewService(cfg *config.Config, logger *slog.Logger) (*Service, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	dataPath, err := ocr.EnsureTessdata(cfg.TessdataDir, cfg.OCRLanguage, logger)
	if err != nil {
		logger.Warn("tessdata unavailable, OCR fallback may fail", "error", err)
	}

	acquirer := acquire.NewAcquirer(
		acquire.NewPDFTextExtractor(),
		render.NewPopplerRenderer(cfg.PdftoppmPath),
		ocr.NewTesseractEngine(dataPath),
		acquire.Options{
			Language: cfg.OCRLanguage,
			DPIs:     cfg.RenderDPIs,
			MaxPages: cfg.MaxPages,
			Logger:   logger,
		},
	)

	return &Service{
		validator: NewValidator(cfg.MaxFileSize),
		acquirer:  acquirer,
		extractor: extract.NewExtractor(extract.DefaultRules(), logger),
		logger:    logger,
	}, nil
}

// ParseFile runs the full pipeline over one document. The error return
// is reserved for caller contract violations (missing file, unsupported
// type); every parsing outcome, including total failure, is reported
// through the ParsingResult.
func (s *Service) ParseFile(ctx context.Context, path string) (*model.ParsingResult, error) {
	if err := s.validator.ValidateInput(path); err != nil {
		return nil, err
	}

	s.logger.Info("starting document parse", "path", path)
	result := model.NewParsingResult()
	s.parse(ctx, path, result)
	s.logger.Info("document parse completed",
		"path", path,
		"confidence", result.Confidence,
		"earnings", len(result.Paystub.Earnings),
		"warnings", len(result.Warnings))

	return result, nil
}

// parse performs one pass. A panic escaping a sub-component is recorded
// as a hard error: no partial success is reported once a hard error
// exists.
func (s *Service) parse(ctx context.Context, path string, result *model.ParsingResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic during parsing", "path", path, "panic", r)
			result.AddError(fmt.Sprintf("parsing error: %v", r))
		}
	}()

	outcome := s.acquirer.Acquire(ctx, path)
	result.RawText = outcome.Text
	if outcome.Err != nil {
		result.AddError("No meaningful text could be extracted from the document " +
			"(tried both text extraction and OCR). The file may be blank, corrupted, " +
			"or use an unsupported format.")
		return
	}

	fields := s.extractor.Extract(outcome.Text, result)
	scoreConfidence(result, fields)
}
