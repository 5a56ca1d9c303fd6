package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// TesseractEngine implements Engine with the gosseract client. A fresh
// client is created per call so no segmentation-mode or language state
// survives between attempts.
type TesseractEngine struct {
	// DataPath is the tessdata directory holding *.traineddata files.
	// Empty means the Tesseract build default.
	DataPath string

	clientFactory func() *gosseract.Client
}

// NewTesseractEngine returns an engine reading trained data from dataPath.
func NewTesseractEngine(dataPath string) *TesseractEngine {
	return &TesseractEngine{
		DataPath:      dataPath,
		clientFactory: gosseract.NewClient,
	}
}

// Recognize runs Tesseract over the request image and returns the
// recognized text, trimmed. An empty string with nil error means the
// engine ran but found nothing.
func (e *TesseractEngine) Recognize(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if req.Image == nil {
		return "", fmt.Errorf("nil image")
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, req.Image); err != nil {
		return "", fmt.Errorf("encode image: %w", err)
	}

	client := e.clientFactory()
	defer client.Close()

	if e.DataPath != "" {
		if err := client.SetTessdataPrefix(e.DataPath); err != nil {
			return "", fmt.Errorf("set tessdata prefix: %w", err)
		}
	}
	if req.Language != "" {
		if err := client.SetLanguage(req.Language); err != nil {
			return "", fmt.Errorf("set language: %w", err)
		}
	}
	if err := client.SetPageSegMode(gosseract.PageSegMode(req.Mode)); err != nil {
		return "", fmt.Errorf("set page segmentation mode: %w", err)
	}
	if req.DPI > 0 {
		if err := client.SetVariable(gosseract.SettableVariable("user_defined_dpi"), fmt.Sprint(req.DPI)); err != nil {
			return "", fmt.Errorf("set dpi: %w", err)
		}
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize: %w", err)
	}

	return strings.TrimSpace(text), nil
}
