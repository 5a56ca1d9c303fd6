// Package ocr wraps the Tesseract recognition engine behind a small
// interface so the acquisition loop can be exercised without a native
// Tesseract installation.
package ocr

import (
	"context"
	"image"
)

// PageSegMode mirrors Tesseract's page-segmentation mode numbering.
type PageSegMode int

const (
	PSMOSDOnly             PageSegMode = 0  // Orientation and script detection only
	PSMAutoOSD             PageSegMode = 1  // Automatic with orientation detection
	PSMAutoOnly            PageSegMode = 2  // Automatic, no OSD or OCR
	PSMAuto                PageSegMode = 3  // Fully automatic (Tesseract default)
	PSMSingleColumn        PageSegMode = 4  // Single column of variable-size text
	PSMSingleBlockVertText PageSegMode = 5  // Single block of vertical text
	PSMSingleBlock         PageSegMode = 6  // Single uniform block of text
	PSMSingleLine          PageSegMode = 7  // Single text line
	PSMSingleWord          PageSegMode = 8  // Single word
	PSMCircleWord          PageSegMode = 9  // Single word in a circle
	PSMSingleChar          PageSegMode = 10 // Single character
	PSMSparseText          PageSegMode = 11 // Find as much text as possible
	PSMSparseTextOSD       PageSegMode = 12 // Sparse text with orientation detection
	PSMRawLine             PageSegMode = 13 // Raw line, no hacks
)

// String returns the short name used in logs.
func (m PageSegMode) String() string {
	names := map[PageSegMode]string{
		PSMOSDOnly:             "OSD_ONLY",
		PSMAutoOSD:             "AUTO_OSD",
		PSMAutoOnly:            "AUTO_ONLY",
		PSMAuto:                "AUTO",
		PSMSingleColumn:        "SINGLE_COLUMN",
		PSMSingleBlockVertText: "SINGLE_BLOCK_VERT_TEXT",
		PSMSingleBlock:         "SINGLE_BLOCK",
		PSMSingleLine:          "SINGLE_LINE",
		PSMSingleWord:          "SINGLE_WORD",
		PSMCircleWord:          "CIRCLE_WORD",
		PSMSingleChar:          "SINGLE_CHAR",
		PSMSparseText:          "SPARSE_TEXT",
		PSMSparseTextOSD:       "SPARSE_TEXT_OSD",
		PSMRawLine:             "RAW_LINE",
	}
	if name, ok := names[m]; ok {
		return name
	}
	return "UNKNOWN"
}

// FallbackModes is the priority order tried during OCR fallback. Paystubs
// have a tabular layout, so the uniform-block and column modes come
// first; the sparse modes are last-resort.
var FallbackModes = []PageSegMode{
	PSMSingleBlock,
	PSMSingleColumn,
	PSMAuto,
	PSMAutoOSD,
	PSMSparseText,
	PSMSparseTextOSD,
}

// Request carries the full configuration for a single recognition call.
// The engine holds no mode state between calls; every knob travels with
// the request.
type Request struct {
	Image    image.Image
	Language string
	Mode     PageSegMode
	DPI      int
}

// Engine recognizes text in a single image. Implementations must be safe
// to call sequentially from one goroutine; separate documents use
// separate engine values.
type Engine interface {
	Recognize(ctx context.Context, req Request) (string, error)
}
