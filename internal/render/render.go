// Package render rasterizes PDF pages for OCR and loads raster image
// inputs. PDF rasterization shells out to pdftoppm (poppler-utils); page
// counting uses pdfcpu so no external process is needed for it.
package render

import (
	"context"
	"fmt"
	"image"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Renderer turns one page of a PDF document into a bitmap at a requested
// resolution.
type Renderer interface {
	PageCount(path string) (int, error)
	RenderPage(ctx context.Context, path string, pageIndex, dpi int) (image.Image, error)
}

// PopplerRenderer implements Renderer with the pdftoppm binary.
type PopplerRenderer struct {
	// Binary is the pdftoppm executable name or absolute path.
	Binary string
}

// NewPopplerRenderer returns a renderer using the given pdftoppm binary,
// or "pdftoppm" from PATH when empty.
func NewPopplerRenderer(binary string) *PopplerRenderer {
	if binary == "" {
		binary = "pdftoppm"
	}
	return &PopplerRenderer{Binary: binary}
}

// PageCount returns the number of pages in the PDF at path.
func (r *PopplerRenderer) PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("page count for %s: %w", path, err)
	}
	return n, nil
}

// RenderPage rasterizes the zero-based pageIndex of the PDF at path into
// a PNG at the given DPI and decodes it. The temporary output is removed
// before returning.
func (r *PopplerRenderer) RenderPage(ctx context.Context, path string, pageIndex, dpi int) (image.Image, error) {
	tmpDir, err := os.MkdirTemp("", "paystub-render-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	page := pageIndex + 1 // pdftoppm pages are 1-based
	prefix := filepath.Join(tmpDir, "page")

	cmd := exec.CommandContext(ctx, r.Binary,
		"-png",
		"-r", fmt.Sprint(dpi),
		"-f", fmt.Sprint(page),
		"-l", fmt.Sprint(page),
		path, prefix)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("pdftoppm page %d at %d DPI: %w (%s)", page, dpi, err, string(out))
	}

	// pdftoppm zero-pads the page number in the output name depending on
	// the document's page count, so glob instead of guessing the width.
	matches, err := filepath.Glob(prefix + "-*.png")
	if err != nil || len(matches) == 0 {
		return nil, fmt.Errorf("pdftoppm produced no output for page %d", page)
	}
	sort.Strings(matches)

	f, err := os.Open(matches[0])
	if err != nil {
		return nil, fmt.Errorf("open rendered page: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode rendered page: %w", err)
	}
	return img, nil
}

// LoadImageFile decodes a raster image file (PNG, JPEG, TIFF, BMP). Used
// when the input document is already an image rather than a PDF.
func LoadImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}
