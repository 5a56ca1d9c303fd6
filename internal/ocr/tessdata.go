package ocr

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// bundled holds trained-language data shipped with release builds. The
// checked-in directory only carries a README; packaging drops the
// *.traineddata files in before building.
//
//go:embed tessdata
var bundled embed.FS

// conventionalDataDirs are the usual tessdata install locations, probed
// in order.
var conventionalDataDirs = []string{
	"./tessdata",
	"/usr/share/tesseract-ocr/5/tessdata",
	"/usr/share/tesseract-ocr/4.00/tessdata",
	"/usr/share/tessdata",
	"/usr/local/share/tessdata",
	"/opt/homebrew/share/tessdata",
}

// EnsureTessdata resolves a tessdata directory containing trained data
// for the given language. It prefers the configured directory, then the
// conventional install locations, and finally materializes bundled
// resources into a writable temp directory. This is one-time setup; the
// extraction pipeline never touches it again.
func EnsureTessdata(configuredDir, language string, logger *slog.Logger) (string, error) {
	if logger == nil {
		logger = slog.Default()
	}
	trainedFile := language + ".traineddata"

	candidates := conventionalDataDirs
	if configuredDir != "" {
		candidates = append([]string{configuredDir}, candidates...)
	}
	for _, dir := range candidates {
		if hasTrainedData(dir, trainedFile) {
			logger.Debug("using tessdata directory", "dir", dir, "language", language)
			return dir, nil
		}
	}

	dest := filepath.Join(os.TempDir(), "paystub-parser", "tessdata")
	if hasTrainedData(dest, trainedFile) {
		return dest, nil
	}

	n, err := materializeBundled(dest)
	if err != nil {
		return "", fmt.Errorf("materialize bundled tessdata: %w", err)
	}
	if n == 0 || !hasTrainedData(dest, trainedFile) {
		return "", fmt.Errorf("no trained data for language %q found in any tessdata location", language)
	}

	logger.Info("materialized bundled tessdata", "dir", dest, "files", n)
	return dest, nil
}

func hasTrainedData(dir, trainedFile string) bool {
	info, err := os.Stat(filepath.Join(dir, trainedFile))
	return err == nil && !info.IsDir()
}

// materializeBundled copies every *.traineddata file from the embedded
// bundle into dest, returning the count copied.
func materializeBundled(dest string) (int, error) {
	if err := os.MkdirAll(dest, 0o750); err != nil {
		return 0, err
	}

	copied := 0
	err := fs.WalkDir(bundled, "tessdata", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".traineddata") {
			return nil
		}
		data, err := fs.ReadFile(bundled, path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(dest, d.Name()), data, 0o640); err != nil {
			return err
		}
		copied++
		return nil
	})
	if err != nil {
		return copied, err
	}
	return copied, nil
}
