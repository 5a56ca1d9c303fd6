package ocr

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackModesOrder(t *testing.T) {
	want := []PageSegMode{
		PSMSingleBlock,
		PSMSingleColumn,
		PSMAuto,
		PSMAutoOSD,
		PSMSparseText,
		PSMSparseTextOSD,
	}
	assert.Equal(t, want, FallbackModes)
}

func TestPageSegModeString(t *testing.T) {
	tests := []struct {
		mode PageSegMode
		want string
	}{
		{PSMSingleBlock, "SINGLE_BLOCK"},
		{PSMSingleColumn, "SINGLE_COLUMN"},
		{PSMAuto, "AUTO"},
		{PSMAutoOSD, "AUTO_OSD"},
		{PSMSparseText, "SPARSE_TEXT"},
		{PSMSparseTextOSD, "SPARSE_TEXT_OSD"},
		{PageSegMode(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.mode.String())
	}
}

func TestEnsureTessdata_ConfiguredDirWins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "eng.traineddata"), []byte("trained"), 0o644))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	got, err := EnsureTessdata(dir, "eng", logger)

	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestEnsureTessdata_ConfiguredDirMissingLanguage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "deu.traineddata"), []byte("trained"), 0o644))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	_, err := EnsureTessdata(dir, "xxunknownxx", logger)

	// Nothing anywhere carries this language, and the checked-in bundle
	// holds no trained data, so resolution must fail.
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xxunknownxx")
}

func TestHasTrainedData(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "eng.traineddata"), []byte("trained"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "fra.traineddata"), 0o755))

	assert.True(t, hasTrainedData(dir, "eng.traineddata"))
	assert.False(t, hasTrainedData(dir, "deu.traineddata"))
	assert.False(t, hasTrainedData(dir, "fra.traineddata"), "a directory is not trained data")
}
