package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultOCRLanguage, cfg.OCRLanguage)
	assert.Equal(t, DefaultRenderDPIs, cfg.RenderDPIs)
	assert.Equal(t, DefaultMaxPages, cfg.MaxPages)
	assert.Equal(t, int64(DefaultMaxFileSize), cfg.MaxFileSize)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, FormatJSON, cfg.OutputFormat)
	assert.False(t, cfg.IncludeRaw)

	require.NoError(t, cfg.Validate(), "defaults must validate")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty language",
			mutate:  func(c *Config) { c.OCRLanguage = "" },
			wantErr: "OCR language",
		},
		{
			name:    "no render DPIs",
			mutate:  func(c *Config) { c.RenderDPIs = nil },
			wantErr: "at least one render DPI",
		},
		{
			name:    "DPI too low",
			mutate:  func(c *Config) { c.RenderDPIs = []int{300, 25} },
			wantErr: "out of range",
		},
		{
			name:    "DPI too high",
			mutate:  func(c *Config) { c.RenderDPIs = []int{2400} },
			wantErr: "out of range",
		},
		{
			name:    "negative max pages",
			mutate:  func(c *Config) { c.MaxPages = -1 },
			wantErr: "maxpages cannot be negative",
		},
		{
			name:   "zero max pages means no limit",
			mutate: func(c *Config) { c.MaxPages = 0 },
		},
		{
			name:    "zero max file size",
			mutate:  func(c *Config) { c.MaxFileSize = 0 },
			wantErr: "file size must be positive",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: "invalid log level",
		},
		{
			name:    "bad output format",
			mutate:  func(c *Config) { c.OutputFormat = "xml" },
			wantErr: "invalid output format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestIsDebug(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.IsDebug())

	cfg.LogLevel = "debug"
	assert.True(t, cfg.IsDebug())
}

func TestConfigString(t *testing.T) {
	s := DefaultConfig().String()

	assert.Contains(t, s, "eng")
	assert.Contains(t, s, "[300 200 150]")
	assert.Contains(t, s, "json")
}
