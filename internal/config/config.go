// Package config holds runtime configuration for the paystub parser,
// loaded from defaults, environment variables, and command line flags.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Output format constants
	FormatJSON = "json"
	FormatText = "text"

	// Default values
	DefaultLogLevel    = "info"
	DefaultMaxFileSize = 100 * 1024 * 1024 // 100MB
	DefaultOCRLanguage = "eng"
	DefaultMaxPages    = 20
)

// DefaultRenderDPIs is the page rasterization preference order for OCR
// fallback: highest resolution first, stepping down when a render comes
// back blank.
var DefaultRenderDPIs = []int{300, 200, 150}

// Config holds all configuration for the paystub parser.
type Config struct {
	// OCR configuration
	OCRLanguage  string
	TessdataDir  string
	PdftoppmPath string
	RenderDPIs   []int
	MaxPages     int

	// Input configuration
	MaxFileSize int64 // Maximum document size in bytes

	// Application configuration
	Version      string
	LogLevel     string
	OutputFormat string
	IncludeRaw   bool // include raw extracted text in output
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		OCRLanguage:  DefaultOCRLanguage,
		TessdataDir:  "",
		PdftoppmPath: "",
		RenderDPIs:   DefaultRenderDPIs,
		MaxPages:     DefaultMaxPages,
		MaxFileSize:  DefaultMaxFileSize,
		Version:      "1.0.0",
		LogLevel:     DefaultLogLevel,
		OutputFormat: FormatJSON,
		IncludeRaw:   false,
	}
}

// LoadFromFlags parses command line flags and environment variables and
// returns a validated configuration.
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()

	pflag.Parse()

	populateConfigFromViper(cfg)

	// Expand the tessdata path if one was given
	if cfg.TessdataDir != "" {
		if expandedPath, err := filepath.Abs(cfg.TessdataDir); err == nil {
			cfg.TessdataDir = expandedPath
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults.
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("PAYSTUB")
	viper.AutomaticEnv()

	viper.SetDefault("language", cfg.OCRLanguage)
	viper.SetDefault("tessdata", cfg.TessdataDir)
	viper.SetDefault("pdftoppm", cfg.PdftoppmPath)
	viper.SetDefault("dpis", cfg.RenderDPIs)
	viper.SetDefault("maxpages", cfg.MaxPages)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("format", cfg.OutputFormat)
	viper.SetDefault("raw", cfg.IncludeRaw)
}

// defineCommandLineFlags sets up all command line flags.
func defineCommandLineFlags(cfg *Config) {
	pflag.String("language", cfg.OCRLanguage, "OCR language code (e.g. eng)")
	pflag.String("tessdata", cfg.TessdataDir, "Directory containing Tesseract trained data")
	pflag.String("pdftoppm", cfg.PdftoppmPath, "Path to the pdftoppm binary")
	pflag.IntSlice("dpis", cfg.RenderDPIs, "Render DPI preference order for OCR fallback")
	pflag.Int("maxpages", cfg.MaxPages, "Maximum pages to OCR per document (0 = no limit)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum document size in bytes")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.String("format", cfg.OutputFormat, "Output format: json or text")
	pflag.Bool("raw", cfg.IncludeRaw, "Include raw extracted text in the output")
}

// bindFlagsToViper binds command line flags to viper configuration.
func bindFlagsToViper() {
	for _, name := range []string{
		"language", "tessdata", "pdftoppm", "dpis", "maxpages",
		"maxfilesize", "loglevel", "format", "raw",
	} {
		_ = viper.BindPFlag(name, pflag.Lookup(name))
	}
}

// populateConfigFromViper fills the config struct with values from viper.
func populateConfigFromViper(cfg *Config) {
	cfg.OCRLanguage = viper.GetString("language")
	cfg.TessdataDir = viper.GetString("tessdata")
	cfg.PdftoppmPath = viper.GetString("pdftoppm")
	cfg.RenderDPIs = viper.GetIntSlice("dpis")
	cfg.MaxPages = viper.GetInt("maxpages")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.OutputFormat = viper.GetString("format")
	cfg.IncludeRaw = viper.GetBool("raw")
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.OCRLanguage == "" {
		return errors.New("OCR language cannot be empty")
	}

	if len(c.RenderDPIs) == 0 {
		return errors.New("at least one render DPI is required")
	}
	for _, dpi := range c.RenderDPIs {
		if dpi < 50 || dpi > 1200 {
			return fmt.Errorf("render DPI %d out of range (50-1200)", dpi)
		}
	}

	if c.MaxPages < 0 {
		return errors.New("maxpages cannot be negative")
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	if c.OutputFormat != FormatJSON && c.OutputFormat != FormatText {
		return fmt.Errorf("invalid output format: %s (must be %s or %s)", c.OutputFormat, FormatJSON, FormatText)
	}

	return nil
}

// IsDebug returns true if debug logging is enabled.
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Language: %s, DPIs: %v, MaxPages: %d, MaxFileSize: %d, LogLevel: %s, Format: %s}",
		c.OCRLanguage, c.RenderDPIs, c.MaxPages, c.MaxFileSize, c.LogLevel, c.OutputFormat)
}
