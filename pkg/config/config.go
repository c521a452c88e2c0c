// Package config defines core configuration types for srcbuf.
// These types are pure data structures with no dependency on any
// particular config loader.
package config

// OutputFormat specifies the output format for reports.
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatJSON  OutputFormat = "json"
	FormatTable OutputFormat = "table"
)

// IsValid returns true if the output format is recognized.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatTable:
		return true
	default:
		return false
	}
}

// ColorMode controls colorized output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is recognized.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for srcbuf.
type Config struct {
	// Format selects the report output format ("text", "json", "table").
	Format OutputFormat `yaml:"format"`

	// Color controls colorized output ("auto", "always", "never").
	Color ColorMode `yaml:"color"`

	// DetectLanguage enables go-enry language detection on input files.
	DetectLanguage bool `yaml:"detect_language"`

	// LogLevel sets the logger verbosity ("debug", "info", "warn", "error").
	LogLevel string `yaml:"log_level"`

	// PreviewWidth caps the line-text preview column in table output.
	// Zero means the built-in default.
	PreviewWidth int `yaml:"preview_width"`
}

// Default returns the built-in configuration defaults.
func Default() *Config {
	return &Config{
		Format:         FormatText,
		Color:          ColorAuto,
		DetectLanguage: true,
		LogLevel:       "info",
	}
}
