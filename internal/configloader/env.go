package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/srcbuf/pkg/config"
)

// envVarPrefix is the prefix for all srcbuf environment variables.
const envVarPrefix = "SRCBUF_"

// applyEnv applies environment variable overrides to the configuration.
// Variables are prefixed with SRCBUF_ (e.g., SRCBUF_FORMAT).
func applyEnv(cfg *config.Config) error {
	if value, ok := lookupEnv("FORMAT"); ok {
		cfg.Format = config.OutputFormat(value)
	}
	if value, ok := lookupEnv("COLOR"); ok {
		cfg.Color = config.ColorMode(value)
	}
	if value, ok := lookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = value
	}
	if value, ok := lookupEnv("DETECT_LANGUAGE"); ok {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("parse %sDETECT_LANGUAGE=%q: %w", envVarPrefix, value, err)
		}
		cfg.DetectLanguage = parsed
	}
	if value, ok := lookupEnv("PREVIEW_WIDTH"); ok {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("parse %sPREVIEW_WIDTH=%q: %w", envVarPrefix, value, err)
		}
		cfg.PreviewWidth = parsed
	}
	return nil
}

func lookupEnv(name string) (string, bool) {
	value, ok := os.LookupEnv(envVarPrefix + name)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}
