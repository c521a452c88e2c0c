// Package langdetect provides language detection for source files.
// It uses go-enry to detect programming languages from file names and
// content, used to label source reports.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// langText is the fallback when detection fails.
const langText = "text"

// Detect returns the detected language for a source file.
// Detection prefers the shebang line, then the file name, then enry's
// content classifier. Returns "text" if nothing matches.
func Detect(path string, content []byte) string {
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if lang := enry.GetLanguage(filepath.Base(path), content); lang != "" {
		return normalize(lang)
	}

	return langText
}

// normalize lowercases enry's language names so report output is stable.
func normalize(lang string) string {
	if lang == "" {
		return langText
	}
	return strings.ToLower(lang)
}
