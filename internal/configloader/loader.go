// Package configloader provides configuration loading and resolution.
// It discovers the project config file by upward search, merges it over the
// built-in defaults, and applies environment variable overrides.
package configloader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/srcbuf/pkg/config"
)

// projectConfigName is the config file searched for upward from the
// working directory.
const projectConfigName = ".srcbuf.yaml"

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, project config discovery is skipped and the file must exist.
	ExplicitPath string

	// IgnoreEnv skips environment variable overrides.
	IgnoreEnv bool
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom is the config file that was loaded, empty when only
	// defaults and environment applied.
	LoadedFrom string
}

// Load resolves the final configuration.
// Precedence (highest to lowest): environment variables (SRCBUF_*),
// explicit or discovered config file, defaults. CLI flags are applied by
// the command layer on top of this result.
func Load(opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{
		Config: config.Default(),
	}

	path, err := resolveConfigPath(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := loadFile(path, result.Config); err != nil {
			return nil, err
		}
		result.LoadedFrom = path
	}

	if !opts.IgnoreEnv {
		if err := applyEnv(result.Config); err != nil {
			return nil, err
		}
	}

	if err := validate(result.Config); err != nil {
		return nil, err
	}

	return result, nil
}

func resolveConfigPath(opts LoadOptions) (string, error) {
	if opts.ExplicitPath != "" {
		if _, err := os.Stat(opts.ExplicitPath); err != nil {
			return "", fmt.Errorf("config file %s: %w", opts.ExplicitPath, err)
		}
		return opts.ExplicitPath, nil
	}

	dir := opts.WorkingDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}

	return discoverUpward(dir), nil
}

// discoverUpward walks from dir toward the filesystem root looking for the
// project config file. Returns empty when none exists.
func discoverUpward(dir string) string {
	for {
		candidate := filepath.Join(dir, projectConfigName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func loadFile(path string, cfg *config.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config file %s does not exist: %w", path, err)
		}
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	return nil
}

func validate(cfg *config.Config) error {
	if !cfg.Format.IsValid() {
		return fmt.Errorf("invalid output format %q", cfg.Format)
	}
	if !cfg.Color.IsValid() {
		return fmt.Errorf("invalid color mode %q", cfg.Color)
	}
	if cfg.PreviewWidth < 0 {
		return fmt.Errorf("preview_width must be non-negative, got %d", cfg.PreviewWidth)
	}
	return nil
}
