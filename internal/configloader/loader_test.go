package configloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/srcbuf/internal/configloader"
	"github.com/yaklabco/srcbuf/pkg/config"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, ".srcbuf.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	result, err := configloader.Load(configloader.LoadOptions{
		WorkingDir: t.TempDir(),
		IgnoreEnv:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, config.Default(), result.Config)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoad_ProjectFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfig(t, dir, "format: json\ndetect_language: false\n")

	result, err := configloader.Load(configloader.LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, config.FormatJSON, result.Config.Format)
	assert.False(t, result.Config.DetectLanguage)
	assert.Equal(t, path, result.LoadedFrom)
	// Unset keys keep their defaults.
	assert.Equal(t, config.ColorAuto, result.Config.Color)
}

func TestLoad_UpwardDiscovery(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeConfig(t, root, "format: table\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	result, err := configloader.Load(configloader.LoadOptions{
		WorkingDir: nested,
		IgnoreEnv:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, config.FormatTable, result.Config.Format)
}

func TestLoad_ExplicitPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color: never\n"), 0o644))

	result, err := configloader.Load(configloader.LoadOptions{
		WorkingDir:   dir,
		ExplicitPath: path,
		IgnoreEnv:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, config.ColorNever, result.Config.Color)
	assert.Equal(t, path, result.LoadedFrom)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	t.Parallel()

	_, err := configloader.Load(configloader.LoadOptions{
		WorkingDir:   t.TempDir(),
		ExplicitPath: filepath.Join(t.TempDir(), "nope.yaml"),
		IgnoreEnv:    true,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "bad format", content: "format: xml\n"},
		{name: "bad color", content: "color: sometimes\n"},
		{name: "negative preview width", content: "preview_width: -1\n"},
		{name: "malformed yaml", content: "format: [\n"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeConfig(t, dir, testCase.content)

			_, err := configloader.Load(configloader.LoadOptions{
				WorkingDir: dir,
				IgnoreEnv:  true,
			})
			assert.Error(t, err)
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	// Not parallel: mutates process environment.
	t.Setenv("SRCBUF_FORMAT", "json")
	t.Setenv("SRCBUF_DETECT_LANGUAGE", "false")
	t.Setenv("SRCBUF_PREVIEW_WIDTH", "25")

	dir := t.TempDir()
	writeConfig(t, dir, "format: table\n")

	result, err := configloader.Load(configloader.LoadOptions{WorkingDir: dir})
	require.NoError(t, err)

	// Environment wins over the project file.
	assert.Equal(t, config.FormatJSON, result.Config.Format)
	assert.False(t, result.Config.DetectLanguage)
	assert.Equal(t, 25, result.Config.PreviewWidth)
}

func TestLoad_EnvInvalidBool(t *testing.T) {
	t.Setenv("SRCBUF_DETECT_LANGUAGE", "definitely")

	_, err := configloader.Load(configloader.LoadOptions{WorkingDir: t.TempDir()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SRCBUF_DETECT_LANGUAGE")
}
