// Package cli provides the Cobra command structure for srcbuf.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/srcbuf/internal/configloader"
	"github.com/yaklabco/srcbuf/internal/logging"
	"github.com/yaklabco/srcbuf/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root srcbuf command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "srcbuf",
		Short: "Inspect source files through a line-tracking text buffer",
		Long: `srcbuf builds a line-tracking buffer over source files and answers
offset queries against it: which character sits at absolute offset N,
and what line and column does it correspond to.

It is the command-line companion to the srctext library, useful for
debugging lexer diagnostics, validating offsets reported by other
tools, and dumping a file's line index.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newLocateCommand())
	rootCmd.AddCommand(newLinesCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

// resolveConfig loads configuration and layers the root command's
// persistent flags on top.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	result, err := configloader.Load(configloader.LoadOptions{
		ExplicitPath: configPath,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	cfg := result.Config

	if result.LoadedFrom != "" {
		logging.Default().Debug("loaded config", logging.FieldConfig, result.LoadedFrom)
	}

	if cmd.Flags().Changed("color") {
		color, _ := cmd.Flags().GetString("color")
		cfg.Color = config.ColorMode(color)
		if !cfg.Color.IsValid() {
			return nil, fmt.Errorf("%w: invalid color mode %q", ErrConfig, color)
		}
	}

	// --debug wins over the configured level.
	if debug, _ := cmd.Flags().GetBool("debug"); !debug {
		logging.SetLevel(cfg.LogLevel)
	}

	return cfg, nil
}

// applyFormatFlag overrides the configured format when the flag was given.
func applyFormatFlag(cmd *cobra.Command, cfg *config.Config, format string) error {
	if !cmd.Flags().Changed("format") {
		return nil
	}
	cfg.Format = config.OutputFormat(format)
	if !cfg.Format.IsValid() {
		return fmt.Errorf("%w: invalid output format %q", ErrConfig, format)
	}
	return nil
}
