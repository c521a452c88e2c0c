package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/srcbuf/internal/logging"
	"github.com/yaklabco/srcbuf/internal/ui/pretty"
	"github.com/yaklabco/srcbuf/pkg/config"
	"github.com/yaklabco/srcbuf/pkg/runner"
)

type linesFlags struct {
	format       string
	previewWidth int
	noLanguage   bool
}

func newLinesCommand() *cobra.Command {
	flags := &linesFlags{}

	cmd := &cobra.Command{
		Use:   "lines FILE...",
		Short: "Dump the line index of source files",
		Long: `Dump each file's line index: every line's ordinal, starting offset,
ending offset, and length in characters, with a text preview.

Line terminators count toward the line that they terminate, so each
line's end offset equals the next line's start offset.

Examples:
  srcbuf lines main.go
  srcbuf lines --preview-width 60 main.go util.go
  srcbuf lines main.go --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLines(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "", "output format: text, json")
	cmd.Flags().IntVar(&flags.previewWidth, "preview-width", 0, "max width of the text preview column")
	cmd.Flags().BoolVar(&flags.noLanguage, "no-language", false, "skip language detection")

	return cmd
}

func runLines(cmd *cobra.Command, args []string, flags *linesFlags) error {
	logger := logging.Default()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyFormatFlag(cmd, cfg, flags.format); err != nil {
		return err
	}
	if cmd.Flags().Changed("preview-width") {
		cfg.PreviewWidth = flags.previewWidth
	}

	logger.Debug("dumping line index", logging.FieldFiles, len(args))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	result, err := runner.Run(ctx, args, runner.Options{
		IncludeLines:   true,
		DetectLanguage: cfg.DetectLanguage && !flags.noLanguage,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if cfg.Format == config.FormatJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return err
		}
	} else {
		colorEnabled := pretty.ColorEnabled(cfg.Color, os.Stdout)
		formatter := pretty.NewFormatter(pretty.NewStyles(colorEnabled), pretty.TerminalWidth(os.Stdout))
		for i, report := range result.Files {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprint(out, formatter.FormatLineTable(report, cfg.PreviewWidth))
		}
		if len(result.Files) > 1 {
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.FormatSummary(result.Stats))
		}
	}

	if result.HasFailures() {
		return ErrLookupsFailed
	}
	return nil
}
