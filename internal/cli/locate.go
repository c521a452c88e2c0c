package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yaklabco/srcbuf/internal/logging"
	"github.com/yaklabco/srcbuf/internal/ui/pretty"
	"github.com/yaklabco/srcbuf/pkg/config"
	"github.com/yaklabco/srcbuf/pkg/runner"
)

type locateFlags struct {
	format     string
	end        bool
	noLanguage bool
}

func newLocateCommand() *cobra.Command {
	flags := &locateFlags{}

	cmd := &cobra.Command{
		Use:   "locate FILE OFFSET...",
		Short: "Resolve absolute offsets to characters and source locations",
		Long:  locateLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocate(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "", "output format: text, json, table")
	cmd.Flags().BoolVar(&flags.end, "end", false, "include the end-of-buffer location")
	cmd.Flags().BoolVar(&flags.noLanguage, "no-language", false, "skip language detection")

	return cmd
}

const locateLongDescription = `Resolve absolute character offsets in a file to their characters and
structured source locations (line and column, zero-based internally,
printed 1-based).

Offsets are counted in characters from the start of the file; a CRLF
pair is two characters but terminates a single line.

Examples:
  srcbuf locate main.go 0 120 121    # Resolve three offsets
  srcbuf locate main.go --end        # Only the end-of-buffer location
  srcbuf locate main.go 5 --format json`

func runLocate(cmd *cobra.Command, args []string, flags *locateFlags) error {
	logger := logging.Default()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyFormatFlag(cmd, cfg, flags.format); err != nil {
		return err
	}

	path := args[0]
	offsets, err := parseOffsets(args[1:])
	if err != nil {
		return err
	}

	logger.Debug("locating offsets",
		logging.FieldPath, path,
		logging.FieldOffsets, offsets)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	result, err := runner.Run(ctx, []string{path}, runner.Options{
		Offsets:        offsets,
		DetectLanguage: cfg.DetectLanguage && !flags.noLanguage,
	})
	if err != nil {
		return err
	}

	if err := writeLocateOutput(cmd, cfg, flags, result); err != nil {
		return err
	}

	if result.HasFailures() {
		return ErrLookupsFailed
	}
	return nil
}

func parseOffsets(args []string) ([]int, error) {
	offsets := make([]int, 0, len(args))
	for _, arg := range args {
		offset, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: offset %q is not an integer", ErrUsage, arg)
		}
		offsets = append(offsets, offset)
	}
	return offsets, nil
}

func writeLocateOutput(cmd *cobra.Command, cfg *config.Config, flags *locateFlags, result *runner.Result) error {
	out := cmd.OutOrStdout()

	if cfg.Format == config.FormatJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	colorEnabled := pretty.ColorEnabled(cfg.Color, os.Stdout)
	formatter := pretty.NewFormatter(pretty.NewStyles(colorEnabled), pretty.TerminalWidth(os.Stdout))

	if cfg.Format == config.FormatTable {
		fmt.Fprint(out, formatter.FormatLookupTable(result))
		return nil
	}

	for _, report := range result.Files {
		fmt.Fprint(out, formatter.FormatReport(report))
		if flags.end && report.Error == "" {
			fmt.Fprint(out, formatter.FormatEnd(report))
		}
	}
	return nil
}
