// Package runner orchestrates building line-tracking buffers over input
// files and resolving offset queries against them. It owns the file I/O the
// core srctext package deliberately avoids.
package runner

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/srcbuf/internal/logging"
	"github.com/yaklabco/srcbuf/pkg/langdetect"
	"github.com/yaklabco/srcbuf/pkg/srctext"
)

// Options controls a run.
type Options struct {
	// Offsets are the absolute character offsets to resolve in each file.
	// May be empty, in which case only file metadata is reported.
	Offsets []int

	// DetectLanguage enables language detection on each file.
	DetectLanguage bool

	// IncludeLines adds per-line index detail to each FileReport.
	IncludeLines bool
}

// Run processes each path in order and returns a deterministic Result.
// A file that cannot be read produces a FileReport with Error set rather
// than aborting the run; Run itself fails only on context cancellation.
func Run(ctx context.Context, paths []string, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	result := &Result{
		Files: make([]FileReport, 0, len(paths)),
	}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run canceled: %w", err)
		}

		report := processFile(path, opts)
		if report.Error != "" {
			result.Stats.FilesErrored++
			logger.Debug("file errored",
				logging.FieldPath, path,
				logging.FieldError, report.Error)
		} else {
			result.Stats.FilesProcessed++
			logger.Debug("processed file",
				logging.FieldPath, path,
				logging.FieldLength, report.Length,
				logging.FieldLines, report.LineCount)
		}
		for _, lookup := range report.Lookups {
			if lookup.Error != "" {
				result.Stats.LookupsFailed++
			} else {
				result.Stats.LookupsResolved++
			}
		}

		result.Files = append(result.Files, report)
	}

	return result, nil
}

func processFile(path string, opts Options) FileReport {
	content, err := os.ReadFile(path)
	if err != nil {
		return FileReport{
			Path:  path,
			Error: fmt.Sprintf("read file: %v", err),
		}
	}

	buf := srctext.New(path, string(content))

	report := FileReport{
		Path:      path,
		Length:    buf.Len(),
		LineCount: buf.LineCount(),
		End:       buf.EndLocation(),
	}
	if opts.DetectLanguage {
		report.Language = langdetect.Detect(path, content)
	}

	if opts.IncludeLines {
		report.Lines = make([]LineSummary, 0, buf.LineCount())
		for i := 0; i < buf.LineCount(); i++ {
			line := buf.Line(i)
			report.Lines = append(report.Lines, LineSummary{
				Index:  line.Index(),
				Start:  line.Start(),
				End:    line.End(),
				Length: line.Len(),
				Text:   line.Text(),
			})
		}
	}

	for _, offset := range opts.Offsets {
		report.Lookups = append(report.Lookups, lookupOffset(buf, offset))
	}

	return report
}

func lookupOffset(buf *srctext.Buffer, offset int) Lookup {
	ref, err := buf.CharAt(offset)
	if err != nil {
		return Lookup{
			Offset: offset,
			Error:  err.Error(),
		}
	}
	return Lookup{
		Offset:   offset,
		Char:     string(ref.Char),
		Location: ref.Location,
	}
}
