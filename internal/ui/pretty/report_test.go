package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/srcbuf/internal/ui/pretty"
	"github.com/yaklabco/srcbuf/pkg/runner"
	"github.com/yaklabco/srcbuf/pkg/srctext"
)

func sampleReport() runner.FileReport {
	return runner.FileReport{
		Path:      "f.cs",
		Language:  "csharp",
		Length:    12,
		LineCount: 3,
		End:       srctext.Location{Path: "f.cs", Offset: 12, Line: 2, Column: 3},
		Lookups: []runner.Lookup{
			{
				Offset:   0,
				Char:     "f",
				Location: srctext.Location{Path: "f.cs", Offset: 0, Line: 0, Column: 0},
			},
			{
				Offset: 99,
				Error:  "offset 99 outside buffer range [0, 12)",
			},
		},
	}
}

func TestFormatReport(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewFormatter(pretty.NewStyles(false), 80)
	out := formatter.FormatReport(sampleReport())

	assert.Contains(t, out, "f.cs")
	assert.Contains(t, out, "12 chars, 3 lines")
	assert.Contains(t, out, "csharp")
	assert.Contains(t, out, "f.cs:1:1")
	assert.Contains(t, out, "'f'")
	assert.Contains(t, out, "offset 99")
	assert.Contains(t, out, "outside buffer")
}

func TestFormatReport_FileError(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewFormatter(pretty.NewStyles(false), 80)
	out := formatter.FormatReport(runner.FileReport{
		Path:  "missing.txt",
		Error: "read file: no such file",
	})

	assert.Contains(t, out, "missing.txt")
	assert.Contains(t, out, "no such file")
}

func TestFormatEnd(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewFormatter(pretty.NewStyles(false), 80)
	out := formatter.FormatEnd(sampleReport())

	assert.Contains(t, out, "f.cs:3:4")
	assert.Contains(t, out, "end of buffer, offset 12")
}

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewFormatter(pretty.NewStyles(false), 80)
	out := formatter.FormatSummary(runner.Stats{
		FilesProcessed:  2,
		FilesErrored:    1,
		LookupsResolved: 3,
		LookupsFailed:   1,
	})

	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "Files processed: 2")
	assert.Contains(t, out, "Files errored: 1")
	assert.Contains(t, out, "Lookups resolved: 3")
	assert.Contains(t, out, "Lookups failed: 1")
}

func TestFormatLookupTable(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewFormatter(pretty.NewStyles(false), 80)
	report := sampleReport()
	out := formatter.FormatLookupTable(&runner.Result{Files: []runner.FileReport{report}})

	assert.Contains(t, out, "FILE")
	assert.Contains(t, out, "LOCATION")
	assert.Contains(t, out, "1:1")
	assert.Contains(t, out, "'f'")
	assert.Contains(t, out, "outside buffer")

	assert.Empty(t, formatter.FormatLookupTable(nil))
	assert.Empty(t, formatter.FormatLookupTable(&runner.Result{}))
}

func TestFormatLineTable(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewFormatter(pretty.NewStyles(false), 80)
	report := runner.FileReport{
		Path:      "lines.txt",
		Length:    7,
		LineCount: 2,
		Lines: []runner.LineSummary{
			{Index: 0, Start: 0, End: 2, Length: 2, Text: "a\n"},
			{Index: 1, Start: 2, End: 7, Length: 5, Text: "bcdef"},
		},
	}

	out := formatter.FormatLineTable(report, 3)

	assert.Contains(t, out, "lines.txt")
	assert.Contains(t, out, "LINE")
	assert.Contains(t, out, "START")
	// Terminators are stripped from previews; long lines are truncated.
	assert.Contains(t, out, "a")
	assert.NotContains(t, out, "a\n\n")
	assert.Contains(t, out, "bcd")
	assert.NotContains(t, out, "bcdef")
}
