package pretty

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/yaklabco/srcbuf/pkg/runner"
)

// Formatter renders runner results for human consumption.
type Formatter struct {
	styles *Styles
	width  int
}

// NewFormatter creates a formatter with the given styles and terminal width.
func NewFormatter(styles *Styles, width int) *Formatter {
	if width <= 0 {
		width = defaultTermWidth
	}
	return &Formatter{styles: styles, width: width}
}

// FormatReport renders one file report as text, one line per lookup.
func (f *Formatter) FormatReport(report runner.FileReport) string {
	var sb strings.Builder

	sb.WriteString(f.styles.FilePath.Render(report.Path))
	if report.Error != "" {
		sb.WriteString(": ")
		sb.WriteString(f.styles.Error.Render(report.Error))
		sb.WriteString("\n")
		return sb.String()
	}

	meta := fmt.Sprintf("%d chars, %d lines", report.Length, report.LineCount)
	if report.Language != "" {
		meta += ", " + report.Language
	}
	sb.WriteString(" ")
	sb.WriteString(f.styles.Dim.Render("("+meta+")"))
	sb.WriteString("\n")

	for _, lookup := range report.Lookups {
		sb.WriteString("  ")
		if lookup.Error != "" {
			sb.WriteString(f.styles.Offset.Render(fmt.Sprintf("offset %d", lookup.Offset)))
			sb.WriteString(": ")
			sb.WriteString(f.styles.Error.Render(lookup.Error))
			sb.WriteString("\n")
			continue
		}

		sb.WriteString(f.styles.Location.Render(lookup.Location.String()))
		sb.WriteString("  ")
		sb.WriteString(f.styles.Char.Render(quoteChar(lookup.Char)))
		sb.WriteString("  ")
		sb.WriteString(f.styles.Dim.Render(fmt.Sprintf("offset %d, line %d, col %d",
			lookup.Offset, lookup.Location.Line, lookup.Location.Column)))
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatEnd renders an end-of-buffer location line.
func (f *Formatter) FormatEnd(report runner.FileReport) string {
	var sb strings.Builder
	sb.WriteString("  ")
	sb.WriteString(f.styles.Location.Render(report.End.String()))
	sb.WriteString("  ")
	sb.WriteString(f.styles.Dim.Render(fmt.Sprintf("end of buffer, offset %d", report.End.Offset)))
	sb.WriteString("\n")
	return sb.String()
}

// FormatSummary renders aggregate stats for a run.
func (f *Formatter) FormatSummary(stats runner.Stats) string {
	var sb strings.Builder

	sb.WriteString(f.styles.SummaryTitle.Render("Summary"))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  Files processed: %d\n", stats.FilesProcessed))
	if stats.FilesErrored > 0 {
		sb.WriteString("  Files errored: ")
		sb.WriteString(f.styles.Failure.Render(strconv.Itoa(stats.FilesErrored)))
		sb.WriteString("\n")
	}
	if stats.LookupsResolved+stats.LookupsFailed > 0 {
		sb.WriteString(fmt.Sprintf("  Lookups resolved: %d\n", stats.LookupsResolved))
		if stats.LookupsFailed > 0 {
			sb.WriteString("  Lookups failed: ")
			sb.WriteString(f.styles.Failure.Render(strconv.Itoa(stats.LookupsFailed)))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// quoteChar renders a resolved character for display, escaping anything
// that would garble terminal output.
func quoteChar(s string) string {
	if s == "" {
		return `''`
	}
	r := []rune(s)[0]
	if unicode.IsPrint(r) && !unicode.IsSpace(r) {
		return "'" + string(r) + "'"
	}
	return strconv.QuoteRune(r)
}
