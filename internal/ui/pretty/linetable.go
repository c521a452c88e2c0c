package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/srcbuf/pkg/runner"
	"github.com/yaklabco/srcbuf/pkg/srctext"
)

// Line-table layout constants.
const (
	defaultPreviewWidth = 40
	lineColWidth        = 6
	offsetColWidth      = 7
	previewEllipsis     = "..."
)

// FormatLineTable renders a file's line index as a fixed-width table.
// When previewWidth is zero, the preview column fills the remaining
// terminal width.
func (f *Formatter) FormatLineTable(report runner.FileReport, previewWidth int) string {
	if previewWidth <= 0 {
		fixed := 2*lineColWidth + 2*offsetColWidth + 4
		previewWidth = f.width - fixed
		if previewWidth < 1 {
			previewWidth = defaultPreviewWidth
		}
	}

	var sb strings.Builder

	sb.WriteString(f.styles.FilePath.Render(report.Path))
	if report.Language != "" {
		sb.WriteString(" ")
		sb.WriteString(f.styles.Language.Render("(" + report.Language + ")"))
	}
	sb.WriteString("\n")

	if report.Error != "" {
		sb.WriteString("  ")
		sb.WriteString(f.styles.Error.Render(report.Error))
		sb.WriteString("\n")
		return sb.String()
	}

	header := fmt.Sprintf("%-*s %-*s %-*s %-*s %s",
		lineColWidth, "LINE",
		offsetColWidth, "START",
		offsetColWidth, "END",
		lineColWidth, "LEN",
		"TEXT")
	sb.WriteString(f.styles.TableHeader.Render(header))
	sb.WriteString("\n")

	for _, line := range report.Lines {
		row := fmt.Sprintf("%-*d %-*d %-*d %-*d %s",
			lineColWidth, line.Index,
			offsetColWidth, line.Start,
			offsetColWidth, line.End,
			lineColWidth, line.Length,
			f.styles.LineText.Render(previewText(line.Text, previewWidth)))
		sb.WriteString(row)
		sb.WriteString("\n")
	}

	return sb.String()
}

// previewText strips trailing terminators and truncates to width runes.
func previewText(text string, width int) string {
	runes := []rune(text)
	for len(runes) > 0 && srctext.IsLineTerminator(runes[len(runes)-1]) {
		runes = runes[:len(runes)-1]
	}
	if len(runes) <= width {
		return string(runes)
	}
	if width <= len(previewEllipsis) {
		return string(runes[:width])
	}
	return string(runes[:width-len(previewEllipsis)]) + previewEllipsis
}
