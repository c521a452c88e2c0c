package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/srcbuf/pkg/runner"
)

// Lookup-table layout constants.
const (
	minFileWidth     = 12
	locationColWidth = 16
	charColWidth     = 8
)

// FormatLookupTable renders all lookups across a run as one table.
func (f *Formatter) FormatLookupTable(result *runner.Result) string {
	if result == nil || len(result.Files) == 0 {
		return ""
	}

	fileWidth := minFileWidth
	for _, report := range result.Files {
		if len(report.Path) > fileWidth {
			fileWidth = len(report.Path)
		}
	}

	var sb strings.Builder

	header := fmt.Sprintf("%-*s %-*s %-*s %s",
		fileWidth, "FILE",
		locationColWidth, "LOCATION",
		charColWidth, "CHAR",
		"OFFSET")
	sb.WriteString(f.styles.TableHeader.Render(header))
	sb.WriteString("\n")
	sb.WriteString(f.styles.TableSeparator.Render(strings.Repeat("-", len(header))))
	sb.WriteString("\n")

	for _, report := range result.Files {
		if report.Error != "" {
			sb.WriteString(fmt.Sprintf("%-*s %s\n",
				fileWidth, report.Path, f.styles.Error.Render(report.Error)))
			continue
		}
		for _, lookup := range report.Lookups {
			if lookup.Error != "" {
				sb.WriteString(fmt.Sprintf("%-*s %s\n",
					fileWidth, report.Path, f.styles.Error.Render(lookup.Error)))
				continue
			}
			location := fmt.Sprintf("%d:%d", lookup.Location.Line+1, lookup.Location.Column+1)
			sb.WriteString(fmt.Sprintf("%-*s %-*s %-*s %d\n",
				fileWidth, report.Path,
				locationColWidth, location,
				charColWidth, quoteChar(lookup.Char),
				lookup.Offset))
		}
	}

	return sb.String()
}
