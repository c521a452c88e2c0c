// Package pretty provides Lipgloss-based styled output for srcbuf reports.
package pretty

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/yaklabco/srcbuf/pkg/config"
)

// defaultTermWidth is used when the terminal width cannot be determined.
const defaultTermWidth = 100

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Report components
	FilePath lipgloss.Style
	Language lipgloss.Style
	Location lipgloss.Style
	Char     lipgloss.Style
	Offset   lipgloss.Style
	LineText lipgloss.Style
	Error    lipgloss.Style

	// Table styles
	TableHeader    lipgloss.Style
	TableSeparator lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

func newColorStyles() *Styles {
	return &Styles{
		FilePath: lipgloss.NewStyle().Bold(true),
		Language: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Location: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Char:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Offset:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		LineText: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		TableHeader:    lipgloss.NewStyle().Bold(true).Underline(true),
		TableSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		FilePath: plain,
		Language: plain,
		Location: plain,
		Char:     plain,
		Offset:   plain,
		LineText: plain,
		Error:    plain,

		TableHeader:    plain,
		TableSeparator: plain,

		SummaryTitle: plain,
		Success:      plain,
		Failure:      plain,

		Dim:  plain,
		Bold: plain,
	}
}

// ColorEnabled resolves a color mode against the output stream.
func ColorEnabled(mode config.ColorMode, out *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())
	}
}

// TerminalWidth returns the width of the terminal attached to out, or a
// sensible default when out is not a terminal.
func TerminalWidth(out *os.File) int {
	width, _, err := term.GetSize(int(out.Fd()))
	if err != nil || width <= 0 {
		return defaultTermWidth
	}
	return width
}
