package srctext

import "fmt"

// Location identifies a single character position in a source file.
// Line and Column are zero-based; Offset counts characters from the start
// of the buffer.
type Location struct {
	// Path is the file identifier the owning buffer was built with.
	// It is an opaque pass-through string, never interpreted here.
	Path string `json:"path"`

	// Offset is the absolute character offset, zero-based.
	Offset int `json:"offset"`

	// Line is the zero-based line index.
	Line int `json:"line"`

	// Column is the zero-based character offset within the line.
	Column int `json:"column"`
}

// String renders the location with 1-based line and column, the convention
// editors and compilers print.
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.Path, l.Line+1, l.Column+1)
}

// CharRef pairs a resolved character with its source location.
// It is the result type of Buffer.CharAt.
type CharRef struct {
	// Char is the character at the queried offset.
	Char rune `json:"char"`

	// Location is the structured position of Char.
	Location Location `json:"location"`
}
