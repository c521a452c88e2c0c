package srctext

// Line holds the metadata and accumulated content of one physical line.
// Lines are created and mutated only by their owning Buffer: the last line
// receives appended characters until a terminator closes it, after which it
// never changes. Terminator characters are part of the line's content.
type Line struct {
	start   int
	index   int
	content []rune
}

// Start returns the absolute offset of the line's first character.
func (l *Line) Start() int { return l.start }

// Index returns the zero-based ordinal of the line.
func (l *Line) Index() int { return l.index }

// Len returns the number of characters on the line, terminators included.
func (l *Line) Len() int { return len(l.content) }

// End returns the absolute offset one past the line's last character.
// The next line, if any, starts here.
func (l *Line) End() int { return l.start + len(l.content) }

// Text returns the line's content as a string, terminators included.
func (l *Line) Text() string { return string(l.content) }

// contains reports whether the absolute offset falls in [start, end).
func (l *Line) contains(offset int) bool {
	return offset >= l.start && offset < l.End()
}
