package srctext

import "sort"

// noCachedLine marks the resolver cache as unset.
const noCachedLine = -1

// Buffer is a line-tracking text buffer. Content is append-only: characters
// are ingested in order, line boundaries are recorded as they are
// discovered, and arbitrary absolute offsets can then be resolved to a
// character and its source location.
//
// The zero value is not usable; construct with New or NewFromRunes.
type Buffer struct {
	path  string
	lines []Line

	// cached is the index of the line resolved by the previous lookup,
	// or noCachedLine. Lookups at or near the cached line short-circuit
	// the binary search.
	cached int

	// pendingCR is set when the last appended character was a CR that
	// closed its line at a chunk boundary. If the next append starts
	// with LF, the two are unified into a single CRLF terminator.
	pendingCR bool
}

// New creates a buffer over content. The path is attached verbatim to every
// location the buffer produces and is never interpreted.
func New(path, content string) *Buffer {
	return NewFromRunes(path, []rune(content))
}

// NewFromRunes creates a buffer over a character sequence. Equivalent to New
// with the corresponding string.
func NewFromRunes(path string, content []rune) *Buffer {
	b := &Buffer{
		path:   path,
		lines:  []Line{{}},
		cached: noCachedLine,
	}
	b.AppendRunes(content)
	return b
}

// Path returns the file identifier the buffer was constructed with.
func (b *Buffer) Path() string { return b.path }

// Len returns the total number of characters appended so far.
func (b *Buffer) Len() int {
	return b.endLine().End()
}

// LineCount returns the number of lines in the index. A buffer always has
// at least one line; an empty buffer has exactly one empty line.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns a read-only view of line i, or nil if out of range.
// The view is invalidated by subsequent appends.
func (b *Buffer) Line(i int) *Line {
	if i < 0 || i >= len(b.lines) {
		return nil
	}
	return &b.lines[i]
}

// Append ingests additional content, extending the line index.
func (b *Buffer) Append(content string) {
	b.AppendRunes([]rune(content))
}

// AppendRunes ingests additional characters, extending the line index.
// Any sequence, including an empty one, is accepted; the lookup cache is
// left untouched, since append-only growth never invalidates an earlier
// line boundary.
func (b *Buffer) AppendRunes(content []rune) {
	i := 0
	if b.pendingCR && len(content) > 0 {
		b.pendingCR = false
		if content[0] == '\n' {
			b.completeSplitCRLF()
			i = 1
		}
	}

	for ; i < len(content); i++ {
		r := content[i]
		end := b.endLine()
		end.content = append(end.content, r)

		if !IsLineTerminator(r) {
			continue
		}
		if r == '\r' {
			if i+1 < len(content) {
				if content[i+1] == '\n' {
					// First half of CRLF: the boundary completes at the LF.
					continue
				}
			} else {
				// Chunk ends on a bare CR. Close the line now so the buffer
				// is fully consistent, and remember the CR in case the next
				// chunk opens with the matching LF.
				b.pendingCR = true
			}
		}
		b.openLine()
	}
}

// completeSplitCRLF attaches an LF to the line whose trailing CR closed the
// previous chunk. The line opened for that CR is still empty, so shifting
// its start by one keeps every invariant intact: CRLF split across a chunk
// boundary ends up attributed to a single line, exactly as it would have
// been in a single-shot append.
func (b *Buffer) completeSplitCRLF() {
	closed := &b.lines[len(b.lines)-2]
	closed.content = append(closed.content, '\n')
	b.lines[len(b.lines)-1].start = closed.End()
}

// openLine closes the current end line and appends a fresh empty line
// starting where it ended.
func (b *Buffer) openLine() {
	end := b.endLine()
	b.lines = append(b.lines, Line{
		start: end.End(),
		index: end.index + 1,
	})
}

func (b *Buffer) endLine() *Line {
	return &b.lines[len(b.lines)-1]
}

// CharAt returns the character at the given absolute offset together with
// its source location. The valid domain is [0, Len()); anything else fails
// with an error satisfying errors.Is(err, ErrOffsetOutOfRange).
func (b *Buffer) CharAt(offset int) (CharRef, error) {
	idx := b.resolve(offset)
	if idx == noCachedLine {
		return CharRef{}, &OffsetError{Offset: offset, Length: b.Len()}
	}

	line := &b.lines[idx]
	column := offset - line.start
	return CharRef{
		Char: line.content[column],
		Location: Location{
			Path:   b.path,
			Offset: offset,
			Line:   line.index,
			Column: column,
		},
	}, nil
}

// EndLocation returns the location one past the last character, the marker
// callers use for end-of-file diagnostics. It is derived directly from the
// last line and never fails.
func (b *Buffer) EndLocation() Location {
	end := b.endLine()
	return Location{
		Path:   b.path,
		Offset: b.Len(),
		Line:   end.index,
		Column: end.Len(),
	}
}

// resolve maps an absolute offset to the index of its owning line, or
// noCachedLine if no line contains it. The previously resolved line is
// tried first: lexers scan mostly forward with occasional short backtracks,
// so the adjacent-line checks serve the bulk of real lookups in O(1) before
// falling back to binary search. The cache is updated on every call,
// including failures.
func (b *Buffer) resolve(offset int) int {
	var idx int
	switch {
	case b.cached == noCachedLine:
		idx = b.searchLines(0, len(b.lines), offset)

	case b.lines[b.cached].contains(offset):
		idx = b.cached

	case offset >= b.lines[b.cached].End():
		if next := b.cached + 1; next < len(b.lines) && b.lines[next].contains(offset) {
			idx = next
		} else {
			idx = b.searchLines(b.cached, len(b.lines), offset)
		}

	default:
		if prev := b.cached - 1; prev >= 0 && b.lines[prev].contains(offset) {
			idx = prev
		} else {
			idx = b.searchLines(0, b.cached, offset)
		}
	}

	b.cached = idx
	return idx
}

// searchLines binary-searches lines[lo:hi] for the line whose [start, end)
// range contains offset, returning its index or noCachedLine.
func (b *Buffer) searchLines(lo, hi, offset int) int {
	// First line in the window ending past the offset is the only candidate.
	i := lo + sort.Search(hi-lo, func(k int) bool {
		return b.lines[lo+k].End() > offset
	})
	if i < hi && b.lines[i].contains(offset) {
		return i
	}
	return noCachedLine
}
