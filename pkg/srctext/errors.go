package srctext

import (
	"errors"
	"fmt"
)

// ErrOffsetOutOfRange is the sentinel for failed offset lookups.
// Use errors.Is to test for it.
var ErrOffsetOutOfRange = errors.New("offset out of range")

// OffsetError reports a character lookup that no line could satisfy.
// It wraps ErrOffsetOutOfRange.
type OffsetError struct {
	// Offset is the requested absolute offset.
	Offset int

	// Length is the buffer's total length at the time of the lookup.
	Length int
}

// Error distinguishes the ordinary caller mistake (offset outside the
// buffer) from the unreachable case where the offset lies inside the
// buffer but no line claims it, which indicates a broken line index.
func (e *OffsetError) Error() string {
	if e.Offset >= 0 && e.Offset < e.Length {
		return fmt.Sprintf(
			"offset %d inside buffer of length %d but not covered by any line (corrupt line index)",
			e.Offset, e.Length)
	}
	return fmt.Sprintf("offset %d outside buffer range [0, %d)", e.Offset, e.Length)
}

// Unwrap makes errors.Is(err, ErrOffsetOutOfRange) hold.
func (e *OffsetError) Unwrap() error {
	return ErrOffsetOutOfRange
}
