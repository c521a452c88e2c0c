package srctext

// Recognized line-terminating characters beyond CR and LF.
const (
	nextLine      = '' // NEL
	lineSeparator = ' ' // LS
	paraSeparator = ' ' // PS
)

// IsLineTerminator reports whether r terminates a line.
// CR, LF, NEL (U+0085), LS (U+2028), and PS (U+2029) are recognized.
// A CR immediately followed by LF forms a single two-character terminator;
// that pairing is handled by the Buffer appender, not here.
func IsLineTerminator(r rune) bool {
	switch r {
	case '\r', '\n', nextLine, lineSeparator, paraSeparator:
		return true
	default:
		return false
	}
}
