package srctext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/srcbuf/pkg/srctext"
)

// lineView captures the observable state of one line for assertions.
type lineView struct {
	start int
	text  string
}

func viewLines(t *testing.T, b *srctext.Buffer) []lineView {
	t.Helper()

	views := make([]lineView, 0, b.LineCount())
	for i := 0; i < b.LineCount(); i++ {
		line := b.Line(i)
		require.NotNil(t, line)
		require.Equal(t, i, line.Index())
		views = append(views, lineView{start: line.Start(), text: line.Text()})
	}
	return views
}

func TestNew_LineIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected []lineView
	}{
		{
			name:     "empty content",
			content:  "",
			expected: []lineView{{start: 0, text: ""}},
		},
		{
			name:     "single line no terminator",
			content:  "hello",
			expected: []lineView{{start: 0, text: "hello"}},
		},
		{
			name:    "LF",
			content: "a\nb",
			expected: []lineView{
				{start: 0, text: "a\n"},
				{start: 2, text: "b"},
			},
		},
		{
			name:    "CRLF is one terminator",
			content: "a\r\nb",
			expected: []lineView{
				{start: 0, text: "a\r\n"},
				{start: 3, text: "b"},
			},
		},
		{
			name:    "lone CR followed by text",
			content: "a\rb",
			expected: []lineView{
				{start: 0, text: "a\r"},
				{start: 2, text: "b"},
			},
		},
		{
			name:    "trailing lone CR",
			content: "a\r",
			expected: []lineView{
				{start: 0, text: "a\r"},
				{start: 2, text: ""},
			},
		},
		{
			name:    "trailing LF",
			content: "a\n",
			expected: []lineView{
				{start: 0, text: "a\n"},
				{start: 2, text: ""},
			},
		},
		{
			name:    "only newline",
			content: "\n",
			expected: []lineView{
				{start: 0, text: "\n"},
				{start: 1, text: ""},
			},
		},
		{
			name:    "NEL terminates",
			content: "ab",
			expected: []lineView{
				{start: 0, text: "a"},
				{start: 2, text: "b"},
			},
		},
		{
			name:    "line separator terminates",
			content: "a b",
			expected: []lineView{
				{start: 0, text: "a "},
				{start: 2, text: "b"},
			},
		},
		{
			name:    "paragraph separator terminates",
			content: "a b",
			expected: []lineView{
				{start: 0, text: "a "},
				{start: 2, text: "b"},
			},
		},
		{
			name:    "mixed conventions",
			content: "foo\nbar\r\nbaz",
			expected: []lineView{
				{start: 0, text: "foo\n"},
				{start: 4, text: "bar\r\n"},
				{start: 9, text: "baz"},
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			buf := srctext.New("test.txt", testCase.content)
			assert.Equal(t, testCase.expected, viewLines(t, buf))
			assert.Equal(t, len([]rune(testCase.content)), buf.Len())
		})
	}
}

func TestNewFromRunes_MatchesNew(t *testing.T) {
	t.Parallel()

	const content = "foo\nbar\r\nbaz"

	fromString := srctext.New("f.cs", content)
	fromRunes := srctext.NewFromRunes("f.cs", []rune(content))

	assert.Equal(t, viewLines(t, fromString), viewLines(t, fromRunes))
	assert.Equal(t, fromString.Len(), fromRunes.Len())
	assert.Equal(t, fromString.EndLocation(), fromRunes.EndLocation())
}

func TestCharAt_Scenario(t *testing.T) {
	t.Parallel()

	buf := srctext.New("f.cs", "foo\nbar\r\nbaz")
	require.Equal(t, 12, buf.Len())

	tests := []struct {
		offset int
		char   rune
		line   int
		column int
	}{
		{offset: 0, char: 'f', line: 0, column: 0},
		{offset: 4, char: 'b', line: 1, column: 0},
		{offset: 9, char: 'b', line: 2, column: 0},
		{offset: 3, char: '\n', line: 0, column: 3},
		{offset: 8, char: '\n', line: 1, column: 4},
		{offset: 11, char: 'z', line: 2, column: 2},
	}

	for _, testCase := range tests {
		ref, err := buf.CharAt(testCase.offset)
		require.NoError(t, err)

		assert.Equal(t, testCase.char, ref.Char)
		assert.Equal(t, srctext.Location{
			Path:   "f.cs",
			Offset: testCase.offset,
			Line:   testCase.line,
			Column: testCase.column,
		}, ref.Location)
	}

	assert.Equal(t, srctext.Location{
		Path:   "f.cs",
		Offset: 12,
		Line:   2,
		Column: 3,
	}, buf.EndLocation())
}

func TestCharAt_Coverage(t *testing.T) {
	t.Parallel()

	const content = "one\rtwo\nthree\r\nfour five"
	runes := []rune(content)

	buf := srctext.New("cover.txt", content)
	require.Equal(t, len(runes), buf.Len())

	for offset, want := range runes {
		ref, err := buf.CharAt(offset)
		require.NoError(t, err, "offset %d", offset)
		assert.Equal(t, want, ref.Char, "offset %d", offset)
		assert.Equal(t, offset, ref.Location.Offset)
	}
}

func TestCharAt_OutOfRange(t *testing.T) {
	t.Parallel()

	buf := srctext.New("oob.txt", "ab\ncd")

	for _, offset := range []int{-1, buf.Len(), buf.Len() + 1, 9999} {
		ref, err := buf.CharAt(offset)
		require.Error(t, err, "offset %d", offset)
		assert.ErrorIs(t, err, srctext.ErrOffsetOutOfRange)
		assert.Contains(t, err.Error(), "outside buffer")
		assert.Equal(t, srctext.CharRef{}, ref)
	}
}

func TestCharAt_EmptyBuffer(t *testing.T) {
	t.Parallel()

	buf := srctext.New("empty.txt", "")

	assert.Equal(t, 0, buf.Len())
	assert.Equal(t, 1, buf.LineCount())

	_, err := buf.CharAt(0)
	assert.ErrorIs(t, err, srctext.ErrOffsetOutOfRange)

	assert.Equal(t, srctext.Location{Path: "empty.txt"}, buf.EndLocation())
}

// Warm lookups (sequential forward, sequential backward, repeated) must
// agree with cold lookups served by a fresh buffer per offset.
func TestCharAt_AccessOrderIndependent(t *testing.T) {
	t.Parallel()

	const content = "alpha\nbeta\r\ngamma\rdelta\n\nepsilon"
	length := len([]rune(content))

	cold := make([]srctext.CharRef, length)
	for offset := 0; offset < length; offset++ {
		fresh := srctext.New("order.txt", content)
		ref, err := fresh.CharAt(offset)
		require.NoError(t, err)
		cold[offset] = ref
	}

	forward := srctext.New("order.txt", content)
	for offset := 0; offset < length; offset++ {
		ref, err := forward.CharAt(offset)
		require.NoError(t, err)
		assert.Equal(t, cold[offset], ref, "forward offset %d", offset)
	}

	backward := srctext.New("order.txt", content)
	for offset := length - 1; offset >= 0; offset-- {
		ref, err := backward.CharAt(offset)
		require.NoError(t, err)
		assert.Equal(t, cold[offset], ref, "backward offset %d", offset)
	}

	// A failed lookup clears the cache; the next lookup must still resolve.
	mixed := srctext.New("order.txt", content)
	_, err := mixed.CharAt(length + 5)
	require.Error(t, err)
	ref, err := mixed.CharAt(0)
	require.NoError(t, err)
	assert.Equal(t, cold[0], ref)
}

func TestAppend_Length(t *testing.T) {
	t.Parallel()

	buf := srctext.New("app.txt", "ab\ncd")
	require.Equal(t, 5, buf.Len())

	buf.Append("ef\ngh")
	assert.Equal(t, 10, buf.Len())
	assert.Equal(t, 3, buf.LineCount())

	buf.Append("")
	assert.Equal(t, 10, buf.Len())
}

func TestAppend_SplitCRLF(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		chunks []string
	}{
		{name: "single shot", chunks: []string{"a\r\nb\r\nc"}},
		{name: "split inside CRLF", chunks: []string{"a\r", "\nb\r\nc"}},
		{name: "split at every character", chunks: []string{"a", "\r", "\n", "b", "\r", "\n", "c"}},
		{name: "empty chunk between CR and LF", chunks: []string{"a\r", "", "\nb\r\nc"}},
	}

	want := srctext.New("crlf.txt", "a\r\nb\r\nc")

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			buf := srctext.New("crlf.txt", "")
			for _, chunk := range testCase.chunks {
				buf.Append(chunk)
			}

			assert.Equal(t, want.Len(), buf.Len())
			assert.Equal(t, viewLines(t, want), viewLines(t, buf))
		})
	}
}

func TestAppend_TrailingCRThenText(t *testing.T) {
	t.Parallel()

	// A bare CR at a chunk boundary terminates its own line when the next
	// chunk does not open with LF.
	buf := srctext.New("cr.txt", "a\r")
	require.Equal(t, 2, buf.LineCount())

	buf.Append("b")
	assert.Equal(t, []lineView{
		{start: 0, text: "a\r"},
		{start: 2, text: "b"},
	}, viewLines(t, buf))
}

func TestAppend_AfterLookup(t *testing.T) {
	t.Parallel()

	// Appends leave the resolver cache alone; a stale cache must still
	// resolve correctly against the grown index.
	buf := srctext.New("grow.txt", "ab\n")

	ref, err := buf.CharAt(0)
	require.NoError(t, err)
	require.Equal(t, 'a', ref.Char)

	buf.Append("cd\nef")

	ref, err = buf.CharAt(6)
	require.NoError(t, err)
	assert.Equal(t, 'e', ref.Char)
	assert.Equal(t, 2, ref.Location.Line)
	assert.Equal(t, 0, ref.Location.Column)
}

func TestEndLocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected srctext.Location
	}{
		{
			name:     "two lines",
			content:  "ab\ncd",
			expected: srctext.Location{Path: "end.txt", Offset: 5, Line: 1, Column: 2},
		},
		{
			name:     "trailing newline opens empty line",
			content:  "ab\n",
			expected: srctext.Location{Path: "end.txt", Offset: 3, Line: 1, Column: 0},
		},
		{
			name:     "empty",
			content:  "",
			expected: srctext.Location{Path: "end.txt", Offset: 0, Line: 0, Column: 0},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			buf := srctext.New("end.txt", testCase.content)
			assert.Equal(t, testCase.expected, buf.EndLocation())
		})
	}
}

func TestLine_OutOfRange(t *testing.T) {
	t.Parallel()

	buf := srctext.New("lines.txt", "a\nb")
	assert.Nil(t, buf.Line(-1))
	assert.Nil(t, buf.Line(buf.LineCount()))
	require.NotNil(t, buf.Line(0))
	assert.Equal(t, 2, buf.Line(0).Len())
	assert.Equal(t, 2, buf.Line(0).End())
}
