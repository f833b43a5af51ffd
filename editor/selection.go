package editor

import (
	"strings"
	"unicode/utf8"
)

// Selection is a range of text with Start never after End.
// Start is inclusive and End exclusive.
type Selection struct {
	Start Position
	End   Position
}

// NewSelection creates a selection between two points in either order.
func NewSelection(a, b Position) Selection {
	if b.Before(a) {
		a, b = b, a
	}
	return Selection{Start: a, End: b}
}

// IsEmpty returns true if the selection covers no characters.
func (s Selection) IsEmpty() bool {
	return s.Start == s.End
}

// Contains reports whether the character at (row, col) is selected.
func (s Selection) Contains(row, col int) bool {
	if row < s.Start.Row || row > s.End.Row {
		return false
	}
	if s.Start.Row == s.End.Row {
		return col >= s.Start.Col && col < s.End.Col
	}
	switch row {
	case s.Start.Row:
		return col >= s.Start.Col
	case s.End.Row:
		return col < s.End.Col
	}
	return true
}

// Text returns the selected text with rows joined by newlines.
func (s Selection) Text(buf *Buffer) string {
	if s.Start.Row == s.End.Row {
		return buf.Slice(s.Start.Row, s.Start.Col, s.End.Col)
	}
	var sb strings.Builder
	sb.WriteString(buf.Slice(s.Start.Row, s.Start.Col, buf.LineLen(s.Start.Row)))
	for row := s.Start.Row + 1; row < s.End.Row; row++ {
		sb.WriteByte('\n')
		sb.WriteString(buf.Line(row))
	}
	sb.WriteByte('\n')
	sb.WriteString(buf.Slice(s.End.Row, 0, s.End.Col))
	return sb.String()
}

// Len returns the number of selected codepoints, newlines included.
func (s Selection) Len(buf *Buffer) int {
	return utf8.RuneCountInString(s.Text(buf))
}

// Delete removes the selected text and leaves the cursor at Start.
func (s Selection) Delete(buf *Buffer, c *Cursor) {
	if s.Start.Row == s.End.Row {
		buf.DeleteRange(s.Start.Row, s.Start.Col, s.End.Col)
	} else {
		head := buf.Slice(s.Start.Row, 0, s.Start.Col)
		tail := buf.Slice(s.End.Row, s.End.Col, buf.LineLen(s.End.Row))
		buf.SetLine(s.Start.Row, head+tail)
		buf.RemoveLines(s.Start.Row+1, s.End.Row+1)
	}
	c.SetPosition(s.Start.Row, s.Start.Col)
	c.Validate()
}

// WordBounds returns the codepoint range [start, end) of the word touching col.
// A word is a run of letters, digits and underscores. When col is at or past the
// end of the line, start == end == col.
func WordBounds(line string, col int) (start, end int) {
	runes := []rune(line)
	if col < 0 || col >= len(runes) {
		return col, col
	}
	start, end = col, col
	for start > 0 && isWordChar(runes[start-1]) {
		start--
	}
	for end < len(runes) && isWordChar(runes[end]) {
		end++
	}
	return start, end
}
