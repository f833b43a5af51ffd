package editor

import (
	"strings"
	"unicode/utf8"
)

// Buffer holds the document as an ordered list of lines.
// A Buffer always contains at least one line; an empty document is one empty line.
// All column arguments are codepoint indices.
type Buffer struct {
	lines []string
}

// NewBuffer creates a new empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{lines: []string{""}}
}

// NewBufferFromLines creates a buffer holding a copy of lines.
func NewBufferFromLines(lines []string) *Buffer {
	b := &Buffer{}
	b.SetLines(lines)
	return b
}

// NewBufferFromString creates a buffer from newline-separated text.
func NewBufferFromString(s string) *Buffer {
	return NewBufferFromLines(strings.Split(s, "\n"))
}

// SetLines replaces the whole document.
func (b *Buffer) SetLines(lines []string) {
	if len(lines) == 0 {
		b.lines = []string{""}
		return
	}
	b.lines = make([]string, len(lines))
	copy(b.lines, lines)
}

// LineCount returns the number of lines in the buffer.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return b.lines[row]
}

// LineLen returns the length of row in codepoints.
func (b *Buffer) LineLen(row int) int {
	return utf8.RuneCountInString(b.Line(row))
}

// Lines returns a copy of all lines.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// View returns the lines in [from, to) without copying. Callers must not modify it.
func (b *Buffer) View(from, to int) []string {
	from = clamp(from, 0, len(b.lines))
	to = clamp(to, from, len(b.lines))
	return b.lines[from:to]
}

// String returns the document joined with newlines.
func (b *Buffer) String() string {
	return strings.Join(b.lines, "\n")
}

// Slice returns the codepoints [from, to) of row, clamped to the line.
func (b *Buffer) Slice(row, from, to int) string {
	runes := []rune(b.Line(row))
	from = clamp(from, 0, len(runes))
	to = clamp(to, from, len(runes))
	return string(runes[from:to])
}

// InsertRune inserts r into row at col.
func (b *Buffer) InsertRune(row, col int, r rune) {
	if !b.validRow(row) {
		return
	}
	runes := []rune(b.lines[row])
	col = clamp(col, 0, len(runes))
	runes = append(runes[:col], append([]rune{r}, runes[col:]...)...)
	b.lines[row] = string(runes)
}

// DeleteRune removes the codepoint at col in row. It reports whether anything was removed.
func (b *Buffer) DeleteRune(row, col int) bool {
	if !b.validRow(row) {
		return false
	}
	runes := []rune(b.lines[row])
	if col < 0 || col >= len(runes) {
		return false
	}
	b.lines[row] = string(append(runes[:col], runes[col+1:]...))
	return true
}

// DeleteRange removes the codepoints [from, to) of row.
func (b *Buffer) DeleteRange(row, from, to int) {
	if !b.validRow(row) {
		return
	}
	runes := []rune(b.lines[row])
	from = clamp(from, 0, len(runes))
	to = clamp(to, from, len(runes))
	b.lines[row] = string(append(runes[:from], runes[to:]...))
}

// SplitLine breaks row at col, moving the tail onto a new line below.
func (b *Buffer) SplitLine(row, col int) {
	if !b.validRow(row) {
		return
	}
	runes := []rune(b.lines[row])
	col = clamp(col, 0, len(runes))
	head, tail := string(runes[:col]), string(runes[col:])
	b.lines[row] = head
	b.insertLineAt(row+1, tail)
}

// JoinLine appends row+1 onto row and removes row+1.
// It returns false when row is the last line.
func (b *Buffer) JoinLine(row int) bool {
	if row < 0 || row+1 >= len(b.lines) {
		return false
	}
	b.lines[row] += b.lines[row+1]
	b.lines = append(b.lines[:row+1], b.lines[row+2:]...)
	return true
}

// SetLine replaces the text of row.
func (b *Buffer) SetLine(row int, text string) {
	if b.validRow(row) {
		b.lines[row] = text
	}
}

// InsertLine inserts text as a new line at row, shifting later lines down.
func (b *Buffer) InsertLine(row int, text string) {
	b.insertLineAt(clamp(row, 0, len(b.lines)), text)
}

// RemoveLines deletes rows [from, to). The buffer keeps at least one line.
func (b *Buffer) RemoveLines(from, to int) {
	from = clamp(from, 0, len(b.lines))
	to = clamp(to, from, len(b.lines))
	b.lines = append(b.lines[:from], b.lines[to:]...)
	if len(b.lines) == 0 {
		b.lines = []string{""}
	}
}

func (b *Buffer) insertLineAt(row int, text string) {
	b.lines = append(b.lines, "")
	copy(b.lines[row+1:], b.lines[row:])
	b.lines[row] = text
}

func (b *Buffer) validRow(row int) bool {
	return row >= 0 && row < len(b.lines)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
