package editor

import "unicode"

// Position is a location in the buffer. Row and Col are 0-indexed; Col counts codepoints.
type Position struct {
	Row int
	Col int
}

// Before reports whether p comes before q in row-major order.
func (p Position) Before(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// Direction is a single-step cursor movement.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Cursor manages the cursor position within a buffer.
type Cursor struct {
	buf *Buffer
	pos Position
}

// NewCursor creates a new cursor at the start of buf.
func NewCursor(buf *Buffer) *Cursor {
	return &Cursor{buf: buf}
}

// Position returns the current cursor position.
func (c *Cursor) Position() Position {
	return c.pos
}

// Row returns the current row.
func (c *Cursor) Row() int { return c.pos.Row }

// Col returns the current column.
func (c *Cursor) Col() int { return c.pos.Col }

// SetPosition moves the cursor to (row, col), clamped to the document.
// It reports whether the position changed.
func (c *Cursor) SetPosition(row, col int) bool {
	return c.set(c.clampPos(Position{Row: row, Col: col}))
}

// Move moves the cursor one step. Left and Right wrap across line boundaries;
// Up and Down keep the column, clamped to the target line.
func (c *Cursor) Move(dir Direction) bool {
	p := c.pos
	switch dir {
	case Up:
		if p.Row == 0 {
			return false
		}
		p.Row--
		p.Col = min(p.Col, c.buf.LineLen(p.Row))
	case Down:
		if p.Row >= c.buf.LineCount()-1 {
			return false
		}
		p.Row++
		p.Col = min(p.Col, c.buf.LineLen(p.Row))
	case Left:
		switch {
		case p.Col > 0:
			p.Col--
		case p.Row > 0:
			p.Row--
			p.Col = c.buf.LineLen(p.Row)
		default:
			return false
		}
	case Right:
		switch {
		case p.Col < c.buf.LineLen(p.Row):
			p.Col++
		case p.Row < c.buf.LineCount()-1:
			p.Row++
			p.Col = 0
		default:
			return false
		}
	}
	return c.set(p)
}

// MoveToPosition places the cursor at a screen-relative row. The document row is
// row+scrollOffset; the result is clamped to the document.
func (c *Cursor) MoveToPosition(row, col, scrollOffset int) bool {
	return c.SetPosition(row+scrollOffset, col)
}

// MoveToLineStart moves the cursor to column 0.
func (c *Cursor) MoveToLineStart() bool {
	return c.set(Position{Row: c.pos.Row})
}

// MoveToLineEnd moves the cursor past the last character of the line.
func (c *Cursor) MoveToLineEnd() bool {
	return c.set(Position{Row: c.pos.Row, Col: c.buf.LineLen(c.pos.Row)})
}

// MoveToDocumentStart moves the cursor to (0, 0).
func (c *Cursor) MoveToDocumentStart() bool {
	return c.set(Position{})
}

// MoveToDocumentEnd moves the cursor to the end of the last line.
func (c *Cursor) MoveToDocumentEnd() bool {
	last := c.buf.LineCount() - 1
	return c.set(Position{Row: last, Col: c.buf.LineLen(last)})
}

// MoveWordLeft moves the cursor to the start of the previous word.
func (c *Cursor) MoveWordLeft() bool {
	p := c.pos
	if p.Col == 0 {
		return c.Move(Left)
	}
	runes := []rune(c.buf.Line(p.Row))
	p.Col = min(p.Col, len(runes))
	for p.Col > 0 && !isWordChar(runes[p.Col-1]) {
		p.Col--
	}
	for p.Col > 0 && isWordChar(runes[p.Col-1]) {
		p.Col--
	}
	return c.set(p)
}

// MoveWordRight moves the cursor to the start of the next word.
func (c *Cursor) MoveWordRight() bool {
	p := c.pos
	runes := []rune(c.buf.Line(p.Row))
	if p.Col >= len(runes) {
		return c.Move(Right)
	}
	for p.Col < len(runes) && isWordChar(runes[p.Col]) {
		p.Col++
	}
	for p.Col < len(runes) && !isWordChar(runes[p.Col]) {
		p.Col++
	}
	return c.set(p)
}

// Validate clamps the cursor back into the document after a structural change.
// It is idempotent and reports whether the position had to change.
func (c *Cursor) Validate() bool {
	return c.set(c.clampPos(c.pos))
}

func (c *Cursor) clampPos(p Position) Position {
	p.Row = clamp(p.Row, 0, c.buf.LineCount()-1)
	p.Col = clamp(p.Col, 0, c.buf.LineLen(p.Row))
	return p
}

func (c *Cursor) set(p Position) bool {
	if p == c.pos {
		return false
	}
	c.pos = p
	return true
}

// isWordChar returns true if the rune is part of a word.
func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
