package editor

// InsertChar inserts r at the cursor and advances one column.
func (c *Cursor) InsertChar(r rune) {
	c.Validate()
	c.buf.InsertRune(c.pos.Row, c.pos.Col, r)
	c.pos.Col++
}

// DeleteBackward removes the character before the cursor. At column 0 it joins
// the line onto the previous one and leaves the cursor at the join point.
func (c *Cursor) DeleteBackward() bool {
	c.Validate()
	p := c.pos
	switch {
	case p.Col > 0:
		c.buf.DeleteRune(p.Row, p.Col-1)
		c.pos.Col--
		return true
	case p.Row > 0:
		join := c.buf.LineLen(p.Row - 1)
		c.buf.JoinLine(p.Row - 1)
		c.pos = Position{Row: p.Row - 1, Col: join}
		return true
	}
	return false
}

// DeleteForward removes the character under the cursor, or joins the next line
// when the cursor is at the end of its line.
func (c *Cursor) DeleteForward() bool {
	c.Validate()
	p := c.pos
	if p.Col < c.buf.LineLen(p.Row) {
		return c.buf.DeleteRune(p.Row, p.Col)
	}
	return c.buf.JoinLine(p.Row)
}

// InsertNewline splits the line at the cursor and moves to the start of the new line.
func (c *Cursor) InsertNewline() {
	c.Validate()
	c.buf.SplitLine(c.pos.Row, c.pos.Col)
	c.pos = Position{Row: c.pos.Row + 1}
}

// DuplicateLine copies the current line below itself and moves onto the copy.
func (c *Cursor) DuplicateLine() {
	c.Validate()
	c.buf.InsertLine(c.pos.Row+1, c.buf.Line(c.pos.Row))
	c.pos.Row++
}

// DeleteLine removes the current line. The last remaining line is cleared instead.
func (c *Cursor) DeleteLine() bool {
	c.Validate()
	if c.buf.LineCount() == 1 {
		if c.buf.Line(0) == "" {
			return false
		}
		c.buf.SetLine(0, "")
		c.pos = Position{}
		return true
	}
	c.buf.RemoveLines(c.pos.Row, c.pos.Row+1)
	c.Validate()
	return true
}
