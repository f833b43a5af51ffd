package ui

import (
	"strconv"

	"github.com/mattn/go-runewidth"

	"github.com/ajstrand/hello-tui/syntax"
)

// LintLevel is the most severe diagnostic on a line, as shown in the gutter.
type LintLevel int

const (
	LintNone LintLevel = iota
	LintHint
	LintInfo
	LintWarning
	LintError
)

// Glyphs are the characters used for markers that have no text of their own.
type Glyphs struct {
	Truncation rune
	Filler     rune
	Error      rune
	Warning    rune
	Info       rune
	Hint       rune
}

// UnicodeGlyphs returns markers for UTF-8 capable terminals.
func UnicodeGlyphs() Glyphs {
	return Glyphs{Truncation: '…', Filler: '~', Error: '●', Warning: '▲', Info: '•', Hint: '·'}
}

// ASCIIGlyphs returns markers that render on any terminal.
func ASCIIGlyphs() Glyphs {
	return Glyphs{Truncation: '>', Filler: '~', Error: 'E', Warning: 'W', Info: 'I', Hint: 'H'}
}

// SelectionTester reports whether a document cell is selected.
type SelectionTester interface {
	Contains(row, col int) bool
}

// RenderState is everything needed to compose one frame.
type RenderState struct {
	Width  int
	Height int // content rows, header and status excluded

	Lines      []string // visible lines; Lines[i] is document row FirstLine+i
	FirstLine  int
	TotalLines int

	CursorRow int
	CursorCol int
	Selection SelectionTester // nil when nothing is selected

	LineColors  map[int][]syntax.ColorSpan // by document row
	LintMarks   map[int]LintLevel          // by document row
	LineNumbers bool

	Header HeaderInfo
	Status StatusInfo
}

// TextRenderer composes frames. It holds no document state of its own.
type TextRenderer struct {
	glyphs Glyphs
}

// NewTextRenderer creates a new text renderer.
func NewTextRenderer(glyphs Glyphs) *TextRenderer {
	return &TextRenderer{glyphs: glyphs}
}

// SetGlyphs changes the marker characters.
func (r *TextRenderer) SetGlyphs(glyphs Glyphs) {
	r.glyphs = glyphs
}

// Render composes a frame with exactly state.Height content rows, each exactly
// state.Width cells wide. It never fails; degenerate sizes give empty rows.
func (r *TextRenderer) Render(state *RenderState) Frame {
	width := max(state.Width, 0)
	height := max(state.Height, 0)

	f := Frame{
		Width:  width,
		Header: composeHeader(state.Header, width),
		Rows:   make([]Row, height),
		Status: composeStatus(state.Status, width),
	}

	gutter := 0
	if state.LineNumbers {
		gutter = gutterWidth(state.TotalLines)
		if gutter >= width {
			gutter = 0
		}
	}

	for i := range height {
		if i < len(state.Lines) {
			f.Rows[i] = r.renderLine(state, i, width, gutter)
		} else {
			f.Rows[i] = r.renderEmptyLine(width)
		}
	}
	return f
}

func (r *TextRenderer) renderLine(state *RenderState, i, width, gutter int) Row {
	docRow := state.FirstLine + i
	b := &rowBuilder{}

	if gutter > 0 {
		r.renderGutter(b, state, docRow, gutter)
	}

	textWidth := width - gutter
	runes := []rune(state.Lines[i])
	total := 0
	for _, ch := range runes {
		total += cellWidth(ch)
	}
	truncated := total > textWidth
	limit := textWidth
	if truncated {
		limit = textWidth - 1
	}

	cursorLine := docRow == state.CursorRow
	cursorDrawn := false
	colors := state.LineColors[docRow]
	for col, ch := range runes {
		if b.width-gutter+cellWidth(ch) > limit {
			break
		}
		role := RoleText
		color := syntax.ColorAt(colors, col)
		switch {
		case cursorLine && col == state.CursorCol:
			role, color = RoleCursor, ""
			cursorDrawn = true
		case state.Selection != nil && state.Selection.Contains(docRow, col):
			role, color = RoleSelection, ""
		}
		b.add(displayRune(ch), role, color)
	}

	if truncated {
		if limit >= 0 {
			b.pad(gutter+limit, RoleText)
			b.add(r.glyphs.Truncation, RoleTruncation, "")
		}
	} else if cursorLine && state.CursorCol >= len(runes) && b.width < width {
		b.add(' ', RoleCursor, "")
		cursorDrawn = true
	}

	// A cursor past the drawable width sits on the last text cell.
	if cursorLine && !cursorDrawn && len(b.row) > gutter {
		last := &b.row[len(b.row)-1]
		last.Role, last.Color = RoleCursor, ""
	}

	b.pad(width, RoleText)
	return fit(b.row, width, RoleText)
}

func (r *TextRenderer) renderGutter(b *rowBuilder, state *RenderState, docRow, gutter int) {
	role := RoleGutter
	if docRow == state.CursorRow {
		role = RoleGutterCurrent
	}
	b.addString(padLeft(strconv.Itoa(docRow+1), gutter-2), role)

	mark, markRole := ' ', role
	switch state.LintMarks[docRow] {
	case LintError:
		mark, markRole = r.glyphs.Error, RoleLintError
	case LintWarning:
		mark, markRole = r.glyphs.Warning, RoleLintWarning
	case LintInfo:
		mark, markRole = r.glyphs.Info, RoleLintInfo
	case LintHint:
		mark, markRole = r.glyphs.Hint, RoleLintHint
	}
	b.add(mark, markRole, "")
	b.add(' ', RoleGutter, "")
}

func padLeft(s string, width int) string {
	for runewidth.StringWidth(s) < width {
		s = " " + s
	}
	return s
}

// renderEmptyLine renders a filler row past the end of the document.
func (r *TextRenderer) renderEmptyLine(width int) Row {
	if width <= 0 {
		return Row{}
	}
	b := &rowBuilder{}
	b.add(r.glyphs.Filler, RoleFiller, "")
	b.pad(width, RoleText)
	return b.row
}

// gutterWidth is the gutter size for a document of totalLines.
func gutterWidth(totalLines int) int {
	return max(3, len(strconv.Itoa(totalLines))) + 2
}

// fit trims or pads row to exactly width display columns. A wide rune
// straddling the edge is replaced by a blank.
func fit(row Row, width int, padRole Role) Row {
	out := make(Row, 0, len(row))
	w := 0
	for _, c := range row {
		cw := cellWidth(c.Rune)
		if w+cw > width {
			break
		}
		out = append(out, c)
		w += cw
	}
	for w < width {
		out = append(out, Cell{Rune: ' ', Role: padRole})
		w++
	}
	return out
}
