package ui

// Viewport maps document rows onto the visible content area.
type Viewport struct {
	width        int // total columns, gutter included
	height       int // content rows
	scrollOffset int // first visible document row
	showLineNum  bool
}

// NewViewport creates a new viewport
func NewViewport() *Viewport {
	return &Viewport{
		width:       80,
		height:      22,
		showLineNum: true,
	}
}

// SetSize sets the viewport dimensions. Negative sizes are treated as zero.
func (v *Viewport) SetSize(width, height int) {
	v.width = max(width, 0)
	v.height = max(height, 0)
}

// Width returns the viewport width
func (v *Viewport) Width() int {
	return v.width
}

// Height returns the number of content rows
func (v *Viewport) Height() int {
	return v.height
}

// ScrollOffset returns the first visible document row
func (v *Viewport) ScrollOffset() int {
	return v.scrollOffset
}

// SetScrollOffset sets the first visible row, clamped for a document of totalLines.
func (v *Viewport) SetScrollOffset(offset, totalLines int) bool {
	offset = clampScroll(offset, v.height, totalLines)
	if offset == v.scrollOffset {
		return false
	}
	v.scrollOffset = offset
	return true
}

// ShowLineNumbers toggles the line number gutter
func (v *Viewport) ShowLineNumbers(show bool) {
	v.showLineNum = show
}

// ShowLineNum reports whether the gutter is drawn
func (v *Viewport) ShowLineNum() bool {
	return v.showLineNum
}

// GutterWidth returns the gutter width for a document of totalLines:
// right-aligned line numbers (at least 3 digits), a lint marker and a space.
func (v *Viewport) GutterWidth(totalLines int) int {
	if !v.showLineNum {
		return 0
	}
	return gutterWidth(totalLines)
}

// TextWidth returns the number of cells available for text.
func (v *Viewport) TextWidth(totalLines int) int {
	return max(v.width-v.GutterWidth(totalLines), 0)
}

// EnsureCursorVisible scrolls so cursorRow is on screen. It reports whether the offset changed.
func (v *Viewport) EnsureCursorVisible(cursorRow, totalLines int) bool {
	next := AdjustScrollForVisibility(v.scrollOffset, v.height, totalLines, cursorRow)
	if next == v.scrollOffset {
		return false
	}
	v.scrollOffset = next
	return true
}

// ScrollBy moves the view by delta rows, clamped to the document.
func (v *Viewport) ScrollBy(delta, totalLines int) bool {
	return v.SetScrollOffset(v.scrollOffset+delta, totalLines)
}

// ScreenToDocument converts a content-area row to a document row.
func (v *Viewport) ScreenToDocument(screenRow int) int {
	return screenRow + v.scrollOffset
}

// DocumentToScreen converts a document row to a content-area row.
// ok is false when the row is not on screen.
func (v *Viewport) DocumentToScreen(docRow int) (row int, ok bool) {
	row = docRow - v.scrollOffset
	return row, row >= 0 && row < v.height
}

// AdjustScrollForVisibility returns the scroll offset that keeps cursorRow on a
// page of height rows. The result is always within [0, max(0, totalLines-height)].
func AdjustScrollForVisibility(scrollOffset, height, totalLines, cursorRow int) int {
	switch {
	case cursorRow < scrollOffset:
		scrollOffset = cursorRow
	case height > 0 && cursorRow >= scrollOffset+height:
		scrollOffset = cursorRow - height + 1
	}
	return clampScroll(scrollOffset, height, totalLines)
}

func clampScroll(offset, height, totalLines int) int {
	maxScroll := max(totalLines-max(height, 0), 0)
	return min(max(offset, 0), maxScroll)
}

// ColumnAtCell returns the codepoint column under display cell x of line.
// Cells past the end of the line map to the line length.
func ColumnAtCell(line string, x int) int {
	if x <= 0 {
		return 0
	}
	cells, col := 0, 0
	for _, r := range line {
		w := cellWidth(r)
		if cells+w > x {
			return col
		}
		cells += w
		col++
	}
	return col
}

// CellOfColumn returns the display cell where codepoint column col of line starts.
func CellOfColumn(line string, col int) int {
	cells := 0
	for i, r := range []rune(line) {
		if i >= col {
			break
		}
		cells += cellWidth(r)
	}
	return cells
}
