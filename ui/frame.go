package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Role tells a render target how to style a cell.
type Role int

const (
	RoleText Role = iota
	RoleGutter
	RoleGutterCurrent
	RoleCursor
	RoleSelection
	RoleFiller
	RoleTruncation
	RoleHeader
	RoleHeaderAccent
	RoleStatus
	RoleStatusInfo
	RoleStatusError
	RoleStatusSuccess
	RoleLintError
	RoleLintWarning
	RoleLintInfo
	RoleLintHint
)

// Cell is one character of a frame. Wide runes occupy two display columns and are
// stored once; Color is an optional theme color overriding the role foreground.
type Cell struct {
	Rune  rune
	Role  Role
	Color string
}

// Row is one screen line.
type Row []Cell

// String returns the row text without styling.
func (r Row) String() string {
	var sb strings.Builder
	for _, c := range r {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// Width returns the number of display columns the row occupies.
func (r Row) Width() int {
	w := 0
	for _, c := range r {
		w += cellWidth(c.Rune)
	}
	return w
}

// Frame is a complete rectangular screen image.
type Frame struct {
	Width  int
	Header Row
	Rows   []Row
	Status Row
}

// Lines returns every row of the frame as plain text, header first.
func (f Frame) Lines() []string {
	lines := make([]string, 0, len(f.Rows)+2)
	lines = append(lines, f.Header.String())
	for _, r := range f.Rows {
		lines = append(lines, r.String())
	}
	return append(lines, f.Status.String())
}

// rowBuilder appends cells while tracking display width.
type rowBuilder struct {
	row   Row
	width int
}

func (b *rowBuilder) add(r rune, role Role, color string) {
	b.row = append(b.row, Cell{Rune: r, Role: role, Color: color})
	b.width += cellWidth(r)
}

func (b *rowBuilder) addString(s string, role Role) {
	for _, r := range s {
		b.add(r, role, "")
	}
}

// pad fills the row with spaces up to width.
func (b *rowBuilder) pad(width int, role Role) {
	for b.width < width {
		b.add(' ', role, "")
	}
}

// cellWidth is the display width of r. Control characters are drawn as one blank
// cell and zero-width runes still take a cell so the grid stays rectangular.
func cellWidth(r rune) int {
	if runewidth.RuneWidth(r) == 2 {
		return 2
	}
	return 1
}

// displayRune maps runes that cannot be drawn as-is to a blank.
func displayRune(r rune) rune {
	if r < 0x20 || r == 0x7f || runewidth.RuneWidth(r) == 0 {
		return ' '
	}
	return r
}
