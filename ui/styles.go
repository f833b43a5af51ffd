package ui

import (
	"strconv"
	"strings"

	"github.com/ajstrand/hello-tui/config"

	"github.com/charmbracelet/lipgloss"
)

// RoleStyle is a backend-neutral description of how a role is drawn.
// Colors are theme color strings; empty means the terminal default.
type RoleStyle struct {
	Fg      string
	Bg      string
	Bold    bool
	Reverse bool
}

// Styles maps frame roles to concrete styles for a theme.
type Styles struct {
	// The theme these styles were generated from
	Theme config.Theme

	trueColor bool
	roles     map[Role]RoleStyle
	lipgloss  map[Role]lipgloss.Style
}

// NewStyles creates a Styles configuration from a theme.
// When trueColor is false, hex colors are reduced to the nearest 256-color index.
func NewStyles(theme config.Theme, trueColor bool) Styles {
	s := Styles{Theme: theme, trueColor: trueColor}
	ui := theme.UI

	s.roles = map[Role]RoleStyle{
		RoleText:          {},
		RoleGutter:        {Fg: ui.LineNumber},
		RoleGutterCurrent: {Fg: ui.LineNumberActive, Bold: true},
		RoleCursor:        {Reverse: true},
		RoleSelection:     {Fg: ui.SelectionFg, Bg: ui.SelectionBg},
		RoleFiller:        {Fg: ui.FillerFg},
		RoleTruncation:    {Fg: ui.StatusAccent, Bold: true},
		RoleHeader:        {Fg: ui.HeaderFg, Bg: ui.HeaderBg, Bold: true},
		RoleHeaderAccent:  {Fg: ui.HeaderAccent, Bg: ui.HeaderBg, Bold: true},
		RoleStatus:        {Fg: ui.StatusFg, Bg: ui.StatusBg},
		RoleStatusInfo:    {Fg: ui.StatusAccent, Bg: ui.StatusBg},
		RoleStatusError:   {Fg: ui.ErrorFg, Bg: ui.StatusBg, Bold: true},
		RoleStatusSuccess: {Fg: ui.SuccessFg, Bg: ui.StatusBg, Bold: true},
		RoleLintError:     {Fg: ui.ErrorFg, Bold: true},
		RoleLintWarning:   {Fg: ui.WarningFg},
		RoleLintInfo:      {Fg: ui.InfoFg},
		RoleLintHint:      {Fg: ui.HintFg},
	}

	s.lipgloss = make(map[Role]lipgloss.Style, len(s.roles))
	for role, rs := range s.roles {
		s.lipgloss[role] = s.toLipgloss(rs)
	}
	return s
}

// DefaultStyles returns the default style configuration
func DefaultStyles() Styles {
	return NewStyles(config.DefaultTheme(), true)
}

// RoleStyle returns the style for role with colors normalized for the terminal.
func (s Styles) RoleStyle(role Role) RoleStyle {
	rs := s.roles[role]
	rs.Fg = s.Color(rs.Fg)
	rs.Bg = s.Color(rs.Bg)
	return rs
}

// CellStyle returns the style for a cell, applying its syntax color when set.
func (s Styles) CellStyle(c Cell) RoleStyle {
	rs := s.RoleStyle(c.Role)
	if c.Color != "" {
		rs.Fg = s.Color(c.Color)
	}
	return rs
}

// Color normalizes a theme color string. Hex colors fall back to the nearest
// 256-color index when true color is off.
func (s Styles) Color(color string) string {
	if s.trueColor || !strings.HasPrefix(color, "#") {
		return color
	}
	r, g, b := parseHexColor(color)
	return strconv.Itoa(rgbTo256Color(r, g, b))
}

func (s Styles) toLipgloss(rs RoleStyle) lipgloss.Style {
	st := lipgloss.NewStyle()
	if rs.Fg != "" {
		st = st.Foreground(lipgloss.Color(s.Color(rs.Fg)))
	}
	if rs.Bg != "" {
		st = st.Background(lipgloss.Color(s.Color(rs.Bg)))
	}
	if rs.Bold {
		st = st.Bold(true)
	}
	if rs.Reverse {
		st = st.Reverse(true)
	}
	return st
}

// RenderRow renders a row as a styled string, one lipgloss run per style change.
func (s Styles) RenderRow(row Row) string {
	var sb strings.Builder
	var run strings.Builder
	var cur Cell
	flush := func() {
		if run.Len() == 0 {
			return
		}
		st := s.lipgloss[cur.Role]
		if cur.Color != "" {
			st = st.Foreground(lipgloss.Color(s.Color(cur.Color)))
		}
		sb.WriteString(st.Render(run.String()))
		run.Reset()
	}
	for i, c := range row {
		if i == 0 || c.Role != cur.Role || c.Color != cur.Color {
			flush()
			cur = c
		}
		run.WriteRune(c.Rune)
	}
	flush()
	return sb.String()
}

// RenderFrame renders a full frame, header first, rows separated by newlines.
func (s Styles) RenderFrame(f Frame) string {
	lines := make([]string, 0, len(f.Rows)+2)
	lines = append(lines, s.RenderRow(f.Header))
	for _, r := range f.Rows {
		lines = append(lines, s.RenderRow(r))
	}
	lines = append(lines, s.RenderRow(f.Status))
	return strings.Join(lines, "\n")
}

// rgbTo256Color converts RGB values to the nearest 256-color palette index
func rgbTo256Color(r, g, b int) int {
	// Check if it's close to a grayscale color
	if isGrayscale(r, g, b) {
		return rgbToGrayscale(r, g, b)
	}
	// Convert to 6x6x6 color cube (colors 16-231)
	return 16 + 36*rgbTo6(r) + 6*rgbTo6(g) + rgbTo6(b)
}

// rgbTo6 converts an 8-bit color value to a 6-level value (0-5)
// The 6x6x6 cube uses values: 0, 95, 135, 175, 215, 255
func rgbTo6(v int) int {
	switch {
	case v < 48:
		return 0
	case v < 115:
		return 1
	case v < 155:
		return 2
	case v < 195:
		return 3
	case v < 235:
		return 4
	}
	return 5
}

// isGrayscale checks if RGB values are close enough to be grayscale
func isGrayscale(r, g, b int) bool {
	return max(r, g, b)-min(r, g, b) < 20
}

// rgbToGrayscale converts RGB to nearest grayscale in 232-255 range
func rgbToGrayscale(r, g, b int) int {
	gray := (r + g + b) / 3
	if gray < 4 {
		return 16 // Use black from color cube
	}
	if gray > 243 {
		return 231 // Use white from color cube
	}
	return 232 + (gray-8)/10
}

// parseHexColor parses #RGB or #RRGGBB to r, g, b values
func parseHexColor(hex string) (int, int, int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 {
		// #RGB -> #RRGGBB
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		r, _ := strconv.ParseInt(hex[0:2], 16, 32)
		g, _ := strconv.ParseInt(hex[2:4], 16, 32)
		b, _ := strconv.ParseInt(hex[4:6], 16, 32)
		return int(r), int(g), int(b)
	}
	return 255, 255, 255 // Default to white on error
}
