package editor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ajstrand/hello-tui/lint"
	"github.com/ajstrand/hello-tui/syntax"
	"github.com/ajstrand/hello-tui/ui"
)

// Frame renders the current state.
func (e *Editor) Frame() ui.Frame {
	return e.renderer.Render(e.RenderState())
}

// RenderState collects what the renderer needs for the visible page.
func (e *Editor) RenderState() *ui.RenderState {
	total := e.buf.LineCount()
	first := e.viewport.ScrollOffset()
	lines := e.buf.View(first, first+e.viewport.Height())

	st := &ui.RenderState{
		Width:       e.width,
		Height:      e.viewport.Height(),
		Lines:       lines,
		FirstLine:   first,
		TotalLines:  total,
		CursorRow:   e.cursor.Row(),
		CursorCol:   e.cursor.Col(),
		LineNumbers: e.viewport.ShowLineNum(),
		Header:      e.header(),
		Status:      e.status(),
	}
	if e.hasSel {
		st.Selection = e.sel
	}

	if e.highlight && e.language != "" {
		st.LineColors = make(map[int][]syntax.ColorSpan, len(lines))
		for i, line := range lines {
			if spans := e.hl.HighlightLine(line, e.language).Spans; len(spans) > 0 {
				st.LineColors[first+i] = spans
			}
		}
	}

	if len(e.issues) > 0 {
		st.LintMarks = make(map[int]ui.LintLevel)
		for row, sev := range lint.WorstByLine(e.issues) {
			if row >= first && row < first+len(lines) {
				st.LintMarks[row] = lintLevel(sev)
			}
		}
	}
	return st
}

func lintLevel(s lint.Severity) ui.LintLevel {
	switch s {
	case lint.Error:
		return ui.LintError
	case lint.Warning:
		return ui.LintWarning
	case lint.Info:
		return ui.LintInfo
	case lint.Hint:
		return ui.LintHint
	}
	return ui.LintNone
}

func (e *Editor) header() ui.HeaderInfo {
	title := e.loc.Get("no-file", nil)
	if e.filename != "" {
		title = filepath.Base(e.filename)
	}
	return ui.HeaderInfo{
		Title:    title,
		Modified: e.modified,
		Marker:   "[" + e.loc.Get("modified", nil) + "]",
		Right:    e.languageLabel(),
	}
}

func (e *Editor) status() ui.StatusInfo {
	if label, input, ok := e.Prompt(); ok {
		return ui.StatusInfo{Left: label + input + "_"}
	}

	pos := e.cursor.Position()
	left := e.loc.Get("status-position", map[string]any{"line": pos.Row + 1, "col": pos.Col + 1})
	if e.hasSel {
		left += " | " + e.loc.Get("status-selected", map[string]any{"count": e.sel.Len(e.buf)})
	}

	right := e.lintSummary() + " | " + e.loc.Get("status-lines", map[string]any{"count": e.buf.LineCount()})
	return ui.StatusInfo{
		Left:        left,
		Message:     e.message,
		MessageType: e.messageType,
		Right:       right,
	}
}

// lintSummary shows a count per severity, or a single OK when clean.
func (e *Editor) lintSummary() string {
	if !e.lint.Enabled() {
		return e.loc.Get("status-lint-off", nil)
	}
	c := lint.CountIssues(e.issues)
	if c.Total() == 0 {
		return e.loc.Get("status-lint-ok", nil)
	}

	var parts []string
	for _, p := range []struct {
		glyph rune
		n     int
	}{
		{e.glyphs.Error, c.Errors},
		{e.glyphs.Warning, c.Warnings},
		{e.glyphs.Info, c.Infos},
		{e.glyphs.Hint, c.Hints},
	} {
		if p.n > 0 {
			parts = append(parts, fmt.Sprintf("%c%d", p.glyph, p.n))
		}
	}
	return strings.Join(parts, " ")
}
