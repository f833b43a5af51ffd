package editor

import (
	"github.com/ajstrand/hello-tui/mouse"
	"github.com/ajstrand/hello-tui/ui"
)

// PointerEvent is a raw mouse event in terminal cells. Y counts from the
// header row at 0; content rows start at 1.
type PointerEvent struct {
	Kind   mouse.Kind
	Button mouse.Button
	X, Y   int
}

// HandlePointer interprets a raw mouse event and applies the resulting gesture.
func (e *Editor) HandlePointer(ev PointerEvent) Outcome {
	before := e.snapshot()
	if e.prompt != nil {
		return e.outcome(before, false)
	}

	row := ev.Y - 1
	switch ev.Kind {
	case mouse.Down:
		if row < 0 || row >= e.viewport.Height() {
			return e.outcome(before, false)
		}
	case mouse.Drag, mouse.Up:
		row = min(max(row, 0), max(e.viewport.Height()-1, 0))
	}

	g := e.gestures.Interpret(mouse.Event{
		Kind:   ev.Kind,
		Button: ev.Button,
		Row:    row,
		Col:    e.columnAt(row, ev.X),
	})
	e.applyGesture(g)
	return e.outcome(before, false)
}

// columnAt maps terminal column x on a content row to a codepoint column.
func (e *Editor) columnAt(row, x int) int {
	gutter := e.gutterWidth()
	line := e.buf.Line(e.viewport.ScreenToDocument(row))
	return ui.ColumnAtCell(line, x-gutter)
}

// gutterWidth matches the renderer, which drops a gutter that fills the row.
func (e *Editor) gutterWidth() int {
	g := e.viewport.GutterWidth(e.buf.LineCount())
	if g >= e.viewport.Width() {
		return 0
	}
	return g
}

// toDocument converts a content-area point to a buffer position.
func (e *Editor) toDocument(p mouse.Point) Position {
	row := e.viewport.ScreenToDocument(p.Row)
	row = min(max(row, 0), e.buf.LineCount()-1)
	return Position{Row: row, Col: min(max(p.Col, 0), e.buf.LineLen(row))}
}

func (e *Editor) applyGesture(g mouse.Gesture) {
	switch g.Kind {
	case mouse.Click:
		e.clearMessage()
		e.clearSelection()
		anchor := e.toDocument(g.At)
		e.dragAnchor = &anchor
		e.cursor.MoveToPosition(g.At.Row, g.At.Col, e.viewport.ScrollOffset())

	case mouse.DoubleClick:
		e.dragAnchor = nil
		at := e.toDocument(g.At)
		start, end := WordBounds(e.buf.Line(at.Row), at.Col)
		if start == end {
			e.clearSelection()
			e.cursor.SetPosition(at.Row, at.Col)
			return
		}
		e.selPivot = Position{Row: at.Row, Col: start}
		e.setSelection(NewSelection(e.selPivot, Position{Row: at.Row, Col: end}))
		e.cursor.SetPosition(at.Row, end)
		e.setMessage("msg-word-selected", map[string]any{"count": end - start}, ui.MessageInfo)

	case mouse.Dragging:
		if e.dragAnchor == nil {
			anchor := e.toDocument(g.From)
			e.dragAnchor = &anchor
		}
		at := e.toDocument(g.At)
		e.cursor.SetPosition(at.Row, at.Col)

	case mouse.DragEnd:
		anchor := e.toDocument(g.From)
		if e.dragAnchor != nil {
			anchor = *e.dragAnchor
		}
		e.dragAnchor = nil
		at := e.toDocument(g.At)
		e.selPivot = anchor
		e.setSelection(NewSelection(anchor, at))
		e.cursor.SetPosition(at.Row, at.Col)
		if e.hasSel {
			e.setMessage("msg-word-selected", map[string]any{"count": e.sel.Len(e.buf)}, ui.MessageInfo)
		}

	case mouse.RightClick:
		at := e.toDocument(g.At)
		if !e.hasSel || !e.sel.Contains(at.Row, at.Col) {
			e.clearSelection()
			e.cursor.SetPosition(at.Row, at.Col)
		}
		if e.hasSel {
			e.setMessage("msg-context-selection", map[string]any{"count": e.sel.Len(e.buf)}, ui.MessageInfo)
		} else {
			e.setMessage("msg-context-empty", nil, ui.MessageInfo)
		}

	case mouse.Scroll:
		e.viewport.ScrollBy(g.Delta, e.buf.LineCount())
	}
}
