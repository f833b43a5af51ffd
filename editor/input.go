package editor

import (
	"log"
	"path/filepath"

	"github.com/ajstrand/hello-tui/ui"
)

// HandleKey applies one key press.
func (e *Editor) HandleKey(k KeyEvent) Outcome {
	before := e.snapshot()

	if e.prompt != nil {
		forced := e.handlePromptKey(k)
		return e.outcome(before, forced)
	}

	quitKey := k.Has(ModCtrl) && k.Code == KeyRune && (k.Rune == 'q' || k.Rune == 'c')
	if !quitKey {
		e.confirmQuit = false
	}
	e.clearMessage()

	forced := e.dispatchKey(k)
	if !e.quit {
		e.scrollToCursor()
	}
	return e.outcome(before, forced)
}

// dispatchKey runs the binding for k and reports whether the result must be
// drawn immediately.
func (e *Editor) dispatchKey(k KeyEvent) bool {
	if k.Has(ModCtrl) && k.Code == KeyRune {
		return e.handleCtrl(k.Rune)
	}

	shift := k.Has(ModShift)
	word := k.Has(ModCtrl)

	switch k.Code {
	case KeyRune:
		e.typeRune(k.Rune)
	case KeyTab:
		e.typeRune('\t')
	case KeyEnter:
		e.deleteSelection()
		e.cursor.InsertNewline()
		e.edited()
	case KeyBackspace:
		if e.deleteSelection() || e.cursor.DeleteBackward() {
			e.edited()
		}
	case KeyDelete:
		if e.deleteSelection() || e.cursor.DeleteForward() {
			e.edited()
		}
	case KeyEsc:
		e.clearSelection()

	case KeyLeft:
		if word {
			e.move(shift, e.cursor.MoveWordLeft)
		} else {
			e.move(shift, func() bool { return e.cursor.Move(Left) })
		}
	case KeyRight:
		if word {
			e.move(shift, e.cursor.MoveWordRight)
		} else {
			e.move(shift, func() bool { return e.cursor.Move(Right) })
		}
	case KeyUp:
		e.move(shift, func() bool { return e.cursor.Move(Up) })
	case KeyDown:
		e.move(shift, func() bool { return e.cursor.Move(Down) })
	case KeyHome:
		if word {
			e.move(shift, e.cursor.MoveToDocumentStart)
		} else {
			e.move(shift, e.cursor.MoveToLineStart)
		}
	case KeyEnd:
		if word {
			e.move(shift, e.cursor.MoveToDocumentEnd)
		} else {
			e.move(shift, e.cursor.MoveToLineEnd)
		}
	case KeyPgUp:
		e.move(shift, func() bool { return e.page(-1) })
	case KeyPgDn:
		e.move(shift, func() bool { return e.page(1) })

	case KeyF2:
		e.switchLocale()
		return true
	default:
		log.Printf("unbound key %s", k)
	}
	return false
}

func (e *Editor) handleCtrl(r rune) bool {
	switch r {
	case 'q', 'c':
		e.requestQuit()
	case 's':
		e.save()
		return true
	case 'o':
		if e.refuseWhileModified() {
			return false
		}
		e.showPrompt("prompt-open", promptOpen)
	case 'n':
		if e.refuseWhileModified() {
			return false
		}
		e.reset([]string{""})
		e.filename, e.language = "", ""
		e.relint()
		e.setMessage("msg-new-file", nil, ui.MessageInfo)
	case 'h':
		e.highlight = !e.highlight
		if e.highlight {
			e.setMessage("msg-highlight-on", nil, ui.MessageInfo)
		} else {
			e.setMessage("msg-highlight-off", nil, ui.MessageInfo)
		}
		return true
	case 'e':
		e.lint.SetEnabled(!e.lint.Enabled())
		e.relint()
		if e.lint.Enabled() {
			e.setMessage("msg-lint-on", nil, ui.MessageInfo)
		} else {
			e.setMessage("msg-lint-off", nil, ui.MessageInfo)
		}
		return true
	case 'l':
		e.showPrompt("prompt-goto", promptGoto)
	case 'd':
		e.clearSelection()
		e.cursor.DuplicateLine()
		e.edited()
		e.setMessage("msg-line-duplicated", nil, ui.MessageInfo)
	case 'k':
		e.clearSelection()
		if e.cursor.DeleteLine() {
			e.edited()
			e.setMessage("msg-line-deleted", nil, ui.MessageInfo)
		}
	case 'a':
		e.selectAll()
	default:
		log.Printf("unbound key %s", Ctrl(r))
	}
	return false
}

// requestQuit exits, or with unsaved changes arms a confirmation that the
// next quit request honors.
func (e *Editor) requestQuit() {
	if e.modified && !e.confirmQuit {
		e.confirmQuit = true
		e.setMessage("msg-quit-confirm", nil, ui.MessageError)
		return
	}
	e.quit = true
}

func (e *Editor) refuseWhileModified() bool {
	if !e.modified {
		return false
	}
	e.setMessage("msg-unsaved-refused", nil, ui.MessageError)
	return true
}

func (e *Editor) save() {
	if e.filename == "" {
		e.showPrompt("prompt-save-as", promptSaveAs)
		return
	}
	if err := e.Save(); err != nil {
		e.setMessage("msg-save-error", map[string]any{"error": err}, ui.MessageError)
		return
	}
	e.setMessage("msg-saved", map[string]any{"filename": filepath.Base(e.filename)}, ui.MessageSuccess)
}

func (e *Editor) switchLocale() {
	sw, ok := e.loc.(LocaleSwitcher)
	if !ok {
		return
	}
	locale := sw.Next()
	log.Printf("locale switched to %s", locale)
	e.setMessage("msg-locale", map[string]any{"language": e.loc.Get("language-name", nil)}, ui.MessageInfo)
}

// typeRune inserts r, replacing any selection.
func (e *Editor) typeRune(r rune) {
	e.deleteSelection()
	e.cursor.InsertChar(r)
	e.edited()
}

// move runs a cursor motion. With extend the selection grows from where it
// was anchored; without it any selection is dropped.
func (e *Editor) move(extend bool, motion func() bool) {
	if !extend {
		e.clearSelection()
		motion()
		return
	}
	if !e.hasSel {
		e.selPivot = e.cursor.Position()
	}
	motion()
	e.setSelection(NewSelection(e.selPivot, e.cursor.Position()))
}

// page moves the cursor a screen up (dir < 0) or down and scrolls with it.
func (e *Editor) page(dir int) bool {
	step := max(e.viewport.Height()-1, 1) * dir
	e.viewport.ScrollBy(step, e.buf.LineCount())
	return e.cursor.SetPosition(e.cursor.Row()+step, e.cursor.Col())
}

func (e *Editor) selectAll() {
	last := e.buf.LineCount() - 1
	e.selPivot = Position{}
	e.cursor.SetPosition(last, e.buf.LineLen(last))
	e.setSelection(NewSelection(e.selPivot, e.cursor.Position()))
}
