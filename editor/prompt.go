package editor

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ajstrand/hello-tui/ui"
)

// promptAction is what happens when a prompt is submitted.
type promptAction int

const (
	promptOpen promptAction = iota
	promptSaveAs
	promptConfirmOverwrite
	promptGoto
)

// prompt is a one-line input shown on the status row.
type prompt struct {
	label   string
	input   string
	action  promptAction
	pending string // file name awaiting overwrite confirmation
}

// Prompt returns the active prompt label and input.
func (e *Editor) Prompt() (label, input string, ok bool) {
	if e.prompt == nil {
		return "", "", false
	}
	return e.prompt.label, e.prompt.input, true
}

func (e *Editor) showPrompt(key string, action promptAction) {
	e.clearSelection()
	e.prompt = &prompt{label: e.loc.Get(key, nil), action: action}
}

// handlePromptKey edits or submits the prompt and reports whether the
// result must be drawn immediately.
func (e *Editor) handlePromptKey(k KeyEvent) bool {
	p := e.prompt
	switch {
	case k.Code == KeyEsc, k.Has(ModCtrl) && k.Code == KeyRune && (k.Rune == 'c' || k.Rune == 'q'):
		e.prompt = nil
		e.setMessage("msg-cancelled", nil, ui.MessageInfo)
	case k.Code == KeyEnter:
		e.prompt = nil
		return e.submitPrompt(p)
	case k.Code == KeyBackspace:
		if r := []rune(p.input); len(r) > 0 {
			p.input = string(r[:len(r)-1])
		}
	case k.Code == KeyRune && !k.Has(ModCtrl) && !k.Has(ModAlt):
		p.input += string(k.Rune)
	}
	return false
}

func (e *Editor) submitPrompt(p *prompt) bool {
	input := strings.TrimSpace(p.input)

	switch p.action {
	case promptOpen:
		if input == "" {
			e.setMessage("msg-cancelled", nil, ui.MessageInfo)
			return false
		}
		if err := e.Open(input); err != nil {
			e.openFailed(input, err)
			return true
		}
		e.setMessage("msg-opened", map[string]any{"filename": filepath.Base(input)}, ui.MessageSuccess)
		return true

	case promptSaveAs:
		if input == "" {
			e.setMessage("msg-cancelled", nil, ui.MessageInfo)
			return false
		}
		if ec, ok := e.files.(existenceChecker); ok && input != e.filename && ec.Exists(input) {
			e.prompt = &prompt{
				label:   e.loc.Get("prompt-overwrite", map[string]any{"filename": filepath.Base(input)}),
				action:  promptConfirmOverwrite,
				pending: input,
			}
			return false
		}
		e.saveAs(input)
		return true

	case promptConfirmOverwrite:
		if answer := strings.ToLower(input); answer == "" || !strings.ContainsRune("ysoj", []rune(answer)[0]) {
			e.setMessage("msg-cancelled", nil, ui.MessageInfo)
			return false
		}
		e.saveAs(p.pending)
		return true

	case promptGoto:
		n, err := strconv.Atoi(input)
		if err != nil || n < 1 {
			e.setMessage("msg-goto-invalid", map[string]any{"input": input}, ui.MessageError)
			return false
		}
		e.clearSelection()
		e.cursor.SetPosition(n-1, 0)
		e.scrollToCursor()
	}
	return false
}

func (e *Editor) saveAs(path string) {
	prev, prevLang := e.filename, e.language
	e.filename = path
	e.language = ""
	if err := e.Save(); err != nil {
		e.filename, e.language = prev, prevLang
		e.setMessage("msg-save-error", map[string]any{"error": err}, ui.MessageError)
		return
	}
	e.SetFilename(path)
	e.setMessage("msg-saved", map[string]any{"filename": filepath.Base(path)}, ui.MessageSuccess)
}

func (e *Editor) openFailed(path string, err error) {
	msg := err.Error()
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		msg = pathErr.Err.Error()
	}
	e.setMessage("msg-open-error", map[string]any{"filename": filepath.Base(path), "error": msg}, ui.MessageError)
}
