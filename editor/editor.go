package editor

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ajstrand/hello-tui/lint"
	"github.com/ajstrand/hello-tui/mouse"
	"github.com/ajstrand/hello-tui/syntax"
	"github.com/ajstrand/hello-tui/ui"
)

// ErrNoStore is returned when the editor has no FileStore.
var ErrNoStore = errors.New("no file store configured")

// Options configures a new Editor. Nil collaborators get inert defaults.
type Options struct {
	Highlighter Highlighter
	Linter      Linter
	Localizer   Localizer
	Files       FileStore

	Mouse mouse.Config
	Clock func() time.Time

	Glyphs      ui.Glyphs
	LineNumbers bool
	Highlight   bool
}

// DefaultOptions returns options with line numbers and highlighting on.
func DefaultOptions() Options {
	return Options{
		Mouse:       mouse.DefaultConfig(),
		Glyphs:      ui.UnicodeGlyphs(),
		LineNumbers: true,
		Highlight:   true,
	}
}

// Outcome tells the control loop what handling an event did.
type Outcome struct {
	Changed bool // the frame needs redrawing
	Forced  bool // redraw now, ignoring the render throttle
	Quit    bool
}

// Editor is the editing engine. It owns the document and its view state and
// is driven one event at a time by a single control loop.
type Editor struct {
	buf      *Buffer
	cursor   *Cursor
	sel      Selection
	hasSel   bool
	selPivot Position // fixed end while extending with Shift

	viewport *ui.Viewport
	renderer *ui.TextRenderer
	gestures *mouse.Interpreter
	glyphs   ui.Glyphs

	hl    Highlighter
	lint  Linter
	loc   Localizer
	files FileStore

	filename  string
	language  string
	modified  bool
	version   int // bumped on every content change
	highlight bool
	issues    []lint.Issue

	confirmQuit bool
	quit        bool
	prompt      *prompt
	dragAnchor  *Position

	message     string
	messageType ui.MessageType

	width  int
	height int
}

// New creates an editor with an empty document.
func New(opts Options) *Editor {
	if opts.Highlighter == nil {
		opts.Highlighter = plainHighlighter{}
	}
	if opts.Linter == nil {
		l := lint.New()
		l.SetEnabled(false)
		opts.Linter = l
	}
	if opts.Localizer == nil {
		opts.Localizer = keyLocalizer{}
	}
	if opts.Files == nil {
		opts.Files = noStore{}
	}
	if opts.Glyphs == (ui.Glyphs{}) {
		opts.Glyphs = ui.UnicodeGlyphs()
	}

	buf := NewBuffer()
	e := &Editor{
		buf:       buf,
		cursor:    NewCursor(buf),
		viewport:  ui.NewViewport(),
		renderer:  ui.NewTextRenderer(opts.Glyphs),
		gestures:  mouse.NewInterpreter(opts.Mouse, opts.Clock),
		glyphs:    opts.Glyphs,
		hl:        opts.Highlighter,
		lint:      opts.Linter,
		loc:       opts.Localizer,
		files:     opts.Files,
		highlight: opts.Highlight,
	}
	e.viewport.ShowLineNumbers(opts.LineNumbers)
	e.Resize(80, 24)
	e.setMessage("msg-welcome", nil, ui.MessageInfo)
	return e
}

// Resize sets the terminal size. One row each is reserved for the header and
// the status line.
func (e *Editor) Resize(width, height int) {
	e.width = max(width, 0)
	e.height = max(height, 0)
	e.viewport.SetSize(e.width, max(e.height-2, 0))
	e.viewport.SetScrollOffset(e.viewport.ScrollOffset(), e.buf.LineCount())
	e.viewport.EnsureCursorVisible(e.cursor.Row(), e.buf.LineCount())
}

// Size returns the terminal size last passed to Resize.
func (e *Editor) Size() (width, height int) {
	return e.width, e.height
}

// SetText replaces the document with text and resets the view.
func (e *Editor) SetText(text string) {
	e.reset(NewBufferFromString(text).Lines())
}

// Open loads path into the editor. On failure the current document is kept.
func (e *Editor) Open(path string) error {
	lines, err := e.files.Load(path)
	if err != nil {
		log.Printf("open %s: %v", path, err)
		return err
	}
	e.reset(lines)
	e.SetFilename(path)
	log.Printf("opened %s (%d lines, %s)", path, e.buf.LineCount(), e.languageLabel())
	return nil
}

// SetFilename names the document without loading it and picks its language.
func (e *Editor) SetFilename(path string) {
	e.filename = path
	e.language = syntax.DetectLanguage(path)
	e.relint()
}

// Save writes the document to its file.
func (e *Editor) Save() error {
	if e.filename == "" {
		return fmt.Errorf("save: %w", errNoFilename)
	}
	if err := e.files.Save(e.filename, e.buf.Lines()); err != nil {
		log.Printf("save %s: %v", e.filename, err)
		return err
	}
	e.modified = false
	e.confirmQuit = false
	log.Printf("saved %s", e.filename)
	return nil
}

var errNoFilename = errors.New("document has no file name")

func (e *Editor) reset(lines []string) {
	e.buf.SetLines(lines)
	e.cursor.SetPosition(0, 0)
	e.clearSelection()
	e.gestures.Reset()
	e.dragAnchor = nil
	e.viewport.SetScrollOffset(0, e.buf.LineCount())
	e.modified = false
	e.confirmQuit = false
	e.version++
	e.relint()
}

// Filename returns the document's path, "" for an unnamed document.
func (e *Editor) Filename() string { return e.filename }

// Language returns the detected language name, "" for plain text.
func (e *Editor) Language() string { return e.language }

// Modified reports unsaved changes.
func (e *Editor) Modified() bool { return e.modified }

// Text returns the document with lines joined by newlines.
func (e *Editor) Text() string { return e.buf.String() }

// Lines returns a copy of the document lines.
func (e *Editor) Lines() []string { return e.buf.Lines() }

// Cursor returns the cursor position.
func (e *Editor) Cursor() Position { return e.cursor.Position() }

// Selection returns the active selection.
func (e *Editor) Selection() (Selection, bool) { return e.sel, e.hasSel }

// ScrollOffset returns the first visible document row.
func (e *Editor) ScrollOffset() int { return e.viewport.ScrollOffset() }

// Issues returns the current lint issues.
func (e *Editor) Issues() []lint.Issue { return e.issues }

// Message returns the status message and its kind.
func (e *Editor) Message() (string, ui.MessageType) { return e.message, e.messageType }

// Quitting reports whether the editor asked to exit.
func (e *Editor) Quitting() bool { return e.quit }

// ConfirmingQuit reports whether the next quit request exits despite unsaved changes.
func (e *Editor) ConfirmingQuit() bool { return e.confirmQuit }

// HighlightEnabled reports whether syntax colors are drawn.
func (e *Editor) HighlightEnabled() bool { return e.highlight }

// SetGlyphs switches the glyph set used for frames.
func (e *Editor) SetGlyphs(g ui.Glyphs) {
	e.glyphs = g
	e.renderer.SetGlyphs(g)
}

// viewState is the comparable part of the editor that affects a frame.
type viewState struct {
	cursor      Position
	sel         Selection
	hasSel      bool
	scroll      int
	version     int
	modified    bool
	highlight   bool
	lintOn      bool
	filename    string
	message     string
	messageType ui.MessageType
	prompt      string
	quit        bool
}

func (e *Editor) snapshot() viewState {
	s := viewState{
		cursor:      e.cursor.Position(),
		sel:         e.sel,
		hasSel:      e.hasSel,
		scroll:      e.viewport.ScrollOffset(),
		version:     e.version,
		modified:    e.modified,
		highlight:   e.highlight,
		lintOn:      e.lint.Enabled(),
		filename:    e.filename,
		message:     e.message,
		messageType: e.messageType,
		quit:        e.quit,
	}
	if e.prompt != nil {
		s.prompt = e.prompt.label + "\x00" + e.prompt.input
	}
	return s
}

func (e *Editor) outcome(before viewState, forced bool) Outcome {
	changed := e.snapshot() != before
	return Outcome{
		Changed: changed || forced,
		Forced:  forced,
		Quit:    e.quit,
	}
}

// ReportConfigError shows a configuration load failure in the status line.
func (e *Editor) ReportConfigError(path string, err error) {
	e.setMessage("msg-config-error", map[string]any{"filename": path, "error": err}, ui.MessageError)
}

func (e *Editor) setMessage(key string, args map[string]any, kind ui.MessageType) {
	e.message = e.loc.Get(key, args)
	e.messageType = kind
}

func (e *Editor) clearMessage() {
	e.message = ""
	e.messageType = ui.MessageInfo
}

// edited records a content change.
func (e *Editor) edited() {
	e.modified = true
	e.confirmQuit = false
	e.version++
	e.relint()
}

func (e *Editor) relint() {
	e.issues = e.lint.Lint(e.buf.String(), e.filename)
}

func (e *Editor) scrollToCursor() {
	e.viewport.EnsureCursorVisible(e.cursor.Row(), e.buf.LineCount())
}

func (e *Editor) setSelection(s Selection) {
	if s.IsEmpty() {
		e.clearSelection()
		return
	}
	e.sel = s
	e.hasSel = true
}

func (e *Editor) clearSelection() {
	e.sel = Selection{}
	e.hasSel = false
}

// deleteSelection removes selected text, reporting whether there was any.
func (e *Editor) deleteSelection() bool {
	if !e.hasSel {
		return false
	}
	e.sel.Delete(e.buf, e.cursor)
	e.clearSelection()
	return true
}

func (e *Editor) languageLabel() string {
	if e.language == "" {
		return e.loc.Get("plain-text", nil)
	}
	return e.language
}
