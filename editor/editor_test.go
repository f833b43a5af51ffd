package editor

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/ajstrand/hello-tui/i18n"
	"github.com/ajstrand/hello-tui/lint"
	"github.com/ajstrand/hello-tui/mouse"
	"github.com/ajstrand/hello-tui/syntax"
	"github.com/ajstrand/hello-tui/ui"
)

// memStore is an in-memory FileStore.
type memStore struct {
	files   map[string][]string
	saveErr error
	saves   int
}

func newMemStore() *memStore {
	return &memStore{files: make(map[string][]string)}
}

func (s *memStore) Load(path string) ([]string, error) {
	lines, ok := s.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return append([]string(nil), lines...), nil
}

func (s *memStore) Save(path string, lines []string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.files[path] = append([]string(nil), lines...)
	return nil
}

func (s *memStore) Exists(path string) bool {
	_, ok := s.files[path]
	return ok
}

// fakeClock advances only when told to.
type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time           { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestEditor(t *testing.T) (*Editor, *memStore, *fakeClock) {
	t.Helper()
	store := newMemStore()
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	opts := DefaultOptions()
	opts.Files = store
	opts.Clock = clock.Now
	e := New(opts)
	e.Resize(40, 10)
	return e, store, clock
}

func typeString(e *Editor, s string) {
	for _, r := range s {
		if r == '\n' {
			e.HandleKey(Key(KeyEnter, 0))
			continue
		}
		e.HandleKey(Rune(r))
	}
}

func message(e *Editor) string {
	m, _ := e.Message()
	return m
}

func TestEditorTyping(t *testing.T) {
	e, _, _ := newTestEditor(t)

	typeString(e, "héllo\nwörld")
	if got := e.Text(); got != "héllo\nwörld" {
		t.Fatalf("Text() = %q", got)
	}
	if got := e.Cursor(); got != (Position{1, 5}) {
		t.Errorf("Cursor() = %v, want {1 5}", got)
	}
	if !e.Modified() {
		t.Error("Modified() = false after typing")
	}

	e.HandleKey(Key(KeyBackspace, 0))
	e.HandleKey(Key(KeyHome, 0))
	e.HandleKey(Key(KeyBackspace, 0))
	if got := e.Text(); got != "héllowörl" {
		t.Errorf("after backspaces Text() = %q", got)
	}
	if got := e.Cursor(); got != (Position{0, 5}) {
		t.Errorf("Cursor() after join = %v, want {0 5}", got)
	}

	e.HandleKey(Key(KeyDelete, 0))
	if got := e.Text(); got != "hélloörl" {
		t.Errorf("after delete Text() = %q", got)
	}
	e.HandleKey(Key(KeyTab, 0))
	if got := e.Lines()[0]; got != "héllo\törl" {
		t.Errorf("after tab line = %q", got)
	}
}

func TestEditorKeyOutcome(t *testing.T) {
	e, _, _ := newTestEditor(t)

	if out := e.HandleKey(Rune('a')); !out.Changed || out.Forced || out.Quit {
		t.Errorf("typing outcome = %+v, want changed only", out)
	}
	e.HandleKey(Key(KeyLeft, 0))
	if out := e.HandleKey(Key(KeyLeft, 0)); out.Changed {
		t.Errorf("moving left at document start outcome = %+v, want unchanged", out)
	}
	if out := e.HandleKey(Ctrl('h')); !out.Forced || !out.Changed {
		t.Errorf("toggle highlight outcome = %+v, want forced", out)
	}
	if out := e.HandleKey(Ctrl('e')); !out.Forced {
		t.Errorf("toggle lint outcome = %+v, want forced", out)
	}
}

func TestEditorShiftSelection(t *testing.T) {
	e, _, _ := newTestEditor(t)
	e.SetText("hello world\nsecond")

	e.HandleKey(Key(KeyEnd, ModShift))
	sel, ok := e.Selection()
	if !ok || sel != NewSelection(Position{0, 0}, Position{0, 11}) {
		t.Fatalf("shift+end selection = %v, %v", sel, ok)
	}

	e.HandleKey(Key(KeyLeft, ModShift|ModCtrl))
	sel, _ = e.Selection()
	if sel.End != (Position{0, 6}) {
		t.Errorf("ctrl+shift+left selection end = %v, want {0 6}", sel.End)
	}

	typeString(e, "there")
	if got := e.Text(); got != "thereworld\nsecond" {
		t.Errorf("typing over selection Text() = %q", got)
	}
	if _, ok := e.Selection(); ok {
		t.Error("selection survived typing")
	}

	e.HandleKey(Ctrl('a'))
	e.HandleKey(Key(KeyBackspace, 0))
	if got := e.Text(); got != "" {
		t.Errorf("select all + backspace Text() = %q", got)
	}
}

func TestEditorEscClearsSelection(t *testing.T) {
	e, _, _ := newTestEditor(t)
	e.SetText("abc")
	e.HandleKey(Key(KeyRight, ModShift))
	e.HandleKey(Key(KeyEsc, 0))
	if _, ok := e.Selection(); ok {
		t.Error("Esc did not clear the selection")
	}
	if e.Text() != "abc" {
		t.Errorf("Esc changed text to %q", e.Text())
	}
}

func TestEditorQuit(t *testing.T) {
	t.Run("clean document quits at once", func(t *testing.T) {
		e, _, _ := newTestEditor(t)
		if out := e.HandleKey(Ctrl('q')); !out.Quit {
			t.Error("Ctrl+Q on a clean document did not quit")
		}
	})

	t.Run("modified document needs confirmation", func(t *testing.T) {
		e, _, _ := newTestEditor(t)
		typeString(e, "x")

		out := e.HandleKey(Ctrl('q'))
		if out.Quit || !e.ConfirmingQuit() {
			t.Fatalf("first Ctrl+Q: quit %v confirming %v", out.Quit, e.ConfirmingQuit())
		}
		if msg, kind := e.Message(); msg != "[msg-quit-confirm]" || kind != ui.MessageError {
			t.Errorf("Message() = %q, %v", msg, kind)
		}
		if out := e.HandleKey(Ctrl('c')); !out.Quit || !e.Quitting() {
			t.Error("second quit request did not quit")
		}
	})

	t.Run("other key disarms confirmation", func(t *testing.T) {
		e, _, _ := newTestEditor(t)
		typeString(e, "x")
		e.HandleKey(Ctrl('q'))
		e.HandleKey(Key(KeyLeft, 0))
		if e.ConfirmingQuit() {
			t.Fatal("ConfirmingQuit() = true after another key")
		}
		if out := e.HandleKey(Ctrl('q')); out.Quit {
			t.Error("Ctrl+Q after disarming quit without confirmation")
		}
	})

	t.Run("save disarms confirmation", func(t *testing.T) {
		e, _, _ := newTestEditor(t)
		e.SetFilename("a.txt")
		typeString(e, "x")
		e.HandleKey(Ctrl('q'))
		if err := e.Save(); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		if e.ConfirmingQuit() {
			t.Error("ConfirmingQuit() = true after saving")
		}
		if out := e.HandleKey(Ctrl('q')); !out.Quit {
			t.Error("Ctrl+Q after saving did not quit")
		}
	})
}

func TestEditorSave(t *testing.T) {
	e, store, _ := newTestEditor(t)
	e.SetFilename("notes/a.txt")
	typeString(e, "one\ntwo")

	out := e.HandleKey(Ctrl('s'))
	if !out.Forced {
		t.Errorf("save outcome = %+v, want forced", out)
	}
	if got := strings.Join(store.files["notes/a.txt"], "|"); got != "one|two" {
		t.Errorf("saved lines = %q", got)
	}
	if e.Modified() {
		t.Error("Modified() = true after save")
	}
	if msg, kind := e.Message(); msg != "[msg-saved]" || kind != ui.MessageSuccess {
		t.Errorf("Message() = %q, %v", msg, kind)
	}
}

func TestEditorSaveError(t *testing.T) {
	e, store, _ := newTestEditor(t)
	store.saveErr = errors.New("disk full")
	e.SetFilename("a.txt")
	typeString(e, "x")

	e.HandleKey(Ctrl('s'))
	if !e.Modified() {
		t.Error("Modified() = false after failed save")
	}
	if msg, kind := e.Message(); msg != "[msg-save-error]" || kind != ui.MessageError {
		t.Errorf("Message() = %q, %v", msg, kind)
	}
}

func TestEditorSaveWithoutStore(t *testing.T) {
	e := New(DefaultOptions())
	e.SetFilename("a.txt")
	if err := e.Save(); !errors.Is(err, ErrNoStore) {
		t.Errorf("Save() error = %v, want ErrNoStore", err)
	}
	e.SetFilename("")
	if err := e.Save(); err == nil {
		t.Error("Save() without a file name succeeded")
	}
}

func TestEditorSaveAsPrompt(t *testing.T) {
	e, store, _ := newTestEditor(t)
	typeString(e, "fn main() {}")

	e.HandleKey(Ctrl('s'))
	label, _, ok := e.Prompt()
	if !ok || label != "[prompt-save-as]" {
		t.Fatalf("Prompt() = %q, %v", label, ok)
	}
	typeString(e, "main.rs")
	if _, input, _ := e.Prompt(); input != "main.rs" {
		t.Errorf("prompt input = %q", input)
	}
	e.HandleKey(Key(KeyEnter, 0))

	if _, _, ok := e.Prompt(); ok {
		t.Error("prompt still open after Enter")
	}
	if e.Filename() != "main.rs" || e.Language() != "Rust" {
		t.Errorf("Filename() = %q, Language() = %q", e.Filename(), e.Language())
	}
	if _, ok := store.files["main.rs"]; !ok {
		t.Error("file was not saved")
	}
	if e.Text() != "fn main() {}" {
		t.Errorf("prompt typing leaked into the document: %q", e.Text())
	}
}

func TestEditorOverwriteConfirmation(t *testing.T) {
	tests := []struct {
		answer    string
		overwrite bool
	}{
		{"y", true},
		{"yes", true},
		{"s", true},
		{"n", false},
		{"", false},
	}

	for _, tt := range tests {
		e, store, _ := newTestEditor(t)
		store.files["old.txt"] = []string{"old"}
		typeString(e, "new")

		e.HandleKey(Ctrl('s'))
		typeString(e, "old.txt")
		e.HandleKey(Key(KeyEnter, 0))
		if label, _, ok := e.Prompt(); !ok || label != "[prompt-overwrite]" {
			t.Fatalf("answer %q: Prompt() = %q, %v", tt.answer, label, ok)
		}

		typeString(e, tt.answer)
		e.HandleKey(Key(KeyEnter, 0))
		got := store.files["old.txt"][0]
		if tt.overwrite && got != "new" {
			t.Errorf("answer %q: file = %q, want overwritten", tt.answer, got)
		}
		if !tt.overwrite {
			if got != "old" {
				t.Errorf("answer %q: file = %q, want untouched", tt.answer, got)
			}
			if e.Filename() != "" {
				t.Errorf("answer %q: Filename() = %q, want unnamed", tt.answer, e.Filename())
			}
		}
	}
}

func TestEditorPromptCancel(t *testing.T) {
	e, _, _ := newTestEditor(t)
	e.HandleKey(Ctrl('o'))
	typeString(e, "abc")
	e.HandleKey(Key(KeyBackspace, 0))
	if _, input, _ := e.Prompt(); input != "ab" {
		t.Errorf("prompt input after backspace = %q", input)
	}
	e.HandleKey(Key(KeyEsc, 0))
	if _, _, ok := e.Prompt(); ok {
		t.Error("Esc did not close the prompt")
	}
	if message(e) != "[msg-cancelled]" {
		t.Errorf("Message() = %q", message(e))
	}
	if out := e.HandleKey(Ctrl('q')); !out.Quit {
		t.Error("Ctrl+Q after cancelling did not quit")
	}
}

func TestEditorOpen(t *testing.T) {
	e, store, _ := newTestEditor(t)
	store.files["src/app.py"] = []string{"import os", "print('hi')"}

	e.HandleKey(Ctrl('o'))
	typeString(e, "src/app.py")
	out := e.HandleKey(Key(KeyEnter, 0))

	if !out.Forced {
		t.Errorf("open outcome = %+v, want forced", out)
	}
	if e.Filename() != "src/app.py" || e.Language() != "Python" {
		t.Errorf("Filename() = %q, Language() = %q", e.Filename(), e.Language())
	}
	if e.Text() != "import os\nprint('hi')" || e.Modified() {
		t.Errorf("Text() = %q, Modified() = %v", e.Text(), e.Modified())
	}
	if msg, kind := e.Message(); msg != "[msg-opened]" || kind != ui.MessageSuccess {
		t.Errorf("Message() = %q, %v", msg, kind)
	}
}

func TestEditorOpenError(t *testing.T) {
	e, _, _ := newTestEditor(t)
	e.SetText("keep me")

	e.HandleKey(Ctrl('o'))
	typeString(e, "missing.txt")
	e.HandleKey(Key(KeyEnter, 0))

	if e.Text() != "keep me" {
		t.Errorf("failed open replaced the document with %q", e.Text())
	}
	if msg, kind := e.Message(); msg != "[msg-open-error]" || kind != ui.MessageError {
		t.Errorf("Message() = %q, %v", msg, kind)
	}
}

func TestEditorRefusesWhileModified(t *testing.T) {
	for _, key := range []rune{'o', 'n'} {
		e, _, _ := newTestEditor(t)
		typeString(e, "draft")
		e.HandleKey(Ctrl(key))
		if _, _, ok := e.Prompt(); ok {
			t.Errorf("Ctrl+%c opened a prompt on a modified document", key)
		}
		if e.Text() != "draft" {
			t.Errorf("Ctrl+%c changed text to %q", key, e.Text())
		}
		if msg, kind := e.Message(); msg != "[msg-unsaved-refused]" || kind != ui.MessageError {
			t.Errorf("Ctrl+%c: Message() = %q, %v", key, msg, kind)
		}
	}
}

func TestEditorNewFile(t *testing.T) {
	e, store, _ := newTestEditor(t)
	store.files["a.go"] = []string{"package a"}
	if err := e.Open("a.go"); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	e.HandleKey(Ctrl('n'))
	if e.Text() != "" || e.Filename() != "" || e.Language() != "" {
		t.Errorf("after new: Text() = %q, Filename() = %q, Language() = %q", e.Text(), e.Filename(), e.Language())
	}
}

func TestEditorGotoLine(t *testing.T) {
	tests := []struct {
		input   string
		wantRow int
		wantMsg string
	}{
		{"3", 2, ""},
		{" 1 ", 0, ""},
		{"999", 29, ""},
		{"0", 5, "[msg-goto-invalid]"},
		{"abc", 5, "[msg-goto-invalid]"},
	}

	for _, tt := range tests {
		e, _, _ := newTestEditor(t)
		e.SetText(strings.Repeat("line\n", 29) + "last")
		e.HandleKey(Key(KeyDown, 0))
		for range 4 {
			e.HandleKey(Key(KeyDown, 0))
		}

		e.HandleKey(Ctrl('l'))
		typeString(e, tt.input)
		e.HandleKey(Key(KeyEnter, 0))
		if got := e.Cursor().Row; got != tt.wantRow {
			t.Errorf("goto %q: row = %d, want %d", tt.input, got, tt.wantRow)
		}
		if got := message(e); got != tt.wantMsg {
			t.Errorf("goto %q: Message() = %q, want %q", tt.input, got, tt.wantMsg)
		}
		if row := e.Cursor().Row; row < e.ScrollOffset() || row >= e.ScrollOffset()+8 {
			t.Errorf("goto %q: cursor row %d off screen at offset %d", tt.input, row, e.ScrollOffset())
		}
	}
}

func TestEditorLineCommands(t *testing.T) {
	e, _, _ := newTestEditor(t)
	e.SetText("a\nb")

	e.HandleKey(Ctrl('d'))
	if e.Text() != "a\na\nb" || message(e) != "[msg-line-duplicated]" {
		t.Errorf("duplicate: Text() = %q, Message() = %q", e.Text(), message(e))
	}
	e.HandleKey(Ctrl('k'))
	if e.Text() != "a\nb" || message(e) != "[msg-line-deleted]" {
		t.Errorf("delete: Text() = %q, Message() = %q", e.Text(), message(e))
	}
}

func TestEditorPaging(t *testing.T) {
	e, _, _ := newTestEditor(t)
	e.SetText(strings.Repeat("x\n", 49) + "x")

	e.HandleKey(Key(KeyPgDn, 0))
	if got := e.Cursor().Row; got != 7 {
		t.Errorf("PgDn row = %d, want 7", got)
	}
	e.HandleKey(Key(KeyEnd, ModCtrl))
	if got := e.Cursor().Row; got != 49 {
		t.Errorf("Ctrl+End row = %d, want 49", got)
	}
	if got := e.ScrollOffset(); got != 42 {
		t.Errorf("ScrollOffset() = %d, want 42", got)
	}
	e.HandleKey(Key(KeyPgUp, 0))
	if got := e.Cursor().Row; got != 42 {
		t.Errorf("PgUp row = %d, want 42", got)
	}
	e.HandleKey(Key(KeyHome, ModCtrl))
	if e.Cursor() != (Position{}) || e.ScrollOffset() != 0 {
		t.Errorf("Ctrl+Home cursor %v offset %d", e.Cursor(), e.ScrollOffset())
	}
}

func TestEditorLocaleSwitch(t *testing.T) {
	cat, err := i18n.New("en-US")
	if err != nil {
		t.Fatalf("i18n.New() error = %v", err)
	}
	opts := DefaultOptions()
	opts.Localizer = cat
	e := New(opts)

	out := e.HandleKey(Key(KeyF2, 0))
	if !out.Forced {
		t.Errorf("F2 outcome = %+v, want forced", out)
	}
	if cat.Locale() != "de-DE" {
		t.Errorf("Locale() = %q, want de-DE", cat.Locale())
	}
	if got := message(e); !strings.Contains(got, "Deutsch") {
		t.Errorf("Message() = %q, want the German language name", got)
	}
}

// click is a primary press and release at terminal cell (x, y).
func click(e *Editor, x, y int) {
	e.HandlePointer(PointerEvent{Kind: mouse.Down, Button: mouse.Primary, X: x, Y: y})
	e.HandlePointer(PointerEvent{Kind: mouse.Up, Button: mouse.Primary, X: x, Y: y})
}

func TestEditorPointerClick(t *testing.T) {
	e, _, _ := newTestEditor(t)
	e.SetText("first\n日本語 text\nthird")
	gutter := 5

	click(e, gutter+3, 1)
	if got := e.Cursor(); got != (Position{0, 3}) {
		t.Errorf("click cursor = %v, want {0 3}", got)
	}

	// Each wide rune takes two cells.
	click(e, gutter+5, 2)
	if got := e.Cursor(); got != (Position{1, 2}) {
		t.Errorf("click on wide rune = %v, want {1 2}", got)
	}

	click(e, gutter+30, 3)
	if got := e.Cursor(); got != (Position{2, 5}) {
		t.Errorf("click past line end = %v, want {2 5}", got)
	}

	before := e.Cursor()
	click(e, 10, 0)
	click(e, 10, 9)
	if e.Cursor() != before {
		t.Errorf("clicks on header and status moved the cursor to %v", e.Cursor())
	}
}

func TestEditorPointerDoubleClick(t *testing.T) {
	e, _, clock := newTestEditor(t)
	e.SetText("say hello_world now")
	gutter := 5

	click(e, gutter+6, 1)
	clock.Advance(100 * time.Millisecond)
	e.HandlePointer(PointerEvent{Kind: mouse.Down, Button: mouse.Primary, X: gutter + 7, Y: 1})

	sel, ok := e.Selection()
	if !ok || sel != NewSelection(Position{0, 4}, Position{0, 15}) {
		t.Fatalf("double click selection = %v, %v", sel, ok)
	}
	if got := e.Cursor(); got != (Position{0, 15}) {
		t.Errorf("cursor = %v, want word end", got)
	}
	if got := message(e); got != "[msg-word-selected]" {
		t.Errorf("Message() = %q", got)
	}
}

func TestEditorPointerSlowClicks(t *testing.T) {
	e, _, clock := newTestEditor(t)
	e.SetText("say hello")
	click(e, 8, 1)
	clock.Advance(time.Second)
	click(e, 8, 1)
	if _, ok := e.Selection(); ok {
		t.Error("two slow clicks selected a word")
	}
}

func TestEditorPointerDrag(t *testing.T) {
	e, _, _ := newTestEditor(t)
	e.SetText("first line\nsecond line\nthird line")
	gutter := 5

	e.HandlePointer(PointerEvent{Kind: mouse.Down, Button: mouse.Primary, X: gutter + 6, Y: 1})
	out := e.HandlePointer(PointerEvent{Kind: mouse.Drag, Button: mouse.Primary, X: gutter + 2, Y: 2})
	if !out.Changed || out.Forced {
		t.Errorf("drag outcome = %+v, want changed, not forced", out)
	}
	if got := e.Cursor(); got != (Position{1, 2}) {
		t.Errorf("cursor while dragging = %v, want {1 2}", got)
	}

	e.HandlePointer(PointerEvent{Kind: mouse.Drag, Button: mouse.Primary, X: gutter + 5, Y: 3})
	e.HandlePointer(PointerEvent{Kind: mouse.Up, Button: mouse.Primary, X: gutter + 5, Y: 3})

	sel, ok := e.Selection()
	if !ok {
		t.Fatal("no selection after drag")
	}
	if got := sel.Text(NewBufferFromLines(e.Lines())); got != "line\nsecond line\nthird" {
		t.Errorf("dragged text = %q", got)
	}
	if got := e.Cursor(); got != (Position{2, 5}) {
		t.Errorf("cursor after drag = %v, want {2 5}", got)
	}
}

func TestEditorPointerDragKeepsAnchorWhileScrolling(t *testing.T) {
	e, _, _ := newTestEditor(t)
	e.SetText(strings.Repeat("row\n", 39) + "row")
	gutter := 5

	e.HandlePointer(PointerEvent{Kind: mouse.Down, Button: mouse.Primary, X: gutter + 1, Y: 1})
	e.HandlePointer(PointerEvent{Kind: mouse.Drag, Button: mouse.Primary, X: gutter + 1, Y: 4})
	e.HandlePointer(PointerEvent{Kind: mouse.ScrollDown, X: gutter, Y: 4})
	e.HandlePointer(PointerEvent{Kind: mouse.Up, Button: mouse.Primary, X: gutter + 2, Y: 4})

	sel, ok := e.Selection()
	if !ok {
		t.Fatal("no selection after drag")
	}
	want := NewSelection(Position{0, 1}, Position{6, 2})
	if sel != want {
		t.Errorf("selection = %v, want %v", sel, want)
	}
}

func TestEditorPointerScrollBeforeDrag(t *testing.T) {
	e, _, _ := newTestEditor(t)
	e.SetText(strings.Repeat("row\n", 29) + "row")
	gutter := 5

	e.HandlePointer(PointerEvent{Kind: mouse.Down, Button: mouse.Primary, X: gutter + 1, Y: 2})
	e.HandlePointer(PointerEvent{Kind: mouse.ScrollDown, X: gutter, Y: 2})
	if got := e.ScrollOffset(); got != 3 {
		t.Fatalf("ScrollOffset() = %d, want 3", got)
	}
	e.HandlePointer(PointerEvent{Kind: mouse.Drag, Button: mouse.Primary, X: gutter + 2, Y: 3})
	e.HandlePointer(PointerEvent{Kind: mouse.Up, Button: mouse.Primary, X: gutter + 2, Y: 3})

	sel, ok := e.Selection()
	if !ok {
		t.Fatal("no selection after drag")
	}
	want := NewSelection(Position{1, 1}, Position{5, 2})
	if sel != want {
		t.Errorf("selection = %v, want %v", sel, want)
	}
	if got := e.Cursor(); got != (Position{5, 2}) {
		t.Errorf("cursor = %v, want {5 2}", got)
	}
}

func TestEditorPointerRightClick(t *testing.T) {
	e, _, _ := newTestEditor(t)
	e.SetText("hello world")
	gutter := 5

	e.HandlePointer(PointerEvent{Kind: mouse.Down, Button: mouse.Secondary, X: gutter + 2, Y: 1})
	if msg := message(e); msg != "[msg-context-empty]" {
		t.Errorf("right click without selection: Message() = %q", msg)
	}

	e.HandleKey(Key(KeyEnd, ModShift))
	e.HandlePointer(PointerEvent{Kind: mouse.Down, Button: mouse.Secondary, X: gutter + 4, Y: 1})
	if _, ok := e.Selection(); !ok {
		t.Error("right click inside the selection cleared it")
	}
	if msg := message(e); msg != "[msg-context-selection]" {
		t.Errorf("right click in selection: Message() = %q", msg)
	}

	e.HandlePointer(PointerEvent{Kind: mouse.Down, Button: mouse.Secondary, X: gutter + 1, Y: 1})
	if _, ok := e.Selection(); ok {
		t.Error("right click outside the selection kept it")
	}
	if got := e.Cursor(); got != (Position{0, 1}) {
		t.Errorf("cursor = %v, want {0 1}", got)
	}
}

func TestEditorPointerScroll(t *testing.T) {
	e, _, _ := newTestEditor(t)
	e.SetText(strings.Repeat("row\n", 19) + "row")

	e.HandlePointer(PointerEvent{Kind: mouse.ScrollDown, X: 6, Y: 2})
	if got := e.ScrollOffset(); got != 3 {
		t.Errorf("ScrollOffset() = %d, want 3", got)
	}
	for range 10 {
		e.HandlePointer(PointerEvent{Kind: mouse.ScrollDown, X: 6, Y: 2})
	}
	if got := e.ScrollOffset(); got != 12 {
		t.Errorf("ScrollOffset() clamped = %d, want 12", got)
	}
	e.HandlePointer(PointerEvent{Kind: mouse.ScrollUp, X: 6, Y: 2})
	if got := e.ScrollOffset(); got != 9 {
		t.Errorf("ScrollOffset() after scroll up = %d, want 9", got)
	}
	if got := e.Cursor(); got != (Position{}) {
		t.Errorf("scrolling moved the cursor to %v", got)
	}

	click(e, 6, 1)
	if got := e.Cursor(); got != (Position{9, 1}) {
		t.Errorf("click after scrolling = %v, want {9 1}", got)
	}
}

func TestEditorPointerIgnoredDuringPrompt(t *testing.T) {
	e, _, _ := newTestEditor(t)
	e.SetText("abc\ndef")
	e.HandleKey(Ctrl('l'))
	if out := e.HandlePointer(PointerEvent{Kind: mouse.Down, Button: mouse.Primary, X: 7, Y: 2}); out.Changed {
		t.Errorf("pointer during prompt outcome = %+v", out)
	}
	if e.Cursor() != (Position{}) {
		t.Errorf("pointer during prompt moved cursor to %v", e.Cursor())
	}
}

func TestEditorFrame(t *testing.T) {
	e, _, _ := newTestEditor(t)
	e.SetText("one\ntwo")

	f := e.Frame()
	if got := len(f.Lines()); got != 10 {
		t.Fatalf("frame has %d lines, want 10", got)
	}
	for i, line := range f.Lines() {
		if w := len([]rune(line)); w != 40 {
			t.Errorf("frame line %d is %d cells, want 40", i, w)
		}
	}
	if !strings.HasPrefix(f.Lines()[0], " [no-file]") {
		t.Errorf("header = %q", f.Lines()[0])
	}
	if !strings.Contains(f.Lines()[1], "one") || !strings.Contains(f.Lines()[3], "~") {
		t.Errorf("content rows = %q", f.Lines()[1:4])
	}
}

func TestEditorRenderState(t *testing.T) {
	opts := DefaultOptions()
	cat, err := i18n.New("en-US")
	if err != nil {
		t.Fatalf("i18n.New() error = %v", err)
	}
	opts.Localizer = cat
	opts.Linter = lint.New()
	opts.Highlighter = syntax.New(syntax.DefaultSyntaxColors())
	e := New(opts)
	e.Resize(60, 12)
	e.SetFilename("app.js")
	e.SetText("var x = 1\nlet y = 2;\n")

	st := e.RenderState()
	if st.Height != 10 || st.Width != 60 || st.TotalLines != 3 {
		t.Errorf("state size %dx%d total %d", st.Width, st.Height, st.TotalLines)
	}
	if st.LintMarks[0] != ui.LintError {
		t.Errorf("LintMarks[0] = %v, want error", st.LintMarks[0])
	}
	if _, ok := st.LintMarks[1]; ok {
		t.Errorf("LintMarks[1] = %v, want none", st.LintMarks[1])
	}
	if len(st.LineColors[1]) == 0 {
		t.Error("no syntax colors for a JavaScript line")
	}
	if st.Header.Title != "app.js" || st.Header.Right != "JavaScript" {
		t.Errorf("Header = %+v", st.Header)
	}
	if st.Status.Left != "Ln 1, Col 1" {
		t.Errorf("Status.Left = %q", st.Status.Left)
	}
	if !strings.HasSuffix(st.Status.Right, "3 lines") {
		t.Errorf("Status.Right = %q", st.Status.Right)
	}

	e.HandleKey(Ctrl('h'))
	if st := e.RenderState(); st.LineColors != nil {
		t.Error("LineColors set with highlighting off")
	}
	e.HandleKey(Ctrl('e'))
	if st := e.RenderState(); st.LintMarks != nil || !strings.HasPrefix(st.Status.Right, "lint off") {
		t.Errorf("lint off: marks %v right %q", st.LintMarks, st.Status.Right)
	}
}

func TestEditorStatusSelectionAndPrompt(t *testing.T) {
	e, _, _ := newTestEditor(t)
	e.SetText("hello")
	e.HandleKey(Key(KeyEnd, ModShift))
	if got := e.RenderState().Status.Left; got != "[status-position] | [status-selected]" {
		t.Errorf("Status.Left = %q", got)
	}

	e.HandleKey(Ctrl('l'))
	typeString(e, "12")
	if got := e.RenderState().Status.Left; got != "[prompt-goto]12_" {
		t.Errorf("prompt Status.Left = %q", got)
	}
}

func TestLintSummary(t *testing.T) {
	opts := DefaultOptions()
	opts.Glyphs = ui.ASCIIGlyphs()
	opts.Linter = lint.New()
	e := New(opts)

	if got := e.lintSummary(); got != "[status-lint-ok]" {
		t.Errorf("clean lintSummary() = %q", got)
	}

	e.SetFilename("main.rs")
	e.SetText("let x = y.unwrap() \nprintln!(\"hi\")")
	if got := e.lintSummary(); got != "E1 W1 I1" {
		t.Errorf("lintSummary() = %q, want E1 W1 I1", got)
	}
}
