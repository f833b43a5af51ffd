package term

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/ajstrand/hello-tui/editor"
	"github.com/ajstrand/hello-tui/mouse"
	"github.com/ajstrand/hello-tui/ui"
)

// Screen is a tcell frontend. It is both the InputSource and the RenderTarget.
type Screen struct {
	screen  tcell.Screen
	styles  ui.Styles
	events  chan tcell.Event
	done    chan struct{}
	buttons buttonTracker
}

// NewScreen initializes the terminal and starts reading its events.
func NewScreen(styles ui.Styles) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return newScreen(s, styles)
}

func newScreen(s tcell.Screen, styles ui.Styles) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.EnableMouse(tcell.MouseButtonEvents, tcell.MouseDragEvents)
	s.HideCursor()

	t := &Screen{
		screen: s,
		styles: styles,
		events: make(chan tcell.Event, 64),
		done:   make(chan struct{}),
	}
	go t.pump()
	return t, nil
}

// pump forwards terminal events to Next. PollEvent returns nil after Fini.
func (t *Screen) pump() {
	defer close(t.events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// Close restores the terminal.
func (t *Screen) Close() {
	close(t.done)
	t.screen.Fini()
}

// Size returns the terminal size in cells.
func (t *Screen) Size() (width, height int) {
	return t.screen.Size()
}

// Next returns the next event the editor understands.
func (t *Screen) Next(ctx context.Context) (Event, error) {
	for {
		select {
		case <-ctx.Done():
			return Event{}, ctx.Err()
		case ev, ok := <-t.events:
			if !ok {
				return Event{}, io.EOF
			}
			if e, ok := t.convert(ev); ok {
				return e, nil
			}
		}
	}
}

func (t *Screen) convert(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k, ok := keyFromTcell(ev)
		return Event{Kind: KeyInput, Key: k}, ok
	case *tcell.EventMouse:
		p, ok := t.buttons.pointer(ev)
		return Event{Kind: PointerInput, Pointer: p}, ok
	case *tcell.EventResize:
		t.screen.Sync()
		w, h := ev.Size()
		return Event{Kind: ResizeInput, Width: w, Height: h}, true
	}
	return Event{}, false
}

// Draw writes every cell of f and shows it.
func (t *Screen) Draw(f ui.Frame) error {
	t.drawRow(0, f.Header)
	for i, row := range f.Rows {
		t.drawRow(i+1, row)
	}
	t.drawRow(len(f.Rows)+1, f.Status)
	t.screen.Show()
	return nil
}

func (t *Screen) drawRow(y int, row ui.Row) {
	x := 0
	for _, c := range row {
		t.screen.SetContent(x, y, c.Rune, nil, tcellStyle(t.styles.CellStyle(c)))
		if runewidth.RuneWidth(c.Rune) == 2 {
			x += 2
		} else {
			x++
		}
	}
}

func tcellStyle(rs ui.RoleStyle) tcell.Style {
	st := tcell.StyleDefault
	if rs.Fg != "" {
		st = st.Foreground(tcellColor(rs.Fg))
	}
	if rs.Bg != "" {
		st = st.Background(tcellColor(rs.Bg))
	}
	if rs.Bold {
		st = st.Bold(true)
	}
	if rs.Reverse {
		st = st.Reverse(true)
	}
	return st
}

// tcellColor accepts a 256-color index, a hex color or a color name.
func tcellColor(s string) tcell.Color {
	if n, err := strconv.Atoi(s); err == nil {
		return tcell.PaletteColor(n)
	}
	return tcell.GetColor(s)
}

var tcellKeys = map[tcell.Key]editor.KeyCode{
	tcell.KeyUp:     editor.KeyUp,
	tcell.KeyDown:   editor.KeyDown,
	tcell.KeyLeft:   editor.KeyLeft,
	tcell.KeyRight:  editor.KeyRight,
	tcell.KeyHome:   editor.KeyHome,
	tcell.KeyEnd:    editor.KeyEnd,
	tcell.KeyPgUp:   editor.KeyPgUp,
	tcell.KeyPgDn:   editor.KeyPgDn,
	tcell.KeyDelete: editor.KeyDelete,
	tcell.KeyF2:     editor.KeyF2,
}

// backspaceIsCtrlH is true where tcell reports BS and Ctrl+H as one key.
const backspaceIsCtrlH = tcell.KeyBackspace == tcell.KeyCtrlH

func keyFromTcell(ev *tcell.EventKey) (editor.KeyEvent, bool) {
	mod := modFromTcell(ev.Modifiers())
	k := ev.Key()

	if code, ok := tcellKeys[k]; ok {
		return editor.Key(code, mod), true
	}

	switch {
	case k == tcell.KeyRune:
		if mod&editor.ModCtrl != 0 {
			return editor.Ctrl(unicode.ToLower(ev.Rune())), true
		}
		return editor.KeyEvent{Code: editor.KeyRune, Rune: ev.Rune(), Mod: mod &^ editor.ModShift}, true
	case k == tcell.KeyEnter:
		return editor.Key(editor.KeyEnter, 0), true
	case k == tcell.KeyTab:
		return editor.Key(editor.KeyTab, 0), true
	case k == tcell.KeyEscape:
		return editor.Key(editor.KeyEsc, 0), true
	case k == tcell.KeyBackspace2, k == tcell.KeyBackspace && !backspaceIsCtrlH:
		return editor.Key(editor.KeyBackspace, 0), true
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return editor.Ctrl('a' + rune(k-tcell.KeyCtrlA)), true
	}
	return editor.KeyEvent{}, false
}

func modFromTcell(m tcell.ModMask) editor.Modifiers {
	var mod editor.Modifiers
	if m&tcell.ModShift != 0 {
		mod |= editor.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mod |= editor.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mod |= editor.ModAlt
	}
	return mod
}

// buttonTracker turns tcell's button state reports into press, drag and
// release events.
type buttonTracker struct {
	held tcell.ButtonMask
}

const trackedButtons = tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle

func (bt *buttonTracker) pointer(ev *tcell.EventMouse) (editor.PointerEvent, bool) {
	x, y := ev.Position()
	b := ev.Buttons()
	prev := bt.held
	bt.held = b & trackedButtons

	p := editor.PointerEvent{X: x, Y: y}
	pressed := func(m tcell.ButtonMask) bool { return b&m != 0 && prev&m == 0 }
	switch {
	case b&tcell.WheelUp != 0:
		p.Kind = mouse.ScrollUp
	case b&tcell.WheelDown != 0:
		p.Kind = mouse.ScrollDown
	case pressed(tcell.ButtonPrimary):
		p.Kind, p.Button = mouse.Down, mouse.Primary
	case b&tcell.ButtonPrimary != 0:
		p.Kind, p.Button = mouse.Drag, mouse.Primary
	case pressed(tcell.ButtonSecondary):
		p.Kind, p.Button = mouse.Down, mouse.Secondary
	case pressed(tcell.ButtonMiddle):
		p.Kind, p.Button = mouse.Down, mouse.Middle
	case prev&tcell.ButtonPrimary != 0:
		p.Kind, p.Button = mouse.Up, mouse.Primary
	default:
		return p, false
	}
	return p, true
}
