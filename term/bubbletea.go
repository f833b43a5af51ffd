package term

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ajstrand/hello-tui/editor"
	"github.com/ajstrand/hello-tui/mouse"
	"github.com/ajstrand/hello-tui/ui"
)

// tickMsg flushes a throttled frame.
type tickMsg struct{}

// Model adapts a Driver to bubbletea. The view string is only rebuilt when
// the driver allows a draw.
type Model struct {
	driver  *Driver
	styles  ui.Styles
	view    string
	ticking bool
}

// NewModel creates a bubbletea model for d.
func NewModel(d *Driver, styles ui.Styles) *Model {
	return &Model{driver: d, styles: styles}
}

// RunBubbletea runs the editor in a bubbletea program until it quits.
func RunBubbletea(ctx context.Context, d *Driver, styles ui.Styles) error {
	p := tea.NewProgram(NewModel(d, styles),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var events []Event
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		events = append(events, Event{Kind: ResizeInput, Width: msg.Width, Height: msg.Height})
	case tea.KeyMsg:
		for _, k := range keysFromTea(msg) {
			events = append(events, Event{Kind: KeyInput, Key: k})
		}
	case tea.MouseMsg:
		if p, ok := pointerFromTea(msg); ok {
			events = append(events, Event{Kind: PointerInput, Pointer: p})
		}
	case tickMsg:
		m.ticking = false
		events = append(events, Event{Kind: TickInput})
	}

	for _, ev := range events {
		draw, quit := m.driver.Step(ev)
		if quit {
			return m, tea.Quit
		}
		if draw {
			m.view = m.styles.RenderFrame(m.driver.Frame())
		}
	}

	th := m.driver.Throttle()
	if th.Pending() && !m.ticking {
		m.ticking = true
		return m, tea.Tick(th.Remaining(), func(time.Time) tea.Msg { return tickMsg{} })
	}
	return m, nil
}

// View implements tea.Model
func (m *Model) View() string {
	return m.view
}

var teaKeys = map[tea.KeyType]editor.KeyEvent{
	tea.KeyEnter:          editor.Key(editor.KeyEnter, 0),
	tea.KeyTab:            editor.Key(editor.KeyTab, 0),
	tea.KeyBackspace:      editor.Key(editor.KeyBackspace, 0),
	tea.KeyDelete:         editor.Key(editor.KeyDelete, 0),
	tea.KeyEsc:            editor.Key(editor.KeyEsc, 0),
	tea.KeyUp:             editor.Key(editor.KeyUp, 0),
	tea.KeyDown:           editor.Key(editor.KeyDown, 0),
	tea.KeyLeft:           editor.Key(editor.KeyLeft, 0),
	tea.KeyRight:          editor.Key(editor.KeyRight, 0),
	tea.KeyShiftUp:        editor.Key(editor.KeyUp, editor.ModShift),
	tea.KeyShiftDown:      editor.Key(editor.KeyDown, editor.ModShift),
	tea.KeyShiftLeft:      editor.Key(editor.KeyLeft, editor.ModShift),
	tea.KeyShiftRight:     editor.Key(editor.KeyRight, editor.ModShift),
	tea.KeyCtrlLeft:       editor.Key(editor.KeyLeft, editor.ModCtrl),
	tea.KeyCtrlRight:      editor.Key(editor.KeyRight, editor.ModCtrl),
	tea.KeyCtrlShiftLeft:  editor.Key(editor.KeyLeft, editor.ModCtrl|editor.ModShift),
	tea.KeyCtrlShiftRight: editor.Key(editor.KeyRight, editor.ModCtrl|editor.ModShift),
	tea.KeyHome:           editor.Key(editor.KeyHome, 0),
	tea.KeyEnd:            editor.Key(editor.KeyEnd, 0),
	tea.KeyShiftHome:      editor.Key(editor.KeyHome, editor.ModShift),
	tea.KeyShiftEnd:       editor.Key(editor.KeyEnd, editor.ModShift),
	tea.KeyCtrlHome:       editor.Key(editor.KeyHome, editor.ModCtrl),
	tea.KeyCtrlEnd:        editor.Key(editor.KeyEnd, editor.ModCtrl),
	tea.KeyCtrlShiftHome:  editor.Key(editor.KeyHome, editor.ModCtrl|editor.ModShift),
	tea.KeyCtrlShiftEnd:   editor.Key(editor.KeyEnd, editor.ModCtrl|editor.ModShift),
	tea.KeyPgUp:           editor.Key(editor.KeyPgUp, 0),
	tea.KeyPgDown:         editor.Key(editor.KeyPgDn, 0),
	tea.KeyF2:             editor.Key(editor.KeyF2, 0),
}

// keysFromTea converts a key message. Pasted runs of text become one event
// per rune, with line breaks as Enter.
func keysFromTea(msg tea.KeyMsg) []editor.KeyEvent {
	if k, ok := teaKeys[msg.Type]; ok {
		if msg.Alt {
			k.Mod |= editor.ModAlt
		}
		return []editor.KeyEvent{k}
	}

	switch {
	case msg.Type == tea.KeySpace:
		return []editor.KeyEvent{editor.Rune(' ')}
	case msg.Type == tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		keys := make([]editor.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			switch r {
			case '\r':
			case '\n':
				keys = append(keys, editor.Key(editor.KeyEnter, 0))
			default:
				keys = append(keys, editor.Rune(r))
			}
		}
		return keys
	case msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ:
		return []editor.KeyEvent{editor.Ctrl('a' + rune(msg.Type-tea.KeyCtrlA))}
	}
	return nil
}

func pointerFromTea(msg tea.MouseMsg) (editor.PointerEvent, bool) {
	p := editor.PointerEvent{X: msg.X, Y: msg.Y}
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		p.Kind = mouse.ScrollUp
	case msg.Button == tea.MouseButtonWheelDown:
		p.Kind = mouse.ScrollDown
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		p.Kind, p.Button = mouse.Down, mouse.Primary
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonRight:
		p.Kind, p.Button = mouse.Down, mouse.Secondary
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonMiddle:
		p.Kind, p.Button = mouse.Down, mouse.Middle
	case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonLeft:
		p.Kind, p.Button = mouse.Drag, mouse.Primary
	case msg.Action == tea.MouseActionRelease && msg.Button != tea.MouseButtonRight && msg.Button != tea.MouseButtonMiddle:
		// X10 mouse reports do not say which button was released.
		p.Kind, p.Button = mouse.Up, mouse.Primary
	default:
		return p, false
	}
	return p, true
}
