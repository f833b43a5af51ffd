package editor

import "strings"

// KeyCode identifies a key independent of the terminal backend.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyRune         // printable character in KeyEvent.Rune
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyTab
	KeyEsc
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDn
	KeyF2
)

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

// KeyEvent is one key press. Control combinations with letters arrive as
// KeyRune with ModCtrl set and a lower-case Rune.
type KeyEvent struct {
	Code KeyCode
	Rune rune
	Mod  Modifiers
}

// Ctrl returns the event for Ctrl plus a letter.
func Ctrl(r rune) KeyEvent {
	return KeyEvent{Code: KeyRune, Rune: r, Mod: ModCtrl}
}

// Rune returns the event for typing r.
func Rune(r rune) KeyEvent {
	return KeyEvent{Code: KeyRune, Rune: r}
}

// Key returns the event for a named key.
func Key(code KeyCode, mod Modifiers) KeyEvent {
	return KeyEvent{Code: code, Mod: mod}
}

// Has reports whether all of m are held.
func (k KeyEvent) Has(m Modifiers) bool {
	return k.Mod&m == m
}

var keyNames = map[KeyCode]string{
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyTab:       "tab",
	KeyEsc:       "esc",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPgUp:      "pgup",
	KeyPgDn:      "pgdown",
	KeyF2:        "f2",
}

// String formats the event like "ctrl+shift+left" for logs.
func (k KeyEvent) String() string {
	var sb strings.Builder
	if k.Has(ModCtrl) {
		sb.WriteString("ctrl+")
	}
	if k.Has(ModAlt) {
		sb.WriteString("alt+")
	}
	if k.Has(ModShift) {
		sb.WriteString("shift+")
	}
	switch k.Code {
	case KeyRune:
		sb.WriteRune(k.Rune)
	case KeyNone:
		sb.WriteString("none")
	default:
		sb.WriteString(keyNames[k.Code])
	}
	return sb.String()
}
