// Package mouse turns raw pointer events into editing gestures.
//
// The interpreter is a small state machine (idle, pressed, dragging) that
// recognises clicks, double clicks, drags and scrolls. It never reads the
// wall clock directly; timestamps come from an injected Clock so double-click
// detection can be tested deterministically.
package mouse

import "time"

// Point is a cell in content-area coordinates.
type Point struct {
	Row int
	Col int
}

// Kind identifies a raw pointer event.
type Kind int

const (
	Down Kind = iota
	Up
	Drag
	ScrollUp
	ScrollDown
)

// Button identifies which button a Down or Up event refers to.
type Button int

const (
	Primary Button = iota
	Secondary
	Middle
)

// Event is a raw pointer event from a terminal frontend.
type Event struct {
	Kind   Kind
	Button Button
	Row    int
	Col    int
}

// GestureKind identifies the interpreted gesture.
type GestureKind int

const (
	None GestureKind = iota
	Click
	DoubleClick
	RightClick
	Dragging
	DragEnd
	Scroll
)

// Gesture is the result of interpreting one event.
// For Dragging and DragEnd, From is the anchor and At the current point.
// For Scroll, Delta is the signed number of rows to move.
type Gesture struct {
	Kind  GestureKind
	At    Point
	From  Point
	Delta int
}

// Clock returns the current time. time.Now satisfies it.
type Clock func() time.Time

// Config holds the tunable thresholds of the interpreter.
type Config struct {
	DoubleClickWindow time.Duration
	ColumnTolerance   int
	ScrollStep        int
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		DoubleClickWindow: 500 * time.Millisecond,
		ColumnTolerance:   2,
		ScrollStep:        3,
	}
}

type state int

const (
	idle state = iota
	pressed
	dragging
)
