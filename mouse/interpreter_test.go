package mouse

import (
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) advance(d time.Duration) { f.now = f.now.Add(d) }

func newTestInterpreter() (*Interpreter, *fakeClock) {
	clk := &fakeClock{now: time.Unix(1000, 0)}
	return NewInterpreter(DefaultConfig(), clk.Now), clk
}

func down(row, col int) Event { return Event{Kind: Down, Button: Primary, Row: row, Col: col} }
func up(row, col int) Event   { return Event{Kind: Up, Button: Primary, Row: row, Col: col} }
func drag(row, col int) Event { return Event{Kind: Drag, Button: Primary, Row: row, Col: col} }

func TestInterpretDoubleClickWindow(t *testing.T) {
	tests := []struct {
		name  string
		delay time.Duration
		row   int
		col   int
		want  GestureKind
	}{
		{"fast same cell", 300 * time.Millisecond, 5, 11, DoubleClick},
		{"too slow", 900 * time.Millisecond, 5, 11, Click},
		{"at window edge", 500 * time.Millisecond, 5, 10, Click},
		{"different row", 100 * time.Millisecond, 6, 10, Click},
		{"column within tolerance", 100 * time.Millisecond, 5, 12, DoubleClick},
		{"column past tolerance", 100 * time.Millisecond, 5, 13, Click},
	}

	for _, tt := range tests {
		in, clk := newTestInterpreter()
		if g := in.Interpret(down(5, 10)); g.Kind != Click {
			t.Fatalf("%s: first Down = %v, want Click", tt.name, g.Kind)
		}
		in.Interpret(up(5, 10))
		clk.advance(tt.delay)
		if g := in.Interpret(down(tt.row, tt.col)); g.Kind != tt.want {
			t.Errorf("%s: second Down = %v, want %v", tt.name, g.Kind, tt.want)
		}
	}
}

func TestInterpretPressSequence(t *testing.T) {
	in, clk := newTestInterpreter()
	start := clk.now

	steps := []struct {
		at       time.Duration
		row, col int
		want     GestureKind
	}{
		{0, 5, 10, Click},
		{300 * time.Millisecond, 5, 11, DoubleClick},
		{900 * time.Millisecond, 5, 11, Click},
	}
	for i, st := range steps {
		clk.now = start.Add(st.at)
		if g := in.Interpret(down(st.row, st.col)); g.Kind != st.want {
			t.Errorf("press %d at %v = %v, want %v", i, st.at, g.Kind, st.want)
		}
		in.Interpret(up(st.row, st.col))
	}
}

func TestInterpretDoubleClickRestartsWindow(t *testing.T) {
	in, clk := newTestInterpreter()
	in.Interpret(down(5, 10))
	in.Interpret(up(5, 10))

	clk.advance(300 * time.Millisecond)
	if g := in.Interpret(down(5, 10)); g.Kind != DoubleClick {
		t.Fatalf("second press = %v, want DoubleClick", g.Kind)
	}

	// 600ms after the first press, 300ms after the double click.
	clk.advance(300 * time.Millisecond)
	if g := in.Interpret(down(5, 10)); g.Kind != DoubleClick {
		t.Errorf("third press = %v, want DoubleClick timed from the second press", g.Kind)
	}
	if !in.lastTime.Equal(clk.now) {
		t.Errorf("lastTime = %v, want %v", in.lastTime, clk.now)
	}
}

func TestInterpretFirstClickNeverDouble(t *testing.T) {
	clk := &fakeClock{}
	in := NewInterpreter(DefaultConfig(), clk.Now)
	if g := in.Interpret(down(0, 0)); g.Kind != Click {
		t.Errorf("first Down at zero time = %v, want Click", g.Kind)
	}
}

func TestInterpretDoubleClickLeavesIdle(t *testing.T) {
	in, clk := newTestInterpreter()
	in.Interpret(down(2, 3))
	in.Interpret(up(2, 3))
	clk.advance(100 * time.Millisecond)
	in.Interpret(down(2, 3))

	if in.state != idle {
		t.Errorf("state after double click = %v, want idle", in.state)
	}
	if g := in.Interpret(drag(2, 8)); g.Kind != None {
		t.Errorf("Drag after double click = %v, want None", g.Kind)
	}
}

func TestInterpretDrag(t *testing.T) {
	in, _ := newTestInterpreter()
	in.Interpret(down(1, 1))

	g := in.Interpret(drag(3, 4))
	if g.Kind != Dragging {
		t.Fatalf("Drag = %v, want Dragging", g.Kind)
	}
	if g.From != (Point{1, 1}) || g.At != (Point{3, 4}) {
		t.Errorf("Drag = from %v at %v, want from {1 1} at {3 4}", g.From, g.At)
	}

	g = in.Interpret(up(3, 5))
	if g.Kind != DragEnd {
		t.Fatalf("Up = %v, want DragEnd", g.Kind)
	}
	if g.From != (Point{1, 1}) || g.At != (Point{3, 5}) {
		t.Errorf("DragEnd = from %v at %v, want from {1 1} at {3 5}", g.From, g.At)
	}
	if g := in.Interpret(drag(4, 4)); g.Kind != None {
		t.Errorf("Drag after Up = %v, want None", g.Kind)
	}
}

func TestInterpretUpWithoutMovement(t *testing.T) {
	in, _ := newTestInterpreter()
	in.Interpret(down(4, 4))
	if g := in.Interpret(up(4, 4)); g.Kind != None {
		t.Errorf("Up at press point = %v, want None", g.Kind)
	}
}

func TestInterpretWithoutPress(t *testing.T) {
	in, _ := newTestInterpreter()
	if g := in.Interpret(drag(1, 1)); g.Kind != None {
		t.Errorf("Drag while idle = %v, want None", g.Kind)
	}
	if g := in.Interpret(up(1, 1)); g.Kind != None {
		t.Errorf("Up while idle = %v, want None", g.Kind)
	}
}

func TestInterpretRightClickAndScroll(t *testing.T) {
	in, _ := newTestInterpreter()
	in.Interpret(down(1, 1))

	g := in.Interpret(Event{Kind: Down, Button: Secondary, Row: 7, Col: 2})
	if g.Kind != RightClick || g.At != (Point{7, 2}) {
		t.Errorf("secondary Down = %+v, want RightClick at {7 2}", g)
	}
	if g := in.Interpret(drag(2, 2)); g.Kind != Dragging || g.From != (Point{1, 1}) {
		t.Errorf("Drag after right click = %+v, want Dragging from {1 1}", g)
	}

	if g := in.Interpret(Event{Kind: ScrollUp}); g.Kind != Scroll || g.Delta != -3 {
		t.Errorf("ScrollUp = %+v, want Scroll delta -3", g)
	}
	if g := in.Interpret(Event{Kind: ScrollDown}); g.Kind != Scroll || g.Delta != 3 {
		t.Errorf("ScrollDown = %+v, want Scroll delta 3", g)
	}
}

func TestNewInterpreterDefaults(t *testing.T) {
	in := NewInterpreter(Config{ColumnTolerance: -1}, nil)
	if got, want := in.cfg, DefaultConfig(); got != want {
		t.Errorf("config = %+v, want %+v", got, want)
	}
}
