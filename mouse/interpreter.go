package mouse

import "time"

// Interpreter converts Events into Gestures.
type Interpreter struct {
	cfg   Config
	clock Clock

	state  state
	anchor Point

	hasLast   bool
	lastClick Point
	lastTime  time.Time
}

// NewInterpreter creates an interpreter. A nil clock means time.Now.
func NewInterpreter(cfg Config, clock Clock) *Interpreter {
	if clock == nil {
		clock = time.Now
	}
	def := DefaultConfig()
	if cfg.DoubleClickWindow <= 0 {
		cfg.DoubleClickWindow = def.DoubleClickWindow
	}
	if cfg.ColumnTolerance < 0 {
		cfg.ColumnTolerance = def.ColumnTolerance
	}
	if cfg.ScrollStep <= 0 {
		cfg.ScrollStep = def.ScrollStep
	}
	return &Interpreter{cfg: cfg, clock: clock}
}

// Interpret feeds one event through the state machine.
func (in *Interpreter) Interpret(ev Event) Gesture {
	at := Point{Row: ev.Row, Col: ev.Col}
	switch ev.Kind {
	case Down:
		switch ev.Button {
		case Primary:
			return in.press(at)
		case Secondary:
			return Gesture{Kind: RightClick, At: at}
		}
	case Drag:
		if ev.Button != Primary || in.state == idle {
			return Gesture{}
		}
		in.state = dragging
		return Gesture{Kind: Dragging, At: at, From: in.anchor}
	case Up:
		if ev.Button != Primary || in.state == idle {
			return Gesture{}
		}
		from := in.anchor
		in.state = idle
		in.anchor = Point{}
		if from == at {
			return Gesture{}
		}
		return Gesture{Kind: DragEnd, At: at, From: from}
	case ScrollUp:
		return Gesture{Kind: Scroll, At: at, Delta: -in.cfg.ScrollStep}
	case ScrollDown:
		return Gesture{Kind: Scroll, At: at, Delta: in.cfg.ScrollStep}
	}
	return Gesture{}
}

func (in *Interpreter) press(at Point) Gesture {
	now := in.clock()
	double := in.hasLast &&
		now.Sub(in.lastTime) < in.cfg.DoubleClickWindow &&
		at.Row == in.lastClick.Row &&
		abs(at.Col-in.lastClick.Col) <= in.cfg.ColumnTolerance

	in.hasLast = true
	in.lastClick = at
	in.lastTime = now

	if double {
		in.state = idle
		in.anchor = Point{}
		return Gesture{Kind: DoubleClick, At: at}
	}
	in.state = pressed
	in.anchor = at
	return Gesture{Kind: Click, At: at}
}

// Reset forgets any press in progress and the last click.
func (in *Interpreter) Reset() {
	*in = Interpreter{cfg: in.cfg, clock: in.clock}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
