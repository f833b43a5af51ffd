// Package term drives an editor from a terminal.
//
// A frontend supplies an InputSource and a RenderTarget. Run reads one event
// at a time, hands it to the engine and draws the resulting frame, pacing
// pointer-driven redraws with a RenderThrottle. The bubbletea frontend owns
// its own loop but steps the same Driver.
package term

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ajstrand/hello-tui/editor"
	"github.com/ajstrand/hello-tui/ui"
)

// EventKind identifies an input event.
type EventKind int

const (
	KeyInput EventKind = iota
	PointerInput
	ResizeInput
	TickInput
)

// Event is one input event from a frontend.
type Event struct {
	Kind    EventKind
	Key     editor.KeyEvent
	Pointer editor.PointerEvent
	Width   int
	Height  int
}

// InputSource delivers input events. Next blocks until an event arrives or
// ctx is done. It returns io.EOF when the source is exhausted.
type InputSource interface {
	Next(ctx context.Context) (Event, error)
}

// RenderTarget displays frames.
type RenderTarget interface {
	Size() (width, height int)
	Draw(f ui.Frame) error
}

// Engine is the editing state machine the driver steps.
type Engine interface {
	HandleKey(k editor.KeyEvent) editor.Outcome
	HandlePointer(p editor.PointerEvent) editor.Outcome
	Resize(width, height int)
	Frame() ui.Frame
}

// Driver applies events to an engine and decides when to redraw.
type Driver struct {
	engine   Engine
	throttle *RenderThrottle
}

// NewDriver creates a driver. A nil throttle never delays a redraw.
func NewDriver(engine Engine, throttle *RenderThrottle) *Driver {
	if throttle == nil {
		throttle = NewRenderThrottle(0, nil)
	}
	return &Driver{engine: engine, throttle: throttle}
}

// Step applies ev and reports whether a frame should be drawn now and
// whether the editor asked to exit.
func (d *Driver) Step(ev Event) (draw, quit bool) {
	var out editor.Outcome
	switch ev.Kind {
	case KeyInput:
		out = d.engine.HandleKey(ev.Key)
		// Typing is drawn at once; only pointer bursts are paced.
		out.Forced = out.Changed
	case PointerInput:
		out = d.engine.HandlePointer(ev.Pointer)
	case ResizeInput:
		d.engine.Resize(ev.Width, ev.Height)
		out = editor.Outcome{Changed: true, Forced: true}
	case TickInput:
		return d.throttle.Flush(), false
	}
	if out.Quit {
		return false, true
	}
	return out.Changed && d.throttle.Allow(out.Forced), false
}

// Frame renders the engine's current state.
func (d *Driver) Frame() ui.Frame {
	return d.engine.Frame()
}

// Throttle returns the driver's render throttle.
func (d *Driver) Throttle() *RenderThrottle {
	return d.throttle
}

// Run sizes the engine to dst, draws the first frame and then processes
// events from src until the editor quits, src is exhausted or ctx is done.
// While a throttled frame is pending, Run waits for input no longer than the
// throttle needs and flushes the frame when the wait runs out.
func Run(ctx context.Context, d *Driver, src InputSource, dst RenderTarget) error {
	w, h := dst.Size()
	d.Step(Event{Kind: ResizeInput, Width: w, Height: h})
	if err := dst.Draw(d.Frame()); err != nil {
		return fmt.Errorf("draw: %w", err)
	}

	for {
		ev, err := next(ctx, d.throttle, src)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		draw, quit := d.Step(ev)
		if quit {
			return nil
		}
		if draw {
			if err := dst.Draw(d.Frame()); err != nil {
				return fmt.Errorf("draw: %w", err)
			}
		}
	}
}

// next reads one event, turning an expired wait for a pending frame into a tick.
func next(ctx context.Context, t *RenderThrottle, src InputSource) (Event, error) {
	if !t.Pending() {
		return src.Next(ctx)
	}
	wait, cancel := context.WithTimeout(ctx, t.Remaining())
	defer cancel()
	ev, err := src.Next(wait)
	if err != nil && errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return Event{Kind: TickInput}, nil
	}
	return ev, err
}
