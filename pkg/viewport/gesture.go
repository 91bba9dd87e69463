package viewport

import (
	"fmt"

	"mapview/pkg/graphics"
)

// DragState is the state of the gesture state machine.
type DragState int

const (
	Idle DragState = iota
	Panning
)

func (d DragState) String() string {
	switch d {
	case Idle:
		return "idle"
	case Panning:
		return "panning"
	}
	return fmt.Sprintf("DragState(%d)", int(d))
}

// Controller translates input events into pan and zoom operations on a
// State and requests a redraw after every change.
//
// Transitions:
//
//	Idle    + PointerDown(primary) -> Panning (records position)
//	Panning + PointerMove          -> Panning (pans by the delta)
//	Panning + PointerUp/Leave      -> Idle
//	any     + Wheel                -> unchanged (zooms at the position)
//
// Every other combination is ignored. Events are handled one at a time in
// arrival order.
type Controller struct {
	state  *State
	redraw Redrawer

	drag DragState
	last graphics.Point
}

// NewController creates a controller in the Idle state.
// A nil redraw disables redraw requests.
func NewController(state *State, redraw Redrawer) *Controller {
	if redraw == nil {
		redraw = RedrawFunc(func() {})
	}
	return &Controller{
		state:  state,
		redraw: redraw,
	}
}

// State returns the controlled viewport state.
func (c *Controller) State() *State {
	return c.state
}

// DragState returns the current gesture state.
func (c *Controller) DragState() DragState {
	return c.drag
}

// Handle processes one event. Malformed sequences, such as a release
// without a press, are ignored.
func (c *Controller) Handle(ev Event) {
	switch ev := ev.(type) {
	case PointerDown:
		c.pointerDown(ev)
	case PointerMove:
		c.pointerMove(ev)
	case PointerUp:
		c.endDrag("up")
	case PointerLeave:
		c.endDrag("leave")
	case Wheel:
		c.wheel(ev)
	case Resize:
		c.state.Resize(ev.Size)
		c.redraw.RequestRedraw()
	default:
		Logger().Debug("unknown event ignored", "event", fmt.Sprintf("%T", ev))
	}
}

func (c *Controller) pointerDown(ev PointerDown) {
	if ev.Button != ButtonPrimary {
		return
	}
	if c.drag == Panning {
		Logger().Debug("pointer down while panning ignored", "pos", ev.Position)
		return
	}
	c.drag = Panning
	c.last = ev.Position
}

func (c *Controller) pointerMove(ev PointerMove) {
	if c.drag != Panning {
		return
	}
	d := ev.Position.Sub(c.last)
	c.last = ev.Position
	if d.X == 0 && d.Y == 0 {
		return
	}
	c.state.Pan(d.X, d.Y)
	c.redraw.RequestRedraw()
}

func (c *Controller) endDrag(kind string) {
	if c.drag != Panning {
		Logger().Debug("stray pointer release ignored", "kind", kind)
		return
	}
	c.drag = Idle
}

func (c *Controller) wheel(ev Wheel) {
	opts := c.state.Options()
	factor := opts.ZoomOutFactor
	if ev.Delta > 0 {
		factor = opts.ZoomInFactor
	}
	c.state.ZoomAt(factor, ev.Position)
	c.redraw.RequestRedraw()
}

// Fit re-fits the document and requests a redraw.
func (c *Controller) Fit() error {
	err := c.state.Fit()
	c.redraw.RequestRedraw()
	return err
}

// Pan pans by (dx, dy) screen pixels outside of a drag, as keyboard
// navigation does, and requests a redraw.
func (c *Controller) Pan(dx, dy float64) {
	c.state.Pan(dx, dy)
	c.redraw.RequestRedraw()
}

// ZoomStep zooms in (in == true) or out by one wheel step about the
// centre of the viewport.
func (c *Controller) ZoomStep(in bool) {
	size := c.state.Size()
	delta := -1.0
	if in {
		delta = 1
	}
	c.wheel(Wheel{Position: graphics.Pt(size.Width/2, size.Height/2), Delta: delta})
}
