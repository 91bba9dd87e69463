package viewport

import (
	"fmt"

	"mapview/pkg/graphics"
)

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary Button = iota + 1
	ButtonSecondary
	ButtonTertiary
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonTertiary:
		return "tertiary"
	}
	return fmt.Sprintf("Button(%d)", int(b))
}

// Event is an input event consumed by Controller. Positions are in
// screen pixels relative to the viewport's top-left corner.
type Event interface {
	event()
}

// PointerDown is a button press.
type PointerDown struct {
	Button   Button
	Position graphics.Point
}

// PointerMove is a pointer motion, with or without a button held.
type PointerMove struct {
	Position graphics.Point
}

// PointerUp is a button release.
type PointerUp struct {
	Position graphics.Point
}

// PointerLeave is sent when the pointer leaves the viewport surface.
type PointerLeave struct{}

// Wheel is a scroll-wheel step. Only the sign of Delta is significant.
type Wheel struct {
	Position graphics.Point
	Delta    float64
}

// Resize reports a new viewport size.
type Resize struct {
	Size Size
}

func (PointerDown) event()  {}
func (PointerMove) event()  {}
func (PointerUp) event()    {}
func (PointerLeave) event() {}
func (Wheel) event()        {}
func (Resize) event()       {}
