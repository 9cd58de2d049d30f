// Package input translates raw pointer events into scene mutations:
// modifier-clicks select a vertex for dragging, pointer moves either track
// the drag or drive the view's gestures, and wheel/rotate events
// manipulate the view transform. Events arrive one at a time and each is
// fully processed before the next.
package input

import "gonum.org/v1/gonum/spatial/r2"

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

// Modifiers is the set of modifier keys held during an event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
)

// Event is a discrete input event in host pixel coordinates.
type Event interface {
	isEvent()
}

// PointerDown is a button press at Pos.
type PointerDown struct {
	Button    Button
	Modifiers Modifiers
	Pos       r2.Vec
}

// PointerUp is a button release at Pos.
type PointerUp struct {
	Button Button
	Pos    r2.Vec
}

// PointerMove is a pointer motion to Pos.
type PointerMove struct {
	Pos r2.Vec
}

// Wheel is a scroll/zoom gesture. Delta follows the host's wheel axis
// convention (positive = toward the user).
type Wheel struct {
	Delta float64
	Pos   r2.Vec
}

// Rotate is a rotation gesture of Delta radians pivoting on Pos.
type Rotate struct {
	Delta float64
	Pos   r2.Vec
}

func (PointerDown) isEvent() {}
func (PointerUp) isEvent()   {}
func (PointerMove) isEvent() {}
func (Wheel) isEvent()       {}
func (Rotate) isEvent()      {}
