package server

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/forceviz/forceviz/input"
)

// wireEvent is the uplink message format from the browser client.
type wireEvent struct {
	Type      string  `json:"type"` // down, up, move, wheel, rotate
	Button    int     `json:"button"`
	Modifiers uint8   `json:"modifiers"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Delta     float64 `json:"delta"`
}

func (e wireEvent) decode() (input.Event, error) {
	pos := r2.Vec{X: e.X, Y: e.Y}
	switch e.Type {
	case "down":
		return input.PointerDown{
			Button:    input.Button(e.Button),
			Modifiers: input.Modifiers(e.Modifiers),
			Pos:       pos,
		}, nil
	case "up":
		return input.PointerUp{Button: input.Button(e.Button), Pos: pos}, nil
	case "move":
		return input.PointerMove{Pos: pos}, nil
	case "wheel":
		return input.Wheel{Delta: e.Delta, Pos: pos}, nil
	case "rotate":
		return input.Rotate{Delta: e.Delta, Pos: pos}, nil
	default:
		return nil, fmt.Errorf("unknown event type %q", e.Type)
	}
}
