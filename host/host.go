// Package host runs the visualizer in a native window. The ebiten game
// loop owns timing: Update polls pointer and keyboard state, translates
// it into discrete input events, applies them to the scene, then runs
// exactly one physics tick; Draw projects the scene into primitives and
// rasterizes them. Events and ticks are strictly serial, so the scene
// needs no locking.
package host

import (
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/forceviz/forceviz/input"
	"github.com/forceviz/forceviz/physics"
	"github.com/forceviz/forceviz/render"
	"github.com/forceviz/forceviz/scene"
)

var backgroundColor = color.RGBA{R: 0x1A, G: 0x1A, B: 0x1A, A: 0xFF}

// wheelStep converts one ebiten wheel notch into the controller's wheel
// delta scale; 100 gives a 1.2x zoom per notch.
const wheelStep = 100.0

// rotateStep is the per-frame rotation while Q or E is held, radians.
const rotateStep = 0.03

// Options configures a window session.
type Options struct {
	Width        int
	Height       int
	TPS          int
	Title        string
	VertexRadius float64
}

// Game drives one scene inside an ebiten window.
type Game struct {
	scene      *scene.Scene
	controller *input.Controller
	layout     physics.Layout

	opts       Options
	dt         float64
	lastCursor r2.Vec
}

// New wires a scene, controller and layout into a runnable game.
func New(s *scene.Scene, ctrl *input.Controller, layout physics.Layout, opts Options) *Game {
	return &Game{
		scene:      s,
		controller: ctrl,
		layout:     layout,
		opts:       opts,
		dt:         1.0 / float64(opts.TPS),
	}
}

// Run opens the window and blocks until it is closed.
func (g *Game) Run() error {
	ebiten.SetWindowSize(g.opts.Width, g.opts.Height)
	ebiten.SetWindowTitle(g.opts.Title)
	ebiten.SetTPS(g.opts.TPS)
	slog.Info("opening window",
		"width", g.opts.Width, "height", g.opts.Height, "tps", g.opts.TPS)
	return ebiten.RunGame(g)
}

// Update translates polled input into events, applies them in arrival
// order, then advances the simulation by one tick.
func (g *Game) Update() error {
	cx, cy := ebiten.CursorPosition()
	cursor := r2.Vec{X: float64(cx), Y: float64(cy)}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.controller.Apply(g.scene, input.PointerDown{
			Button:    input.ButtonPrimary,
			Modifiers: heldModifiers(),
			Pos:       cursor,
		})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.controller.Apply(g.scene, input.PointerUp{
			Button: input.ButtonPrimary,
			Pos:    cursor,
		})
	}
	if cursor != g.lastCursor {
		g.controller.Apply(g.scene, input.PointerMove{Pos: cursor})
		g.lastCursor = cursor
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		// Wheel up (positive) zooms in.
		g.controller.Apply(g.scene, input.Wheel{Delta: -wy * wheelStep, Pos: cursor})
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		g.controller.Apply(g.scene, input.Rotate{Delta: -rotateStep, Pos: cursor})
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		g.controller.Apply(g.scene, input.Rotate{Delta: rotateStep, Pos: cursor})
	}

	g.layout.Tick(g.scene, g.dt)
	return nil
}

// Draw rasterizes the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	frame, err := render.Compose(g.scene, g.opts.VertexRadius)
	if err != nil {
		// A scene invariant broke; surface it rather than draw garbage.
		slog.Error("frame composition failed", "error", err)
		return
	}

	for _, s := range frame.Segments {
		vector.StrokeLine(screen,
			float32(s.From.X), float32(s.From.Y),
			float32(s.To.X), float32(s.To.Y),
			1, render.EdgeColor, true)
	}
	for _, r := range frame.Rings {
		vector.DrawFilledCircle(screen,
			float32(r.Center.X), float32(r.Center.Y),
			float32(r.Radius), render.VertexColor, true)
	}
}

// Layout reports the fixed logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.opts.Width, g.opts.Height
}

func heldModifiers() input.Modifiers {
	var m input.Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= input.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= input.ModControl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= input.ModAlt
	}
	return m
}
