package main

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"sonograph/internal/engine"
	"sonograph/internal/mixer"
	"sonograph/internal/scene"
)

// Game feeds pointer samples from the window to the sonification engine and
// draws the display list.
type Game struct {
	engine  *engine.Engine
	list    *scene.List
	canvas  *windowCanvas
	builder *sceneBuilder
	face    *text.GoXFace

	width, height int

	levelRand *rand.Rand
	trialMode bool
	trial     int

	// Pointer position in canvas pixels and whether it is on the canvas.
	px, py   float64
	sampled  bool
	inCanvas bool
	keyboard bool
	frame    mixer.Frame
	lastErr  string

	autoWalk           bool
	autoWalkDeadline   time.Time
	autoWalkRand       *rand.Rand
	autoWalkDirX       float64
	autoWalkDirY       float64
	autoWalkFrameCount int
	stopProfile        func()
}

// Update turns the current pointer position into enter, leave and motion
// events.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.autoWalk && time.Now().After(g.autoWalkDeadline) {
		g.autoWalk = false
		if g.stopProfile != nil {
			g.stopProfile()
			return ebiten.Termination
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyK) {
		g.keyboard = !g.keyboard
		g.px, g.py = float64(g.width)/2, float64(g.height)/2
		slog.Info("keyboard pointer", "enabled", g.keyboard)
	}
	if g.trialMode && inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.engine.Leave()
		g.inCanvas = false
		g.generateTrial()
	}

	x, y := g.pointerPosition()
	inside := ebiten.IsFocused() && x >= 0 && y >= 0 && x < float64(g.width) && y < float64(g.height)
	if inside != g.inCanvas {
		g.inCanvas = inside
		if inside {
			g.engine.Enter()
		} else {
			g.engine.Leave()
			g.frame = g.engine.Last()
		}
	}
	if !inside || (g.sampled && x == g.px && y == g.py && !g.keyboard && !g.autoWalk) {
		return nil
	}
	g.px, g.py, g.sampled = x, y, true

	frame, err := g.engine.Motion(engine.MotionEvent{X: x, Y: y, Width: g.width, Height: g.height})
	if err != nil {
		if errors.Is(err, engine.ErrClosed) {
			return err
		}
		if msg := err.Error(); msg != g.lastErr {
			slog.Warn("sample", "err", err)
			g.lastErr = msg
		}
	}
	g.frame = frame
	return nil
}

// pointerPosition returns the mouse position, or the keyboard or scripted
// pointer when one of those is driving.
func (g *Game) pointerPosition() (float64, float64) {
	if g.keyboard || g.autoWalk {
		dx, dy := g.movementVector()
		g.px += dx
		g.py += dy
		g.clampPointer()
		return g.px, g.py
	}
	cx, cy := ebiten.CursorPosition()
	return float64(cx), float64(cy)
}

// Layout reports the canvas size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return g.width, g.height }

// close stops all sound and detaches the canvas from the engine.
func (g *Game) close() {
	g.canvas.Close()
	g.engine.Close()
}
