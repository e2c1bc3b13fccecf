package main

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// enableAutoWalk sweeps the pointer across the canvas for a limited time.
func (g *Game) enableAutoWalk(duration time.Duration) {
	g.autoWalk = true
	g.autoWalkDeadline = time.Now().Add(duration)
	if g.autoWalkRand == nil {
		g.autoWalkRand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 3))
	}
	g.autoWalkFrameCount = 0
	g.px, g.py = float64(g.width)/2, float64(g.height)/2
}

// movementVector selects either keyboard or automatic pointer movement.
func (g *Game) movementVector() (float64, float64) {
	if g.autoWalk {
		return g.autoWalkVector()
	}
	return manualMovementVector()
}

// manualMovementVector returns WASD or arrow key movement scaled by
// moveSpeed.
func manualMovementVector() (float64, float64) {
	dx, dy := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy -= moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy += moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx -= moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx += moveSpeed
	}
	if dx != 0 && dy != 0 {
		dx *= 0.7071
		dy *= 0.7071
	}
	return dx, dy
}

// autoWalkVector returns a pseudo-random heading that stays on the canvas.
func (g *Game) autoWalkVector() (float64, float64) {
	for attempts := 0; attempts < 5; attempts++ {
		if g.autoWalkFrameCount <= 0 {
			g.randomizeAutoWalkDirection()
		}
		nextX := g.px + g.autoWalkDirX*moveSpeed
		nextY := g.py + g.autoWalkDirY*moveSpeed
		if nextX > 0 && nextX < float64(g.width-1) && nextY > 0 && nextY < float64(g.height-1) {
			g.autoWalkFrameCount--
			return g.autoWalkDirX * moveSpeed, g.autoWalkDirY * moveSpeed
		}
		g.autoWalkFrameCount = 0
	}
	return 0, 0
}

// randomizeAutoWalkDirection chooses a new heading for automatic walking.
func (g *Game) randomizeAutoWalkDirection() {
	angle := g.autoWalkRand.Float64() * 2 * math.Pi
	g.autoWalkDirX = math.Cos(angle)
	g.autoWalkDirY = math.Sin(angle)
	g.autoWalkFrameCount = 20 + g.autoWalkRand.IntN(50)
}

// clampPointer keeps a keyboard-driven pointer on the canvas.
func (g *Game) clampPointer() {
	g.px = math.Max(0, math.Min(float64(g.width-1), g.px))
	g.py = math.Max(0, math.Min(float64(g.height-1), g.py))
}
