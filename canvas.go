package main

import (
	"sync"

	"sonograph/internal/geometry"
)

// windowCanvas is the engine's view of the game window. It is read from the
// engine and written from the game loop.
type windowCanvas struct {
	mu        sync.RWMutex
	width     int
	height    int
	transform *geometry.Transform
	closed    bool
}

// newWindowCanvas sizes the canvas. A nil world leaves shapes in screen
// pixels; otherwise world is xLow, yLow, xHigh, yHigh.
func newWindowCanvas(width, height int, world *[4]float64) (*windowCanvas, error) {
	c := &windowCanvas{width: width, height: height}
	if world != nil {
		t, err := geometry.NewTransform(width, height, world[0], world[1], world[2], world[3])
		if err != nil {
			return nil, err
		}
		c.transform = t
	}
	return c, nil
}

func (c *windowCanvas) Transform() *geometry.Transform {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.transform
}

func (c *windowCanvas) Closed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

func (c *windowCanvas) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}
