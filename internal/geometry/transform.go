package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateTransform is returned when a coordinate mapping would have a
// zero scale factor.
var ErrDegenerateTransform = errors.New("geometry: degenerate transform")

// Transform maps world coordinates onto a canvas of device pixels.
//
// World y grows upward while screen y grows downward, so the world point
// (xLow, yHigh) lands on the top-left pixel and (xHigh, yLow) on the
// bottom-right one. Scale factors may differ per axis.
//
// A nil *Transform is the identity mapping. Canvases that are closed or have
// no coordinate system installed hand out nil, and every method keeps working.
type Transform struct {
	xBase, yBase   float64
	xScale, yScale float64
}

// NewTransform returns the mapping that stretches the world rectangle
// [xLow, xHigh] x [yLow, yHigh] over a width x height canvas.
func NewTransform(width, height int, xLow, yLow, xHigh, yHigh float64) (*Transform, error) {
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("%w: canvas %dx%d", ErrDegenerateTransform, width, height)
	}
	xs := (xHigh - xLow) / float64(width-1)
	ys := (yHigh - yLow) / float64(height-1)
	if xs == 0 || ys == 0 || math.IsNaN(xs) || math.IsNaN(ys) || math.IsInf(xs, 0) || math.IsInf(ys, 0) {
		return nil, fmt.Errorf("%w: world span %gx%g", ErrDegenerateTransform, xHigh-xLow, yHigh-yLow)
	}
	return &Transform{xBase: xLow, yBase: yHigh, xScale: xs, yScale: ys}, nil
}

// ToScreen converts a world point to screen coordinates.
func (t *Transform) ToScreen(p Point) Point {
	if t == nil {
		return p
	}
	return Point{
		X: (p.X - t.xBase) / t.xScale,
		Y: (t.yBase - p.Y) / t.yScale,
	}
}

// ToWorld converts a screen point to world coordinates.
func (t *Transform) ToWorld(p Point) Point {
	if t == nil {
		return p
	}
	return Point{
		X: t.xBase + p.X*t.xScale,
		Y: t.yBase - p.Y*t.yScale,
	}
}

// ScaleX converts a horizontal world length into screen pixels.
func (t *Transform) ScaleX(length float64) float64 {
	if t == nil {
		return length
	}
	return math.Abs(length / t.xScale)
}

// ScaleY converts a vertical world length into screen pixels.
func (t *Transform) ScaleY(length float64) float64 {
	if t == nil {
		return length
	}
	return math.Abs(length / t.yScale)
}
