package tui

import (
	"math"

	"sonograph/internal/geometry"
)

const (
	headerRows = 1
	footerRows = 2
	minMapW    = 10
	minMapH    = 5
)

// mapLayout places a square canvas of side canvasSize scene pixels inside
// the terminal, scaled uniformly into braille micro-pixels.
type mapLayout struct {
	originX, originY int // top-left cell of the map
	w, h             int // in cells
	scale            float64
	canvasSize       float64
}

func newMapLayout(termW, termH int, canvasSize float64) mapLayout {
	w := termW - 2
	h := termH - headerRows - footerRows - 2
	if w < minMapW {
		w = minMapW
	}
	if h < minMapH {
		h = minMapH
	}
	return mapLayout{
		originX:    1,
		originY:    headerRows + 1,
		w:          w,
		h:          h,
		scale:      math.Min(float64(2*w), float64(4*h)) / canvasSize,
		canvasSize: canvasSize,
	}
}

// toScene maps a terminal cell to the scene pixel under the centre of that
// cell. ok is false when the cell is off the canvas.
func (l mapLayout) toScene(cx, cy int) (x, y float64, ok bool) {
	mx := (cx-l.originX)*2 + 1
	my := (cy-l.originY)*4 + 2
	x = float64(mx) / l.scale
	y = float64(my) / l.scale
	ok = cx >= l.originX && cy >= l.originY &&
		cx < l.originX+l.w && cy < l.originY+l.h &&
		x < l.canvasSize && y < l.canvasSize
	return x, y, ok
}

func (l mapLayout) toMicro(p geometry.Point) (int, int) {
	return int(math.Round(p.X * l.scale)), int(math.Round(p.Y * l.scale))
}

// canvasCells is the extent of the canvas in cells.
func (l mapLayout) canvasCells() (int, int) {
	side := math.Round(l.canvasSize * l.scale)
	return min(l.w, int(math.Ceil(side/2))), min(l.h, int(math.Ceil(side/4)))
}
