package tui

import (
	"math"

	"sonograph/internal/geometry"
)

const ringSegments = 48

// trace draws the outline of g, given in scene pixels.
func trace(b *brailleBuf, l mapLayout, g geometry.Geometry) {
	switch g.Kind() {
	case geometry.KindPoint:
		mx, my := l.toMicro(g.Center())
		b.setPixel(mx, my)
		b.setPixel(mx+1, my)
		b.setPixel(mx, my+1)
		b.setPixel(mx+1, my+1)
	case geometry.KindSegment:
		polyline(b, l, g.Vertices(), false)
	case geometry.KindCircle:
		r := g.Radius()
		polyline(b, l, ring(g.Center(), r, r), true)
	case geometry.KindEllipse:
		rx, ry := g.Radii()
		polyline(b, l, ring(g.Center(), rx, ry), true)
	case geometry.KindBox:
		rx, ry := g.Radii()
		polyline(b, l, rect(g.Center(), rx, ry), true)
	case geometry.KindPolygon:
		polyline(b, l, g.Vertices(), true)
	case geometry.KindText, geometry.KindImage:
		w, h := g.PixelSize()
		polyline(b, l, rect(g.Center(), w/2, h/2), true)
	}
}

func polyline(b *brailleBuf, l mapLayout, pts []geometry.Point, closed bool) {
	if len(pts) == 0 {
		return
	}
	if closed {
		pts = append(pts, pts[0])
	}
	x0, y0 := l.toMicro(pts[0])
	b.setPixel(x0, y0)
	for _, p := range pts[1:] {
		x1, y1 := l.toMicro(p)
		b.drawLineMicro(x0, y0, x1, y1)
		x0, y0 = x1, y1
	}
}

func ring(c geometry.Point, rx, ry float64) []geometry.Point {
	pts := make([]geometry.Point, ringSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / ringSegments
		pts[i] = geometry.Pt(c.X+rx*math.Cos(a), c.Y+ry*math.Sin(a))
	}
	return pts
}

func rect(c geometry.Point, hw, hh float64) []geometry.Point {
	return []geometry.Point{
		geometry.Pt(c.X-hw, c.Y-hh),
		geometry.Pt(c.X+hw, c.Y-hh),
		geometry.Pt(c.X+hw, c.Y+hh),
		geometry.Pt(c.X-hw, c.Y+hh),
	}
}
