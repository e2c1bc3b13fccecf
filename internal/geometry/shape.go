package geometry

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// ErrTooFewVertices is returned when a polygon has fewer than three vertices.
var ErrTooFewVertices = errors.New("geometry: polygon needs at least 3 vertices")

// Kind identifies a geometry variant.
type Kind uint8

const (
	KindPoint Kind = iota
	KindSegment
	KindCircle
	KindBox
	KindEllipse
	KindPolygon
	KindText
	KindImage

	kindCount
)

var kindNames = [kindCount]string{
	KindPoint:   "point",
	KindSegment: "segment",
	KindCircle:  "circle",
	KindBox:     "box",
	KindEllipse: "ellipse",
	KindPolygon: "polygon",
	KindText:    "text",
	KindImage:   "image",
}

// String returns the lower-case variant name.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Geometry is an immutable shape outline.
//
// Positions are in world space. Text and image footprints are measured in
// screen pixels because neither is resized by the world transform.
type Geometry struct {
	kind   Kind
	pts    []Point
	radius float64
	w, h   float64
	label  string
}

// NewPoint returns a zero-size point.
func NewPoint(p Point) Geometry {
	return Geometry{kind: KindPoint, pts: []Point{p}}
}

// NewSegment returns the line segment from a to b.
func NewSegment(a, b Point) Geometry {
	return Geometry{kind: KindSegment, pts: []Point{a, b}}
}

// NewCircle returns a circle. The radius is a world-space length.
func NewCircle(center Point, radius float64) Geometry {
	return Geometry{kind: KindCircle, pts: []Point{center}, radius: math.Abs(radius)}
}

// NewBox returns the axis-aligned rectangle spanned by two opposite corners.
func NewBox(p1, p2 Point) Geometry {
	return Geometry{kind: KindBox, pts: []Point{p1, p2}}
}

// NewEllipse returns the ellipse inscribed in the box spanned by p1 and p2.
func NewEllipse(p1, p2 Point) Geometry {
	return Geometry{kind: KindEllipse, pts: []Point{p1, p2}}
}

// NewPolygon returns a closed polygon. The vertex list is open: the last
// vertex connects back to the first implicitly.
func NewPolygon(vertices ...Point) (Geometry, error) {
	if len(vertices) < 3 {
		return Geometry{}, fmt.Errorf("%w: got %d", ErrTooFewVertices, len(vertices))
	}
	pts := make([]Point, len(vertices))
	copy(pts, vertices)
	return Geometry{kind: KindPolygon, pts: pts}, nil
}

// NewText returns the footprint of a text label centred on anchor. The label
// is measured with face; a nil face uses basicfont.Face7x13.
func NewText(anchor Point, label string, face font.Face) Geometry {
	if face == nil {
		face = basicfont.Face7x13
	}
	var w, h float64
	if label != "" {
		w = float64(font.MeasureString(face, label).Ceil())
		h = float64(face.Metrics().Height.Ceil())
	}
	return Geometry{kind: KindText, pts: []Point{anchor}, w: w, h: h, label: label}
}

// NewImage returns the footprint of a width x height pixel image centred on
// anchor.
func NewImage(anchor Point, width, height float64) Geometry {
	return Geometry{kind: KindImage, pts: []Point{anchor}, w: math.Abs(width), h: math.Abs(height)}
}

// Kind returns the variant tag.
func (g Geometry) Kind() Kind { return g.kind }

// Vertices returns a copy of the defining points: the point itself, segment
// endpoints, box or ellipse corners, polygon vertices, or the anchor of a
// text or image.
func (g Geometry) Vertices() []Point {
	out := make([]Point, len(g.pts))
	copy(out, g.pts)
	return out
}

// Center returns the world-space centre of the shape.
func (g Geometry) Center() Point {
	switch len(g.pts) {
	case 0:
		return Point{}
	case 1:
		return g.pts[0]
	case 2:
		return g.pts[0].Midpoint(g.pts[1])
	}
	var c Point
	for _, p := range g.pts {
		c = c.Add(p)
	}
	return c.Mul(1 / float64(len(g.pts)))
}

// Bounds returns the world-space axis-aligned box around the defining
// points, widened by the radius for a circle. Text and image footprints are
// sized in screen pixels, so their bounds collapse to the anchor.
func (g Geometry) Bounds() (lo, hi Point) {
	if len(g.pts) == 0 {
		return Point{}, Point{}
	}
	lo, hi = g.pts[0], g.pts[0]
	for _, p := range g.pts[1:] {
		lo = Pt(math.Min(lo.X, p.X), math.Min(lo.Y, p.Y))
		hi = Pt(math.Max(hi.X, p.X), math.Max(hi.Y, p.Y))
	}
	r := Pt(g.radius, g.radius)
	return lo.Sub(r), hi.Add(r)
}

// Radius returns the world-space radius of a circle, zero otherwise.
func (g Geometry) Radius() float64 { return g.radius }

// Radii returns the world-space half extents of a box or ellipse.
func (g Geometry) Radii() (rx, ry float64) {
	if len(g.pts) != 2 || (g.kind != KindBox && g.kind != KindEllipse) {
		return 0, 0
	}
	return math.Abs(g.pts[0].X-g.pts[1].X) / 2, math.Abs(g.pts[0].Y-g.pts[1].Y) / 2
}

// PixelSize returns the screen-space extent of a text or image footprint.
func (g Geometry) PixelSize() (w, h float64) { return g.w, g.h }

// Label returns the text of a text shape.
func (g Geometry) Label() string { return g.label }
