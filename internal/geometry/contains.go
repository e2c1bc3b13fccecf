package geometry

import "math"

// State is the relationship of a screen point to a shape.
type State int

const (
	Outside State = iota
	Near
	Inside
)

func (s State) String() string {
	switch s {
	case Outside:
		return "outside"
	case Near:
		return "near"
	case Inside:
		return "inside"
	}
	return "unknown"
}

// DefaultFringe is the width in pixels of the band around a shape's boundary
// that reports Near instead of Outside.
const DefaultFringe = 30.0

// Classifier tests screen points against world-space geometry.
//
// All distances are compared in screen space: only there is the fringe the
// same width along both axes.
type Classifier struct {
	// Transform maps world to screen. Nil means identity.
	Transform *Transform
	// Fringe is the Near band width in pixels. Zero selects DefaultFringe.
	Fringe float64
}

type containsFunc func(c *Classifier, g *Geometry, q Point) State

var containers = [kindCount]containsFunc{
	KindPoint:   containsPoint,
	KindSegment: containsSegment,
	KindCircle:  containsCircle,
	KindBox:     containsBox,
	KindEllipse: containsEllipse,
	KindPolygon: containsPolygon,
	KindText:    containsPixelBox,
	KindImage:   containsPixelBox,
}

// Classify reports whether the screen point (x, y) is inside, near or
// outside g.
func (c Classifier) Classify(g Geometry, x, y float64) State {
	if g.kind >= kindCount || len(g.pts) == 0 {
		return Outside
	}
	return containers[g.kind](&c, &g, Point{X: x, Y: y})
}

func (c *Classifier) fringe() float64 {
	switch {
	case c.Fringe == 0:
		return DefaultFringe
	case c.Fringe < 0:
		return 0
	}
	return c.Fringe
}

// boxState is a Chebyshev test around a screen-space centre. It treats the
// fringe as a square band, which is uniform only under isotropic scaling.
func (c *Classifier) boxState(center Point, halfW, halfH float64, q Point) State {
	dx := math.Abs(center.X - q.X)
	dy := math.Abs(center.Y - q.Y)
	f := c.fringe()
	switch {
	case dx <= halfW && dy <= halfH:
		return Inside
	case dx <= halfW+f && dy <= halfH+f:
		return Near
	}
	return Outside
}

func containsPoint(c *Classifier, g *Geometry, q Point) State {
	return c.boxState(c.Transform.ToScreen(g.pts[0]), 0, 0, q)
}

func containsBox(c *Classifier, g *Geometry, q Point) State {
	center := c.Transform.ToScreen(g.Center())
	rx, ry := g.Radii()
	return c.boxState(center, c.Transform.ScaleX(rx), c.Transform.ScaleY(ry), q)
}

func containsPixelBox(c *Classifier, g *Geometry, q Point) State {
	return c.boxState(c.Transform.ToScreen(g.pts[0]), g.w/2, g.h/2, q)
}

// containsCircle scales the radius along X only; a circle under anisotropic
// scaling is not drawn round either.
func containsCircle(c *Classifier, g *Geometry, q Point) State {
	center := c.Transform.ToScreen(g.pts[0])
	outside := center.Distance(q) - c.Transform.ScaleX(g.radius)
	switch {
	case outside <= 0:
		return Inside
	case outside <= c.fringe():
		return Near
	}
	return Outside
}

// containsEllipse refines an Inside from the bounding-box test. Near and
// Outside from the box are returned unchanged, so the fringe follows the box
// rather than the curve.
func containsEllipse(c *Classifier, g *Geometry, q Point) State {
	state := containsBox(c, g, q)
	if state != Inside {
		return state
	}
	rx, ry := g.Radii()
	sx, sy := c.Transform.ScaleX(rx), c.Transform.ScaleY(ry)
	if sx == 0 || sy == 0 {
		return state
	}
	center := c.Transform.ToScreen(g.Center())
	nx := (q.X - center.X) / sx
	ny := (q.Y - center.Y) / sy
	if nx*nx+ny*ny > 1 {
		return Near
	}
	return Inside
}

func containsSegment(c *Classifier, g *Geometry, q Point) State {
	a := c.Transform.ToScreen(g.pts[0])
	b := c.Transform.ToScreen(g.pts[1])
	d := DistanceToSegment(q, a, b)
	switch {
	case d == 0:
		return Inside
	case d < c.fringe():
		return Near
	}
	return Outside
}

// containsPolygon casts a horizontal ray towards +X. Edges count only when
// they strictly straddle the ray, so a ray through a vertex or along a
// horizontal edge may miscount; collinear, duplicate or self-intersecting
// vertices give best-effort parity.
func containsPolygon(c *Classifier, g *Geometry, q Point) State {
	n := len(g.pts)
	screen := make([]Point, n)
	for i, p := range g.pts {
		screen[i] = c.Transform.ToScreen(p)
	}

	crossings := 0
	for i := 0; i < n; i++ {
		start := screen[i]
		end := screen[(i+1)%n]
		if (start.Y-q.Y)*(end.Y-q.Y) >= 0 {
			continue
		}
		xCross := start.X + (q.Y-start.Y)*(end.X-start.X)/(end.Y-start.Y)
		if xCross >= q.X {
			crossings++
		}
	}
	if crossings%2 == 1 {
		return Inside
	}

	minDist := math.Inf(1)
	for i := 0; i < n; i++ {
		minDist = math.Min(minDist, DistanceToSegment(q, screen[i], screen[(i+1)%n]))
	}
	if minDist < c.fringe() {
		return Near
	}
	return Outside
}

// DistanceToSegment returns the distance from p to the segment a-b.
func DistanceToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	length := ab.Length()
	if length == 0 {
		return p.Distance(a)
	}
	if p.Sub(a).Dot(ab) < 0 {
		return p.Distance(a)
	}
	if p.Sub(b).Dot(a.Sub(b)) < 0 {
		return p.Distance(b)
	}
	return math.Abs(ab.Cross(p.Sub(a))) / length
}
