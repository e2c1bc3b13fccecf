package geometry

import (
	"errors"
	"testing"
)

func TestCircleScenario(t *testing.T) {
	c := Classifier{Fringe: 30}
	circle := NewCircle(Pt(300, 300), 50)

	tests := []struct {
		name string
		x, y float64
		want State
	}{
		{"center", 300, 300, Inside},
		{"inside rim", 345, 300, Inside},
		{"on rim", 350, 300, Inside},
		{"fringe", 355, 300, Near},
		{"far", 400, 300, Outside},
		{"diagonal near", 300 + 55/1.4142135623730951, 300 + 55/1.4142135623730951, Near},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(circle, tt.x, tt.y); got != tt.want {
				t.Errorf("Classify(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestFringeBoundaryMonotonic(t *testing.T) {
	const eps = 1e-6
	c := Classifier{}
	shapes := []struct {
		name   string
		g      Geometry
		edgeAt float64 // x of the right-hand boundary along y=200
	}{
		{"circle", NewCircle(Pt(200, 200), 40), 240},
		{"box", NewBox(Pt(150, 150), Pt(250, 250)), 250},
		{"point", NewPoint(Pt(200, 200)), 200},
		{"ellipse", NewEllipse(Pt(120, 170), Pt(280, 230)), 280},
	}
	for _, s := range shapes {
		t.Run(s.name, func(t *testing.T) {
			if got := c.Classify(s.g, s.edgeAt+DefaultFringe-eps, 200); got != Near {
				t.Errorf("just inside fringe: got %v, want near", got)
			}
			if got := c.Classify(s.g, s.edgeAt+DefaultFringe+eps, 200); got != Outside {
				t.Errorf("just outside fringe: got %v, want outside", got)
			}
			prev := Inside
			for x := 200.0; x <= s.edgeAt+2*DefaultFringe; x += 0.5 {
				got := c.Classify(s.g, x, 200)
				if got > prev {
					t.Fatalf("state rose from %v to %v at x=%v", prev, got, x)
				}
				prev = got
			}
		})
	}
}

func TestBoxIsChebyshev(t *testing.T) {
	c := Classifier{Fringe: 30}
	box := NewBox(Pt(100, 100), Pt(200, 200))

	// (225, 225) is 35px from the corner in Euclidean terms but within the
	// square fringe band on both axes.
	if got := c.Classify(box, 225, 225); got != Near {
		t.Errorf("corner fringe: got %v, want near", got)
	}
	if got := c.Classify(box, 150, 231); got != Outside {
		t.Errorf("below fringe: got %v, want outside", got)
	}
	if got := c.Classify(box, 100, 100); got != Inside {
		t.Errorf("corner: got %v, want inside", got)
	}
}

func TestEllipseRefinement(t *testing.T) {
	c := Classifier{Fringe: 30}
	e := NewEllipse(Pt(0, 0), Pt(200, 100))

	tests := []struct {
		name string
		x, y float64
		want State
	}{
		{"center", 100, 50, Inside},
		{"bbox corner demoted", 195, 95, Near},
		{"on axis", 199, 50, Inside},
		{"box fringe", 100, 120, Near},
		{"outside", 100, 200, Outside},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(e, tt.x, tt.y); got != tt.want {
				t.Errorf("Classify(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestSegment(t *testing.T) {
	c := Classifier{Fringe: 30}
	seg := NewSegment(Pt(0, 0), Pt(100, 0))

	tests := []struct {
		name string
		x, y float64
		want State
	}{
		{"on line", 50, 0, Inside},
		{"endpoint", 100, 0, Inside},
		{"above", 50, 10, Near},
		{"fringe is exclusive", 50, 30, Outside},
		{"past end", 129, 0, Near},
		{"past end outside", 130, 0, Outside},
		{"behind start", -20, 0, Near},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(seg, tt.x, tt.y); got != tt.want {
				t.Errorf("Classify(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestDegenerateSegment(t *testing.T) {
	c := Classifier{Fringe: 30}
	seg := NewSegment(Pt(10, 10), Pt(10, 10))
	if got := c.Classify(seg, 10, 10); got != Inside {
		t.Errorf("got %v, want inside", got)
	}
	if got := c.Classify(seg, 10, 30); got != Near {
		t.Errorf("got %v, want near", got)
	}
}

func TestPolygon(t *testing.T) {
	c := Classifier{Fringe: 30}
	square, err := NewPolygon(Pt(100, 100), Pt(200, 100), Pt(200, 200), Pt(100, 200))
	if err != nil {
		t.Fatal(err)
	}
	lShape, err := NewPolygon(Pt(0, 0), Pt(100, 0), Pt(100, 40), Pt(40, 40), Pt(40, 100), Pt(0, 100))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		g    Geometry
		x, y float64
		want State
	}{
		{"square center", square, 150, 150, Inside},
		{"square below", square, 150, 220, Near},
		{"square far", square, 150, 250, Outside},
		{"square left", square, 80, 150, Near},
		{"l arm", lShape, 80, 20, Inside},
		{"l leg", lShape, 20, 80, Inside},
		{"l notch", lShape, 80, 80, Outside},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.g, tt.x, tt.y); got != tt.want {
				t.Errorf("Classify(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	wide := Classifier{Fringe: 50}
	if got := wide.Classify(lShape, 80, 80); got != Near {
		t.Errorf("notch with wide fringe: got %v, want near", got)
	}
}

func TestPolygonTooFewVertices(t *testing.T) {
	_, err := NewPolygon(Pt(0, 0), Pt(1, 1))
	if !errors.Is(err, ErrTooFewVertices) {
		t.Fatalf("err = %v, want ErrTooFewVertices", err)
	}
}

func TestPolygonUsesScreenSpace(t *testing.T) {
	tr, err := NewTransform(700, 700, -4, -4, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	tri, err := NewPolygon(Pt(-1, -1), Pt(1, -1), Pt(0, 1))
	if err != nil {
		t.Fatal(err)
	}
	c := Classifier{Transform: tr}
	center := tr.ToScreen(Pt(0, -0.5))
	if got := c.Classify(tri, center.X, center.Y); got != Inside {
		t.Errorf("got %v, want inside", got)
	}
	far := tr.ToScreen(Pt(3, 3))
	if got := c.Classify(tri, far.X, far.Y); got != Outside {
		t.Errorf("got %v, want outside", got)
	}
}

func TestAnisotropicBox(t *testing.T) {
	tr, err := NewTransform(100, 200, 0, 0, 10, 10)
	if err != nil {
		t.Fatal(err)
	}
	c := Classifier{Transform: tr, Fringe: 5}
	box := NewBox(Pt(4, 4), Pt(6, 6))
	center := tr.ToScreen(Pt(5, 5))
	halfW, halfH := tr.ScaleX(1), tr.ScaleY(1)

	if got := c.Classify(box, center.X+halfW-0.1, center.Y+halfH-0.1); got != Inside {
		t.Errorf("inside corner: got %v", got)
	}
	if got := c.Classify(box, center.X, center.Y+halfH+4); got != Near {
		t.Errorf("below: got %v, want near", got)
	}
	if got := c.Classify(box, center.X+halfW+6, center.Y); got != Outside {
		t.Errorf("right: got %v, want outside", got)
	}
}

func TestTextAndImageFootprints(t *testing.T) {
	c := Classifier{Fringe: 30}
	text := NewText(Pt(100, 100), "abcd", nil)
	if w, h := text.PixelSize(); w != 28 || h != 13 {
		t.Fatalf("text size = %vx%v, want 28x13", w, h)
	}
	if got := c.Classify(text, 113, 100); got != Inside {
		t.Errorf("text inside: got %v", got)
	}
	if got := c.Classify(text, 115, 100); got != Near {
		t.Errorf("text near: got %v", got)
	}
	if got := c.Classify(text, 145, 100); got != Outside {
		t.Errorf("text outside: got %v", got)
	}

	// Pixel footprints are not rescaled by the world transform.
	tr, err := NewTransform(700, 700, -4, -4, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	img := NewImage(Pt(0, 0), 40, 20)
	scaled := Classifier{Transform: tr, Fringe: 30}
	center := tr.ToScreen(Pt(0, 0))
	if got := scaled.Classify(img, center.X+19, center.Y+9); got != Inside {
		t.Errorf("image inside: got %v", got)
	}
	if got := scaled.Classify(img, center.X+51, center.Y); got != Outside {
		t.Errorf("image outside: got %v", got)
	}
}

func TestNegativeFringeClamps(t *testing.T) {
	c := Classifier{Fringe: -5}
	circle := NewCircle(Pt(0, 0), 10)
	if got := c.Classify(circle, 10.5, 0); got != Outside {
		t.Errorf("got %v, want outside with no fringe", got)
	}
}

func TestDistanceToSegment(t *testing.T) {
	tests := []struct {
		name    string
		p, a, b Point
		want    float64
	}{
		{"perpendicular", Pt(5, 3), Pt(0, 0), Pt(10, 0), 3},
		{"before start", Pt(-3, 4), Pt(0, 0), Pt(10, 0), 5},
		{"after end", Pt(13, 4), Pt(0, 0), Pt(10, 0), 5},
		{"zero length", Pt(3, 4), Pt(0, 0), Pt(0, 0), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DistanceToSegment(tt.p, tt.a, tt.b); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
