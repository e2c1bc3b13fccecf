package geometry

import (
	"errors"
	"math"
	"testing"
)

func TestTransformCorners(t *testing.T) {
	tr, err := NewTransform(700, 700, -4, -4, 4, 4)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		world Point
		want  Point
	}{
		{"top left", Pt(-4, 4), Pt(0, 0)},
		{"bottom right", Pt(4, -4), Pt(699, 699)},
		{"center", Pt(0, 0), Pt(349.5, 349.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tr.ToScreen(tt.world)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("ToScreen(%v) = %v, want %v", tt.world, got, tt.want)
			}
			back := tr.ToWorld(got)
			if math.Abs(back.X-tt.world.X) > 1e-9 || math.Abs(back.Y-tt.world.Y) > 1e-9 {
				t.Errorf("ToWorld(%v) = %v, want %v", got, back, tt.world)
			}
		})
	}
}

func TestTransformScaleLength(t *testing.T) {
	tr, err := NewTransform(101, 51, 0, 0, 10, 10)
	if err != nil {
		t.Fatal(err)
	}
	if got := tr.ScaleX(1); math.Abs(got-10) > 1e-9 {
		t.Errorf("ScaleX(1) = %v, want 10", got)
	}
	if got := tr.ScaleY(1); math.Abs(got-5) > 1e-9 {
		t.Errorf("ScaleY(1) = %v, want 5", got)
	}
	if got := tr.ScaleX(-2); math.Abs(got-20) > 1e-9 {
		t.Errorf("ScaleX(-2) = %v, want 20", got)
	}
}

func TestNilTransformIsIdentity(t *testing.T) {
	var tr *Transform
	p := Pt(12.5, -3)
	if got := tr.ToScreen(p); got != p {
		t.Errorf("ToScreen = %v, want %v", got, p)
	}
	if got := tr.ToWorld(p); got != p {
		t.Errorf("ToWorld = %v, want %v", got, p)
	}
	if got := tr.ScaleX(7); got != 7 {
		t.Errorf("ScaleX = %v, want 7", got)
	}
	if got := tr.ScaleY(7); got != 7 {
		t.Errorf("ScaleY = %v, want 7", got)
	}
}

func TestNewTransformRejectsDegenerate(t *testing.T) {
	tests := []struct {
		name                   string
		w, h                   int
		xLow, yLow, xHi, yHigh float64
	}{
		{"flat world", 100, 100, 0, 0, 0, 10},
		{"tiny canvas", 1, 100, 0, 0, 10, 10},
		{"nan", 100, 100, 0, 0, math.NaN(), 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTransform(tt.w, tt.h, tt.xLow, tt.yLow, tt.xHi, tt.yHigh)
			if !errors.Is(err, ErrDegenerateTransform) {
				t.Errorf("err = %v, want ErrDegenerateTransform", err)
			}
		})
	}
}
