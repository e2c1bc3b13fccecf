// Package hittest finds the audible shape under a pointer position.
package hittest

import (
	"sort"

	"sonograph/internal/geometry"
	"sonograph/internal/scene"
)

// Result is the outcome of a hit test. Shape is nil when State is Outside.
type Result struct {
	Shape *scene.Shape
	State geometry.State
}

// Classify tests shapes from the top of the draw order down, ignoring
// shapes without a sound. The first shape containing the point wins
// outright. Otherwise the topmost shape whose fringe holds the point is
// returned as Near.
func Classify(c geometry.Classifier, x, y float64, shapes []*scene.Shape) Result {
	ordered := make([]*scene.Shape, 0, len(shapes))
	for _, s := range shapes {
		if s.HasSound() {
			ordered = append(ordered, s)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Order > ordered[j].Order })

	var near *scene.Shape
	for _, s := range ordered {
		switch c.Classify(s.Geometry, x, y) {
		case geometry.Inside:
			return Result{Shape: s, State: geometry.Inside}
		case geometry.Near:
			if near == nil {
				near = s
			}
		}
	}
	if near != nil {
		return Result{Shape: near, State: geometry.Near}
	}
	return Result{}
}
