package main

import (
	"image/color"
	"log/slog"
	"math"
	"math/rand/v2"

	"sonograph/internal/geometry"
)

// Trial locations and sizes in world units on the -4..4 canvas. Sizes are
// circle radii; rectangles get the same area.
var (
	trialLocations = []geometry.Point{{X: 0.5, Y: 0.5}, {X: -0.5, Y: -1}, {X: 1, Y: -0.5}, {X: 0, Y: 0}, {X: -1, Y: 1}}
	trialSizes     = []float64{1, 1.5, 2}
)

type trialShape struct {
	circle   bool
	location geometry.Point
	size     float64
}

func (t trialShape) String() string {
	if t.circle {
		return "circle"
	}
	return "rectangle"
}

// randomTrial picks a shape, location and size.
func randomTrial(rng *rand.Rand) trialShape {
	return trialShape{
		circle:   rng.IntN(2) == 0,
		location: trialLocations[rng.IntN(len(trialLocations))],
		size:     trialSizes[rng.IntN(len(trialSizes))],
	}
}

// geom returns the trial shape in world units. Rectangles are elongated
// along the axis pointing away from the nearer canvas edge.
func (t trialShape) geom() geometry.Geometry {
	if t.circle {
		return geometry.NewCircle(t.location, t.size)
	}
	side := math.Sqrt(math.Pi) * t.size
	hside, vside := side*trialEccentricity, side/trialEccentricity
	if math.Abs(t.location.X) > math.Abs(t.location.Y) {
		hside, vside = vside, hside
	}
	half := geometry.Pt(hside/2, vside/2)
	return geometry.NewBox(t.location.Sub(half), t.location.Add(half))
}

// generateTrial replaces the current trial shape with a new random one.
func (g *Game) generateTrial() {
	g.builder.remove()
	t := randomTrial(g.levelRand)
	snd := g.builder.parseSound(*trialSoundFlag)
	if snd == nil {
		slog.Warn("trial shape is silent", "sound", *trialSoundFlag)
	}
	g.builder.add(t.geom(), snd, shapeStyle{fill: color.RGBA{0x20, 0x20, 0x20, 0xff}})
	g.trial++
	slog.Info("trial", "n", g.trial, "shape", t, "x", t.location.X, "y", t.location.Y, "size", t.size, "sound", snd)
}
