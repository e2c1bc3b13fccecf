package main

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"sonograph/internal/geometry"
	"sonograph/internal/scene"
)

var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// Draw paints the display list bottom first, outlines the winning shape and
// marks the pointer.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	t := g.canvas.Transform()

	for _, s := range g.list.Snapshot() {
		st, ok := g.builder.styles[s.ID]
		if !ok {
			continue
		}
		g.drawShape(screen, t, s, st, outlineWidth)
		if s.ID == g.frame.ShapeID && g.inCanvas {
			hl := nearColor
			if g.frame.State == geometry.Inside {
				hl = insideColor
			}
			g.drawShape(screen, t, s, shapeStyle{outline: hl}, highlightWidth)
		}
	}

	if g.keyboard || g.autoWalk {
		vector.DrawFilledCircle(screen, float32(g.px), float32(g.py), pointMarkerRadius, pointerColor, true)
	}

	if *debugFlag {
		tps := ebiten.ActualTPS()
		if tps < 0 {
			tps = 0
		}
		id := g.frame.ShapeID
		if len(id) > 8 {
			id = id[:8]
		}
		msg := fmt.Sprintf("TPS: %.1f\nPointer: %.0f,%.0f (%.2f, %.2f)\nState: %v %s\nPitch: %.1f Hz\nShapes: %d",
			tps, g.px, g.py, g.frame.XProp, g.frame.YProp, g.frame.State, id, g.frame.PointerHz, g.list.Len())
		if g.trialMode {
			msg += fmt.Sprintf("\nTrial: %d (space for next)", g.trial)
		}
		ebitenutil.DebugPrint(screen, msg)
	}
}

// drawShape paints one shape: a fill when the style has one, then an
// outline of the given width.
func (g *Game) drawShape(screen *ebiten.Image, t *geometry.Transform, s *scene.Shape, st shapeStyle, width float32) {
	geo := s.Geometry

	switch geo.Kind() {
	case geometry.KindPoint:
		p := t.ToScreen(geo.Center())
		if st.fill != nil {
			vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), pointMarkerRadius, st.fill, true)
		}
		if st.outline != nil {
			vector.StrokeCircle(screen, float32(p.X), float32(p.Y), pointMarkerRadius+2, width, st.outline, true)
		}

	case geometry.KindSegment:
		v := geo.Vertices()
		a, b := t.ToScreen(v[0]), t.ToScreen(v[1])
		if st.outline != nil {
			vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, st.outline, true)
		}

	case geometry.KindCircle:
		c := t.ToScreen(geo.Center())
		r := float32(t.ScaleX(geo.Radius()))
		if st.fill != nil {
			vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), r, st.fill, true)
		}
		if st.outline != nil {
			vector.StrokeCircle(screen, float32(c.X), float32(c.Y), r, width, st.outline, true)
		}

	case geometry.KindBox:
		c := t.ToScreen(geo.Center())
		rx, ry := geo.Radii()
		hw, hh := t.ScaleX(rx), t.ScaleY(ry)
		x, y := float32(c.X-hw), float32(c.Y-hh)
		if st.fill != nil {
			vector.DrawFilledRect(screen, x, y, float32(2*hw), float32(2*hh), st.fill, true)
		}
		if st.outline != nil {
			vector.StrokeRect(screen, x, y, float32(2*hw), float32(2*hh), width, st.outline, true)
		}

	case geometry.KindEllipse:
		c := t.ToScreen(geo.Center())
		rx, ry := geo.Radii()
		sx, sy := t.ScaleX(rx), t.ScaleY(ry)
		pts := make([]geometry.Point, ellipseSegments)
		for i := range pts {
			a := 2 * math.Pi * float64(i) / ellipseSegments
			pts[i] = geometry.Pt(c.X+sx*math.Cos(a), c.Y+sy*math.Sin(a))
		}
		drawPath(screen, pts, st, width)

	case geometry.KindPolygon:
		v := geo.Vertices()
		for i := range v {
			v[i] = t.ToScreen(v[i])
		}
		drawPath(screen, v, st, width)

	case geometry.KindText:
		c := t.ToScreen(geo.Center())
		if st.fill != nil {
			op := &text.DrawOptions{}
			op.GeoM.Translate(c.X, c.Y)
			op.ColorScale.ScaleWithColor(st.fill)
			op.PrimaryAlign = text.AlignCenter
			op.SecondaryAlign = text.AlignCenter
			text.Draw(screen, geo.Label(), g.face, op)
		}
		if st.outline != nil {
			w, h := geo.PixelSize()
			vector.StrokeRect(screen, float32(c.X-w/2), float32(c.Y-h/2), float32(w), float32(h), width, st.outline, true)
		}

	case geometry.KindImage:
		c := t.ToScreen(geo.Center())
		w, h := geo.PixelSize()
		if st.image != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(c.X-w/2, c.Y-h/2)
			screen.DrawImage(st.image, op)
		}
		if st.outline != nil {
			vector.StrokeRect(screen, float32(c.X-w/2), float32(c.Y-h/2), float32(w), float32(h), width, st.outline, true)
		}
	}
}

// drawPath fills and strokes a closed screen-space path.
func drawPath(screen *ebiten.Image, pts []geometry.Point, st shapeStyle, width float32) {
	if len(pts) < 2 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	if st.fill != nil {
		vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
		paintVertices(vs, st.fill)
		screen.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true, FillRule: ebiten.FillRuleNonZero})
	}
	if st.outline != nil {
		vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: width, LineJoin: vector.LineJoinRound})
		paintVertices(vs, st.outline)
		screen.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
	}
}

func paintVertices(vs []ebiten.Vertex, clr color.Color) {
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
}
