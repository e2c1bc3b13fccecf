package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/font"
	_ "golang.org/x/image/webp"

	"sonograph/internal/audio"
	"sonograph/internal/geometry"
	"sonograph/internal/scene"
	"sonograph/internal/sound"
)

// shapeStyle is how a shape is painted. A nil color is not drawn.
type shapeStyle struct {
	fill    color.Color
	outline color.Color
	image   *ebiten.Image
}

// sceneBuilder attaches shapes to the display list and remembers how to
// draw them.
type sceneBuilder struct {
	list   *scene.List
	clips  *audio.Library
	face   font.Face
	styles map[string]shapeStyle
}

func newSceneBuilder(list *scene.List, clips *audio.Library, face font.Face) *sceneBuilder {
	return &sceneBuilder{list: list, clips: clips, face: face, styles: make(map[string]shapeStyle)}
}

func (b *sceneBuilder) add(g geometry.Geometry, snd *sound.Source, st shapeStyle) *scene.Shape {
	s := b.list.Attach(g, snd)
	b.styles[s.ID] = st
	return s
}

// remove detaches every shape the builder added.
func (b *sceneBuilder) remove() {
	for id := range b.styles {
		b.list.Detach(id)
	}
	clear(b.styles)
}

// speech returns the spoken label clip for text, played once. A missing
// clip leaves the shape silent.
func (b *sceneBuilder) speech(text string) *sound.Source {
	return b.clip(sound.ClipName(text), sound.PlayOnce)
}

func (b *sceneBuilder) clip(name string, loops int) *sound.Source {
	if b.clips == nil {
		slog.Warn("no clip library, shape stays silent", "clip", name)
		return nil
	}
	c, err := b.clips.Load(name)
	if err == nil {
		var src *sound.Source
		src, err = sound.FromClip(c, loops)
		if err == nil {
			return src
		}
	}
	slog.Warn("shape stays silent", "clip", name, "err", err)
	return nil
}

// parseSound reads a sound specifier: a number goes through
// sound.FromValue, anything else names a clip.
func (b *sceneBuilder) parseSound(s string) *sound.Source {
	if s == "" {
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		src, err := sound.FromValue(v)
		if err != nil {
			slog.Warn("shape stays silent", "sound", s, "err", err)
			return nil
		}
		return src
	}
	return b.clip(s, sound.PlayOnce)
}

// demoStyles paints the demo items by name.
var demoStyles = map[string]shapeStyle{
	"center":       {fill: color.Black},
	"blue circle":  {fill: color.RGBA{0, 0, 0xff, 0xff}, outline: outlineColor},
	"white circle": {fill: color.White, outline: outlineColor},
	"rectangle":    {fill: color.RGBA{0x80, 0, 0x80, 0xff}, outline: outlineColor},
	"oval":         {fill: color.RGBA{0, 0x80, 0, 0xff}, outline: outlineColor},
	"red line":     {outline: color.RGBA{0xff, 0, 0, 0xff}},
	"triangle":     {outline: outlineColor},
	"caption":      {fill: color.Black},
}

// buildDemo lays out the demo canvas and styles each item.
func (b *sceneBuilder) buildDemo() error {
	items, err := scene.BuildDemo(b.list, scene.Voices{
		Speech: b.speech,
		Clip:   func(name string) *sound.Source { return b.clip(name, sound.PlayOnce) },
	}, b.face)
	if err != nil {
		return err
	}
	for _, it := range items {
		st, ok := demoStyles[it.Name]
		if !ok {
			st = shapeStyle{outline: outlineColor}
		}
		b.styles[it.Shape.ID] = st
	}
	return nil
}

// addImage places the image at path on the canvas, anchored at anchor in
// the canvas' own coordinates, speaking its file name.
func (b *sceneBuilder) addImage(path string, anchor geometry.Point, snd *sound.Source) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding %q: %w", path, err)
	}
	bounds := img.Bounds()
	if bounds.Empty() {
		return errors.New("image has no pixels")
	}
	b.add(geometry.NewImage(anchor, float64(bounds.Dx()), float64(bounds.Dy())), snd,
		shapeStyle{image: ebiten.NewImageFromImage(img)})
	slog.Info("image added", "path", path, "format", format, "width", bounds.Dx(), "height", bounds.Dy())
	return nil
}
