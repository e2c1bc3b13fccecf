package scene

import (
	"golang.org/x/image/font"

	"sonograph/internal/geometry"
	"sonograph/internal/sound"
)

// DemoSize is the side of the square demo canvas in pixels.
const DemoSize = 600

// DemoCaption is the text drawn and spoken at the bottom of the demo canvas.
const DemoCaption = "Move the mouse to hear the objects. Press Esc to exit."

// Voices supplies clip sounds for the demo. Either function may return nil,
// leaving that shape silent.
type Voices struct {
	// Speech returns the spoken clip for a label.
	Speech func(label string) *sound.Source
	// Clip returns a named instrument clip.
	Clip func(name string) *sound.Source
}

func (v Voices) speech(label string) *sound.Source {
	if v.Speech == nil {
		return nil
	}
	return v.Speech(label)
}

func (v Voices) clip(name string) *sound.Source {
	if v.Clip == nil {
		return nil
	}
	return v.Clip(name)
}

// DemoItem is a named shape of the demo scene.
type DemoItem struct {
	Name  string
	Shape *Shape
}

// BuildDemo attaches the demo layout to l in screen pixels, bottom first:
// a spoken centre point, two spoken circles, a 622.25 Hz rectangle, a horn
// oval, a spoken line, an 880 Hz triangle and a spoken caption.
func BuildDemo(l *List, v Voices, face font.Face) ([]DemoItem, error) {
	center := geometry.Pt(300, 300)
	p1 := geometry.Pt(200, 200)
	p2 := geometry.Pt(400, 200)
	p3 := geometry.Pt(575, 450)
	p5 := geometry.Pt(150, 500)

	rectTone, err := sound.FromTone(622.25)
	if err != nil {
		return nil, err
	}
	triTone, err := sound.FromTone(880)
	if err != nil {
		return nil, err
	}
	triangle, err := geometry.NewPolygon(p1, center, p3)
	if err != nil {
		return nil, err
	}

	layout := []struct {
		name string
		geo  geometry.Geometry
		snd  *sound.Source
	}{
		{"center", geometry.NewPoint(center), v.speech("center")},
		{"blue circle", geometry.NewCircle(p2, 75), v.speech("Blue circle")},
		{"white circle", geometry.NewCircle(p2, 25), v.speech("This circle is not blue.")},
		{"rectangle", geometry.NewBox(center, p2), rectTone},
		{"oval", geometry.NewEllipse(center, p3), v.clip("C5-Horn")},
		{"red line", geometry.NewSegment(p5, center), v.speech("This red line is way too big.")},
		{"triangle", triangle, triTone},
		{"caption", geometry.NewText(geometry.Pt(300, 550), DemoCaption, face), v.speech(DemoCaption)},
	}
	items := make([]DemoItem, 0, len(layout))
	for _, it := range layout {
		items = append(items, DemoItem{Name: it.name, Shape: l.Attach(it.geo, it.snd)})
	}
	return items, nil
}
