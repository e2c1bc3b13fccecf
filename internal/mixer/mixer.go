// Package mixer decides what the three output channels play, and how loud,
// for every pointer sample.
//
// The background channel carries quiet static, the item channel the sound
// of the winning shape, and the pointer channel a tone whose pitch follows
// the pointer's height. Each sample is decided from scratch; the only state
// carried between samples is what each channel currently has loaded.
package mixer

import (
	"math"

	"sonograph/internal/geometry"
	"sonograph/internal/synth"
)

// LoopForever repeats a buffer until the channel is stopped.
const LoopForever = -1

// Channel is one independently controlled output stream.
type Channel interface {
	// Play replaces whatever the channel is playing with buf. loops follows
	// the sound loop policy: -1 forever, 0 once, N extra repeats.
	Play(buf *synth.Buffer, loops int)
	SetVolume(left, right float64)
	Stop()
}

// Channels is the set of channels a Mixer drives.
type Channels struct {
	Background Channel
	Item       Channel
	Pointer    Channel
}

// Sample is the input for one pointer motion sample.
type Sample struct {
	XProp, YProp float64
	// Pointer is the pointer tone buffer, PointerHz its pitch.
	Pointer   *synth.Buffer
	PointerHz float64
	// Item is the winning shape's sound; nil when State is Outside.
	Item    *synth.Buffer
	Loops   int
	State   geometry.State
	ShapeID string
}

// Frame is the mixer decision for one sample.
type Frame struct {
	XProp, YProp float64
	ShapeID      string
	State        geometry.State
	PointerHz    float64
}

// Mixer applies the channel policy. It is not safe for concurrent use.
type Mixer struct {
	ch    Channels
	gains Gains

	background *synth.Buffer
	item       *synth.Buffer
	pointer    *synth.Buffer
	inCanvas   bool
}

// New returns a Mixer driving ch with the given gains.
func New(ch Channels, gains Gains) *Mixer {
	return &Mixer{ch: ch, gains: gains}
}

// Open loads the background buffer and starts it looping, muted until the
// first sample sets its level. A nil buffer or disabled background leaves
// the channel idle.
func (m *Mixer) Open(background *synth.Buffer) {
	if !m.gains.BackgroundEnabled || background == nil {
		return
	}
	m.background = background
	m.inCanvas = true
	m.startBackground()
}

func (m *Mixer) startBackground() {
	if m.background == nil {
		return
	}
	g := m.gains.Outside.Background
	m.ch.Background.SetVolume(g, g)
	m.ch.Background.Play(m.background, LoopForever)
}

// Apply sets channel content and levels for one sample. Levels are set
// before a new buffer starts so it never plays at the previous sample's
// gains.
func (m *Mixer) Apply(s Sample) Frame {
	if !m.inCanvas {
		m.Enter()
	}
	x := clamp01(s.XProp)
	level := m.gains.For(s.State)

	m.ch.Pointer.SetVolume(pan(x, level.Pointer))
	if s.Pointer != nil && s.Pointer != m.pointer {
		m.ch.Pointer.Play(s.Pointer, LoopForever)
		m.pointer = s.Pointer
	}

	if m.background != nil {
		if m.gains.PanBackground {
			m.ch.Background.SetVolume(pan(x, level.Background))
		} else {
			m.ch.Background.SetVolume(level.Background, level.Background)
		}
	}

	switch {
	case s.State == geometry.Outside || s.Item == nil:
		m.stopItem()
	default:
		m.ch.Item.SetVolume(pan(x, level.Item))
		if s.Item != m.item {
			m.ch.Item.Play(s.Item, s.Loops)
			m.item = s.Item
		}
	}

	f := Frame{
		XProp:     x,
		YProp:     clamp01(s.YProp),
		State:     s.State,
		PointerHz: s.PointerHz,
	}
	if s.State != geometry.Outside {
		f.ShapeID = s.ShapeID
	}
	return f
}

func (m *Mixer) stopItem() {
	if m.item == nil {
		return
	}
	m.ch.Item.Stop()
	m.item = nil
}

// Enter resumes the background loop after the pointer returns to the
// canvas.
func (m *Mixer) Enter() {
	if m.inCanvas {
		return
	}
	m.inCanvas = true
	m.startBackground()
}

// Leave hard-stops every channel.
func (m *Mixer) Leave() {
	m.inCanvas = false
	m.ch.Background.Stop()
	m.ch.Pointer.Stop()
	m.ch.Item.Stop()
	m.pointer = nil
	m.item = nil
}

// Close stops every channel and forgets the background buffer.
func (m *Mixer) Close() {
	m.Leave()
	m.background = nil
}

// Loaded reports the buffers currently loaded on the item and pointer
// channels.
func (m *Mixer) Loaded() (item, pointer *synth.Buffer) {
	return m.item, m.pointer
}

func pan(x, gain float64) (left, right float64) {
	return (1 - x) * gain, x * gain
}

func clamp01(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	}
	return v
}

// silentChannel discards every command.
type silentChannel struct{}

func (silentChannel) Play(*synth.Buffer, int)    {}
func (silentChannel) SetVolume(float64, float64) {}
func (silentChannel) Stop()                      {}

// Silent returns channels that play nothing, for running without a device.
func Silent() Channels {
	return Channels{Background: silentChannel{}, Item: silentChannel{}, Pointer: silentChannel{}}
}
