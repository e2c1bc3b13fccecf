// Package audio plays mixer channels through the ebiten audio context and
// loads named clips from disk.
package audio

import (
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"sonograph/internal/engine"
	"sonograph/internal/mixer"
	"sonograph/internal/synth"
)

// PlayerBufferLatency keeps channel changes audible within a couple of
// frames of the pointer moving.
const PlayerBufferLatency = 60 * time.Millisecond

// Device owns the process audio context and the channels created on it.
type Device struct {
	ctx *audio.Context

	mu       sync.Mutex
	channels []*Channel
}

// NewDevice returns a device on the process audio context, creating it at
// sampleRate if none exists yet. ebiten allows one context per process, so
// an existing context keeps its own rate.
func NewDevice(sampleRate int) *Device {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	engine.Logger().Info("audio device", "rate", ctx.SampleRate())
	return &Device{ctx: ctx}
}

// SampleRate returns the context rate.
func (d *Device) SampleRate() int { return d.ctx.SampleRate() }

// NewChannel creates an idle channel.
func (d *Device) NewChannel(name string) *Channel {
	c := &Channel{name: name, ctx: d.ctx}
	d.mu.Lock()
	d.channels = append(d.channels, c)
	d.mu.Unlock()
	return c
}

// Channels creates the three channels a mixer drives.
func (d *Device) Channels() mixer.Channels {
	return mixer.Channels{
		Background: d.NewChannel("background"),
		Item:       d.NewChannel("item"),
		Pointer:    d.NewChannel("pointer"),
	}
}

// Close stops every channel. The context itself lives for the process.
func (d *Device) Close() {
	d.mu.Lock()
	channels := d.channels
	d.channels = nil
	d.mu.Unlock()
	for _, c := range channels {
		c.Stop()
	}
}

// Channel implements mixer.Channel on an ebiten player.
type Channel struct {
	name string
	ctx  *audio.Context

	mu          sync.Mutex
	player      *audio.Player
	stream      *loopStream
	left, right float64
}

// Play replaces the current sound with buf.
func (c *Channel) Play(buf *synth.Buffer, loops int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
	stream := newLoopStream(buf, loops, c.ctx.SampleRate())
	stream.SetGains(c.left, c.right)
	player, err := c.ctx.NewPlayer(stream)
	if err != nil {
		engine.Logger().Warn("audio player creation failed", "channel", c.name, "err", err)
		return
	}
	player.SetBufferSize(PlayerBufferLatency)
	player.Play()
	c.player = player
	c.stream = stream
}

// SetVolume sets the left and right gains, clamped to [0, 1]. The gains
// carry over to later Play calls.
func (c *Channel) SetVolume(left, right float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.left, c.right = left, right
	if c.stream != nil {
		c.stream.SetGains(left, right)
	}
}

// Stop halts playback immediately.
func (c *Channel) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

func (c *Channel) stopLocked() {
	if c.player == nil {
		return
	}
	c.player.Pause()
	if err := c.player.Close(); err != nil {
		engine.Logger().Warn("audio player close failed", "channel", c.name, "err", err)
	}
	c.player = nil
	c.stream = nil
}

// Playing reports whether the channel's player is still producing sound.
func (c *Channel) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.player != nil && c.player.IsPlaying()
}
