// Package engine ties hit testing and mixing together: it turns each pointer
// sample into channel commands for the audio device.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"sonograph/internal/geometry"
	"sonograph/internal/hittest"
	"sonograph/internal/mixer"
	"sonograph/internal/scene"
	"sonograph/internal/sound"
	"sonograph/internal/synth"
)

var (
	ErrEmptyCanvas = errors.New("engine: canvas has no area")
	ErrClosed      = errors.New("engine: not open")
)

// Canvas is the surface the pointer moves over.
type Canvas interface {
	// Transform maps world to screen coordinates. Nil means identity.
	Transform() *geometry.Transform
	// Closed reports whether the canvas has been torn down.
	Closed() bool
}

// ShapeSource supplies the live display list, bottom first. It is read on
// every sample.
type ShapeSource interface {
	Snapshot() []*scene.Shape
}

// MotionEvent is one pointer sample in screen pixels.
type MotionEvent struct {
	X, Y          float64
	Width, Height int
}

// Config holds engine tunables.
type Config struct {
	SampleRate int
	// Fringe is the Near band in pixels. Zero selects geometry.DefaultFringe.
	Fringe float64
	Pitch  synth.Pitch
	Gains  mixer.Gains
	// Background static length and standard deviation.
	NoiseSeconds float64
	NoiseLevel   float64
	CacheLimit   int
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		SampleRate:   synth.DefaultSampleRate,
		Fringe:       geometry.DefaultFringe,
		Pitch:        synth.DefaultPitch(),
		Gains:        mixer.QuietGains(),
		NoiseSeconds: 3,
		NoiseLevel:   0.05,
		CacheLimit:   synth.DefaultCacheLimit,
	}
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger overrides the package logger for one engine.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithObserver registers a callback invoked with every frame, outside the
// engine lock.
func WithObserver(fn func(mixer.Frame)) Option {
	return func(e *Engine) { e.observer = fn }
}

// WithRand sets the random source for background static.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// Engine is the sonification facade. All methods are safe for concurrent
// use; samples are processed one at a time.
type Engine struct {
	mu       sync.Mutex
	cfg      Config
	shapes   ShapeSource
	canvas   Canvas
	mixer    *mixer.Mixer
	cache    *synth.Cache
	resolver *sound.Resolver
	log      *slog.Logger
	observer func(mixer.Frame)
	rng      *rand.Rand

	open bool
	last mixer.Frame
}

// New builds an engine. It does not touch the channels until Open.
func New(cfg Config, shapes ShapeSource, canvas Canvas, ch mixer.Channels, opts ...Option) (*Engine, error) {
	if shapes == nil {
		return nil, errors.New("engine: nil shape source")
	}
	if ch.Background == nil || ch.Item == nil || ch.Pointer == nil {
		return nil, errors.New("engine: all three channels are required")
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = synth.DefaultSampleRate
	}
	cache := synth.NewCache(cfg.SampleRate, cfg.CacheLimit)
	e := &Engine{
		cfg:      cfg,
		shapes:   shapes,
		canvas:   canvas,
		mixer:    mixer.New(ch, cfg.Gains),
		cache:    cache,
		resolver: sound.NewResolver(cache),
		log:      Logger(),
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Open builds the background static and starts the background channel.
// Opening an open engine does nothing.
func (e *Engine) Open() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.open {
		return nil
	}

	var bg *synth.Buffer
	if e.cfg.Gains.BackgroundEnabled && e.cfg.NoiseSeconds > 0 {
		var err error
		bg, err = synth.Noise(e.cfg.NoiseSeconds, e.cfg.NoiseLevel, e.cfg.SampleRate, e.rng)
		if err != nil {
			return fmt.Errorf("engine: background: %w", err)
		}
	}
	e.mixer.Open(bg)
	e.open = true
	e.last = mixer.Frame{}
	e.log.Info("sonification open", "rate", e.cfg.SampleRate, "fringe", e.cfg.Fringe, "background", bg != nil)
	return nil
}

// Motion processes one pointer sample. An error affects only this sample.
func (e *Engine) Motion(ev MotionEvent) (mixer.Frame, error) {
	e.mu.Lock()
	frame, err := e.motion(ev)
	observer := e.observer
	e.mu.Unlock()

	if err == nil && observer != nil {
		observer(frame)
	}
	return frame, err
}

func (e *Engine) motion(ev MotionEvent) (mixer.Frame, error) {
	if !e.open {
		return mixer.Frame{}, ErrClosed
	}
	if ev.Width <= 0 || ev.Height <= 0 {
		return e.last, fmt.Errorf("%w: %dx%d", ErrEmptyCanvas, ev.Width, ev.Height)
	}

	xProp := ev.X / float64(ev.Width)
	yProp := 1 - ev.Y/float64(ev.Height)

	hz := e.cfg.Pitch.Frequency(yProp)
	pointer, err := e.cache.Tone(hz)
	if err != nil {
		e.log.Warn("pointer tone", "hz", hz, "err", err)
		pointer = nil
	}

	c := geometry.Classifier{Transform: e.transform(), Fringe: e.cfg.Fringe}
	hit := hittest.Classify(c, ev.X, ev.Y, e.shapes.Snapshot())

	s := mixer.Sample{
		XProp:     xProp,
		YProp:     yProp,
		Pointer:   pointer,
		PointerHz: hz,
		State:     hit.State,
	}
	var resolveErr error
	if hit.Shape != nil {
		s.ShapeID = hit.Shape.ID
		s.Loops = hit.Shape.Sound.Loops()
		s.Item, resolveErr = e.resolver.Resolve(hit.Shape.Sound)
		if resolveErr != nil {
			e.log.Warn("shape sound", "shape", hit.Shape.ID, "sound", hit.Shape.Sound, "err", resolveErr)
			resolveErr = fmt.Errorf("engine: shape %s: %w", hit.Shape.ID, resolveErr)
		}
	}

	frame := e.mixer.Apply(s)
	if frame.State != e.last.State || frame.ShapeID != e.last.ShapeID {
		e.log.Debug("containment", "state", frame.State, "shape", frame.ShapeID, "x", ev.X, "y", ev.Y)
	}
	e.last = frame
	return frame, resolveErr
}

func (e *Engine) transform() *geometry.Transform {
	if e.canvas == nil || e.canvas.Closed() {
		return nil
	}
	return e.canvas.Transform()
}

// Enter resumes background audio when the pointer returns to the canvas.
func (e *Engine) Enter() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.open {
		return
	}
	e.mixer.Enter()
	e.log.Debug("pointer entered canvas")
}

// Leave stops all channels when the pointer leaves the canvas.
func (e *Engine) Leave() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.open {
		return
	}
	e.mixer.Leave()
	e.last.State = geometry.Outside
	e.last.ShapeID = ""
	e.log.Debug("pointer left canvas")
}

// Close stops all channels. The engine may be opened again.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.open {
		return
	}
	e.mixer.Close()
	e.open = false
	e.log.Info("sonification closed", "cached", e.cache.Len())
}

// Last returns the most recent frame.
func (e *Engine) Last() mixer.Frame {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.last
}

// Cache exposes the engine's buffer cache so callers can share synthesized
// tones.
func (e *Engine) Cache() *synth.Cache { return e.cache }
