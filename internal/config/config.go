package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"sonograph/internal/engine"
	"sonograph/internal/mixer"
	"sonograph/internal/synth"
)

// Prefix is prepended to every environment variable, e.g. SONIFY_FRINGE.
const Prefix = "SONIFY"

type Config struct {
	SampleRate   int     `envconfig:"SAMPLE_RATE" default:"22050"`
	Fringe       float64 `envconfig:"FRINGE" default:"30"`
	PitchMin     float64 `envconfig:"PITCH_MIN" default:"60"`
	PitchMax     float64 `envconfig:"PITCH_MAX" default:"1200"`
	Gains        string  `envconfig:"GAINS" default:"quiet"`
	Background   bool    `envconfig:"BACKGROUND" default:"true"`
	NoiseSeconds float64 `envconfig:"NOISE_SECONDS" default:"3"`
	NoiseLevel   float64 `envconfig:"NOISE_LEVEL" default:"0.05"`
	CacheLimit   int     `envconfig:"CACHE_LIMIT" default:"2048"`
	SoundsDir    string  `envconfig:"SOUNDS_DIR" default:"./sounds"`
	Width        int     `envconfig:"WIDTH" default:"700"`
	Height       int     `envconfig:"HEIGHT" default:"700"`
	LogLevel     string  `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first setting that cannot work.
func (c *Config) Validate() error {
	switch {
	case c.SampleRate <= 0:
		return fmt.Errorf("config: sample rate %d must be positive", c.SampleRate)
	case c.PitchMin <= 0 || c.PitchMax <= c.PitchMin:
		return fmt.Errorf("config: pitch band %v-%v Hz is empty", c.PitchMin, c.PitchMax)
	case c.PitchMax*synth.OffCanvasFactor > float64(c.SampleRate)/2:
		return fmt.Errorf("config: off-canvas pitch %v Hz exceeds half the %d Hz sample rate", c.PitchMax*synth.OffCanvasFactor, c.SampleRate)
	case c.Width < 2 || c.Height < 2:
		return fmt.Errorf("config: canvas %dx%d is too small", c.Width, c.Height)
	}
	if _, ok := mixer.Profile(c.Gains); !ok {
		return fmt.Errorf("config: unknown gains profile %q", c.Gains)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Engine converts the settings into an engine configuration.
func (c *Config) Engine() engine.Config {
	gains, _ := mixer.Profile(c.Gains)
	gains.BackgroundEnabled = c.Background
	return engine.Config{
		SampleRate:   c.SampleRate,
		Fringe:       c.Fringe,
		Pitch:        synth.Pitch{Min: c.PitchMin, Max: c.PitchMax},
		Gains:        gains,
		NoiseSeconds: c.NoiseSeconds,
		NoiseLevel:   c.NoiseLevel,
		CacheLimit:   c.CacheLimit,
	}
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("config: log level: %w", err)
	}
	return l, nil
}
