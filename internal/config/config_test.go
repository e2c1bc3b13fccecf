package config

import (
	"log/slog"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SampleRate != 22050 || cfg.Fringe != 30 || cfg.Gains != "quiet" || !cfg.Background {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	e := cfg.Engine()
	if e.Pitch.Min != 60 || e.Pitch.Max != 1200 {
		t.Errorf("pitch band %+v", e.Pitch)
	}
	if !e.Gains.BackgroundEnabled || e.Gains.Inside.Item != 1 {
		t.Errorf("gains %+v", e.Gains)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SONIFY_FRINGE", "12.5")
	t.Setenv("SONIFY_GAINS", "audible")
	t.Setenv("SONIFY_BACKGROUND", "false")
	t.Setenv("SONIFY_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	e := cfg.Engine()
	if e.Fringe != 12.5 {
		t.Errorf("Fringe = %v", e.Fringe)
	}
	if e.Gains.Outside.Background != 0.5 || e.Gains.BackgroundEnabled {
		t.Errorf("gains %+v", e.Gains)
	}
	if l, _ := ParseLevel(cfg.LogLevel); l != slog.LevelDebug {
		t.Errorf("level = %v", l)
	}
}

func TestLoadAcceptsHighestPitch(t *testing.T) {
	t.Setenv("SONIFY_SAMPLE_RATE", "48000")
	t.Setenv("SONIFY_PITCH_MAX", "6000")
	if _, err := Load(); err != nil {
		t.Errorf("6000 Hz at 48 kHz rejected: %v", err)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"bad number", "SONIFY_SAMPLE_RATE", "fast"},
		{"zero rate", "SONIFY_SAMPLE_RATE", "0"},
		{"inverted pitch", "SONIFY_PITCH_MIN", "5000"},
		{"pitch above nyquist", "SONIFY_PITCH_MAX", "12000"},
		{"warble above nyquist", "SONIFY_PITCH_MAX", "3000"},
		{"tiny canvas", "SONIFY_WIDTH", "1"},
		{"unknown gains", "SONIFY_GAINS", "loud"},
		{"unknown level", "SONIFY_LOG_LEVEL", "chatty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("%s=%s accepted", tt.key, tt.value)
			}
		})
	}
}
