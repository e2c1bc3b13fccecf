package main

import (
	"flag"
	"io"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"sonograph/internal/audio"
	"sonograph/internal/config"
	"sonograph/internal/engine"
	"sonograph/internal/mixer"
	"sonograph/internal/scene"
	"sonograph/internal/sound"
	"sonograph/internal/tui"
)

var (
	muteFlag = flag.Bool("mute", false, "run without an audio device")
	logFlag  = flag.String("log", "", "write logs to this file instead of discarding them")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	level, _ := config.ParseLevel(cfg.LogLevel)
	var out io.Writer = io.Discard
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	engine.SetLogger(logger)

	channels, rate := mixer.Silent(), cfg.SampleRate
	if !*muteFlag {
		dev := audio.NewDevice(cfg.SampleRate)
		defer dev.Close()
		channels, rate = dev.Channels(), dev.SampleRate()
	}

	var voices scene.Voices
	if info, err := os.Stat(cfg.SoundsDir); err == nil && info.IsDir() {
		clips := audio.NewLibrary(os.DirFS(cfg.SoundsDir), rate)
		load := func(name string) *sound.Source {
			c, err := clips.Load(name)
			if err != nil {
				slog.Warn("shape stays silent", "clip", name, "err", err)
				return nil
			}
			s, err := sound.FromClip(c, sound.PlayOnce)
			if err != nil {
				slog.Warn("shape stays silent", "clip", name, "err", err)
				return nil
			}
			return s
		}
		voices.Speech = func(label string) *sound.Source { return load(sound.ClipName(label)) }
		voices.Clip = load
	}

	list := scene.NewList()
	items, err := scene.BuildDemo(list, voices, nil)
	if err != nil {
		log.Fatal(err)
	}

	ecfg := cfg.Engine()
	ecfg.SampleRate = rate
	eng, err := engine.New(ecfg, list, nil, channels)
	if err != nil {
		log.Fatal(err)
	}
	if err := eng.Open(); err != nil {
		log.Fatal(err)
	}
	defer eng.Close()

	m := tui.New(eng, list, items, scene.DemoSize)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}
