package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"sonograph/internal/audio"
	"sonograph/internal/config"
	"sonograph/internal/engine"
	"sonograph/internal/geometry"
	"sonograph/internal/mixer"
	"sonograph/internal/scene"
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		slog.Error("sonograph", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := config.ParseLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	engine.SetLogger(logger)

	seed := *seedFlag
	if seed == 0 {
		seed = rand.Uint64()
	}

	var (
		channels = mixer.Silent()
		clips    *audio.Library
		rate     = cfg.SampleRate
	)
	if *enableAudioFlag {
		dev := audio.NewDevice(cfg.SampleRate)
		defer dev.Close()
		rate = dev.SampleRate()
		channels = dev.Channels()
	}
	if info, err := os.Stat(cfg.SoundsDir); err == nil && info.IsDir() {
		clips = audio.NewLibrary(os.DirFS(cfg.SoundsDir), rate)
	} else {
		slog.Warn("sounds directory unavailable, spoken labels are silent", "dir", cfg.SoundsDir)
	}

	trialMode := *sceneFlag == "trial"
	var world *[4]float64
	width, height := scene.DemoSize, scene.DemoSize
	switch *sceneFlag {
	case "demo":
	case "trial":
		width, height = cfg.Width, cfg.Height
		world = &[4]float64{-trialWorldExtent, -trialWorldExtent, trialWorldExtent, trialWorldExtent}
	default:
		return fmt.Errorf("unknown scene %q", *sceneFlag)
	}
	canvas, err := newWindowCanvas(width, height, world)
	if err != nil {
		return err
	}

	list := scene.NewList()
	face := basicfont.Face7x13
	g := &Game{
		list:      list,
		canvas:    canvas,
		builder:   newSceneBuilder(list, clips, face),
		face:      text.NewGoXFace(face),
		width:     width,
		height:    height,
		levelRand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		trialMode: trialMode,
	}

	ecfg := cfg.Engine()
	ecfg.SampleRate = rate
	g.engine, err = engine.New(ecfg, list, canvas, channels,
		engine.WithRand(rand.New(rand.NewPCG(seed, 1))))
	if err != nil {
		return err
	}
	if err := g.engine.Open(); err != nil {
		return err
	}
	defer g.close()

	if trialMode {
		g.generateTrial()
	} else if err := g.builder.buildDemo(); err != nil {
		return err
	}
	if *imageFlag != "" {
		anchor := canvas.Transform().ToWorld(geometry.Pt(float64(width)*imageAnchorFraction, float64(height)*imageAnchorFraction))
		label := g.builder.speech(filepath.Base(*imageFlag))
		if err := g.builder.addImage(*imageFlag, anchor, label); err != nil {
			slog.Warn("image skipped", "path", *imageFlag, "err", err)
		}
	}
	slog.Info("scene ready", "scene", *sceneFlag, "shapes", list.Len(), "seed", seed, "audio", *enableAudioFlag)

	if *recordDefaultPGO {
		stop, err := startDefaultPGORecording("default.pgo")
		if err != nil {
			return fmt.Errorf("starting profile: %w", err)
		}
		defer stop()
		g.stopProfile = stop
		g.enableAutoWalk(pgoRecordDuration)
	}

	ebiten.SetWindowSize(width*windowScale, height*windowScale)
	ebiten.SetWindowTitle("Sonograph: shapes you can hear")
	ebiten.SetTPS(defaultTPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// applyFlags lets explicitly set flags override the environment.
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "audible":
			if *audibleFlag {
				cfg.Gains = "audible"
			} else {
				cfg.Gains = "quiet"
			}
		case "fringe":
			if *fringeFlag > 0 {
				cfg.Fringe = *fringeFlag
			}
		case "sounds":
			cfg.SoundsDir = *soundsFlag
		case "log-level":
			cfg.LogLevel = *logLevelFlag
		}
	})
}
