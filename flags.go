package main

import "flag"

// Command-line flags. Each one overrides the matching SONIFY_* environment
// setting when it is given.
var (
	// sceneFlag picks the demo layout or a random trial shape.
	sceneFlag = flag.String("scene", "demo", "scene to show: demo or trial")

	// enableAudioFlag opens the audio device; without it the engine drives
	// silent channels.
	enableAudioFlag = flag.Bool("enable-audio", true, "play sound through the default audio device")

	// debugFlag enables the state and TPS overlay.
	debugFlag = flag.Bool("debug", false, "show containment state, pointer pitch and TPS overlay")

	audibleFlag = flag.Bool("audible", false, "let pointer tone and background static through (audible gains)")

	fringeFlag = flag.Float64("fringe", 0, "near band width in pixels (0 keeps the configured value)")

	soundsFlag = flag.String("sounds", "", "directory of speech and instrument clips (default from SONIFY_SOUNDS_DIR)")

	// seedFlag makes trial shapes reproducible.
	seedFlag = flag.Uint64("seed", 0, "random seed for trial shapes (0 picks one)")

	trialSoundFlag = flag.String("trial-sound", "130.81", "trial shape sound: a frequency, a negative pause length, or a clip name")

	imageFlag = flag.String("image", "", "PNG, BMP or WebP image to add to the scene")

	logLevelFlag = flag.String("log-level", "", "debug, info, warn or error (default from SONIFY_LOG_LEVEL)")

	// recordDefaultPGO triggers a scripted pointer sweep to produce default.pgo.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "sweep the pointer for 15s while capturing default.pgo")
)
