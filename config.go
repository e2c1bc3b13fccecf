package main

import (
	"image/color"
	"time"
)

// Window, pointer and scene constants. Canvas size, pitch band and gains come
// from the environment and flags instead.
const (
	windowScale         = 1
	moveSpeed           = 3
	defaultTPS          = 60.0
	pgoRecordDuration   = 15 * time.Second
	trialWorldExtent    = 4.0
	trialEccentricity   = 1.65
	outlineWidth        = 2
	highlightWidth      = 4
	pointMarkerRadius   = 4
	ellipseSegments     = 64
	imageAnchorFraction = 0.75
)

var (
	backgroundColor = color.RGBA{0x77, 0x88, 0x99, 0xff}
	outlineColor    = color.RGBA{0x10, 0x10, 0x10, 0xff}
	insideColor     = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	nearColor       = color.RGBA{0x00, 0xe5, 0xff, 0xff}
	pointerColor    = color.RGBA{0xff, 0x20, 0x20, 0xff}
)
