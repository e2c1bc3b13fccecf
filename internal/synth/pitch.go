package synth

import "math"

// Default pointer pitch band in Hz.
const (
	DefaultMinFrequency = 60.0
	DefaultMaxFrequency = 1200.0
)

// OffCanvasFactor scales Max into the pitch played off the canvas.
const OffCanvasFactor = 4

// Pitch maps a proportion in [0, 1] geometrically onto a frequency band, so
// equal pointer movements give equal musical intervals.
type Pitch struct {
	Min, Max float64
}

// DefaultPitch returns the 60-1200 Hz band.
func DefaultPitch() Pitch {
	return Pitch{Min: DefaultMinFrequency, Max: DefaultMaxFrequency}
}

// Frequency returns the frequency for proportion y. Values outside [0, 1]
// (the pointer has left the canvas) map to OffCanvasFactor times Max, a
// shrill warning pitch.
func (p Pitch) Frequency(y float64) float64 {
	lo, hi := p.Min, p.Max
	if lo <= 0 || hi <= 0 {
		lo, hi = DefaultMinFrequency, DefaultMaxFrequency
	}
	if y < 0 || y > 1 || math.IsNaN(y) {
		return hi * OffCanvasFactor
	}
	return math.Exp((1-y)*math.Log(lo) + y*math.Log(hi))
}
