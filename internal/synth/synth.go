// Package synth generates the PCM buffers played by the sonification
// channels: single-cycle sine tones, silence and background static.
//
// Buffers are interleaved stereo signed 16-bit samples. A tone buffer holds
// exactly one period so that looping it yields a continuous pitch.
package synth

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

const (
	// DefaultSampleRate is the rate used for synthesized and decoded audio.
	DefaultSampleRate = 22050
	// MaxSample is the largest representable sample magnitude.
	MaxSample = math.MaxInt16
	// Channels is the number of interleaved channels in every Buffer.
	Channels = 2
)

var (
	// ErrInvalidFrequency is returned for frequencies that cannot produce at
	// least two frames per cycle, including zero and negative values.
	ErrInvalidFrequency = errors.New("synth: invalid frequency")
	// ErrInvalidDuration is returned for non-positive durations.
	ErrInvalidDuration = errors.New("synth: invalid duration")
)

// Buffer is a block of interleaved stereo PCM16 audio.
type Buffer struct {
	Name    string
	Rate    int
	Samples []int16
}

// Frames returns the number of stereo frames.
func (b *Buffer) Frames() int {
	return len(b.Samples) / Channels
}

// Duration returns the playing time of one pass through the buffer.
func (b *Buffer) Duration() time.Duration {
	if b.Rate <= 0 {
		return 0
	}
	return time.Duration(b.Frames()) * time.Second / time.Duration(b.Rate)
}

// Bytes returns the samples as little-endian PCM, the layout audio players
// consume.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, len(b.Samples)*2)
	for i, s := range b.Samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}
	return out
}

func validRate(rate int) int {
	if rate <= 0 {
		return DefaultSampleRate
	}
	return rate
}

// Tone returns one full cycle of a sine wave at freq Hz, floor(rate/freq)
// frames long, at full amplitude on both channels. Pitch accuracy degrades
// at extreme frequencies because the cycle length is rounded down.
func Tone(freq float64, rate int) (*Buffer, error) {
	rate = validRate(rate)
	if math.IsNaN(freq) || math.IsInf(freq, 0) || freq <= 0 {
		return nil, fmt.Errorf("%w: %v Hz", ErrInvalidFrequency, freq)
	}
	length := float64(rate) / freq
	frames := int(length)
	if frames < 2 {
		return nil, fmt.Errorf("%w: %v Hz exceeds half the %d Hz sample rate", ErrInvalidFrequency, freq, rate)
	}
	omega := 2 * math.Pi / length
	samples := make([]int16, frames*Channels)
	for i := 0; i < frames; i++ {
		v := int16(math.Round(MaxSample * math.Sin(float64(i)*omega)))
		samples[i*2] = v
		samples[i*2+1] = v
	}
	return &Buffer{
		Name:    fmt.Sprintf("tone %.2f Hz", freq),
		Rate:    rate,
		Samples: samples,
	}, nil
}

// Silence returns an all-zero buffer lasting seconds.
func Silence(seconds float64, rate int) (*Buffer, error) {
	rate = validRate(rate)
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds <= 0 {
		return nil, fmt.Errorf("%w: %v s", ErrInvalidDuration, seconds)
	}
	frames := int(seconds * float64(rate))
	if frames < 1 {
		frames = 1
	}
	return &Buffer{
		Name:    fmt.Sprintf("silence %.3f s", seconds),
		Rate:    rate,
		Samples: make([]int16, frames*Channels),
	}, nil
}

// Noise returns Gaussian static with the given standard deviation, relative
// to full scale. The same value is written to both channels.
func Noise(seconds, stddev float64, rate int, rng *rand.Rand) (*Buffer, error) {
	rate = validRate(rate)
	if math.IsNaN(seconds) || seconds <= 0 {
		return nil, fmt.Errorf("%w: %v s", ErrInvalidDuration, seconds)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	frames := int(seconds * float64(rate))
	samples := make([]int16, frames*Channels)
	for i := 0; i < frames; i++ {
		v := rng.NormFloat64() * stddev * MaxSample
		v = math.Max(-MaxSample, math.Min(MaxSample, v))
		samples[i*2] = int16(v)
		samples[i*2+1] = int16(v)
	}
	return &Buffer{
		Name:    "static",
		Rate:    rate,
		Samples: samples,
	}, nil
}
