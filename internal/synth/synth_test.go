package synth

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func TestToneLength(t *testing.T) {
	tests := []struct {
		freq float64
		rate int
	}{
		{440, DefaultSampleRate},
		{60, DefaultSampleRate},
		{1200, DefaultSampleRate},
		{622.25, DefaultSampleRate},
		{100, 48000},
		{7, DefaultSampleRate},
	}
	for _, tt := range tests {
		buf, err := Tone(tt.freq, tt.rate)
		if err != nil {
			t.Fatalf("Tone(%v): %v", tt.freq, err)
		}
		want := int(math.Floor(float64(tt.rate) / tt.freq))
		if buf.Frames() != want {
			t.Errorf("Tone(%v, %d).Frames() = %d, want %d", tt.freq, tt.rate, buf.Frames(), want)
		}
		if buf.Rate != tt.rate {
			t.Errorf("Rate = %d, want %d", buf.Rate, tt.rate)
		}
	}
}

// signChanges counts transitions between negative and non-negative samples
// around the loop, including the wrap from the last frame to the first.
func signChanges(buf *Buffer) int {
	n := buf.Frames()
	changes := 0
	for i := 0; i < n; i++ {
		a := buf.Samples[i*2] < 0
		b := buf.Samples[((i+1)%n)*2] < 0
		if a != b {
			changes++
		}
	}
	return changes
}

func TestToneIsOneSineCycle(t *testing.T) {
	for _, freq := range []float64{60, 220, 440, 880, 1200, 4800} {
		buf, err := Tone(freq, DefaultSampleRate)
		if err != nil {
			t.Fatal(err)
		}
		if got := signChanges(buf); got != 2 {
			t.Errorf("Tone(%v) crosses zero %d times per cycle, want 2", freq, got)
		}
		peak := 0
		for i := 0; i < buf.Frames(); i++ {
			l, r := buf.Samples[i*2], buf.Samples[i*2+1]
			if l != r {
				t.Fatalf("Tone(%v) frame %d: left %d != right %d", freq, i, l, r)
			}
			peak = max(peak, int(l))
		}
		if freq <= 1200 && peak < MaxSample*98/100 {
			t.Errorf("Tone(%v) peak %d, want close to %d", freq, peak, MaxSample)
		}
	}
}

func TestToneRejectsInvalid(t *testing.T) {
	for _, freq := range []float64{0, -10, math.NaN(), math.Inf(1), DefaultSampleRate} {
		buf, err := Tone(freq, DefaultSampleRate)
		if !errors.Is(err, ErrInvalidFrequency) {
			t.Errorf("Tone(%v) err = %v, want ErrInvalidFrequency", freq, err)
		}
		if buf != nil {
			t.Errorf("Tone(%v) returned a buffer alongside the error", freq)
		}
	}
}

func TestSilence(t *testing.T) {
	buf, err := Silence(1.5, DefaultSampleRate)
	if err != nil {
		t.Fatal(err)
	}
	if want := int(1.5 * DefaultSampleRate); buf.Frames() != want {
		t.Errorf("Frames() = %d, want %d", buf.Frames(), want)
	}
	for i, s := range buf.Samples {
		if s != 0 {
			t.Fatalf("sample %d = %d, want 0", i, s)
		}
	}
	if _, err := Silence(0, DefaultSampleRate); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("Silence(0) err = %v, want ErrInvalidDuration", err)
	}
}

func TestNoiseIsQuiet(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	buf, err := Noise(1, 0.05, DefaultSampleRate, rng)
	if err != nil {
		t.Fatal(err)
	}
	var sumSq float64
	for i := 0; i < buf.Frames(); i++ {
		v := float64(buf.Samples[i*2]) / MaxSample
		sumSq += v * v
	}
	rms := math.Sqrt(sumSq / float64(buf.Frames()))
	if rms < 0.04 || rms > 0.06 {
		t.Errorf("rms = %v, want about 0.05", rms)
	}
}

func TestBytesLittleEndian(t *testing.T) {
	buf := &Buffer{Rate: DefaultSampleRate, Samples: []int16{1, -2}}
	got := buf.Bytes()
	want := []byte{0x01, 0x00, 0xfe, 0xff}
	if string(got) != string(want) {
		t.Errorf("Bytes() = %x, want %x", got, want)
	}
}

func TestPitchFrequency(t *testing.T) {
	p := DefaultPitch()
	tests := []struct {
		name string
		y    float64
		want float64
	}{
		{"bottom", 0, 60},
		{"top", 1, 1200},
		{"geometric middle", 0.5, math.Sqrt(60 * 1200)},
		{"below canvas", -0.1, 4800},
		{"above canvas", 1.2, 4800},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Frequency(tt.y); math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("Frequency(%v) = %v, want %v", tt.y, got, tt.want)
			}
		})
	}

	band := Pitch{Min: 220, Max: 440}
	if got := band.Frequency(0.5); math.Abs(got-220*math.Sqrt2) > 1e-6 {
		t.Errorf("220-440 middle = %v", got)
	}
}
