// Package sound describes what a shape plays when the pointer finds it: a
// named clip, a synthesized tone or a pause, each with a loop policy.
package sound

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"sonograph/internal/synth"
)

// Loop policies. Positive values repeat the sound that many extra times.
const (
	LoopForever = -1
	PlayOnce    = 0
)

// ErrMissingClip is returned when a clip resource is absent or could not be
// loaded. Missing clips are configuration errors and are never replaced with
// silence.
var ErrMissingClip = errors.New("sound: missing clip")

// Kind identifies the variant of a Source.
type Kind uint8

const (
	KindClip Kind = iota
	KindTone
	KindSilence
)

func (k Kind) String() string {
	switch k {
	case KindClip:
		return "clip"
	case KindTone:
		return "tone"
	case KindSilence:
		return "silence"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Clip is an opaque, already decoded audio resource. Two clips are the same
// sound only if they are the same *Clip.
type Clip struct {
	Name string
	PCM  *synth.Buffer
}

// Source is an immutable description of what a shape sounds like.
type Source struct {
	kind    Kind
	clip    *Clip
	freq    float64
	seconds float64
	loops   int
}

// FromClip returns a Source playing c with the given loop policy.
func FromClip(c *Clip, loops int) (*Source, error) {
	if c == nil || c.PCM == nil || len(c.PCM.Samples) == 0 {
		name := "<nil>"
		if c != nil {
			name = c.Name
		}
		return nil, fmt.Errorf("%w: %s", ErrMissingClip, name)
	}
	return &Source{kind: KindClip, clip: c, loops: normalizeLoops(loops)}, nil
}

// FromTone returns a Source looping a pure tone at freq Hz.
func FromTone(freq float64) (*Source, error) {
	if math.IsNaN(freq) || math.IsInf(freq, 0) || freq <= 0 {
		return nil, fmt.Errorf("%w: %v Hz", synth.ErrInvalidFrequency, freq)
	}
	return &Source{kind: KindTone, freq: freq, loops: LoopForever}, nil
}

// FromSilence returns a Source looping a pause of the given length.
func FromSilence(seconds float64) (*Source, error) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds <= 0 {
		return nil, fmt.Errorf("%w: %v s", synth.ErrInvalidDuration, seconds)
	}
	return &Source{kind: KindSilence, seconds: seconds, loops: LoopForever}, nil
}

// FromValue builds a Source from a bare number: a positive value is a tone
// frequency, a negative value is a pause of |v| seconds and zero is a one
// second pause. All loop forever.
func FromValue(v float64) (*Source, error) {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return nil, fmt.Errorf("%w: %v", synth.ErrInvalidFrequency, v)
	case v > 0:
		return FromTone(v)
	case v == 0:
		return FromSilence(1)
	}
	return FromSilence(-v)
}

func normalizeLoops(loops int) int {
	if loops < LoopForever {
		return LoopForever
	}
	return loops
}

// Kind returns the variant tag.
func (s *Source) Kind() Kind { return s.kind }

// Clip returns the clip of a clip source, nil otherwise.
func (s *Source) Clip() *Clip { return s.clip }

// Frequency returns the tone frequency of a tone source, zero otherwise.
func (s *Source) Frequency() float64 { return s.freq }

// Seconds returns the length of a silence source, zero otherwise.
func (s *Source) Seconds() float64 { return s.seconds }

// Loops returns the loop policy.
func (s *Source) Loops() int { return s.loops }

func (s *Source) String() string {
	if s == nil {
		return "none"
	}
	switch s.kind {
	case KindClip:
		return "clip " + s.clip.Name
	case KindTone:
		return fmt.Sprintf("tone %.2f Hz", s.freq)
	}
	return fmt.Sprintf("silence %.3f s", s.seconds)
}

// ClipName turns a spoken label into the file stem of its pre-generated
// speech clip: trimmed, case-folded, spaces as underscores, and only ASCII
// letters, digits and underscores kept.
func ClipName(text string) string {
	text = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(text)), " ", "_")
	var b strings.Builder
	for _, r := range text {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
