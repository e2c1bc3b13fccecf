package sound

import (
	"fmt"

	"sonograph/internal/synth"
)

// Resolver turns sources into playable buffers. Tones and pauses come from
// a synth.Cache, so equal sources resolve to the same *synth.Buffer.
type Resolver struct {
	cache *synth.Cache
}

// NewResolver returns a Resolver backed by cache.
func NewResolver(cache *synth.Cache) *Resolver {
	return &Resolver{cache: cache}
}

// Resolve returns the buffer s plays.
func (r *Resolver) Resolve(s *Source) (*synth.Buffer, error) {
	if s == nil {
		return nil, nil
	}
	switch s.kind {
	case KindClip:
		if s.clip == nil || s.clip.PCM == nil {
			return nil, ErrMissingClip
		}
		return s.clip.PCM, nil
	case KindTone:
		return r.cache.Tone(s.freq)
	case KindSilence:
		return r.cache.Silence(s.seconds)
	}
	return nil, fmt.Errorf("sound: unknown source kind %v", s.kind)
}
