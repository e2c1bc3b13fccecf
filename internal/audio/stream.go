package audio

import (
	"io"
	"math"
	"sync"

	"sonograph/internal/synth"
)

const frameBytes = 4 // stereo PCM16

// loopStream feeds a player with a buffer repeated per a loop policy, with
// independent left and right gains. Buffers recorded at another rate are
// stepped through at the device rate.
type loopStream struct {
	mu sync.Mutex

	buf   *synth.Buffer
	pos   float64
	step  float64
	loops int
	done  bool

	left, right float32
}

func newLoopStream(buf *synth.Buffer, loops, deviceRate int) *loopStream {
	s := &loopStream{buf: buf, loops: loops, step: 1}
	if buf != nil && buf.Rate > 0 && deviceRate > 0 {
		s.step = float64(buf.Rate) / float64(deviceRate)
	}
	if buf == nil || buf.Frames() == 0 {
		s.done = true
	}
	return s
}

func (s *loopStream) SetGains(left, right float64) {
	s.mu.Lock()
	s.left = clampGain(left)
	s.right = clampGain(right)
	s.mu.Unlock()
}

func clampGain(v float64) float32 {
	if v < 0 {
		return 0
	} else if v > 1 {
		return 1
	}
	return float32(v)
}

// Read writes whole stereo frames. It returns io.EOF once the last repeat
// has been written.
func (s *loopStream) Read(p []byte) (int, error) {
	n := len(p) - len(p)%frameBytes
	if n == 0 {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return 0, io.EOF
	}

	frames := s.buf.Frames()
	written := 0
	for written < n {
		i := int(s.pos)
		if i >= frames {
			if s.loops == 0 {
				s.done = true
				break
			}
			if s.loops > 0 {
				s.loops--
			}
			s.pos = math.Mod(s.pos, float64(frames))
			i = int(s.pos)
		}
		l := int16(float32(s.buf.Samples[i*2]) * s.left)
		r := int16(float32(s.buf.Samples[i*2+1]) * s.right)
		p[written] = byte(l)
		p[written+1] = byte(l >> 8)
		p[written+2] = byte(r)
		p[written+3] = byte(r >> 8)
		written += frameBytes
		s.pos += s.step
	}
	if s.done {
		return written, io.EOF
	}
	return written, nil
}

func (s *loopStream) Close() error {
	return nil
}
