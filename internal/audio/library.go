package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"sonograph/internal/engine"
	"sonograph/internal/sound"
	"sonograph/internal/synth"
)

// clipExtensions are tried in order when a clip name has no extension.
var clipExtensions = []string{".wav", ".ogg", ".mp3"}

// Library loads clips from a file system, decoding them at the device rate.
// A name always yields the same *sound.Clip.
type Library struct {
	fsys fs.FS
	rate int

	mu    sync.Mutex
	clips map[string]*sound.Clip
}

// NewLibrary returns a library reading from fsys at the given rate.
func NewLibrary(fsys fs.FS, rate int) *Library {
	return &Library{fsys: fsys, rate: rate, clips: make(map[string]*sound.Clip)}
}

// Load returns the clip called name. A name without an extension is looked
// up as .wav, .ogg and then .mp3. A clip that does not exist is reported as
// sound.ErrMissingClip.
func (l *Library) Load(name string) (*sound.Clip, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if c, ok := l.clips[name]; ok {
		return c, nil
	}

	candidates := []string{name}
	if path.Ext(name) == "" {
		candidates = candidates[:0]
		for _, ext := range clipExtensions {
			candidates = append(candidates, name+ext)
		}
	}
	for _, file := range candidates {
		raw, err := fs.ReadFile(l.fsys, file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", file, err)
		}
		pcm, err := decodeClip(file, raw, l.rate)
		if err != nil {
			return nil, err
		}
		c := &sound.Clip{Name: name, PCM: pcm}
		l.clips[name] = c
		engine.Logger().Debug("clip loaded", "name", name, "file", file, "duration", pcm.Duration())
		return c, nil
	}
	return nil, fmt.Errorf("%w: %s", sound.ErrMissingClip, name)
}

// ForText loads the pre-generated speech clip for a label.
func (l *Library) ForText(label string) (*sound.Clip, error) {
	return l.Load(sound.ClipName(label))
}

// Len returns the number of clips loaded so far.
func (l *Library) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clips)
}

func decodeClip(file string, raw []byte, rate int) (*synth.Buffer, error) {
	var (
		stream io.Reader
		err    error
	)
	src := bytes.NewReader(raw)
	switch strings.ToLower(path.Ext(file)) {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(rate, src)
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(rate, src)
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(rate, src)
	default:
		return nil, fmt.Errorf("clip %q: unsupported format", file)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", file, err)
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("reading decoded %q: %w", file, err)
	}
	samples := decodeStereoI16(decoded)
	if len(samples) == 0 {
		return nil, fmt.Errorf("clip %q has no audio data", file)
	}
	return &synth.Buffer{Name: strings.TrimSuffix(path.Base(file), path.Ext(file)), Rate: rate, Samples: samples}, nil
}

// decodeStereoI16 converts little-endian stereo PCM16 bytes to samples,
// dropping a trailing partial frame.
func decodeStereoI16(pcm []byte) []int16 {
	n := len(pcm) / frameBytes * 2
	samples := make([]int16, n)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(pcm[i*2:]))
	}
	return samples
}
