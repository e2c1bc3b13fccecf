package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
	"testing/fstest"

	"sonograph/internal/sound"
	"sonograph/internal/synth"
)

func ramp(frames int) *synth.Buffer {
	b := &synth.Buffer{Name: "ramp", Rate: 1000, Samples: make([]int16, frames*2)}
	for i := 0; i < frames; i++ {
		b.Samples[i*2] = int16((i + 1) * 1000)
		b.Samples[i*2+1] = int16(-(i + 1) * 1000)
	}
	return b
}

func readAll(t *testing.T, s *loopStream, chunk int) []int16 {
	t.Helper()
	var out []int16
	p := make([]byte, chunk)
	for i := 0; i < 1000; i++ {
		n, err := s.Read(p)
		for j := 0; j+1 < n; j += 2 {
			out = append(out, int16(binary.LittleEndian.Uint16(p[j:])))
		}
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatal(err)
		}
	}
	t.Fatal("stream never ended")
	return nil
}

func TestLoopStreamRepeats(t *testing.T) {
	tests := []struct {
		name   string
		loops  int
		frames int
	}{
		{"once", sound.PlayOnce, 4},
		{"two repeats", 2, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newLoopStream(ramp(4), tt.loops, 1000)
			s.SetGains(1, 1)
			got := readAll(t, s, 12)
			if len(got) != tt.frames*2 {
				t.Fatalf("got %d samples, want %d", len(got), tt.frames*2)
			}
			for i := 0; i < tt.frames; i++ {
				want := int16((i%4 + 1) * 1000)
				if got[i*2] != want || got[i*2+1] != -want {
					t.Fatalf("frame %d = %d/%d, want %d/%d", i, got[i*2], got[i*2+1], want, -want)
				}
			}
		})
	}
}

func TestLoopStreamForeverAndGains(t *testing.T) {
	s := newLoopStream(ramp(3), sound.LoopForever, 1000)
	s.SetGains(0.5, 0)
	p := make([]byte, 4*30)
	n, err := s.Read(p)
	if err != nil || n != len(p) {
		t.Fatalf("Read = %d, %v", n, err)
	}
	for i := 0; i < 30; i++ {
		l := int16(binary.LittleEndian.Uint16(p[i*4:]))
		r := int16(binary.LittleEndian.Uint16(p[i*4+2:]))
		if want := int16((i%3 + 1) * 500); l != want || r != 0 {
			t.Fatalf("frame %d = %d/%d, want %d/0", i, l, r, want)
		}
	}
}

func TestLoopStreamResamples(t *testing.T) {
	s := newLoopStream(ramp(4), sound.PlayOnce, 2000)
	s.SetGains(1, 1)
	got := readAll(t, s, 64)
	if len(got) != 16 {
		t.Fatalf("got %d samples, want 16 (each frame twice)", len(got))
	}
	if got[0] != got[2] || got[0] == got[4] {
		t.Errorf("unexpected resampled frames %v", got)
	}
}

func TestLoopStreamEmpty(t *testing.T) {
	s := newLoopStream(nil, sound.LoopForever, 1000)
	if n, err := s.Read(make([]byte, 8)); n != 0 || err != io.EOF {
		t.Errorf("Read = %d, %v, want 0, EOF", n, err)
	}
	if n, err := newLoopStream(ramp(2), 0, 1000).Read(make([]byte, 3)); n != 0 || err != nil {
		t.Errorf("partial frame Read = %d, %v", n, err)
	}
}

// wavFile builds a 16-bit stereo PCM WAV file.
func wavFile(rate int, samples []int16) []byte {
	var data bytes.Buffer
	binary.Write(&data, binary.LittleEndian, samples)

	var b bytes.Buffer
	b.WriteString("RIFF")
	binary.Write(&b, binary.LittleEndian, uint32(36+data.Len()))
	b.WriteString("WAVEfmt ")
	binary.Write(&b, binary.LittleEndian, uint32(16))
	binary.Write(&b, binary.LittleEndian, uint16(1))
	binary.Write(&b, binary.LittleEndian, uint16(2))
	binary.Write(&b, binary.LittleEndian, uint32(rate))
	binary.Write(&b, binary.LittleEndian, uint32(rate*4))
	binary.Write(&b, binary.LittleEndian, uint16(4))
	binary.Write(&b, binary.LittleEndian, uint16(16))
	b.WriteString("data")
	binary.Write(&b, binary.LittleEndian, uint32(data.Len()))
	b.Write(data.Bytes())
	return b.Bytes()
}

func TestLibrary(t *testing.T) {
	samples := []int16{100, -100, 200, -200, 300, -300, 400, -400}
	fsys := fstest.MapFS{
		"blue_circle.wav": {Data: wavFile(synth.DefaultSampleRate, samples)},
		"broken.wav":      {Data: []byte("not a wav")},
		"notes.txt":       {Data: []byte("hello")},
	}
	lib := NewLibrary(fsys, synth.DefaultSampleRate)

	c, err := lib.ForText("Blue circle")
	if err != nil {
		t.Fatal(err)
	}
	if c.Name != "blue_circle" || c.PCM.Frames() != 4 {
		t.Errorf("clip %q with %d frames", c.Name, c.PCM.Frames())
	}
	for i, s := range samples {
		if c.PCM.Samples[i] != s {
			t.Fatalf("sample %d = %d, want %d", i, c.PCM.Samples[i], s)
		}
	}
	again, err := lib.Load("blue_circle")
	if err != nil || again != c {
		t.Error("second load returned a different clip")
	}

	if _, err := lib.Load("red_square"); !errors.Is(err, sound.ErrMissingClip) {
		t.Errorf("missing clip err = %v", err)
	}
	if _, err := lib.Load("broken"); err == nil || errors.Is(err, sound.ErrMissingClip) {
		t.Errorf("broken clip err = %v", err)
	}
	if _, err := lib.Load("notes.txt"); err == nil {
		t.Error("unsupported format accepted")
	}
	if lib.Len() != 1 {
		t.Errorf("Len() = %d, want 1", lib.Len())
	}
}

func TestDecodeStereoI16(t *testing.T) {
	got := decodeStereoI16([]byte{0x01, 0x00, 0xff, 0xff, 0x02, 0x00, 0xfe, 0xff, 0x09})
	want := []int16{1, -1, 2, -2}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %d, want %d", i, got[i], want[i])
		}
	}
}
