// SPDX-License-Identifier: EPL-2.0

package streamer

import (
	"errors"
	"math"
	"testing"

	"github.com/gopxl/beep/v2"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/internal/audiotest"
)

// drain streams s in chunks of chunk samples until it reports !ok.
func drain(s beep.Streamer, chunk int) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, chunk)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestToStreamer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		right    float64
	}{
		{"mono duplicates", 1, 0},
		{"stereo", 2, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := ToStreamer(audiotest.NewRampReader(8000, tt.channels, 10))
			out := drain(s, 4)
			if len(out) != 10 {
				t.Fatalf("streamed %d samples, want 10", len(out))
			}
			for i, v := range out {
				if v[0] != float64(i) || math.Abs(v[1]-float64(i)-tt.right) > 1e-6 {
					t.Errorf("sample %d = %v", i, v)
				}
			}
			if s.Err() != nil {
				t.Errorf("Err() = %v", s.Err())
			}
			if n, ok := s.Stream(make([][2]float64, 4)); n != 0 || ok {
				t.Errorf("Stream after end = %d, %v, want 0, false", n, ok)
			}
		})
	}
}

func TestToStreamer_Format(t *testing.T) {
	t.Parallel()

	s := ToStreamer(audiotest.NewSilentReader(22050, 6, 10))
	if f := s.Format(); f.SampleRate != 22050 || f.NumChannels != 2 {
		t.Errorf("Format() = %+v", f)
	}
	if out := drain(s, 3); len(out) != 10 {
		t.Errorf("surround source streamed %d samples, want 10", len(out))
	}
}

func TestToStreamer_Seek(t *testing.T) {
	t.Parallel()

	s := ToStreamer(audiotest.NewRampReader(8000, 1, 10))
	drain(s, 16)

	if err := s.Seek(7); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	if s.Position() != 7 || s.Len() != 10 {
		t.Errorf("Position() = %d, Len() = %d", s.Position(), s.Len())
	}
	out := drain(s, 16)
	if len(out) != 3 || out[0][0] != 7 {
		t.Errorf("after Seek streamed %v", out)
	}

	unseekable := audiotest.NewRampReader(8000, 1, 10)
	unseekable.NotSeekable = true
	if err := ToStreamer(unseekable).Seek(0); !errors.Is(err, audio.ErrNotSeekable) {
		t.Errorf("Seek() error = %v, want ErrNotSeekable", err)
	}
}

func TestToStreamer_Error(t *testing.T) {
	t.Parallel()

	r := audiotest.NewRampReader(8000, 1, 100)
	r.FailAfter = 1
	s := ToStreamer(r)

	if n, ok := s.Stream(make([][2]float64, 10)); n != 10 || !ok {
		t.Fatalf("first Stream = %d, %v", n, ok)
	}
	if n, ok := s.Stream(make([][2]float64, 10)); n != 0 || ok {
		t.Errorf("failing Stream = %d, %v, want 0, false", n, ok)
	}
	if !errors.Is(s.Err(), audiotest.ErrInjected) {
		t.Errorf("Err() = %v, want ErrInjected", s.Err())
	}
}

func TestToStreamer_FillsAcrossShortReads(t *testing.T) {
	t.Parallel()

	r := audiotest.NewRampReader(8000, 1, 100)
	r.MaxRead = 3
	s := ToStreamer(r)

	buf := make([][2]float64, 16)
	total := 0
	for total < 96 {
		n, ok := s.Stream(buf)
		if n != len(buf) || !ok {
			t.Fatalf("Stream at %d = %d, %v; want a full buffer", total, n, ok)
		}
		for i := range n {
			if buf[i][0] != float64(total+i) {
				t.Fatalf("sample %d = %v", total+i, buf[i])
			}
		}
		total += n
	}

	if n, ok := s.Stream(buf); n != 4 || !ok {
		t.Errorf("last Stream = %d, %v; want 4, true", n, ok)
	}
	if n, ok := s.Stream(buf); n != 0 || ok {
		t.Errorf("Stream after end = %d, %v; want 0, false", n, ok)
	}
}

func TestToStreamer_BeepCombinators(t *testing.T) {
	t.Parallel()

	s := beep.Take(5, ToStreamer(audiotest.NewRampReader(8000, 1, 100)))
	if out := drain(s, 64); len(out) != 5 || out[4][0] != 4 {
		t.Errorf("Take(5) streamed %v", out)
	}
}

func TestFromStreamer(t *testing.T) {
	t.Parallel()

	left := 100
	s := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if left == 0 {
			return 0, false
		}
		n := min(len(samples), left)
		for i := range n {
			samples[i] = [2]float64{0.25, -0.25}
		}
		left -= n
		return n, true
	})

	r := FromStreamer(s, beep.Format{SampleRate: 8000, NumChannels: 2, Precision: 2})
	if r.Specs() != (audio.Specs{Rate: 8000, Channels: audio.ChannelsStereo}) {
		t.Errorf("Specs() = %v", r.Specs())
	}
	if r.Seekable() || r.Length() != -1 {
		t.Errorf("Seekable() = %v, Length() = %d", r.Seekable(), r.Length())
	}
	if err := r.Seek(0); !errors.Is(err, audio.ErrNotSeekable) {
		t.Errorf("Seek() error = %v, want ErrNotSeekable", err)
	}

	out, err := audiotest.ReadAll(r, 30, 0)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(out) != 200 || out[0] != 0.25 || out[1] != -0.25 {
		t.Errorf("read %d samples starting %v", len(out), out[:2])
	}
	if r.Position() != 100 {
		t.Errorf("Position() = %d, want 100", r.Position())
	}
}

func TestFromStreamer_Mono(t *testing.T) {
	t.Parallel()

	up := ToStreamer(audiotest.NewRampReader(8000, 2, 10))
	r := FromStreamer(up, beep.Format{SampleRate: 8000, NumChannels: 1})

	dst := make([]float32, 4)
	if n, err := r.Read(dst); n != 4 || err != nil {
		t.Fatalf("Read() = %d, %v", n, err)
	}
	if math.Abs(float64(dst[3])-3.05) > 1e-6 {
		t.Errorf("downmixed sample = %v, want 3.05", dst[3])
	}
}

func TestFromStreamer_RoundTrip(t *testing.T) {
	t.Parallel()

	up := ToStreamer(audiotest.NewRampReader(8000, 2, 10))
	r := FromStreamer(up, up.Format())
	if !r.Seekable() || r.Length() != 10 {
		t.Fatalf("Seekable() = %v, Length() = %d", r.Seekable(), r.Length())
	}

	if err := r.Seek(6); err != nil {
		t.Fatal(err)
	}
	out, err := audiotest.ReadAll(r, 3, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 8 || out[0] != 6 || math.Abs(float64(out[1])-6.1) > 1e-6 {
		t.Errorf("after Seek read %v", out)
	}
}

func TestFromStreamer_Error(t *testing.T) {
	t.Parallel()

	failing := audiotest.NewRampReader(8000, 1, 100)
	failing.FailAfter = 1
	r := FromStreamer(ToStreamer(failing), beep.Format{SampleRate: 8000, NumChannels: 2})

	dst := make([]float32, 20)
	if _, err := r.Read(dst); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Read(dst); !errors.Is(err, audiotest.ErrInjected) {
		t.Errorf("Read() error = %v, want ErrInjected", err)
	}
}
