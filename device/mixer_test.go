// SPDX-License-Identifier: EPL-2.0

package device

import (
	"math"
	"testing"

	"github.com/ik5/audmix/audio"
)

func approx(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestMixer_Ramp(t *testing.T) {
	t.Parallel()

	m := NewMixer(audio.Specs{Rate: 100, Channels: audio.ChannelsMono})
	m.Clear(4)
	m.Mix([]float32{1, 1, 1, 1}, 0, 4, 1, 0)

	out := make([]float32, 4)
	m.Read(out, 1)

	want := []float64{0.25, 0.5, 0.75, 1}
	for i, w := range want {
		if !approx(float64(out[i]), w, 1e-6) {
			t.Errorf("out[%d] = %v, want %v", i, out[i], w)
		}
	}
}

func TestMixer_SplitRampIsContinuous(t *testing.T) {
	t.Parallel()

	specs := audio.Specs{Rate: 100, Channels: audio.ChannelsStereo}
	whole := NewMixer(specs)
	whole.Clear(8)
	whole.Mix(fill(16, 1), 0, 8, 1, 0)

	split := NewMixer(specs)
	split.Clear(8)
	split.Mix(fill(6, 1), 0, 3, 3.0/8, 0)
	split.Mix(fill(10, 1), 3, 5, 1, 3.0/8)

	a, b := make([]float32, 16), make([]float32, 16)
	whole.Read(a, 1)
	split.Read(b, 1)
	for i := range a {
		if !approx(float64(a[i]), float64(b[i]), 1e-6) {
			t.Fatalf("sample %d: split %v, whole %v", i, b[i], a[i])
		}
	}
}

func TestMixer_SumAndMasterVolume(t *testing.T) {
	t.Parallel()

	m := NewMixer(audio.Specs{Rate: 100, Channels: audio.ChannelsMono})
	m.Clear(3)
	m.Mix([]float32{0.5, 0.5, 0.5}, 0, 3, 1, 1)
	m.Mix([]float32{0.25, 0.25}, 1, 2, 1, 1)

	out := []float32{9, 9, 9, 9, 9}
	m.Read(out, 0.5)

	want := []float32{0.25, 0.375, 0.375, 0, 0}
	for i, w := range want {
		if out[i] != w {
			t.Errorf("out[%d] = %v, want %v", i, out[i], w)
		}
	}
}

func TestMixer_ClampsToClearedLength(t *testing.T) {
	t.Parallel()

	m := NewMixer(audio.Specs{Rate: 100, Channels: audio.ChannelsMono})
	m.Clear(2)
	m.Mix([]float32{1, 1, 1, 1}, 1, 4, 1, 1)
	m.Mix([]float32{1}, -1, 1, 1, 1)

	out := make([]float32, 2)
	m.Read(out, 1)
	if out[0] != 0 || out[1] != 1 {
		t.Errorf("out = %v, want [0 1]", out)
	}
}

func fill(n int, v float32) []float32 {
	s := make([]float32, n)
	for i := range s {
		s[i] = v
	}
	return s
}

func BenchmarkMixer_Mix(b *testing.B) {
	m := NewMixer(audio.Specs{Rate: 44100, Channels: audio.ChannelsStereo})
	buf := fill(2048, 0.5)
	out := make([]float32, 2048)

	b.ReportAllocs()
	for b.Loop() {
		m.Clear(1024)
		m.Mix(buf, 0, 1024, 0.8, 0.6)
		m.Read(out, 1)
	}
}
