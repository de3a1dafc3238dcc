// SPDX-License-Identifier: EPL-2.0

package device

import (
	"math"
	"testing"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/internal/audiotest"
)

func TestChannelMapper_MonoPan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		angle       float64
		left, right float64
	}{
		{"center", 0, math.Sqrt2 / 2, math.Sqrt2 / 2},
		{"hard right", math.Pi / 2, 0, 1},
		{"hard left", -math.Pi / 2, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := NewChannelMapperReader(audiotest.NewConstantReader(100, 1, 4, 1), audio.ChannelsStereo)
			m.SetMonoAngle(tt.angle)

			dst := make([]float32, 8)
			n, err := m.Read(dst)
			if n != 4 || err == nil {
				t.Fatalf("Read() = %d, %v; want 4, io.EOF", n, err)
			}
			if !approx(float64(dst[0]), tt.left, 1e-6) || !approx(float64(dst[1]), tt.right, 1e-6) {
				t.Errorf("frame 0 = [%v %v], want [%v %v]", dst[0], dst[1], tt.left, tt.right)
			}
		})
	}
}

func TestChannelMapper_ConstantPower(t *testing.T) {
	t.Parallel()

	for angle := -math.Pi; angle <= math.Pi; angle += 0.1 {
		w := channelMatrix(audio.ChannelsMono, audio.ChannelsSurround51, angle)
		var power float64
		for _, v := range w {
			power += float64(v) * float64(v)
		}
		if !approx(power, 1, 1e-5) {
			t.Errorf("angle %.2f: power = %v, want 1", angle, power)
		}
		if w[3] != 0 {
			t.Errorf("angle %.2f: LFE weight = %v, want 0", angle, w[3])
		}
	}
}

func TestChannelMapper_Downmix(t *testing.T) {
	t.Parallel()

	up := audiotest.NewMockReader(100, 2, 2, func(_, ch int) float32 {
		return float32(ch + 1)
	})
	m := NewChannelMapperReader(up, audio.ChannelsMono)
	if got := m.Specs().Channels; got != audio.ChannelsMono {
		t.Fatalf("Specs().Channels = %v, want mono", got)
	}

	dst := make([]float32, 2)
	if n, _ := m.Read(dst); n != 2 {
		t.Fatalf("Read() = %d frames, want 2", n)
	}
	if dst[0] != 1.5 || dst[1] != 1.5 {
		t.Errorf("out = %v, want [1.5 1.5]", dst)
	}
}

func TestChannelMapper_StereoToSurround(t *testing.T) {
	t.Parallel()

	w := channelMatrix(audio.ChannelsStereo, audio.ChannelsSurround51, 0)
	// Left at -90 degrees sits between front left (0) and rear left (4);
	// right mirrors it onto 1 and 5.
	speakersOf := map[int][]int{0: {0, 4}, 1: {1, 5}}
	for in, outs := range speakersOf {
		var power float64
		for o := range 6 {
			v := float64(w[o*2+in])
			power += v * v
			if v != 0 && o != outs[0] && o != outs[1] {
				t.Errorf("input %d leaks into output %d: %v", in, o, v)
			}
		}
		if !approx(power, 1, 1e-5) {
			t.Errorf("input %d: power = %v, want 1", in, power)
		}
	}
}

func TestChannelMapper_Passthrough(t *testing.T) {
	t.Parallel()

	up := audiotest.NewRampReader(100, 2, 3)
	m := NewChannelMapperReader(up, audio.ChannelsStereo)
	m.SetMonoAngle(1)

	out, err := audiotest.ReadAll(m, 2, 0)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	for i, v := range out {
		want := float32(i/2) + float32(i%2)/10
		if v != want {
			t.Fatalf("out[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestChannelMapper_Retarget(t *testing.T) {
	t.Parallel()

	m := NewChannelMapperReader(audiotest.NewConstantReader(100, 1, -1, 1), audio.ChannelsStereo)
	m.SetChannels(audio.ChannelsSurround4)
	if got := m.Specs().Channels; got != audio.ChannelsSurround4 {
		t.Fatalf("Specs().Channels = %v, want %v", got, audio.ChannelsSurround4)
	}

	dst := make([]float32, 4*4)
	if n, err := m.Read(dst); n != 4 || err != nil {
		t.Fatalf("Read() = %d, %v", n, err)
	}
	// Straight ahead sits between front left and front right.
	if !approx(float64(dst[0]), float64(dst[1]), 1e-6) || dst[2] != 0 || dst[3] != 0 {
		t.Errorf("frame 0 = %v", dst[:4])
	}
}
