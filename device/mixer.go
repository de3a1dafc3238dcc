// SPDX-License-Identifier: EPL-2.0

package device

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/ik5/audmix/audio"
)

// Mixer sums voices into a float64 accumulation buffer. It is owned by the
// goroutine running Device.Mix and is not safe for concurrent use.
type Mixer struct {
	specs  audio.Specs
	length int // frames cleared by the last Clear

	acc    []float64
	src    []float64
	ramp   []float64
	scaled []float64
}

func NewMixer(specs audio.Specs) *Mixer {
	return &Mixer{specs: specs}
}

func (m *Mixer) Specs() audio.Specs { return m.specs }

// SetSpecs reconfigures the mixer. It must not race with Mix.
func (m *Mixer) SetSpecs(specs audio.Specs) {
	m.specs = specs
	m.length = 0
}

func (m *Mixer) SetChannels(channels audio.Channels) {
	m.SetSpecs(audio.Specs{Rate: m.specs.Rate, Channels: channels})
}

func (m *Mixer) SetRate(rate float64) {
	m.SetSpecs(audio.Specs{Rate: rate, Channels: m.specs.Channels})
}

func grow(b []float64, n int) []float64 {
	if cap(b) < n {
		return make([]float64, n)
	}
	return b[:n]
}

// Clear zeroes the accumulation buffer for length frames.
func (m *Mixer) Clear(length int) {
	m.length = max(length, 0)
	m.acc = grow(m.acc, m.specs.Samples(m.length))
	clear(m.acc)
}

// Mix adds length frames of buf at frame start. The gain ramps linearly
// from oldVolume to volume: frame j gets
// oldVolume + (volume-oldVolume)*(j+1)/length, so the last frame reaches
// volume exactly.
func (m *Mixer) Mix(buf []float32, start, length int, volume, oldVolume float64) {
	length = min(length, m.length-start)
	if length <= 0 || start < 0 {
		return
	}
	ch := int(m.specs.Channels)
	n := length * ch

	m.src = grow(m.src, n)
	for i, v := range buf[:n] {
		m.src[i] = float64(v)
	}

	m.scaled = grow(m.scaled, n)
	if volume == oldVolume {
		vecmath.ScaleBlock(m.scaled, m.src, volume)
	} else {
		m.ramp = grow(m.ramp, n)
		delta := (volume - oldVolume) / float64(length)
		for j := range length {
			g := oldVolume + delta*float64(j+1)
			for c := range ch {
				m.ramp[j*ch+c] = g
			}
		}
		vecmath.MulBlock(m.scaled, m.src, m.ramp)
	}

	vecmath.AddBlockInPlace(m.acc[start*ch:start*ch+n], m.scaled)
}

// Read writes the accumulated frames scaled by volume into out and zeroes
// whatever of out lies past the cleared length.
func (m *Mixer) Read(out []float32, volume float64) {
	n := min(len(out), len(m.acc))
	m.scaled = grow(m.scaled, n)
	vecmath.ScaleBlock(m.scaled, m.acc[:n], volume)
	for i, v := range m.scaled {
		out[i] = float32(v)
	}
	clear(out[n:])
}
