// SPDX-License-Identifier: EPL-2.0

package fx

import "github.com/ik5/audmix/audio"

// FadeType selects the fade direction.
type FadeType int

const (
	FadeTypeIn FadeType = iota
	FadeTypeOut
)

func (t FadeType) String() string {
	if t == FadeTypeOut {
		return "fade-out"
	}
	return "fade-in"
}

// FaderReader applies a linear volume ramp over [start, start+length)
// seconds of absolute stream time.
type FaderReader struct {
	audio.EffectReader

	typ    FadeType
	start  float64
	length float64
}

// NewFaderReader fades r. A non-positive length makes the fade a step at start.
func NewFaderReader(r audio.Reader, typ FadeType, start, length float64) *FaderReader {
	return &FaderReader{
		EffectReader: audio.NewEffectReader(r),
		typ:          typ,
		start:        start,
		length:       length,
	}
}

// gain returns the volume at t seconds.
func (r *FaderReader) gain(t float64) float32 {
	var v float64
	switch {
	case t < r.start:
		v = 0
	case r.length <= 0 || t >= r.start+r.length:
		v = 1
	default:
		v = (t - r.start) / r.length
	}
	if r.typ == FadeTypeOut {
		v = 1 - v
	}
	return float32(v)
}

func (r *FaderReader) Read(dst []float32) (int, error) {
	position := r.Upstream().Position()
	n, err := r.Upstream().Read(dst)

	specs := r.Specs()
	channels := int(specs.Channels)
	for i := range n {
		g := r.gain(float64(position+i) / specs.Rate)
		if g == 1 {
			continue
		}
		frame := dst[i*channels : (i+1)*channels]
		for ch := range frame {
			frame[ch] *= g
		}
	}
	return n, err
}
