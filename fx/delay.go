// SPDX-License-Identifier: EPL-2.0

package fx

import (
	"math"

	"github.com/ik5/audmix/audio"
)

// DelayReader prepends silence to its upstream.
type DelayReader struct {
	audio.EffectReader

	delay     int // frames
	remaining int
}

// NewDelayReader delays r by seconds, rounded to whole frames at r's rate.
func NewDelayReader(r audio.Reader, seconds float64) *DelayReader {
	delay := max(int(math.Round(seconds*r.Specs().Rate)), 0)
	return &DelayReader{
		EffectReader: audio.NewEffectReader(r),
		delay:        delay,
		remaining:    delay,
	}
}

func (r *DelayReader) Seek(position int) error {
	if position < r.delay {
		r.remaining = r.delay - max(position, 0)
		return r.Upstream().Seek(0)
	}
	r.remaining = 0
	return r.Upstream().Seek(position - r.delay)
}

func (r *DelayReader) Length() int {
	l := r.Upstream().Length()
	if l < 0 {
		return l
	}
	return l + r.delay
}

func (r *DelayReader) Position() int {
	if r.remaining > 0 {
		return r.delay - r.remaining
	}
	return r.Upstream().Position() + r.delay
}

func (r *DelayReader) Read(dst []float32) (int, error) {
	if r.remaining <= 0 {
		return r.Upstream().Read(dst)
	}

	specs := r.Specs()
	frames := specs.Frames(len(dst))
	silent := min(frames, r.remaining)
	clear(dst[:specs.Samples(silent)])
	r.remaining -= silent
	if silent == frames {
		return silent, nil
	}

	n, err := r.Upstream().Read(dst[specs.Samples(silent):specs.Samples(frames)])
	return silent + n, err
}
