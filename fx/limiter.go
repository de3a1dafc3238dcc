// SPDX-License-Identifier: EPL-2.0

package fx

import (
	"errors"
	"io"

	"github.com/ik5/audmix/audio"
)

const skipChunk = 1024

// LimiterReader restricts its upstream to the [start, end) seconds window.
type LimiterReader struct {
	audio.EffectReader

	start float64
	end   float64 // negative means unbounded
}

// NewLimiterReader positions r at start seconds, seeking when possible and
// reading and discarding otherwise.
func NewLimiterReader(r audio.Reader, start, end float64) (*LimiterReader, error) {
	l := &LimiterReader{
		EffectReader: audio.NewEffectReader(r),
		start:        max(start, 0),
		end:          end,
	}
	if l.start == 0 {
		return l, nil
	}

	specs := r.Specs()
	if r.Seekable() {
		if err := r.Seek(int(l.start * specs.Rate)); err != nil {
			return nil, err
		}
		return l, nil
	}

	buf := audio.NewBuffer(specs.Samples(skipChunk))
	for left := int(l.start * specs.Rate); left > 0; {
		chunk := min(left, skipChunk)
		n, err := r.Read(buf.Samples()[:specs.Samples(chunk)])
		left -= n
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		// The upstream may change format mid-stream; keep counting in
		// seconds.
		next := r.Specs()
		if next.Rate != specs.Rate {
			left = int(float64(left) * next.Rate / specs.Rate)
		}
		if next.Channels != specs.Channels {
			buf.AssureSize(next.Samples(skipChunk), false)
		}
		specs = next
	}
	return l, nil
}

func (r *LimiterReader) startFrame() int {
	return int(r.start * r.Specs().Rate)
}

func (r *LimiterReader) Seek(position int) error {
	return r.Upstream().Seek(max(position, 0) + r.startFrame())
}

func (r *LimiterReader) Length() int {
	l := r.Upstream().Length()
	if r.end >= 0 {
		end := int(r.end * r.Specs().Rate)
		if l < 0 || end < l {
			l = end
		}
	}
	if l < 0 {
		return l
	}
	return max(l-r.startFrame(), 0)
}

func (r *LimiterReader) Position() int {
	return max(r.Upstream().Position()-r.startFrame(), 0)
}

func (r *LimiterReader) Read(dst []float32) (int, error) {
	specs := r.Specs()
	frames := specs.Frames(len(dst))
	bounded := false

	if r.end >= 0 {
		left := int(r.end*specs.Rate) - r.Upstream().Position()
		if left <= 0 {
			return 0, io.EOF
		}
		if left <= frames {
			frames = left
			bounded = true
		}
	}

	n, err := r.Upstream().Read(dst[:specs.Samples(frames)])
	if err == nil && bounded && n == frames {
		err = io.EOF
	}
	return n, err
}
