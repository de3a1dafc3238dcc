// SPDX-License-Identifier: EPL-2.0

package fx

import (
	"errors"
	"io"

	"github.com/ik5/audmix/audio"
)

// LoopReader plays its upstream once and then count more times, rewinding
// it to 0 at every end of stream. A negative count loops forever.
type LoopReader struct {
	audio.EffectReader

	count  int
	left   int
	passes int // completed passes, for Position
}

// NewLoopReader loops r count extra times.
func NewLoopReader(r audio.Reader, count int) *LoopReader {
	return &LoopReader{
		EffectReader: audio.NewEffectReader(r),
		count:        count,
		left:         count,
	}
}

// Length reports upstream length times count, or -1 when the loop is
// endless or the upstream length is unknown.
func (r *LoopReader) Length() int {
	l := r.Upstream().Length()
	if r.count < 0 || l < 0 {
		return -1
	}
	return l * r.count
}

func (r *LoopReader) Position() int {
	l := r.Upstream().Length()
	if l < 0 {
		return r.Upstream().Position()
	}
	return r.passes*l + r.Upstream().Position()
}

func (r *LoopReader) Seek(position int) error {
	position = max(position, 0)
	l := r.Upstream().Length()
	if l <= 0 {
		return r.Upstream().Seek(position)
	}

	r.passes = position / l
	if r.count >= 0 {
		r.left = max(r.count-r.passes, 0)
		r.passes = min(r.passes, r.count)
	}
	return r.Upstream().Seek(position - r.passes*l)
}

func (r *LoopReader) Read(dst []float32) (int, error) {
	n, err := r.Upstream().Read(dst)

	for errors.Is(err, io.EOF) && r.left != 0 {
		if r.left > 0 {
			r.left--
		}
		r.passes++
		if serr := r.Upstream().Seek(0); serr != nil {
			return n, serr
		}

		specs := r.Specs()
		if n >= specs.Frames(len(dst)) {
			return n, nil
		}

		var m int
		m, err = r.Upstream().Read(dst[specs.Samples(n):])
		if m == 0 {
			// An empty pass would spin forever.
			return n, err
		}
		n += m
	}
	return n, err
}
