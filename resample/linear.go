// SPDX-License-Identifier: EPL-2.0

package resample

import (
	"errors"
	"io"
	"math"

	"github.com/ik5/audmix/audio"
)

func isEOF(err error) bool { return errors.Is(err, io.EOF) }

// LinearReader resamples by linear interpolation between the two input
// frames around each output position.
type LinearReader struct {
	base
}

func NewLinear(r audio.Reader, rate float64) *LinearReader {
	return &LinearReader{base: newBase(r, rate)}
}

func (r *LinearReader) Read(dst []float32) (int, error) {
	specs := r.Upstream().Specs()
	r.checkChannels(specs)
	ch := r.channels
	frames := len(dst) / ch
	if frames == 0 {
		return 0, nil
	}
	factor := r.rate / specs.Rate

	if factor == 1 && r.p == 0 && r.n <= r.valid {
		// Aligned on an input frame: copy straight through.
		k := r.drain(dst[:frames*ch])
		if k < frames && !r.eos {
			n, err := r.Upstream().Read(dst[k*ch : frames*ch])
			k += n
			if isEOF(err) {
				r.eos = true
			} else if err != nil {
				return k, err
			}
			r.valid, r.n = 0, 0
		}
		if r.done() {
			return k, io.EOF
		}
		return k, nil
	}

	r.trim(0)
	need := r.n + int(math.Ceil(r.p+float64(frames-1)/factor)) + 2
	if err := r.fill(need); err != nil {
		return 0, err
	}

	s := r.cache.Samples()
	step := 1 / factor
	out := 0
	for ; out < frames; out++ {
		if r.n >= r.valid {
			break
		}
		next := r.n + 1
		if next >= r.valid {
			if !r.eos {
				break
			}
			// Past the last frame there is nothing to interpolate towards.
			next = r.n
		}

		frac := float32(r.p)
		lo := s[r.n*ch : r.n*ch+ch]
		hi := s[next*ch : next*ch+ch]
		o := dst[out*ch : out*ch+ch]
		for c := range o {
			o[c] = lo[c] + frac*(hi[c]-lo[c])
		}

		r.p += step
		adv := math.Floor(r.p)
		r.n += int(adv)
		r.p -= adv
	}

	if r.done() {
		return out, io.EOF
	}
	return out, nil
}
