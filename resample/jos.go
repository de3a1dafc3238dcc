// SPDX-License-Identifier: EPL-2.0

package resample

import (
	"io"
	"math"

	"github.com/ik5/audmix/audio"
)

// JOSReader is a band-limited resampler convolving the input with a
// windowed sinc. Up- and downsampling share one convolution: when
// downsampling the filter is stretched by the conversion factor so its
// cutoff follows the output Nyquist frequency.
type JOSReader struct {
	base

	filter     filter
	lastFactor float64
}

// NewJOS wraps r with the filter of quality q. QualityFastest selects the
// smallest table and QualityDefault the medium one.
func NewJOS(r audio.Reader, rate float64, q Quality) *JOSReader {
	f, ok := filters[q]
	switch {
	case ok:
	case q == QualityDefault:
		f = filters[QualityMedium]
	default:
		f = filters[QualityLow]
	}
	return &JOSReader{base: newBase(r, rate), filter: f}
}

func (r *JOSReader) Seek(position int) error {
	if err := r.base.Seek(position); err != nil {
		return err
	}
	r.lastFactor = 0
	return nil
}

// halfWidth is the filter half length in input frames at factor.
func (r *JOSReader) halfWidth(factor float64) float64 {
	return r.filter.width / min(factor, 1)
}

func (r *JOSReader) Read(dst []float32) (int, error) {
	specs := r.Upstream().Specs()
	if r.checkChannels(specs) {
		r.lastFactor = 0
	}
	ch := r.channels
	frames := len(dst) / ch
	if frames == 0 {
		return 0, nil
	}

	target := r.rate / specs.Rate
	if r.lastFactor == 0 {
		r.lastFactor = target
	}

	if target == 1 && r.lastFactor == 1 && r.p == 0 {
		return r.passthrough(dst[:frames*ch])
	}

	if err := r.updateBuffer(frames, target); err != nil {
		return 0, err
	}

	out := 0
	factor := r.lastFactor
	for ; out < frames; out++ {
		f := target
		if r.lastFactor != target {
			f = (r.lastFactor*float64(frames-out-1) + target*float64(out+1)) / float64(frames)
		}
		if r.n >= r.valid {
			break
		}
		if !r.eos && float64(r.n+1)+r.halfWidth(f) > float64(r.valid) {
			break
		}

		r.convolve(dst[out*ch:out*ch+ch], f)

		r.p += 1 / f
		adv := math.Floor(r.p)
		r.n += int(adv)
		r.p -= adv
		factor = f
	}
	r.lastFactor = factor

	if r.done() {
		return out, io.EOF
	}
	return out, nil
}

// passthrough copies input to output while keeping enough history for the
// filter in case the factor changes later.
func (r *JOSReader) passthrough(dst []float32) (int, error) {
	ch := r.channels
	frames := len(dst) / ch
	k := r.drain(dst)

	if k < frames && !r.eos {
		n, err := r.Upstream().Read(dst[k*ch:])
		if err != nil && !isEOF(err) {
			return k, err
		}
		if isEOF(err) {
			r.eos = true
		}

		// drain consumed every staged frame, so the tail of what was just
		// read becomes the history behind the new position.
		keep := int(math.Ceil(r.halfWidth(1))) + 1
		hist := min(n, keep)
		r.cache.AssureSize((r.valid+hist)*ch, true)
		copy(r.cache.Samples()[r.valid*ch:], dst[(k+n-hist)*ch:(k+n)*ch])
		r.valid += hist
		r.n = r.valid
		r.trim(keep)
		k += n
	}

	if r.done() {
		return k, io.EOF
	}
	return k, nil
}

// updateBuffer drops history the filter no longer reaches and stages enough
// lookahead to produce frames outputs.
func (r *JOSReader) updateBuffer(frames int, target float64) error {
	fmin := min(r.lastFactor, target)
	width := r.halfWidth(fmin)

	r.trim(int(math.Ceil(width)) + 1)

	need := int(math.Ceil(float64(r.n)+r.p+float64(frames-1)/fmin+width)) + 2
	return r.fill(need)
}

// convolve writes the output frame at the current position into o.
func (r *JOSReader) convolve(o []float32, factor float64) {
	ch := r.channels
	scale := min(factor, 1)
	step := r.filter.step * scale
	limit := r.filter.tableLen()
	coeff := r.filter.coeff
	s := r.cache.Samples()

	var acc [audio.MaxChannels]float64

	// Left wing: x[n], x[n-1], ... at distances p, p+1, ...
	for k := 0; k <= r.n; k++ {
		pos := (r.p + float64(k)) * step
		if pos >= limit {
			break
		}
		w := tap(coeff, pos)
		frame := s[(r.n-k)*ch : (r.n-k)*ch+ch]
		for c, v := range frame {
			acc[c] += w * float64(v)
		}
	}

	// Right wing: x[n+1], x[n+2], ... at distances 1-p, 2-p, ...
	for k := 0; r.n+1+k < r.valid; k++ {
		pos := (float64(k+1) - r.p) * step
		if pos >= limit {
			break
		}
		w := tap(coeff, pos)
		frame := s[(r.n+1+k)*ch : (r.n+1+k)*ch+ch]
		for c, v := range frame {
			acc[c] += w * float64(v)
		}
	}

	for c := range o {
		o[c] = float32(acc[c] * scale)
	}
}

// tap linearly interpolates the table at a fractional index.
func tap(coeff []float32, pos float64) float64 {
	i := int(pos)
	eta := pos - float64(i)
	return float64(coeff[i]) + eta*float64(coeff[i+1]-coeff[i])
}
