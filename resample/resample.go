// SPDX-License-Identifier: EPL-2.0

package resample

import (
	"math"

	"github.com/ik5/audmix/audio"
)

// Reader is a resampling audio.Reader with an adjustable target rate.
type Reader interface {
	audio.Reader
	Rate() float64
	SetRate(rate float64)
}

// New wraps r in the resampler selected by q.
func New(r audio.Reader, rate float64, q Quality) Reader {
	if q == QualityDefault {
		q = QualityMedium
	}
	if q == QualityFastest {
		return NewLinear(r, rate)
	}
	return NewJOS(r, rate, q)
}

// base carries the state shared by both resamplers: the target rate and a
// staging cache of upstream frames with a fractional read position.
type base struct {
	audio.EffectReader

	rate float64

	cache    *audio.Buffer
	channels int
	valid    int     // frames staged in cache
	n        int     // index of the frame at the current position
	p        float64 // phase past n, in [0, 1)
	eos      bool    // upstream reported io.EOF
}

func newBase(r audio.Reader, rate float64) base {
	return base{
		EffectReader: audio.NewEffectReader(r),
		rate:         rate,
		cache:        audio.NewBuffer(0),
		channels:     int(r.Specs().Channels),
	}
}

func (b *base) Rate() float64 { return b.rate }

// SetRate changes the target rate. Values <= 0 are ignored.
func (b *base) SetRate(rate float64) {
	if rate > 0 {
		b.rate = rate
	}
}

func (b *base) Specs() audio.Specs {
	specs := b.Upstream().Specs()
	specs.Rate = b.rate
	return specs
}

func (b *base) factor() float64 {
	return b.rate / b.Upstream().Specs().Rate
}

func (b *base) Length() int {
	l := b.Upstream().Length()
	if l < 0 {
		return l
	}
	return int(math.Floor(float64(l) * b.factor()))
}

// Position derives the output position from what has been consumed from the
// upstream, so it stays right across rate changes.
func (b *base) Position() int {
	consumed := float64(b.Upstream().Position()-b.valid+b.n) + b.p
	return int(math.Floor(consumed*b.factor() + 1e-6))
}

func (b *base) Seek(position int) error {
	target := int(math.Floor(float64(position) / b.factor()))
	if err := b.Upstream().Seek(target); err != nil {
		return err
	}
	b.reset()
	return nil
}

func (b *base) reset() {
	b.valid = 0
	b.n = 0
	b.p = 0
	b.eos = false
}

// checkChannels resets the state when the upstream changed its layout.
func (b *base) checkChannels(specs audio.Specs) bool {
	if int(specs.Channels) == b.channels {
		return false
	}
	b.channels = int(specs.Channels)
	b.reset()
	return true
}

// trim drops staged frames more than keep frames before n. A step can leave
// n past valid when downsampling; the overshoot stays in n and the frames it
// covers are skipped once fill stages them.
func (b *base) trim(keep int) {
	drop := min(b.n-keep, b.valid)
	if drop <= 0 {
		return
	}
	s := b.cache.Samples()
	copy(s, s[drop*b.channels:b.valid*b.channels])
	b.valid -= drop
	b.n -= drop
}

// fill reads upstream until want frames are staged, the upstream ends or it
// stops producing.
func (b *base) fill(want int) error {
	if b.eos || b.valid >= want {
		return nil
	}
	b.cache.AssureSize(want*b.channels, true)
	s := b.cache.Samples()
	for b.valid < want {
		n, err := b.Upstream().Read(s[b.valid*b.channels : want*b.channels])
		b.valid += n
		if err != nil {
			if isEOF(err) {
				b.eos = true
				return nil
			}
			return err
		}
		if n == 0 {
			return nil
		}
	}
	return nil
}

// drain copies already staged frames starting at n into dst and returns the
// number of frames copied.
func (b *base) drain(dst []float32) int {
	k := min(len(dst)/b.channels, b.valid-b.n)
	if k <= 0 {
		return 0
	}
	copy(dst, b.cache.Samples()[b.n*b.channels:(b.n+k)*b.channels])
	b.n += k
	return k
}

// done reports whether everything the upstream produced has been consumed.
func (b *base) done() bool {
	return b.eos && b.n >= b.valid
}
