// SPDX-License-Identifier: EPL-2.0

package device

import (
	"math"
	"sort"

	"github.com/ik5/audmix/audio"
)

const lfe = math.MaxFloat64

// speakers holds the azimuth in degrees of every channel per layout, with
// lfe marking the low frequency channel. Positive angles are to the right.
var speakers = map[audio.Channels][]float64{
	audio.ChannelsMono:       {0},
	audio.ChannelsStereo:     {-90, 90},
	audio.ChannelsStereoLFE:  {-90, 90, lfe},
	audio.ChannelsSurround4:  {-45, 45, -135, 135},
	audio.ChannelsSurround5:  {-30, 30, 0, -110, 110},
	audio.ChannelsSurround51: {-30, 30, 0, lfe, -110, 110},
	audio.ChannelsSurround61: {-30, 30, 0, lfe, 180, -90, 90},
	audio.ChannelsSurround71: {-30, 30, 0, lfe, -150, 150, -90, 90},
}

// ChannelMapperReader converts its upstream to a target channel layout.
// A mono upstream is panned by a mono angle with constant power; other
// layouts are placed speaker by speaker.
type ChannelMapperReader struct {
	audio.EffectReader

	target    audio.Channels
	monoAngle float64 // radians

	source audio.Channels
	matrix []float32 // target x source
	buf    *audio.Buffer
}

func NewChannelMapperReader(r audio.Reader, target audio.Channels) *ChannelMapperReader {
	return &ChannelMapperReader{
		EffectReader: audio.NewEffectReader(r),
		target:       target,
		buf:          audio.NewBuffer(0),
	}
}

func (r *ChannelMapperReader) Specs() audio.Specs {
	specs := r.Upstream().Specs()
	specs.Channels = r.target
	return specs
}

// SetChannels changes the target layout.
func (r *ChannelMapperReader) SetChannels(target audio.Channels) {
	if target != r.target {
		r.target = target
		r.matrix = nil
	}
}

// SetMonoAngle sets where a mono upstream is placed, in radians. 0 is
// straight ahead and π/2 is hard right.
func (r *ChannelMapperReader) SetMonoAngle(angle float64) {
	if math.IsNaN(angle) {
		return
	}
	if angle != r.monoAngle {
		r.monoAngle = angle
		if r.source == audio.ChannelsMono {
			r.matrix = nil
		}
	}
}

func (r *ChannelMapperReader) MonoAngle() float64 { return r.monoAngle }

func (r *ChannelMapperReader) Read(dst []float32) (int, error) {
	source := r.Upstream().Specs().Channels
	if source == r.target {
		r.source = source
		return r.Upstream().Read(dst)
	}
	if source != r.source || r.matrix == nil {
		r.source = source
		r.matrix = channelMatrix(source, r.target, r.monoAngle)
	}

	in, out := int(source), int(r.target)
	frames := len(dst) / out
	r.buf.AssureSize(frames*in, false)
	src := r.buf.Samples()[:frames*in]

	n, err := r.Upstream().Read(src)
	for f := range n {
		sf := src[f*in : f*in+in]
		df := dst[f*out : f*out+out]
		for o := range df {
			row := r.matrix[o*in : o*in+in]
			var v float32
			for i, s := range sf {
				v += row[i] * s
			}
			df[o] = v
		}
	}
	return n, err
}

// channelMatrix returns the out x in mixing weights.
func channelMatrix(in, out audio.Channels, monoAngle float64) []float32 {
	ni, no := int(in), int(out)
	m := make([]float32, no*ni)

	inPos, outPos := speakers[in], speakers[out]
	if inPos == nil || outPos == nil {
		// Unknown layout: map by index.
		for i := range min(ni, no) {
			m[i*ni+i] = 1
		}
		return m
	}

	if out == audio.ChannelsMono {
		count := 0
		for _, a := range inPos {
			if a != lfe {
				count++
			}
		}
		for i, a := range inPos {
			if a != lfe {
				m[i] = 1 / float32(count)
			}
		}
		return m
	}

	pan := newPanner(outPos)
	for i, a := range inPos {
		if a == lfe {
			for o, b := range outPos {
				if b == lfe {
					m[o*ni+i] = 1
				}
			}
			continue
		}
		angle := a * math.Pi / 180
		if in == audio.ChannelsMono {
			angle = monoAngle
		}
		for o, w := range pan.weights(angle) {
			m[o*ni+i] += float32(w)
		}
	}
	return m
}

type panSpeaker struct {
	index   int
	azimuth float64 // radians
}

// panner spreads a source between the two output speakers around it.
type panner struct {
	channels int
	ring     []panSpeaker // sorted by azimuth
}

func newPanner(layout []float64) panner {
	p := panner{channels: len(layout)}
	for i, a := range layout {
		if a != lfe {
			p.ring = append(p.ring, panSpeaker{index: i, azimuth: a * math.Pi / 180})
		}
	}
	sort.Slice(p.ring, func(a, b int) bool { return p.ring[a].azimuth < p.ring[b].azimuth })
	return p
}

func (p panner) weights(angle float64) []float64 {
	w := make([]float64, p.channels)
	if len(p.ring) == 1 {
		w[p.ring[0].index] = 1
		return w
	}

	angle = math.Remainder(angle, 2*math.Pi)
	if angle < p.ring[0].azimuth {
		angle += 2 * math.Pi
	}

	k := len(p.ring) - 1
	for i := range len(p.ring) - 1 {
		if angle < p.ring[i+1].azimuth {
			k = i
			break
		}
	}
	from := p.ring[k]
	to := p.ring[(k+1)%len(p.ring)]
	toAzimuth := to.azimuth
	if k == len(p.ring)-1 {
		toAzimuth += 2 * math.Pi
	}

	frac := (angle - from.azimuth) / (toAzimuth - from.azimuth)
	w[from.index] += math.Cos(frac * math.Pi / 2)
	w[to.index] += math.Sin(frac * math.Pi / 2)
	return w
}
