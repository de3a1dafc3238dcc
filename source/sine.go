// SPDX-License-Identifier: EPL-2.0

package source

import (
	"math"

	"github.com/ik5/audmix/audio"
)

// SineReader generates an endless mono sine wave.
type SineReader struct {
	frequency float64
	rate      float64
	position  int
}

func NewSineReader(frequency, rate float64) *SineReader {
	return &SineReader{frequency: frequency, rate: rate}
}

func (r *SineReader) Seekable() bool { return true }

func (r *SineReader) Seek(position int) error {
	r.position = max(position, 0)
	return nil
}

func (r *SineReader) Length() int   { return -1 }
func (r *SineReader) Position() int { return r.position }

func (r *SineReader) Specs() audio.Specs {
	return audio.Specs{Rate: r.rate, Channels: audio.ChannelsMono}
}

func (r *SineReader) Read(dst []float32) (int, error) {
	k := 2 * math.Pi * r.frequency / r.rate
	for i := range dst {
		dst[i] = float32(math.Sin(float64(r.position+i) * k))
	}
	r.position += len(dst)
	return len(dst), nil
}

// Sine returns a Sound producing an endless sine wave.
func Sine(frequency, rate float64) audio.Sound {
	return audio.SoundFunc(func() (audio.Reader, error) {
		return NewSineReader(frequency, rate), nil
	})
}

// SilenceReader generates endless mono silence.
type SilenceReader struct {
	rate     float64
	position int
}

func NewSilenceReader(rate float64) *SilenceReader {
	return &SilenceReader{rate: rate}
}

func (r *SilenceReader) Seekable() bool { return true }

func (r *SilenceReader) Seek(position int) error {
	r.position = max(position, 0)
	return nil
}

func (r *SilenceReader) Length() int   { return -1 }
func (r *SilenceReader) Position() int { return r.position }

func (r *SilenceReader) Specs() audio.Specs {
	return audio.Specs{Rate: r.rate, Channels: audio.ChannelsMono}
}

func (r *SilenceReader) Read(dst []float32) (int, error) {
	clear(dst)
	r.position += len(dst)
	return len(dst), nil
}

// Silence returns a Sound producing endless silence.
func Silence(rate float64) audio.Sound {
	return audio.SoundFunc(func() (audio.Reader, error) {
		return NewSilenceReader(rate), nil
	})
}
