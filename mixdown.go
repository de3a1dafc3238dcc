// SPDX-License-Identifier: EPL-2.0

package audmix

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/device"
	"github.com/ik5/audmix/formats/wav"
	"github.com/ik5/audmix/resample"
)

const (
	DefaultBitDepth    = 16
	DefaultChunkFrames = 4096
)

// MixdownOptions configures Render and Mixdown. Zero fields take their
// defaults.
type MixdownOptions struct {
	// Specs is the output format, 44100 Hz stereo by default.
	Specs audio.Specs
	// Quality selects the resampler, resample.QualityMedium by default.
	Quality resample.Quality
	// BitDepth is the WAV sample size: 16, 24 or 32.
	BitDepth int
	// ChunkFrames is the number of frames mixed per device cycle.
	ChunkFrames int
	// Logger is handed to the private device.
	Logger *log.Logger
}

func (o MixdownOptions) withDefaults() MixdownOptions {
	if o.Specs.Rate == 0 {
		o.Specs.Rate = device.DefaultRate
	}
	if o.Specs.Channels == audio.ChannelsInvalid {
		o.Specs.Channels = audio.ChannelsStereo
	}
	if o.BitDepth == 0 {
		o.BitDepth = DefaultBitDepth
	}
	if o.ChunkFrames <= 0 {
		o.ChunkFrames = DefaultChunkFrames
	}
	return o
}

// errTrap records the first failure of its upstream. The device only logs
// read errors, so the renderer checks the trap after every cycle.
type errTrap struct {
	audio.EffectReader
	err error
}

func (t *errTrap) Read(dst []float32) (int, error) {
	n, err := t.Upstream().Read(dst)
	if err != nil && !errors.Is(err, io.EOF) && t.err == nil {
		t.err = err
	}
	return n, err
}

// renderReader pulls a private device until its only voice has ended.
type renderReader struct {
	dev      *device.Device
	trap     *errTrap
	specs    audio.Specs
	chunk    int
	length   int
	position int
	done     bool
}

// Render plays s on a private Device with the options' format and returns
// the mixed output as a non-seekable Reader. When s reports a length the
// output is cut to that length converted to the output rate; otherwise it
// ends in the cycle the voice finishes.
func Render(s audio.Sound, opts MixdownOptions) (audio.Reader, error) {
	opts = opts.withDefaults()

	r, err := s.CreateReader()
	if err != nil {
		return nil, err
	}
	dev, err := device.New(device.Options{Specs: opts.Specs, Quality: opts.Quality, Logger: opts.Logger})
	if err != nil {
		return nil, err
	}

	length := -1
	if l := r.Length(); l >= 0 {
		length = int(math.Ceil(float64(l) * opts.Specs.Rate / r.Specs().Rate))
	}

	trap := &errTrap{EffectReader: audio.NewEffectReader(r)}
	if _, err := dev.Play(trap, false); err != nil {
		return nil, err
	}
	return &renderReader{
		dev:    dev,
		trap:   trap,
		specs:  opts.Specs,
		chunk:  opts.ChunkFrames,
		length: length,
	}, nil
}

func (r *renderReader) Seekable() bool     { return false }
func (r *renderReader) Seek(int) error     { return audio.ErrNotSeekable }
func (r *renderReader) Length() int        { return r.length }
func (r *renderReader) Position() int      { return r.position }
func (r *renderReader) Specs() audio.Specs { return r.specs }

func (r *renderReader) Read(dst []float32) (int, error) {
	if r.done {
		return 0, io.EOF
	}
	ch := int(r.specs.Channels)
	frames := min(len(dst)/ch, r.chunk)
	if r.length >= 0 {
		frames = min(frames, r.length-r.position)
	}
	if frames > 0 {
		r.dev.Mix(dst[:frames*ch])
		r.position += frames
	}

	if r.trap.err != nil {
		r.done = true
		return frames, fmt.Errorf("render: %w", r.trap.err)
	}
	if r.dev.Playing() == 0 || (r.length >= 0 && r.position >= r.length) {
		r.done = true
		return frames, io.EOF
	}
	return frames, nil
}

// Mixdown renders s and writes it to w as a PCM WAV file. It returns the
// number of frames written.
func Mixdown(w io.WriteSeeker, s audio.Sound, opts MixdownOptions) (int, error) {
	opts = opts.withDefaults()
	switch opts.BitDepth {
	case 16, 24, 32:
	default:
		return 0, fmt.Errorf("%w: %d", wav.ErrUnsupportedBitDepth, opts.BitDepth)
	}

	r, err := Render(s, opts)
	if err != nil {
		return 0, err
	}
	return wav.Encode(w, r, opts.BitDepth)
}
