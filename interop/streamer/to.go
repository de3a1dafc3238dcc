// SPDX-License-Identifier: EPL-2.0

package streamer

import (
	"errors"
	"io"

	"github.com/gopxl/beep/v2"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/device"
)

// maxEmptyReads bounds the reads without progress a single Stream call
// tolerates.
const maxEmptyReads = 64

// Streamer plays an audio.Reader as a stereo beep.StreamSeeker.
type Streamer struct {
	r   audio.Reader
	buf []float32
	eos bool
	err error
}

// ToStreamer wraps r. Mono readers are duplicated onto both beep channels;
// other layouts are remapped to stereo.
func ToStreamer(r audio.Reader) *Streamer {
	if ch := r.Specs().Channels; ch != audio.ChannelsMono && ch != audio.ChannelsStereo {
		r = device.NewChannelMapperReader(r, audio.ChannelsStereo)
	}
	return &Streamer{r: r}
}

// Format describes the stream for beep encoders and speakers.
func (s *Streamer) Format() beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(s.r.Specs().Rate),
		NumChannels: 2,
		Precision:   2,
	}
}

func (s *Streamer) Stream(samples [][2]float64) (int, bool) {
	if s.err != nil || s.eos {
		return 0, false
	}

	// beep treats a short result as the end of the stream, so keep reading
	// until samples is full.
	filled, empty := 0, 0
	for filled < len(samples) && !s.eos {
		frames, err := s.read(samples[filled:])
		filled += frames
		switch {
		case errors.Is(err, io.EOF):
			s.eos = true
		case err != nil:
			s.err = err
			return filled, false
		}
		if frames > 0 {
			empty = 0
		} else if empty++; empty > maxEmptyReads {
			break
		}
	}

	if filled == 0 && s.eos {
		return 0, false
	}
	return filled, true
}

// read fills samples with one Read of the underlying reader.
func (s *Streamer) read(samples [][2]float64) (int, error) {
	ch := int(s.r.Specs().Channels)
	n := len(samples) * ch
	if cap(s.buf) < n {
		s.buf = make([]float32, n)
	}
	buf := s.buf[:n]

	frames, err := s.r.Read(buf)
	for i := range frames {
		if ch == 1 {
			v := float64(buf[i])
			samples[i] = [2]float64{v, v}
			continue
		}
		samples[i] = [2]float64{float64(buf[2*i]), float64(buf[2*i+1])}
	}
	return frames, err
}

func (s *Streamer) Err() error { return s.err }

// Len returns the length in frames, or -1 when the reader does not know it.
func (s *Streamer) Len() int { return s.r.Length() }

func (s *Streamer) Position() int { return s.r.Position() }

func (s *Streamer) Seek(p int) error {
	if !s.r.Seekable() {
		return audio.ErrNotSeekable
	}
	if err := s.r.Seek(p); err != nil {
		return err
	}
	s.eos = false
	return nil
}

var _ beep.StreamSeeker = (*Streamer)(nil)
