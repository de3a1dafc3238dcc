// SPDX-License-Identifier: EPL-2.0

package streamer

import (
	"io"

	"github.com/gopxl/beep/v2"

	"github.com/ik5/audmix/audio"
)

// Reader reads a beep.Streamer as an audio.Reader.
type Reader struct {
	s        beep.Streamer
	seeker   beep.StreamSeeker
	specs    audio.Specs
	buf      [][2]float64
	position int
}

// FromStreamer wraps s. The reader is mono when format has one channel
// and stereo otherwise; it is seekable when s is a beep.StreamSeeker.
func FromStreamer(s beep.Streamer, format beep.Format) *Reader {
	channels := audio.ChannelsStereo
	if format.NumChannels == 1 {
		channels = audio.ChannelsMono
	}
	seeker, _ := s.(beep.StreamSeeker)
	return &Reader{
		s:      s,
		seeker: seeker,
		specs:  audio.Specs{Rate: float64(format.SampleRate), Channels: channels},
	}
}

func (r *Reader) Seekable() bool     { return r.seeker != nil }
func (r *Reader) Specs() audio.Specs { return r.specs }

func (r *Reader) Seek(position int) error {
	if r.seeker == nil {
		return audio.ErrNotSeekable
	}
	if err := r.seeker.Seek(position); err != nil {
		return err
	}
	r.position = r.seeker.Position()
	return nil
}

func (r *Reader) Length() int {
	if r.seeker == nil {
		return -1
	}
	return r.seeker.Len()
}

func (r *Reader) Position() int { return r.position }

func (r *Reader) Read(dst []float32) (int, error) {
	ch := int(r.specs.Channels)
	frames := len(dst) / ch
	if frames == 0 {
		return 0, nil
	}
	if cap(r.buf) < frames {
		r.buf = make([][2]float64, frames)
	}
	buf := r.buf[:frames]

	n, ok := r.s.Stream(buf)
	for i, s := range buf[:n] {
		if ch == 1 {
			dst[i] = float32((s[0] + s[1]) / 2)
			continue
		}
		dst[2*i] = float32(s[0])
		dst[2*i+1] = float32(s[1])
	}
	r.position += n

	if !ok {
		if err := r.s.Err(); err != nil {
			return n, err
		}
		return n, io.EOF
	}
	return n, nil
}
