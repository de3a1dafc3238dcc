// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/utils"
)

// go-mp3 always produces 16-bit little-endian stereo.
const (
	channels      = 2
	bytesPerFrame = channels * 2
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	Seek(offset int64, whence int) (int64, error)
	Length() int64
	SampleRate() int
}

// Reader decodes MP3 frames on demand.
type Reader struct {
	dec      mp3Reader
	specs    audio.Specs
	length   int
	position int
	buf      []byte
}

func newReader(dec mp3Reader) *Reader {
	length := -1
	if l := dec.Length(); l >= 0 {
		length = int(l / bytesPerFrame)
	}
	return &Reader{
		dec:    dec,
		specs:  audio.Specs{Rate: float64(dec.SampleRate()), Channels: audio.ChannelsStereo},
		length: length,
		buf:    make([]byte, 8192),
	}
}

func (r *Reader) Seekable() bool     { return true }
func (r *Reader) Length() int        { return r.length }
func (r *Reader) Position() int      { return r.position }
func (r *Reader) Specs() audio.Specs { return r.specs }

// BufSize returns the sample capacity of the byte buffer.
func (r *Reader) BufSize() int { return cap(r.buf) / 2 }

func (r *Reader) Seek(position int) error {
	position = max(position, 0)
	if r.length >= 0 {
		position = min(position, r.length)
	}
	if _, err := r.dec.Seek(int64(position)*bytesPerFrame, io.SeekStart); err != nil {
		return fmt.Errorf("%w", err)
	}
	r.position = position
	return nil
}

func (r *Reader) Read(dst []float32) (int, error) {
	bytesNeeded := (len(dst) / channels) * bytesPerFrame
	if bytesNeeded == 0 {
		return 0, nil
	}
	if cap(r.buf) < bytesNeeded {
		r.buf = make([]byte, bytesNeeded)
	}
	r.buf = r.buf[:bytesNeeded]

	n, err := io.ReadFull(r.dec, r.buf)
	switch {
	case errors.Is(err, io.ErrUnexpectedEOF):
		err = io.EOF
	case err != nil && !errors.Is(err, io.EOF):
		return 0, fmt.Errorf("%w", err)
	}

	samples := (n / bytesPerFrame) * channels
	for i := range samples {
		// Read int16 little-endian
		val := int16(uint16(r.buf[2*i]) | uint16(r.buf[2*i+1])<<8)
		dst[i] = utils.PCMToFloat(int(val), 16)
	}
	frames := samples / channels
	r.position += frames

	return frames, err
}

type Decoder struct{}

// Decode buffers r so the stream length is known and seeking works.
func (Decoder) Decode(r io.Reader) (audio.Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	dec, err := gomp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return newReader(dec), nil
}

// Register adds the MP3 decoder to reg under "mp3".
func Register(reg *audio.Registry) {
	reg.Register("mp3", Decoder{})
}
