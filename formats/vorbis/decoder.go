// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audmix/audio"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	// Read returns the number of values decoded, a multiple of Channels.
	Read([]float32) (int, error)
	Length() int64
	SetPosition(pos int64) error
}

// Reader decodes Ogg Vorbis packets on demand.
type Reader struct {
	dec      oggReader
	specs    audio.Specs
	length   int
	position int
}

func newReader(dec oggReader) (*Reader, error) {
	specs := audio.Specs{Rate: float64(dec.SampleRate()), Channels: audio.Channels(dec.Channels())}
	if !specs.Valid() {
		return nil, fmt.Errorf("%w: %v", audio.ErrInvalidSpecs, specs)
	}
	length := int(dec.Length())
	if length == 0 {
		length = -1 // unknown
	}
	return &Reader{dec: dec, specs: specs, length: length}, nil
}

func (r *Reader) Seekable() bool     { return r.length >= 0 }
func (r *Reader) Length() int        { return r.length }
func (r *Reader) Position() int      { return r.position }
func (r *Reader) Specs() audio.Specs { return r.specs }

func (r *Reader) Seek(position int) error {
	if r.length < 0 {
		return &audio.StateError{Op: "vorbis seek", Err: audio.ErrNotSeekable}
	}
	position = min(max(position, 0), r.length)
	if err := r.dec.SetPosition(int64(position)); err != nil {
		return fmt.Errorf("%w", err)
	}
	r.position = position
	return nil
}

func (r *Reader) Read(dst []float32) (int, error) {
	ch := int(r.specs.Channels)
	want := (len(dst) / ch) * ch
	if want == 0 {
		return 0, nil
	}

	n, err := r.dec.Read(dst[:want])
	frames := n / ch
	r.position += frames
	if err != nil && !errors.Is(err, io.EOF) {
		return frames, fmt.Errorf("%w", err)
	}
	if err == nil && r.length >= 0 && r.position >= r.length {
		err = io.EOF
	}
	return frames, err
}

type Decoder struct{}

// Decode buffers r in memory so that the length is known and the stream
// can seek.
func (Decoder) Decode(r io.Reader) (audio.Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	dec, err := oggvorbis.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return newReader(dec)
}

// Register adds the Vorbis decoder to reg under "ogg" and "oga".
func Register(reg *audio.Registry) {
	reg.Register("ogg", Decoder{})
	reg.Register("oga", Decoder{})
}
