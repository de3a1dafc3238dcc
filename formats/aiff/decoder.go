// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/utils"
)

const skipChunk = 4096

// aiffReader is the part of aiff.Decoder the reader needs, so tests can
// mock it.
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Reader streams the sound data of an in-memory AIFF file.
type Reader struct {
	open     func() (aiffReader, error)
	dec      aiffReader
	specs    audio.Specs
	bitDepth int
	length   int
	position int

	ints *goaudio.IntBuffer
}

func newReader(open func() (aiffReader, error), specs audio.Specs, bitDepth, length int) (*Reader, error) {
	dec, err := open()
	if err != nil {
		return nil, err
	}
	return &Reader{
		open:     open,
		dec:      dec,
		specs:    specs,
		bitDepth: bitDepth,
		length:   length,
		ints:     &goaudio.IntBuffer{Format: dec.Format(), SourceBitDepth: bitDepth},
	}, nil
}

func (r *Reader) Seekable() bool     { return true }
func (r *Reader) Length() int        { return r.length }
func (r *Reader) Position() int      { return r.position }
func (r *Reader) Specs() audio.Specs { return r.specs }

// BitDepth returns the stored sample size in bits.
func (r *Reader) BitDepth() int { return r.bitDepth }

// BufSize returns the capacity of the integer staging buffer in samples.
func (r *Reader) BufSize() int {
	if cap(r.ints.Data) == 0 {
		return skipChunk
	}
	return cap(r.ints.Data)
}

// Seek restarts the decoder and skips forward to position.
func (r *Reader) Seek(position int) error {
	position = min(max(position, 0), r.length)
	dec, err := r.open()
	if err != nil {
		return err
	}
	r.dec = dec
	r.position = 0

	ch := int(r.specs.Channels)
	for position > r.position {
		n := min(position-r.position, skipChunk)
		got, err := r.pcm(n * ch)
		if err != nil {
			return err
		}
		if got == 0 {
			break
		}
		r.position += got / ch
	}
	return nil
}

func (r *Reader) pcm(samples int) (int, error) {
	if cap(r.ints.Data) < samples {
		r.ints.Data = make([]int, samples)
	}
	r.ints.Data = r.ints.Data[:samples]

	n, err := r.dec.PCMBuffer(r.ints)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("%w", err)
	}
	return n, nil
}

func (r *Reader) Read(dst []float32) (int, error) {
	ch := int(r.specs.Channels)
	frames := min(len(dst)/ch, r.length-r.position)
	if frames == 0 {
		if r.position >= r.length {
			return 0, io.EOF
		}
		return 0, nil
	}

	n, err := r.pcm(frames * ch)
	if err != nil {
		return 0, err
	}
	n /= ch
	for i, v := range r.ints.Data[:n*ch] {
		dst[i] = utils.PCMToFloat(v, r.bitDepth)
	}
	r.position += n

	if n == 0 {
		// SSND holds fewer frames than COMM announced.
		r.length = r.position
	}
	if r.position >= r.length {
		return n, io.EOF
	}
	return n, nil
}

type Decoder struct{}

// Decode parses the COMM chunk of r. The input is buffered in memory so
// the Reader can restart the decoder on Seek.
func (Decoder) Decode(r io.Reader) (audio.Reader, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}

	dec := aiff.NewDecoder(bytes.NewReader(raw))
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()
	if dec.Format() == nil || dec.NumChans == 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	specs := audio.Specs{Rate: float64(dec.SampleRate), Channels: audio.Channels(dec.NumChans)}
	if !specs.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedAiffLayout, specs)
	}

	open := func() (aiffReader, error) {
		d := aiff.NewDecoder(bytes.NewReader(raw))
		d.ReadInfo()
		if d.Format() == nil {
			return nil, ErrUnsupportedAiffLayout
		}
		return d, nil
	}
	return newReader(open, specs, bitDepth, int(dec.NumSampleFrames))
}

// Register adds the AIFF decoder to reg under "aiff", "aif" and "aifc".
func Register(reg *audio.Registry) {
	for _, name := range []string{"aiff", "aif", "aifc"} {
		reg.Register(name, Decoder{})
	}
}
