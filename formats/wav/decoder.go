// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/utils"
)

const (
	formatPCM = 1
	skipChunk = 4096
)

// pcmDecoder is the part of wav.Decoder the reader needs.
type pcmDecoder interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Reader streams integer PCM frames out of an in-memory WAV file.
type Reader struct {
	data     *bytes.Reader
	dec      pcmDecoder
	specs    audio.Specs
	bitDepth int
	length   int // frames
	position int

	ints *goaudio.IntBuffer
}

func (r *Reader) Seekable() bool     { return true }
func (r *Reader) Length() int        { return r.length }
func (r *Reader) Position() int      { return r.position }
func (r *Reader) Specs() audio.Specs { return r.specs }

// BitDepth returns the stored sample size in bits.
func (r *Reader) BitDepth() int { return r.bitDepth }

func (r *Reader) remaining() int { return r.length - r.position }

// Seek repositions the PCM cursor by decoding forward from the start of
// the data chunk. Positions are clamped to the stream.
func (r *Reader) Seek(position int) error {
	position = min(max(position, 0), r.length)
	if _, err := r.data.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w", err)
	}
	dec := wav.NewDecoder(r.data)
	if err := dec.FwdToPCM(); err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}
	r.dec = dec
	r.position = 0
	return r.skip(position)
}

func (r *Reader) skip(frames int) error {
	ch := int(r.specs.Channels)
	for frames > 0 {
		n := min(frames, skipChunk)
		r.ints.Data = resize(r.ints.Data, n*ch)
		got, err := r.dec.PCMBuffer(r.ints)
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w", err)
		}
		got /= ch
		if got == 0 {
			return nil
		}
		frames -= got
		r.position += got
	}
	return nil
}

func resize(b []int, n int) []int {
	if cap(b) < n {
		return make([]int, n)
	}
	return b[:n]
}

func (r *Reader) Read(dst []float32) (int, error) {
	ch := int(r.specs.Channels)
	frames := min(len(dst)/ch, r.remaining())
	if frames == 0 {
		if r.remaining() == 0 {
			return 0, io.EOF
		}
		return 0, nil
	}

	r.ints.Data = resize(r.ints.Data, frames*ch)

	n, err := r.dec.PCMBuffer(r.ints)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("%w", err)
	}
	n /= ch
	for i, v := range r.ints.Data[:n*ch] {
		if r.bitDepth == 8 {
			v -= 128 // 8-bit PCM is unsigned
		}
		dst[i] = utils.PCMToFloat(v, r.bitDepth)
	}
	r.position += n

	if n == 0 {
		// The data chunk is shorter than its header claims.
		r.length = r.position
	}
	if r.remaining() == 0 {
		return n, io.EOF
	}
	return n, nil
}

type Decoder struct{}

// Decode parses the WAV header of r. The whole input is buffered so the
// returned Reader can seek.
func (Decoder) Decode(r io.Reader) (audio.Reader, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if len(raw) < 12 || !bytes.HasPrefix(raw, []byte("RIFF")) || !bytes.Equal(raw[8:12], []byte("WAVE")) {
		return nil, ErrNotWavFile
	}
	data := bytes.NewReader(raw)

	dec := wav.NewDecoder(data)
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}
	if dec.WavAudioFormat != formatPCM {
		return nil, ErrOnlyPCMSupported
	}

	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	specs := audio.Specs{Rate: float64(dec.SampleRate), Channels: audio.Channels(dec.NumChans)}
	if !specs.Valid() {
		return nil, fmt.Errorf("%w: %v", audio.ErrInvalidSpecs, specs)
	}

	dataStart, err := data.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	block := int64(specs.Channels) * int64(bitDepth/8)
	available := (int64(len(raw)) - dataStart) / block
	length := min(dec.PCMLen()/block, available)

	return &Reader{
		data:     data,
		dec:      dec,
		specs:    specs,
		bitDepth: bitDepth,
		length:   int(length),
		ints: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: int(specs.Channels), SampleRate: int(specs.Rate)},
			SourceBitDepth: bitDepth,
		},
	}, nil
}

// Register adds the WAV decoder to reg under "wav" and "wave".
func Register(reg *audio.Registry) {
	reg.Register("wav", Decoder{})
	reg.Register("wave", Decoder{})
}
