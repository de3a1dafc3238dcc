// SPDX-License-Identifier: EPL-2.0

package source

import (
	"errors"
	"io"

	"github.com/ik5/audmix/audio"
)

// MemoryReader plays interleaved samples from memory. The slice is never
// written to, so many readers may share it.
type MemoryReader struct {
	samples  []float32
	specs    audio.Specs
	position int
}

// NewMemoryReader returns a reader over samples. A trailing partial frame
// is ignored.
func NewMemoryReader(samples []float32, specs audio.Specs) (*MemoryReader, error) {
	if !specs.Valid() {
		return nil, &audio.StateError{Op: "memory", Err: audio.ErrInvalidSpecs}
	}
	return &MemoryReader{samples: samples, specs: specs}, nil
}

func (r *MemoryReader) Seekable() bool { return true }

func (r *MemoryReader) Seek(position int) error {
	r.position = min(max(position, 0), r.Length())
	return nil
}

func (r *MemoryReader) Length() int        { return r.specs.Frames(len(r.samples)) }
func (r *MemoryReader) Position() int      { return r.position }
func (r *MemoryReader) Specs() audio.Specs { return r.specs }

func (r *MemoryReader) Read(dst []float32) (int, error) {
	frames := min(r.specs.Frames(len(dst)), r.Length()-r.position)
	start := r.specs.Samples(r.position)
	copy(dst, r.samples[start:start+r.specs.Samples(frames)])
	r.position += frames
	if r.position >= r.Length() {
		return frames, io.EOF
	}
	return frames, nil
}

// StreamBuffer is a Sound decoded once into memory. Each CreateReader
// returns a seekable MemoryReader over the shared samples.
type StreamBuffer struct {
	samples []float32
	specs   audio.Specs
}

const bufferChunk = 4096

// NewStreamBuffer drains one reader of s into memory. The stream must end;
// limit caps the frames read and fails with audio.ErrUnknownLength when
// reached. A non-positive limit disables the cap.
func NewStreamBuffer(s audio.Sound, limit int) (*StreamBuffer, error) {
	r, err := s.CreateReader()
	if err != nil {
		return nil, err
	}
	specs := r.Specs()

	var samples []float32
	if l := r.Length(); l > 0 {
		samples = make([]float32, 0, specs.Samples(l))
	}
	buf := make([]float32, specs.Samples(bufferChunk))
	frames := 0
	for {
		if r.Specs() != specs {
			return nil, &audio.StateError{Op: "stream buffer", Err: audio.ErrInvalidSpecs}
		}
		n, err := r.Read(buf)
		samples = append(samples, buf[:specs.Samples(n)]...)
		frames += n
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if limit > 0 && frames >= limit {
			return nil, &audio.StateError{Op: "stream buffer", Err: audio.ErrUnknownLength}
		}
	}
	return &StreamBuffer{samples: samples, specs: specs}, nil
}

func (b *StreamBuffer) Specs() audio.Specs { return b.specs }

// Length returns the buffered length in frames.
func (b *StreamBuffer) Length() int { return b.specs.Frames(len(b.samples)) }

func (b *StreamBuffer) CreateReader() (audio.Reader, error) {
	return NewMemoryReader(b.samples, b.specs)
}
