// SPDX-License-Identifier: EPL-2.0

package fx

import (
	"errors"
	"io"

	"github.com/ik5/audmix/audio"
)

// ReverseReader plays a finite seekable upstream back to front.
type ReverseReader struct {
	audio.EffectReader

	length   int
	position int
}

// NewReverseReader fails with a *audio.StateError when r is not seekable or
// its length is unknown.
func NewReverseReader(r audio.Reader) (*ReverseReader, error) {
	if !r.Seekable() {
		return nil, &audio.StateError{Op: "reverse", Err: audio.ErrNotSeekable}
	}
	length := r.Length()
	if length < 0 {
		return nil, &audio.StateError{Op: "reverse", Err: audio.ErrUnknownLength}
	}
	return &ReverseReader{
		EffectReader: audio.NewEffectReader(r),
		length:       length,
	}, nil
}

func (r *ReverseReader) Seek(position int) error {
	r.position = min(max(position, 0), r.length)
	return nil
}

func (r *ReverseReader) Length() int   { return r.length }
func (r *ReverseReader) Position() int { return r.position }

func (r *ReverseReader) Read(dst []float32) (int, error) {
	specs := r.Specs()
	channels := int(specs.Channels)
	frames := min(specs.Frames(len(dst)), r.length-r.position)
	if frames <= 0 {
		return 0, io.EOF
	}

	if err := r.Upstream().Seek(r.length - r.position - frames); err != nil {
		return 0, err
	}

	block := dst[:specs.Samples(frames)]
	got := 0
	for got < frames {
		n, err := r.Upstream().Read(block[got*channels:])
		got += n
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, err
		}
		if err != nil || n == 0 {
			break
		}
	}
	clear(block[got*channels:])

	// Reverse frame order, keeping channel order inside each frame.
	for i, j := 0, frames-1; i < j; i, j = i+1, j-1 {
		a := block[i*channels : (i+1)*channels]
		b := block[j*channels : (j+1)*channels]
		for ch := range a {
			a[ch], b[ch] = b[ch], a[ch]
		}
	}
	r.position += frames
	if r.position >= r.length {
		return frames, io.EOF
	}
	return frames, nil
}
