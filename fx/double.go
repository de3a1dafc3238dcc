// SPDX-License-Identifier: EPL-2.0

package fx

import (
	"errors"
	"io"

	"github.com/ik5/audmix/audio"
)

// DoubleReader plays one reader and then another with the same specs.
type DoubleReader struct {
	first    audio.Reader
	second   audio.Reader
	finished bool // first is exhausted
}

// NewDoubleReader fails with a *audio.StateError when the specs differ.
func NewDoubleReader(first, second audio.Reader) (*DoubleReader, error) {
	if first.Specs() != second.Specs() {
		return nil, &audio.StateError{Op: "double", Err: audio.ErrInvalidSpecs}
	}
	return &DoubleReader{first: first, second: second}, nil
}

func (r *DoubleReader) Seekable() bool {
	return r.first.Seekable() && r.second.Seekable()
}

func (r *DoubleReader) Seek(position int) error {
	l := r.first.Length()
	if l < 0 || position < l {
		r.finished = false
		if err := r.second.Seek(0); err != nil {
			return err
		}
		return r.first.Seek(position)
	}
	r.finished = true
	return r.second.Seek(position - l)
}

func (r *DoubleReader) Length() int {
	a, b := r.first.Length(), r.second.Length()
	if a < 0 || b < 0 {
		return -1
	}
	return a + b
}

func (r *DoubleReader) Position() int {
	if !r.finished {
		return r.first.Position()
	}
	return r.first.Length() + r.second.Position()
}

func (r *DoubleReader) Specs() audio.Specs {
	if r.finished {
		return r.second.Specs()
	}
	return r.first.Specs()
}

func (r *DoubleReader) Read(dst []float32) (int, error) {
	if r.finished {
		return r.second.Read(dst)
	}

	n, err := r.first.Read(dst)
	if !errors.Is(err, io.EOF) {
		return n, err
	}

	r.finished = true
	specs := r.first.Specs()
	if n >= specs.Frames(len(dst)) {
		return n, nil
	}
	m, err := r.second.Read(dst[specs.Samples(n):])
	return n + m, err
}
