// SPDX-License-Identifier: EPL-2.0

package audio

// Buffer is a growable sample arena used to stage intermediate data.
// It grows but never shrinks, so a reader that reuses one Buffer stops
// allocating once it has seen its largest request.
type Buffer struct {
	data []float32
}

// NewBuffer returns a zero-filled Buffer holding size samples.
func NewBuffer(size int) *Buffer {
	if size < 0 {
		size = 0
	}
	return &Buffer{data: make([]float32, size)}
}

// Samples returns the underlying slice.
func (b *Buffer) Samples() []float32 {
	return b.data
}

// Len returns the current number of samples.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Resize sets the length to size. With keep the existing samples that still
// fit are preserved; otherwise the content is unspecified.
func (b *Buffer) Resize(size int, keep bool) {
	if size < 0 {
		size = 0
	}
	if size <= cap(b.data) {
		b.data = b.data[:size]
		return
	}
	grown := make([]float32, size)
	if keep {
		copy(grown, b.data)
	}
	b.data = grown
}

// AssureSize grows the buffer to at least size samples.
func (b *Buffer) AssureSize(size int, keep bool) {
	if size > len(b.data) {
		b.Resize(size, keep)
	}
}

// Zero sets all samples to 0.
func (b *Buffer) Zero() {
	clear(b.data)
}
