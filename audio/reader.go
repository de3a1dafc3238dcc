// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
)

// Reader is a pull-based stream of interleaved float32 frames.
//
// Positions and lengths are counted in frames at the reader's own output
// rate. A Reader is driven by one goroutine at a time.
type Reader interface {
	// Seekable reports whether Seek can reposition the stream.
	Seekable() bool
	// Seek moves to position frames after the start of the stream.
	Seek(position int) error
	// Length returns the stream length in frames, or a negative value if
	// it is unknown or infinite.
	Length() int
	// Position returns the current position in frames.
	Position() int
	// Specs returns the format the next Read produces.
	Specs() Specs
	// Read fills dst with up to len(dst)/Specs().Channels frames and
	// returns the number of frames written. io.EOF is returned together
	// with the final frames of the stream (n may be 0). A short read with
	// a nil error is legal and must be tolerated by callers.
	Read(dst []float32) (n int, err error)
}

// Sound is an immutable description of how to build a Reader. Every call
// to CreateReader returns an independent stream.
type Sound interface {
	CreateReader() (Reader, error)
}

// SoundFunc adapts a function to the Sound interface.
type SoundFunc func() (Reader, error)

func (f SoundFunc) CreateReader() (Reader, error) { return f() }

// Decoder constructs a Reader from an encoded input.
type Decoder interface {
	Decode(r io.Reader) (Reader, error)
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// Formats returns the registered format keys.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	formats := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		formats = append(formats, k)
	}
	return formats
}
