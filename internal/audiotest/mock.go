// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
	"math"

	"github.com/ik5/audmix/audio"
)

// ErrInjected is returned by a MockReader configured with FailAfter.
var ErrInjected = errors.New("audiotest: injected read failure")

// MockReader is a deterministic audio.Reader for tests. Sample values come
// from a waveform function of the absolute frame index and the channel.
type MockReader struct {
	specs    audio.Specs
	total    int // frames; negative means infinite
	pos      int
	waveform func(frame, channel int) float32

	// NotSeekable makes Seekable report false and Seek fail.
	NotSeekable bool
	// HideLength makes Length report -1 even for a finite stream.
	HideLength bool
	// MaxRead caps the frames returned per Read to exercise partial reads.
	MaxRead int
	// FailAfter makes every Read return ErrInjected once Reads exceeds it.
	// Zero disables injection.
	FailAfter int

	// Reads counts Read calls.
	Reads int
	// Seeks records every position passed to Seek.
	Seeks []int
}

// NewMockReader creates a reader producing total frames of waveform.
// A negative total gives an endless stream.
func NewMockReader(rate float64, channels, total int, waveform func(frame, channel int) float32) *MockReader {
	return &MockReader{
		specs:    audio.Specs{Rate: rate, Channels: audio.Channels(channels)},
		total:    total,
		waveform: waveform,
	}
}

// NewSilentReader creates a mock reader that generates silence.
func NewSilentReader(rate float64, channels, total int) *MockReader {
	return NewMockReader(rate, channels, total, func(int, int) float32 { return 0 })
}

// NewSineReader creates a mock reader that generates a sine wave on every channel.
func NewSineReader(rate float64, channels, total int, frequency float64) *MockReader {
	return NewMockReader(rate, channels, total, func(frame, _ int) float32 {
		t := float64(frame) / rate
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantReader creates a mock reader with a constant value.
func NewConstantReader(rate float64, channels, total int, value float32) *MockReader {
	return NewMockReader(rate, channels, total, func(int, int) float32 { return value })
}

// NewRampReader creates a mock reader whose sample equals its frame index
// plus channel/10, which makes ordering errors easy to spot.
func NewRampReader(rate float64, channels, total int) *MockReader {
	return NewMockReader(rate, channels, total, func(frame, channel int) float32 {
		return float32(frame) + float32(channel)/10
	})
}

// Reset rewinds the reader and clears the counters.
func (m *MockReader) Reset() {
	m.pos = 0
	m.Reads = 0
	m.Seeks = nil
}

func (m *MockReader) Seekable() bool { return !m.NotSeekable }

func (m *MockReader) Seek(position int) error {
	if m.NotSeekable {
		return audio.ErrNotSeekable
	}
	m.Seeks = append(m.Seeks, position)
	if position < 0 {
		position = 0
	}
	if m.total >= 0 && position > m.total {
		position = m.total
	}
	m.pos = position
	return nil
}

func (m *MockReader) Length() int {
	if m.HideLength {
		return -1
	}
	return m.total
}

func (m *MockReader) Position() int { return m.pos }

func (m *MockReader) Specs() audio.Specs { return m.specs }

// SetSpecs changes the format of subsequent reads.
func (m *MockReader) SetSpecs(specs audio.Specs) { m.specs = specs }

func (m *MockReader) Read(dst []float32) (int, error) {
	m.Reads++
	if m.FailAfter > 0 && m.Reads > m.FailAfter {
		return 0, ErrInjected
	}

	channels := int(m.specs.Channels)
	frames := len(dst) / channels
	if m.MaxRead > 0 && frames > m.MaxRead {
		frames = m.MaxRead
	}
	if m.total >= 0 && frames > m.total-m.pos {
		frames = m.total - m.pos
	}

	for f := range frames {
		for ch := range channels {
			dst[f*channels+ch] = m.waveform(m.pos+f, ch)
		}
	}
	m.pos += frames

	if m.total >= 0 && m.pos >= m.total {
		return frames, io.EOF
	}
	return frames, nil
}

// ReadAll drains r in chunks of chunk frames and returns every sample read.
// It stops at io.EOF, at the first error, or after limit frames when
// limit is positive.
func ReadAll(r audio.Reader, chunk, limit int) ([]float32, error) {
	var out []float32
	frames, empty := 0, 0
	for {
		channels := int(r.Specs().Channels)
		buf := make([]float32, chunk*channels)
		n, err := r.Read(buf)
		out = append(out, buf[:n*channels]...)
		frames += n
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		if limit > 0 && frames >= limit {
			return out, nil
		}
		if n > 0 {
			empty = 0
		} else if empty++; empty > 1000 {
			return out, io.ErrNoProgress
		}
	}
}
