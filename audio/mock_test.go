package audio

import "io"

// rampReader yields frame+channel/10 per sample. internal/audiotest imports
// this package, so in-package tests carry their own fake.
type rampReader struct {
	specs Specs
	total int
	pos   int
}

func newRampReader(rate float64, channels Channels, total int) *rampReader {
	return &rampReader{specs: Specs{Rate: rate, Channels: channels}, total: total}
}

func (m *rampReader) Seekable() bool { return true }

func (m *rampReader) Seek(position int) error {
	m.pos = min(max(position, 0), m.total)
	return nil
}

func (m *rampReader) Length() int   { return m.total }
func (m *rampReader) Position() int { return m.pos }
func (m *rampReader) Specs() Specs  { return m.specs }

func (m *rampReader) Read(dst []float32) (int, error) {
	channels := int(m.specs.Channels)
	frames := min(len(dst)/channels, m.total-m.pos)
	for f := range frames {
		for ch := range channels {
			dst[f*channels+ch] = float32(m.pos+f) + float32(ch)/10
		}
	}
	m.pos += frames
	if m.pos >= m.total {
		return frames, io.EOF
	}
	return frames, nil
}
