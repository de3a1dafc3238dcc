// SPDX-License-Identifier: EPL-2.0

package audio

// EffectReader wraps exactly one upstream Reader and forwards every
// operation to it. Effects embed it and override what they change.
type EffectReader struct {
	reader Reader
}

// NewEffectReader returns a forwarding wrapper around r.
func NewEffectReader(r Reader) EffectReader {
	return EffectReader{reader: r}
}

// Upstream returns the wrapped reader.
func (e *EffectReader) Upstream() Reader { return e.reader }

func (e *EffectReader) Seekable() bool { return e.reader.Seekable() }

func (e *EffectReader) Seek(position int) error { return e.reader.Seek(position) }

func (e *EffectReader) Length() int { return e.reader.Length() }

func (e *EffectReader) Position() int { return e.reader.Position() }

func (e *EffectReader) Specs() Specs { return e.reader.Specs() }

func (e *EffectReader) Read(dst []float32) (int, error) { return e.reader.Read(dst) }
