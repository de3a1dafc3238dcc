// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"testing"
)

type halfGain struct {
	EffectReader
}

func (r *halfGain) Read(dst []float32) (int, error) {
	n, err := r.EffectReader.Read(dst)
	for i := range r.Specs().Samples(n) {
		dst[i] /= 2
	}
	return n, err
}

func TestEffectReader_Forwards(t *testing.T) {
	t.Parallel()

	up := newRampReader(8000, ChannelsStereo, 10)
	e := NewEffectReader(up)

	if e.Upstream() != up {
		t.Error("Upstream() returned a different reader")
	}
	if !e.Seekable() || e.Length() != 10 || e.Specs() != up.Specs() {
		t.Errorf("forwarded metadata differs: seekable=%v length=%d specs=%v", e.Seekable(), e.Length(), e.Specs())
	}
	if err := e.Seek(7); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	if e.Position() != 7 {
		t.Errorf("Position() = %d, want 7", e.Position())
	}

	buf := make([]float32, 8)
	n, err := e.Read(buf)
	if n != 3 || err != io.EOF {
		t.Fatalf("Read() = %d, %v; want 3, EOF", n, err)
	}
	if buf[0] != 7 || buf[1] != 7.1 {
		t.Errorf("first frame = %v, %v", buf[0], buf[1])
	}
}

func TestEffectReader_Override(t *testing.T) {
	t.Parallel()

	var r Reader = &halfGain{NewEffectReader(newRampReader(8000, ChannelsMono, 4))}

	buf := make([]float32, 4)
	n, err := r.Read(buf)
	if n != 4 || err != io.EOF {
		t.Fatalf("Read() = %d, %v", n, err)
	}
	for i, want := range []float32{0, 0.5, 1, 1.5} {
		if buf[i] != want {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], want)
		}
	}
}
