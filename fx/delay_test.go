// SPDX-License-Identifier: EPL-2.0

package fx

import (
	"testing"

	"github.com/ik5/audmix/internal/audiotest"
)

func TestDelayReader_PrependsSilence(t *testing.T) {
	t.Parallel()

	up := audiotest.NewRampReader(100, 2, 50)
	d := NewDelayReader(up, 0.255) // round(25.5) = 26 frames

	if got := d.Length(); got != 76 {
		t.Fatalf("Length() = %d, want 76", got)
	}

	out, err := audiotest.ReadAll(d, 7, 0)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(out) != 76*2 {
		t.Fatalf("read %d samples, want %d", len(out), 76*2)
	}
	for i := range 26 * 2 {
		if out[i] != 0 {
			t.Fatalf("out[%d] = %v inside the delay", i, out[i])
		}
	}
	if out[26*2+1] != 0.1 || out[27*2] != 1 {
		t.Errorf("first delayed frames = %v, %v", out[26*2:26*2+2], out[27*2:27*2+2])
	}
}

func TestDelayReader_PositionAndSeek(t *testing.T) {
	t.Parallel()

	up := audiotest.NewRampReader(100, 1, 50)
	d := NewDelayReader(up, 0.2)

	buf := make([]float32, 10)
	if _, err := d.Read(buf); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got := d.Position(); got != 10 {
		t.Errorf("Position() = %d, want 10", got)
	}

	if err := d.Seek(30); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	if up.Position() != 10 || d.Position() != 30 {
		t.Errorf("after Seek(30) upstream=%d delay=%d", up.Position(), d.Position())
	}

	if err := d.Seek(5); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	n, _ := d.Read(buf)
	if n != 10 || d.Position() != 15 {
		t.Errorf("Read() after Seek(5) n=%d pos=%d", n, d.Position())
	}
	for i, v := range buf {
		if v != 0 {
			t.Errorf("buf[%d] = %v, want silence", i, v)
		}
	}
}

func TestDelayReader_UnknownLength(t *testing.T) {
	t.Parallel()

	up := audiotest.NewRampReader(100, 1, 50)
	up.HideLength = true
	if got := NewDelayReader(up, 1).Length(); got >= 0 {
		t.Errorf("Length() = %d, want negative", got)
	}
}
