// SPDX-License-Identifier: EPL-2.0

package fx

import (
	"io"
	"testing"

	"github.com/ik5/audmix/internal/audiotest"
)

func TestLimiterReader_Window(t *testing.T) {
	t.Parallel()

	for _, seekable := range []bool{true, false} {
		up := audiotest.NewRampReader(100, 1, 100)
		up.NotSeekable = !seekable

		l, err := NewLimiterReader(up, 0.2, 0.5)
		if err != nil {
			t.Fatalf("NewLimiterReader(seekable=%v) error = %v", seekable, err)
		}
		if seekable && l.Length() != 30 {
			t.Errorf("Length() = %d, want 30", l.Length())
		}

		out, err := audiotest.ReadAll(l, 7, 0)
		if err != nil {
			t.Fatalf("ReadAll() error = %v", err)
		}
		if len(out) != 30 {
			t.Fatalf("seekable=%v: read %d frames, want 30", seekable, len(out))
		}
		if out[0] != 20 || out[29] != 49 {
			t.Errorf("seekable=%v: window = [%v .. %v], want [20 .. 49]", seekable, out[0], out[29])
		}
		if l.Position() != 30 {
			t.Errorf("Position() = %d, want 30", l.Position())
		}
	}
}

func TestLimiterReader_EOFAtBoundary(t *testing.T) {
	t.Parallel()

	up := audiotest.NewRampReader(100, 2, 100)
	l, err := NewLimiterReader(up, 0, 0.1)
	if err != nil {
		t.Fatal(err)
	}

	buf := make([]float32, 2*10)
	n, err := l.Read(buf)
	if n != 10 || err != io.EOF {
		t.Fatalf("Read() = %d, %v; want 10, EOF", n, err)
	}
	n, err = l.Read(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("Read() past end = %d, %v; want 0, EOF", n, err)
	}
}

func TestLimiterReader_SeekOffsetsStart(t *testing.T) {
	t.Parallel()

	up := audiotest.NewRampReader(100, 1, 100)
	l, _ := NewLimiterReader(up, 0.5, -1)

	if l.Length() != 50 {
		t.Errorf("Length() = %d, want 50", l.Length())
	}
	if err := l.Seek(10); err != nil {
		t.Fatal(err)
	}
	if up.Position() != 60 {
		t.Errorf("upstream position = %d, want 60", up.Position())
	}
}
