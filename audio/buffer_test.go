// SPDX-License-Identifier: EPL-2.0

package audio

import "testing"

func TestBuffer_AssureSizeKeeps(t *testing.T) {
	t.Parallel()

	b := NewBuffer(4)
	copy(b.Samples(), []float32{1, 2, 3, 4})

	b.AssureSize(2, true)
	if b.Len() != 4 {
		t.Errorf("AssureSize() shrank the buffer to %d", b.Len())
	}

	b.AssureSize(16, true)
	if b.Len() != 16 {
		t.Fatalf("Len() = %d, want 16", b.Len())
	}
	for i, want := range []float32{1, 2, 3, 4} {
		if b.Samples()[i] != want {
			t.Errorf("Samples()[%d] = %v, want %v", i, b.Samples()[i], want)
		}
	}
}

func TestBuffer_ResizeReusesCapacity(t *testing.T) {
	t.Parallel()

	b := NewBuffer(32)
	p := &b.Samples()[0]

	b.Resize(8, false)
	b.Resize(32, true)
	if &b.Samples()[0] != p {
		t.Error("Resize() within capacity reallocated")
	}

	b.Resize(-1, false)
	if b.Len() != 0 {
		t.Errorf("Resize(-1) Len() = %d, want 0", b.Len())
	}
}

func TestBuffer_Zero(t *testing.T) {
	t.Parallel()

	b := NewBuffer(3)
	copy(b.Samples(), []float32{1, 1, 1})
	b.Zero()
	for i, v := range b.Samples() {
		if v != 0 {
			t.Errorf("Samples()[%d] = %v after Zero()", i, v)
		}
	}
}

func BenchmarkBuffer_AssureSize(b *testing.B) {
	buf := NewBuffer(0)
	b.ReportAllocs()
	for b.Loop() {
		buf.AssureSize(4096, true)
	}
}
