// SPDX-License-Identifier: EPL-2.0

package fx

import (
	"testing"

	"github.com/ik5/audmix/internal/audiotest"
)

func TestFaderReader_Boundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		typ        FadeType
		before     float32
		after      float32
		increasing bool
	}{
		{"in", FadeTypeIn, 0, 1, true},
		{"out", FadeTypeOut, 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			up := audiotest.NewConstantReader(1000, 1, 3000, 1)
			out, err := audiotest.ReadAll(NewFaderReader(up, tt.typ, 1, 1), 333, 0)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			if len(out) != 3000 {
				t.Fatalf("read %d frames, want 3000", len(out))
			}

			for i := range 1000 {
				if out[i] != tt.before {
					t.Fatalf("out[%d] = %v before start, want %v", i, out[i], tt.before)
				}
			}
			for i := 2000; i < 3000; i++ {
				if out[i] != tt.after {
					t.Fatalf("out[%d] = %v after end, want %v", i, out[i], tt.after)
				}
			}
			for i := 1001; i < 2000; i++ {
				if tt.increasing && out[i] < out[i-1] || !tt.increasing && out[i] > out[i-1] {
					t.Fatalf("ramp not monotonic at %d: %v -> %v", i, out[i-1], out[i])
				}
			}
		})
	}
}

func TestFaderReader_StepWhenLengthZero(t *testing.T) {
	t.Parallel()

	up := audiotest.NewConstantReader(10, 2, 20, 0.5)
	out, _ := audiotest.ReadAll(NewFaderReader(up, FadeTypeIn, 1, 0), 4, 0)

	for i, v := range out {
		want := float32(0.5)
		if i < 20 {
			want = 0
		}
		if v != want {
			t.Errorf("out[%d] = %v, want %v", i, v, want)
		}
	}
}
