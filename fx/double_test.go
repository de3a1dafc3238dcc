// SPDX-License-Identifier: EPL-2.0

package fx

import (
	"errors"
	"slices"
	"testing"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/internal/audiotest"
)

func TestDoubleReader_Concatenates(t *testing.T) {
	t.Parallel()

	d, err := NewDoubleReader(audiotest.NewRampReader(100, 1, 5), audiotest.NewRampReader(100, 1, 3))
	if err != nil {
		t.Fatal(err)
	}
	if d.Length() != 8 || !d.Seekable() {
		t.Errorf("Length() = %d, Seekable() = %v", d.Length(), d.Seekable())
	}

	out, _ := audiotest.ReadAll(d, 3, 0)
	if want := []float32{0, 1, 2, 3, 4, 0, 1, 2}; !slices.Equal(out, want) {
		t.Errorf("out = %v, want %v", out, want)
	}

	if err := d.Seek(6); err != nil {
		t.Fatal(err)
	}
	if d.Position() != 6 {
		t.Errorf("Position() = %d, want 6", d.Position())
	}
	if err := d.Seek(1); err != nil {
		t.Fatal(err)
	}
	out, _ = audiotest.ReadAll(d, 100, 0)
	if len(out) != 7 {
		t.Errorf("read %d frames after Seek(1), want 7", len(out))
	}
}

func TestDoubleReader_SpecsMismatch(t *testing.T) {
	t.Parallel()

	_, err := NewDoubleReader(audiotest.NewRampReader(100, 1, 5), audiotest.NewRampReader(100, 2, 5))
	if !errors.Is(err, audio.ErrInvalidSpecs) {
		t.Errorf("error = %v, want ErrInvalidSpecs", err)
	}
}

func TestPingPong_IndependentHalves(t *testing.T) {
	t.Parallel()

	var created []*audiotest.MockReader
	sound := audio.SoundFunc(func() (audio.Reader, error) {
		m := audiotest.NewRampReader(100, 1, 5)
		created = append(created, m)
		return m, nil
	})

	r, err := PingPong(sound).CreateReader()
	if err != nil {
		t.Fatal(err)
	}
	out, _ := audiotest.ReadAll(r, 4, 0)
	if want := []float32{0, 1, 2, 3, 4, 4, 3, 2, 1, 0}; !slices.Equal(out, want) {
		t.Errorf("out = %v, want %v", out, want)
	}
	if len(created) != 2 || created[0] == created[1] {
		t.Errorf("PingPong created %d upstream readers, want 2 distinct", len(created))
	}
}
