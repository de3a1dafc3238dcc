// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/internal/audiotest"
)

// Helper function to create a minimal valid WAV file
func createWAVFile(sampleRate, channels int, samples []int16) []byte {
	buf := new(bytes.Buffer)
	WriteWAV16(buf, sampleRate, channels, samples)
	return buf.Bytes()
}

func decode(t *testing.T, data []byte) *Reader {
	t.Helper()

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}
	return src.(*Reader)
}

func TestDecoder_ValidWAVFile(t *testing.T) {
	t.Parallel()

	src := decode(t, createWAVFile(8000, 1, []int16{0, 100, 200, -100, -200, 0}))

	if src.Specs() != (audio.Specs{Rate: 8000, Channels: audio.ChannelsMono}) {
		t.Errorf("Specs() = %v, want 8000Hz mono", src.Specs())
	}
	if src.Length() != 6 || src.BitDepth() != 16 || !src.Seekable() {
		t.Errorf("Length() = %d, BitDepth() = %d", src.Length(), src.BitDepth())
	}
}

func TestDecoder_StereoWAVFile(t *testing.T) {
	t.Parallel()

	src := decode(t, createWAVFile(44100, 2, []int16{100, 200, 300, 400, 500, 600}))

	if src.Specs().Channels != audio.ChannelsStereo || src.Specs().Rate != 44100 {
		t.Errorf("Specs() = %v, want 44100Hz stereo", src.Specs())
	}
	if src.Length() != 3 {
		t.Errorf("Length() = %d, want 3 frames", src.Length())
	}
}

func TestDecoder_NotWAVFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"garbage", []byte("NOT A WAV FILE DATA")},
		{"truncated", []byte("RIFF\x00")},
		{"bad WAVE marker", append([]byte("RIFF\x24\x00\x00\x00"), "NOPE"...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrNotWavFile) {
				t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
			}
		})
	}
}

func TestDecoder_NonPCMFormat(t *testing.T) {
	t.Parallel()

	data := createWAVFile(8000, 1, []int16{1, 2})
	binary.LittleEndian.PutUint16(data[20:22], 3) // IEEE float

	_, err := Decoder{}.Decode(bytes.NewReader(data))
	if !errors.Is(err, ErrOnlyPCMSupported) {
		t.Errorf("Decode() error = %v, want ErrOnlyPCMSupported", err)
	}
}

func TestDecoder_UnsupportedBitDepth(t *testing.T) {
	t.Parallel()

	data := createWAVFile(8000, 1, []int16{1, 2})
	binary.LittleEndian.PutUint16(data[34:36], 12)

	_, err := Decoder{}.Decode(bytes.NewReader(data))
	if !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("Decode() error = %v, want ErrUnsupportedBitDepth", err)
	}
}

func TestReader_Read(t *testing.T) {
	t.Parallel()

	src := decode(t, createWAVFile(8000, 1, []int16{0, 16384, 32767, -16384, -32768}))

	dst := make([]float32, 8)
	n, err := src.Read(dst)
	if n != 5 || !errors.Is(err, io.EOF) {
		t.Fatalf("Read() = %d, %v; want 5, io.EOF", n, err)
	}

	expected := []float32{0.0, 0.5, 1.0, -0.5, -1.0}
	for i := range n {
		if math.Abs(float64(dst[i]-expected[i])) > 0.001 {
			t.Errorf("dst[%d] = %v, want ≈%v", i, dst[i], expected[i])
		}
	}

	n, err = src.Read(dst)
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("Read() after end = %d, %v; want 0, io.EOF", n, err)
	}
}

func TestReader_Read_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := decode(t, createWAVFile(8000, 1, []int16{100, 200, 300}))

	n, err := src.Read(nil)
	if n != 0 || err != nil {
		t.Errorf("Read(nil) = %d, %v; want 0, nil", n, err)
	}
}

func TestReader_PartialReads(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 1000)
	for i := range samples {
		samples[i] = int16(i * 32)
	}
	src := decode(t, createWAVFile(8000, 2, samples))

	out, err := audiotest.ReadAll(src, 7, 0)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(out) != len(samples) {
		t.Fatalf("read %d samples, want %d", len(out), len(samples))
	}
	for i, v := range out {
		if want := float32(samples[i]) / 32768; v != want {
			t.Fatalf("out[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestReader_Seek(t *testing.T) {
	t.Parallel()

	src := decode(t, createWAVFile(8000, 2, []int16{0, 1, 2, 3, 4, 5, 6, 7}))

	if err := src.Seek(2); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	if src.Position() != 2 {
		t.Errorf("Position() = %d, want 2", src.Position())
	}

	dst := make([]float32, 2)
	if n, err := src.Read(dst); n != 1 || err != nil {
		t.Fatalf("Read() = %d, %v", n, err)
	}
	if dst[0] != 4.0/32768 || dst[1] != 5.0/32768 {
		t.Errorf("frame 2 = %v", dst)
	}

	src.Seek(100)
	if src.Position() != 4 {
		t.Errorf("Seek past end: Position() = %d, want 4", src.Position())
	}
	src.Seek(0)
	if n, _ := src.Read(dst); n != 1 || dst[0] != 0 {
		t.Errorf("after rewind: %d %v", n, dst)
	}
}

func TestReader_TruncatedData(t *testing.T) {
	t.Parallel()

	data := createWAVFile(8000, 1, []int16{1, 2, 3, 4})
	src := decode(t, data[:len(data)-4])

	if src.Length() != 2 {
		t.Errorf("Length() = %d, want 2", src.Length())
	}
	out, err := audiotest.ReadAll(src, 16, 0)
	if err != nil || len(out) != 2 {
		t.Errorf("ReadAll() = %v, %v", out, err)
	}
}

func encodeFile(t *testing.T, r audio.Reader, bitDepth int) []byte {
	t.Helper()

	path := filepath.Join(t.TempDir(), "out.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, err := Encode(f, r, bitDepth); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, bits := range []int{16, 24, 32} {
		up := audiotest.NewSineReader(22050, 2, 5000, 440)
		data := encodeFile(t, up, bits)

		src := decode(t, data)
		if src.BitDepth() != bits || src.Length() != 5000 {
			t.Fatalf("%d bits: BitDepth() = %d, Length() = %d", bits, src.BitDepth(), src.Length())
		}
		if src.Specs() != up.Specs() {
			t.Errorf("%d bits: Specs() = %v, want %v", bits, src.Specs(), up.Specs())
		}

		out, err := audiotest.ReadAll(src, 512, 0)
		if err != nil {
			t.Fatalf("%d bits: ReadAll() error = %v", bits, err)
		}
		up.Reset()
		want, _ := audiotest.ReadAll(up, 512, 0)
		tol := 2.0 / float64(int64(1)<<(bits-1))
		for i := range want {
			if math.Abs(float64(out[i]-want[i])) > tol {
				t.Fatalf("%d bits: sample %d = %v, want %v", bits, i, out[i], want[i])
			}
		}
	}
}

func TestEncode_Errors(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "x.wav"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, err := Encode(f, audiotest.NewSilentReader(8000, 1, 10), 12); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("Encode(12 bits) error = %v", err)
	}
	if _, err := Encode(f, audiotest.NewSilentReader(0, 1, 10), 16); !errors.Is(err, audio.ErrInvalidSpecs) {
		t.Errorf("Encode(invalid specs) error = %v", err)
	}

	failing := audiotest.NewSilentReader(8000, 1, -1)
	failing.FailAfter = 2
	if _, err := Encode(f, failing, 16); !errors.Is(err, audiotest.ErrInjected) {
		t.Errorf("Encode(failing) error = %v", err)
	}
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	reg := audio.NewRegistry()
	Register(reg)
	if _, ok := reg.Get("wav"); !ok {
		t.Error("wav decoder not registered")
	}
}

func BenchmarkDecoder_Decode(b *testing.B) {
	data := createWAVFile(44100, 1, make([]int16, 44100))

	b.ReportAllocs()
	for b.Loop() {
		_, _ = Decoder{}.Decode(bytes.NewReader(data))
	}
}

func BenchmarkReader_Read(b *testing.B) {
	data := createWAVFile(44100, 2, make([]int16, 44100*2))
	src, _ := Decoder{}.Decode(bytes.NewReader(data))
	dst := make([]float32, 4096)

	b.ReportAllocs()
	for b.Loop() {
		if _, err := src.Read(dst); errors.Is(err, io.EOF) {
			src.Seek(0)
		}
	}
}
