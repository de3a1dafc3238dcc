// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/internal/audiotest"
)

// mockAiffReader simulates the aiff.Decoder for testing
type mockAiffReader struct {
	sampleRate   int
	channels     int
	samples      []int
	offset       int
	returnErrors bool
}

func (m *mockAiffReader) Format() *goaudio.Format {
	return &goaudio.Format{
		SampleRate:  m.sampleRate,
		NumChannels: m.channels,
	}
}

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	samplesToRead := min(len(buf.Data), len(m.samples)-m.offset)
	copy(buf.Data, m.samples[m.offset:m.offset+samplesToRead])
	m.offset += samplesToRead

	if m.offset >= len(m.samples) {
		return samplesToRead, io.EOF
	}
	return samplesToRead, nil
}

// mockReader builds a Reader whose decoder restarts from the first sample.
func mockReader(t testing.TB, channels, bitDepth int, samples []int) *Reader {
	t.Helper()

	open := func() (aiffReader, error) {
		return &mockAiffReader{sampleRate: 44100, channels: channels, samples: samples}, nil
	}
	specs := audio.Specs{Rate: 44100, Channels: audio.Channels(channels)}
	r, err := newReader(open, specs, bitDepth, len(samples)/channels)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"text", []byte("This is not AIFF data")},
		{"empty", nil},
		{"riff", []byte("RIFF\x00\x00\x00\x00WAVE")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if err == nil {
				t.Error("Decode() error = nil, want error")
			}
		})
	}
}

func TestReader_Metadata(t *testing.T) {
	t.Parallel()

	src := mockReader(t, 2, 16, make([]int, 100))

	if src.Specs() != (audio.Specs{Rate: 44100, Channels: audio.ChannelsStereo}) {
		t.Errorf("Specs() = %v", src.Specs())
	}
	if src.Length() != 50 || src.Position() != 0 || !src.Seekable() {
		t.Errorf("Length() = %d, Position() = %d, Seekable() = %v", src.Length(), src.Position(), src.Seekable())
	}
	if src.BitDepth() != 16 {
		t.Errorf("BitDepth() = %d, want 16", src.BitDepth())
	}
}

func TestReader_Read(t *testing.T) {
	t.Parallel()

	// 16-bit range: -32768 to 32767
	testSamples := []int{0, 16384, -16384, 32767, -32768}
	src := mockReader(t, 1, 16, testSamples)

	dst := make([]float32, len(testSamples))
	n, err := src.Read(dst)
	if !errors.Is(err, io.EOF) {
		t.Fatalf("Read() error = %v, want io.EOF with the last frames", err)
	}
	if n != len(testSamples) {
		t.Errorf("Read() n = %d, want %d", n, len(testSamples))
	}

	expected := []float32{0.0, 0.5, -0.5, 0.999969482, -1.0}
	for i := range n {
		if math.Abs(float64(dst[i]-expected[i])) > 0.001 {
			t.Errorf("Read() dst[%d] = %f, want ~%f", i, dst[i], expected[i])
		}
	}
}

func TestReader_Read_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := mockReader(t, 2, 16, make([]int, 100))

	n, err := src.Read(nil)
	if err != nil || n != 0 {
		t.Errorf("Read(nil) = %d, %v, want 0, nil", n, err)
	}
}

func TestReader_PartialRead(t *testing.T) {
	t.Parallel()

	src := mockReader(t, 1, 16, []int{100, 200, 300, 400, 500})
	dst := make([]float32, 2)

	want := []struct {
		n   int
		eof bool
	}{{2, false}, {2, false}, {1, true}, {0, true}}
	for i, w := range want {
		n, err := src.Read(dst)
		if n != w.n || errors.Is(err, io.EOF) != w.eof {
			t.Errorf("Read #%d = %d, %v, want %d (EOF %v)", i+1, n, err, w.n, w.eof)
		}
	}
}

func TestReader_MultipleReads(t *testing.T) {
	t.Parallel()

	samples := make([]int, 1000)
	for i := range samples {
		samples[i] = i * 10
	}
	src := mockReader(t, 2, 16, samples)

	out, err := audiotest.ReadAll(src, 128, 0)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(out) != len(samples) {
		t.Errorf("Total samples read = %d, want %d", len(out), len(samples))
	}
	if src.BufSize() < 256 {
		t.Errorf("BufSize() = %d, want >= 256", src.BufSize())
	}
}

func TestReader_Error(t *testing.T) {
	t.Parallel()

	open := func() (aiffReader, error) {
		return &mockAiffReader{sampleRate: 44100, channels: 1, samples: []int{1, 2}, returnErrors: true}, nil
	}
	src, err := newReader(open, audio.Specs{Rate: 44100, Channels: audio.ChannelsMono}, 16, 2)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := src.Read(make([]float32, 10)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Read() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestReader_Seek(t *testing.T) {
	t.Parallel()

	samples := make([]int, 20000)
	for i := range samples {
		samples[i] = i
	}
	src := mockReader(t, 1, 32, samples)

	if err := src.Seek(9000); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	if src.Position() != 9000 {
		t.Fatalf("Position() = %d, want 9000", src.Position())
	}
	dst := make([]float32, 1)
	if _, err := src.Read(dst); err != nil {
		t.Fatal(err)
	}
	if want := float32(9000) / (1 << 31); dst[0] != want {
		t.Errorf("sample after Seek = %g, want %g", dst[0], want)
	}

	src.Seek(-5)
	if src.Position() != 0 {
		t.Errorf("Seek(-5): Position() = %d, want 0", src.Position())
	}
	src.Seek(1 << 20)
	if src.Position() != 20000 {
		t.Errorf("Seek past end: Position() = %d, want 20000", src.Position())
	}
	if n, err := src.Read(dst); n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("Read at end = %d, %v, want 0, io.EOF", n, err)
	}
}

func TestReader_ShortSoundData(t *testing.T) {
	t.Parallel()

	open := func() (aiffReader, error) {
		return &mockAiffReader{sampleRate: 44100, channels: 1, samples: []int{1, 2, 3}}, nil
	}
	// COMM claims more frames than SSND holds.
	src, err := newReader(open, audio.Specs{Rate: 44100, Channels: audio.ChannelsMono}, 16, 10)
	if err != nil {
		t.Fatal(err)
	}

	out, err := audiotest.ReadAll(src, 4, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 || src.Length() != 3 {
		t.Errorf("read %d samples, Length() = %d, want 3 and 3", len(out), src.Length())
	}
}

func TestReader_BitDepthNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bitDepth int
		input    int
		expected float32
	}{
		{"8-bit max", 8, 127, 127.0 / 128.0},
		{"8-bit min", 8, -128, -1.0},
		{"16-bit max", 16, 32767, 32767.0 / 32768.0},
		{"16-bit min", 16, -32768, -1.0},
		{"24-bit", 24, 8388607, 8388607.0 / 8388608.0},
		{"32-bit", 32, 2147483647, 2147483647.0 / 2147483648.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := mockReader(t, 1, tt.bitDepth, []int{tt.input})
			dst := make([]float32, 1)
			if _, err := src.Read(dst); err != nil && !errors.Is(err, io.EOF) {
				t.Fatal(err)
			}
			if math.Abs(float64(dst[0]-tt.expected)) > 1e-6 {
				t.Errorf("Read() = %v, want %v", dst[0], tt.expected)
			}
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tone.aiff")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	up := audiotest.NewSineReader(22050, 2, 3000, 440)
	frames, err := Encode(f, up, 16)
	f.Close()
	if err != nil || frames != 3000 {
		t.Fatalf("Encode() = %d, %v, want 3000, nil", frames, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.Specs() != up.Specs() || src.Length() != 3000 {
		t.Fatalf("Specs() = %v, Length() = %d", src.Specs(), src.Length())
	}

	out, err := audiotest.ReadAll(src, 512, 0)
	if err != nil {
		t.Fatal(err)
	}
	up.Reset()
	want, _ := audiotest.ReadAll(up, 512, 0)
	if len(out) != len(want) {
		t.Fatalf("decoded %d samples, want %d", len(out), len(want))
	}
	for i := range want {
		if math.Abs(float64(out[i]-want[i])) > 2.0/32768 {
			t.Fatalf("sample %d = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestEncode_UnsupportedBitDepth(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "x.aiff"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, err := Encode(f, audiotest.NewSilentReader(8000, 1, 10), 12); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("Encode(12 bits) error = %v, want ErrUnsupportedBitDepth", err)
	}
}

func TestRegister(t *testing.T) {
	t.Parallel()

	reg := audio.NewRegistry()
	Register(reg)
	for _, name := range []string{"aiff", "aif", "aifc"} {
		if _, ok := reg.Get(name); !ok {
			t.Errorf("%q not registered", name)
		}
	}
}

func BenchmarkReader_Read(b *testing.B) {
	src := mockReader(b, 2, 16, make([]int, 1<<16))
	dst := make([]float32, 4096)

	b.ReportAllocs()
	for b.Loop() {
		if _, err := src.Read(dst); errors.Is(err, io.EOF) {
			src.Seek(0)
		}
	}
}
