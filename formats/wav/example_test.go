// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audmix/formats/wav"
)

// Example_decoding demonstrates decoding a WAV file.
func Example_decoding() {
	samples := []int16{100, 200, 300, 400, 500}
	wavData := new(bytes.Buffer)
	wav.WriteWAV16(wavData, 16000, 1, samples)

	src, err := wav.Decoder{}.Decode(wavData)
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	fmt.Printf("Specs: %v\n", src.Specs())
	fmt.Printf("Length: %d frames\n", src.Length())

	buf := make([]float32, 10)
	n, err := src.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		fmt.Printf("Read error: %v\n", err)
		return
	}

	fmt.Printf("Read %d frames\n", n)
	// Output:
	// Specs: 16000Hz mono
	// Length: 5 frames
	// Read 5 frames
}

// Example_encoding demonstrates writing a WAV file to a plain writer.
func Example_encoding() {
	samples := make([]int16, 1000)
	for i := range samples {
		samples[i] = int16((i % 100) * 100)
	}

	output := new(bytes.Buffer)
	if err := wav.WriteWAV16(output, 8000, 1, samples); err != nil {
		fmt.Printf("Write error: %v\n", err)
		return
	}

	fmt.Printf("Wrote %d bytes\n", output.Len())
	// Output:
	// Wrote 2044 bytes
}

// Example_roundTrip shows encoding and then decoding.
func Example_roundTrip() {
	original := []int16{-1000, -500, 0, 500, 1000}

	wavData := new(bytes.Buffer)
	if err := wav.WriteWAV16(wavData, 8000, 1, original); err != nil {
		fmt.Printf("Encode error: %v\n", err)
		return
	}

	src, err := wav.Decoder{}.Decode(wavData)
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	buf := make([]float32, len(original))
	n, _ := src.Read(buf)

	recovered := make([]int16, n)
	for i := range n {
		recovered[i] = int16(buf[i] * 32768.0)
	}

	fmt.Printf("Original:  %v\n", original)
	fmt.Printf("Recovered: %v\n", recovered)
	// Output:
	// Original:  [-1000 -500 0 500 1000]
	// Recovered: [-1000 -500 0 500 1000]
}

// Example_errorNotWAV shows handling of invalid WAV files.
func Example_errorNotWAV() {
	invalidData := bytes.NewReader([]byte("This is not a WAV file"))

	_, err := wav.Decoder{}.Decode(invalidData)
	if errors.Is(err, wav.ErrNotWavFile) {
		fmt.Println("Detected: Not a valid WAV file")
	} else if err != nil {
		fmt.Printf("Other error: %v\n", err)
	}
	// Output: Detected: Not a valid WAV file
}

// Example_seeking reads the last frames of a stereo file.
func Example_seeking() {
	wavData := new(bytes.Buffer)
	wav.WriteWAV16(wavData, 8000, 2, []int16{0, 0, 8192, -8192, 16384, -16384})

	src, _ := wav.Decoder{}.Decode(wavData)
	src.Seek(1)

	buf := make([]float32, 4)
	n, err := src.Read(buf)
	fmt.Println(n, errors.Is(err, io.EOF), buf)
	// Output: 2 true [0.25 -0.25 0.5 -0.5]
}
