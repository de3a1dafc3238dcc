// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ik5/audmix/formats/aiff"
	"github.com/ik5/audmix/formats/wav"
	"github.com/ik5/audmix/fx"
	"github.com/ik5/audmix/resample"
	"github.com/ik5/audmix/source"
)

// Example writes a short tone to an AIFF file and decodes it again.
func Example() {
	f, err := os.CreateTemp("", "tone-*.aiff")
	if err != nil {
		log.Fatal(err)
	}
	defer os.Remove(f.Name())

	tone, err := fx.NewLimiterReader(source.NewSineReader(440, 22050), 0, 1)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := aiff.Encode(f, tone, 16); err != nil {
		log.Fatal(err)
	}
	f.Close()

	data, err := os.ReadFile(f.Name())
	if err != nil {
		log.Fatal(err)
	}
	src, err := aiff.Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Specs: %v\n", src.Specs())
	fmt.Printf("Length: %d frames\n", src.Length())
	// Output:
	// Specs: 22050Hz mono
	// Length: 22050 frames
}

// ExampleDecoder_Decode_convertToWav converts an AIFF file to a 16kHz WAV.
func ExampleDecoder_Decode_convertToWav() {
	in, err := os.Open("input.aiff")
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	src, err := aiff.Decoder{}.Decode(in)
	if err != nil {
		log.Fatal(err)
	}

	out, err := os.Create("output.wav")
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	if _, err := wav.Encode(out, resample.New(src, 16000, resample.QualityHigh), 16); err != nil {
		log.Fatal(err)
	}
	fmt.Println("AIFF converted to WAV")
}

// ExampleDecoder_Decode_errorHandling shows error handling for invalid AIFF files.
func ExampleDecoder_Decode_errorHandling() {
	_, err := aiff.Decoder{}.Decode(bytes.NewReader([]byte("not an aiff file")))
	if errors.Is(err, aiff.ErrNotAiffFile) {
		fmt.Printf("Error: %v\n", err)
	}
	// Output:
	// Error: not an AIFF file
}
