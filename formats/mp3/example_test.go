// SPDX-License-Identifier: EPL-2.0

package mp3_test

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/ik5/audmix/formats/mp3"
	"github.com/ik5/audmix/formats/wav"
)

// ExampleDecoder_Decode_convertToWav demonstrates converting MP3 to WAV format.
func ExampleDecoder_Decode_convertToWav() {
	mp3File, err := os.Open("input.mp3")
	if err != nil {
		log.Fatal(err)
	}
	defer mp3File.Close()

	src, err := mp3.Decoder{}.Decode(mp3File)
	if err != nil {
		log.Fatal(err)
	}

	wavFile, err := os.Create("output.wav")
	if err != nil {
		log.Fatal(err)
	}
	defer wavFile.Close()

	frames, err := wav.Encode(wavFile, src, 16)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("MP3 converted to WAV: %d frames\n", frames)
}

// ExampleDecoder_Decode_errorHandling shows error handling for invalid MP3 files.
func ExampleDecoder_Decode_errorHandling() {
	invalidData := bytes.NewReader([]byte("not an mp3 file"))
	if _, err := (mp3.Decoder{}).Decode(invalidData); err != nil {
		fmt.Println("decode failed")
		return
	}

	fmt.Println("MP3 decoded successfully")
	// Output: decode failed
}
