// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files with github.com/hajimehoshi/go-mp3.
//
// The decoder always produces 16-bit stereo, returned as float32 frames in
// [-1, 1] at the file's sample rate:
//
//	src, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	buf := make([]float32, 4096)
//	n, err := src.Read(buf) // n frames, 2 samples each
//
// The input is buffered in memory so Length and Seek work. Mono output or
// another rate comes from the device pipeline or from the resample and
// device packages.
package mp3
