// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files.
//
// Decoding and the seekable Encode path use github.com/go-audio/wav.
// Integer PCM of 8, 16, 24 and 32 bits is supported in any channel layout
// the audio package knows.
//
// # Decoding
//
//	src, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // errors.Is(err, wav.ErrNotWavFile) etc.
//	}
//	buf := make([]float32, 4096)
//	n, err := src.Read(buf)
//
// The whole input is buffered, so the returned Reader is seekable and
// reports its length.
//
// # Encoding
//
// Encode drains any audio.Reader into an io.WriteSeeker:
//
//	f, _ := os.Create("out.wav")
//	frames, err := wav.Encode(f, reader, 16)
//
// WriteWAV16 writes pre-converted 16-bit samples to a plain io.Writer
// with a canonical 44 byte header, for destinations that cannot seek.
package wav
