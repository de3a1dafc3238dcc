// SPDX-License-Identifier: EPL-2.0

// Package aiff reads and writes AIFF (Audio Interchange File Format) files
// through github.com/go-audio/aiff.
//
// Integer PCM of 8, 16, 24 and 32 bits is supported. Samples are
// big-endian on disk; the Reader yields interleaved float32 in [-1, 1].
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // not an AIFF file
//	}
//
// The whole input is buffered. Seek restarts the decoder and skips
// forward, so seeking far into a long file costs a decode of the skipped
// part.
//
// Encode writes any audio.Reader to an io.WriteSeeker:
//
//	f, _ := os.Create("out.aiff")
//	frames, err := aiff.Encode(f, reader, 16)
//
// Register adds the decoder to an audio.Registry under "aiff", "aif"
// and "aifc". Compressed AIFF-C payloads are not decoded.
package aiff
