// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with
// github.com/jfreymuth/oggvorbis.
//
// Decoded frames keep the channel layout and sample rate of the stream:
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	buf := make([]float32, 4096)
//	n, err := src.Read(buf)
//
// The input is buffered in memory, so Length reports the stream length
// and Seek jumps to any frame.
package vorbis
