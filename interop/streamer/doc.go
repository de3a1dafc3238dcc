// SPDX-License-Identifier: EPL-2.0

// Package streamer connects audio.Reader pipelines with
// github.com/gopxl/beep/v2.
//
// ToStreamer exposes a Reader as a beep.StreamSeeker so it can be played
// or combined with beep's own streamers. FromStreamer goes the other way
// and lets a beep decoder or effect chain feed a device.Device:
//
//	s, format, _ := mp3.Decode(file) // github.com/gopxl/beep/v2/mp3
//	r := streamer.FromStreamer(s, format)
//	dev.Play(r, false)
package streamer
