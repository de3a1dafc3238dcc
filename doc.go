// SPDX-License-Identifier: EPL-2.0

// Package audmix is an audio engine built from pull-based readers.
//
// A pipeline is a chain of audio.Reader values. Leaf readers come from
// the source package (tones, silence, memory buffers, files) or from the
// decoders in formats/wav, formats/mp3, formats/vorbis and formats/aiff.
// The fx package wraps readers with delay, fades, limits, loops, reversal,
// pitch, ADSR envelopes and concatenation. The resample package converts
// rates and device.Device mixes any number of voices with volume ramps,
// panning and 3D attenuation.
//
// # Quick Start
//
// Play a file through the speakers:
//
//	reg := audio.NewRegistry()
//	wav.Register(reg)
//	mp3.Register(reg)
//
//	dev, _ := device.New(device.Options{})
//	out, _ := oto.New(dev, oto.Options{}) // backend/oto
//	defer out.Close()
//
//	h, _ := dev.PlaySound(fx.FadeIn(source.File("song.mp3", reg), 0, 2), false)
//	h.SetVolume(0.8)
//
// # Offline Rendering
//
// Render plays a sound on a private device and returns the mix as a
// Reader; Mixdown writes it to a WAV file:
//
//	f, _ := os.Create("mix.wav")
//	frames, err := audmix.Mixdown(f, sound, audmix.MixdownOptions{BitDepth: 24})
//
// ResampleToMono16 converts any reader to mono 16-bit PCM at a given rate,
// ready for wav.WriteWAV16 or telephony sinks.
//
// # Backends
//
// backend/oto drives a Device from the platform audio output and
// backend/null pulls it on a timer without sound hardware. interop/streamer
// bridges readers and github.com/gopxl/beep/v2 streamers.
package audmix
