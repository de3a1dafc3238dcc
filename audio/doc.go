// SPDX-License-Identifier: EPL-2.0

// Package audio defines the streaming model shared by every other package:
// Specs, the pull-based Reader, the Sound factory, decoders and the staging
// Buffer.
//
// # Readers
//
// A Reader produces interleaved float32 frames on demand:
//
//	buf := make([]float32, 1024*int(r.Specs().Channels))
//	for {
//	    n, err := r.Read(buf)
//	    consume(buf[:n*int(r.Specs().Channels)])
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
//
// io.EOF arrives together with the last frames. Short reads with a nil error
// are legal; callers keep reading.
//
// # Sounds
//
// A Sound is an immutable description (a file, "this sound delayed by two
// seconds") and CreateReader builds a fresh, independent Reader for every
// playback. Effects in package fx come as both a Reader and a Sound.
//
// # Effects
//
// EffectReader forwards all calls to one upstream reader. An effect embeds
// it and overrides only the operations it changes:
//
//	type gain struct {
//	    audio.EffectReader
//	    g float32
//	}
//
//	func (r *gain) Read(dst []float32) (int, error) {
//	    n, err := r.EffectReader.Read(dst)
//	    for i := range r.Specs().Samples(n) {
//	        dst[i] *= r.g
//	    }
//	    return n, err
//	}
package audio
