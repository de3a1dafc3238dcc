// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/utils"
)

// Encode drains r into w as big-endian PCM of bitDepth bits and returns
// the number of frames written. w must seek so the chunk sizes can be
// patched on Close.
func Encode(w io.WriteSeeker, r audio.Reader, bitDepth int) (int, error) {
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
	specs := r.Specs()
	if !specs.Valid() {
		return 0, fmt.Errorf("%w: %v", audio.ErrInvalidSpecs, specs)
	}
	ch := int(specs.Channels)

	enc := aiff.NewEncoder(w, int(specs.Rate), bitDepth, ch)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: ch, SampleRate: int(specs.Rate)},
		SourceBitDepth: bitDepth,
	}
	samples := make([]float32, skipChunk*ch)

	frames := 0
	for {
		n, err := r.Read(samples)
		if n > 0 {
			buf.Data = buf.Data[:0]
			for _, v := range samples[:n*ch] {
				buf.Data = append(buf.Data, utils.FloatToPCM(v, bitDepth))
			}
			if werr := enc.Write(buf); werr != nil {
				return frames, fmt.Errorf("%w", werr)
			}
			frames += n
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return frames, err
		}
	}

	if err := enc.Close(); err != nil {
		return frames, fmt.Errorf("%w", err)
	}
	return frames, nil
}
