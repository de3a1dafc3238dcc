// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/utils"
)

const writeChunk = 4096

// Encode drains r into w as integer PCM of bitDepth bits (8, 16, 24 or
// 32). The header sizes are patched on completion, so w must seek. It
// returns the number of frames written.
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

	enc := wav.NewEncoder(w, int(specs.Rate), bitDepth, ch, formatPCM)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: ch, SampleRate: int(specs.Rate)},
		SourceBitDepth: bitDepth,
	}
	samples := make([]float32, writeChunk*ch)

	frames := 0
	for {
		n, err := r.Read(samples)
		if n > 0 {
			buf.Data = buf.Data[:0]
			for _, v := range samples[:n*ch] {
				pcm := utils.FloatToPCM(v, bitDepth)
				if bitDepth == 8 {
					pcm += 128
				}
				buf.Data = append(buf.Data, pcm)
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
		if r.Specs() != specs {
			return frames, fmt.Errorf("%w: format changed to %v", audio.ErrInvalidSpecs, r.Specs())
		}
	}

	if err := enc.Close(); err != nil {
		return frames, fmt.Errorf("%w", err)
	}
	return frames, nil
}
