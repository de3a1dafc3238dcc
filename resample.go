// SPDX-License-Identifier: EPL-2.0

package audmix

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/device"
	"github.com/ik5/audmix/resample"
	"github.com/ik5/audmix/utils"
)

// ResampleToMono16 resamples src to targetRate, downmixes it to mono and
// collects the whole stream as 16-bit PCM.
//
// The pipeline is a medium quality resample.New followed by a mono
// device.ChannelMapperReader. bufferSize is the number of frames read per
// iteration.
//
//	src, _ := wav.Decoder{}.Decode(file)
//	pcm16, rate, err := audmix.ResampleToMono16(src, 8000, 4096)
//	if err != nil {
//	    return err
//	}
//	wav.WriteWAV16(out, rate, 1, pcm16)
func ResampleToMono16(src audio.Reader, targetRate int, bufferSize int) ([]int16, int, error) {
	if targetRate <= 0 {
		return nil, targetRate, fmt.Errorf("%w: rate %d", audio.ErrInvalidSpecs, targetRate)
	}
	rs := resample.New(src, float64(targetRate), resample.QualityMedium)
	mono := device.NewChannelMapperReader(rs, audio.ChannelsMono)

	estimated := targetRate * 2 // about two seconds
	if l := mono.Length(); l >= 0 {
		estimated = l
	}
	pcm16 := make([]int16, 0, estimated)
	buf := make([]float32, max(bufferSize, 1))

	for {
		n, err := mono.Read(buf)
		if n > 0 {
			start := len(pcm16)
			pcm16 = append(pcm16, make([]int16, n)...)
			utils.Float32ToInt16Slice(pcm16[start:], buf[:n])
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, targetRate, fmt.Errorf("%w", err)
		}
	}

	return pcm16, targetRate, nil
}
