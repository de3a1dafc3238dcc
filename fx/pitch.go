// SPDX-License-Identifier: EPL-2.0

package fx

import "github.com/ik5/audmix/audio"

// PitchReader scales the reported sample rate by a pitch factor. It does
// not touch the samples; a downstream resampler turns the changed rate into
// a pitch shift.
type PitchReader struct {
	audio.EffectReader

	pitch float64
}

// NewPitchReader wraps r with the given pitch. Non-positive values become 1.
func NewPitchReader(r audio.Reader, pitch float64) *PitchReader {
	if pitch <= 0 {
		pitch = 1
	}
	return &PitchReader{EffectReader: audio.NewEffectReader(r), pitch: pitch}
}

func (r *PitchReader) Specs() audio.Specs {
	specs := r.Upstream().Specs()
	specs.Rate *= r.pitch
	return specs
}

// Pitch returns the current factor.
func (r *PitchReader) Pitch() float64 { return r.pitch }

// SetPitch changes the factor. Values <= 0 are ignored.
func (r *PitchReader) SetPitch(pitch float64) {
	if pitch > 0 {
		r.pitch = pitch
	}
}
