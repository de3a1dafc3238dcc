// SPDX-License-Identifier: EPL-2.0

package fx

import (
	"io"

	"github.com/ik5/audmix/audio"
)

// ADSRState is the envelope stage.
type ADSRState int

const (
	ADSRAttack ADSRState = iota
	ADSRDecay
	ADSRSustain
	ADSRRelease
	ADSRInvalid
)

func (s ADSRState) String() string {
	switch s {
	case ADSRAttack:
		return "attack"
	case ADSRDecay:
		return "decay"
	case ADSRSustain:
		return "sustain"
	case ADSRRelease:
		return "release"
	}
	return "invalid"
}

// ADSRReader shapes its upstream with an attack/decay/sustain/release
// envelope. Times are in seconds, sustain is a level in [0, 1]. The stream
// ends with io.EOF at the frame where the release reaches silence.
type ADSRReader struct {
	audio.EffectReader

	attack  float64
	decay   float64
	sustain float64
	release float64

	state ADSRState
	level float64
	drop  float64 // level lost over one release time
}

func NewADSRReader(r audio.Reader, attack, decay, sustain, release float64) *ADSRReader {
	a := &ADSRReader{
		EffectReader: audio.NewEffectReader(r),
		attack:       attack,
		decay:        decay,
		sustain:      min(max(sustain, 0), 1),
		release:      release,
	}
	a.restart()
	return a
}

func (r *ADSRReader) restart() {
	r.level = 0
	r.nextState(ADSRAttack)
}

// State returns the current stage.
func (r *ADSRReader) State() ADSRState { return r.state }

// Level returns the current envelope level.
func (r *ADSRReader) Level() float64 { return r.level }

// Release starts the release stage from the current level, falling at the
// sustain slope. It is a no-op once the envelope is releasing or finished.
func (r *ADSRReader) Release() {
	if r.state < ADSRRelease {
		r.nextState(ADSRRelease)
	}
}

func (r *ADSRReader) nextState(state ADSRState) {
	r.state = state
	switch state {
	case ADSRAttack:
		if r.attack <= 0 {
			r.level = 1
			r.nextState(ADSRDecay)
		}
	case ADSRDecay:
		if r.decay <= 0 {
			r.nextState(ADSRSustain)
			return
		}
		if r.level > 1 {
			// Carry the attack overshoot into the decay slope.
			r.level = 1 - (r.level-1)*r.attack/r.decay*(1-r.sustain)
			if r.level <= r.sustain {
				r.nextState(ADSRSustain)
			}
		}
	case ADSRSustain:
		r.level = r.sustain
	case ADSRRelease:
		if r.release <= 0 || r.level <= 0 {
			r.nextState(ADSRInvalid)
			return
		}
		r.drop = r.sustain
		if r.drop == 0 {
			// A zero sustain would never reach silence.
			r.drop = r.level
		}
	case ADSRInvalid:
		r.level = 0
	}
}

// Seek restarts the envelope from the attack stage.
func (r *ADSRReader) Seek(position int) error {
	if err := r.Upstream().Seek(position); err != nil {
		return err
	}
	r.restart()
	return nil
}

func (r *ADSRReader) Read(dst []float32) (int, error) {
	if r.state == ADSRInvalid {
		return 0, io.EOF
	}

	n, err := r.Upstream().Read(dst)
	specs := r.Specs()
	channels := int(specs.Channels)

	for i := range n {
		if r.state == ADSRInvalid {
			return i, io.EOF
		}

		g := float32(r.level)
		frame := dst[i*channels : (i+1)*channels]
		for ch := range frame {
			frame[ch] *= g
		}

		switch r.state {
		case ADSRAttack:
			r.level += 1 / (r.attack * specs.Rate)
			if r.level >= 1 {
				r.nextState(ADSRDecay)
			}
		case ADSRDecay:
			r.level -= (1 - r.sustain) / (r.decay * specs.Rate)
			if r.level <= r.sustain {
				r.nextState(ADSRSustain)
			}
		case ADSRRelease:
			r.level -= r.drop / (r.release * specs.Rate)
			if r.level <= 0 {
				r.nextState(ADSRInvalid)
			}
		}
	}
	if r.state == ADSRInvalid {
		return n, io.EOF
	}
	return n, err
}
