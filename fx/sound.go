// SPDX-License-Identifier: EPL-2.0

package fx

import "github.com/ik5/audmix/audio"

// wrap builds a Sound that applies build to a fresh reader of s.
func wrap(s audio.Sound, build func(audio.Reader) (audio.Reader, error)) audio.Sound {
	return audio.SoundFunc(func() (audio.Reader, error) {
		r, err := s.CreateReader()
		if err != nil {
			return nil, err
		}
		return build(r)
	})
}

// Delay returns s preceded by seconds of silence.
func Delay(s audio.Sound, seconds float64) audio.Sound {
	return wrap(s, func(r audio.Reader) (audio.Reader, error) {
		return NewDelayReader(r, seconds), nil
	})
}

// FadeIn returns s faded in over [start, start+length) seconds.
func FadeIn(s audio.Sound, start, length float64) audio.Sound {
	return wrap(s, func(r audio.Reader) (audio.Reader, error) {
		return NewFaderReader(r, FadeTypeIn, start, length), nil
	})
}

// FadeOut returns s faded out over [start, start+length) seconds.
func FadeOut(s audio.Sound, start, length float64) audio.Sound {
	return wrap(s, func(r audio.Reader) (audio.Reader, error) {
		return NewFaderReader(r, FadeTypeOut, start, length), nil
	})
}

// Limit returns the [start, end) seconds of s. A negative end is unbounded.
func Limit(s audio.Sound, start, end float64) audio.Sound {
	return wrap(s, func(r audio.Reader) (audio.Reader, error) {
		return NewLimiterReader(r, start, end)
	})
}

// Loop returns s repeated count more times; a negative count loops forever.
func Loop(s audio.Sound, count int) audio.Sound {
	return wrap(s, func(r audio.Reader) (audio.Reader, error) {
		return NewLoopReader(r, count), nil
	})
}

// Reverse returns s played backwards.
func Reverse(s audio.Sound) audio.Sound {
	return wrap(s, func(r audio.Reader) (audio.Reader, error) {
		return NewReverseReader(r)
	})
}

// Pitch returns s with its reported rate scaled by pitch.
func Pitch(s audio.Sound, pitch float64) audio.Sound {
	return wrap(s, func(r audio.Reader) (audio.Reader, error) {
		return NewPitchReader(r, pitch), nil
	})
}

// ADSR returns s shaped by an envelope. The created readers are *ADSRReader
// so callers can Release them.
func ADSR(s audio.Sound, attack, decay, sustain, release float64) audio.Sound {
	return wrap(s, func(r audio.Reader) (audio.Reader, error) {
		return NewADSRReader(r, attack, decay, sustain, release), nil
	})
}

// Double returns a followed by b.
func Double(a, b audio.Sound) audio.Sound {
	return audio.SoundFunc(func() (audio.Reader, error) {
		first, err := a.CreateReader()
		if err != nil {
			return nil, err
		}
		second, err := b.CreateReader()
		if err != nil {
			return nil, err
		}
		return NewDoubleReader(first, second)
	})
}

// PingPong returns s played forwards then backwards. The two halves come
// from separate CreateReader calls and never share seek state.
func PingPong(s audio.Sound) audio.Sound {
	return Double(s, Reverse(s))
}
