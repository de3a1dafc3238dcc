// SPDX-License-Identifier: EPL-2.0

// Package fx provides single-input effect readers and the Sound factories
// that build them.
//
// Every reader embeds audio.EffectReader and overrides only the operations
// it changes. Sound factories create a fresh upstream reader per call, so
// one Sound can play many times concurrently:
//
//	beep := fx.Limit(source.Sine(440, 44100), 0, 1)
//	sound := fx.FadeOut(fx.Loop(beep, 2), 1.5, 0.5)
//	r, err := sound.CreateReader()
package fx
