// SPDX-License-Identifier: EPL-2.0

// Package resample converts a stream to a target sample rate.
//
// Two algorithms are available: a linear interpolator (QualityFastest) and
// a band-limited windowed-sinc resampler after Julius O. Smith's method with
// three precomputed filter tables (QualityLow, QualityMedium, QualityHigh).
// Both follow rate changes of their upstream (for example a fx.PitchReader)
// and ramp the conversion factor across a read to avoid clicks.
//
//go:generate go run ../internal/gencoeff -out jos_coeff_gen.go
package resample
