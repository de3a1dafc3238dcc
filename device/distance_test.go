// SPDX-License-Identifier: EPL-2.0

package device

import "testing"

func TestDistanceModel_Gain(t *testing.T) {
	t.Parallel()

	near := distanceParams{reference: 1, max: 11, attenuation: 1}
	tests := []struct {
		model    DistanceModel
		distance float64
		params   distanceParams
		want     float64
	}{
		{DistanceModelInvalid, 100, near, 1},
		{DistanceModelInverse, 2, near, 0.5},
		{DistanceModelInverse, 0.5, near, 2},
		{DistanceModelInverseClamped, 0.5, near, 1},
		{DistanceModelInverseClamped, 22, near, 1.0 / 11},
		{DistanceModelLinear, 6, near, 0.5},
		{DistanceModelLinear, 20, near, 0},
		{DistanceModelLinearClamped, 0, near, 1},
		{DistanceModelExponent, 4, distanceParams{reference: 1, max: 11, attenuation: 2}, 0.0625},
		{DistanceModelExponentClamped, 100, distanceParams{reference: 1, max: 10, attenuation: 1}, 0.1},
	}

	for _, tt := range tests {
		got := tt.model.gain(tt.distance, tt.params)
		if !approx(got, tt.want, 1e-12) {
			t.Errorf("%v.gain(%v) = %v, want %v", tt.model, tt.distance, got, tt.want)
		}
	}
}

func TestDistanceModel_String(t *testing.T) {
	t.Parallel()

	if got := DistanceModelInverseClamped.String(); got != "inverse-clamped" {
		t.Errorf("String() = %q", got)
	}
	if got := DistanceModel(99).String(); got != "none" {
		t.Errorf("String() = %q, want none", got)
	}
}
