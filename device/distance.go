// SPDX-License-Identifier: EPL-2.0

package device

import "math"

// DistanceModel selects how volume falls off with distance.
type DistanceModel int

const (
	// DistanceModelInvalid disables distance attenuation.
	DistanceModelInvalid DistanceModel = iota
	DistanceModelInverse
	DistanceModelInverseClamped
	DistanceModelLinear
	DistanceModelLinearClamped
	DistanceModelExponent
	DistanceModelExponentClamped
)

func (m DistanceModel) String() string {
	switch m {
	case DistanceModelInverse:
		return "inverse"
	case DistanceModelInverseClamped:
		return "inverse-clamped"
	case DistanceModelLinear:
		return "linear"
	case DistanceModelLinearClamped:
		return "linear-clamped"
	case DistanceModelExponent:
		return "exponent"
	case DistanceModelExponentClamped:
		return "exponent-clamped"
	}
	return "none"
}

// distanceParams are the per-voice attenuation settings.
type distanceParams struct {
	reference   float64
	max         float64
	attenuation float64
}

// gain returns the distance attenuation of a voice at distance.
func (m DistanceModel) gain(distance float64, p distanceParams) float64 {
	switch m {
	case DistanceModelInverseClamped, DistanceModelLinearClamped, DistanceModelExponentClamped:
		distance = max(min(distance, p.max), p.reference)
	}

	switch m {
	case DistanceModelInverse, DistanceModelInverseClamped:
		d := p.reference + p.attenuation*(distance-p.reference)
		if d <= 0 {
			return 1
		}
		return p.reference / d
	case DistanceModelLinear, DistanceModelLinearClamped:
		span := p.max - p.reference
		if span == 0 {
			if distance > p.reference {
				return 0
			}
			return 1
		}
		return max(1-p.attenuation*(distance-p.reference)/span, 0)
	case DistanceModelExponent, DistanceModelExponentClamped:
		if p.reference == 0 {
			return 0
		}
		return math.Pow(distance/p.reference, -p.attenuation)
	}
	return 1
}
