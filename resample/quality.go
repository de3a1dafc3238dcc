// SPDX-License-Identifier: EPL-2.0

package resample

import "fmt"

// Quality selects the resampling algorithm.
type Quality int

const (
	// QualityDefault selects QualityMedium.
	QualityDefault Quality = iota
	// QualityFastest uses linear interpolation.
	QualityFastest
	QualityLow
	QualityMedium
	QualityHigh
)

func (q Quality) String() string {
	switch q {
	case QualityDefault:
		return "default"
	case QualityFastest:
		return "fastest"
	case QualityLow:
		return "low"
	case QualityMedium:
		return "medium"
	case QualityHigh:
		return "high"
	}
	return fmt.Sprintf("quality(%d)", int(q))
}

// filter is one precomputed half of a windowed sinc.
type filter struct {
	coeff []float32
	// step is the number of table entries per zero crossing.
	step float64
	// width is the half length in zero crossings.
	width float64
}

func (f filter) tableLen() float64 { return float64(len(f.coeff) - 1) }

var filters = map[Quality]filter{
	QualityLow:    {coeff: coeffLow[:], step: coeffLowStep, width: coeffLowLength / coeffLowStep},
	QualityMedium: {coeff: coeffMedium[:], step: coeffMediumStep, width: coeffMediumLength / coeffMediumStep},
	QualityHigh:   {coeff: coeffHigh[:], step: coeffHighStep, width: coeffHighLength / coeffHighStep},
}
