// SPDX-License-Identifier: EPL-2.0

package utils

func clamp(x float32) float32 {
	if x > 1 {
		return 1
	} else if x < -1 {
		return -1
	}
	return x
}

func Float32ToInt16(x float32) int16 {
	// Use 32767 for positive max to avoid overflow
	return int16(clamp(x) * 32767.0)
}

// Float32ToInt16Slice converts min(len(dst), len(src)) samples and returns
// the count.
func Float32ToInt16Slice(dst []int16, src []float32) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = Float32ToInt16(src[i])
	}
	return n
}

// FloatToPCM scales x in [-1, 1] to a signed integer of bitDepth bits
// (8 to 32). Out of range values are clamped.
func FloatToPCM(x float32, bitDepth int) int {
	scale := float64(int64(1)<<(bitDepth-1) - 1)
	return int(float64(clamp(x)) * scale)
}

// PCMToFloat is the inverse of FloatToPCM; the most negative value maps
// to exactly -1.
func PCMToFloat(v, bitDepth int) float32 {
	return float32(float64(v) / float64(int64(1)<<(bitDepth-1)))
}
