// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// PCM16Scale is the divisor/multiplier shared by both directions of the
// int16 <-> float32 conversion. Both directions use 32767, so -32768 maps
// slightly below -1.0.
const PCM16Scale = 32767.0

// Float32ToInt16 converts a normalized sample to 16-bit PCM.
// The product is truncated toward zero, not rounded, and saturates at the
// int16 limits.
func Float32ToInt16(x float32) int16 {
	v := x * PCM16Scale
	if v >= math.MaxInt16 {
		return math.MaxInt16
	} else if v <= math.MinInt16 {
		return math.MinInt16
	}

	return int16(v)
}

// Int16ToFloat32 converts a 16-bit PCM sample to a normalized float.
func Int16ToFloat32(v int16) float32 {
	return float32(v) / PCM16Scale
}
