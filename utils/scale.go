// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// ScaleInt16 multiplies a 16-bit sample by gain, saturating at the int16 range
// instead of wrapping around.
func ScaleInt16(s int16, gain float32) int16 {
	v := float32(s) * gain
	if v >= math.MaxInt16 {
		return math.MaxInt16
	} else if v <= math.MinInt16 {
		return math.MinInt16
	}

	return int16(v)
}
