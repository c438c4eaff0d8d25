// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts a [-1, 1] sample to 16-bit, clamping anything
// outside the range. Full scale maps to ±32767 so the output is symmetric.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * 32767.0)
}

// Int16ToFloat64 is the inverse direction used by float-based outputs. It
// divides by 32768 so -32768 lands exactly on -1.
func Int16ToFloat64(s int16) float64 {
	return float64(s) / 32768.0
}
