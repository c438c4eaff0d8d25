// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

const (
	MinGainDB = -60.0
	MaxGainDB = 10.0
)

// ClampGainDB limits db to [MinGainDB, MaxGainDB]. NaN is treated as 0 dB.
func ClampGainDB(db float64) float64 {
	if math.IsNaN(db) {
		return 0
	}
	if db > MaxGainDB {
		return MaxGainDB
	} else if db < MinGainDB {
		return MinGainDB
	}
	return db
}

// DBToAmplitude converts a gain in decibels to a linear amplitude multiplier.
// Inputs outside [MinGainDB, MaxGainDB] saturate to the boundary value.
func DBToAmplitude(db float64) float32 {
	return float32(math.Pow(10, ClampGainDB(db)/20))
}
