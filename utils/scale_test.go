// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestScaleInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input int16
		gain  float32
		want  int16
	}{
		{name: "unity", input: 1234, gain: 1.0, want: 1234},
		{name: "unity negative", input: -1234, gain: 1.0, want: -1234},
		{name: "zero sample", input: 0, gain: 3.16, want: 0},
		{name: "half", input: 1000, gain: 0.5, want: 500},
		{name: "mute", input: 32000, gain: 0, want: 0},
		{name: "truncates toward zero", input: 3, gain: 0.5, want: 1},
		{name: "saturates high", input: 30000, gain: 2, want: math.MaxInt16},
		{name: "saturates low", input: -30000, gain: 2, want: math.MinInt16},
		{name: "max stays max", input: math.MaxInt16, gain: 1, want: math.MaxInt16},
		{name: "min stays min", input: math.MinInt16, gain: 1, want: math.MinInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ScaleInt16(tt.input, tt.gain)
			if got != tt.want {
				t.Errorf("ScaleInt16(%d, %v) = %d, want %d", tt.input, tt.gain, got, tt.want)
			}
		})
	}
}

func BenchmarkScaleInt16(b *testing.B) {
	var result int16

	b.ResetTimer()
	b.ReportAllocs()

	for i := range b.N {
		result = ScaleInt16(int16(i), 0.7)
	}

	_ = result
}

func TestScaleInt16_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = ScaleInt16(12345, 1.5)
	})

	if allocs > 0 {
		t.Errorf("ScaleInt16 allocated %v times, want 0", allocs)
	}
}
