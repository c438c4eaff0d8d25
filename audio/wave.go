// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"

	"github.com/ik5/audfeed/utils"
)

// Waveform returns the amplitude in [-1, 1] of a periodic signal with
// frequency f (Hz) at time t (seconds).
type Waveform func(t, f float64) float64

func SineWave(t, f float64) float64 {
	return math.Sin(2 * math.Pi * t * f)
}

func SawtoothWave(t, f float64) float64 {
	return 2 * (t*f - math.Floor(0.5+t*f))
}

// NewToneTrack renders seconds of wave at freq into a stereo Track.
// amplitude scales the [-1, 1] waveform before conversion to 16-bit.
func NewToneTrack(sampleRate int, seconds, freq float64, wave Waveform, amplitude float32) (*Track, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if wave == nil {
		wave = SineWave
	}

	frames := int(math.Round(seconds * float64(sampleRate)))
	if frames < 0 {
		frames = 0
	}

	samples := make([]int16, frames*Channels)
	for i := range frames {
		t := float64(i) / float64(sampleRate)
		v := utils.Float32ToInt16(amplitude * float32(wave(t, freq)))
		samples[2*i] = v
		samples[2*i+1] = v
	}

	return NewTrack(sampleRate, Channels, samples)
}
