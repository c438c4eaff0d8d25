// SPDX-License-Identifier: EPL-2.0

package audio

// StagingBuffer is the fixed-capacity submit-ahead window: interleaved
// stereo samples staged by the tick loop before they are handed to the device.
type StagingBuffer struct {
	samples []int16
}

func NewStagingBuffer(frames int) *StagingBuffer {
	return &StagingBuffer{samples: make([]int16, frames*Channels)}
}

// Frames is the window size in stereo frames.
func (b *StagingBuffer) Frames() int { return len(b.samples) / Channels }

// Samples exposes the whole window for the mixing step.
func (b *StagingBuffer) Samples() []int16 { return b.samples }

// Clear resets the window to silence.
func (b *StagingBuffer) Clear() {
	clear(b.samples)
}

// Frame returns the left and right samples of frame i.
func (b *StagingBuffer) Frame(i int) (int16, int16) {
	return b.samples[Channels*i], b.samples[Channels*i+1]
}
