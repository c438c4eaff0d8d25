// SPDX-License-Identifier: EPL-2.0

package audio

// Device is the output side of the pipeline: a ring of BufferFrames stereo
// 16-bit frames that the hardware drains at SampleRate.
//
// None of the methods may block. Acquire hands out a writable region of
// exactly frames frames (2*frames samples); Commit queues the first frames
// of that region for playback. At most one region is outstanding.
type Device interface {
	SampleRate() int
	BufferFrames() int
	// Padding is the number of frames queued but not yet played.
	Padding() (int, error)
	Acquire(frames int) ([]int16, error)
	Commit(frames int) error

	Start() error
	Stop() error
	Close() error
}
