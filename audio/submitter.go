// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/ik5/audfeed/utils"
)

// Submitter drains the staging window into a Device, never asking for more
// frames than the device can take right now.
type Submitter struct {
	dev Device
}

func NewSubmitter(dev Device) *Submitter {
	return &Submitter{dev: dev}
}

// Submit pushes the staged frames the device has not received yet, scaled by
// gain, and returns how many frames were handed over. Zero frames with a nil
// error means the window is exhausted or the device is full for now.
func (s *Submitter) Submit(buf *StagingBuffer, clock *PlaybackClock, gain float32) (int, error) {
	pending := buf.Frames() - clock.Submitted()
	if pending <= 0 {
		return 0, nil
	}

	padding, err := s.dev.Padding()
	if err != nil {
		return 0, fmt.Errorf("%w: padding: %w", ErrDevice, err)
	}
	free := s.dev.BufferFrames() - padding
	if pending > free {
		pending = free
	}
	if pending <= 0 {
		return 0, nil
	}

	region, err := s.dev.Acquire(pending)
	if err != nil {
		return 0, fmt.Errorf("%w: acquire %d frames: %w", ErrDevice, pending, err)
	}
	if len(region) < pending*Channels {
		return 0, fmt.Errorf("%w: acquire %d frames: got region of %d samples", ErrDevice, pending, len(region))
	}

	start := clock.Submitted()
	for i := range pending {
		l, r := buf.Frame(start + i)
		region[2*i] = utils.ScaleInt16(l, gain)
		region[2*i+1] = utils.ScaleInt16(r, gain)
	}

	if err := s.dev.Commit(pending); err != nil {
		return 0, fmt.Errorf("%w: commit %d frames: %w", ErrDevice, pending, err)
	}
	clock.Advance(pending, s.dev.SampleRate())

	return pending, nil
}
