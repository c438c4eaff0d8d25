// SPDX-License-Identifier: EPL-2.0

package device

import (
	"fmt"

	"github.com/ik5/audfeed/audio"
)

// handshake is the acquire/commit protocol every backend shares: at most one
// region is held at a time, and a commit may release fewer frames than were
// acquired but never more.
type handshake struct {
	region  []int16
	pending int
	held    bool
}

func (h *handshake) acquire(frames, free int) ([]int16, error) {
	if h.held {
		return nil, ErrBufferPending
	}
	if frames < 0 || frames > free {
		return nil, fmt.Errorf("%w: %d frames requested, %d free", ErrBufferTooLarge, frames, free)
	}

	n := frames * audio.Channels
	if cap(h.region) < n {
		h.region = make([]int16, n)
	}
	h.region = h.region[:n]
	clear(h.region)

	h.pending = frames
	h.held = true

	return h.region, nil
}

// commit ends the handshake and returns the committed samples. The returned
// slice is only valid until the next acquire.
func (h *handshake) commit(frames int) ([]int16, error) {
	if !h.held {
		return nil, ErrNoPendingBuffer
	}
	if frames < 0 || frames > h.pending {
		return nil, fmt.Errorf("%w: committing %d of %d acquired frames", ErrBufferTooLarge, frames, h.pending)
	}

	h.held = false
	h.pending = 0

	return h.region[:frames*audio.Channels], nil
}
