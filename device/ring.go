// SPDX-License-Identifier: EPL-2.0

package device

import (
	"sync"

	"github.com/ik5/audfeed/audio"
)

// Ring is a fixed-capacity queue of interleaved stereo frames that sits
// between the mixer and a backend which drains it from its own goroutine.
// The mixer side (Padding, Acquire, Commit) and the drain side (ReadFrames)
// may run concurrently.
type Ring struct {
	mu       sync.Mutex
	rate     int
	capacity int
	data     []int16
	head     int // first queued frame
	queued   int
	hs       handshake
	closed   bool
}

func NewRing(sampleRate, capacity int) *Ring {
	return &Ring{
		rate:     sampleRate,
		capacity: capacity,
		data:     make([]int16, capacity*audio.Channels),
	}
}

func (r *Ring) SampleRate() int   { return r.rate }
func (r *Ring) BufferFrames() int { return r.capacity }

// Padding reports the frames queued but not yet drained.
func (r *Ring) Padding() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return 0, ErrClosed
	}

	return r.queued, nil
}

func (r *Ring) Acquire(frames int) ([]int16, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, ErrClosed
	}

	return r.hs.acquire(frames, r.capacity-r.queued)
}

func (r *Ring) Commit(frames int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}

	samples, err := r.hs.commit(frames)
	if err != nil {
		return err
	}
	if frames == 0 {
		return nil
	}

	// The region was sized against free space at acquire time and the drain
	// side only ever shrinks the queue, so this always fits.
	tail := (r.head + r.queued) % r.capacity
	for i := range frames {
		at := ((tail + i) % r.capacity) * audio.Channels
		r.data[at] = samples[i*audio.Channels]
		r.data[at+1] = samples[i*audio.Channels+1]
	}
	r.queued += frames

	return nil
}

// ReadFrames drains up to len(dst)/2 frames into dst and zero-fills whatever
// the queue could not supply. It returns the number of real frames copied.
func (r *Ring) ReadFrames(dst []int16) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	want := len(dst) / audio.Channels
	n := min(want, r.queued)

	for i := range n {
		at := ((r.head + i) % r.capacity) * audio.Channels
		dst[i*audio.Channels] = r.data[at]
		dst[i*audio.Channels+1] = r.data[at+1]
	}
	clear(dst[n*audio.Channels:])

	if n > 0 {
		r.head = (r.head + n) % r.capacity
		r.queued -= n
	}

	return n
}

// Flush drops everything queued.
func (r *Ring) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.head = 0
	r.queued = 0
}

func (r *Ring) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.closed
}

// Close makes every later mixer-side call fail with ErrClosed. It is safe to
// call more than once.
func (r *Ring) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true
	r.queued = 0

	return nil
}
