// SPDX-License-Identifier: EPL-2.0

package device

// Null accepts and discards every frame. It is always empty, so a context
// driving it submits a full window on every refill.
type Null struct {
	rate     int
	capacity int
	hs       handshake
	closed   bool

	// Frames counts everything committed.
	Frames int
}

func NewNull(sampleRate, capacity int) *Null {
	return &Null{rate: sampleRate, capacity: capacity}
}

func (n *Null) SampleRate() int   { return n.rate }
func (n *Null) BufferFrames() int { return n.capacity }

func (n *Null) Padding() (int, error) {
	if n.closed {
		return 0, ErrClosed
	}
	return 0, nil
}

func (n *Null) Acquire(frames int) ([]int16, error) {
	if n.closed {
		return nil, ErrClosed
	}
	return n.hs.acquire(frames, n.capacity)
}

func (n *Null) Commit(frames int) error {
	if n.closed {
		return ErrClosed
	}
	if _, err := n.hs.commit(frames); err != nil {
		return err
	}
	n.Frames += frames

	return nil
}

func (n *Null) Start() error { return nil }
func (n *Null) Stop() error  { return nil }

func (n *Null) Close() error {
	n.closed = true
	return nil
}
