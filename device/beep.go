// SPDX-License-Identifier: EPL-2.0

package device

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/ik5/audfeed/audio"
	"github.com/ik5/audfeed/utils"
)

// beepLatency is the speaker buffer handed to speaker.Init.
const beepLatency = 20 * time.Millisecond

// Beep plays through gopxl/beep's speaker package. The speaker pulls from a
// streamer that drains the ring.
type Beep struct {
	*Ring

	stream *ringStreamer

	mu      sync.Mutex
	started bool
}

func NewBeep(sampleRate, capacity int) (*Beep, error) {
	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, sr.N(beepLatency)); err != nil {
		return nil, err
	}

	ring := NewRing(sampleRate, capacity)

	return &Beep{Ring: ring, stream: &ringStreamer{ring: ring}}, nil
}

func (b *Beep) Start() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.Ring.Closed() {
		return ErrClosed
	}
	if !b.started {
		speaker.Play(b.stream)
		b.started = true
	}

	return nil
}

func (b *Beep) Stop() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.started {
		return ErrNotStarted
	}
	speaker.Clear()
	b.started = false

	return nil
}

func (b *Beep) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.Ring.Closed() {
		return nil
	}

	speaker.Clear()
	b.started = false

	return b.Ring.Close()
}

// ringStreamer is a beep.Streamer over the ring. Underruns play as silence;
// the stream only ends when the ring is closed.
type ringStreamer struct {
	ring    *Ring
	scratch []int16
}

func (s *ringStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.ring.Closed() {
		return 0, false
	}

	n := len(samples) * audio.Channels
	if cap(s.scratch) < n {
		s.scratch = make([]int16, n)
	}
	buf := s.scratch[:n]

	s.ring.ReadFrames(buf)
	for i := range samples {
		samples[i][0] = utils.Int16ToFloat64(buf[i*2])
		samples[i][1] = utils.Int16ToFloat64(buf[i*2+1])
	}

	return len(samples), true
}

func (s *ringStreamer) Err() error { return nil }
