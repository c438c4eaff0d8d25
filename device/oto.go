// SPDX-License-Identifier: EPL-2.0

package device

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/ik5/audfeed/audio"
)

// otoPlayerDivisor sizes oto's own player buffer as 1/50 s of audio, keeping
// the latency added on top of the ring small.
const otoPlayerDivisor = 50

// Oto plays through the system's default output with ebitengine/oto. The
// mixer fills the ring; oto's goroutine drains it through ringReader.
type Oto struct {
	*Ring

	ctx    *oto.Context
	player *oto.Player

	mu      sync.Mutex
	started bool
}

// NewOto opens the output. oto allows one context per process, so a second
// call with different parameters fails.
func NewOto(sampleRate, capacity int) (*Oto, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: audio.Channels,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("opening oto context: %w", err)
	}
	<-ready

	ring := NewRing(sampleRate, capacity)
	player := ctx.NewPlayer(&ringReader{ring: ring})
	player.SetBufferSize(sampleRate / otoPlayerDivisor * audio.Channels * 2)

	return &Oto{Ring: ring, ctx: ctx, player: player}, nil
}

func (o *Oto) Start() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.Ring.Closed() {
		return ErrClosed
	}
	if !o.started {
		o.player.Play()
		o.started = true
	}

	return nil
}

func (o *Oto) Stop() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.started {
		return ErrNotStarted
	}
	o.player.Pause()
	o.started = false

	return nil
}

func (o *Oto) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.Ring.Closed() {
		return nil
	}

	o.started = false
	_ = o.Ring.Close()

	if err := o.player.Close(); err != nil {
		return fmt.Errorf("closing oto player: %w", err)
	}

	return nil
}

// ringReader adapts the ring to the byte stream oto pulls from. It always
// returns whole frames and pads underruns with silence so the player never
// sees a short read.
type ringReader struct {
	ring    *Ring
	scratch []int16
}

func (r *ringReader) Read(p []byte) (int, error) {
	if r.ring.Closed() {
		return 0, io.EOF
	}

	frames := len(p) / (audio.Channels * 2)
	n := frames * audio.Channels
	if cap(r.scratch) < n {
		r.scratch = make([]int16, n)
	}
	samples := r.scratch[:n]

	r.ring.ReadFrames(samples)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(p[i*2:], uint16(s))
	}

	return n * 2, nil
}
