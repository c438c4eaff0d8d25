// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/ik5/audfeed/audio"
)

type command int

const (
	cmdPlay command = iota
	cmdStop
	cmdGainUp
	cmdGainDown
	cmdQuit
)

// gainStep is the change per key press, in dB.
const gainStep = 1.0

// errQuit ends the tick loop when the user asks to quit.
var errQuit = errors.New("quit requested")

var errRenderStalled = errors.New("render did not finish: device stopped accepting frames")

type status struct {
	Time      float64
	Submitted int
	GainDB    float64
	Cursor    int
	Frames    int
	Playing   bool
}

// player owns the mixing context and the single playback slot. It is driven
// from one goroutine; commands arrive over a channel.
type player struct {
	actx  *audio.Context
	track *audio.Track
	st    audio.PlaybackState

	// once makes the loop return after the track has played and drained.
	once bool
}

func newPlayer(actx *audio.Context, track *audio.Track) *player {
	return &player{actx: actx, track: track}
}

func (p *player) apply(cmd command) (quit bool) {
	switch cmd {
	case cmdPlay:
		p.st.Play(p.track)
	case cmdStop:
		p.st.Stop()
	case cmdGainUp:
		p.actx.SetGainDB(p.actx.GainDB() + gainStep)
	case cmdGainDown:
		p.actx.SetGainDB(p.actx.GainDB() - gainStep)
	case cmdQuit:
		return true
	}

	return false
}

func (p *player) tick(now float64) error {
	_, err := p.actx.Advance(now, &p.st)
	return err
}

func (p *player) finished() bool {
	return !p.st.Playing() && p.actx.Drained()
}

func (p *player) status() status {
	return status{
		Time:      p.actx.PlaybackTime(),
		Submitted: p.actx.SubmittedFrames(),
		GainDB:    p.actx.GainDB(),
		Cursor:    p.st.Cursor(),
		Frames:    p.track.Frames,
		Playing:   p.st.Playing(),
	}
}

// loop ticks every period against the wall clock until ctx is done, the user
// quits, or (with once set) the track has finished and the device has played
// everything it was given. onStatus, if set, is
// called after every tick.
func (p *player) loop(ctx context.Context, period time.Duration, cmds <-chan command, onStatus func(status)) error {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	start := time.Now()

	for {
		if err := p.tick(time.Since(start).Seconds()); err != nil {
			return err
		}
		if onStatus != nil {
			onStatus(p.status())
		}
		if p.once && p.finished() {
			// Closing the device drops whatever it still holds, so wait for it
			// to play out.
			pending, err := p.actx.DevicePadding()
			if err != nil {
				return err
			}
			if pending == 0 {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case cmd, ok := <-cmds:
			if !ok {
				cmds = nil
				continue
			}
			if p.apply(cmd) {
				return errQuit
			}
		case <-ticker.C:
		}
	}
}

// render drives the context with a simulated clock, as fast as the device
// accepts frames, until the track has played once. It returns the simulated
// duration.
func (p *player) render(period time.Duration) (time.Duration, error) {
	p.once = true
	p.st.Play(p.track)

	step := period.Seconds()
	// Generous upper bound so a device that never drains cannot spin forever.
	limit := p.track.Duration() + 2*float64(p.actx.SubmitAheadFrames())/float64(p.actx.SampleRate()) + 1

	for now := 0.0; now <= limit; now += step {
		if err := p.tick(now); err != nil {
			return 0, err
		}
		if p.finished() {
			return time.Duration(math.Round(now * float64(time.Second))), nil
		}
	}

	return 0, errRenderStalled
}
