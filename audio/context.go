// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
	"time"
)

// DefaultSubmitAhead is how much audio is staged ahead of wall time.
const DefaultSubmitAhead = 66 * time.Millisecond

type Options struct {
	// SubmitAhead is the staging window duration. Zero means DefaultSubmitAhead.
	SubmitAhead time.Duration
	// GainDB is the initial gain, clamped to [MinGainDB, MaxGainDB].
	GainDB float64
}

// TickStats describes what a single Advance call did.
type TickStats struct {
	Refilled  bool
	Staged    int // frames copied from the track on refill
	Submitted int // frames handed to the device
}

// Context owns the audio session: the device, the staging window, the
// playback clock and the gain. It is driven by a single goroutine and is not
// safe for concurrent use.
type Context struct {
	dev       Device
	submitter *Submitter
	staging   *StagingBuffer
	clock     PlaybackClock

	ahead  float64
	gainDB float64
	gain   float32

	closed bool
}

// NewContext sizes the staging window for dev and starts the device.
func NewContext(dev Device, opts Options) (*Context, error) {
	rate := dev.SampleRate()
	if rate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, rate)
	}

	ahead := opts.SubmitAhead
	if ahead == 0 {
		ahead = DefaultSubmitAhead
	}
	frames := int(math.Round(ahead.Seconds() * float64(rate)))
	if frames < 1 {
		return nil, fmt.Errorf("%w: %s at %d Hz", ErrInvalidWindow, ahead, rate)
	}

	ctx := &Context{
		dev:       dev,
		submitter: NewSubmitter(dev),
		staging:   NewStagingBuffer(frames),
		ahead:     ahead.Seconds(),
	}
	ctx.SetGainDB(opts.GainDB)

	if err := dev.Start(); err != nil {
		return nil, fmt.Errorf("%w: start: %w", ErrDevice, err)
	}

	return ctx, nil
}

func (c *Context) SampleRate() int       { return c.dev.SampleRate() }
func (c *Context) SubmitAheadFrames() int { return c.staging.Frames() }
func (c *Context) PlaybackTime() float64  { return c.clock.Time() }
func (c *Context) SubmittedFrames() int   { return c.clock.Submitted() }
func (c *Context) GainDB() float64        { return c.gainDB }
func (c *Context) Gain() float32          { return c.gain }

// SetGainDB changes the volume; it applies from the next submitted frame.
func (c *Context) SetGainDB(db float64) {
	c.gainDB = ClampGainDB(db)
	c.gain = DBToAmplitude(c.gainDB)
}

// Advance runs one tick at wall-clock time now (seconds since the session
// started): refresh the staging window when due, then push what the device
// can accept. st may be nil when nothing is playing.
func (c *Context) Advance(now float64, st *PlaybackState) (TickStats, error) {
	var stats TickStats
	if c.closed {
		return stats, ErrClosed
	}

	if c.clock.RefillDue(now, c.ahead) {
		c.clock.Refill(now)
		c.staging.Clear()
		stats.Refilled = true

		if st != nil && st.Playing() {
			if st.Track().SampleRate != c.dev.SampleRate() {
				return stats, fmt.Errorf("%w: track %d Hz, device %d Hz",
					ErrRateMismatch, st.Track().SampleRate, c.dev.SampleRate())
			}
			stats.Staged = st.Fill(c.staging.Samples())
		}
	}

	n, err := c.submitter.Submit(c.staging, &c.clock, c.gain)
	stats.Submitted = n
	if err != nil {
		return stats, err
	}

	return stats, nil
}

// Drained reports whether every frame of the current window reached the device.
func (c *Context) Drained() bool {
	return c.clock.Submitted() >= c.staging.Frames()
}

// DevicePadding reports the frames the device has accepted but not played yet.
func (c *Context) DevicePadding() (int, error) {
	if c.closed {
		return 0, ErrClosed
	}

	n, err := c.dev.Padding()
	if err != nil {
		return 0, fmt.Errorf("%w: padding: %w", ErrDevice, err)
	}

	return n, nil
}

// Close stops the stream and releases the device, in that order.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	stopErr := c.dev.Stop()
	closeErr := c.dev.Close()
	if stopErr != nil {
		return fmt.Errorf("%w: stop: %w", ErrDevice, stopErr)
	}
	if closeErr != nil {
		return fmt.Errorf("%w: close: %w", ErrDevice, closeErr)
	}

	return nil
}
