// SPDX-License-Identifier: EPL-2.0

package audio

// PlaybackClock tracks how much audio has been handed to the device.
//
// Time is the amount of audio, in seconds, already submitted since the
// session started (including gaps that were skipped after a stall).
// Submitted counts the frames of the current staging window that the device
// already accepted; it restarts at 0 on every refill.
type PlaybackClock struct {
	time      float64
	submitted int
}

func (c *PlaybackClock) Time() float64  { return c.time }
func (c *PlaybackClock) Submitted() int { return c.submitted }

// RefillDue reports whether the staged audio no longer reaches ahead
// seconds past now.
func (c *PlaybackClock) RefillDue(now, ahead float64) bool {
	return c.time <= now+ahead
}

// Refill starts a new staging window. When the clock fell behind now, it
// jumps forward to now: the missed interval is dropped, never played faster.
func (c *PlaybackClock) Refill(now float64) {
	c.submitted = 0
	if c.time < now {
		c.time = now
	}
}

// Advance records frames accepted by a device running at sampleRate.
func (c *PlaybackClock) Advance(frames, sampleRate int) {
	if frames <= 0 {
		return
	}
	c.submitted += frames
	c.time += float64(frames) / float64(sampleRate)
}
