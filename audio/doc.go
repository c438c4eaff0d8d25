// SPDX-License-Identifier: EPL-2.0

// Package audio implements a small real-time playback pipeline that feeds a
// pull-driven output device from a fixed-rate tick loop.
//
// The building blocks are:
//   - Track: an immutable, decoded 16-bit stereo PCM buffer
//   - PlaybackState: a one-shot cursor into a Track, owned by the caller
//   - StagingBuffer: the fixed "submit-ahead" window of staged frames
//   - PlaybackClock: how much audio was handed to the device, in seconds
//   - Submitter: copies staged frames into a Device, applying gain
//   - Context: owns all of the above for one device session
//
// # Tick Loop
//
// The caller owns a Context and calls Advance once per tick with the current
// wall-clock time in seconds:
//
//	ctx, err := audio.NewContext(dev, audio.Options{GainDB: -6})
//	if err != nil {
//	    return err
//	}
//	defer ctx.Close()
//
//	var music audio.PlaybackState
//	music.Play(track)
//
//	start := time.Now()
//	for running {
//	    if _, err := ctx.Advance(time.Since(start).Seconds(), &music); err != nil {
//	        return err // device failures are not recoverable
//	    }
//	    // update and render the game
//	}
//
// # Refill Policy
//
// When the playback clock is no further ahead of wall time than the
// submit-ahead window (66 ms by default) the window is cleared to silence and
// the playing track, if any, is copied into it. If the clock fell behind wall
// time it jumps forward instead of trying to catch up, so a stalled loop
// produces a gap of silence rather than a burst of sped-up audio.
//
// # Submission
//
// Every tick, refill or not, the frames of the window the device has not
// received yet are offered to it. The Submitter asks the device how much free
// space it has (BufferFrames minus Padding) and never submits more than that;
// what does not fit is retried on the next tick. Gain is applied at this
// point, so volume changes take effect on the next submitted frame.
//
// # Sample Format
//
// All PCM in this package is signed 16-bit, interleaved left/right. There is
// no sample-rate conversion: a Track must have the device's sample rate.
//
// # Error Handling
//
// Device failures are returned wrapped in ErrDevice and leave the Context
// unusable; close it and start a new session. Track validation errors
// (ErrNotStereo, ErrPartialFrame, ErrRateMismatch) are returned as-is.
package audio
