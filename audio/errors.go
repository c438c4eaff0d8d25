// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrNotStereo         = errors.New("only stereo tracks are supported")
	ErrInvalidSampleRate = errors.New("invalid sample rate")
	ErrPartialFrame      = errors.New("sample count must be a multiple of channels")
	ErrRateMismatch      = errors.New("track sample rate does not match device rate")
	ErrInvalidWindow     = errors.New("submit-ahead window must hold at least one frame")

	// ErrDevice wraps every failure reported by a Device. The context that
	// returned it cannot continue and should be closed.
	ErrDevice = errors.New("audio device failure")
	ErrClosed = errors.New("audio context closed")
)
