// SPDX-License-Identifier: EPL-2.0

package audio

// PlaybackState is the game-side view of a one-shot track: which track,
// where its cursor is, and whether it is still playing.
// It is owned by the caller and handed to Context.Advance on every tick.
type PlaybackState struct {
	track   *Track
	cursor  int
	playing bool
}

// Play (re)starts track from its first frame.
func (s *PlaybackState) Play(track *Track) {
	s.track = track
	s.cursor = 0
	s.playing = track != nil && track.Frames > 0
}

func (s *PlaybackState) Stop()         { s.playing = false }
func (s *PlaybackState) Playing() bool { return s.playing }
func (s *PlaybackState) Cursor() int   { return s.cursor }
func (s *PlaybackState) Track() *Track { return s.track }

// Fill copies the next frames of the track into the interleaved stereo
// window dst and returns the number of frames written.
// When the track runs out before dst is full the state stops playing;
// the unwritten tail of dst is left untouched.
func (s *PlaybackState) Fill(dst []int16) int {
	if !s.playing || s.track == nil {
		return 0
	}

	frames := len(dst) / Channels
	remaining := s.track.Frames - s.cursor
	if frames > remaining {
		frames = max(remaining, 0)
		s.playing = false
	}

	start := s.cursor * Channels
	copy(dst[:frames*Channels], s.track.Samples[start:start+frames*Channels])
	s.cursor += frames

	return frames
}
