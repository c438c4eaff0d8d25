// SPDX-License-Identifier: EPL-2.0

// Package audfeed feeds decoded audio tracks to an output device in real time.
//
// The mixing core lives in the audio package: an owned Context pulls frames
// from a one-shot PlaybackState into a fixed submit-ahead staging window and
// pushes them to a Device, applying gain on the way. The device package
// provides the outputs (oto, beep, a WAV recorder and a null sink) and the
// formats packages turn files into tracks.
//
// This package ties the decoders together:
//
//	track, err := audfeed.LoadTrackFile("shot.wav", 44100)
//	if errors.Is(err, audio.ErrRateMismatch) {
//	    // tracks are never resampled; re-export the asset
//	}
//
// A typical frame loop then looks like:
//
//	dev, _ := device.Open("oto", device.Options{SampleRate: 44100})
//	ctx, _ := audio.NewContext(dev, audio.Options{})
//	defer ctx.Close()
//
//	var st audio.PlaybackState
//	st.Play(track)
//	for {
//	    if _, err := ctx.Advance(time.Since(start).Seconds(), &st); err != nil {
//	        log.Fatalf("audio: %v", err)
//	    }
//	    // ... rest of the frame
//	}
//
// # Supported Formats
//
// LoadTrackFile picks a decoder by file extension:
//   - WAV (strict 16-bit stereo PCM) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (16-bit stereo) via formats/aiff
//
// All of them produce 16-bit interleaved stereo at the file's own rate.
package audfeed
