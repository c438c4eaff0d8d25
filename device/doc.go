// SPDX-License-Identifier: EPL-2.0

// Package device provides the output backends behind audio.Device.
//
// Every backend follows the same handshake: Padding reports how many frames
// are still queued, Acquire hands out a writable region no larger than the
// free space, and Commit releases it. Only one region may be held at a time.
//
// Backends:
//   - Oto plays through github.com/ebitengine/oto/v3.
//   - Beep plays through github.com/gopxl/beep/speaker.
//   - WAVFile records to disk with github.com/go-audio/wav.
//   - Null discards everything.
//
// Oto and Beep queue frames in a Ring that the library's audio goroutine
// drains. An empty ring plays silence rather than stalling the output.
//
//	dev, err := device.Open("oto", device.Options{SampleRate: 44100})
package device
