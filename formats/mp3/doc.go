// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files into stereo tracks.
//
// Decoding is done by github.com/hajimehoshi/go-mp3, which always outputs
// 16-bit little-endian stereo. The whole stream is decoded up front so that
// the mixer never touches the decoder from its tick loop.
//
//	track, err := mp3.Decoder{}.Decode(file)
//
// The track keeps the file's own sample rate. It is up to the caller to
// refuse tracks that do not match the device rate (see audfeed.LoadTrackFile).
package mp3
