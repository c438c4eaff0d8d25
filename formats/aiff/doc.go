// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files into stereo tracks.
//
// Decoding is delegated to github.com/go-audio/aiff. Only 16-bit stereo
// files are accepted, so the integer samples it returns map straight onto
// int16 without rescaling.
//
//	track, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrOnlyPCM16bitSupported) {
//	    // re-export as 16-bit
//	}
//
// go-audio needs an io.ReadSeeker. Decode uses the reader directly when it
// can seek and buffers it in memory otherwise.
package aiff
