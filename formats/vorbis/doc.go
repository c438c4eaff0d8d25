// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files into stereo tracks.
//
// It wraps github.com/jfreymuth/oggvorbis. Vorbis decodes to float32 in
// [-1, 1]; samples are converted to int16 with utils.Float32ToInt16, which
// clamps overshoot from the codec instead of wrapping.
//
//	track, err := vorbis.Decoder{}.Decode(file)
//	if errors.Is(err, audio.ErrNotStereo) {
//	    // mono or surround file
//	}
package vorbis
