// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE files.
//
// The decoder is deliberately strict. It accepts only the canonical layout
// that mixing assets are expected to use:
//   - a RIFF header whose size matches the file length
//   - a 16 byte "fmt " chunk with integer PCM, 16 bits, 2 channels
//   - the "data" chunk immediately after it
//
// Anything else is rejected with a sentinel error (ErrExtendedFormat,
// ErrUnsupportedWavChunks, audio.ErrNotStereo and so on) rather than guessed
// at. Every declared size is checked against the bytes present before it is
// used, so a corrupt header can never cause a read past the input.
//
//	track, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, audio.ErrNotStereo) {
//	    // re-export the asset as stereo
//	}
//
// Inspect uses github.com/go-audio/wav to describe files the strict decoder
// refuses, which is what the audfeed -inspect flag prints.
//
// WriteWAV16 writes interleaved samples with a canonical 44 byte header.
package wav
