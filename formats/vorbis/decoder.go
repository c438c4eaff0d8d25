// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audfeed/audio"
	"github.com/ik5/audfeed/utils"
	"github.com/jfreymuth/oggvorbis"
)

// readChunk is how many interleaved values are pulled from the decoder per call.
const readChunk = 4096

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type Decoder struct{}

// Decode decodes an Ogg Vorbis stream into a stereo track. Vorbis files with
// any other channel count are rejected.
func (Decoder) Decode(r io.Reader) (*audio.Track, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return readTrack(dec)
}

func readTrack(dec oggReader) (*audio.Track, error) {
	if ch := dec.Channels(); ch != audio.Channels {
		return nil, fmt.Errorf("%w: got %d channels", audio.ErrNotStereo, ch)
	}

	var samples []int16
	buf := make([]float32, readChunk)

	for {
		// Read returns the number of float values, not frames.
		n, err := dec.Read(buf)
		for _, v := range buf[:n] {
			samples = append(samples, utils.Float32ToInt16(v))
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding vorbis: %w", err)
		}
		if n == 0 {
			return nil, fmt.Errorf("decoding vorbis: %w", io.ErrNoProgress)
		}
	}

	samples = samples[:len(samples)-len(samples)%audio.Channels]

	return audio.NewTrack(dec.SampleRate(), audio.Channels, samples)
}
