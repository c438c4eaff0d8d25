// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audfeed/audio"
)

// frameBytes is one stereo frame of go-mp3 output: two little-endian int16.
const frameBytes = 4

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type Decoder struct{}

// Decode decodes the whole MP3 stream into a stereo track. go-mp3 always
// produces two channels, so mono files come out with both sides equal.
func (Decoder) Decode(r io.Reader) (*audio.Track, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return readTrack(dec)
}

func readTrack(dec mp3Reader) (*audio.Track, error) {
	pcm, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decoding mp3: %w", err)
	}

	// A stream cut mid-frame leaves a partial frame; drop it.
	frames := len(pcm) / frameBytes
	samples := make([]int16, frames*audio.Channels)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(pcm[i*2:]))
	}

	return audio.NewTrack(dec.SampleRate(), audio.Channels, samples)
}
