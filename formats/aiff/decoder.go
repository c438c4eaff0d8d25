// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audfeed/audio"
)

const readChunk = 4096

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type Decoder struct{}

// Decode decodes a 16-bit stereo AIFF file into a track.
func (Decoder) Decode(r io.Reader) (*audio.Track, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	if dec.BitDepth != 16 {
		return nil, fmt.Errorf("%w: got %d bits", ErrOnlyPCM16bitSupported, dec.BitDepth)
	}

	return readTrack(dec)
}

func readTrack(dec aiffReader) (*audio.Track, error) {
	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}
	if format.NumChannels != audio.Channels {
		return nil, fmt.Errorf("%w: got %d channels", audio.ErrNotStereo, format.NumChannels)
	}

	var samples []int16
	buf := &goaudio.IntBuffer{Data: make([]int, readChunk), Format: format, SourceBitDepth: 16}

	for {
		buf.Data = buf.Data[:readChunk]
		n, err := dec.PCMBuffer(buf)
		for _, v := range buf.Data[:n] {
			samples = append(samples, int16(v))
		}

		if errors.Is(err, io.EOF) || (err == nil && n == 0) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding aiff: %w", err)
		}
	}

	samples = samples[:len(samples)-len(samples)%audio.Channels]

	return audio.NewTrack(format.SampleRate, audio.Channels, samples)
}
