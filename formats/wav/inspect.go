// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"time"

	gowav "github.com/go-audio/wav"
)

// Info is what a WAV header says about its content.
type Info struct {
	FormatTag  uint16
	Format     string
	Channels   int
	SampleRate int
	BitDepth   int
	Duration   time.Duration
	// Playable is true when DecodeBytes would accept the file's format.
	Playable bool
}

// Inspect reads the headers of any WAV file go-audio understands, including
// layouts DecodeBytes rejects (extra chunks, float, 24-bit), so asset problems
// can be reported precisely.
func Inspect(r io.ReadSeeker) (Info, error) {
	dec := gowav.NewDecoder(r)

	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return Info{}, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	if dec.NumChans == 0 || dec.SampleRate == 0 {
		return Info{}, ErrNotWavFile
	}

	info := Info{
		FormatTag:  dec.WavAudioFormat,
		Format:     FormatName(dec.WavAudioFormat),
		Channels:   int(dec.NumChans),
		SampleRate: int(dec.SampleRate),
		BitDepth:   int(dec.BitDepth),
	}

	// The header is enough for everything but the length.
	if err := dec.FwdToPCM(); err == nil {
		frameBytes := info.Channels * ((info.BitDepth + 7) / 8)
		if frameBytes > 0 {
			frames := dec.PCMSize / frameBytes
			info.Duration = time.Duration(frames) * time.Second / time.Duration(info.SampleRate)
		}
	}

	info.Playable = info.FormatTag == FormatPCM && info.BitDepth == 16 &&
		info.Channels == 2 && info.SampleRate > 0

	return info, nil
}

func (i Info) String() string {
	return fmt.Sprintf("%s %d-bit, %d ch, %d Hz, %s", i.Format, i.BitDepth, i.Channels, i.SampleRate, i.Duration)
}
