// SPDX-License-Identifier: EPL-2.0

package audfeed

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audfeed/audio"
	"github.com/ik5/audfeed/formats/aiff"
	"github.com/ik5/audfeed/formats/mp3"
	"github.com/ik5/audfeed/formats/vorbis"
	"github.com/ik5/audfeed/formats/wav"
)

// ErrUnknownFormat is returned when no decoder is registered for a file
// extension.
var ErrUnknownFormat = errors.New("no decoder for file format")

// DefaultRegistry returns a registry with every built-in decoder, keyed by
// file extension without the dot.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}

// LoadTrack decodes path with the decoder registered for its extension and
// rejects tracks whose rate differs from sampleRate, since nothing in the
// mixing path resamples.
func LoadTrack(reg *audio.Registry, path string, sampleRate int) (*audio.Track, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	dec, ok := reg.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	track, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	if track.SampleRate != sampleRate {
		return nil, fmt.Errorf("%w: %s is %d Hz, device is %d Hz",
			audio.ErrRateMismatch, path, track.SampleRate, sampleRate)
	}

	return track, nil
}

// LoadTrackFile is LoadTrack with DefaultRegistry.
func LoadTrackFile(path string, sampleRate int) (*audio.Track, error) {
	return LoadTrack(DefaultRegistry(), path, sampleRate)
}
