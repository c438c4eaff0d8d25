// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Channels is the only channel count the pipeline handles (interleaved L/R).
const Channels = 2

// Track is a decoded, in-memory PCM track.
// Samples are interleaved 16-bit stereo, len(Samples) == 2*Frames.
// A Track must not be modified after it was built.
type Track struct {
	SampleRate int
	Channels   int
	Frames     int
	Samples    []int16
}

// NewTrack validates the layout of samples and wraps them in a Track.
// The slice is owned by the Track afterwards.
func NewTrack(sampleRate, channels int, samples []int16) (*Track, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	if channels != Channels {
		return nil, fmt.Errorf("%w: got %d channels", ErrNotStereo, channels)
	}
	if len(samples)%Channels != 0 {
		return nil, ErrPartialFrame
	}

	return &Track{
		SampleRate: sampleRate,
		Channels:   channels,
		Frames:     len(samples) / Channels,
		Samples:    samples,
	}, nil
}

// Duration of the track in seconds.
func (t *Track) Duration() float64 {
	if t == nil || t.SampleRate == 0 {
		return 0
	}
	return float64(t.Frames) / float64(t.SampleRate)
}

// Decoder constructs a Track from an input reader.
type Decoder interface {
	Decode(r io.Reader) (*Track, error)
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg").
// Keys are case-insensitive.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[strings.ToLower(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[strings.ToLower(format)]
	return d, ok
}
