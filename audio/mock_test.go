package audio

import (
	"errors"
	"io"
)

// mockDecoder is a test decoder implementation
type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(r io.Reader) (*Track, error) {
	return NewTrack(44100, 2, make([]int16, 200))
}

// failingDecoder always returns an error
type failingDecoder struct{}

func (d *failingDecoder) Decode(r io.Reader) (*Track, error) {
	return nil, errors.New("decode failed")
}

// newRampTrack builds a stereo track where frame i holds (i+1, -(i+1)).
func newRampTrack(sampleRate, frames int) *Track {
	samples := make([]int16, frames*2)
	for i := range frames {
		samples[2*i] = int16(i + 1)
		samples[2*i+1] = -int16(i + 1)
	}

	track, err := NewTrack(sampleRate, 2, samples)
	if err != nil {
		panic(err)
	}
	return track
}
