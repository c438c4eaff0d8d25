// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/audfeed/audio"
)

// mockOggVorbisReader simulates the oggvorbis.Reader for testing
type mockOggVorbisReader struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
	maxRead    int   // caps values per Read, 0 means len(buf)
	err        error // returned at end of data instead of io.EOF
}

func (m *mockOggVorbisReader) SampleRate() int { return m.sampleRate }
func (m *mockOggVorbisReader) Channels() int   { return m.channels }

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.offset >= len(m.samples) {
		if m.err != nil {
			return 0, m.err
		}
		return 0, io.EOF
	}

	if m.maxRead > 0 && len(buf) > m.maxRead {
		buf = buf[:m.maxRead]
	}
	n := copy(buf, m.samples[m.offset:])
	m.offset += n

	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{nil, []byte("This is not Ogg data")} {
		track, err := Decoder{}.Decode(bytes.NewReader(data))
		if err == nil {
			t.Errorf("Decode(%q) error = nil, want error", data)
		}
		if track != nil {
			t.Errorf("Decode(%q) track = %+v, want nil", data, track)
		}
	}
}

func TestReadTrack_Conversion(t *testing.T) {
	t.Parallel()

	m := &mockOggVorbisReader{
		sampleRate: 48000,
		channels:   2,
		samples:    []float32{0, 0.5, 1, -0.5, -1, 1.5, -1.5, 0.25},
	}

	track, err := readTrack(m)
	if err != nil {
		t.Fatalf("readTrack() error = %v", err)
	}

	want := []int16{0, 16383, 32767, -16383, -32767, 32767, -32767, 8191}
	if track.Frames != 4 || track.SampleRate != 48000 {
		t.Fatalf("track = %d frames @ %d Hz, want 4 @ 48000", track.Frames, track.SampleRate)
	}
	for i := range want {
		if track.Samples[i] != want[i] {
			t.Errorf("Samples[%d] = %d, want %d", i, track.Samples[i], want[i])
		}
	}
}

func TestReadTrack_ChunkedReads(t *testing.T) {
	t.Parallel()

	const values = readChunk*3 + 10
	src := make([]float32, values)
	for i := range src {
		src[i] = float32(i%100) / 100
	}

	tests := []struct {
		name    string
		maxRead int
	}{
		{"full buffers", 0},
		{"odd short reads", 333},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := &mockOggVorbisReader{sampleRate: 44100, channels: 2, samples: src, maxRead: tt.maxRead}
			track, err := readTrack(m)
			if err != nil {
				t.Fatalf("readTrack() error = %v", err)
			}
			if track.Frames != values/2 {
				t.Errorf("Frames = %d, want %d", track.Frames, values/2)
			}
		})
	}
}

func TestReadTrack_DropsPartialFrame(t *testing.T) {
	t.Parallel()

	m := &mockOggVorbisReader{sampleRate: 44100, channels: 2, samples: []float32{0.1, 0.2, 0.3}}

	track, err := readTrack(m)
	if err != nil {
		t.Fatalf("readTrack() error = %v", err)
	}
	if track.Frames != 1 {
		t.Errorf("Frames = %d, want 1", track.Frames)
	}
}

func TestReadTrack_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    *mockOggVorbisReader
		want error
	}{
		{"mono", &mockOggVorbisReader{sampleRate: 44100, channels: 1}, audio.ErrNotStereo},
		{"5.1", &mockOggVorbisReader{sampleRate: 44100, channels: 6}, audio.ErrNotStereo},
		{"corrupt stream", &mockOggVorbisReader{sampleRate: 44100, channels: 2, samples: []float32{0, 0}, err: io.ErrUnexpectedEOF}, io.ErrUnexpectedEOF},
		{"zero rate", &mockOggVorbisReader{channels: 2, samples: []float32{0, 0}}, audio.ErrInvalidSampleRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := readTrack(tt.m); !errors.Is(err, tt.want) {
				t.Errorf("readTrack() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecoder_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ audio.Decoder = Decoder{}
}

func BenchmarkReadTrack(b *testing.B) {
	src := make([]float32, 44100*2)
	for i := range src {
		src[i] = float32(i%200)/100 - 1
	}

	b.ReportAllocs()
	for b.Loop() {
		_, _ = readTrack(&mockOggVorbisReader{sampleRate: 44100, channels: 2, samples: src})
	}
}
