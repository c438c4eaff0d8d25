package audio

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestNewTrack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rate       int
		channels   int
		samples    []int16
		wantErr    error
		wantFrames int
	}{
		{name: "stereo", rate: 44100, channels: 2, samples: make([]int16, 20), wantFrames: 10},
		{name: "empty stereo", rate: 44100, channels: 2, samples: nil, wantFrames: 0},
		{name: "mono rejected", rate: 44100, channels: 1, samples: make([]int16, 20), wantErr: ErrNotStereo},
		{name: "surround rejected", rate: 44100, channels: 6, samples: make([]int16, 24), wantErr: ErrNotStereo},
		{name: "zero rate", rate: 0, channels: 2, samples: make([]int16, 4), wantErr: ErrInvalidSampleRate},
		{name: "partial frame", rate: 8000, channels: 2, samples: make([]int16, 5), wantErr: ErrPartialFrame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			track, err := NewTrack(tt.rate, tt.channels, tt.samples)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewTrack() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewTrack() error = %v, want nil", err)
			}

			if track.Frames != tt.wantFrames {
				t.Errorf("Frames = %d, want %d", track.Frames, tt.wantFrames)
			}
			if len(track.Samples) != 2*track.Frames {
				t.Errorf("len(Samples) = %d, want %d", len(track.Samples), 2*track.Frames)
			}
		})
	}
}

func TestTrack_Duration(t *testing.T) {
	t.Parallel()

	track := newRampTrack(8000, 4000)
	if got := track.Duration(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Duration() = %v, want 0.5", got)
	}

	var nilTrack *Track
	if got := nilTrack.Duration(); got != 0 {
		t.Errorf("nil Duration() = %v, want 0", got)
	}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}
	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}
	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}

	track, err := got.Decode(bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if track.Frames != 100 {
		t.Errorf("Decode() Frames = %d, want 100", track.Frames)
	}
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}
	registry.Register("WAV", decoder)

	for _, key := range []string{"wav", "Wav", "WAV"} {
		if got, ok := registry.Get(key); !ok || got != decoder {
			t.Errorf("Registry.Get(%q) = %v, %v; want registered decoder", key, got, ok)
		}
	}
}

func TestRegistry_MultipleFormats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	wavDecoder := &mockDecoder{name: "wav"}
	mp3Decoder := &mockDecoder{name: "mp3"}
	broken := &failingDecoder{}

	registry.Register("wav", wavDecoder)
	registry.Register("mp3", mp3Decoder)
	registry.Register("ogg", broken)

	tests := []struct {
		format string
		want   Decoder
		wantOK bool
	}{
		{"wav", wavDecoder, true},
		{"mp3", mp3Decoder, true},
		{"ogg", broken, true},
		{"flac", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, ok := registry.Get(tt.format)
			if ok != tt.wantOK {
				t.Errorf("Registry.Get(%q) ok = %v, want %v", tt.format, ok, tt.wantOK)
			}
			if tt.wantOK && got != tt.want {
				t.Errorf("Registry.Get(%q) returned wrong decoder", tt.format)
			}
		})
	}

	dec, _ := registry.Get("ogg")
	if _, err := dec.Decode(bytes.NewReader(nil)); err == nil {
		t.Error("failing decoder returned nil error")
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	first := &mockDecoder{name: "first"}
	second := &mockDecoder{name: "second"}

	registry.Register("wav", first)
	registry.Register("wav", second)

	got, ok := registry.Get("wav")
	if !ok || got != second {
		t.Error("Registry.Get() did not return the overwritten decoder")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "test"}

	done := make(chan bool)
	for range 10 {
		go func() {
			registry.Register("format", decoder)
			done <- true
		}()
		go func() {
			_, _ = registry.Get("format")
			done <- true
		}()
	}
	for range 20 {
		<-done
	}

	got, ok := registry.Get("format")
	if !ok || got != decoder {
		t.Error("Registry returned wrong decoder after concurrent operations")
	}
}

func BenchmarkRegistry_Get(b *testing.B) {
	registry := NewRegistry()
	registry.Register("wav", &mockDecoder{})

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		_, _ = registry.Get("wav")
	}
}
