// SPDX-License-Identifier: EPL-2.0

package backend

import (
	"testing"
	"time"
)

func TestKnown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind string
		want bool
	}{
		{"oto", true},
		{"BEEP", true},
		{"Wav", true},
		{"null", true},
		{"", false},
		{"alsa", false},
	}

	for _, tt := range tests {
		if got := Known(tt.kind); got != tt.want {
			t.Errorf("Known(%q) = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestOptions_BufferFrames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts Options
		want int
	}{
		{"default", Options{SampleRate: 44100}, 88200},
		{"100ms at 48k", Options{SampleRate: 48000, Buffer: 100 * time.Millisecond}, 4800},
		{"66ms rounds", Options{SampleRate: 44100, Buffer: 66 * time.Millisecond}, 2911},
	}

	for _, tt := range tests {
		if got := tt.opts.BufferFrames(); got != tt.want {
			t.Errorf("%s: BufferFrames() = %d, want %d", tt.name, got, tt.want)
		}
	}
}
