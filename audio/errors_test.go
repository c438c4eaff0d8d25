package audio

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{ErrNotStereo, "only stereo tracks are supported"},
		{ErrInvalidSampleRate, "invalid sample rate"},
		{ErrPartialFrame, "sample count must be a multiple of channels"},
		{ErrRateMismatch, "track sample rate does not match device rate"},
		{ErrInvalidWindow, "submit-ahead window must hold at least one frame"},
		{ErrDevice, "audio device failure"},
		{ErrClosed, "audio context closed"},
	}

	for _, tt := range tests {
		if tt.err == nil {
			t.Fatalf("sentinel for %q is nil", tt.want)
		}
		if tt.err.Error() != tt.want {
			t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.want)
		}
	}
}

func TestErrDevice_Wrapping(t *testing.T) {
	t.Parallel()

	cause := errors.New("device unplugged")
	err := fmt.Errorf("%w: acquire 10 frames: %w", ErrDevice, cause)

	if !errors.Is(err, ErrDevice) {
		t.Error("errors.Is() failed for ErrDevice")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is() failed for wrapped cause")
	}
	if errors.Is(err, ErrClosed) {
		t.Error("errors.Is() should return false for a different sentinel")
	}
}
