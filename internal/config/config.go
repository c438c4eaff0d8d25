// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ik5/audfeed/audio"
	"github.com/ik5/audfeed/device/backend"
)

var ErrInvalid = errors.New("invalid configuration")

// Config holds the runtime settings of the audfeed command, loaded from
// environment variables. Flags override individual fields after Load.
type Config struct {
	Device       string        // backend name, see backend.Kinds
	SampleRate   int           // device rate in Hz
	SubmitAhead  time.Duration // staging window
	DeviceBuffer time.Duration // requested device buffer
	GainDB       float64
	Tick         time.Duration // tick loop period
	Track        string        // file to play, empty means a test tone
	Output       string        // recording path for the wav device
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	return Config{
		Device:       envStr("AUDFEED_DEVICE", backend.Oto),
		SampleRate:   envInt("AUDFEED_SAMPLE_RATE", 44100),
		SubmitAhead:  envDuration("AUDFEED_SUBMIT_AHEAD", audio.DefaultSubmitAhead),
		DeviceBuffer: envDuration("AUDFEED_DEVICE_BUFFER", backend.DefaultBuffer),
		GainDB:       envFloat("AUDFEED_GAIN_DB", 0),
		Tick:         envDuration("AUDFEED_TICK", 16*time.Millisecond),
		Track:        envStr("AUDFEED_TRACK", ""),
		Output:       envStr("AUDFEED_OUTPUT", "audfeed-out.wav"),
	}
}

// Validate reports the first setting that cannot work.
func (c Config) Validate() error {
	switch {
	case !backend.Known(c.Device):
		return fmt.Errorf("%w: device %q (want one of %s)", ErrInvalid, c.Device, strings.Join(backend.Kinds(), ", "))
	case c.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrInvalid, c.SampleRate)
	case c.SubmitAhead <= 0:
		return fmt.Errorf("%w: submit-ahead %s", ErrInvalid, c.SubmitAhead)
	case c.DeviceBuffer < c.SubmitAhead:
		return fmt.Errorf("%w: device buffer %s is shorter than submit-ahead %s", ErrInvalid, c.DeviceBuffer, c.SubmitAhead)
	case c.Tick <= 0:
		return fmt.Errorf("%w: tick %s", ErrInvalid, c.Tick)
	case strings.EqualFold(c.Device, backend.WAV) && c.Output == "":
		return fmt.Errorf("%w: wav device needs an output path", ErrInvalid)
	}

	return nil
}

// DeviceOptions maps the config onto the device factory's options.
func (c Config) DeviceOptions() backend.Options {
	return backend.Options{
		SampleRate: c.SampleRate,
		Buffer:     c.DeviceBuffer,
		Output:     c.Output,
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
