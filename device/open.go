// SPDX-License-Identifier: EPL-2.0

package device

import (
	"fmt"
	"strings"

	"github.com/ik5/audfeed/audio"
	"github.com/ik5/audfeed/device/backend"
)

// Backend names accepted by Open.
const (
	KindOto  = backend.Oto
	KindBeep = backend.Beep
	KindWAV  = backend.WAV
	KindNull = backend.Null
)

// DefaultBuffer is the device buffer duration requested when none is given.
const DefaultBuffer = backend.DefaultBuffer

// Kinds lists every backend name Open understands.
func Kinds() []string { return backend.Kinds() }

type Options = backend.Options

// Open creates the backend called kind.
func Open(kind string, opts Options) (audio.Device, error) {
	if opts.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrInvalidOptions, opts.SampleRate)
	}
	capacity := opts.BufferFrames()
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: buffer %s holds no frames", ErrInvalidOptions, opts.Buffer)
	}

	var (
		dev audio.Device
		err error
	)

	switch strings.ToLower(kind) {
	case KindOto:
		dev, err = NewOto(opts.SampleRate, capacity)
	case KindBeep:
		dev, err = NewBeep(opts.SampleRate, capacity)
	case KindWAV:
		if opts.Output == "" {
			return nil, fmt.Errorf("%w: wav device needs an output path", ErrInvalidOptions)
		}
		dev, err = CreateWAVFile(opts.Output, opts.SampleRate, capacity)
	case KindNull:
		dev = NewNull(opts.SampleRate, capacity)
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownKind, kind, strings.Join(Kinds(), ", "))
	}

	if err != nil {
		return nil, err
	}

	return dev, nil
}
