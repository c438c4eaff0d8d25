// SPDX-License-Identifier: EPL-2.0

// Package backend names the output devices and carries the options used to
// open them. It has no cgo dependencies, so configuration code can validate
// a device choice without linking any audio driver.
package backend

import (
	"math"
	"slices"
	"strings"
	"time"
)

// Backend names accepted by device.Open.
const (
	Oto  = "oto"
	Beep = "beep"
	WAV  = "wav"
	Null = "null"
)

// DefaultBuffer is the device buffer duration requested when none is given.
const DefaultBuffer = 2 * time.Second

// Kinds lists every backend name.
func Kinds() []string {
	return []string{Oto, Beep, WAV, Null}
}

// Known reports whether kind names a backend, ignoring case.
func Known(kind string) bool {
	return slices.Contains(Kinds(), strings.ToLower(kind))
}

type Options struct {
	SampleRate int
	// Buffer is the requested device buffer duration; it sets the ring
	// capacity of the real outputs and the per-call limit of the others.
	Buffer time.Duration
	// Output is the file the wav backend records to.
	Output string
}

// BufferFrames converts the requested buffer duration to frames.
func (o Options) BufferFrames() int {
	d := o.Buffer
	if d <= 0 {
		d = DefaultBuffer
	}
	return int(math.Round(d.Seconds() * float64(o.SampleRate)))
}
