// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"errors"
)

var (
	ErrInjected = errors.New("injected device failure")
)

// FakeDevice is an in-memory audio.Device for tests.
// Capacity and CurrentPadding describe the device ring; every committed frame
// is appended to Output and, unless HoldPadding is set, played instantly.
// It does not import package audio to avoid cycles.
type FakeDevice struct {
	Rate           int
	Capacity       int
	CurrentPadding int
	HoldPadding    bool

	// Fail* make the matching call return ErrInjected.
	FailPadding bool
	FailAcquire bool
	FailCommit  bool
	FailStart   bool

	Output   []int16
	Acquired []int // frames requested by each Acquire call
	Started  bool
	Stopped  bool
	Closed   bool
	Calls    []string

	region []int16
}

func NewFakeDevice(rate, capacity int) *FakeDevice {
	return &FakeDevice{Rate: rate, Capacity: capacity}
}

func (d *FakeDevice) SampleRate() int   { return d.Rate }
func (d *FakeDevice) BufferFrames() int { return d.Capacity }

func (d *FakeDevice) Padding() (int, error) {
	if d.FailPadding {
		return 0, ErrInjected
	}
	return d.CurrentPadding, nil
}

func (d *FakeDevice) Acquire(frames int) ([]int16, error) {
	d.Acquired = append(d.Acquired, frames)
	if d.FailAcquire {
		return nil, ErrInjected
	}
	d.region = make([]int16, frames*2)
	return d.region, nil
}

func (d *FakeDevice) Commit(frames int) error {
	if d.FailCommit {
		return ErrInjected
	}
	d.Output = append(d.Output, d.region[:frames*2]...)
	if d.HoldPadding {
		d.CurrentPadding += frames
	}
	d.region = nil
	return nil
}

func (d *FakeDevice) Start() error {
	d.Calls = append(d.Calls, "start")
	if d.FailStart {
		return ErrInjected
	}
	d.Started = true
	return nil
}

func (d *FakeDevice) Stop() error {
	d.Calls = append(d.Calls, "stop")
	d.Stopped = true
	return nil
}

func (d *FakeDevice) Close() error {
	d.Calls = append(d.Calls, "close")
	d.Closed = true
	return nil
}

// Play drains up to frames queued frames, as the hardware would.
func (d *FakeDevice) Play(frames int) {
	d.CurrentPadding = max(d.CurrentPadding-frames, 0)
}

// Ramp returns interleaved stereo samples where frame i holds (i+1, -(i+1)).
func Ramp(frames int) []int16 {
	samples := make([]int16, frames*2)
	for i := range frames {
		samples[2*i] = int16(i + 1)
		samples[2*i+1] = -int16(i + 1)
	}
	return samples
}

// Constant returns interleaved stereo samples all set to v.
func Constant(frames int, v int16) []int16 {
	samples := make([]int16, frames*2)
	for i := range samples {
		samples[i] = v
	}
	return samples
}

// WAVBytes builds a canonical 44-byte-header PCM WAV file.
func WAVBytes(sampleRate, channels, bitsPerSample int, samples []int16) []byte {
	buf := new(bytes.Buffer)

	numChannels := uint16(channels)
	bits := uint16(bitsPerSample)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bits/8)
	blockAlign := numChannels * (bits / 8)
	dataSize := uint32(len(samples) * 2)

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, numChannels)
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, bits)

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	binary.Write(buf, binary.LittleEndian, samples)

	return buf.Bytes()
}
