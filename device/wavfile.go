// SPDX-License-Identifier: EPL-2.0

package device

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/audfeed/audio"
)

// WAVFile records every committed frame to a 16-bit stereo WAV file. Frames
// are written as soon as they are committed, so padding is always zero and
// the file holds exactly what a real device would have been handed.
type WAVFile struct {
	rate     int
	capacity int
	enc      *gowav.Encoder
	closer   io.Closer
	buf      *goaudio.IntBuffer
	hs       handshake
	started  bool
	closed   bool
	frames   int
}

// NewWAVWriter records to ws. The WAV header is finalised on Close, which
// needs to seek back to the start.
func NewWAVWriter(ws io.WriteSeeker, sampleRate, capacity int) *WAVFile {
	return &WAVFile{
		rate:     sampleRate,
		capacity: capacity,
		enc:      gowav.NewEncoder(ws, sampleRate, 16, audio.Channels, 1),
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: audio.Channels, SampleRate: sampleRate},
			Data:           make([]int, 0, capacity*audio.Channels),
			SourceBitDepth: 16,
		},
	}
}

// CreateWAVFile creates (or truncates) path and records to it.
func CreateWAVFile(path string, sampleRate, capacity int) (*WAVFile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}

	w := NewWAVWriter(f, sampleRate, capacity)
	w.closer = f

	return w, nil
}

func (w *WAVFile) SampleRate() int   { return w.rate }
func (w *WAVFile) BufferFrames() int { return w.capacity }

// Frames reports how many frames have been written.
func (w *WAVFile) Frames() int { return w.frames }

func (w *WAVFile) Padding() (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	return 0, nil
}

func (w *WAVFile) Acquire(frames int) ([]int16, error) {
	if w.closed {
		return nil, ErrClosed
	}
	if !w.started {
		return nil, ErrNotStarted
	}
	return w.hs.acquire(frames, w.capacity)
}

func (w *WAVFile) Commit(frames int) error {
	if w.closed {
		return ErrClosed
	}

	samples, err := w.hs.commit(frames)
	if err != nil {
		return err
	}
	if frames == 0 {
		return nil
	}

	w.buf.Data = w.buf.Data[:0]
	for _, s := range samples {
		w.buf.Data = append(w.buf.Data, int(s))
	}

	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("writing wav frames: %w", err)
	}
	w.frames += frames

	return nil
}

func (w *WAVFile) Start() error {
	if w.closed {
		return ErrClosed
	}
	w.started = true
	return nil
}

func (w *WAVFile) Stop() error {
	if !w.started {
		return ErrNotStarted
	}
	w.started = false
	return nil
}

// Close finalises the WAV header and closes the file if CreateWAVFile opened
// it. Calling it again is a no-op.
func (w *WAVFile) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	err := w.enc.Close()
	if err != nil {
		err = fmt.Errorf("finalising wav: %w", err)
	}

	if w.closer != nil {
		if cerr := w.closer.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w", cerr)
		}
	}

	return err
}
