// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/riff"
	"github.com/ik5/audfeed/audio"
)

const (
	riffHeaderSize = 12 // "RIFF" + size + "WAVE"
	chunkHeadSize  = 8  // id + size
	fmtChunkSize   = 16
)

// fmtChunk is the body of a plain (non-extended) PCM "fmt " chunk.
type fmtChunk struct {
	FormatTag     uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

type Decoder struct{}

// Decode reads the whole stream and decodes it with DecodeBytes.
func (Decoder) Decode(r io.Reader) (*audio.Track, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	return DecodeBytes(data)
}

// DecodeBytes decodes a canonical RIFF/WAVE file: the RIFF header, a 16 byte
// PCM "fmt " chunk and the "data" chunk, in that order and nothing in between.
// Every size is checked against the bytes actually present before it is used.
// A trailing partial frame and any bytes after the data chunk are ignored.
func DecodeBytes(data []byte) (*audio.Track, error) {
	if len(data) < riffHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrNotWavFile, len(data))
	}

	parser := riff.New(bytes.NewReader(data))
	if err := parser.ParseHeaders(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	if parser.ID != riff.RiffID || parser.Format != riff.WavFormatID {
		return nil, ErrNotWavFile
	}
	if int64(parser.Size) != int64(len(data))-8 {
		return nil, fmt.Errorf("%w: header says %d, have %d",
			ErrSizeMismatch, int64(parser.Size), len(data)-8)
	}

	f, err := readFmtChunk(parser, len(data)-riffHeaderSize)
	if err != nil {
		return nil, err
	}

	offset := riffHeaderSize + chunkHeadSize + fmtChunkSize
	if len(data)-offset < chunkHeadSize {
		return nil, fmt.Errorf("%w: missing data chunk", ErrUnsupportedWavChunks)
	}
	chunk, err := parser.NextChunk()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}
	if chunk.ID != riff.DataFormatID {
		return nil, fmt.Errorf("%w: expected data chunk, found %q", ErrUnsupportedWavChunks, chunk.ID[:])
	}

	offset += chunkHeadSize
	// riff rounds odd chunk sizes up to the pad byte; the frame count must
	// come from the size the file declares.
	size := int64(binary.LittleEndian.Uint32(data[offset-4 : offset]))
	if size > int64(len(data)-offset) {
		return nil, fmt.Errorf("%w: %d bytes declared, %d present", ErrTruncatedData, size, len(data)-offset)
	}

	frameBytes := int64(f.Channels) * 2
	frames := size / frameBytes
	samples := make([]int16, frames*int64(f.Channels))
	if err := binary.Read(io.LimitReader(chunk.R, frames*frameBytes), binary.LittleEndian, samples); err != nil {
		return nil, fmt.Errorf("reading samples: %w", err)
	}

	return audio.NewTrack(int(f.SampleRate), int(f.Channels), samples)
}

func readFmtChunk(parser *riff.Parser, remaining int) (fmtChunk, error) {
	var f fmtChunk

	if remaining < chunkHeadSize+fmtChunkSize {
		return f, fmt.Errorf("%w: missing fmt chunk", ErrUnsupportedWavLayout)
	}
	chunk, err := parser.NextChunk()
	if err != nil {
		return f, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}
	if chunk.ID != riff.FmtID {
		return f, fmt.Errorf("%w: expected fmt chunk, found %q", ErrUnsupportedWavLayout, chunk.ID[:])
	}
	if int64(chunk.Size) != fmtChunkSize {
		return f, fmt.Errorf("%w: fmt chunk is %d bytes", ErrExtendedFormat, int64(chunk.Size))
	}

	if err := binary.Read(chunk.R, binary.LittleEndian, &f); err != nil {
		return f, fmt.Errorf("reading fmt chunk: %w", err)
	}

	if f.FormatTag != FormatPCM {
		return f, fmt.Errorf("%w: format is %s", ErrNotPCM, FormatName(f.FormatTag))
	}
	if f.BitsPerSample != 16 {
		return f, fmt.Errorf("%w: got %d bits", ErrOnlyPCM16bitSupported, f.BitsPerSample)
	}
	if f.Channels != audio.Channels {
		return f, fmt.Errorf("%w: got %d channels", audio.ErrNotStereo, f.Channels)
	}
	if f.SampleRate == 0 {
		return f, fmt.Errorf("%w: 0 Hz", audio.ErrInvalidSampleRate)
	}

	return f, nil
}
