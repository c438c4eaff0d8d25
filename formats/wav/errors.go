package wav

import "errors"

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrSizeMismatch          = errors.New("RIFF size does not match file length")
	ErrUnsupportedWavLayout  = errors.New("unsupported WAV layout")
	ErrExtendedFormat        = errors.New("extended fmt chunk not supported")
	ErrNotPCM                = errors.New("only integer PCM supported")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
	ErrUnsupportedWavChunks  = errors.New("unsupported WAV chunks")
	ErrTruncatedData         = errors.New("data chunk exceeds file length")
)
