package device

import "errors"

var (
	// ErrBufferTooLarge is returned when more frames are requested or
	// committed than the buffer can take.
	ErrBufferTooLarge = errors.New("buffer request exceeds free space")

	// ErrNoPendingBuffer is returned by Commit without a matching Acquire.
	ErrNoPendingBuffer = errors.New("no acquired buffer to commit")

	// ErrBufferPending is returned by Acquire while a region is still held.
	ErrBufferPending = errors.New("previous buffer not committed")

	ErrClosed     = errors.New("device closed")
	ErrNotStarted = errors.New("device not started")

	// ErrUnknownKind is returned by Open for an unrecognised backend name.
	ErrUnknownKind = errors.New("unknown device kind")

	ErrInvalidOptions = errors.New("invalid device options")
)
