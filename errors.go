package streams

import "errors"

var (
	// ErrClosedStream is returned when a stream is already closed, or
	// became closed mid-operation with insufficient data to satisfy the
	// request.
	ErrClosedStream = errors.New("streams: closed stream")

	// ErrTimeout is returned when the deadline elapsed before the
	// operation could complete.
	ErrTimeout = errors.New("streams: deadline exceeded")

	// ErrWriteFileUnsupported is returned by WriteFile on transports that
	// do not implement the FileWriter override.
	ErrWriteFileUnsupported = errors.New("streams: write from file not supported")
)
