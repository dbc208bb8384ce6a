package streams

import "time"

// Readable is the read capability of a stream. Implementations provide the
// single primitive Read; everything else (ReadUpTo, ReadExactly, Drain) is
// derived from it.
//
// Deadlines are absolute points in time, not durations. The zero time means
// no deadline; a deadline already in the past fails the call immediately
// unless it is already satisfiable. Implementations must not retain the
// buffer passed to Read beyond the call.
//
// A single handle is not safe for concurrent operations; distinct handles
// are independent.
type Readable interface {
	// Read fills p with up to len(p) bytes and reports how many were
	// actually read. A zero count with a nil error is valid and signals
	// graceful end of stream.
	Read(p []byte, deadline time.Time) (int, error)

	Open(deadline time.Time) error
	Close() error

	// Closed reports whether the stream has been closed. The transition
	// is monotonic: once true, it never becomes false again.
	Closed() bool
}

// Writable is the write capability of a stream. Unlike Read, the primitive
// Write is all-or-nothing: it transmits the entire span or fails.
type Writable interface {
	Write(p []byte, deadline time.Time) error

	// Flush forces internally buffered bytes to the transport. Transports
	// without internal buffering implement it as a no-op.
	Flush(deadline time.Time) error

	Open(deadline time.Time) error
	Close() error
	Closed() bool
}

// Stream is a bidirectional transport endpoint.
type Stream interface {
	Readable
	Writable
}

// BufferConvertible is anything that can expose its contents as a byte
// slice. bytes.Buffer satisfies it as-is.
type BufferConvertible interface {
	Bytes() []byte
}

// FileWriter is the optional override a transport implements when it can
// transmit a file directly (e.g. via sendfile). Transports without it cause
// WriteFile to fail with ErrWriteFileUnsupported.
type FileWriter interface {
	WriteFile(path string, deadline time.Time) error
}
