package streams

import "time"

// defaultDrainBufferSize is the scratch window used by Drain when the caller
// does not supply a size.
const defaultDrainBufferSize = 4096

// ReadUpTo reads at most n bytes from r with a single primitive read and
// returns whatever arrived, possibly nothing. It never issues more than one
// read. For n <= 0 it returns an empty buffer without touching the
// transport.
func ReadUpTo(r Readable, n int, deadline time.Time) ([]byte, error) {
	if n <= 0 {
		return []byte{}, nil
	}

	buf := make([]byte, n)
	read, err := r.Read(buf, deadline)
	if err != nil {
		return nil, err
	}

	return buf[:read], nil
}

// ReadExactly reads exactly n bytes from r, issuing as many primitive reads
// as needed. It returns either a buffer of exactly n bytes or an error,
// never a short buffer. A successful zero-byte read before the count is
// reached means the peer ended the stream early and is reported as
// ErrClosedStream.
//
// The same absolute deadline is passed unchanged to every read; the
// remaining budget shrinks naturally across iterations. For n <= 0 it
// returns an empty buffer immediately.
func ReadExactly(r Readable, n int, deadline time.Time) ([]byte, error) {
	if n <= 0 {
		return []byte{}, nil
	}

	buf := make([]byte, n)
	filled := 0
	for filled < n {
		read, err := r.Read(buf[filled:], deadline)
		if err != nil {
			return nil, err
		}
		if read == 0 {
			return nil, ErrClosedStream
		}
		filled += read
	}

	return buf, nil
}

// Drain reads from r until end of stream, appending each chunk to an
// accumulating buffer read through a single reused scratch window of
// bufferSize bytes. It terminates normally on a zero-byte read or once r
// reports itself closed; this is the graceful end-of-stream path. Invoking
// Drain on an already-closed stream fails with ErrClosedStream before any
// read is attempted.
//
// bufferSize <= 0 selects a default scratch size.
func Drain(r Readable, bufferSize int, deadline time.Time) ([]byte, error) {
	if r.Closed() {
		return nil, ErrClosedStream
	}

	if bufferSize <= 0 {
		bufferSize = defaultDrainBufferSize
	}

	scratch := make([]byte, bufferSize)
	out := make([]byte, 0, bufferSize)
	for {
		read, err := r.Read(scratch, deadline)
		if err != nil {
			return nil, err
		}

		out = append(out, scratch[:read]...)

		if read == 0 || r.Closed() {
			return out, nil
		}
	}
}
