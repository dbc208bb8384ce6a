// Package quicstream adapts quic-go streams to the streams capability
// contract. Bidirectional streams become streams.Stream; unidirectional
// receive and send streams become streams.Readable and streams.Writable.
// Session establishment stays with the caller.
package quicstream

import (
	"errors"
	"io"
	"net"
	"os"
	"sync/atomic"
	"time"

	"github.com/maniacs-sfa/streams"
	quicgo "github.com/quic-go/quic-go"
)

// errorCodeClosed is the stream error code signalled to the peer when the
// local side abandons the read direction on Close.
const errorCodeClosed quicgo.StreamErrorCode = 0x0

var _ streams.Stream = (*Stream)(nil)

// Stream implements streams.Stream over a bidirectional QUIC stream.
type Stream struct {
	stream quicgo.Stream
	closed atomic.Bool
}

// New wraps an accepted or opened bidirectional stream.
func New(stream quicgo.Stream) *Stream {
	return &Stream{stream: stream}
}

func (s *Stream) Open(deadline time.Time) error {
	if s.closed.Load() {
		return streams.ErrClosedStream
	}
	return nil
}

func (s *Stream) Closed() bool {
	return s.closed.Load()
}

// Close closes the send direction and abandons the read direction,
// releasing the stream in both directions. It is safe to call repeatedly.
func (s *Stream) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	s.stream.CancelRead(errorCodeClosed)
	return s.stream.Close()
}

func (s *Stream) Read(p []byte, deadline time.Time) (int, error) {
	if s.closed.Load() {
		return 0, streams.ErrClosedStream
	}
	if err := s.stream.SetReadDeadline(deadline); err != nil {
		return 0, mapErr(err)
	}
	return readPrimitive(s.stream, p)
}

func (s *Stream) Write(p []byte, deadline time.Time) error {
	if s.closed.Load() {
		return streams.ErrClosedStream
	}
	if err := s.stream.SetWriteDeadline(deadline); err != nil {
		return mapErr(err)
	}
	return writeFull(s.stream, p)
}

// Flush is a no-op: quic-go transmits stream data as it is written.
func (s *Stream) Flush(deadline time.Time) error {
	if s.closed.Load() {
		return streams.ErrClosedStream
	}
	return nil
}

var _ streams.Readable = (*ReceiveStream)(nil)

// ReceiveStream implements streams.Readable over a unidirectional QUIC
// receive stream.
type ReceiveStream struct {
	stream quicgo.ReceiveStream
	closed atomic.Bool
}

// NewReceive wraps an accepted unidirectional receive stream.
func NewReceive(stream quicgo.ReceiveStream) *ReceiveStream {
	return &ReceiveStream{stream: stream}
}

func (s *ReceiveStream) Open(deadline time.Time) error {
	if s.closed.Load() {
		return streams.ErrClosedStream
	}
	return nil
}

func (s *ReceiveStream) Closed() bool {
	return s.closed.Load()
}

func (s *ReceiveStream) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	s.stream.CancelRead(errorCodeClosed)
	return nil
}

func (s *ReceiveStream) Read(p []byte, deadline time.Time) (int, error) {
	if s.closed.Load() {
		return 0, streams.ErrClosedStream
	}
	if err := s.stream.SetReadDeadline(deadline); err != nil {
		return 0, mapErr(err)
	}
	return readPrimitive(s.stream, p)
}

var _ streams.Writable = (*SendStream)(nil)

// SendStream implements streams.Writable over a unidirectional QUIC send
// stream.
type SendStream struct {
	stream quicgo.SendStream
	closed atomic.Bool
}

// NewSend wraps an opened unidirectional send stream.
func NewSend(stream quicgo.SendStream) *SendStream {
	return &SendStream{stream: stream}
}

func (s *SendStream) Open(deadline time.Time) error {
	if s.closed.Load() {
		return streams.ErrClosedStream
	}
	return nil
}

func (s *SendStream) Closed() bool {
	return s.closed.Load()
}

func (s *SendStream) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.stream.Close()
}

func (s *SendStream) Write(p []byte, deadline time.Time) error {
	if s.closed.Load() {
		return streams.ErrClosedStream
	}
	if err := s.stream.SetWriteDeadline(deadline); err != nil {
		return mapErr(err)
	}
	return writeFull(s.stream, p)
}

func (s *SendStream) Flush(deadline time.Time) error {
	if s.closed.Load() {
		return streams.ErrClosedStream
	}
	return nil
}

func readPrimitive(r io.Reader, p []byte) (int, error) {
	n, err := r.Read(p)
	if n > 0 {
		return n, nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		// The peer finished the stream; report the contract's zero-byte
		// read rather than an error.
		return 0, nil
	}
	return 0, mapErr(err)
}

func writeFull(w io.Writer, p []byte) error {
	for written := 0; written < len(p); {
		n, err := w.Write(p[written:])
		written += n
		if err != nil {
			return mapErr(err)
		}
	}
	return nil
}

func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, os.ErrDeadlineExceeded):
		return streams.ErrTimeout
	case errors.Is(err, net.ErrClosed):
		return streams.ErrClosedStream
	}

	var streamErr *quicgo.StreamError
	if errors.As(err, &streamErr) {
		// The stream was reset by either side.
		return streams.ErrClosedStream
	}
	var appErr *quicgo.ApplicationError
	if errors.As(err, &appErr) {
		return streams.ErrClosedStream
	}
	var transportErr *quicgo.TransportError
	if errors.As(err, &transportErr) {
		return streams.ErrClosedStream
	}

	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return streams.ErrTimeout
	}
	return err
}
