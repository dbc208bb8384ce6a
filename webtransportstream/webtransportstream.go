// Package webtransportstream adapts webtransport-go streams to the streams
// capability contract. Session establishment stays with the caller; the
// adapters wrap streams the session has already accepted or opened.
package webtransportstream

import (
	"errors"
	"io"
	"net"
	"os"
	"sync/atomic"
	"time"

	"github.com/maniacs-sfa/streams"
	webtransport "github.com/quic-go/webtransport-go"
)

const errorCodeClosed webtransport.StreamErrorCode = 0x0

// The adapters hold the stream behind the method set they actually use;
// the webtransport-go types are concrete structs, so this is also what
// keeps the package testable.
type bidiStream interface {
	io.Reader
	io.Writer
	io.Closer
	CancelRead(webtransport.StreamErrorCode)
	SetReadDeadline(time.Time) error
	SetWriteDeadline(time.Time) error
}

type receiveStream interface {
	io.Reader
	CancelRead(webtransport.StreamErrorCode)
	SetReadDeadline(time.Time) error
}

type sendStream interface {
	io.Writer
	io.Closer
	SetWriteDeadline(time.Time) error
}

var _ streams.Stream = (*Stream)(nil)

// Stream implements streams.Stream over a bidirectional WebTransport stream.
type Stream struct {
	stream bidiStream
	closed atomic.Bool
}

// New wraps an accepted or opened bidirectional stream.
func New(stream webtransport.Stream) *Stream {
	return newStream(stream)
}

func newStream(stream bidiStream) *Stream {
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

	n, err := s.stream.Read(p)
	if n > 0 {
		return n, nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		return 0, nil
	}
	return 0, mapErr(err)
}

func (s *Stream) Write(p []byte, deadline time.Time) error {
	if s.closed.Load() {
		return streams.ErrClosedStream
	}
	if err := s.stream.SetWriteDeadline(deadline); err != nil {
		return mapErr(err)
	}

	for written := 0; written < len(p); {
		n, err := s.stream.Write(p[written:])
		written += n
		if err != nil {
			return mapErr(err)
		}
	}
	return nil
}

// Flush is a no-op: WebTransport stream data is transmitted as written.
func (s *Stream) Flush(deadline time.Time) error {
	if s.closed.Load() {
		return streams.ErrClosedStream
	}
	return nil
}

var _ streams.Readable = (*ReceiveStream)(nil)

// ReceiveStream implements streams.Readable over a unidirectional
// WebTransport receive stream.
type ReceiveStream struct {
	stream receiveStream
	closed atomic.Bool
}

// NewReceive wraps an accepted unidirectional receive stream.
func NewReceive(stream webtransport.ReceiveStream) *ReceiveStream {
	return newReceiveStream(stream)
}

func newReceiveStream(stream receiveStream) *ReceiveStream {
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

	n, err := s.stream.Read(p)
	if n > 0 {
		return n, nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		return 0, nil
	}
	return 0, mapErr(err)
}

var _ streams.Writable = (*SendStream)(nil)

// SendStream implements streams.Writable over a unidirectional WebTransport
// send stream.
type SendStream struct {
	stream sendStream
	closed atomic.Bool
}

// NewSend wraps an opened unidirectional send stream.
func NewSend(stream webtransport.SendStream) *SendStream {
	return newSendStream(stream)
}

func newSendStream(stream sendStream) *SendStream {
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

	for written := 0; written < len(p); {
		n, err := s.stream.Write(p[written:])
		written += n
		if err != nil {
			return mapErr(err)
		}
	}
	return nil
}

func (s *SendStream) Flush(deadline time.Time) error {
	if s.closed.Load() {
		return streams.ErrClosedStream
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

	var streamErr *webtransport.StreamError
	if errors.As(err, &streamErr) {
		return streams.ErrClosedStream
	}

	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return streams.ErrTimeout
	}
	return err
}
