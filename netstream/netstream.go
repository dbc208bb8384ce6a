// Package netstream adapts an established net.Conn (TCP, TLS, Unix domain,
// net.Pipe) to the streams capability contract. It never dials or listens;
// the caller owns connection establishment and hands the live conn in.
package netstream

import (
	"bufio"
	"errors"
	"io"
	"net"
	"os"
	"sync/atomic"
	"time"

	"github.com/maniacs-sfa/streams"
)

const defaultWriteBufferSize = 4096

var _ streams.Stream = (*Conn)(nil)
var _ streams.FileWriter = (*Conn)(nil)

// Conn implements streams.Stream over a net.Conn. The per-call absolute
// deadline is applied with SetReadDeadline/SetWriteDeadline immediately
// before each primitive operation.
type Conn struct {
	conn   net.Conn
	bw     *bufio.Writer // nil when unbuffered
	closed atomic.Bool
}

// New wraps an established connection. Writes go straight to the conn and
// Flush is a no-op.
func New(conn net.Conn) *Conn {
	return &Conn{conn: conn}
}

// NewBuffered wraps an established connection with a write buffer of the
// given size. Buffered bytes reach the conn on Flush or when the buffer
// fills; callers must Flush before Close or pending bytes are dropped.
func NewBuffered(conn net.Conn, size int) *Conn {
	if size <= 0 {
		size = defaultWriteBufferSize
	}
	return &Conn{conn: conn, bw: bufio.NewWriterSize(conn, size)}
}

func (c *Conn) Open(deadline time.Time) error {
	if c.closed.Load() {
		return streams.ErrClosedStream
	}
	// The endpoint is already established; nothing to do.
	return nil
}

func (c *Conn) Closed() bool {
	return c.closed.Load()
}

func (c *Conn) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	return c.conn.Close()
}

func (c *Conn) Read(p []byte, deadline time.Time) (int, error) {
	if c.closed.Load() {
		return 0, streams.ErrClosedStream
	}
	if err := c.conn.SetReadDeadline(deadline); err != nil {
		return 0, mapErr(err)
	}

	n, err := c.conn.Read(p)
	if n > 0 {
		// Progress counts. A trailing EOF or deadline error resurfaces
		// on the next call.
		return n, nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		// Graceful end of stream is the contract's zero-byte read.
		return 0, nil
	}
	return 0, mapErr(err)
}

func (c *Conn) Write(p []byte, deadline time.Time) error {
	if c.closed.Load() {
		return streams.ErrClosedStream
	}
	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		return mapErr(err)
	}

	dst := io.Writer(c.conn)
	if c.bw != nil {
		dst = c.bw
	}

	// net.Conn reports short writes only alongside an error, but the loop
	// makes the all-or-nothing guarantee explicit.
	for written := 0; written < len(p); {
		n, err := dst.Write(p[written:])
		written += n
		if err != nil {
			return mapErr(err)
		}
	}
	return nil
}

func (c *Conn) Flush(deadline time.Time) error {
	if c.closed.Load() {
		return streams.ErrClosedStream
	}
	if c.bw == nil {
		return nil
	}
	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		return mapErr(err)
	}
	return mapErr(c.bw.Flush())
}

// WriteFile transmits the contents of the file at path. io.Copy lets
// net.TCPConn take its sendfile path via ReadFrom, so TCP transfers skip the
// userspace copy.
func (c *Conn) WriteFile(path string, deadline time.Time) error {
	if c.closed.Load() {
		return streams.ErrClosedStream
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if c.bw != nil {
		if err := c.Flush(deadline); err != nil {
			return err
		}
	}
	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		return mapErr(err)
	}
	if _, err := io.Copy(c.conn, f); err != nil {
		return mapErr(err)
	}
	return nil
}

func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, os.ErrDeadlineExceeded):
		return streams.ErrTimeout
	case errors.Is(err, net.ErrClosed),
		errors.Is(err, io.ErrClosedPipe),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF):
		return streams.ErrClosedStream
	}

	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return streams.ErrTimeout
	}
	return err
}
