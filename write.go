package streams

import "time"

// Write writes buf to w. An empty buffer is a no-op that never reaches the
// primitive: some transports treat a zero-length write as a signal rather
// than a no-op, so the guard lives here once instead of in every transport.
func Write(w Writable, buf []byte, deadline time.Time) error {
	if len(buf) == 0 {
		return nil
	}
	return w.Write(buf, deadline)
}

// WriteString writes s to w via the buffer path.
func WriteString(w Writable, s string, deadline time.Time) error {
	return Write(w, []byte(s), deadline)
}

// WriteBuffer writes the contents of b to w via the buffer path.
func WriteBuffer(w Writable, b BufferConvertible, deadline time.Time) error {
	return Write(w, b.Bytes(), deadline)
}

// WriteFile transmits the file at path over w. Transports that implement
// the FileWriter override (e.g. for sendfile) handle it themselves; all
// others fail with ErrWriteFileUnsupported.
func WriteFile(w Writable, path string, deadline time.Time) error {
	if fw, ok := w.(FileWriter); ok {
		return fw.WriteFile(path, deadline)
	}
	return ErrWriteFileUnsupported
}
