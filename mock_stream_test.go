package streams

import "time"

var _ Stream = (*MockStream)(nil)

// MockStream is a scriptable Stream for tests. Each capability is a func
// field with a benign default; call counters record how often the
// primitives were reached.
type MockStream struct {
	ReadFunc   func(p []byte, deadline time.Time) (int, error)
	WriteFunc  func(p []byte, deadline time.Time) error
	FlushFunc  func(deadline time.Time) error
	OpenFunc   func(deadline time.Time) error
	CloseFunc  func() error
	ClosedFunc func() bool

	ReadCalls  int
	WriteCalls int
	FlushCalls int
	OpenCalls  int
	CloseCalls int
}

func (m *MockStream) Read(p []byte, deadline time.Time) (int, error) {
	m.ReadCalls++
	if m.ReadFunc != nil {
		return m.ReadFunc(p, deadline)
	}
	return 0, nil // Default behavior if no function is set
}

func (m *MockStream) Write(p []byte, deadline time.Time) error {
	m.WriteCalls++
	if m.WriteFunc != nil {
		return m.WriteFunc(p, deadline)
	}
	return nil // Default behavior if no function is set
}

func (m *MockStream) Flush(deadline time.Time) error {
	m.FlushCalls++
	if m.FlushFunc != nil {
		return m.FlushFunc(deadline)
	}
	return nil
}

func (m *MockStream) Open(deadline time.Time) error {
	m.OpenCalls++
	if m.OpenFunc != nil {
		return m.OpenFunc(deadline)
	}
	return nil
}

func (m *MockStream) Close() error {
	m.CloseCalls++
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

func (m *MockStream) Closed() bool {
	if m.ClosedFunc != nil {
		return m.ClosedFunc()
	}
	return false
}

// newChunkedStream returns a MockStream whose reads deliver data in the
// scripted chunk sizes, in order. A chunk size of zero is delivered as a
// successful zero-byte read.
func newChunkedStream(data []byte, chunks []int) *MockStream {
	offset := 0
	call := 0
	m := &MockStream{}
	m.ReadFunc = func(p []byte, deadline time.Time) (int, error) {
		if call >= len(chunks) {
			return 0, nil
		}
		size := chunks[call]
		call++
		if size > len(p) {
			size = len(p)
		}
		if size > len(data)-offset {
			size = len(data) - offset
		}
		copy(p, data[offset:offset+size])
		offset += size
		return size, nil
	}
	return m
}
