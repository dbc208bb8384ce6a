package netstream

import (
	"net"
	"time"
)

var _ net.Conn = (*MockConn)(nil)

// MockConn is a scriptable net.Conn for tests, recording the deadlines the
// adapter sets before each primitive operation.
type MockConn struct {
	ReadFunc  func(p []byte) (int, error)
	WriteFunc func(p []byte) (int, error)
	CloseFunc func() error

	ReadCalls  int
	WriteCalls int
	CloseCalls int

	ReadDeadlines  []time.Time
	WriteDeadlines []time.Time
}

func (m *MockConn) Read(p []byte) (int, error) {
	m.ReadCalls++
	if m.ReadFunc != nil {
		return m.ReadFunc(p)
	}
	return 0, nil // Default behavior if no function is set
}

func (m *MockConn) Write(p []byte) (int, error) {
	m.WriteCalls++
	if m.WriteFunc != nil {
		return m.WriteFunc(p)
	}
	return len(p), nil // Default behavior if no function is set
}

func (m *MockConn) Close() error {
	m.CloseCalls++
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

func (m *MockConn) LocalAddr() net.Addr  { return nil }
func (m *MockConn) RemoteAddr() net.Addr { return nil }

func (m *MockConn) SetDeadline(t time.Time) error {
	m.ReadDeadlines = append(m.ReadDeadlines, t)
	m.WriteDeadlines = append(m.WriteDeadlines, t)
	return nil
}

func (m *MockConn) SetReadDeadline(t time.Time) error {
	m.ReadDeadlines = append(m.ReadDeadlines, t)
	return nil
}

func (m *MockConn) SetWriteDeadline(t time.Time) error {
	m.WriteDeadlines = append(m.WriteDeadlines, t)
	return nil
}
