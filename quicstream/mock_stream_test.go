package quicstream

import (
	"context"
	"time"

	quicgo "github.com/quic-go/quic-go"
)

var _ quicgo.Stream = (*MockQUICStream)(nil)

// MockQUICStream is a scriptable quic-go stream for tests.
type MockQUICStream struct {
	StreamIDValue        quicgo.StreamID
	ReadFunc             func(p []byte) (n int, err error)
	WriteFunc            func(p []byte) (n int, err error)
	CancelReadFunc       func(quicgo.StreamErrorCode)
	CancelWriteFunc      func(quicgo.StreamErrorCode)
	SetReadDeadlineFunc  func(t time.Time) error
	SetWriteDeadlineFunc func(t time.Time) error
	CloseFunc            func() error
	SetDeadlineFunc      func(t time.Time) error

	ReadCalls       int
	WriteCalls      int
	CloseCalls      int
	CancelReadCodes []quicgo.StreamErrorCode
	ReadDeadlines   []time.Time
	WriteDeadlines  []time.Time
}

func (m *MockQUICStream) StreamID() quicgo.StreamID {
	return m.StreamIDValue
}

func (m *MockQUICStream) Read(p []byte) (n int, err error) {
	m.ReadCalls++
	if m.ReadFunc != nil {
		return m.ReadFunc(p)
	}
	return 0, nil // Default behavior if no function is set
}

func (m *MockQUICStream) Write(p []byte) (n int, err error) {
	m.WriteCalls++
	if m.WriteFunc != nil {
		return m.WriteFunc(p)
	}
	return len(p), nil // Default behavior if no function is set
}

func (m *MockQUICStream) CancelRead(code quicgo.StreamErrorCode) {
	m.CancelReadCodes = append(m.CancelReadCodes, code)
	if m.CancelReadFunc != nil {
		m.CancelReadFunc(code)
	}
}

func (m *MockQUICStream) CancelWrite(code quicgo.StreamErrorCode) {
	if m.CancelWriteFunc != nil {
		m.CancelWriteFunc(code)
	}
}

func (m *MockQUICStream) SetReadDeadline(t time.Time) error {
	m.ReadDeadlines = append(m.ReadDeadlines, t)
	if m.SetReadDeadlineFunc != nil {
		return m.SetReadDeadlineFunc(t)
	}
	return nil
}

func (m *MockQUICStream) SetWriteDeadline(t time.Time) error {
	m.WriteDeadlines = append(m.WriteDeadlines, t)
	if m.SetWriteDeadlineFunc != nil {
		return m.SetWriteDeadlineFunc(t)
	}
	return nil
}

func (m *MockQUICStream) SetDeadline(t time.Time) error {
	if m.SetDeadlineFunc != nil {
		return m.SetDeadlineFunc(t)
	}
	return nil
}

func (m *MockQUICStream) Close() error {
	m.CloseCalls++
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

func (m *MockQUICStream) Context() context.Context {
	return context.Background()
}
