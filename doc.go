// Package streams defines a transport-agnostic, deadline-bounded byte-stream
// contract: a Readable and a Writable capability that concrete transports
// (TCP, TLS, QUIC, WebTransport, in-memory pipes) implement, plus derived
// operations built only on the primitives so that generic protocol code works
// identically over any backing transport.
//
// # Key Features
//
//   - Single primitive read and single primitive write per transport; all
//     derived behavior (ReadUpTo, ReadExactly, Drain, Write helpers) comes
//     for free
//   - Absolute deadlines carried on every blocking call, so one deadline can
//     be shared across a sequence of calls with the remaining budget
//     shrinking naturally
//   - A flat error taxonomy (ErrClosedStream, ErrTimeout,
//     ErrWriteFileUnsupported) every transport maps into
//
// # Basic Usage
//
// Wrap an established endpoint with one of the adapter packages and drive it
// through the derived operations:
//
//	conn := netstream.New(tcpConn)
//	defer conn.Close()
//
//	deadline := time.Now().Add(5 * time.Second)
//	header, err := streams.ReadExactly(conn, 8, deadline)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Core Components
//
//   - Readable: read capability with a bounded primitive Read
//   - Writable: write capability with an all-or-nothing primitive Write
//   - Stream: the conjunction of both, for bidirectional transports
//   - FileWriter: optional per-transport override for zero-copy file writes
//
// Adapters for net.Conn, quic-go and webtransport-go endpoints live in the
// netstream, quicstream and webtransportstream packages.
package streams
