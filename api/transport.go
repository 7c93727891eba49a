// File: api/transport.go
// Author: momentics <momentics@gmail.com>
//
// Defines the transport connection abstraction (Conn) so the echo loop
// does not depend on net.Conn directly and can be driven by fakes in tests.

package api

import (
	"net"
	"time"
)

// Conn abstracts a full-duplex network connection owned by exactly one
// connection handler. It is never shared across handlers.
type Conn interface {
	// ReadChunk reads the next chunk, capped at the connection's buffer size.
	// The returned slice is valid only until the next ReadChunk call.
	ReadChunk() ([]byte, error)

	// Write writes buffer contents into the connection.
	Write(p []byte) (n int, err error)

	// Close shuts down the connection and releases its buffer.
	Close() error

	// SetReadDeadline bounds the next ReadChunk call.
	SetReadDeadline(t time.Time) error

	// RemoteAddr returns the peer address.
	RemoteAddr() net.Addr
}
