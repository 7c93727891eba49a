// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package transport

import (
	"net"
	"sync"
	"time"

	"github.com/momentics/hioload-echo/api"
)

// NetConn implements api.Conn over net.Conn with a pool-backed read buffer.
// The buffer is reused for every read within the connection's lifetime and
// returned to the pool on Close. Data beyond the number of bytes actually
// read is never exposed.
type NetConn struct {
	conn      net.Conn
	pool      api.BytePool
	buf       []byte
	closeOnce sync.Once
	closeErr  error
}

// NewNetConn initializes a new NetConn whose reads are capped at bufSize.
func NewNetConn(conn net.Conn, pool api.BytePool, bufSize int) *NetConn {
	return &NetConn{
		conn: conn,
		pool: pool,
		buf:  pool.Acquire(bufSize)[:bufSize],
	}
}

// ReadChunk fills the connection buffer and returns the bytes actually read.
// The slice is valid only until the next ReadChunk call. A read may return
// both data and an error; callers consume the chunk first.
func (c *NetConn) ReadChunk() ([]byte, error) {
	n, err := c.conn.Read(c.buf)
	return c.buf[:n], err
}

// Write writes buffer contents into the connection.
func (c *NetConn) Write(p []byte) (int, error) {
	return c.conn.Write(p)
}

// Close shuts down the connection and returns the buffer to the pool.
// Idempotent.
func (c *NetConn) Close() error {
	c.closeOnce.Do(func() {
		c.pool.Release(c.buf)
		c.closeErr = c.conn.Close()
	})
	return c.closeErr
}

// SetReadDeadline bounds the next ReadChunk call.
func (c *NetConn) SetReadDeadline(t time.Time) error {
	return c.conn.SetReadDeadline(t)
}

// RemoteAddr returns the peer address.
func (c *NetConn) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}

var _ api.Conn = (*NetConn)(nil)
