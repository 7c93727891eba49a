// File: server/handler.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Per-connection echo protocol: read up to the buffer cap, write back
// exactly the bytes read, repeat until the peer closes or an error occurs.
// Messages larger than the cap arrive as multiple independent echo cycles.

package server

import (
	"errors"
	"io"
	"log"
	"net"
	"sync/atomic"
	"time"

	"github.com/momentics/hioload-echo/adapters"
	"github.com/momentics/hioload-echo/api"
	"github.com/momentics/hioload-echo/internal/session"
	"github.com/momentics/hioload-echo/transport"
)

// handleConn owns one accepted connection from dispatch to teardown.
// Errors here terminate this connection only; nothing propagates to the
// accept loop or to other connections.
func (s *Server) handleConn(conn net.Conn, entry *session.Entry) {
	nc := transport.NewNetConn(conn, s.pool, s.cfg.IOBufferSize)
	defer func() {
		nc.Close()
		s.registry.Remove(entry.ID())
		s.control.AddMetric("server.closed", 1)
	}()

	h := adapters.Chain(s.echoHandler(nc), s.middleware...)

	// The running flag is consulted between cycles, not only before the
	// first read, so a shutdown request stops long-lived connections after
	// at most one more in-flight cycle.
	for s.running.Load() {
		if s.cfg.ReadTimeout > 0 {
			nc.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
		}

		chunk, err := nc.ReadChunk()
		if len(chunk) > 0 {
			if herr := h.Handle(chunk); herr != nil {
				s.control.AddMetric("server.conn_errors", 1)
				log.Printf("[server] %v", &api.ConnError{ConnID: entry.ID(), Op: "write", Err: herr})
				return
			}
			s.control.AddMetric("server.echoed_bytes", int64(len(chunk)))
			log.Printf("[server] echoed %d bytes to %s", len(chunk), entry.ID())
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Printf("[server] client disconnected: %s", entry.ID())
				return
			}
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				if s.running.Load() {
					continue // idle deadline tick, keep serving
				}
				return
			}
			s.control.AddMetric("server.conn_errors", 1)
			log.Printf("[server] %v", &api.ConnError{ConnID: entry.ID(), Op: "read", Err: err})
			return
		}

		if len(chunk) == 0 {
			// Zero bytes without an error still means the peer is gone.
			log.Printf("[server] client disconnected: %s", entry.ID())
			return
		}
	}
}

// echoHandler is the innermost handler: write the chunk back unmodified.
func (s *Server) echoHandler(conn api.Conn) api.Handler {
	return adapters.HandlerFunc(func(data any) error {
		b, ok := data.([]byte)
		if !ok {
			return api.ErrInvalidPayload
		}
		_, err := conn.Write(b)
		return err
	})
}

func (s *Server) casServing() bool {
	return atomic.CompareAndSwapInt32(&s.serving, 0, 1)
}
