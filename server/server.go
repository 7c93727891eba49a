// File: server/server.go
// Package server implements the accept loop, connection dispatch, and
// graceful shutdown of the hioload-echo server.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package server

import (
	"errors"
	"log"
	"net"

	"github.com/momentics/hioload-echo/adapters"
	"github.com/momentics/hioload-echo/api"
	"github.com/momentics/hioload-echo/internal/concurrency"
	"github.com/momentics/hioload-echo/internal/session"
	"github.com/momentics/hioload-echo/pool"
	"github.com/momentics/hioload-echo/transport/tcp"
)

// NewServer binds the listening socket and prepares the dispatcher.
// A bind or listen failure is returned synchronously as *api.BindError.
func NewServer(cfg *Config, opts ...ServerOption) (*Server, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.IOBufferSize <= 0 {
		cfg.IOBufferSize = pool.DefaultBufferSize
	}

	s := &Server{
		cfg:      cfg,
		pool:     pool.NewBytePool(cfg.IOBufferSize),
		registry: session.NewRegistry(),
		control:  adapters.NewControlAdapter(),
	}
	for _, o := range opts {
		o(s)
	}

	ln, err := tcp.Listen(&tcp.ListenerConfig{
		Addr:      cfg.ListenAddr,
		ReuseAddr: cfg.ReuseAddr,
		ReusePort: cfg.ReusePort,
		Backlog:   cfg.Backlog,
	})
	if err != nil {
		return nil, err
	}
	s.ln = ln

	switch cfg.Dispatch {
	case DispatchInline:
		s.dispatcher = concurrency.NewSyncDispatcher()
	case DispatchPool:
		s.dispatcher = concurrency.NewPoolDispatcher(cfg.PoolWorkers)
	default:
		s.dispatcher = concurrency.NewSpawner()
	}

	s.running.Store(true)
	s.control.SetConfig(map[string]any{
		"listen_addr":     ln.Addr().String(),
		"backlog":         cfg.Backlog,
		"reuse_addr":      cfg.ReuseAddr,
		"reuse_port":      cfg.ReusePort,
		"io_buffer_size":  cfg.IOBufferSize,
		"dispatch_mode":   int(cfg.Dispatch),
		"max_connections": cfg.MaxConnections,
	})
	s.control.RegisterDebugProbe("active_connections", func() any {
		return s.registry.Len()
	})
	s.control.RegisterDebugProbe("buffer_pool", func() any {
		return s.pool.Stats()
	})
	return s, nil
}

// Serve accepts connections until Stop is called. It blocks on accept only;
// connection I/O runs wherever the dispatcher puts it. Accept errors are
// transient and logged unless the listener itself has been closed.
func (s *Server) Serve() error {
	if !s.running.Load() {
		return api.ErrServerClosed
	}
	if !s.casServing() {
		return api.ErrAlreadyRunning
	}
	log.Printf("[server] listening on %s", s.ln.Addr())

	for s.running.Load() {
		conn, err := s.ln.Accept()
		if err != nil {
			if !s.running.Load() || errors.Is(err, net.ErrClosed) {
				break
			}
			log.Printf("[server] %v", &api.AcceptError{Err: err})
			continue
		}

		if s.cfg.MaxConnections > 0 && s.registry.Len() >= s.cfg.MaxConnections {
			conn.Close()
			s.control.AddMetric("server.rejected", 1)
			continue
		}

		entry := s.registry.Add(conn.RemoteAddr())
		s.control.AddMetric("server.accepted", 1)
		log.Printf("[server] client connected: %s (%s)", entry.ID(), conn.RemoteAddr())

		c := conn
		if err := s.dispatcher.Submit(func() { s.handleConn(c, entry) }); err != nil {
			s.registry.Remove(entry.ID())
			c.Close()
			break
		}
	}
	return nil
}

// Stop flips the running flag, closes the listener to unblock the accept
// loop, and joins all dispatched handlers. Idempotent; does not forcibly
// kill in-flight handlers, only requests and waits for cooperative exit.
func (s *Server) Stop() error {
	s.stopOnce.Do(func() {
		log.Printf("[server] shutdown requested")
		s.running.Store(false)
		s.ln.Close()
		s.dispatcher.Close()
		log.Printf("[server] stopped")
	})
	return nil
}

// Shutdown implements api.GracefulShutdown.
func (s *Server) Shutdown() error { return s.Stop() }

// Addr returns the bound listener address.
func (s *Server) Addr() net.Addr { return s.ln.Addr() }

// Running reports whether the server still accepts connections.
func (s *Server) Running() bool { return s.running.Load() }

// ActiveConnections returns the number of registered live connections.
func (s *Server) ActiveConnections() int { return s.registry.Len() }

// Control exposes runtime metrics and debug probes.
func (s *Server) Control() api.Control { return s.control }

var _ api.GracefulShutdown = (*Server)(nil)
