// File: server/options.go
// Package server defines functional options for the echo server.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package server

import (
	"time"

	"github.com/momentics/hioload-echo/api"
)

// ServerOption customizes server initialization.
type ServerOption func(*Server)

// WithMiddleware attaches handler middleware in FIFO order.
func WithMiddleware(mw ...api.Middleware) ServerOption {
	return func(s *Server) {
		s.middleware = append(s.middleware, mw...)
	}
}

// WithDispatchMode overrides the connection dispatch strategy.
func WithDispatchMode(mode DispatchMode) ServerOption {
	return func(s *Server) {
		s.cfg.Dispatch = mode
	}
}

// WithPoolWorkers sets the worker count for DispatchPool.
func WithPoolWorkers(n int) ServerOption {
	return func(s *Server) {
		s.cfg.PoolWorkers = n
	}
}

// WithMaxConnections caps concurrently served connections; over-limit
// connections are closed right after accept.
func WithMaxConnections(n int) ServerOption {
	return func(s *Server) {
		s.cfg.MaxConnections = n
	}
}

// WithReadTimeout sets a per-read deadline so idle handlers observe the
// shutdown flag in bounded time.
func WithReadTimeout(d time.Duration) ServerOption {
	return func(s *Server) {
		s.cfg.ReadTimeout = d
	}
}

// WithControl replaces the default control adapter.
func WithControl(ctrl api.Control) ServerOption {
	return func(s *Server) {
		if ctrl != nil {
			s.control = ctrl
		}
	}
}
