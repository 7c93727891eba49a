// File: facade/echo.go
// Unified facade layer for the hioload-echo library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines the Echo struct, which aggregates the server, its
// listener, pools, registry, and control interface behind a single facade.
// Start binds the socket and launches the accept loop; Stop blocks until
// the accept loop has exited and every connection handler has been joined.

package facade

import (
	"net"
	"sync"

	"github.com/momentics/hioload-echo/api"
	"github.com/momentics/hioload-echo/server"
)

// Echo is the lifecycle handle returned by Start.
type Echo struct {
	srv  *server.Server
	done chan struct{}

	mu      sync.Mutex
	stopped bool
}

// Ensure compliance with api.GracefulShutdown.
var _ api.GracefulShutdown = (*Echo)(nil)

// Start builds a server from cfg, binds its socket, and begins accepting
// in the background. A bind failure is surfaced synchronously as
// *api.BindError and nothing is left running.
func Start(cfg *server.Config, opts ...server.ServerOption) (*Echo, error) {
	srv, err := server.NewServer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	e := &Echo{
		srv:  srv,
		done: make(chan struct{}),
	}
	go func() {
		defer close(e.done)
		srv.Serve()
	}()
	return e, nil
}

// Stop requests shutdown and blocks until the accept loop and all
// connection handlers have finished. Calling Stop twice has no
// additional effect.
func (e *Echo) Stop() error {
	e.mu.Lock()
	if e.stopped {
		e.mu.Unlock()
		<-e.done
		return nil
	}
	e.stopped = true
	e.mu.Unlock()

	e.srv.Stop()
	<-e.done
	return nil
}

// Shutdown implements api.GracefulShutdown by delegating to Stop().
func (e *Echo) Shutdown() error { return e.Stop() }

// Addr returns the bound listener address.
func (e *Echo) Addr() net.Addr { return e.srv.Addr() }

// Control returns the Control interface for metrics and debug probes.
func (e *Echo) Control() api.Control { return e.srv.Control() }

// ActiveConnections returns the number of live connections.
func (e *Echo) ActiveConnections() int { return e.srv.ActiveConnections() }
