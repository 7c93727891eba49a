// File: transport/tcp/listener.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package tcp

import (
	"net"

	"github.com/momentics/hioload-echo/api"
)

// ListenerConfig holds configuration for the TCP listener.
// It is immutable once the listener is created.
type ListenerConfig struct {
	Addr      string // TCP address to bind (e.g., ":9000")
	ReuseAddr bool   // set SO_REUSEADDR before bind
	ReusePort bool   // set SO_REUSEPORT before bind
	Backlog   int    // pending-connection queue depth applied at listen time
}

// Listen produces a bound, listening socket from cfg. Any OS-level failure
// is returned as *api.BindError and is fatal to server startup: a failed
// bind indicates a configuration or environment problem, not a transient
// condition, so there is no retry.
func Listen(cfg *ListenerConfig) (net.Listener, error) {
	if cfg == nil || cfg.Addr == "" {
		return nil, &api.BindError{Addr: "", Err: api.ErrInvalidConfig}
	}
	if cfg.Backlog <= 0 {
		return nil, &api.BindError{Addr: cfg.Addr, Err: api.ErrInvalidConfig}
	}
	ln, err := listen(cfg)
	if err != nil {
		return nil, &api.BindError{Addr: cfg.Addr, Err: err}
	}
	return ln, nil
}
