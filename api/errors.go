// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-echo.

package api

import (
	"errors"
	"fmt"
)

// Common errors used across the library.
var (
	ErrServerClosed     = errors.New("server is closed")
	ErrAlreadyRunning   = errors.New("server already running")
	ErrDispatcherClosed = errors.New("dispatcher is closed")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrInvalidPayload   = errors.New("invalid payload type")
)

// BindError reports a socket construction, bind, or listen failure.
// It is fatal to server startup and surfaced synchronously to the caller.
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("bind %s: %v", e.Addr, e.Err)
}

func (e *BindError) Unwrap() error { return e.Err }

// AcceptError reports a transient failure accepting a connection.
// The accept loop logs it and keeps accepting.
type AcceptError struct {
	Err error
}

func (e *AcceptError) Error() string {
	return fmt.Sprintf("accept: %v", e.Err)
}

func (e *AcceptError) Unwrap() error { return e.Err }

// ConnError reports a read or write failure on one connection.
// It terminates only the affected connection and never propagates
// to the accept loop or to other connections.
type ConnError struct {
	ConnID string
	Op     string
	Err    error
}

func (e *ConnError) Error() string {
	return fmt.Sprintf("conn %s: %s: %v", e.ConnID, e.Op, e.Err)
}

func (e *ConnError) Unwrap() error { return e.Err }
