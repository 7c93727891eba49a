// File: api/handler.go
// Package api defines Handler interface.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Handler processes data payloads. In the echo pipeline the payload is the
// chunk read from a connection, and the innermost handler writes it back.
type Handler interface {
	Handle(data any) error
}

// Middleware wraps a Handler with cross-cutting behavior.
type Middleware func(Handler) Handler
