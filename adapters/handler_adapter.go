// File: adapters/handler_adapter.go
// Package adapters
// Author: momentics <momentics@gmail.com>
//
// HandlerFunc glue and extensible middleware for the echo pipeline.

package adapters

import (
	"fmt"
	"log"

	"github.com/momentics/hioload-echo/api"
)

// HandlerFunc converts a function into an api.Handler.
type HandlerFunc func(data any) error

// Handle calls the underlying function.
func (f HandlerFunc) Handle(data any) error {
	return f(data)
}

// Chain wraps base with middleware so that the first element of mw
// is the outermost layer.
func Chain(base api.Handler, mw ...api.Middleware) api.Handler {
	h := base
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return h
}

// LoggingMiddleware logs each processed chunk and any handler error.
func LoggingMiddleware(next api.Handler) api.Handler {
	return HandlerFunc(func(data any) error {
		if b, ok := data.([]byte); ok {
			log.Printf("[handler] echoing %d bytes", len(b))
		}
		err := next.Handle(data)
		if err != nil {
			log.Printf("[handler] error: %v", err)
		}
		return err
	})
}

// RecoveryMiddleware recovers from panics in handler and surfaces them as
// errors so the connection loop does not count the cycle as a completed echo.
func RecoveryMiddleware(next api.Handler) api.Handler {
	return HandlerFunc(func(data any) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[handler] panic recovered: %v", r)
				err = fmt.Errorf("handler panic: %v", r)
			}
		}()
		return next.Handle(data)
	})
}

// MetricsMiddleware counts processed chunks and echoed bytes in Control stats.
func MetricsMiddleware(control api.Control) api.Middleware {
	return func(next api.Handler) api.Handler {
		return HandlerFunc(func(data any) error {
			err := next.Handle(data)
			if err == nil {
				control.AddMetric("handler.processed", 1)
				if b, ok := data.([]byte); ok {
					control.AddMetric("handler.echoed_bytes", int64(len(b)))
				}
			}
			return err
		})
	}
}
