// File: api/shutdown.go
// Package api defines unified graceful shutdown contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// GracefulShutdown unifies cooperative teardown of components: stop taking
// new work, wait for in-flight work, release resources.
type GracefulShutdown interface {
	// Shutdown performs an orderly stop of all internal services
	// and releases resources. Returns an error on failure.
	Shutdown() error
}
