package server

import (
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/momentics/hioload-echo/api"
	"github.com/momentics/hioload-echo/internal/concurrency"
	"github.com/momentics/hioload-echo/internal/session"
	"github.com/momentics/hioload-echo/pool"
)

// DispatchMode selects how accepted connections are handed to handlers.
type DispatchMode int

const (
	// DispatchSpawn runs one goroutine per connection; the accept loop
	// blocks only on accept. Default.
	DispatchSpawn DispatchMode = iota
	// DispatchInline handles each connection to completion before the next
	// accept; at most one in-flight connection at a time.
	DispatchInline
	// DispatchPool queues accepted connections for a fixed worker set.
	DispatchPool
)

// Config holds all server-side configuration parameters.
type Config struct {
	ListenAddr     string        // TCP bind address, e.g. ":9000"
	ReuseAddr      bool          // apply SO_REUSEADDR before bind
	ReusePort      bool          // apply SO_REUSEPORT before bind
	Backlog        int           // pending-connection queue depth, must be > 0
	IOBufferSize   int           // per-read cap; one buffer per connection
	Dispatch       DispatchMode  // connection dispatch strategy
	PoolWorkers    int           // worker count for DispatchPool (0 = NumCPU)
	MaxConnections int           // connection limit, 0 = unlimited
	ReadTimeout    time.Duration // optional per-read deadline; bounds shutdown latency
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ListenAddr:   ":9000",
		ReuseAddr:    true,
		ReusePort:    true,
		Backlog:      128,
		IOBufferSize: pool.DefaultBufferSize,
		Dispatch:     DispatchSpawn,
	}
}

// Server owns the listening socket, the accept loop, and shutdown
// coordination across connection handlers.
type Server struct {
	cfg        *Config
	running    atomic.Bool // readable everywhere, written only by Stop
	serving    int32
	ln         net.Listener
	pool       *pool.BytePool
	registry   *session.Registry
	control    api.Control
	dispatcher concurrency.Dispatcher
	middleware []api.Middleware
	stopOnce   sync.Once
}
