// File: internal/session/registry.go
// Package session
// Author: momentics <momentics@gmail.com>
//
// Thread-safe registry of live connections. Supports connection counting
// and broadcast-capable iteration. The lock is scoped strictly to map
// mutation and is never held across blocking I/O.

package session

import (
	"net"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/momentics/hioload-echo/api"
	"github.com/momentics/hioload-echo/pool"
)

// Entry holds per-connection bookkeeping state.
type Entry struct {
	id     string
	remote net.Addr
	opened time.Time
	done   chan struct{}
	once   sync.Once
}

// ID returns the unique connection identifier.
func (e *Entry) ID() string { return e.id }

// RemoteAddr returns the peer address.
func (e *Entry) RemoteAddr() net.Addr { return e.remote }

// Opened returns the accept timestamp.
func (e *Entry) Opened() time.Time { return e.opened }

// Cancel signals connection teardown; idempotent.
func (e *Entry) Cancel() {
	e.once.Do(func() {
		close(e.done)
	})
}

// Done returns a channel closed upon cancellation.
func (e *Entry) Done() <-chan struct{} { return e.done }

func (e *Entry) reset(remote net.Addr) {
	e.id = uuid.NewString()
	e.remote = remote
	e.opened = time.Now()
	e.done = make(chan struct{})
	e.once = sync.Once{}
}

// Registry tracks live connections by ID.
type Registry struct {
	mu      sync.RWMutex
	conns   map[string]*Entry
	entries api.ObjectPool[*Entry]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		conns:   make(map[string]*Entry),
		entries: pool.NewSyncPool(func() *Entry { return &Entry{} }),
	}
}

// Add registers a new connection and returns its entry.
func (r *Registry) Add(remote net.Addr) *Entry {
	e := r.entries.Get()
	e.reset(remote)
	r.mu.Lock()
	r.conns[e.id] = e
	r.mu.Unlock()
	return e
}

// Get fetches an entry if present.
func (r *Registry) Get(id string) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.conns[id]
	return e, ok
}

// Remove cancels and deletes the entry, recycling it for reuse.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	e, ok := r.conns[id]
	if ok {
		delete(r.conns, id)
	}
	r.mu.Unlock()
	if ok {
		e.Cancel()
		r.entries.Put(e)
	}
}

// Len returns the number of live connections.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}

// Range applies fn to all live entries.
func (r *Registry) Range(fn func(*Entry)) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.conns {
		fn(e)
	}
}
