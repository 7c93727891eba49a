// File: internal/concurrency/dispatcher.go
// Package concurrency implements the task-dispatch abstraction behind the
// accept loop: the same connection-handler closure runs inline, on a
// goroutine per connection, or on a fixed worker pool.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-echo/api"
)

// Task is a unit of work: handling one accepted connection to completion.
type Task func()

// Dispatcher runs tasks and joins them on Close.
type Dispatcher interface {
	// Submit hands a task to the dispatcher. Returns api.ErrDispatcherClosed
	// after Close has begun.
	Submit(task Task) error

	// Close stops intake and blocks until every submitted task has finished.
	// Idempotent.
	Close()
}

// SyncDispatcher executes each task inline before Submit returns.
// One slow peer therefore blocks all others; it exists for the
// single-threaded deployment mode.
type SyncDispatcher struct {
	closed int32
}

func NewSyncDispatcher() *SyncDispatcher { return &SyncDispatcher{} }

func (d *SyncDispatcher) Submit(task Task) error {
	if atomic.LoadInt32(&d.closed) == 1 {
		return api.ErrDispatcherClosed
	}
	task()
	return nil
}

func (d *SyncDispatcher) Close() {
	atomic.StoreInt32(&d.closed, 1)
}

// Spawner runs one goroutine per task and joins all of them on Close.
// This is the multi-threaded deployment mode: the accept loop never blocks
// on connection I/O, only on accept.
type Spawner struct {
	mu     sync.Mutex // orders the closed check and wg.Add against Close
	wg     sync.WaitGroup
	active int64
	closed bool
}

func NewSpawner() *Spawner { return &Spawner{} }

func (s *Spawner) Submit(task Task) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return api.ErrDispatcherClosed
	}
	s.wg.Add(1)
	s.mu.Unlock()
	atomic.AddInt64(&s.active, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[spawner] panic in task: %v", r)
			}
			atomic.AddInt64(&s.active, -1)
			s.wg.Done()
		}()
		task()
	}()
	return nil
}

// Active returns the number of tasks currently running.
func (s *Spawner) Active() int64 {
	return atomic.LoadInt64(&s.active)
}

func (s *Spawner) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.wg.Wait()
}
