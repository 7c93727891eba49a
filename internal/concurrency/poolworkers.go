// File: internal/concurrency/poolworkers.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// PoolDispatcher drains a FIFO of pending connection tasks with a fixed set
// of workers. Accepted connections queue up when every worker is busy; the
// queue itself is eapache/queue, guarded by the dispatcher mutex since the
// queue type is not thread-safe by contract.

package concurrency

import (
	"log"
	"runtime"
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-echo/api"
)

// PoolDispatcher implements Dispatcher over a bounded worker set.
type PoolDispatcher struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending *queue.Queue
	wg      sync.WaitGroup
	closed  bool
	workers int
}

// NewPoolDispatcher starts n workers; n <= 0 defaults to runtime.NumCPU().
func NewPoolDispatcher(n int) *PoolDispatcher {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	d := &PoolDispatcher{
		pending: queue.New(),
		workers: n,
	}
	d.cond = sync.NewCond(&d.mu)
	for i := 0; i < n; i++ {
		d.wg.Add(1)
		go d.run()
	}
	return d
}

// NumWorkers returns the size of the worker set.
func (d *PoolDispatcher) NumWorkers() int { return d.workers }

// Pending returns the number of queued tasks not yet picked up.
func (d *PoolDispatcher) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending.Length()
}

func (d *PoolDispatcher) Submit(task Task) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return api.ErrDispatcherClosed
	}
	d.pending.Add(task)
	d.cond.Signal()
	d.mu.Unlock()
	return nil
}

// run is the worker loop. Queued tasks are drained even after Close so that
// accepted connections are served rather than dropped.
func (d *PoolDispatcher) run() {
	defer d.wg.Done()
	for {
		d.mu.Lock()
		for d.pending.Length() == 0 && !d.closed {
			d.cond.Wait()
		}
		if d.pending.Length() == 0 {
			d.mu.Unlock()
			return
		}
		task := d.pending.Remove().(Task)
		d.mu.Unlock()

		d.execute(task)
	}
}

func (d *PoolDispatcher) execute(task Task) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[pool-dispatcher] panic in task: %v", r)
		}
	}()
	task()
}

// Close stops intake, wakes idle workers, and joins the worker set.
func (d *PoolDispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.wg.Wait()
		return
	}
	d.closed = true
	d.cond.Broadcast()
	d.mu.Unlock()
	d.wg.Wait()
}
