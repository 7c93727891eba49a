// File: pool/bytepool.go
// Author: momentics <momentics@gmail.com>

package pool

import (
	"sync"
	"sync/atomic"
)

// DefaultBufferSize is the per-read cap of the echo protocol.
const DefaultBufferSize = 1024

// BytePool hands out fixed-capacity read buffers. One buffer is reused for
// the lifetime of a connection and returned on close; buffers are never
// shared across connections.
type BytePool struct {
	size int
	pool sync.Pool

	acquired int64
	released int64
}

// NewBytePool creates a pool of buffers of the given capacity.
// A non-positive size falls back to DefaultBufferSize.
func NewBytePool(size int) *BytePool {
	if size <= 0 {
		size = DefaultBufferSize
	}
	p := &BytePool{size: size}
	p.pool.New = func() any {
		return make([]byte, size)
	}
	return p
}

// Size returns the capacity of pooled buffers.
func (p *BytePool) Size() int { return p.size }

// Acquire returns a slice of at least n bytes. Requests larger than the
// pool's buffer size are allocated fresh but still counted, so accounting
// stays balanced when such a buffer is later released.
func (p *BytePool) Acquire(n int) []byte {
	atomic.AddInt64(&p.acquired, 1)
	if n > p.size {
		return make([]byte, n)
	}
	return p.pool.Get().([]byte)
}

// Release returns a buffer to the pool. Foreign or undersized buffers are
// dropped and left to the GC.
func (p *BytePool) Release(buf []byte) {
	if cap(buf) < p.size {
		return
	}
	atomic.AddInt64(&p.released, 1)
	p.pool.Put(buf[:p.size])
}

// Stats reports acquire/release accounting for observability.
func (p *BytePool) Stats() map[string]int64 {
	acq := atomic.LoadInt64(&p.acquired)
	rel := atomic.LoadInt64(&p.released)
	return map[string]int64{
		"acquired": acq,
		"released": rel,
		"in_use":   acq - rel,
	}
}
