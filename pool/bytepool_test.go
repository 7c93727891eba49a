// Package pool tests buffer pooling.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "testing"

func TestBytePool_AcquireRelease(t *testing.T) {
	p := NewBytePool(1024)

	buf := p.Acquire(512)
	if len(buf) < 512 {
		t.Fatalf("Acquire(512) returned %d bytes", len(buf))
	}
	if len(buf) != 1024 {
		t.Errorf("Expected pooled buffer of 1024 bytes, got %d", len(buf))
	}
	p.Release(buf)

	stats := p.Stats()
	if stats["acquired"] != 1 || stats["released"] != 1 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats["in_use"] != 0 {
		t.Errorf("Expected no buffers in use, got %d", stats["in_use"])
	}
}

func TestBytePool_OversizeAccounting(t *testing.T) {
	p := NewBytePool(1024)

	buf := p.Acquire(4096)
	if len(buf) != 4096 {
		t.Fatalf("Expected 4096-byte buffer, got %d", len(buf))
	}
	if p.Stats()["acquired"] != 1 {
		t.Errorf("Oversize acquire not counted: %+v", p.Stats())
	}

	// Releasing the oversize buffer must keep in_use balanced, never negative.
	p.Release(buf)
	if got := p.Stats()["in_use"]; got != 0 {
		t.Errorf("Expected in_use 0 after release, got %d", got)
	}
}

func TestBytePool_DefaultSize(t *testing.T) {
	p := NewBytePool(0)
	if p.Size() != DefaultBufferSize {
		t.Errorf("Expected default size %d, got %d", DefaultBufferSize, p.Size())
	}
}

func TestBytePool_RejectsForeignBuffer(t *testing.T) {
	p := NewBytePool(1024)
	p.Release(make([]byte, 16))
	if p.Stats()["released"] != 0 {
		t.Error("Undersized buffer must not enter the pool")
	}
}

func TestSyncPool_RoundTrip(t *testing.T) {
	type state struct{ n int }
	sp := NewSyncPool(func() *state { return &state{} })

	s := sp.Get()
	if s == nil {
		t.Fatal("Get returned nil")
	}
	s.n = 42
	sp.Put(s)

	again := sp.Get()
	if again == nil {
		t.Fatal("Get after Put returned nil")
	}
}
