package session

import (
	"net"
	"testing"
)

func TestRegistry_AddRemove(t *testing.T) {
	r := NewRegistry()
	addr := &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 4242}

	e := r.Add(addr)
	if e.ID() == "" {
		t.Fatal("Expected non-empty connection ID")
	}
	if e.RemoteAddr() != addr {
		t.Errorf("Unexpected remote addr: %v", e.RemoteAddr())
	}
	if r.Len() != 1 {
		t.Errorf("Expected 1 live connection, got %d", r.Len())
	}

	if got, ok := r.Get(e.ID()); !ok || got != e {
		t.Error("Get did not return the registered entry")
	}

	r.Remove(e.ID())
	if r.Len() != 0 {
		t.Errorf("Expected empty registry after Remove, got %d", r.Len())
	}
	if _, ok := r.Get(e.ID()); ok {
		t.Error("Removed entry still present")
	}
}

func TestRegistry_RemoveCancels(t *testing.T) {
	r := NewRegistry()
	e := r.Add(nil)

	r.Remove(e.ID())
	select {
	case <-e.Done():
	default:
		t.Error("Remove did not cancel the entry")
	}

	// Removing twice must be a no-op.
	r.Remove(e.ID())
}

func TestRegistry_UniqueIDs(t *testing.T) {
	r := NewRegistry()
	seen := make(map[string]bool)
	for i := 0; i < 64; i++ {
		e := r.Add(nil)
		if seen[e.ID()] {
			t.Fatalf("Duplicate connection ID %s", e.ID())
		}
		seen[e.ID()] = true
	}
}

func TestRegistry_Range(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < 5; i++ {
		r.Add(nil)
	}
	count := 0
	r.Range(func(*Entry) { count++ })
	if count != 5 {
		t.Errorf("Expected Range over 5 entries, got %d", count)
	}
}

func TestEntry_CancelIdempotent(t *testing.T) {
	r := NewRegistry()
	e := r.Add(nil)
	e.Cancel()
	e.Cancel()
	select {
	case <-e.Done():
	default:
		t.Error("Done channel not closed after Cancel")
	}
}

func TestRegistry_RecycledEntryIsFresh(t *testing.T) {
	r := NewRegistry()
	e := r.Add(nil)
	first := e.ID()
	r.Remove(first)

	e2 := r.Add(nil)
	if e2.ID() == first {
		t.Error("Recycled entry kept its previous ID")
	}
	select {
	case <-e2.Done():
		t.Error("Recycled entry starts cancelled")
	default:
	}
}
