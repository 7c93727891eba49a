package adapters

import (
	"errors"
	"testing"

	"github.com/momentics/hioload-echo/api"
)

func TestHandlerFunc_Handle(t *testing.T) {
	var got []byte
	h := HandlerFunc(func(data any) error {
		got = data.([]byte)
		return nil
	})
	if err := h.Handle([]byte("ping")); err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if string(got) != "ping" {
		t.Errorf("Expected ping, got %q", got)
	}
}

func TestChain_Order(t *testing.T) {
	var order []string
	mk := func(name string) api.Middleware {
		return func(next api.Handler) api.Handler {
			return HandlerFunc(func(data any) error {
				order = append(order, name)
				return next.Handle(data)
			})
		}
	}
	base := HandlerFunc(func(any) error {
		order = append(order, "base")
		return nil
	})

	h := Chain(base, mk("outer"), mk("inner"))
	if err := h.Handle(nil); err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if len(order) != 3 || order[0] != "outer" || order[1] != "inner" || order[2] != "base" {
		t.Errorf("Unexpected invocation order: %v", order)
	}
}

func TestRecoveryMiddleware_PanicBecomesError(t *testing.T) {
	h := RecoveryMiddleware(HandlerFunc(func(any) error {
		panic("boom")
	}))
	if err := h.Handle(nil); err == nil {
		t.Error("Expected error after recovered panic, got nil")
	}
}

func TestRecoveryMiddleware_PanicNotCountedAsEcho(t *testing.T) {
	ctrl := NewControlAdapter()
	h := MetricsMiddleware(ctrl)(RecoveryMiddleware(HandlerFunc(func(any) error {
		panic("boom")
	})))

	if err := h.Handle([]byte("abcd")); err == nil {
		t.Fatal("Expected error after recovered panic, got nil")
	}
	stats := ctrl.Stats()
	if stats["handler.processed"] != nil {
		t.Errorf("Panicked cycle counted as processed: %v", stats["handler.processed"])
	}
	if stats["handler.echoed_bytes"] != nil {
		t.Errorf("Panicked cycle counted echoed bytes: %v", stats["handler.echoed_bytes"])
	}
}

func TestMetricsMiddleware_CountsSuccessOnly(t *testing.T) {
	ctrl := NewControlAdapter()
	fail := errors.New("write failed")

	h := MetricsMiddleware(ctrl)(HandlerFunc(func(data any) error {
		if data == nil {
			return fail
		}
		return nil
	}))

	if err := h.Handle([]byte("abcd")); err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if err := h.Handle(nil); !errors.Is(err, fail) {
		t.Fatalf("Expected handler error, got %v", err)
	}

	stats := ctrl.Stats()
	if stats["handler.processed"] != int64(1) {
		t.Errorf("Expected 1 processed chunk, got %v", stats["handler.processed"])
	}
	if stats["handler.echoed_bytes"] != int64(4) {
		t.Errorf("Expected 4 echoed bytes, got %v", stats["handler.echoed_bytes"])
	}
}
