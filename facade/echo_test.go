package facade_test

import (
	"errors"
	"net"
	"testing"
	"time"

	"github.com/momentics/hioload-echo/api"
	"github.com/momentics/hioload-echo/facade"
	"github.com/momentics/hioload-echo/server"
)

func TestStartStopLifecycle(t *testing.T) {
	cfg := server.DefaultConfig()
	cfg.ListenAddr = "127.0.0.1:0"

	e, err := facade.Start(cfg)
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	conn, err := net.Dial("tcp", e.Addr().String())
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	conn.SetDeadline(time.Now().Add(2 * time.Second))
	if _, err := conn.Write([]byte("hello")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	buf := make([]byte, 16)
	n, err := conn.Read(buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(buf[:n]) != "hello" {
		t.Errorf("Expected hello echoed back, got %q", buf[:n])
	}
	conn.Close()

	if err := e.Stop(); err != nil {
		t.Fatalf("Stop returned error: %v", err)
	}
	if e.ActiveConnections() != 0 {
		t.Errorf("Expected no live connections after Stop, got %d", e.ActiveConnections())
	}
}

func TestStopTwice(t *testing.T) {
	cfg := server.DefaultConfig()
	cfg.ListenAddr = "127.0.0.1:0"

	e, err := facade.Start(cfg)
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if err := e.Stop(); err != nil {
		t.Errorf("First Stop returned error: %v", err)
	}
	if err := e.Stop(); err != nil {
		t.Errorf("Second Stop returned error: %v", err)
	}
}

func TestStartBindFailure(t *testing.T) {
	// Occupy a port without SO_REUSEPORT so a second bind must fail.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen failed: %v", err)
	}
	defer ln.Close()

	cfg := server.DefaultConfig()
	cfg.ListenAddr = ln.Addr().String()
	cfg.ReusePort = false

	if _, err := facade.Start(cfg); err == nil {
		t.Fatal("Expected bind failure on occupied port")
	} else {
		var be *api.BindError
		if !errors.As(err, &be) {
			t.Errorf("Expected *api.BindError, got %T", err)
		}
	}
}

func TestShutdownDelegatesToStop(t *testing.T) {
	cfg := server.DefaultConfig()
	cfg.ListenAddr = "127.0.0.1:0"

	e, err := facade.Start(cfg)
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	var gs api.GracefulShutdown = e
	if err := gs.Shutdown(); err != nil {
		t.Errorf("Shutdown returned error: %v", err)
	}
}
