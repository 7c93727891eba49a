// transport/tcp/listener_other.go
//go:build !linux
// +build !linux

//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Portable fallback: the net package applies SO_REUSEADDR on Unix platforms
// itself and exposes no backlog knob, so the kernel default backlog is used.
// SO_REUSEPORT is a no-op here.

package tcp

import "net"

func listen(cfg *ListenerConfig) (net.Listener, error) {
	return net.Listen("tcp", cfg.Addr)
}
