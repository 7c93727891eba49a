// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Debug probe registry: named callbacks sampled on demand for
// operational introspection (active connections, pool usage, etc).

package control

import "sync"

// DebugProbes stores named state-dump callbacks.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

// NewDebugProbes creates an empty probe registry.
func NewDebugProbes() *DebugProbes {
	return &DebugProbes{probes: make(map[string]func() any)}
}

// RegisterProbe registers or replaces a probe under the given name.
func (dp *DebugProbes) RegisterProbe(name string, fn func() any) {
	dp.mu.Lock()
	dp.probes[name] = fn
	dp.mu.Unlock()
}

// DumpState samples every registered probe.
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make(map[string]any, len(dp.probes))
	for name, fn := range dp.probes {
		out[name] = fn()
	}
	return out
}
