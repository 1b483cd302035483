// Package connectivity tracks online/offline transitions of the runtime.
package connectivity

import "sync"

// Monitor exposes a single advisory boolean: whether the runtime is
// currently offline. It is purely event-driven; the host environment calls
// SetOffline on transition events, there is no polling. A stale "online"
// reading still allows a remote call to fail through the normal error path.
type Monitor struct {
	mu      sync.RWMutex
	offline bool
	subs    []func(offline bool)
}

// NewMonitor creates a monitor that starts in the online state.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// Offline reports whether the runtime is currently offline.
func (m *Monitor) Offline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.offline
}

// SetOffline records a connectivity transition. Subscribers are invoked
// only when the state actually changes.
func (m *Monitor) SetOffline(offline bool) {
	m.mu.Lock()
	if m.offline == offline {
		m.mu.Unlock()
		return
	}
	m.offline = offline
	subs := make([]func(bool), len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	for _, fn := range subs {
		fn(offline)
	}
}

// Subscribe registers fn to be called on every transition.
func (m *Monitor) Subscribe(fn func(offline bool)) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}
