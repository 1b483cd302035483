package connectivity

import "testing"

func TestMonitorStartsOnline(t *testing.T) {
	m := NewMonitor()
	if m.Offline() {
		t.Error("new monitor reports offline")
	}
}

func TestMonitorTransitions(t *testing.T) {
	m := NewMonitor()

	m.SetOffline(true)
	if !m.Offline() {
		t.Error("monitor not offline after SetOffline(true)")
	}

	m.SetOffline(false)
	if m.Offline() {
		t.Error("monitor still offline after SetOffline(false)")
	}
}

func TestMonitorNotifiesOncePerTransition(t *testing.T) {
	m := NewMonitor()

	var calls []bool
	m.Subscribe(func(offline bool) { calls = append(calls, offline) })

	m.SetOffline(true)
	m.SetOffline(true) // duplicate, no transition
	m.SetOffline(false)

	if len(calls) != 2 {
		t.Fatalf("subscriber called %d times, want 2", len(calls))
	}
	if calls[0] != true || calls[1] != false {
		t.Errorf("calls = %v, want [true false]", calls)
	}
}

func TestSubscribeNilIsIgnored(t *testing.T) {
	m := NewMonitor()
	m.Subscribe(nil)
	m.SetOffline(true) // must not panic
}
