package notify

import (
	"fmt"
	"testing"
	"time"
)

func TestPushAppearsInBothProjections(t *testing.T) {
	f := NewFeed(10, time.Minute)
	defer f.Close()

	n := f.Push("Patient registered successfully.", SeveritySuccess)
	if n.ID == "" {
		t.Fatal("notification id is empty")
	}

	history := f.History()
	if len(history) != 1 || history[0].Message != "Patient registered successfully." {
		t.Fatalf("history = %v", history)
	}
	if history[0].Read {
		t.Error("new notification should start unread")
	}

	toasts := f.Toasts()
	if len(toasts) != 1 || toasts[0].ID != n.ID {
		t.Fatalf("toasts = %v", toasts)
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	f := NewFeed(10, time.Minute)
	defer f.Close()

	f.Push("first", SeverityInfo)
	f.Push("second", SeverityInfo)
	f.Push("third", SeverityInfo)

	history := f.History()
	if history[0].Message != "third" || history[2].Message != "first" {
		t.Errorf("history order = [%s %s %s], want newest first",
			history[0].Message, history[1].Message, history[2].Message)
	}
}

func TestHistoryCapEvictsOldest(t *testing.T) {
	cap := 5
	f := NewFeed(cap, time.Minute)
	defer f.Close()

	for i := 0; i <= cap; i++ {
		f.Push(fmt.Sprintf("msg-%d", i), SeverityInfo)
	}

	history := f.History()
	if len(history) != cap {
		t.Fatalf("history len = %d, want %d", len(history), cap)
	}
	// msg-0 is the oldest and must be the one evicted.
	for _, n := range history {
		if n.Message == "msg-0" {
			t.Error("oldest entry survived eviction")
		}
	}
	if history[0].Message != fmt.Sprintf("msg-%d", cap) {
		t.Errorf("newest = %s, want msg-%d", history[0].Message, cap)
	}
}

func TestToastAutoExpiry(t *testing.T) {
	f := NewFeed(10, 20*time.Millisecond)
	defer f.Close()

	f.Push("transient", SeveritySuccess)
	if len(f.Toasts()) != 1 {
		t.Fatal("toast not visible after push")
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(f.Toasts()) == 0 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if len(f.Toasts()) != 0 {
		t.Error("toast did not expire")
	}

	// Expiry removes the toast only; history keeps the record.
	if len(f.History()) != 1 {
		t.Error("history entry removed by toast expiry")
	}
}

func TestMarkAllReadAndUnreadCount(t *testing.T) {
	f := NewFeed(10, time.Minute)
	defer f.Close()

	f.Push("one", SeverityInfo)
	f.Push("two", SeverityError)
	if got := f.UnreadCount(); got != 2 {
		t.Fatalf("UnreadCount = %d, want 2", got)
	}

	f.MarkAllRead()
	if got := f.UnreadCount(); got != 0 {
		t.Fatalf("UnreadCount after MarkAllRead = %d, want 0", got)
	}

	// Idempotent.
	f.MarkAllRead()
	if got := f.UnreadCount(); got != 0 {
		t.Fatalf("UnreadCount after second MarkAllRead = %d, want 0", got)
	}

	f.Push("three", SeverityInfo)
	if got := f.UnreadCount(); got != 1 {
		t.Fatalf("UnreadCount after new push = %d, want 1", got)
	}
}

func TestClearLeavesToastsInFlight(t *testing.T) {
	f := NewFeed(10, time.Minute)
	defer f.Close()

	f.Push("visible", SeverityInfo)
	f.Clear()

	if len(f.History()) != 0 {
		t.Error("history not empty after Clear")
	}
	if len(f.Toasts()) != 1 {
		t.Error("Clear removed an in-flight toast")
	}
}

func TestCloseCancelsTimersAndStopsToasts(t *testing.T) {
	f := NewFeed(10, time.Hour)

	f.Push("one", SeverityInfo)
	f.Close()

	if len(f.Toasts()) != 0 {
		t.Error("toasts remain after Close")
	}

	// Pushing after Close still records history but spawns no toast.
	f.Push("two", SeverityInfo)
	if len(f.Toasts()) != 0 {
		t.Error("toast spawned after Close")
	}
	if len(f.History()) != 2 {
		t.Errorf("history len = %d, want 2", len(f.History()))
	}
}
