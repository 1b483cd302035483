// Package notify implements the user-facing notification feed: a transient
// toast projection with auto-expiry and a persistent, size-bounded history
// with read/unread state. Both projections share the same underlying
// records; toast visibility and history read-state are orthogonal.
package notify

import (
	"fmt"
	"sync"
	"time"
)

// Severity classifies a notification for display.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

const (
	// DefaultHistoryCap bounds the persistent history; the oldest entry is
	// evicted beyond it.
	DefaultHistoryCap = 50
	// DefaultToastTTL is how long a toast stays visible.
	DefaultToastTTL = 4 * time.Second
)

// Notification is a single user-facing message.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}

// Feed owns both notification projections. All methods are safe for
// concurrent use and never block the caller.
type Feed struct {
	mu      sync.Mutex
	history []Notification // newest first
	toasts  []Notification // oldest first, matching on-screen stacking
	timers  map[string]*time.Timer
	cap     int
	ttl     time.Duration
	seq     uint64
	closed  bool
	clock   func() time.Time
}

// NewFeed creates a feed with the given history cap and toast lifetime.
// Non-positive arguments fall back to the defaults.
func NewFeed(historyCap int, toastTTL time.Duration) *Feed {
	if historyCap <= 0 {
		historyCap = DefaultHistoryCap
	}
	if toastTTL <= 0 {
		toastTTL = DefaultToastTTL
	}
	return &Feed{
		timers: make(map[string]*time.Timer),
		cap:    historyCap,
		ttl:    toastTTL,
		clock:  time.Now,
	}
}

// Push appends a notification to the history (newest first) and spawns a
// toast that expires automatically after the configured lifetime. The
// created notification is returned.
func (f *Feed) Push(message string, severity Severity) Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	now := f.clock()
	n := Notification{
		ID:        fmt.Sprintf("%d-%d", now.UnixNano(), f.seq),
		Message:   message,
		Severity:  severity,
		CreatedAt: now,
	}

	f.history = append([]Notification{n}, f.history...)
	if len(f.history) > f.cap {
		// Oldest-first eviction; display order is newest-first.
		f.history = f.history[:f.cap]
	}

	if !f.closed {
		f.toasts = append(f.toasts, n)
		f.timers[n.ID] = time.AfterFunc(f.ttl, func() { f.expire(n.ID) })
	}

	return n
}

func (f *Feed) expire(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.timers, id)
	for i, t := range f.toasts {
		if t.ID == id {
			f.toasts = append(f.toasts[:i], f.toasts[i+1:]...)
			return
		}
	}
}

// Toasts returns the currently visible toasts, oldest first.
func (f *Feed) Toasts() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Notification, len(f.toasts))
	copy(out, f.toasts)
	return out
}

// History returns the persistent feed, newest first.
func (f *Feed) History() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Notification, len(f.history))
	copy(out, f.history)
	return out
}

// UnreadCount returns the number of unread history entries. Recomputed on
// demand, never cached.
func (f *Feed) UnreadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, n := range f.history {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkAllRead flips every history entry to read. Idempotent.
func (f *Feed) MarkAllRead() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.history {
		f.history[i].Read = true
	}
}

// Clear empties the history. Toasts in flight are unaffected; they are a
// separate ephemeral projection.
func (f *Feed) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.history = nil
}

// Close cancels all outstanding toast timers and stops spawning new ones.
// The history remains readable.
func (f *Feed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	for id, timer := range f.timers {
		timer.Stop()
		delete(f.timers, id)
	}
	f.toasts = nil
}
