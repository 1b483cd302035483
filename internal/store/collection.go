package store

import "sync"

// Record is any entity held by a collection.
type Record interface {
	EntityID() string
}

// Collection is an ordered, id-keyed set of records. Insertion order is
// preserved; Upsert replaces in place so reconciliation never reorders a
// slot. All methods are safe for concurrent use.
type Collection[T Record] struct {
	mu    sync.RWMutex
	items []T
}

// NewCollection creates an empty collection.
func NewCollection[T Record]() *Collection[T] {
	return &Collection[T]{}
}

// Get returns a copy of the current ordered sequence.
func (c *Collection[T]) Get() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Find returns the record with the given id, if present.
func (c *Collection[T]) Find(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Upsert inserts rec if its id is unknown and replaces the existing record
// in place otherwise. Idempotent.
func (c *Collection[T]) Upsert(rec T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if item.EntityID() == rec.EntityID() {
			c.items[i] = rec
			return
		}
	}
	c.items = append(c.items, rec)
}

// Remove deletes the record with the given id. It returns the removed
// record and its index so a rollback can restore the exact prior state.
// No-op if the id is absent.
func (c *Collection[T]) Remove(id string) (T, int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if item.EntityID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return item, i, true
		}
	}
	var zero T
	return zero, -1, false
}

// Insert places rec at index at, clamped to the valid range. Used to undo
// a Remove.
func (c *Collection[T]) Insert(rec T, at int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if at < 0 {
		at = 0
	}
	if at > len(c.items) {
		at = len(c.items)
	}
	c.items = append(c.items, rec)
	copy(c.items[at+1:], c.items[at:])
	c.items[at] = rec
}

// Replace swaps the record at oldID for rec, keeping the slot position.
// Reconciliation uses this when the remote collaborator assigns a canonical
// id to a provisional record. Falls back to Upsert if oldID is unknown.
func (c *Collection[T]) Replace(oldID string, rec T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if item.EntityID() == oldID {
			c.items[i] = rec
			return
		}
	}
	c.items = append(c.items, rec)
}

// ReplaceAll swaps the full contents for records, preserving their order.
func (c *Collection[T]) ReplaceAll(records []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]T, len(records))
	copy(c.items, records)
}

// Clear empties the collection.
func (c *Collection[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}
