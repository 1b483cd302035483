package engine

import (
	"context"

	"github.com/medcoreph/clinic-core/internal/notify"
	"github.com/medcoreph/clinic-core/internal/remote"
	"github.com/medcoreph/clinic-core/internal/store"
)

// validated is the record shape the generic mutation helpers require.
type validated interface {
	store.Record
	Validate() error
}

// opText carries the per-operation notification wording.
type opText struct {
	collection string // metrics label
	success    string
	failure    string // prefix, the failure reason is appended verbatim
}

// createRecord is the uniform optimistic-insert path: validate, write the
// provisional record into the store, forward to the remote collaborator,
// then replace the provisional slot with the canonical record or roll the
// write back. Exactly one notification is pushed on every exit.
func createRecord[T validated](ctx context.Context, e *Engine, col *store.Collection[T], ds remote.Dataset[T], rec T, text opText) (T, error) {
	var zero T

	if err := rec.Validate(); err != nil {
		e.feed.Push(text.failure+": "+err.Error(), notify.SeverityError)
		e.metrics.ObserveMutation(text.collection, "validation_error")
		return zero, err
	}
	doctor := e.st.Doctor()
	if doctor == nil {
		e.feed.Push(text.failure+": no active session.", notify.SeverityError)
		return zero, ErrNoSession
	}

	provisional := rec.EntityID()

	e.mu.Lock()
	col.Upsert(rec)
	e.mu.Unlock()

	if e.monitor.Offline() {
		return zero, rollbackInsert(e, col, provisional, text, ErrOffline)
	}

	canonical, err := ds.Insert(ctx, doctor.ID, rec)
	if err != nil {
		return zero, rollbackInsert(e, col, provisional, text, err)
	}

	e.mu.Lock()
	col.Replace(provisional, canonical)
	e.mu.Unlock()

	e.feed.Push(text.success, notify.SeveritySuccess)
	e.metrics.ObserveMutation(text.collection, "success")
	return canonical, nil
}

func rollbackInsert[T validated](e *Engine, col *store.Collection[T], id string, text opText, cause error) error {
	e.mu.Lock()
	col.Remove(id)
	e.mu.Unlock()

	e.feed.Push(text.failure+": "+cause.Error(), notify.SeverityError)
	e.metrics.ObserveMutation(text.collection, "remote_error")
	e.metrics.ObserveRollback(text.collection)
	e.logger.Error("optimistic insert rolled back", "collection", text.collection, "id", id, "error", cause)
	return &RemoteError{Op: "insert into " + text.collection, Err: cause}
}

// updateRecord is the uniform optimistic-update path. The record must
// already exist in the cache; its prior value is kept for rollback.
func updateRecord[T validated](ctx context.Context, e *Engine, col *store.Collection[T], ds remote.Dataset[T], rec T, text opText) (T, error) {
	var zero T

	if err := rec.Validate(); err != nil {
		e.feed.Push(text.failure+": "+err.Error(), notify.SeverityError)
		e.metrics.ObserveMutation(text.collection, "validation_error")
		return zero, err
	}
	doctor := e.st.Doctor()
	if doctor == nil {
		e.feed.Push(text.failure+": no active session.", notify.SeverityError)
		return zero, ErrNoSession
	}

	e.mu.Lock()
	prev, ok := col.Find(rec.EntityID())
	if !ok {
		e.mu.Unlock()
		e.feed.Push(text.failure+": record not found.", notify.SeverityError)
		e.metrics.ObserveMutation(text.collection, "remote_error")
		return zero, &RemoteError{Op: "update " + text.collection, Err: remote.ErrNotFound}
	}
	col.Upsert(rec)
	e.mu.Unlock()

	if e.monitor.Offline() {
		return zero, rollbackUpdate(e, col, prev, text, ErrOffline)
	}

	canonical, err := ds.Update(ctx, doctor.ID, rec.EntityID(), rec)
	if err != nil {
		return zero, rollbackUpdate(e, col, prev, text, err)
	}

	e.mu.Lock()
	col.Replace(rec.EntityID(), canonical)
	e.mu.Unlock()

	e.feed.Push(text.success, notify.SeveritySuccess)
	e.metrics.ObserveMutation(text.collection, "success")
	return canonical, nil
}

func rollbackUpdate[T validated](e *Engine, col *store.Collection[T], prev T, text opText, cause error) error {
	e.mu.Lock()
	col.Upsert(prev)
	e.mu.Unlock()

	e.feed.Push(text.failure+": "+cause.Error(), notify.SeverityError)
	e.metrics.ObserveMutation(text.collection, "remote_error")
	e.metrics.ObserveRollback(text.collection)
	e.logger.Error("optimistic update rolled back", "collection", text.collection, "id", prev.EntityID(), "error", cause)
	return &RemoteError{Op: "update " + text.collection, Err: cause}
}

// deleteRecord is the uniform optimistic-delete path. The removed record
// and its slot index are kept so a rollback restores the exact prior order.
func deleteRecord[T validated](ctx context.Context, e *Engine, col *store.Collection[T], ds remote.Dataset[T], id string, text opText) error {
	doctor := e.st.Doctor()
	if doctor == nil {
		e.feed.Push(text.failure+": no active session.", notify.SeverityError)
		return ErrNoSession
	}

	e.mu.Lock()
	prev, idx, ok := col.Remove(id)
	e.mu.Unlock()
	if !ok {
		e.feed.Push(text.failure+": record not found.", notify.SeverityError)
		e.metrics.ObserveMutation(text.collection, "remote_error")
		return &RemoteError{Op: "delete from " + text.collection, Err: remote.ErrNotFound}
	}

	if e.monitor.Offline() {
		return rollbackDelete(e, col, prev, idx, text, ErrOffline)
	}

	if err := ds.Delete(ctx, doctor.ID, id); err != nil {
		return rollbackDelete(e, col, prev, idx, text, err)
	}

	e.feed.Push(text.success, notify.SeveritySuccess)
	e.metrics.ObserveMutation(text.collection, "success")
	return nil
}

func rollbackDelete[T validated](e *Engine, col *store.Collection[T], prev T, idx int, text opText, cause error) error {
	e.mu.Lock()
	col.Insert(prev, idx)
	e.mu.Unlock()

	e.feed.Push(text.failure+": "+cause.Error(), notify.SeverityError)
	e.metrics.ObserveMutation(text.collection, "remote_error")
	e.metrics.ObserveRollback(text.collection)
	e.logger.Error("optimistic delete rolled back", "collection", text.collection, "id", prev.EntityID(), "error", cause)
	return &RemoteError{Op: "delete from " + text.collection, Err: cause}
}
