// Package remote defines the interface boundary to the remote relational
// store and its implementations. The sync engine is the only consumer; it
// forwards every mutation here after the optimistic write and reconciles
// the returned canonical record or the error.
package remote

import (
	"context"
	"errors"

	"github.com/medcoreph/clinic-core/internal/clinic"
	"github.com/medcoreph/clinic-core/internal/store"
)

// ErrNotFound is returned when an id has no row in the remote store.
var ErrNotFound = errors.New("remote: record not found")

// Filter scopes a fetch. All collections are partitioned per doctor.
type Filter struct {
	DoctorID string
}

// Dataset exposes the four remote primitives for one entity collection.
// Insert and Update return the canonical record as persisted by the server,
// which may differ from the candidate (e.g. a server-assigned id).
type Dataset[T store.Record] interface {
	Insert(ctx context.Context, doctorID string, rec T) (T, error)
	Fetch(ctx context.Context, filter Filter) ([]T, error)
	Update(ctx context.Context, doctorID, id string, rec T) (T, error)
	Delete(ctx context.Context, doctorID, id string) error
}

// Client bundles one dataset per collection.
type Client interface {
	Patients() Dataset[clinic.Patient]
	Appointments() Dataset[clinic.Appointment]
	Medicines() Dataset[clinic.Medicine]
	Consultations() Dataset[clinic.Consultation]
	Invoices() Dataset[clinic.Invoice]
	Profiles() Dataset[clinic.DoctorProfile]
}
