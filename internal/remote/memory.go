package remote

import (
	"context"
	"sync"

	"github.com/medcoreph/clinic-core/internal/clinic"
	"github.com/medcoreph/clinic-core/internal/store"
)

// faultInjector hands out at most one scripted error, shared across every
// dataset of a MemoryClient.
type faultInjector struct {
	mu  sync.Mutex
	err error
}

func (f *faultInjector) arm(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}

func (f *faultInjector) take() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	err := f.err
	f.err = nil
	return err
}

// MemoryClient is an in-memory Client used by tests and the demo binary.
// Per-dataset canonicalization hooks simulate server-assigned ids, and
// FailNext scripts the next primitive call to fail.
type MemoryClient struct {
	faults *faultInjector

	PatientsData      *MemoryDataset[clinic.Patient]
	AppointmentsData  *MemoryDataset[clinic.Appointment]
	MedicinesData     *MemoryDataset[clinic.Medicine]
	ConsultationsData *MemoryDataset[clinic.Consultation]
	InvoicesData      *MemoryDataset[clinic.Invoice]
	ProfilesData      *MemoryDataset[clinic.DoctorProfile]
}

// NewMemoryClient creates an empty in-memory client.
func NewMemoryClient() *MemoryClient {
	faults := &faultInjector{}
	return &MemoryClient{
		faults:            faults,
		PatientsData:      newMemoryDataset[clinic.Patient](faults),
		AppointmentsData:  newMemoryDataset[clinic.Appointment](faults),
		MedicinesData:     newMemoryDataset[clinic.Medicine](faults),
		ConsultationsData: newMemoryDataset[clinic.Consultation](faults),
		InvoicesData:      newMemoryDataset[clinic.Invoice](faults),
		ProfilesData:      newMemoryDataset[clinic.DoctorProfile](faults),
	}
}

// FailNext makes the next primitive call on any dataset return err.
func (c *MemoryClient) FailNext(err error) {
	c.faults.arm(err)
}

// Patients returns the patients dataset.
func (c *MemoryClient) Patients() Dataset[clinic.Patient] { return c.PatientsData }

// Appointments returns the appointments dataset.
func (c *MemoryClient) Appointments() Dataset[clinic.Appointment] { return c.AppointmentsData }

// Medicines returns the medicines dataset.
func (c *MemoryClient) Medicines() Dataset[clinic.Medicine] { return c.MedicinesData }

// Consultations returns the consultations dataset.
func (c *MemoryClient) Consultations() Dataset[clinic.Consultation] { return c.ConsultationsData }

// Invoices returns the invoices dataset.
func (c *MemoryClient) Invoices() Dataset[clinic.Invoice] { return c.InvoicesData }

// Profiles returns the doctor profiles dataset.
func (c *MemoryClient) Profiles() Dataset[clinic.DoctorProfile] { return c.ProfilesData }

// MemoryDataset is an ordered in-memory Dataset implementation.
type MemoryDataset[T store.Record] struct {
	mu      sync.Mutex
	faults  *faultInjector
	records map[string][]T // keyed by doctor id, insertion order

	// Canonicalize, when set, transforms an inserted record into the
	// canonical one the server would return (e.g. assigning a real id).
	Canonicalize func(T) T
}

func newMemoryDataset[T store.Record](faults *faultInjector) *MemoryDataset[T] {
	return &MemoryDataset[T]{
		faults:  faults,
		records: make(map[string][]T),
	}
}

// Insert stores rec for the doctor and returns the canonical record.
func (d *MemoryDataset[T]) Insert(ctx context.Context, doctorID string, rec T) (T, error) {
	var zero T
	if err := d.faults.take(); err != nil {
		return zero, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Canonicalize != nil {
		rec = d.Canonicalize(rec)
	}
	d.records[doctorID] = append(d.records[doctorID], rec)
	return rec, nil
}

// Fetch returns the doctor's records in insertion order.
func (d *MemoryDataset[T]) Fetch(ctx context.Context, filter Filter) ([]T, error) {
	if err := d.faults.take(); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	stored := d.records[filter.DoctorID]
	out := make([]T, len(stored))
	copy(out, stored)
	return out, nil
}

// Update replaces the record with the given id.
func (d *MemoryDataset[T]) Update(ctx context.Context, doctorID, id string, rec T) (T, error) {
	var zero T
	if err := d.faults.take(); err != nil {
		return zero, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	stored := d.records[doctorID]
	for i, item := range stored {
		if item.EntityID() == id {
			stored[i] = rec
			return rec, nil
		}
	}
	return zero, ErrNotFound
}

// Delete removes the record with the given id.
func (d *MemoryDataset[T]) Delete(ctx context.Context, doctorID, id string) error {
	if err := d.faults.take(); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	stored := d.records[doctorID]
	for i, item := range stored {
		if item.EntityID() == id {
			d.records[doctorID] = append(stored[:i], stored[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
