// Package store holds the authoritative client-side copy of every entity
// collection plus the active doctor profile. It performs no validation and
// no remote calls; the sync engine owns all writes, screens read derived
// views only.
package store

import (
	"sync"

	"github.com/medcoreph/clinic-core/internal/clinic"
)

// Store is the single writable copy of remote data on the client.
type Store struct {
	mu     sync.RWMutex
	doctor *clinic.DoctorProfile

	Patients      *Collection[clinic.Patient]
	Appointments  *Collection[clinic.Appointment]
	Medicines     *Collection[clinic.Medicine]
	Consultations *Collection[clinic.Consultation]
	Invoices      *Collection[clinic.Invoice]
}

// New creates an empty store with no active session.
func New() *Store {
	return &Store{
		Patients:      NewCollection[clinic.Patient](),
		Appointments:  NewCollection[clinic.Appointment](),
		Medicines:     NewCollection[clinic.Medicine](),
		Consultations: NewCollection[clinic.Consultation](),
		Invoices:      NewCollection[clinic.Invoice](),
	}
}

// Doctor returns a copy of the active profile, or nil when no session is
// active. Profile presence is the sole session-validity signal.
func (s *Store) Doctor() *clinic.DoctorProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.doctor == nil {
		return nil
	}
	copied := *s.doctor
	return &copied
}

// SetDoctor replaces the single profile slot. Passing nil signifies logout
// and cascade-clears every collection so no per-doctor data survives in the
// cache.
func (s *Store) SetDoctor(profile *clinic.DoctorProfile) {
	s.mu.Lock()
	if profile == nil {
		s.doctor = nil
	} else {
		copied := *profile
		s.doctor = &copied
	}
	s.mu.Unlock()

	if profile == nil {
		s.Patients.Clear()
		s.Appointments.Clear()
		s.Medicines.Clear()
		s.Consultations.Clear()
		s.Invoices.Clear()
	}
}
