package engine

import (
	"context"
	"time"

	"github.com/medcoreph/clinic-core/internal/clinic"
	"github.com/medcoreph/clinic-core/internal/notify"
)

const dateLayout = "2006-01-02"

// AddPatient registers a patient. Senior-citizen status is derived from age
// and the last-visit date defaults to today.
func (e *Engine) AddPatient(ctx context.Context, p clinic.Patient) (clinic.Patient, error) {
	if p.ID == "" {
		p.ID = provisionalID("PID")
	}
	if p.Age >= 60 {
		p.SeniorCitizen = true
	}
	if p.LastVisit == "" {
		p.LastVisit = time.Now().Format(dateLayout)
	}
	return createRecord(ctx, e, e.st.Patients, e.remote.Patients(), p, opText{
		collection: "patients",
		success:    "Patient " + p.Name + " registered.",
		failure:    "Could not register patient",
	})
}

// UpdatePatient replaces an existing patient record, e.g. after a visit
// appends to the history list.
func (e *Engine) UpdatePatient(ctx context.Context, p clinic.Patient) (clinic.Patient, error) {
	return updateRecord(ctx, e, e.st.Patients, e.remote.Patients(), p, opText{
		collection: "patients",
		success:    "Patient " + p.Name + " updated.",
		failure:    "Could not update patient",
	})
}

// AddAppointment schedules a visit. A missing status defaults to Pending.
func (e *Engine) AddAppointment(ctx context.Context, a clinic.Appointment) (clinic.Appointment, error) {
	if a.ID == "" {
		a.ID = provisionalID("APT")
	}
	if a.Status == "" {
		a.Status = clinic.StatusPending
	}
	return createRecord(ctx, e, e.st.Appointments, e.remote.Appointments(), a, opText{
		collection: "appointments",
		success:    "Appointment scheduled for " + a.PatientName + ".",
		failure:    "Could not schedule appointment",
	})
}

// UpdateAppointment replaces an appointment, typically to advance its
// status. Status transitions are not guarded here; callers own the
// workflow.
func (e *Engine) UpdateAppointment(ctx context.Context, a clinic.Appointment) (clinic.Appointment, error) {
	return updateRecord(ctx, e, e.st.Appointments, e.remote.Appointments(), a, opText{
		collection: "appointments",
		success:    "Appointment updated.",
		failure:    "Could not update appointment",
	})
}

// DeleteAppointment removes an appointment outright, e.g. one created by
// mistake. Cancelling a kept appointment is an UpdateAppointment to
// Cancelled instead.
func (e *Engine) DeleteAppointment(ctx context.Context, id string) error {
	return deleteRecord(ctx, e, e.st.Appointments, e.remote.Appointments(), id, opText{
		collection: "appointments",
		success:    "Appointment removed.",
		failure:    "Could not remove appointment",
	})
}

// AddMedicine adds a pharmacy inventory item.
func (e *Engine) AddMedicine(ctx context.Context, m clinic.Medicine) (clinic.Medicine, error) {
	if m.ID == "" {
		m.ID = provisionalID("MED")
	}
	return createRecord(ctx, e, e.st.Medicines, e.remote.Medicines(), m, opText{
		collection: "medicines",
		success:    m.Name + " added to inventory.",
		failure:    "Could not add medicine",
	})
}

// UpdateMedicine replaces an inventory item, e.g. after a stock change.
func (e *Engine) UpdateMedicine(ctx context.Context, m clinic.Medicine) (clinic.Medicine, error) {
	return updateRecord(ctx, e, e.st.Medicines, e.remote.Medicines(), m, opText{
		collection: "medicines",
		success:    m.Name + " updated.",
		failure:    "Could not update medicine",
	})
}

// DeleteMedicine removes an inventory item.
func (e *Engine) DeleteMedicine(ctx context.Context, id string) error {
	return deleteRecord(ctx, e, e.st.Medicines, e.remote.Medicines(), id, opText{
		collection: "medicines",
		success:    "Medicine removed from inventory.",
		failure:    "Could not remove medicine",
	})
}

// AddConsultation persists a clinical record. Consultations are immutable;
// there is no update operation.
func (e *Engine) AddConsultation(ctx context.Context, c clinic.Consultation) (clinic.Consultation, error) {
	if c.ID == "" {
		c.ID = provisionalID("CON")
	}
	if c.Date == "" {
		c.Date = time.Now().Format(dateLayout)
	}
	return createRecord(ctx, e, e.st.Consultations, e.remote.Consultations(), c, opText{
		collection: "consultations",
		success:    "Clinical record saved for " + c.PatientName + ".",
		failure:    "Could not save clinical record",
	})
}

// AddInvoice creates a billing record. A missing status defaults to
// Pending and the date defaults to today.
func (e *Engine) AddInvoice(ctx context.Context, inv clinic.Invoice) (clinic.Invoice, error) {
	if inv.ID == "" {
		inv.ID = provisionalID("INV")
	}
	if inv.Status == "" {
		inv.Status = clinic.InvoicePending
	}
	if inv.Date == "" {
		inv.Date = time.Now().Format(dateLayout)
	}
	return createRecord(ctx, e, e.st.Invoices, e.remote.Invoices(), inv, opText{
		collection: "invoices",
		success:    "Invoice created for " + inv.PatientName + ".",
		failure:    "Could not create invoice",
	})
}

// UpdateInvoice replaces a billing record, e.g. after a payment settles.
func (e *Engine) UpdateInvoice(ctx context.Context, inv clinic.Invoice) (clinic.Invoice, error) {
	return updateRecord(ctx, e, e.st.Invoices, e.remote.Invoices(), inv, opText{
		collection: "invoices",
		success:    "Invoice " + inv.ID + " updated.",
		failure:    "Could not update invoice",
	})
}

// SaveProfile replaces the doctor profile wholesale on a settings save.
// The profile slot is updated optimistically and restored on failure.
func (e *Engine) SaveProfile(ctx context.Context, profile clinic.DoctorProfile) (clinic.DoctorProfile, error) {
	var zero clinic.DoctorProfile

	if err := profile.Validate(); err != nil {
		e.feed.Push("Could not save settings: "+err.Error(), notify.SeverityError)
		e.metrics.ObserveMutation("profiles", "validation_error")
		return zero, err
	}
	prev := e.st.Doctor()
	if prev == nil {
		e.feed.Push("Could not save settings: no active session.", notify.SeverityError)
		return zero, ErrNoSession
	}
	if profile.ID == "" {
		profile.ID = prev.ID
	}

	e.st.SetDoctor(&profile)

	if e.monitor.Offline() {
		return zero, e.rollbackProfile(prev, ErrOffline)
	}

	canonical, err := e.remote.Profiles().Update(ctx, prev.ID, profile.ID, profile)
	if err != nil {
		return zero, e.rollbackProfile(prev, err)
	}

	e.st.SetDoctor(&canonical)
	e.feed.Push("Clinic settings saved.", notify.SeveritySuccess)
	e.metrics.ObserveMutation("profiles", "success")
	return canonical, nil
}

func (e *Engine) rollbackProfile(prev *clinic.DoctorProfile, cause error) error {
	e.st.SetDoctor(prev)
	e.feed.Push("Could not save settings: "+cause.Error(), notify.SeverityError)
	e.metrics.ObserveMutation("profiles", "remote_error")
	e.metrics.ObserveRollback("profiles")
	e.logger.Error("profile update rolled back", "error", cause)
	return &RemoteError{Op: "update profile", Err: cause}
}
