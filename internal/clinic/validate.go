package clinic

import "strings"

// Validate checks the minimal shape of a candidate profile.
func (p DoctorProfile) Validate() error {
	if strings.TrimSpace(p.FullName) == "" {
		return invalid("full_name", "is required")
	}
	if strings.TrimSpace(p.LicenseNumber) == "" {
		return invalid("license_number", "is required")
	}
	return nil
}

// Validate checks the minimal shape of a candidate patient.
func (p Patient) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return invalid("name", "is required")
	}
	if p.Age < 0 {
		return invalid("age", "cannot be negative")
	}
	return nil
}

// Validate checks the minimal shape of a candidate appointment.
func (a Appointment) Validate() error {
	if strings.TrimSpace(a.PatientID) == "" {
		return invalid("patient_id", "is required")
	}
	if strings.TrimSpace(a.Date) == "" {
		return invalid("date", "is required")
	}
	if !a.Type.Valid() {
		return invalid("type", "unknown appointment type")
	}
	if !a.Status.Valid() {
		return invalid("status", "unknown appointment status")
	}
	return nil
}

// Validate checks the minimal shape of a candidate medicine.
func (m Medicine) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return invalid("name", "is required")
	}
	if m.Stock < 0 {
		return invalid("stock", "cannot be negative")
	}
	if m.Price < 0 {
		return invalid("price", "cannot be negative")
	}
	return nil
}

// Validate checks the minimal shape of a candidate consultation. An empty
// clinical record (no assessment and no plan) is rejected.
func (c Consultation) Validate() error {
	if strings.TrimSpace(c.PatientID) == "" {
		return invalid("patient_id", "is required")
	}
	if strings.TrimSpace(c.Assessment) == "" && strings.TrimSpace(c.Plan) == "" {
		return invalid("record", "assessment or plan is required")
	}
	return nil
}

// Validate checks the minimal shape of a candidate invoice.
func (i Invoice) Validate() error {
	if strings.TrimSpace(i.PatientName) == "" {
		return invalid("patient", "is required")
	}
	if i.Net < 0 {
		return invalid("net", "cannot be negative")
	}
	if !i.Status.Valid() {
		return invalid("status", "unknown invoice status")
	}
	return nil
}
