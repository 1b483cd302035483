package clinic

import (
	"errors"
	"testing"
)

func TestPatientValidate(t *testing.T) {
	valid := Patient{ID: "PID-1", Name: "Juan Dela Cruz", Age: 40, Gender: "Male"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid patient rejected: %v", err)
	}

	cases := []struct {
		name    string
		patient Patient
		field   string
	}{
		{"missing name", Patient{Age: 30}, "name"},
		{"blank name", Patient{Name: "   "}, "name"},
		{"negative age", Patient{Name: "Maria", Age: -1}, "age"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.patient.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Errorf("Field = %q, want %q", verr.Field, tc.field)
			}
		})
	}
}

func TestAppointmentValidate(t *testing.T) {
	valid := Appointment{
		ID:          "APT-1",
		PatientID:   "PID-1",
		PatientName: "Juan Dela Cruz",
		Date:        "2026-09-01",
		Time:        "09:30",
		Type:        AppointmentCheckup,
		Status:      StatusPending,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid appointment rejected: %v", err)
	}

	bad := valid
	bad.Status = AppointmentStatus("Ghosted")
	if err := bad.Validate(); err == nil {
		t.Error("expected unknown status to be rejected")
	}

	bad = valid
	bad.Type = AppointmentType("Seance")
	if err := bad.Validate(); err == nil {
		t.Error("expected unknown type to be rejected")
	}

	bad = valid
	bad.PatientID = ""
	if err := bad.Validate(); err == nil {
		t.Error("expected missing patient_id to be rejected")
	}
}

func TestConsultationValidateRejectsEmptyRecord(t *testing.T) {
	c := Consultation{PatientID: "PID-1", Subjective: "headache"}
	err := c.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for empty assessment+plan, got %v", err)
	}

	c.Plan = "hydration, rest"
	if err := c.Validate(); err != nil {
		t.Fatalf("consultation with plan rejected: %v", err)
	}

	c = Consultation{PatientID: "PID-1", Assessment: "tension headache"}
	if err := c.Validate(); err != nil {
		t.Fatalf("consultation with assessment rejected: %v", err)
	}
}

func TestInvoiceValidate(t *testing.T) {
	valid := Invoice{ID: "INV-1", PatientName: "Juan Dela Cruz", Total: 1500, Net: 1200, Status: InvoicePending}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid invoice rejected: %v", err)
	}

	bad := valid
	bad.Status = InvoiceStatus("Comped")
	if err := bad.Validate(); err == nil {
		t.Error("expected unknown invoice status to be rejected")
	}

	bad = valid
	bad.Net = -5
	if err := bad.Validate(); err == nil {
		t.Error("expected negative net to be rejected")
	}
}

func TestDoctorProfileValidate(t *testing.T) {
	valid := DoctorProfile{FullName: "Dr. Rizal", LicenseNumber: "0123456"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid profile rejected: %v", err)
	}
	if err := (DoctorProfile{LicenseNumber: "0123456"}).Validate(); err == nil {
		t.Error("expected missing full_name to be rejected")
	}
	if err := (DoctorProfile{FullName: "Dr. Rizal"}).Validate(); err == nil {
		t.Error("expected missing license_number to be rejected")
	}
}

func TestMedicineValidate(t *testing.T) {
	valid := Medicine{ID: "MED-1", Name: "Paracetamol 500mg", Stock: 120, Price: 4.50, Generic: true}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid medicine rejected: %v", err)
	}
	if err := (Medicine{Name: "Paracetamol", Stock: -1}).Validate(); err == nil {
		t.Error("expected negative stock to be rejected")
	}
}
