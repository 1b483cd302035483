package store

import (
	"testing"

	"github.com/medcoreph/clinic-core/internal/clinic"
)

func TestCollectionUpsertThenGet(t *testing.T) {
	c := NewCollection[clinic.Patient]()

	c.Upsert(clinic.Patient{ID: "PID-1", Name: "Juan Dela Cruz", Age: 40})
	c.Upsert(clinic.Patient{ID: "PID-2", Name: "Maria Clara", Age: 28})
	c.Upsert(clinic.Patient{ID: "PID-1", Name: "Juan Dela Cruz", Age: 41})

	items := c.Get()
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	// Replacement keeps the original slot.
	if items[0].ID != "PID-1" || items[0].Age != 41 {
		t.Errorf("slot 0 = %+v, want updated PID-1", items[0])
	}

	count := 0
	for _, p := range items {
		if p.ID == "PID-1" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("PID-1 appears %d times, want exactly 1", count)
	}
}

func TestCollectionGetReturnsCopy(t *testing.T) {
	c := NewCollection[clinic.Patient]()
	c.Upsert(clinic.Patient{ID: "PID-1", Name: "Juan Dela Cruz"})

	items := c.Get()
	items[0].Name = "mutated"

	fresh, ok := c.Find("PID-1")
	if !ok || fresh.Name != "Juan Dela Cruz" {
		t.Errorf("internal state mutated through Get copy: %+v", fresh)
	}
}

func TestCollectionRemoveAndInsert(t *testing.T) {
	c := NewCollection[clinic.Medicine]()
	c.Upsert(clinic.Medicine{ID: "MED-1", Name: "Paracetamol"})
	c.Upsert(clinic.Medicine{ID: "MED-2", Name: "Amoxicillin"})
	c.Upsert(clinic.Medicine{ID: "MED-3", Name: "Losartan"})

	removed, idx, ok := c.Remove("MED-2")
	if !ok || idx != 1 || removed.Name != "Amoxicillin" {
		t.Fatalf("Remove = (%+v, %d, %v)", removed, idx, ok)
	}

	// Removing an absent id is a no-op.
	if _, _, ok := c.Remove("MED-9"); ok {
		t.Error("Remove of unknown id reported success")
	}

	// Reinserting at the saved index restores the original order.
	c.Insert(removed, idx)
	items := c.Get()
	want := []string{"MED-1", "MED-2", "MED-3"}
	for i, id := range want {
		if items[i].ID != id {
			t.Fatalf("order after rollback = %v, want %v at %d", items[i].ID, id, i)
		}
	}
}

func TestCollectionReplaceKeepsSlot(t *testing.T) {
	c := NewCollection[clinic.Patient]()
	c.Upsert(clinic.Patient{ID: "PID-1", Name: "Juan Dela Cruz"})
	c.Upsert(clinic.Patient{ID: "PID-tmp-1", Name: "Maria Clara"})
	c.Upsert(clinic.Patient{ID: "PID-3", Name: "Jose Rizal"})

	c.Replace("PID-tmp-1", clinic.Patient{ID: "PID-7", Name: "Maria Clara"})

	items := c.Get()
	if items[1].ID != "PID-7" {
		t.Errorf("slot 1 = %q, want canonical PID-7", items[1].ID)
	}
	if _, ok := c.Find("PID-tmp-1"); ok {
		t.Error("provisional id still present after Replace")
	}
}

func TestSetDoctorNilCascadeClears(t *testing.T) {
	s := New()
	s.SetDoctor(&clinic.DoctorProfile{ID: "DOC-1", FullName: "Dr. Rizal", LicenseNumber: "0123456"})
	s.Patients.Upsert(clinic.Patient{ID: "PID-1", Name: "Juan Dela Cruz"})
	s.Appointments.Upsert(clinic.Appointment{ID: "APT-1", PatientID: "PID-1"})
	s.Medicines.Upsert(clinic.Medicine{ID: "MED-1", Name: "Paracetamol"})
	s.Consultations.Upsert(clinic.Consultation{ID: "CON-1", PatientID: "PID-1"})
	s.Invoices.Upsert(clinic.Invoice{ID: "INV-1", PatientName: "Juan Dela Cruz"})

	s.SetDoctor(nil)

	if s.Doctor() != nil {
		t.Error("doctor still set after logout")
	}
	if s.Patients.Len() != 0 || s.Appointments.Len() != 0 || s.Medicines.Len() != 0 ||
		s.Consultations.Len() != 0 || s.Invoices.Len() != 0 {
		t.Error("collections survived logout")
	}
}

func TestDoctorReturnsCopy(t *testing.T) {
	s := New()
	s.SetDoctor(&clinic.DoctorProfile{ID: "DOC-1", FullName: "Dr. Rizal", LicenseNumber: "0123456"})

	d := s.Doctor()
	d.FullName = "mutated"

	if s.Doctor().FullName != "Dr. Rizal" {
		t.Error("profile slot mutated through returned copy")
	}
}
