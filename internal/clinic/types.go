// Package clinic defines the domain entities shared by every screen of the
// clinic-management interface and the validation applied before any of them
// reaches the entity store.
package clinic

// DoctorProfile is the single authenticated physician for the session. Its
// presence is the session-validity signal: nil means the landing/login
// screen must be shown.
type DoctorProfile struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	FullName      string `json:"full_name"`
	LicenseNumber string `json:"license_number"`
	PTRNumber     string `json:"ptr_number,omitempty"`
	S2Number      string `json:"s2_number,omitempty"`
	Specialty     string `json:"specialty,omitempty"`
	ClinicName    string `json:"clinic_name,omitempty"`
	ClinicAddress string `json:"clinic_address,omitempty"`
}

// EntityID returns the profile identifier.
func (p DoctorProfile) EntityID() string { return p.ID }

// Address is a structured Philippine address.
type Address struct {
	Barangay string `json:"barangay"`
	City     string `json:"city"`
	Province string `json:"province"`
}

// Patient is a registered patient record. Patients are appended-to by
// visit updates and never hard-deleted by normal flow.
type Patient struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Age           int      `json:"age"`
	Gender        string   `json:"gender"`
	BloodGroup    string   `json:"blood_group"`
	LastVisit     string   `json:"last_visit"`
	History       []string `json:"history"`
	Allergies     []string `json:"allergies"`
	PhilHealthID  string   `json:"philhealth_id,omitempty"`
	SeniorCitizen bool     `json:"is_senior_citizen"`
	PWD           bool     `json:"is_pwd"`
	HMOProvider   string   `json:"hmo_provider,omitempty"`
	Address       Address  `json:"address"`
}

// EntityID returns the patient identifier.
func (p Patient) EntityID() string { return p.ID }

// AppointmentType enumerates the kinds of scheduled visits.
type AppointmentType string

const (
	AppointmentCheckup      AppointmentType = "Checkup"
	AppointmentFollowUp     AppointmentType = "Follow-up"
	AppointmentProcedure    AppointmentType = "Procedure"
	AppointmentConsultation AppointmentType = "Consultation"
	AppointmentVaccination  AppointmentType = "Vaccination"
)

// Valid reports whether t is a known appointment type.
func (t AppointmentType) Valid() bool {
	switch t {
	case AppointmentCheckup, AppointmentFollowUp, AppointmentProcedure,
		AppointmentConsultation, AppointmentVaccination:
		return true
	}
	return false
}

// AppointmentStatus enumerates scheduling states. Transitions are monotonic
// in practice but not guarded here; callers own the workflow.
type AppointmentStatus string

const (
	StatusConfirmed  AppointmentStatus = "Confirmed"
	StatusPending    AppointmentStatus = "Pending"
	StatusInProgress AppointmentStatus = "In Progress"
	StatusCompleted  AppointmentStatus = "Completed"
	StatusCancelled  AppointmentStatus = "Cancelled"
)

// Valid reports whether s is a known appointment status.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusConfirmed, StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment is a scheduled visit. PatientName is denormalized for display.
type Appointment struct {
	ID          string            `json:"id"`
	PatientID   string            `json:"patient_id"`
	PatientName string            `json:"patient_name"`
	DoctorName  string            `json:"doctor_name,omitempty"`
	Date        string            `json:"date"`
	Time        string            `json:"time"`
	Type        AppointmentType   `json:"type"`
	Status      AppointmentStatus `json:"status"`
}

// EntityID returns the appointment identifier.
func (a Appointment) EntityID() string { return a.ID }

// Medicine is a pharmacy inventory item.
type Medicine struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Stock   int     `json:"stock"`
	Expiry  string  `json:"expiry"`
	Price   float64 `json:"price"`
	Generic bool    `json:"is_generic"`
}

// EntityID returns the medicine identifier.
func (m Medicine) EntityID() string { return m.ID }

// Consultation is a SOAP-structured clinical record. Consultations are
// immutable once persisted; a new visit creates a new record.
type Consultation struct {
	ID          string `json:"id"`
	PatientID   string `json:"patient_id"`
	PatientName string `json:"patient_name"`
	Subjective  string `json:"subjective"`
	Objective   string `json:"objective"`
	Assessment  string `json:"assessment"`
	Plan        string `json:"plan"`
	Transcript  string `json:"transcript,omitempty"`
	Date        string `json:"date"`
}

// EntityID returns the consultation identifier.
func (c Consultation) EntityID() string { return c.ID }

// InvoiceStatus enumerates billing states.
type InvoiceStatus string

const (
	InvoicePaid    InvoiceStatus = "Paid"
	InvoicePending InvoiceStatus = "Pending"
	InvoicePartial InvoiceStatus = "Partial"
	InvoiceUnpaid  InvoiceStatus = "Unpaid"
)

// Valid reports whether s is a known invoice status.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoicePaid, InvoicePending, InvoicePartial, InvoiceUnpaid:
		return true
	}
	return false
}

// Invoice is a billing record with PhilHealth and discount breakdowns.
type Invoice struct {
	ID          string        `json:"id"`
	PatientName string        `json:"patient"`
	Total       float64       `json:"total"`
	Discount    float64       `json:"disc"`
	PhilHealth  float64       `json:"ph"`
	Net         float64       `json:"net"`
	Status      InvoiceStatus `json:"status"`
	Method      string        `json:"method"`
	Date        string        `json:"date"`
}

// EntityID returns the invoice identifier.
func (i Invoice) EntityID() string { return i.ID }
