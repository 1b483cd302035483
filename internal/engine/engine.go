// Package engine implements the sync engine: the single owner of every
// mutation against the entity store. Each operation applies an optimistic
// local write, forwards the record to the remote collaborator, and either
// confirms the canonical result or rolls the write back, emitting exactly
// one notification on every exit path. Reads are plain pass-throughs to the
// store; refreshing from the remote store is the explicit Reload operation,
// never implicit.
package engine

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/medcoreph/clinic-core/internal/ai"
	"github.com/medcoreph/clinic-core/internal/clinic"
	"github.com/medcoreph/clinic-core/internal/connectivity"
	"github.com/medcoreph/clinic-core/internal/notify"
	"github.com/medcoreph/clinic-core/internal/observability/metrics"
	"github.com/medcoreph/clinic-core/internal/remote"
	"github.com/medcoreph/clinic-core/internal/search"
	"github.com/medcoreph/clinic-core/internal/session"
	"github.com/medcoreph/clinic-core/internal/store"
	"github.com/medcoreph/clinic-core/pkg/logging"
)

// Drafter is the AI text collaborator surface the engine consumes.
type Drafter interface {
	AnalyzeSymptoms(ctx context.Context, symptoms string) (*ai.SymptomAnalysis, error)
	DraftNotes(ctx context.Context, transcript string) (*ai.SOAPDraft, error)
}

// Engine orchestrates every mutation. The internal mutex serializes
// optimistic writes, which establishes the order all readers observe;
// remote reconciliation only replaces content at an already-ordered slot.
type Engine struct {
	mu      sync.Mutex
	st      *store.Store
	remote  remote.Client
	monitor *connectivity.Monitor
	feed    *notify.Feed

	drafter  Drafter
	sessions session.Store
	logger   *logging.Logger
	metrics  *metrics.SyncMetrics

	searchMu   sync.RWMutex
	searchTerm string
}

// Option configures optional engine collaborators.
type Option func(*Engine)

// WithDrafter attaches the AI text collaborator. Without one, the AI
// operations degrade to ai.ErrNotConfigured.
func WithDrafter(d Drafter) Option {
	return func(e *Engine) { e.drafter = d }
}

// WithSessions attaches a durable session flag store.
func WithSessions(s session.Store) Option {
	return func(e *Engine) { e.sessions = s }
}

// WithLogger attaches a logger.
func WithLogger(l *logging.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithMetrics attaches sync outcome counters.
func WithMetrics(m *metrics.SyncMetrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// New creates an engine over the given store, remote client, connectivity
// monitor, and notification feed.
func New(st *store.Store, rc remote.Client, monitor *connectivity.Monitor, feed *notify.Feed, opts ...Option) *Engine {
	if st == nil {
		panic("engine: store required")
	}
	if rc == nil {
		panic("engine: remote client required")
	}
	if monitor == nil {
		panic("engine: connectivity monitor required")
	}
	if feed == nil {
		panic("engine: notification feed required")
	}

	e := &Engine{
		st:      st,
		remote:  rc,
		monitor: monitor,
		feed:    feed,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logging.Default()
	}
	return e
}

// provisionalID builds a client-side placeholder identifier. The remote
// collaborator may replace it with a canonical one on insert.
func provisionalID(prefix string) string {
	return fmt.Sprintf("%s-tmp-%s", prefix, uuid.NewString())
}

// Store returns the entity store for read access.
func (e *Engine) Store() *store.Store { return e.st }

// Feed returns the notification feed.
func (e *Engine) Feed() *notify.Feed { return e.feed }

// Monitor returns the connectivity monitor.
func (e *Engine) Monitor() *connectivity.Monitor { return e.monitor }

// Doctor returns the active profile, or nil when logged out.
func (e *Engine) Doctor() *clinic.DoctorProfile { return e.st.Doctor() }

// Patients returns the cached patient collection.
func (e *Engine) Patients() []clinic.Patient { return e.st.Patients.Get() }

// Appointments returns the cached appointment collection.
func (e *Engine) Appointments() []clinic.Appointment { return e.st.Appointments.Get() }

// Medicines returns the cached medicine collection.
func (e *Engine) Medicines() []clinic.Medicine { return e.st.Medicines.Get() }

// Consultations returns the cached consultation collection.
func (e *Engine) Consultations() []clinic.Consultation { return e.st.Consultations.Get() }

// Invoices returns the cached invoice collection.
func (e *Engine) Invoices() []clinic.Invoice { return e.st.Invoices.Get() }

// DashboardStats aggregates the dashboard metrics from the cache.
func (e *Engine) DashboardStats() clinic.Stats {
	return clinic.ComputeStats(e.Patients(), e.Appointments(), e.Invoices())
}

// SetSearchTerm records the free-text term shared by the search header.
func (e *Engine) SetSearchTerm(term string) {
	e.searchMu.Lock()
	e.searchTerm = term
	e.searchMu.Unlock()
}

// SearchTerm returns the current free-text term.
func (e *Engine) SearchTerm() string {
	e.searchMu.RLock()
	defer e.searchMu.RUnlock()
	return e.searchTerm
}

// FilteredPatients returns the patient collection filtered by the current
// search term.
func (e *Engine) FilteredPatients() []clinic.Patient {
	return search.Patients(e.Patients(), e.SearchTerm())
}

// Login activates a session for the given profile. It touches no remote
// collection; registration of a new profile is Register.
func (e *Engine) Login(ctx context.Context, profile clinic.DoctorProfile) error {
	if err := profile.Validate(); err != nil {
		e.feed.Push("Sign-in failed: "+err.Error(), notify.SeverityError)
		return err
	}
	if profile.ID == "" {
		profile.ID = provisionalID("DOC")
	}

	e.st.SetDoctor(&profile)
	if e.sessions != nil {
		if err := e.sessions.Activate(ctx, profile.ID); err != nil {
			e.logger.Error("failed to persist session flag", "error", err, "doctor_id", profile.ID)
		}
	}
	e.feed.Push("Welcome back, "+profile.FullName+".", notify.SeverityInfo)
	return nil
}

// Register creates the profile remotely and activates the session. The
// optimistic profile is visible immediately and rolled back if the remote
// insert fails.
func (e *Engine) Register(ctx context.Context, profile clinic.DoctorProfile) (clinic.DoctorProfile, error) {
	var zero clinic.DoctorProfile
	if err := profile.Validate(); err != nil {
		e.feed.Push("Registration failed: "+err.Error(), notify.SeverityError)
		e.metrics.ObserveMutation("profiles", "validation_error")
		return zero, err
	}
	if profile.ID == "" {
		profile.ID = provisionalID("DOC")
	}

	e.st.SetDoctor(&profile)

	if e.monitor.Offline() {
		e.st.SetDoctor(nil)
		e.feed.Push("Cannot register while offline.", notify.SeverityError)
		e.metrics.ObserveMutation("profiles", "remote_error")
		e.metrics.ObserveRollback("profiles")
		return zero, &RemoteError{Op: "register", Err: ErrOffline}
	}

	canonical, err := e.remote.Profiles().Insert(ctx, profile.ID, profile)
	if err != nil {
		e.st.SetDoctor(nil)
		e.feed.Push("Registration failed: "+err.Error(), notify.SeverityError)
		e.metrics.ObserveMutation("profiles", "remote_error")
		e.metrics.ObserveRollback("profiles")
		e.logger.Error("profile insert failed", "error", err)
		return zero, &RemoteError{Op: "register", Err: err}
	}

	e.st.SetDoctor(&canonical)
	if e.sessions != nil {
		if err := e.sessions.Activate(ctx, canonical.ID); err != nil {
			e.logger.Error("failed to persist session flag", "error", err, "doctor_id", canonical.ID)
		}
	}
	e.feed.Push("Welcome, "+canonical.FullName+". Your clinic is ready.", notify.SeveritySuccess)
	e.metrics.ObserveMutation("profiles", "success")
	return canonical, nil
}

// Logout clears the session flag and the profile slot, which cascade-clears
// every cached collection.
func (e *Engine) Logout(ctx context.Context) {
	if e.sessions != nil {
		if err := e.sessions.Clear(ctx); err != nil {
			e.logger.Error("failed to clear session flag", "error", err)
		}
	}
	e.st.SetDoctor(nil)
	e.feed.Push("Signed out.", notify.SeverityInfo)
}

// Resume restores a session at process start. It reports whether a durable
// session flag was found and the profile could be fetched.
func (e *Engine) Resume(ctx context.Context) (bool, error) {
	if e.sessions == nil {
		return false, nil
	}
	doctorID, active, err := e.sessions.Active(ctx)
	if err != nil {
		return false, fmt.Errorf("engine: failed to read session flag: %w", err)
	}
	if !active {
		return false, nil
	}

	profiles, err := e.remote.Profiles().Fetch(ctx, remote.Filter{DoctorID: doctorID})
	if err != nil {
		return false, &RemoteError{Op: "resume session", Err: err}
	}
	if len(profiles) == 0 {
		// Stale flag with no backing profile: clear it.
		if err := e.sessions.Clear(ctx); err != nil {
			e.logger.Error("failed to clear stale session flag", "error", err)
		}
		return false, nil
	}

	profile := profiles[0]
	e.st.SetDoctor(&profile)
	return true, nil
}

// Reload refreshes every cached collection from the remote store. It is
// all-or-nothing: collections are swapped only after every fetch succeeds.
func (e *Engine) Reload(ctx context.Context) error {
	doctor := e.st.Doctor()
	if doctor == nil {
		return ErrNoSession
	}
	filter := remote.Filter{DoctorID: doctor.ID}

	patients, err := e.remote.Patients().Fetch(ctx, filter)
	if err != nil {
		return e.reloadFailed(err)
	}
	appointments, err := e.remote.Appointments().Fetch(ctx, filter)
	if err != nil {
		return e.reloadFailed(err)
	}
	medicines, err := e.remote.Medicines().Fetch(ctx, filter)
	if err != nil {
		return e.reloadFailed(err)
	}
	consultations, err := e.remote.Consultations().Fetch(ctx, filter)
	if err != nil {
		return e.reloadFailed(err)
	}
	invoices, err := e.remote.Invoices().Fetch(ctx, filter)
	if err != nil {
		return e.reloadFailed(err)
	}

	e.mu.Lock()
	e.st.Patients.ReplaceAll(patients)
	e.st.Appointments.ReplaceAll(appointments)
	e.st.Medicines.ReplaceAll(medicines)
	e.st.Consultations.ReplaceAll(consultations)
	e.st.Invoices.ReplaceAll(invoices)
	e.mu.Unlock()

	e.feed.Push("Clinic data refreshed.", notify.SeverityInfo)
	return nil
}

func (e *Engine) reloadFailed(err error) error {
	e.feed.Push("Refresh failed: "+err.Error(), notify.SeverityError)
	e.logger.Error("reload failed", "error", err)
	return &RemoteError{Op: "reload", Err: err}
}

// AnalyzeSymptoms forwards free-text symptoms to the AI collaborator.
// Without a configured collaborator it returns ai.ErrNotConfigured, which
// callers treat as "no analysis produced".
func (e *Engine) AnalyzeSymptoms(ctx context.Context, symptoms string) (*ai.SymptomAnalysis, error) {
	if strings.TrimSpace(symptoms) == "" {
		return nil, &clinic.ValidationError{Field: "symptoms", Reason: "is required"}
	}
	if e.drafter == nil {
		return nil, ai.ErrNotConfigured
	}
	return e.drafter.AnalyzeSymptoms(ctx, symptoms)
}

// DraftNotes asks the AI collaborator for a SOAP draft. An empty transcript
// is rejected before any AI call is made.
func (e *Engine) DraftNotes(ctx context.Context, transcript string) (*ai.SOAPDraft, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, &clinic.ValidationError{Field: "transcript", Reason: "is required"}
	}
	if e.drafter == nil {
		return nil, ai.ErrNotConfigured
	}
	return e.drafter.DraftNotes(ctx, transcript)
}
