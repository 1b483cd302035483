// Command clinicdemo wires the full engine together and runs a short
// end-to-end session against either Postgres (DATABASE_URL set) or the
// in-memory remote client.
package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/medcoreph/clinic-core/internal/ai"
	"github.com/medcoreph/clinic-core/internal/clinic"
	"github.com/medcoreph/clinic-core/internal/config"
	"github.com/medcoreph/clinic-core/internal/connectivity"
	"github.com/medcoreph/clinic-core/internal/engine"
	"github.com/medcoreph/clinic-core/internal/notify"
	"github.com/medcoreph/clinic-core/internal/observability/metrics"
	"github.com/medcoreph/clinic-core/internal/remote"
	"github.com/medcoreph/clinic-core/internal/session"
	"github.com/medcoreph/clinic-core/internal/store"
	"github.com/medcoreph/clinic-core/pkg/logging"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	remoteClient, cleanup, err := buildRemote(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to connect to remote store", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	feed := notify.NewFeed(cfg.NotificationCap, cfg.ToastTTL)
	defer feed.Close()

	opts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithMetrics(metrics.NewSyncMetrics(nil)),
		engine.WithSessions(buildSessions(cfg, logger)),
	}
	if drafter, err := ai.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModelID); err == nil {
		defer func() { _ = drafter.Close() }()
		opts = append(opts, engine.WithDrafter(drafter))
	} else {
		logger.Info("ai drafting disabled", "reason", err)
	}

	eng := engine.New(store.New(), remoteClient, connectivity.NewMonitor(), feed, opts...)

	if resumed, err := eng.Resume(ctx); err != nil {
		logger.Error("session resume failed", "error", err)
	} else if resumed {
		logger.Info("session resumed", "doctor", eng.Doctor().FullName)
	}

	if eng.Doctor() == nil {
		if _, err := eng.Register(ctx, clinic.DoctorProfile{
			Email:         "demo@clinic.ph",
			FullName:      "Dr. Maria Reyes",
			LicenseNumber: "0102345",
			Specialty:     "Family Medicine",
			ClinicName:    "Reyes Family Clinic",
		}); err != nil {
			logger.Error("registration failed", "error", err)
			os.Exit(1)
		}
	}

	patient, err := eng.AddPatient(ctx, clinic.Patient{
		Name:         "Juan dela Cruz",
		Age:          62,
		Gender:       "Male",
		BloodGroup:   "O+",
		PhilHealthID: "12-345678901-2",
		Address:      clinic.Address{Barangay: "San Isidro", City: "Quezon City", Province: "Metro Manila"},
	})
	if err != nil {
		logger.Error("add patient failed", "error", err)
		os.Exit(1)
	}

	if _, err := eng.AddAppointment(ctx, clinic.Appointment{
		PatientID:   patient.ID,
		PatientName: patient.Name,
		Date:        time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		Time:        "09:30",
		Type:        clinic.AppointmentCheckup,
	}); err != nil {
		logger.Error("add appointment failed", "error", err)
	}

	if _, err := eng.AddInvoice(ctx, clinic.Invoice{
		PatientName: patient.Name,
		Total:       1500,
		Discount:    300, // senior citizen
		Net:         1200,
		Method:      "Cash",
		Status:      clinic.InvoicePaid,
	}); err != nil {
		logger.Error("add invoice failed", "error", err)
	}

	stats := eng.DashboardStats()
	fmt.Printf("Patients: %d  Appointments: %d  Pending: %d  Revenue: %.2f\n",
		stats.TotalPatients, stats.TotalAppointments, stats.PendingAppointments, stats.PaidRevenue)

	for _, n := range eng.Feed().History() {
		fmt.Printf("[%s] %s\n", n.Severity, n.Message)
	}
}

func buildRemote(ctx context.Context, cfg *config.Config, logger *logging.Logger) (remote.Client, func(), error) {
	if cfg.DatabaseURL == "" {
		logger.Info("DATABASE_URL not set, using in-memory remote store")
		return remote.NewMemoryClient(), func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return remote.NewPostgresClient(pool), pool.Close, nil
}

func buildSessions(cfg *config.Config, logger *logging.Logger) session.Store {
	if cfg.RedisAddr == "" {
		logger.Info("REDIS_ADDR not set, session flag will not survive restarts")
		return session.NewMemoryStore()
	}

	opts := &redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword}
	if cfg.RedisTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return session.NewRedisStore(redis.NewClient(opts))
}
