package remote

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/medcoreph/clinic-core/internal/clinic"
	"github.com/medcoreph/clinic-core/internal/store"
)

// DB is the subset of pgxpool.Pool the datasets need. pgxmock satisfies it
// in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresClient talks to the backing Postgres database. Each collection is
// a document table: (id, doctor_id, data jsonb, created_at, updated_at).
type PostgresClient struct {
	db     DB
	tracer trace.Tracer
}

// NewPostgresClient creates a client backed by pgxpool.
func NewPostgresClient(pool *pgxpool.Pool) *PostgresClient {
	if pool == nil {
		panic("remote: pgx pool required")
	}
	return newPostgresClient(pool)
}

// NewPostgresClientWithDB allows injecting a mock database for testing.
func NewPostgresClientWithDB(db DB) *PostgresClient {
	return newPostgresClient(db)
}

func newPostgresClient(db DB) *PostgresClient {
	return &PostgresClient{
		db:     db,
		tracer: otel.Tracer("clinicore.internal.remote"),
	}
}

// Patients returns the patients dataset.
func (c *PostgresClient) Patients() Dataset[clinic.Patient] {
	return &pgDataset[clinic.Patient]{client: c, table: "patients"}
}

// Appointments returns the appointments dataset.
func (c *PostgresClient) Appointments() Dataset[clinic.Appointment] {
	return &pgDataset[clinic.Appointment]{client: c, table: "appointments"}
}

// Medicines returns the medicines dataset.
func (c *PostgresClient) Medicines() Dataset[clinic.Medicine] {
	return &pgDataset[clinic.Medicine]{client: c, table: "medicines"}
}

// Consultations returns the consultations dataset.
func (c *PostgresClient) Consultations() Dataset[clinic.Consultation] {
	return &pgDataset[clinic.Consultation]{client: c, table: "consultations"}
}

// Invoices returns the invoices dataset.
func (c *PostgresClient) Invoices() Dataset[clinic.Invoice] {
	return &pgDataset[clinic.Invoice]{client: c, table: "invoices"}
}

// Profiles returns the doctor profiles dataset.
func (c *PostgresClient) Profiles() Dataset[clinic.DoctorProfile] {
	return &pgDataset[clinic.DoctorProfile]{client: c, table: "profiles"}
}

type pgDataset[T store.Record] struct {
	client *PostgresClient
	table  string
}

func (d *pgDataset[T]) Insert(ctx context.Context, doctorID string, rec T) (T, error) {
	ctx, span := d.client.tracer.Start(ctx, "remote."+d.table+".insert")
	defer span.End()

	var zero T
	data, err := json.Marshal(rec)
	if err != nil {
		span.RecordError(err)
		return zero, fmt.Errorf("remote: marshal %s record: %w", d.table, err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, doctor_id, data)
		VALUES ($1, $2, $3)
		RETURNING data
	`, d.table)
	var stored []byte
	if err := d.client.db.QueryRow(ctx, query, rec.EntityID(), doctorID, data).Scan(&stored); err != nil {
		span.RecordError(err)
		return zero, fmt.Errorf("remote: insert into %s failed: %w", d.table, err)
	}

	return decode[T](d.table, stored)
}

func (d *pgDataset[T]) Fetch(ctx context.Context, filter Filter) ([]T, error) {
	ctx, span := d.client.tracer.Start(ctx, "remote."+d.table+".fetch")
	defer span.End()

	query := fmt.Sprintf(`
		SELECT data FROM %s
		WHERE doctor_id = $1
		ORDER BY created_at, id
	`, d.table)
	rows, err := d.client.db.Query(ctx, query, filter.DoctorID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("remote: fetch from %s failed: %w", d.table, err)
	}
	defer rows.Close()

	var records []T
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("remote: scan %s row: %w", d.table, err)
		}
		rec, err := decode[T](d.table, data)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (d *pgDataset[T]) Update(ctx context.Context, doctorID, id string, rec T) (T, error) {
	ctx, span := d.client.tracer.Start(ctx, "remote."+d.table+".update")
	defer span.End()

	var zero T
	data, err := json.Marshal(rec)
	if err != nil {
		span.RecordError(err)
		return zero, fmt.Errorf("remote: marshal %s record: %w", d.table, err)
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET data = $3, updated_at = now()
		WHERE id = $1 AND doctor_id = $2
		RETURNING data
	`, d.table)
	var stored []byte
	if err := d.client.db.QueryRow(ctx, query, id, doctorID, data).Scan(&stored); err != nil {
		if err == pgx.ErrNoRows {
			return zero, ErrNotFound
		}
		span.RecordError(err)
		return zero, fmt.Errorf("remote: update %s failed: %w", d.table, err)
	}

	return decode[T](d.table, stored)
}

func (d *pgDataset[T]) Delete(ctx context.Context, doctorID, id string) error {
	ctx, span := d.client.tracer.Start(ctx, "remote."+d.table+".delete")
	defer span.End()

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND doctor_id = $2`, d.table)
	ct, err := d.client.db.Exec(ctx, query, id, doctorID)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("remote: delete from %s failed: %w", d.table, err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func decode[T store.Record](table string, data []byte) (T, error) {
	var rec T
	if err := json.Unmarshal(data, &rec); err != nil {
		return rec, fmt.Errorf("remote: decode %s record: %w", table, err)
	}
	return rec, nil
}
