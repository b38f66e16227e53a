// Package repo contains all database access logic for the toll plaza API.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/toll-plaza/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripFilter narrows a trip listing. Empty fields do not filter.
type TripFilter struct {
	NumberPlate string
}

// TripRepo defines the persistence operations for toll trips.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record with the
	// DB-generated id, created_at and updated_at populated.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// FindLatestOpen returns the open trip with the latest entry_time for plate.
	// Inside a transaction the row is locked FOR UPDATE.
	// Returns domain.ErrNotFound if the plate has no open trip.
	FindLatestOpen(ctx context.Context, plate string) (domain.Trip, error)

	// Update overwrites the entry and exit fields of an existing trip.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// LockPlate takes a transaction-scoped advisory lock on plate, serializing
	// every find-then-mutate sequence for the same vehicle. Only meaningful
	// when the repo is backed by a pgx.Tx.
	LockPlate(ctx context.Context, plate string) error

	// ListPaged returns one page of trips ordered by entry_time descending,
	// together with the total number of trips matching filter.
	ListPaged(ctx context.Context, filter TripFilter, params domain.PaginationParams) ([]domain.Trip, int64, error)

	// ListClosed returns every closed trip ordered by exit_time ascending.
	ListClosed(ctx context.Context) ([]domain.Trip, error)
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, entry_interchange, exit_interchange, number_plate, entry_time, exit_time, created_at, updated_at`

// Create inserts a new trip row and returns the full persisted record.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO toll_trips (entry_interchange, exit_interchange, number_plate, entry_time, exit_time)
		VALUES (@entry_interchange, @exit_interchange, @number_plate, @entry_time, @exit_time)
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"entry_interchange": trip.EntryInterchange,
		"exit_interchange":  trip.ExitInterchange, // nil becomes NULL
		"number_plate":      trip.NumberPlate,
		"entry_time":        trip.EntryTime,
		"exit_time":         trip.ExitTime,
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

// FindLatestOpen returns the newest open trip for plate.
// Ties on entry_time go to the most recently created row.
func (r *pgTripRepo) FindLatestOpen(ctx context.Context, plate string) (domain.Trip, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM toll_trips
		WHERE number_plate = @number_plate
		  AND exit_interchange IS NULL
		ORDER BY entry_time DESC, created_at DESC
		LIMIT 1
		FOR UPDATE`

	result, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"number_plate": plate}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.FindLatestOpen: %w", err)
	}
	return result, nil
}

// Update overwrites the mutable fields of a trip and returns the updated record.
func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE toll_trips
		SET entry_interchange = @entry_interchange,
		    exit_interchange  = @exit_interchange,
		    entry_time        = @entry_time,
		    exit_time         = @exit_time,
		    updated_at        = now()
		WHERE id = @id
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"id":                trip.ID,
		"entry_interchange": trip.EntryInterchange,
		"exit_interchange":  trip.ExitInterchange,
		"entry_time":        trip.EntryTime,
		"exit_time":         trip.ExitTime,
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

// LockPlate blocks until this transaction holds the advisory lock for plate.
// The lock is released on commit or rollback.
func (r *pgTripRepo) LockPlate(ctx context.Context, plate string) error {
	const q = `SELECT pg_advisory_xact_lock(hashtext(@number_plate))`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"number_plate": plate}); err != nil {
		return fmt.Errorf("repo.TripRepo.LockPlate: %w", err)
	}
	return nil
}

// ListPaged returns a page of trips, newest entry first.
func (r *pgTripRepo) ListPaged(ctx context.Context, filter TripFilter, params domain.PaginationParams) ([]domain.Trip, int64, error) {
	const countQ = `
		SELECT count(*)
		FROM toll_trips
		WHERE (@number_plate = '' OR number_plate = @number_plate)`

	const listQ = `
		SELECT ` + tripColumns + `
		FROM toll_trips
		WHERE (@number_plate = '' OR number_plate = @number_plate)
		ORDER BY entry_time DESC, created_at DESC
		LIMIT @limit OFFSET @offset`

	var total int64
	if err := r.db.QueryRow(ctx, countQ, pgx.NamedArgs{"number_plate": filter.NumberPlate}).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: count: %w", err)
	}

	rows, err := r.db.Query(ctx, listQ, pgx.NamedArgs{
		"number_plate": filter.NumberPlate,
		"limit":        params.Limit,
		"offset":       params.Offset(),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: %w", err)
	}

	trips, err := collectTrips(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: %w", err)
	}
	return trips, total, nil
}

// ListClosed returns every closed trip, oldest exit first.
func (r *pgTripRepo) ListClosed(ctx context.Context) ([]domain.Trip, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM toll_trips
		WHERE exit_interchange IS NOT NULL
		ORDER BY exit_time ASC, created_at ASC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListClosed: %w", err)
	}

	trips, err := collectTrips(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListClosed: %w", err)
	}
	return trips, nil
}

// collectTrips drains rows into a slice and closes them.
func collectTrips(rows pgx.Rows) ([]domain.Trip, error) {
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return trips, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single database row into a domain.Trip.
// It handles the UUID and the nullable exit columns.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t        domain.Trip
		id       pgtype.UUID
		exitName pgtype.Text
		exitTime pgtype.Timestamptz
	)

	err := s.Scan(&id, &t.EntryInterchange, &exitName, &t.NumberPlate,
		&t.EntryTime, &exitTime, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	if exitName.Valid {
		name := exitName.String
		t.ExitInterchange = &name
	}
	if exitTime.Valid {
		et := exitTime.Time
		t.ExitTime = &et
	}
	return t, nil
}
