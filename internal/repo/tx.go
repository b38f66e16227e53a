package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// beginner is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx (nested
// transactions become savepoints).
type beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Transactor runs a unit of work against a TripRepo bound to one transaction.
type Transactor interface {
	// WithinTx commits when fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(trips TripRepo) error) error
}

type pgTransactor struct {
	db beginner
}

// NewTransactor returns a Transactor that opens transactions on db.
func NewTransactor(db beginner) Transactor {
	return &pgTransactor{db: db}
}

// WithinTx runs fn inside a transaction.
func (t *pgTransactor) WithinTx(ctx context.Context, fn func(trips TripRepo) error) error {
	err := pgx.BeginFunc(ctx, t.db, func(tx pgx.Tx) error {
		return fn(NewTripRepo(tx))
	})
	if err != nil {
		return fmt.Errorf("repo.Transactor.WithinTx: %w", err)
	}
	return nil
}
