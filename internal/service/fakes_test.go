package service_test

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/toll-plaza/internal/domain"
	"github.com/pkordes/toll-plaza/internal/repo"
)

// memTripRepo is an in-memory repo.TripRepo. Set failUpdate or failFind to
// inject errors; locks records every LockPlate call.
type memTripRepo struct {
	trips map[uuid.UUID]domain.Trip
	locks []string

	updates    int
	failUpdate error
	failFind   error
}

func newMemTripRepo(seed ...domain.Trip) *memTripRepo {
	r := &memTripRepo{trips: map[uuid.UUID]domain.Trip{}}
	for _, t := range seed {
		if t.ID == uuid.Nil {
			t.ID = uuid.New()
		}
		r.trips[t.ID] = t
	}
	return r
}

// compile-time check: memTripRepo must satisfy repo.TripRepo.
var _ repo.TripRepo = (*memTripRepo)(nil)

func (r *memTripRepo) Create(_ context.Context, t domain.Trip) (domain.Trip, error) {
	t.ID = uuid.New()
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	r.trips[t.ID] = t
	return t, nil
}

func (r *memTripRepo) FindLatestOpen(_ context.Context, plate string) (domain.Trip, error) {
	if r.failFind != nil {
		return domain.Trip{}, r.failFind
	}
	var (
		best  domain.Trip
		found bool
	)
	for _, t := range r.trips {
		if t.NumberPlate != plate || !t.IsOpen() {
			continue
		}
		if !found || t.EntryTime.After(best.EntryTime) {
			best, found = t, true
		}
	}
	if !found {
		return domain.Trip{}, domain.ErrNotFound
	}
	return best, nil
}

func (r *memTripRepo) Update(_ context.Context, t domain.Trip) (domain.Trip, error) {
	r.updates++
	if r.failUpdate != nil {
		return domain.Trip{}, r.failUpdate
	}
	if _, ok := r.trips[t.ID]; !ok {
		return domain.Trip{}, domain.ErrNotFound
	}
	t.UpdatedAt = time.Now()
	r.trips[t.ID] = t
	return t, nil
}

func (r *memTripRepo) LockPlate(_ context.Context, plate string) error {
	r.locks = append(r.locks, plate)
	return nil
}

func (r *memTripRepo) ListPaged(_ context.Context, f repo.TripFilter, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	var all []domain.Trip
	for _, t := range r.trips {
		if f.NumberPlate == "" || t.NumberPlate == f.NumberPlate {
			all = append(all, t)
		}
	}
	slices.SortFunc(all, func(a, b domain.Trip) int { return b.EntryTime.Compare(a.EntryTime) })
	total := int64(len(all))
	start := min(p.Offset(), len(all))
	end := min(start+p.Limit, len(all))
	return all[start:end], total, nil
}

func (r *memTripRepo) ListClosed(_ context.Context) ([]domain.Trip, error) {
	var out []domain.Trip
	for _, t := range r.trips {
		if !t.IsOpen() {
			out = append(out, t)
		}
	}
	slices.SortFunc(out, func(a, b domain.Trip) int { return a.ExitTime.Compare(*b.ExitTime) })
	return out, nil
}

func (r *memTripRepo) openFor(plate string) []domain.Trip {
	var out []domain.Trip
	for _, t := range r.trips {
		if t.NumberPlate == plate && t.IsOpen() {
			out = append(out, t)
		}
	}
	return out
}

// memTransactor runs fn against repo under a mutex and restores the previous
// state when fn fails, like a rolled-back transaction.
type memTransactor struct {
	mu   sync.Mutex
	repo *memTripRepo
}

func (m *memTransactor) WithinTx(ctx context.Context, fn func(trips repo.TripRepo) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := maps.Clone(m.repo.trips)
	if err := fn(m.repo); err != nil {
		m.repo.trips = snapshot
		return err
	}
	return nil
}

// compile-time check: memTransactor must satisfy repo.Transactor.
var _ repo.Transactor = (*memTransactor)(nil)

// recordingObserver counts what the service reports.
type recordingObserver struct {
	entries, reentries, unmatched int
	fares                         []domain.Fare
}

func (o *recordingObserver) EntryRecorded(reentry bool) {
	o.entries++
	if reentry {
		o.reentries++
	}
}
func (o *recordingObserver) ExitRecorded(f domain.Fare) { o.fares = append(o.fares, f) }
func (o *recordingObserver) ExitUnmatched()             { o.unmatched++ }

// mockPublisher is a hand-written test double for service.EventPublisher.
type mockPublisher struct {
	publish func(ctx context.Context, closed domain.ClosedTrip) error
}

func (m *mockPublisher) PublishTripClosed(ctx context.Context, closed domain.ClosedTrip) error {
	return m.publish(ctx, closed)
}
