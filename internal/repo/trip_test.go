package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/toll-plaza/internal/domain"
	"github.com/pkordes/toll-plaza/internal/repo"
	"github.com/pkordes/toll-plaza/testutil"
)

func newTestRepo(t *testing.T) repo.TripRepo {
	t.Helper()
	return repo.NewTripRepo(testutil.NewTx(t))
}

// tripFixture returns an open trip with a plate unique to the test, so rows
// left behind by other packages never interfere.
func tripFixture() domain.Trip {
	return domain.Trip{
		EntryInterchange: "Ph4 Interchange",
		NumberPlate:      "T" + uuid.NewString()[:8] + "1",
		EntryTime:        time.Date(2024, 2, 20, 7, 34, 2, 324590000, time.UTC),
	}
}

func TestTripRepo_Create(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := tripFixture()
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, [16]byte{}, got.ID, "ID should be DB-generated UUID")
	assert.Equal(t, input.EntryInterchange, got.EntryInterchange)
	assert.Equal(t, input.NumberPlate, got.NumberPlate)
	assert.True(t, got.EntryTime.Equal(input.EntryTime), "EntryTime mismatch")
	assert.Nil(t, got.ExitInterchange)
	assert.Nil(t, got.ExitTime)
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
}

func TestTripRepo_FindLatestOpen_PicksNewestEntry(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	older := tripFixture()
	newer := older
	newer.EntryInterchange = "Zero Point"
	newer.EntryTime = older.EntryTime.Add(time.Hour)

	_, err := r.Create(ctx, newer)
	require.NoError(t, err)
	_, err = r.Create(ctx, older)
	require.NoError(t, err)

	got, err := r.FindLatestOpen(ctx, older.NumberPlate)

	require.NoError(t, err)
	assert.Equal(t, "Zero Point", got.EntryInterchange)
}

func TestTripRepo_FindLatestOpen_IgnoresClosed(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	trip := tripFixture()
	trip.Close("Bahria Interchange", trip.EntryTime.Add(time.Hour))
	_, err := r.Create(ctx, trip)
	require.NoError(t, err)

	_, err = r.FindLatestOpen(ctx, trip.NumberPlate)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_Update_ClosesTrip(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture())
	require.NoError(t, err)

	exitAt := created.EntryTime.Add(5 * time.Hour)
	created.Close("Bahria Interchange", exitAt)
	updated, err := r.Update(ctx, created)

	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	require.NotNil(t, updated.ExitInterchange)
	assert.Equal(t, "Bahria Interchange", *updated.ExitInterchange)
	require.NotNil(t, updated.ExitTime)
	assert.True(t, updated.ExitTime.Equal(exitAt))

	_, err = r.FindLatestOpen(ctx, created.NumberPlate)
	assert.ErrorIs(t, err, domain.ErrNotFound, "closed trip must no longer match")
}

func TestTripRepo_Update_NotFound(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	ghost := tripFixture()
	ghost.ID = [16]byte{0xde, 0xad, 0xbe, 0xef, 0xde, 0xad, 0xbe, 0xef,
		0xde, 0xad, 0xbe, 0xef, 0xde, 0xad, 0xbe, 0xef}

	_, err := r.Update(ctx, ghost)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_LockPlate(t *testing.T) {
	r := newTestRepo(t)

	// Re-entrant within the same transaction.
	require.NoError(t, r.LockPlate(context.Background(), "ABC123"))
	require.NoError(t, r.LockPlate(context.Background(), "ABC123"))
}

func TestTripRepo_ListPaged(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	base := tripFixture()
	for i := range 3 {
		trip := base
		trip.EntryTime = base.EntryTime.Add(time.Duration(i) * time.Hour)
		_, err := r.Create(ctx, trip)
		require.NoError(t, err)
	}

	page, total, err := r.ListPaged(ctx,
		repo.TripFilter{NumberPlate: base.NumberPlate},
		domain.PaginationParams{Page: 1, Limit: 2})

	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, page, 2)
	assert.True(t, page[0].EntryTime.After(page[1].EntryTime), "newest entry first")

	page, _, err = r.ListPaged(ctx,
		repo.TripFilter{NumberPlate: base.NumberPlate},
		domain.PaginationParams{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page, 1)
}

func TestTripRepo_ListClosed(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	open := tripFixture()
	closed := tripFixture()
	closed.Close("Bahria Interchange", closed.EntryTime.Add(time.Hour))

	_, err := r.Create(ctx, open)
	require.NoError(t, err)
	created, err := r.Create(ctx, closed)
	require.NoError(t, err)

	trips, err := r.ListClosed(ctx)

	require.NoError(t, err)
	var ids []string
	for _, tr := range trips {
		assert.False(t, tr.IsOpen())
		ids = append(ids, tr.ID.String())
	}
	assert.Contains(t, ids, created.ID.String())
}

func TestTransactor_WithinTx_RollsBackOnError(t *testing.T) {
	tx := testutil.NewTx(t)
	ctx := context.Background()
	trip := tripFixture()

	err := repo.NewTransactor(tx).WithinTx(ctx, func(trips repo.TripRepo) error {
		if _, err := trips.Create(ctx, trip); err != nil {
			return err
		}
		return domain.ErrNoOpenTrip
	})
	require.ErrorIs(t, err, domain.ErrNoOpenTrip)

	_, err = repo.NewTripRepo(tx).FindLatestOpen(ctx, trip.NumberPlate)
	assert.ErrorIs(t, err, domain.ErrNotFound, "insert should have been rolled back")
}
