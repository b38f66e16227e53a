// Package service contains the business logic for the toll plaza API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pkordes/toll-plaza/internal/domain"
	"github.com/pkordes/toll-plaza/internal/fare"
	"github.com/pkordes/toll-plaza/internal/repo"
)

// Pricer computes the fare for a completed trip and knows which interchanges
// exist. *fare.Calculator satisfies it.
type Pricer interface {
	Price(entryPoint, exitPoint string, entryTime, exitTime time.Time, plate string) (domain.Fare, error)
	Route() fare.Route
}

// EventPublisher announces closed trips to the outside world.
// *publisher.NATSPublisher satisfies it.
type EventPublisher interface {
	PublishTripClosed(ctx context.Context, closed domain.ClosedTrip) error
}

// Observer records business metrics. *metrics.Collector satisfies it.
type Observer interface {
	EntryRecorded(reentry bool)
	ExitRecorded(f domain.Fare)
	ExitUnmatched()
}

// Option configures optional TollService collaborators.
type Option func(*TollService)

// WithClock overrides the time source used when an event carries no timestamp.
func WithClock(now func() time.Time) Option {
	return func(s *TollService) { s.now = now }
}

// WithPublisher publishes every closed trip after its transaction commits.
func WithPublisher(p EventPublisher) Option {
	return func(s *TollService) { s.events = p }
}

// WithObserver reports entry and exit counts and fares.
func WithObserver(o Observer) Option {
	return func(s *TollService) { s.observer = o }
}

// WithLogger sets the logger used for failures that do not fail the request.
func WithLogger(l *slog.Logger) Option {
	return func(s *TollService) { s.log = l }
}

// TollService records entry and exit events and prices closed trips.
type TollService struct {
	trips    repo.TripRepo
	tx       repo.Transactor
	pricer   Pricer
	now      func() time.Time
	events   EventPublisher
	observer Observer
	log      *slog.Logger
}

// NewTollService constructs a TollService.
// trips serves reads outside a transaction; tx runs every entry and exit.
func NewTollService(trips repo.TripRepo, tx repo.Transactor, pricer Pricer, opts ...Option) *TollService {
	s := &TollService{
		trips:  trips,
		tx:     tx,
		pricer: pricer,
		now:    time.Now,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RecordEntry opens a trip for the plate, or overwrites the entry fields of
// the plate's latest open trip if one exists (re-entry replaces, never stacks).
// Returns domain.ErrValidation for missing fields, an unknown interchange or a
// plate without a trailing digit.
func (s *TollService) RecordEntry(ctx context.Context, ev domain.EntryEvent) (domain.Trip, error) {
	ev.Interchange = strings.TrimSpace(ev.Interchange)
	ev.NumberPlate = strings.TrimSpace(ev.NumberPlate)
	if ev.Interchange == "" || ev.NumberPlate == "" {
		return domain.Trip{}, fmt.Errorf("%w: missing required fields", domain.ErrValidation)
	}
	if err := s.validatePoint(ev.Interchange); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TollService.RecordEntry: %w", err)
	}
	if err := checkPlate(ev.NumberPlate); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TollService.RecordEntry: %w", err)
	}
	if ev.EntryTime.IsZero() {
		ev.EntryTime = s.now()
	}

	var (
		result  domain.Trip
		reentry bool
	)
	err := s.tx.WithinTx(ctx, func(trips repo.TripRepo) error {
		if err := trips.LockPlate(ctx, ev.NumberPlate); err != nil {
			return err
		}

		open, err := trips.FindLatestOpen(ctx, ev.NumberPlate)
		switch {
		case err == nil:
			reentry = true
			open.EntryInterchange = ev.Interchange
			open.EntryTime = ev.EntryTime
			result, err = trips.Update(ctx, open)
			return err
		case errors.Is(err, domain.ErrNotFound):
			result, err = trips.Create(ctx, domain.Trip{
				EntryInterchange: ev.Interchange,
				NumberPlate:      ev.NumberPlate,
				EntryTime:        ev.EntryTime,
			})
			return err
		default:
			return err
		}
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TollService.RecordEntry: %w", err)
	}

	if s.observer != nil {
		s.observer.EntryRecorded(reentry)
	}
	return result, nil
}

// RecordExit closes the plate's latest open trip and prices it.
// Returns domain.ErrNoOpenTrip when there is nothing to close. A pricing
// failure (unknown exit interchange, bad plate) rolls the close back, so the
// trip stays open.
func (s *TollService) RecordExit(ctx context.Context, ev domain.ExitEvent) (domain.ClosedTrip, error) {
	ev.Interchange = strings.TrimSpace(ev.Interchange)
	ev.NumberPlate = strings.TrimSpace(ev.NumberPlate)
	if ev.ExitTime.IsZero() {
		ev.ExitTime = s.now()
	}
	if ev.NumberPlate == "" {
		s.unmatched()
		return domain.ClosedTrip{}, fmt.Errorf("service.TollService.RecordExit: %w", domain.ErrNoOpenTrip)
	}
	if utf8.RuneCountInString(ev.NumberPlate) > domain.MaxPlateLength {
		return domain.ClosedTrip{}, fmt.Errorf("service.TollService.RecordExit: %w", domain.ErrPlateTooLong)
	}

	var closed domain.ClosedTrip
	err := s.tx.WithinTx(ctx, func(trips repo.TripRepo) error {
		if err := trips.LockPlate(ctx, ev.NumberPlate); err != nil {
			return err
		}

		open, err := trips.FindLatestOpen(ctx, ev.NumberPlate)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNoOpenTrip
		}
		if err != nil {
			return err
		}

		if err := s.validatePoint(ev.Interchange); err != nil {
			return err
		}
		open.Close(ev.Interchange, ev.ExitTime)

		f, err := s.pricer.Price(open.EntryInterchange, ev.Interchange, open.EntryTime, ev.ExitTime, open.NumberPlate)
		if err != nil {
			return err
		}

		updated, err := trips.Update(ctx, open)
		if err != nil {
			return err
		}
		closed = domain.ClosedTrip{Trip: updated, Fare: f}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNoOpenTrip) {
			s.unmatched()
		}
		return domain.ClosedTrip{}, fmt.Errorf("service.TollService.RecordExit: %w", err)
	}

	if s.observer != nil {
		s.observer.ExitRecorded(closed.Fare)
	}
	if s.events != nil {
		if err := s.events.PublishTripClosed(ctx, closed); err != nil {
			s.log.WarnContext(ctx, "publish trip closed",
				"trip_id", closed.Trip.ID,
				"number_plate", closed.Trip.NumberPlate,
				"error", err,
			)
		}
	}
	return closed, nil
}

// FindOpenTrip returns the plate's open trip with the latest entry time.
// Returns domain.ErrNotFound if the plate has no open trip.
func (s *TollService) FindOpenTrip(ctx context.Context, plate string) (domain.Trip, error) {
	plate = strings.TrimSpace(plate)
	if plate == "" {
		return domain.Trip{}, fmt.Errorf("%w: number_plate is required", domain.ErrValidation)
	}
	trip, err := s.trips.FindLatestOpen(ctx, plate)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TollService.FindOpenTrip: %w", err)
	}
	return trip, nil
}

// ListTrips returns one page of trips, newest entry first, and the total count.
// An empty plate lists every vehicle. Always returns a non-nil slice.
func (s *TollService) ListTrips(ctx context.Context, plate string, params domain.PaginationParams) ([]domain.Trip, int64, error) {
	trips, total, err := s.trips.ListPaged(ctx, repo.TripFilter{NumberPlate: strings.TrimSpace(plate)}, params)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TollService.ListTrips: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, total, nil
}

// Interchanges returns the route table in travel order.
func (s *TollService) Interchanges() []fare.Interchange {
	return s.pricer.Route().Interchanges()
}

func (s *TollService) validatePoint(name string) error {
	if name == "" {
		return fmt.Errorf("%w: interchange is required", domain.ErrValidation)
	}
	if !s.pricer.Route().Has(name) {
		return fmt.Errorf("%w: %q", domain.ErrUnknownInterchange, name)
	}
	return nil
}

// checkPlate enforces the column length and the trailing digit pricing needs.
func checkPlate(plate string) error {
	if utf8.RuneCountInString(plate) > domain.MaxPlateLength {
		return domain.ErrPlateTooLong
	}
	_, err := fare.PlateDigit(plate)
	return err
}

func (s *TollService) unmatched() {
	if s.observer != nil {
		s.observer.ExitUnmatched()
	}
}
