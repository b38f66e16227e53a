package service

import (
	"context"
	"fmt"

	"github.com/pkordes/toll-plaza/internal/domain"
	"github.com/pkordes/toll-plaza/internal/repo"
)

// ExportService assembles a flat export of every closed trip with its fare.
type ExportService struct {
	trips  repo.TripRepo
	pricer Pricer
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(trips repo.TripRepo, pricer Pricer) *ExportService {
	return &ExportService{trips: trips, pricer: pricer}
}

// Export returns one ExportRow per closed trip, oldest exit first.
// Fares are recomputed; a trip that can no longer be priced is still
// exported, with FareError set instead of Fare.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	trips, err := s.trips.ListClosed(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := make([]domain.ExportRow, 0, len(trips))
	for _, t := range trips {
		if t.IsOpen() || t.ExitTime == nil {
			continue
		}
		row := domain.ExportRow{
			TripID:           t.ID.String(),
			NumberPlate:      t.NumberPlate,
			EntryInterchange: t.EntryInterchange,
			ExitInterchange:  *t.ExitInterchange,
			EntryTime:        t.EntryTime,
			ExitTime:         *t.ExitTime,
		}
		f, err := s.pricer.Price(t.EntryInterchange, *t.ExitInterchange, t.EntryTime, *t.ExitTime, t.NumberPlate)
		if err != nil {
			row.FareError = err.Error()
		} else {
			row.Fare = &f
		}
		rows = append(rows, row)
	}
	return rows, nil
}
