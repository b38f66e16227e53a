package handler

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/pkordes/toll-plaza/internal/domain"
	"github.com/pkordes/toll-plaza/internal/handler/gen"
)

// RecordEntry handles POST /toll/entry.
func (s *Server) RecordEntry(ctx context.Context, req gen.RecordEntryRequestObject) (gen.RecordEntryResponseObject, error) {
	body := req.Body
	if body == nil || isBlank(body.Interchange) || isBlank(body.NumberPlate) {
		return gen.RecordEntry400JSONResponse{BadRequestJSONResponse: badRequest(msgMissingFields)}, nil
	}

	at, err := s.optionalTime(body.EntryTime)
	if err != nil {
		return gen.RecordEntry400JSONResponse{BadRequestJSONResponse: badRequest(unwrapMessage(err))}, nil
	}

	_, err = s.tolls.RecordEntry(ctx, domain.EntryEvent{
		Interchange: *body.Interchange,
		NumberPlate: *body.NumberPlate,
		EntryTime:   at,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.RecordEntry400JSONResponse{BadRequestJSONResponse: badRequest(unwrapMessage(err))}, nil
		}
		return nil, err
	}

	return gen.RecordEntry201JSONResponse{Message: "Entry recorded successfully"}, nil
}

// RecordExit handles POST /toll/exit.
// The fare breakdown keys are part of the public contract.
func (s *Server) RecordExit(ctx context.Context, req gen.RecordExitRequestObject) (gen.RecordExitResponseObject, error) {
	var body gen.ExitRequest
	if req.Body != nil {
		body = *req.Body
	}

	at, err := s.optionalTime(body.ExitTime)
	if err != nil {
		return gen.RecordExit400JSONResponse{BadRequestJSONResponse: badRequest(unwrapMessage(err))}, nil
	}

	closed, err := s.tolls.RecordExit(ctx, domain.ExitEvent{
		Interchange: deref(body.Interchange),
		NumberPlate: deref(body.NumberPlate),
		ExitTime:    at,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoOpenTrip):
			return gen.RecordExit404JSONResponse{NotFoundJSONResponse: notFound(msgNoOpenTrip)}, nil
		case errors.Is(err, domain.ErrValidation):
			return gen.RecordExit400JSONResponse{BadRequestJSONResponse: badRequest(unwrapMessage(err))}, nil
		}
		return nil, err
	}

	f := closed.Fare
	return gen.RecordExit200JSONResponse{
		BaseRate:              f.BaseRate,
		DistanceCostBreakdown: f.DistanceCost,
		SubTotal:              f.SubTotal,
		DiscountOther:         f.Discount,
		Total:                 f.Total,
	}, nil
}

// ListTrips handles GET /toll/trips.
// Supports ?number_plate=, ?page= and ?limit= (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(ctx context.Context, req gen.ListTripsRequestObject) (gen.ListTripsResponseObject, error) {
	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	trips, total, err := s.tolls.ListTrips(ctx, deref(req.Params.NumberPlate), params)
	if err != nil {
		return nil, err
	}

	data := make([]gen.Trip, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	return gen.ListTrips200JSONResponse{
		Data: data,
		Pagination: gen.Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	}, nil
}

// GetOpenTrip handles GET /toll/trips/open.
func (s *Server) GetOpenTrip(ctx context.Context, req gen.GetOpenTripRequestObject) (gen.GetOpenTripResponseObject, error) {
	trip, err := s.tolls.FindOpenTrip(ctx, req.Params.NumberPlate)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return gen.GetOpenTrip404JSONResponse{NotFoundJSONResponse: notFound("no open trip for number plate")}, nil
		case errors.Is(err, domain.ErrValidation):
			return gen.GetOpenTrip400JSONResponse{BadRequestJSONResponse: badRequest(unwrapMessage(err))}, nil
		}
		return nil, err
	}
	return gen.GetOpenTrip200JSONResponse(tripToResponse(trip)), nil
}

// ListInterchanges handles GET /toll/interchanges.
func (s *Server) ListInterchanges(_ context.Context, _ gen.ListInterchangesRequestObject) (gen.ListInterchangesResponseObject, error) {
	points := s.tolls.Interchanges()
	out := make(gen.ListInterchanges200JSONResponse, len(points))
	for i, p := range points {
		out[i] = gen.Interchange{Name: p.Name, Position: p.Position}
	}
	return out, nil
}

// optionalTime parses an optional wire timestamp in the server's zone.
// Absent or empty means "now", signalled by the zero time.
func (s *Server) optionalTime(value *string) (time.Time, error) {
	if value == nil || *value == "" {
		return time.Time{}, nil
	}
	return domain.ParseTimestamp(*value, s.loc)
}

// tripToResponse maps a domain.Trip to the generated response type.
func tripToResponse(t domain.Trip) gen.Trip {
	return gen.Trip{
		Id:               t.ID,
		EntryInterchange: t.EntryInterchange,
		ExitInterchange:  t.ExitInterchange,
		NumberPlate:      t.NumberPlate,
		EntryTime:        t.EntryTime,
		ExitTime:         t.ExitTime,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
