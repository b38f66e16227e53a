// Package handler implements the HTTP handlers for the toll plaza API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into files by concern (health.go, toll.go, export.go) but
// share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"time"

	"github.com/pkordes/toll-plaza/internal/domain"
	"github.com/pkordes/toll-plaza/internal/fare"
)

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -config gen/config.yaml ../../spec/openapi.yaml

// TollServicer defines the toll operations the handlers depend on.
// Declared here, in the consumer package, so tests can inject a mock
// without a database.
type TollServicer interface {
	RecordEntry(ctx context.Context, ev domain.EntryEvent) (domain.Trip, error)
	RecordExit(ctx context.Context, ev domain.ExitEvent) (domain.ClosedTrip, error)
	FindOpenTrip(ctx context.Context, plate string) (domain.Trip, error)
	ListTrips(ctx context.Context, plate string, params domain.PaginationParams) ([]domain.Trip, int64, error)
	Interchanges() []fare.Interchange
}

// ExportServicer defines the export operation used by GET /toll/export.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via gen.NewStrictHandlerWithOptions(server, ...).
type Server struct {
	tolls  TollServicer
	export ExportServicer
	loc    *time.Location
}

// NewServer constructs the Server with all its dependencies.
// loc is the zone naive entry_time and exit_time values are read in;
// nil means UTC.
func NewServer(tolls TollServicer, export ExportServicer, loc *time.Location) *Server {
	if loc == nil {
		loc = time.UTC
	}
	return &Server{tolls: tolls, export: export, loc: loc}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil)
}
