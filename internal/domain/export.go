package domain

import "time"

// ExportRow is a single row in the closed-trip export.
// The fare is recomputed at export time because it is never persisted.
// When the fare cannot be computed (for example a trip recorded against an
// interchange that has since been removed from the route), Fare is nil and
// FareError carries the reason.
type ExportRow struct {
	TripID           string
	NumberPlate      string
	EntryInterchange string
	ExitInterchange  string
	EntryTime        time.Time
	ExitTime         time.Time

	Fare      *Fare
	FareError string
}
