// Package domain contains the core data types for the toll plaza application.
// This package has no dependencies on other internal packages and is imported
// by every other internal package (fare, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxPlateLength bounds number_plate, matching the toll_trips column.
const MaxPlateLength = 20

// Trip is one vehicle passage through the tolled route.
// ExitInterchange and ExitTime are nil while the trip is open.
type Trip struct {
	ID               uuid.UUID  `json:"id"`
	EntryInterchange string     `json:"entry_interchange"`
	ExitInterchange  *string    `json:"exit_interchange,omitempty"`
	NumberPlate      string     `json:"number_plate"`
	EntryTime        time.Time  `json:"entry_time"`
	ExitTime         *time.Time `json:"exit_time,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// IsOpen reports whether no exit has been recorded for the trip yet.
func (t Trip) IsOpen() bool {
	return t.ExitInterchange == nil
}

// Close sets the exit fields, turning an open trip into a closed one.
func (t *Trip) Close(interchange string, at time.Time) {
	t.ExitInterchange = &interchange
	t.ExitTime = &at
}

// EntryEvent is a vehicle passing an entry booth.
// A zero EntryTime means "now" and is filled in by the service.
type EntryEvent struct {
	Interchange string
	NumberPlate string
	EntryTime   time.Time
}

// ExitEvent is a vehicle passing an exit booth.
// A zero ExitTime means "now".
type ExitEvent struct {
	Interchange string
	NumberPlate string
	ExitTime    time.Time
}

// ClosedTrip pairs a trip that was just closed with the fare owed for it.
type ClosedTrip struct {
	Trip Trip
	Fare Fare
}
