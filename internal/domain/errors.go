package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails business rule validation
// (missing required field, malformed timestamp, unknown interchange).
// Handlers should map this to HTTP 400 Bad Request.
var ErrValidation = errors.New("validation error")

// ErrUnknownInterchange is returned when an interchange name is not on the route.
// It wraps ErrValidation so handlers can treat it as a bad request.
var ErrUnknownInterchange = fmt.Errorf("%w: unknown interchange", ErrValidation)

// ErrInvalidPlate is returned when a number plate does not end in a decimal digit.
// It wraps ErrValidation.
var ErrInvalidPlate = fmt.Errorf("%w: number plate must end with a digit", ErrValidation)

// ErrPlateTooLong is returned when a number plate is longer than MaxPlateLength
// characters. It wraps ErrValidation.
var ErrPlateTooLong = fmt.Errorf("%w: number plate must be at most %d characters", ErrValidation, MaxPlateLength)

// ErrNoOpenTrip is returned when an exit event has no open trip to close,
// either because no entry was recorded or because the exit was already recorded.
// Handlers should map this to HTTP 404.
var ErrNoOpenTrip = errors.New("no open trip")
