package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pkordes/toll-plaza/internal/handler/gen"
	"github.com/pkordes/toll-plaza/internal/middleware"
)

const (
	msgInvalidJSON    = "Invalid JSON data"
	msgMissingFields  = "Missing required fields"
	msgNoOpenTrip     = "No entry found for the given number plate or exit already recorded"
	msgInternalServer = "internal server error"
)

// badRequest returns the shared 400 body.
func badRequest(message string) gen.BadRequestJSONResponse {
	return gen.BadRequestJSONResponse{Error: message}
}

// notFound returns the shared 404 body.
func notFound(message string) gen.NotFoundJSONResponse {
	return gen.NotFoundJSONResponse{Error: message}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. `service.TollService.RecordEntry: validation error: unknown interchange: "X"`
// becomes `unknown interchange: "X"`.
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	const marker = "validation error: "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}

// RequestErrorHandler answers requests the strict handler could not decode.
// Body failures go through writeBodyError; malformed query parameters keep
// their binder message.
func RequestErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	if strings.HasPrefix(err.Error(), "can't decode JSON body") {
		writeBodyError(w, err)
		return
	}
	writeJSONError(w, http.StatusBadRequest, err.Error())
}

// writeBodyError maps a body read or parse failure to 413 when the body
// limit was hit and to 400 {"error":"Invalid JSON data"} otherwise.
func writeBodyError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSONError(w, http.StatusRequestEntityTooLarge, middleware.MsgBodyTooLarge)
		return
	}
	writeJSONError(w, http.StatusBadRequest, msgInvalidJSON)
}

// ResponseErrorHandler returns a handler for errors a Server method did not
// map to a typed response. The cause is logged; the client sees a generic 500.
func ResponseErrorHandler(log *slog.Logger) func(http.ResponseWriter, *http.Request, error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		log.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		writeJSONError(w, http.StatusInternalServerError, msgInternalServer)
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	middleware.WriteJSONError(w, status, message)
}
