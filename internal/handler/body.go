package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

// ValidateJSONBody rejects a POST body that is not exactly one JSON value,
// including a valid object followed by trailing data. The generated strict
// handler decodes only the first value, so this runs in front of it as a
// gen.MiddlewareFunc. Accepted bodies are replayed unchanged.
func ValidateJSONBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.Body == nil {
			next.ServeHTTP(w, r)
			return
		}

		b, err := io.ReadAll(r.Body)
		_ = r.Body.Close()
		if err != nil {
			writeBodyError(w, err)
			return
		}
		if !json.Valid(b) {
			writeJSONError(w, http.StatusBadRequest, msgInvalidJSON)
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(b))
		next.ServeHTTP(w, r)
	})
}
