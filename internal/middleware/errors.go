package middleware

import (
	"encoding/json"
	"net/http"
)

// MsgBodyTooLarge is the error text of every 413 response.
const MsgBodyTooLarge = "request body too large"

// ErrorBody is the JSON error envelope shared by middleware and handlers.
type ErrorBody struct {
	Error string `json:"error"`
}

// WriteJSONError writes {"error": message} with the given status.
func WriteJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorBody{Error: message})
}
