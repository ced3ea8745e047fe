// Package api holds the shared HTTP response helpers and the stable error
// kinds surfaced to clients. Clients match on kind; message is display text.
package api

import (
	"encoding/json"
	"net/http"
)

type Kind string

const (
	KindInvalidInput         Kind = "invalid_input"
	KindUnauthorized         Kind = "unauthorized"
	KindForbidden            Kind = "forbidden"
	KindConflict             Kind = "conflict"
	KindInsufficientCredit   Kind = "insufficient_credit"
	KindNotFound             Kind = "not_found"
	KindInterpretationFailed Kind = "interpretation_failed"
	KindInternal             Kind = "internal"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
	Kind  Kind   `json:"kind"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, kind Kind, message string) {
	WriteJSON(w, status, ErrorBody{Error: message, Kind: kind})
}
