package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	"community-seva/internal/platform/sentinel"
)

// ErrorResponse is the JSON body for every non-2xx answer.
type ErrorResponse struct {
	Error       string            `json:"error"`
	Description string            `json:"error_description,omitempty"`
	Fields      map[string]string `json:"fields,omitempty"`
}

// WriteJSON encodes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps sentinel errors to statuses. Unknown errors become a 500
// without a description so internals never leak.
func WriteError(w http.ResponseWriter, err error) {
	var verr *sentinel.ValidationError
	switch {
	case errors.As(err, &verr):
		WriteJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:       "validation_failed",
			Description: "one or more fields are invalid",
			Fields:      verr.Fields,
		})
	case errors.Is(err, sentinel.ErrValidation):
		WriteJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "validation_failed", Description: err.Error()})
	case errors.Is(err, sentinel.ErrNotFound):
		WriteJSON(w, http.StatusNotFound, ErrorResponse{Error: "not_found", Description: err.Error()})
	case errors.Is(err, sentinel.ErrUnsupported):
		WriteJSON(w, http.StatusUnsupportedMediaType, ErrorResponse{Error: "unsupported", Description: err.Error()})
	case errors.Is(err, sentinel.ErrUnavailable):
		WriteJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "unavailable", Description: err.Error()})
	default:
		WriteJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal_error"})
	}
}

// BadRequest answers a malformed request body.
func BadRequest(w http.ResponseWriter, description string) {
	WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: "bad_request", Description: description})
}

// DecodeJSON reads a size-limited JSON body, rejecting unknown fields.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
