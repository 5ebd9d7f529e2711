package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/iho/ledgerpost/internal/adapter/http/dto"
	"github.com/iho/ledgerpost/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownTenant):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnknownEntry):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnknownMovement):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidDocument):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidDate):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrSchemaMismatch):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrEmptyPosting):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnbalancedEntry):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrUnbalancedAdjustment):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNonMonotonicAdjustment):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}
