// Package httperr maps domain errors to HTTP status codes. It replaces the
// usual temptation to match on error message substrings with errors.Is over
// the service sentinels.
package httperr

import (
	"errors"
	"net/http"

	"mediarate/internal/api/service"
)

// Status resolves a service error to its transport status code.
func Status(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrUsernameTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
