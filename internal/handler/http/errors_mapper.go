package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/trademark-relay/internal/validators"
)

// statusFromError maps relay errors to HTTP statuses. Only caller input
// errors are client errors; browser, challenge and upstream failures are
// all reported as 500.
func statusFromError(err error) int {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// errorMessage returns the text sent to the caller. Validation failures are
// reported without the stage prefix since the caller only needs the reason.
func errorMessage(err error) string {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Error()
	}
	return err.Error()
}
