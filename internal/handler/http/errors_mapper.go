package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/booknotes/internal/service"
	"github.com/MKhiriev/booknotes/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:     http.StatusBadRequest,
	service.ErrWrongPassword:  http.StatusBadRequest,
	service.ErrForbidden:      http.StatusForbidden,
	service.ErrSessionInvalid: http.StatusBadRequest,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrBookEntryNotFound:     http.StatusNotFound,
	store.ErrNoBookWasFound:        http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
