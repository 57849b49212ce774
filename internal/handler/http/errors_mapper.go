package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-factory-planner/internal/logger"
	"github.com/MKhiriev/go-factory-planner/internal/service"
	"github.com/MKhiriev/go-factory-planner/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidPayload:          http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrRefreshTokenInvalid:     http.StatusUnauthorized,
	service.ErrNotGameOwner:            http.StatusForbidden,
	service.ErrNoGameAccess:            http.StatusForbidden,
	service.ErrGameNotFound:            http.StatusNotFound,
	service.ErrLoginAlreadyTaken:       http.StatusConflict,

	ErrInvalidQueryParam: http.StatusBadRequest,
	ErrNoUserInContext:   http.StatusUnauthorized,

	store.ErrLoginAlreadyExists:   http.StatusConflict,
	store.ErrGameNotFound:         http.StatusNotFound,
	store.ErrRefreshTokenNotFound: http.StatusUnauthorized,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// statusFromError maps service and store errors to HTTP status codes.
// Unknown errors are 500.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the mapped status. Internal errors
// never leak their text to the caller.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg(msg)
	http.Error(w, err.Error(), status)
}
