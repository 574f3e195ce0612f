package http

import (
	"errors"
	"net/http"

	"github.com/avkarpov/itemvault/internal/logger"
	"github.com/avkarpov/itemvault/internal/service"
	"github.com/avkarpov/itemvault/internal/store"
	"github.com/avkarpov/itemvault/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInactiveUser:        http.StatusBadRequest,
	store.ErrEmailAlreadyExists:    http.StatusBadRequest,

	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrTokenIsExpired:     http.StatusUnauthorized,
	service.ErrTokenIsInvalid:     http.StatusUnauthorized,
	service.ErrWrongTokenType:     http.StatusUnauthorized,

	service.ErrForbidden: http.StatusForbidden,

	store.ErrUserNotFound: http.StatusNotFound,
	store.ErrItemNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// statusFromError resolves a (possibly wrapped) error to an HTTP status and
// the detail message exposed to the client. Unrecognised errors collapse to
// a generic 500 so that internals never leak into responses.
func statusFromError(err error) (int, string) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			if status == http.StatusInternalServerError {
				return status, http.StatusText(http.StatusInternalServerError)
			}
			return status, target.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError logs err and writes the mapped status with the standard
// {"detail": "..."} body.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := statusFromError(err)

	log := logger.FromRequest(r)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed with internal error")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSONError(w, detail, status)
}
