package http

import (
	"errors"
	"net/http"

	"tesla-buddy/internal/session"
	pkgErrors "tesla-buddy/pkg/errors"
)

var (
	errSessionNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "checklist session not found")
	errInvalidSource   = pkgErrors.NewHTTPError(http.StatusBadRequest, "source_url must be an http(s) URL and cannot be combined with content")
	errUnknownItem     = pkgErrors.NewHTTPError(http.StatusNotFound, "checklist item not found")
	errReadOnly        = pkgErrors.NewHTTPError(http.StatusConflict, "checklist session is read-only")
	errIDRequired      = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors become 500s.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return errSessionNotFound
	case errors.Is(err, session.ErrInvalidSource):
		return errInvalidSource
	case errors.Is(err, session.ErrUnknownItem):
		return errUnknownItem
	case errors.Is(err, session.ErrReadOnly):
		return errReadOnly
	default:
		return pkgErrors.ErrInternalServerError
	}
}
