package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/postboard/internal/domain"
)

// writeDomainError translates a service error into a status code and a
// client-safe message. Anything unrecognised is logged and reported as 500.
func writeDomainError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrDuplicateUser):
		writeError(w, http.StatusBadRequest, "User already exists")
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Incorrect username or password")
	case errors.Is(err, domain.ErrTokenExpired):
		writeError(w, http.StatusUnauthorized, "Token has expired")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, domain.ErrForbidden):
		identity := IdentityFromContext(r.Context())
		attrs := []any{"path", r.URL.Path, "error", err}
		if identity != nil {
			attrs = append(attrs, "user_id", identity.ID)
		}
		slog.Warn(op+" forbidden", attrs...)
		writeError(w, http.StatusForbidden, "Unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	default:
		slog.Error(op, "error", err, "request_id", RequestIDFromContext(r.Context()))
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
	}
}
