package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/msomdec/postboard/internal/domain"
	"github.com/msomdec/postboard/internal/service"
)

// AdminHandler exposes administrative user management.
type AdminHandler struct {
	auth  *service.AuthService
	authz *service.Authorizer
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(auth *service.AuthService, authz *service.Authorizer) *AdminHandler {
	return &AdminHandler{auth: auth, authz: authz}
}

// HandleAssignRole changes a user's role. The caller's role is re-read from
// the store so a revoked admin cannot act on a still-valid token.
// PATCH /api/admin/users/{id}/role
// Request:  {"role":"author"}
// Response: {"user":{...}}
func (h *AdminHandler) HandleAssignRole(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())
	if identity == nil {
		writeDomainError(w, r, "assign role", domain.ErrUnauthorized)
		return
	}

	caller, err := h.auth.GetUserByID(r.Context(), identity.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			err = fmt.Errorf("%w: account no longer exists", domain.ErrUnauthorized)
		}
		writeDomainError(w, r, "assign role", err)
		return
	}
	live := caller.Identity()
	if err := h.authz.Authorize(&live, service.ActionAssignRole); err != nil {
		writeDomainError(w, r, "assign role", err)
		return
	}

	userID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	var req struct {
		Role string `json:"role"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, err := h.auth.AssignRole(r.Context(), userID, req.Role)
	if err != nil {
		writeDomainError(w, r, "assign role", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user": toUserDTO(user),
	})
}
