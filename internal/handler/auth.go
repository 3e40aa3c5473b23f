package handler

import (
	"net/http"

	"github.com/msomdec/postboard/internal/service"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	auth   *service.AuthService
	tokens *service.TokenService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, tokens *service.TokenService) *AuthHandler {
	return &AuthHandler{auth: auth, tokens: tokens}
}

// HandleRegister processes a JSON registration request.
// POST /api/register
// Request:  {"username":"...","email":"...","password":"..."}
// Response: {"msg":"...","user":{...}}
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, err := h.auth.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeDomainError(w, r, "register user", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"msg":  "You have successfully registered!",
		"user": toUserDTO(user),
	})
}

// HandleLogin exchanges credentials for a signed access token.
// POST /api/login
// Request:  {"username":"...","password":"..."}
// Response: {"access_token":"...","token_type":"Bearer","expires_in":3600}
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	identity, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeDomainError(w, r, "login user", err)
		return
	}

	token, err := h.tokens.Issue(identity)
	if err != nil {
		writeDomainError(w, r, "issue token", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_in":   int(service.TokenTTL.Seconds()),
	})
}

// HandleMe returns the identity carried by the presented token.
// GET /api/me
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	writeJSON(w, http.StatusOK, IdentityDTO{
		ID:       identity.ID,
		Username: identity.Username,
		Role:     string(identity.Role),
	})
}
