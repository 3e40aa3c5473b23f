package handler

import (
	"net/http"

	"github.com/msomdec/postboard/internal/service"
)

// Services bundles what the HTTP layer needs.
type Services struct {
	Auth    *service.AuthService
	Tokens  *service.TokenService
	Content *service.ContentService
	Authz   *service.Authorizer
}

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, svc Services) {
	authHandler := NewAuthHandler(svc.Auth, svc.Tokens)
	postHandler := NewPostHandler(svc.Content)
	adminHandler := NewAdminHandler(svc.Auth, svc.Authz)
	homeHandler := NewHomeHandler(svc.Content)

	requireAuth := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(svc.Tokens, h)
	}

	mux.HandleFunc("GET /healthz", HandleHealthz)
	mux.Handle("GET /{$}", OptionalAuth(svc.Tokens, http.HandlerFunc(homeHandler.HandleHome)))

	// Auth API
	mux.HandleFunc("POST /api/register", authHandler.HandleRegister)
	mux.HandleFunc("POST /api/login", authHandler.HandleLogin)
	mux.Handle("GET /api/me", requireAuth(authHandler.HandleMe))

	// Content API
	mux.HandleFunc("GET /api/posts", postHandler.HandleList)
	mux.Handle("POST /api/posts", requireAuth(postHandler.HandleCreate))
	mux.HandleFunc("GET /api/posts/{id}/comments", postHandler.HandleListComments)
	mux.Handle("POST /api/posts/{id}/comments", requireAuth(postHandler.HandleAddComment))

	// Admin API
	mux.Handle("PATCH /api/admin/users/{id}/role", requireAuth(adminHandler.HandleAssignRole))
}

// Wrap applies the middleware chain shared by every route.
func Wrap(h http.Handler) http.Handler {
	return RequestLogger(SecurityHeaders(h))
}
