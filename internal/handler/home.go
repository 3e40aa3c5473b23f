package handler

import (
	"log/slog"
	"net/http"

	"github.com/msomdec/postboard/internal/service"
	"github.com/msomdec/postboard/internal/view"
)

// HomeHandler renders the public feed.
type HomeHandler struct {
	content *service.ContentService
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(content *service.ContentService) *HomeHandler {
	return &HomeHandler{content: content}
}

// HandleHome renders the home page.
func (h *HomeHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	username := ""
	if identity := IdentityFromContext(r.Context()); identity != nil {
		username = identity.Username
	}

	page := parsePage(r.URL.Query().Get("page"))
	author := r.URL.Query().Get("author")
	posts, err := h.content.ListPosts(r.Context(), page, author)
	if err != nil {
		writeDomainError(w, r, "render home", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.HomePage(username, author, posts, page).Render(r.Context(), w); err != nil {
		slog.Error("render home", "error", err)
	}
}
