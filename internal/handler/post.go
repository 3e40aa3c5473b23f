package handler

import (
	"net/http"
	"strconv"

	"github.com/msomdec/postboard/internal/service"
)

// PostHandler serves posts and their comments.
type PostHandler struct {
	content *service.ContentService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(content *service.ContentService) *PostHandler {
	return &PostHandler{content: content}
}

// HandleList returns one page of posts, optionally filtered by author.
// GET /api/posts?page=N&author=NAME
func (h *PostHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page := parsePage(r.URL.Query().Get("page"))
	author := r.URL.Query().Get("author")

	posts, err := h.content.ListPosts(r.Context(), page, author)
	if err != nil {
		writeDomainError(w, r, "list posts", err)
		return
	}

	writeJSON(w, http.StatusOK, toPostDTOs(posts))
}

// HandleCreate creates a post authored by the caller.
// POST /api/posts
// Request:  {"title":"...","content":"..."}
// Response: {"msg":"...","id":N}
func (h *PostHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	id, err := h.content.CreatePost(r.Context(), IdentityFromContext(r.Context()), req.Title, req.Content)
	if err != nil {
		writeDomainError(w, r, "create post", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"msg": "Post created successfully",
		"id":  id,
	})
}

// HandleAddComment attaches a comment to a post.
// POST /api/posts/{id}/comments
// Request:  {"content":"..."}
// Response: {"msg":"...","id":N}
func (h *PostHandler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	id, err := h.content.AddComment(r.Context(), IdentityFromContext(r.Context()), postID, req.Content)
	if err != nil {
		writeDomainError(w, r, "add comment", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"msg": "Comment added successfully",
		"id":  id,
	})
}

// HandleListComments returns all comments on a post.
// GET /api/posts/{id}/comments
func (h *PostHandler) HandleListComments(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	comments, err := h.content.ListComments(r.Context(), postID)
	if err != nil {
		writeDomainError(w, r, "list comments", err)
		return
	}

	writeJSON(w, http.StatusOK, toCommentDTOs(comments))
}

// parsePage reads the page query parameter; anything unparsable means page 1.
func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
