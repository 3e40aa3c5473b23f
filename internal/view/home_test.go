package view_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msomdec/postboard/internal/domain"
	"github.com/msomdec/postboard/internal/service"
	"github.com/msomdec/postboard/internal/view"
)

func render(t *testing.T, username, author string, posts []domain.PostView, page int) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, view.HomePage(username, author, posts, page).Render(context.Background(), &buf))
	return buf.String()
}

func TestHomePage_Empty(t *testing.T) {
	html := render(t, "", "", nil, 1)

	assert.Contains(t, html, "No posts yet.")
	assert.NotContains(t, html, `class="user"`)
	assert.NotContains(t, html, `rel="prev"`)
}

func TestHomePage_EscapesUserContent(t *testing.T) {
	posts := []domain.PostView{{
		ID:        1,
		Title:     "<script>alert(1)</script>",
		Content:   `"quoted" & <b>bold</b>`,
		Author:    "alice",
		CreatedAt: time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC),
	}}

	html := render(t, "bob", "", posts, 2)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.NotContains(t, html, "<b>bold</b>")
	assert.Contains(t, html, "2026-03-14 09:26")
	assert.Contains(t, html, `<span class="user">bob</span>`)
	assert.Contains(t, html, `rel="prev" href="/?page=1"`)
	assert.NotContains(t, html, `rel="next"`, "a short page is the last one")
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
}

func TestHomePage_PagerKeepsAuthorFilter(t *testing.T) {
	posts := make([]domain.PostView, service.PageSize)
	for i := range posts {
		posts[i] = domain.PostView{ID: int64(i + 1), Title: "t", Content: "c", Author: "al ice"}
	}

	html := render(t, "", "al ice", posts, 2)

	assert.Contains(t, html, `rel="prev" href="/?author=al+ice&amp;page=1"`)
	assert.Contains(t, html, `rel="next" href="/?author=al+ice&amp;page=3"`)
}
