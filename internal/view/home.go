// Package view holds the server-rendered HTML pages.
package view

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/msomdec/postboard/internal/domain"
	"github.com/msomdec/postboard/internal/service"
)

// HomePage renders one page of the public feed, optionally filtered to
// author. username is empty for anonymous visitors.
func HomePage(username, author string, posts []domain.PostView, page int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.WriteString(`<title>postboard</title></head><body>`)

		b.WriteString(`<nav><a href="/">postboard</a>`)
		if username != "" {
			fmt.Fprintf(&b, ` <span class="user">%s</span>`, templ.EscapeString(username))
		}
		b.WriteString(`</nav><main>`)

		if len(posts) == 0 {
			b.WriteString(`<p class="empty">No posts yet.</p>`)
		}
		for _, p := range posts {
			b.WriteString(`<article class="post">`)
			fmt.Fprintf(&b, `<h2>%s</h2>`, templ.EscapeString(p.Title))
			fmt.Fprintf(&b, `<p class="meta">by <a href="/?author=%s">%s</a> on %s</p>`,
				templ.EscapeString(url.QueryEscape(p.Author)),
				templ.EscapeString(p.Author),
				p.CreatedAt.UTC().Format("2006-01-02 15:04"))
			fmt.Fprintf(&b, `<p>%s</p>`, templ.EscapeString(p.Content))
			b.WriteString(`</article>`)
		}

		b.WriteString(`<nav class="pager">`)
		if page > 1 {
			fmt.Fprintf(&b, `<a rel="prev" href="%s">Newer</a> `, templ.EscapeString(pageURL(author, page-1)))
		}
		if len(posts) == service.PageSize {
			fmt.Fprintf(&b, `<a rel="next" href="%s">Older</a>`, templ.EscapeString(pageURL(author, page+1)))
		}
		b.WriteString(`</nav></main></body></html>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func pageURL(author string, page int) string {
	q := url.Values{"page": {strconv.Itoa(page)}}
	if author != "" {
		q.Set("author", author)
	}
	return "/?" + q.Encode()
}
