package domain

import (
	"context"
	"time"
)

// Post is a short-form content item owned by its author.
type Post struct {
	ID        int64
	Title     string
	Content   string
	AuthorID  int64
	CreatedAt time.Time
}

// PostView is a post with its author's username denormalized in.
type PostView struct {
	ID        int64
	Title     string
	Content   string
	Author    string
	CreatedAt time.Time
}

// PostFilter selects a window of posts in insertion order.
// An empty Author matches every post.
type PostFilter struct {
	Author string
	Limit  int
	Offset int
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id int64) (*Post, error)
	List(ctx context.Context, filter PostFilter) ([]PostView, error)
}
