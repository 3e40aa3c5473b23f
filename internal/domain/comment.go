package domain

import (
	"context"
	"time"
)

// Comment is feedback attached to a post by any authenticated user.
type Comment struct {
	ID        int64
	Content   string
	PostID    int64
	UserID    int64
	CreatedAt time.Time
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	// Create inserts the comment. A missing post or user yields ErrNotFound.
	Create(ctx context.Context, comment *Comment) error
	ListByPost(ctx context.Context, postID int64) ([]Comment, error)
}
