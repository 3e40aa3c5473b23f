package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/msomdec/postboard/internal/domain"
)

// CommentRepository implements domain.CommentRepository using Postgres.
type CommentRepository struct {
	pool *pgxpool.Pool
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}

	err := r.pool.QueryRow(ctx,
		`INSERT INTO comments (content, post_id, user_id, created_at)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		comment.Content, comment.PostID, comment.UserID, comment.CreatedAt,
	).Scan(&comment.ID)
	if err != nil {
		if pgErrorCode(err) == codeForeignKeyViolation {
			return fmt.Errorf("%w: post %d or user %d", domain.ErrNotFound, comment.PostID, comment.UserID)
		}
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, content, post_id, user_id, created_at
		 FROM comments WHERE post_id = $1 ORDER BY id ASC`, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.Content, &c.PostID, &c.UserID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
