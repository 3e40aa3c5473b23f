package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/msomdec/postboard/internal/domain"
)

// PostRepository implements domain.PostRepository using Postgres.
type PostRepository struct {
	pool *pgxpool.Pool
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}

	err := r.pool.QueryRow(ctx,
		`INSERT INTO posts (title, content, author_id, created_at)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		post.Title, post.Content, post.AuthorID, post.CreatedAt,
	).Scan(&post.ID)
	if err != nil {
		if pgErrorCode(err) == codeForeignKeyViolation {
			return fmt.Errorf("%w: author %d", domain.ErrNotFound, post.AuthorID)
		}
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	p := &domain.Post{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, content, author_id, created_at FROM posts WHERE id = $1`, id,
	).Scan(&p.ID, &p.Title, &p.Content, &p.AuthorID, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	return p, nil
}

func (r *PostRepository) List(ctx context.Context, filter domain.PostFilter) ([]domain.PostView, error) {
	var (
		query strings.Builder
		args  []any
	)
	query.WriteString(`SELECT p.id, p.title, p.content, u.username, p.created_at
		 FROM posts p
		 JOIN users u ON u.id = p.author_id`)
	if filter.Author != "" {
		args = append(args, filter.Author)
		query.WriteString(` WHERE u.username = $1`)
	}
	args = append(args, filter.Limit, filter.Offset)
	query.WriteString(` ORDER BY p.id ASC LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args)))

	rows, err := r.pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := []domain.PostView{}
	for rows.Next() {
		var v domain.PostView
		if err := rows.Scan(&v.ID, &v.Title, &v.Content, &v.Author, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, v)
	}
	return posts, rows.Err()
}
