package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/msomdec/postboard/internal/domain"
)

// PostRepository implements domain.PostRepository using SQLite.
type PostRepository struct {
	db *sql.DB
}

// NewPostRepository creates a new SQLite-backed PostRepository.
func NewPostRepository(db *DB) *PostRepository {
	return &PostRepository{db: db.SqlDB}
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO posts (title, content, author_id, created_at) VALUES (?, ?, ?, ?)`,
		post.Title, post.Content, post.AuthorID, post.CreatedAt,
	)
	if err != nil {
		if isForeignKeyError(err) {
			return fmt.Errorf("%w: author %d", domain.ErrNotFound, post.AuthorID)
		}
		return fmt.Errorf("insert post: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get post id: %w", err)
	}

	post.ID = id
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	p := &domain.Post{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, content, author_id, created_at FROM posts WHERE id = ?`, id,
	).Scan(&p.ID, &p.Title, &p.Content, &p.AuthorID, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	return p, nil
}

// List returns posts in insertion order with the author's username joined in.
func (r *PostRepository) List(ctx context.Context, filter domain.PostFilter) ([]domain.PostView, error) {
	var (
		query strings.Builder
		args  []any
	)
	query.WriteString(`SELECT p.id, p.title, p.content, u.username, p.created_at
		 FROM posts p
		 JOIN users u ON u.id = p.author_id`)
	if filter.Author != "" {
		query.WriteString(` WHERE u.username = ?`)
		args = append(args, filter.Author)
	}
	query.WriteString(` ORDER BY p.id ASC LIMIT ? OFFSET ?`)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query.String(), args...)
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
