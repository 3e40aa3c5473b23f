package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/msomdec/postboard/internal/domain"
)

const (
	// PageSize is the fixed number of posts per listing page.
	PageSize = 2

	maxTitleLength = 100
)

// ContentService handles posts and comments.
type ContentService struct {
	posts    domain.PostRepository
	comments domain.CommentRepository
	users    domain.UserRepository
	authz    *Authorizer
	now      func() time.Time
}

// ContentOption configures a ContentService.
type ContentOption func(*ContentService)

// WithContentClock injects a custom clock for creation timestamps.
func WithContentClock(clock func() time.Time) ContentOption {
	return func(s *ContentService) {
		if clock != nil {
			s.now = clock
		}
	}
}

// NewContentService creates a new ContentService.
func NewContentService(posts domain.PostRepository, comments domain.CommentRepository, users domain.UserRepository, authz *Authorizer, opts ...ContentOption) *ContentService {
	s := &ContentService{
		posts:    posts,
		comments: comments,
		users:    users,
		authz:    authz,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListPosts returns page (1-based, clamped to 1) of posts in insertion
// order, optionally restricted to an exact author username. A page past the
// end, or an unknown author, yields an empty slice.
func (s *ContentService) ListPosts(ctx context.Context, page int, author string) ([]domain.PostView, error) {
	if page < 1 {
		page = 1
	}
	// Past any reachable offset; (page-1)*PageSize would overflow.
	if page > math.MaxInt/PageSize {
		return []domain.PostView{}, nil
	}

	posts, err := s.posts.List(ctx, domain.PostFilter{
		Author: author,
		Limit:  PageSize,
		Offset: (page - 1) * PageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// CreatePost persists a post authored by identity. The author's role is
// re-read from the store so a promotion or demotion after login takes effect
// immediately.
func (s *ContentService) CreatePost(ctx context.Context, identity *domain.Identity, title, content string) (int64, error) {
	if identity == nil {
		return 0, s.authz.Authorize(nil, ActionCreatePost)
	}

	user, err := s.users.GetByID(ctx, identity.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, fmt.Errorf("%w: account no longer exists", domain.ErrUnauthorized)
		}
		return 0, fmt.Errorf("resolve author: %w", err)
	}

	live := user.Identity()
	if err := s.authz.Authorize(&live, ActionCreatePost); err != nil {
		return 0, err
	}

	if err := validatePost(title, content); err != nil {
		return 0, err
	}

	post := &domain.Post{
		Title:     title,
		Content:   content,
		AuthorID:  user.ID,
		CreatedAt: s.now().UTC(),
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return 0, fmt.Errorf("create post: %w", err)
	}
	return post.ID, nil
}

// AddComment attaches a comment by identity to an existing post.
func (s *ContentService) AddComment(ctx context.Context, identity *domain.Identity, postID int64, content string) (int64, error) {
	if err := s.authz.Authorize(identity, ActionAddComment); err != nil {
		return 0, err
	}

	if err := validation.Validate(content, validation.Required); err != nil {
		return 0, fmt.Errorf("%w: content", domain.ErrMissingField)
	}

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return 0, fmt.Errorf("get post %d: %w", postID, err)
	}

	comment := &domain.Comment{
		Content:   content,
		PostID:    postID,
		UserID:    identity.ID,
		CreatedAt: s.now().UTC(),
	}
	// The foreign key still guards a post deleted since the lookup above;
	// repositories report that as ErrNotFound too.
	if err := s.comments.Create(ctx, comment); err != nil {
		return 0, fmt.Errorf("create comment: %w", err)
	}
	return comment.ID, nil
}

// ListComments returns the comments of an existing post, oldest first.
func (s *ContentService) ListComments(ctx context.Context, postID int64) ([]domain.Comment, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, fmt.Errorf("get post %d: %w", postID, err)
	}

	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func validatePost(title, content string) error {
	if err := validation.Validate(title, validation.Required); err != nil {
		return fmt.Errorf("%w: title", domain.ErrMissingField)
	}
	if err := validation.Validate(content, validation.Required); err != nil {
		return fmt.Errorf("%w: content", domain.ErrMissingField)
	}
	if err := validation.Validate(title, validation.RuneLength(1, maxTitleLength)); err != nil {
		return fmt.Errorf("%w: title %v", domain.ErrInvalidInput, err)
	}
	return nil
}
