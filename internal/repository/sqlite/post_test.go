package sqlite_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/msomdec/postboard/internal/domain"
	"github.com/msomdec/postboard/internal/repository/sqlite"
)

func createPost(t *testing.T, repo *sqlite.PostRepository, authorID int64, title string) *domain.Post {
	t.Helper()
	post := &domain.Post{Title: title, Content: "body of " + title, AuthorID: authorID}
	if err := repo.Create(context.Background(), post); err != nil {
		t.Fatalf("Create post %s: %v", title, err)
	}
	return post
}

func TestPostRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewPostRepository(db)
	ctx := context.Background()

	author := createUser(t, db, "alice", domain.RoleAuthor)
	post := createPost(t, repo, author.ID, "Hello")

	if post.ID == 0 {
		t.Fatal("expected post ID to be set")
	}
	if post.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}

	found, err := repo.GetByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if found.Title != "Hello" || found.AuthorID != author.ID {
		t.Fatalf("unexpected post: %+v", found)
	}
}

func TestPostRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewPostRepository(db)

	_, err := repo.GetByID(context.Background(), 42)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostRepository_Create_UnknownAuthor(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewPostRepository(db)

	err := repo.Create(context.Background(), &domain.Post{Title: "t", Content: "c", AuthorID: 777})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostRepository_List_Pagination(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewPostRepository(db)
	ctx := context.Background()

	author := createUser(t, db, "alice", domain.RoleAuthor)
	for i := 1; i <= 5; i++ {
		createPost(t, repo, author.ID, fmt.Sprintf("post %d", i))
	}

	tests := []struct {
		offset int
		want   []string
	}{
		{0, []string{"post 1", "post 2"}},
		{2, []string{"post 3", "post 4"}},
		{4, []string{"post 5"}},
		{6, nil},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("offset %d", tc.offset), func(t *testing.T) {
			views, err := repo.List(ctx, domain.PostFilter{Limit: 2, Offset: tc.offset})
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if views == nil {
				t.Fatal("expected non-nil slice")
			}
			if len(views) != len(tc.want) {
				t.Fatalf("expected %d posts, got %d", len(tc.want), len(views))
			}
			for i, v := range views {
				if v.Title != tc.want[i] {
					t.Fatalf("position %d: expected %q, got %q", i, tc.want[i], v.Title)
				}
				if v.Author != "alice" {
					t.Fatalf("expected author alice, got %q", v.Author)
				}
			}
		})
	}
}

func TestPostRepository_List_AuthorFilter(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewPostRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice", domain.RoleAuthor)
	alicia := createUser(t, db, "alicia", domain.RoleAuthor)
	createPost(t, repo, alice.ID, "a1")
	createPost(t, repo, alicia.ID, "b1")
	createPost(t, repo, alice.ID, "a2")

	views, err := repo.List(ctx, domain.PostFilter{Author: "alice", Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(views) != 2 || views[0].Title != "a1" || views[1].Title != "a2" {
		t.Fatalf("unexpected views: %+v", views)
	}

	// Exact match only: a prefix of a username matches nothing.
	views, err = repo.List(ctx, domain.PostFilter{Author: "ali", Limit: 10})
	if err != nil {
		t.Fatalf("List prefix: %v", err)
	}
	if len(views) != 0 {
		t.Fatalf("expected no posts for partial username, got %d", len(views))
	}
}
