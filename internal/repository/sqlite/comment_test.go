package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msomdec/postboard/internal/domain"
	"github.com/msomdec/postboard/internal/repository/sqlite"
)

func TestCommentRepository_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	posts := sqlite.NewPostRepository(db)
	comments := sqlite.NewCommentRepository(db)
	ctx := context.Background()

	author := createUser(t, db, "alice", domain.RoleAuthor)
	reader := createUser(t, db, "bob", domain.RoleReader)
	post := createPost(t, posts, author.ID, "Hello")

	for _, body := range []string{"first", "second"} {
		c := &domain.Comment{Content: body, PostID: post.ID, UserID: reader.ID}
		if err := comments.Create(ctx, c); err != nil {
			t.Fatalf("Create comment: %v", err)
		}
		if c.ID == 0 {
			t.Fatal("expected comment ID to be set")
		}
	}

	list, err := comments.ListByPost(ctx, post.ID)
	if err != nil {
		t.Fatalf("ListByPost: %v", err)
	}
	if len(list) != 2 || list[0].Content != "first" || list[1].Content != "second" {
		t.Fatalf("unexpected comments: %+v", list)
	}
	if list[0].UserID != reader.ID {
		t.Fatalf("expected commenter %d, got %d", reader.ID, list[0].UserID)
	}
}

func TestCommentRepository_Create_MissingPost(t *testing.T) {
	db := newTestDB(t)
	comments := sqlite.NewCommentRepository(db)

	reader := createUser(t, db, "bob", domain.RoleReader)

	err := comments.Create(context.Background(), &domain.Comment{Content: "hi", PostID: 404, UserID: reader.ID})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound from foreign key, got %v", err)
	}
}

func TestCommentRepository_CascadeOnPostDelete(t *testing.T) {
	db := newTestDB(t)
	posts := sqlite.NewPostRepository(db)
	comments := sqlite.NewCommentRepository(db)
	ctx := context.Background()

	author := createUser(t, db, "alice", domain.RoleAuthor)
	post := createPost(t, posts, author.ID, "Hello")
	if err := comments.Create(ctx, &domain.Comment{Content: "hi", PostID: post.ID, UserID: author.ID}); err != nil {
		t.Fatalf("Create comment: %v", err)
	}

	if _, err := db.SqlDB.ExecContext(ctx, "DELETE FROM users WHERE id = ?", author.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	list, err := comments.ListByPost(ctx, post.ID)
	if err != nil {
		t.Fatalf("ListByPost: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected comments to cascade, got %d", len(list))
	}
}
