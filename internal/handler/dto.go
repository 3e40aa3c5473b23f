package handler

import (
	"time"

	"github.com/msomdec/postboard/internal/domain"
)

// UserDTO is the JSON representation of a user. The password hash is never
// serialized.
type UserDTO struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// IdentityDTO is the JSON representation of a token's claims.
type IdentityDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// PostDTO is the JSON representation of a listed post.
type PostDTO struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	CreatedAt string `json:"created_at"`
}

func toPostDTOs(views []domain.PostView) []PostDTO {
	dtos := make([]PostDTO, len(views))
	for i, v := range views {
		dtos[i] = PostDTO{
			ID:        v.ID,
			Title:     v.Title,
			Content:   v.Content,
			Author:    v.Author,
			CreatedAt: v.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	return dtos
}

// CommentDTO is the JSON representation of a comment.
type CommentDTO struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	PostID    int64  `json:"post_id"`
	UserID    int64  `json:"user_id"`
	CreatedAt string `json:"created_at"`
}

func toCommentDTOs(comments []domain.Comment) []CommentDTO {
	dtos := make([]CommentDTO, len(comments))
	for i, c := range comments {
		dtos[i] = CommentDTO{
			ID:        c.ID,
			Content:   c.Content,
			PostID:    c.PostID,
			UserID:    c.UserID,
			CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	return dtos
}
