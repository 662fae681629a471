package dto

import (
	"time"

	"github.com/mikiasgoitom/likeboard/internal/domain/entity"
)

// CreatePostRequest defines the structure for creating a new post
type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content" binding:"required,notblank"`
	Author  string `json:"author"`
}

// PostResponse defines the standard JSON response for a single post.
// Liked is computed for the calling client; the liked set itself is not
// exposed.
type PostResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	LikeCount int       `json:"likeCount"`
	Liked     bool      `json:"liked"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LikeResponse is returned by the toggle and status endpoints.
type LikeResponse struct {
	Message   string `json:"message,omitempty"`
	PostID    string `json:"postId"`
	Liked     bool   `json:"liked"`
	LikeCount int    `json:"likeCount"`
}

// ToPostResponse converts an entity.Post for the given caller.
func ToPostResponse(post *entity.Post, caller entity.ClientID) PostResponse {
	return PostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Author:    post.Author,
		LikeCount: post.LikeCount,
		Liked:     post.IsLikedBy(caller),
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

func ToPostResponses(posts []*entity.Post, caller entity.ClientID) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, ToPostResponse(p, caller))
	}
	return out
}

func ToLikeResponse(r entity.ToggleResult, message string) LikeResponse {
	return LikeResponse{
		Message:   message,
		PostID:    r.PostID,
		Liked:     r.Liked(),
		LikeCount: r.LikeCount,
	}
}
