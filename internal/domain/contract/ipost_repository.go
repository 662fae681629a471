package contract

import (
	"context"

	"github.com/mikiasgoitom/likeboard/internal/domain/entity"
)

// IPostRepository provides methods for managing posts and their likes in the database.
type IPostRepository interface {
	CreatePost(ctx context.Context, post *entity.Post) error
	GetPostByID(ctx context.Context, postID string) (*entity.Post, error)
	// ListPosts returns every post, newest first.
	ListPosts(ctx context.Context) ([]*entity.Post, error)
	DeletePost(ctx context.Context, postID string) error
	// ToggleLike flips the client's membership in the liked set and adjusts
	// like_count in one atomic document update, returning the updated post.
	ToggleLike(ctx context.Context, postID string, clientID entity.ClientID) (*entity.Post, error)
}
