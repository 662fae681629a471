package contract

import (
	"context"

	"github.com/mikiasgoitom/likeboard/internal/domain/entity"
)

// IPostCache defines read-through caching operations for posts.
type IPostCache interface {
	// Detail (by id)
	GetPost(ctx context.Context, postID string) (*entity.Post, bool, error)
	SetPost(ctx context.Context, post *entity.Post) error
	InvalidatePost(ctx context.Context, postID string) error

	// Full list
	GetPostList(ctx context.Context) ([]*entity.Post, bool, error)
	SetPostList(ctx context.Context, posts []*entity.Post) error
	InvalidatePostList(ctx context.Context) error
}
