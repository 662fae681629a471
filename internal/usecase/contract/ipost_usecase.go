package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/likeboard/internal/domain/entity"
)

// IPostUseCase defines the post store operations exposed over HTTP.
type IPostUseCase interface {
	CreatePost(ctx context.Context, title, content, author string) (*entity.Post, error)
	ListPosts(ctx context.Context) ([]*entity.Post, error)
	GetPost(ctx context.Context, postID string) (*entity.Post, error)
	DeletePost(ctx context.Context, postID string) error
}
