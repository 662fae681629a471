package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/mikiasgoitom/likeboard/internal/domain/entity"
	"github.com/mikiasgoitom/likeboard/internal/domain/errs"
	usecasecontract "github.com/mikiasgoitom/likeboard/internal/usecase/contract"
)

// MockPostUsecase is a mock implementation of the IPostUseCase interface
type MockPostUsecase struct {
	// Control mock behavior
	ShouldFailCreatePost bool
	ShouldFailListPosts  bool
	ShouldFailGetPost    bool
	ShouldFailDeletePost bool
	// FailWith overrides the generic failure error.
	FailWith error

	// Return values
	MockPost entity.Post

	CreateCalls int
}

var _ usecasecontract.IPostUseCase = (*MockPostUsecase)(nil)

func NewMockPostUsecase() *MockPostUsecase {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	return &MockPostUsecase{
		MockPost: entity.Post{
			ID:        "mock-post-id",
			Title:     "Hello",
			Content:   "first post",
			Author:    "tester",
			LikeCount: 1,
			LikedBy:   []entity.ClientID{"user_1_abc"},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

func (m *MockPostUsecase) fail(fallback error) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	return fallback
}

func (m *MockPostUsecase) CreatePost(ctx context.Context, title, content, author string) (*entity.Post, error) {
	m.CreateCalls++
	if m.ShouldFailCreatePost {
		return nil, m.fail(errors.New("create post failed"))
	}
	post := m.MockPost
	post.Title, post.Content, post.Author = title, content, author
	post.LikeCount, post.LikedBy = 0, []entity.ClientID{}
	return &post, nil
}

func (m *MockPostUsecase) ListPosts(ctx context.Context) ([]*entity.Post, error) {
	if m.ShouldFailListPosts {
		return nil, m.fail(errors.New("list posts failed"))
	}
	post := m.MockPost
	return []*entity.Post{&post}, nil
}

func (m *MockPostUsecase) GetPost(ctx context.Context, postID string) (*entity.Post, error) {
	if m.ShouldFailGetPost {
		return nil, m.fail(errs.NotFound)
	}
	post := m.MockPost
	post.ID = postID
	return &post, nil
}

func (m *MockPostUsecase) DeletePost(ctx context.Context, postID string) error {
	if m.ShouldFailDeletePost {
		return m.fail(errs.NotFound)
	}
	return nil
}
