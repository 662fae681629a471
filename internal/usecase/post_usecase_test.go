package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mikiasgoitom/likeboard/internal/domain/entity"
	"github.com/mikiasgoitom/likeboard/internal/domain/errs"
	"github.com/mikiasgoitom/likeboard/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePost(t *testing.T) {
	repo := newMemoryPostRepo()
	cache := newMemoryCache()
	events := &recordingPublisher{}
	uc := usecase.NewPostUsecase(repo, &sequenceUUID{}, &testLogger{})
	uc.SetPostCache(cache)
	uc.SetEventPublisher(events)

	post, err := uc.CreatePost(context.Background(), " Title ", "hello", "me")

	require.NoError(t, err)
	assert.Equal(t, "post-1", post.ID)
	assert.Equal(t, "Title", post.Title)
	assert.Equal(t, 0, post.LikeCount)
	assert.NotNil(t, post.LikedBy)
	assert.False(t, post.CreatedAt.IsZero())
	assert.Equal(t, post.CreatedAt, post.UpdatedAt)
	assert.Equal(t, []string{"list"}, cache.invalidated)
	assert.Equal(t, []entity.EventType{entity.EventPostCreated}, events.types())

	stored, err := repo.GetPostByID(context.Background(), "post-1")
	require.NoError(t, err)
	assert.Equal(t, "hello", stored.Content)
}

func TestCreatePost_ContentRequired(t *testing.T) {
	repo := newMemoryPostRepo()
	uc := usecase.NewPostUsecase(repo, &sequenceUUID{}, &testLogger{})

	_, err := uc.CreatePost(context.Background(), "t", "  \n", "me")

	assert.ErrorIs(t, err, errs.ContentRequired)
	posts, _ := repo.ListPosts(context.Background())
	assert.Empty(t, posts)
}

func TestCreatePost_StorageFailure(t *testing.T) {
	repo := newMemoryPostRepo()
	repo.failWith = errors.New("write concern")
	uc := usecase.NewPostUsecase(repo, &sequenceUUID{}, &testLogger{})

	_, err := uc.CreatePost(context.Background(), "", "hello", "")

	assert.ErrorIs(t, err, errs.StorageUnavailable)
}

func TestListPosts_NewestFirst(t *testing.T) {
	old := newPost("old")
	old.CreatedAt = time.Now().Add(-time.Hour)
	repo := newMemoryPostRepo(old, newPost("new"))
	uc := usecase.NewPostUsecase(repo, &sequenceUUID{}, &testLogger{})

	posts, err := uc.ListPosts(context.Background())

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "new", posts[0].ID)
}

func TestListPosts_EmptyIsNotNil(t *testing.T) {
	uc := usecase.NewPostUsecase(newMemoryPostRepo(), &sequenceUUID{}, &testLogger{})

	posts, err := uc.ListPosts(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestListPosts_ReadThroughCache(t *testing.T) {
	repo := newMemoryPostRepo(newPost("p1"))
	cache := newMemoryCache()
	uc := usecase.NewPostUsecase(repo, &sequenceUUID{}, &testLogger{})
	uc.SetPostCache(cache)

	first, err := uc.ListPosts(context.Background())
	require.NoError(t, err)
	require.True(t, cache.hasList)

	// served from cache once populated
	repo.failWith = errors.New("db down")
	second, err := uc.ListPosts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestListPosts_CacheFailureFallsBackToRepo(t *testing.T) {
	repo := newMemoryPostRepo(newPost("p1"))
	cache := newMemoryCache()
	cache.failReads = true
	logger := &testLogger{}
	uc := usecase.NewPostUsecase(repo, &sequenceUUID{}, logger)
	uc.SetPostCache(cache)

	posts, err := uc.ListPosts(context.Background())

	require.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.True(t, logger.warned("cache read failed"))
}

func TestGetPost(t *testing.T) {
	repo := newMemoryPostRepo(newPost("p1"))
	cache := newMemoryCache()
	uc := usecase.NewPostUsecase(repo, &sequenceUUID{}, &testLogger{})
	uc.SetPostCache(cache)

	post, err := uc.GetPost(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", post.ID)
	assert.Contains(t, cache.posts, "p1")

	_, err = uc.GetPost(context.Background(), "missing")
	assert.ErrorIs(t, err, errs.NotFound)
	assert.NotContains(t, cache.posts, "missing")
}

func TestToggleAfterGet_InvalidatesStaleDetail(t *testing.T) {
	repo := newMemoryPostRepo(newPost("p1"))
	cache := newMemoryCache()
	posts := usecase.NewPostUsecase(repo, &sequenceUUID{}, &testLogger{})
	posts.SetPostCache(cache)
	likes := usecase.NewLikeUsecase(repo, &testLogger{})
	likes.SetPostCache(cache)

	_, err := posts.GetPost(context.Background(), "p1")
	require.NoError(t, err)
	_, err = likes.ToggleLike(context.Background(), "p1", "a")
	require.NoError(t, err)

	post, err := posts.GetPost(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, post.LikeCount)
	assert.True(t, post.IsLikedBy("a"))
}

func TestDeletePost(t *testing.T) {
	repo := newMemoryPostRepo(newPost("p1"))
	cache := newMemoryCache()
	events := &recordingPublisher{}
	uc := usecase.NewPostUsecase(repo, &sequenceUUID{}, &testLogger{})
	uc.SetPostCache(cache)
	uc.SetEventPublisher(events)

	require.NoError(t, uc.DeletePost(context.Background(), "p1"))
	assert.Equal(t, []string{"post:p1", "list"}, cache.invalidated)
	assert.Equal(t, []entity.EventType{entity.EventPostDeleted}, events.types())

	_, err := uc.GetPost(context.Background(), "p1")
	assert.ErrorIs(t, err, errs.NotFound)

	err = uc.DeletePost(context.Background(), "p1")
	assert.ErrorIs(t, err, errs.NotFound)
	assert.Len(t, events.types(), 1)
}
