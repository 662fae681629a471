package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mikiasgoitom/likeboard/internal/domain/contract"
	"github.com/mikiasgoitom/likeboard/internal/domain/entity"
	"github.com/mikiasgoitom/likeboard/internal/domain/errs"
	"github.com/mikiasgoitom/likeboard/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/likeboard/internal/usecase/contract"
)

// PostUsecase implements the post store operations.
type PostUsecase struct {
	postRepo  contract.IPostRepository
	uuidgen   contract.IUUIDGenerator
	logger    usecasecontract.IAppLogger
	postCache contract.IPostCache
	events    contract.IEventPublisher
}

// NewPostUsecase creates a new instance of PostUsecase
func NewPostUsecase(postRepo contract.IPostRepository, uuidgen contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *PostUsecase {
	return &PostUsecase{
		postRepo: postRepo,
		uuidgen:  uuidgen,
		logger:   logger,
	}
}

// check if PostUsecase implements the IPostUseCase
var _ usecasecontract.IPostUseCase = (*PostUsecase)(nil)

// separate post instance for cache injection
func (uc *PostUsecase) SetPostCache(cache contract.IPostCache) {
	uc.postCache = cache
}

func (uc *PostUsecase) SetEventPublisher(p contract.IEventPublisher) {
	uc.events = p
}

// CreatePost stores a new post with an empty liked set.
func (uc *PostUsecase) CreatePost(ctx context.Context, title, content, author string) (*entity.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errs.ContentRequired
	}

	now := time.Now().UTC()
	post := &entity.Post{
		ID:        uc.uuidgen.NewUUID(),
		Title:     strings.TrimSpace(title),
		Content:   content,
		Author:    strings.TrimSpace(author),
		LikeCount: 0,
		LikedBy:   []entity.ClientID{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.postRepo.CreatePost(ctx, post); err != nil {
		return nil, asStorageError("create post", err)
	}

	if uc.postCache != nil {
		if err := uc.postCache.InvalidatePostList(ctx); err != nil {
			uc.logger.Warnf("failed to invalidate cached post list: %v", err)
		}
	}
	publish(ctx, uc.events, uc.logger, entity.PostEvent{
		Type:       entity.EventPostCreated,
		PostID:     post.ID,
		OccurredAt: now,
	})
	return post, nil
}

// ListPosts returns every post, newest first, served from cache when possible.
func (uc *PostUsecase) ListPosts(ctx context.Context) ([]*entity.Post, error) {
	if uc.postCache != nil {
		posts, ok, err := uc.postCache.GetPostList(ctx)
		switch {
		case err != nil:
			metrics.CacheLookups.WithLabelValues("list", "error").Inc()
			uc.logger.Warnf("post list cache read failed: %v", err)
		case ok:
			metrics.CacheLookups.WithLabelValues("list", "hit").Inc()
			return posts, nil
		default:
			metrics.CacheLookups.WithLabelValues("list", "miss").Inc()
		}
	}

	posts, err := uc.postRepo.ListPosts(ctx)
	if err != nil {
		return nil, asStorageError("list posts", err)
	}
	if posts == nil {
		posts = []*entity.Post{}
	}

	if uc.postCache != nil {
		if err := uc.postCache.SetPostList(ctx, posts); err != nil {
			uc.logger.Warnf("failed to cache post list: %v", err)
		}
	}
	return posts, nil
}

// GetPost fetches a single post by id.
func (uc *PostUsecase) GetPost(ctx context.Context, postID string) (*entity.Post, error) {
	if uc.postCache != nil {
		post, ok, err := uc.postCache.GetPost(ctx, postID)
		switch {
		case err != nil:
			metrics.CacheLookups.WithLabelValues("detail", "error").Inc()
			uc.logger.Warnf("post cache read failed for %s: %v", postID, err)
		case ok:
			metrics.CacheLookups.WithLabelValues("detail", "hit").Inc()
			return post, nil
		default:
			metrics.CacheLookups.WithLabelValues("detail", "miss").Inc()
		}
	}

	post, err := uc.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return nil, err
		}
		return nil, asStorageError("get post", err)
	}

	if uc.postCache != nil {
		if err := uc.postCache.SetPost(ctx, post); err != nil {
			uc.logger.Warnf("failed to cache post %s: %v", postID, err)
		}
	}
	return post, nil
}

// DeletePost removes a post. Likes live inside the post document, so they go
// with it.
func (uc *PostUsecase) DeletePost(ctx context.Context, postID string) error {
	if err := uc.postRepo.DeletePost(ctx, postID); err != nil {
		if errors.Is(err, errs.NotFound) {
			return err
		}
		return asStorageError("delete post", err)
	}

	if uc.postCache != nil {
		if err := uc.postCache.InvalidatePost(ctx, postID); err != nil {
			uc.logger.Warnf("failed to invalidate cached post %s: %v", postID, err)
		}
		if err := uc.postCache.InvalidatePostList(ctx); err != nil {
			uc.logger.Warnf("failed to invalidate cached post list: %v", err)
		}
	}
	publish(ctx, uc.events, uc.logger, entity.PostEvent{
		Type:       entity.EventPostDeleted,
		PostID:     postID,
		OccurredAt: time.Now().UTC(),
	})
	return nil
}
