package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/mikiasgoitom/likeboard/internal/domain/contract"
	"github.com/mikiasgoitom/likeboard/internal/domain/entity"
	"github.com/mikiasgoitom/likeboard/internal/domain/errs"
	"github.com/mikiasgoitom/likeboard/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/likeboard/internal/usecase/contract"
)

// LikeUsecase handles the business logic for toggling anonymous likes.
type LikeUsecase struct {
	postRepo  contract.IPostRepository
	logger    usecasecontract.IAppLogger
	postCache contract.IPostCache
	events    contract.IEventPublisher
}

// NewLikeUsecase creates and returns a new LikeUsecase instance.
func NewLikeUsecase(postRepo contract.IPostRepository, logger usecasecontract.IAppLogger) *LikeUsecase {
	return &LikeUsecase{
		postRepo: postRepo,
		logger:   logger,
	}
}

var _ usecasecontract.ILikeUseCase = (*LikeUsecase)(nil)

// SetPostCache enables invalidation of cached posts after a toggle.
func (u *LikeUsecase) SetPostCache(cache contract.IPostCache) {
	u.postCache = cache
}

// SetEventPublisher enables post.liked / post.unliked events.
func (u *LikeUsecase) SetEventPublisher(p contract.IEventPublisher) {
	u.events = p
}

// ToggleLike flips the client's like on a post. The check and the mutation
// happen in a single storage update, so concurrent toggles never double count.
func (u *LikeUsecase) ToggleLike(ctx context.Context, postID string, clientID entity.ClientID) (entity.ToggleResult, error) {
	if clientID.IsZero() {
		return entity.ToggleResult{}, errs.MissingIdentity
	}

	post, err := u.postRepo.ToggleLike(ctx, postID, clientID)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			metrics.LikeToggles.WithLabelValues("not_found").Inc()
			return entity.ToggleResult{}, err
		}
		metrics.LikeToggles.WithLabelValues("error").Inc()
		return entity.ToggleResult{}, asStorageError("toggle like", err)
	}

	result := toToggleResult(post, clientID)
	metrics.LikeToggles.WithLabelValues(string(result.State)).Inc()
	u.logger.Debugf("post %s %s by %s, count %d", postID, result.State, clientID, result.LikeCount)

	if u.postCache != nil {
		if err := u.postCache.InvalidatePost(ctx, postID); err != nil {
			u.logger.Warnf("failed to invalidate cached post %s: %v", postID, err)
		}
		if err := u.postCache.InvalidatePostList(ctx); err != nil {
			u.logger.Warnf("failed to invalidate cached post list: %v", err)
		}
	}

	eventType := entity.EventPostUnliked
	if result.Liked() {
		eventType = entity.EventPostLiked
	}
	publish(ctx, u.events, u.logger, entity.PostEvent{
		Type:       eventType,
		PostID:     postID,
		ClientID:   clientID,
		LikeCount:  result.LikeCount,
		OccurredAt: time.Now(),
	})

	return result, nil
}

// GetLikeStatus reports whether the client currently likes the post.
func (u *LikeUsecase) GetLikeStatus(ctx context.Context, postID string, clientID entity.ClientID) (entity.ToggleResult, error) {
	if clientID.IsZero() {
		return entity.ToggleResult{}, errs.MissingIdentity
	}
	post, err := u.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return entity.ToggleResult{}, err
		}
		return entity.ToggleResult{}, asStorageError("get like status", err)
	}
	return toToggleResult(post, clientID), nil
}

func toToggleResult(post *entity.Post, clientID entity.ClientID) entity.ToggleResult {
	state := entity.LikeStateUnliked
	if post.IsLikedBy(clientID) {
		state = entity.LikeStateLiked
	}
	return entity.ToggleResult{
		PostID:    post.ID,
		State:     state,
		LikeCount: post.LikeCount,
	}
}

// asStorageError keeps repository errors that are already classified and
// marks everything else as a storage failure.
func asStorageError(op string, err error) error {
	if errors.Is(err, errs.StorageUnavailable) {
		return err
	}
	return errs.Storage(op, err)
}

// publish hands an event to the stream. The mutation is already committed, so
// a rejected event is logged and counted, never returned. Publishers are
// expected not to block; see events.AsyncPublisher.
func publish(ctx context.Context, p contract.IEventPublisher, logger usecasecontract.IAppLogger, event entity.PostEvent) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, event); err != nil {
		metrics.EventsPublished.WithLabelValues(string(event.Type), "dropped").Inc()
		logger.Warnf("failed to publish %s for post %s: %v", event.Type, event.PostID, err)
		return
	}
	metrics.EventsPublished.WithLabelValues(string(event.Type), "queued").Inc()
}
