package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/likeboard/internal/domain/contract"
	"github.com/mikiasgoitom/likeboard/internal/domain/entity"
)

const postListKey = "posts:list"

type PostCacheStore struct {
	rdb       *redis.Client
	detailTTL time.Duration
	listTTL   time.Duration
}

// Entries are invalidated on every mutation, but a read that started before
// the invalidation can still write the old value back afterwards. The short
// TTLs bound how long such an entry survives.
const (
	defaultDetailTTL = 15 * time.Second
	defaultListTTL   = 5 * time.Second
)

func NewPostCacheStore(rdb *redis.Client) *PostCacheStore {
	return &PostCacheStore{
		rdb:       rdb,
		detailTTL: defaultDetailTTL,
		listTTL:   defaultListTTL,
	}
}

var _ contract.IPostCache = (*PostCacheStore)(nil)

func postDetailKey(id string) string { return fmt.Sprintf("posts:id:%s", id) }

func (c *PostCacheStore) GetPost(ctx context.Context, postID string) (*entity.Post, bool, error) {
	b, err := c.rdb.Get(ctx, postDetailKey(postID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var post entity.Post
	if err := json.Unmarshal(b, &post); err != nil {
		// a payload we cannot read is a miss
		return nil, false, nil
	}
	return &post, true, nil
}

func (c *PostCacheStore) SetPost(ctx context.Context, post *entity.Post) error {
	data, err := json.Marshal(post)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, postDetailKey(post.ID), data, c.detailTTL).Err()
}

func (c *PostCacheStore) InvalidatePost(ctx context.Context, postID string) error {
	return c.rdb.Del(ctx, postDetailKey(postID)).Err()
}

func (c *PostCacheStore) GetPostList(ctx context.Context) ([]*entity.Post, bool, error) {
	b, err := c.rdb.Get(ctx, postListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var posts []*entity.Post
	if err := json.Unmarshal(b, &posts); err != nil {
		return nil, false, nil
	}
	return posts, true, nil
}

func (c *PostCacheStore) SetPostList(ctx context.Context, posts []*entity.Post) error {
	data, err := json.Marshal(posts)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, postListKey, data, c.listTTL).Err()
}

func (c *PostCacheStore) InvalidatePostList(ctx context.Context) error {
	return c.rdb.Del(ctx, postListKey).Err()
}
