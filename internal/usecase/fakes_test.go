package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/mikiasgoitom/likeboard/internal/domain/entity"
	"github.com/mikiasgoitom/likeboard/internal/domain/errs"
)

// memoryPostRepo applies each toggle under one lock, which is the guarantee
// the document store gives for a single-document update.
type memoryPostRepo struct {
	mu    sync.Mutex
	posts map[string]*entity.Post

	failWith    error
	toggleCalls int
}

func newMemoryPostRepo(posts ...*entity.Post) *memoryPostRepo {
	r := &memoryPostRepo{posts: map[string]*entity.Post{}}
	for _, p := range posts {
		r.posts[p.ID] = p
	}
	return r
}

func clonePost(p *entity.Post) *entity.Post {
	cp := *p
	cp.LikedBy = append([]entity.ClientID{}, p.LikedBy...)
	return &cp
}

func (r *memoryPostRepo) CreatePost(ctx context.Context, post *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	r.posts[post.ID] = clonePost(post)
	return nil
}

func (r *memoryPostRepo) GetPostByID(ctx context.Context, postID string) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	p, ok := r.posts[postID]
	if !ok {
		return nil, errs.NotFound
	}
	return clonePost(p), nil
}

func (r *memoryPostRepo) ListPosts(ctx context.Context) ([]*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]*entity.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, clonePost(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memoryPostRepo) DeletePost(ctx context.Context, postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.posts[postID]; !ok {
		return errs.NotFound
	}
	delete(r.posts, postID)
	return nil
}

func (r *memoryPostRepo) ToggleLike(ctx context.Context, postID string, clientID entity.ClientID) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toggleCalls++
	if r.failWith != nil {
		return nil, r.failWith
	}
	p, ok := r.posts[postID]
	if !ok {
		return nil, errs.NotFound
	}
	if p.IsLikedBy(clientID) {
		kept := p.LikedBy[:0]
		for _, id := range p.LikedBy {
			if id != clientID {
				kept = append(kept, id)
			}
		}
		p.LikedBy = kept
		p.LikeCount--
	} else {
		p.LikedBy = append(p.LikedBy, clientID)
		p.LikeCount++
	}
	return clonePost(p), nil
}

func (r *memoryPostRepo) snapshot(postID string) *entity.Post {
	r.mu.Lock()
	defer r.mu.Unlock()
	return clonePost(r.posts[postID])
}

type memoryCache struct {
	mu          sync.Mutex
	posts       map[string]*entity.Post
	list        []*entity.Post
	hasList     bool
	failReads   bool
	invalidated []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{posts: map[string]*entity.Post{}}
}

func (c *memoryCache) GetPost(ctx context.Context, postID string) (*entity.Post, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failReads {
		return nil, false, errors.New("cache down")
	}
	p, ok := c.posts[postID]
	return p, ok, nil
}

func (c *memoryCache) SetPost(ctx context.Context, post *entity.Post) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.posts[post.ID] = post
	return nil
}

func (c *memoryCache) InvalidatePost(ctx context.Context, postID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.posts, postID)
	c.invalidated = append(c.invalidated, "post:"+postID)
	return nil
}

func (c *memoryCache) GetPostList(ctx context.Context) ([]*entity.Post, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failReads {
		return nil, false, errors.New("cache down")
	}
	return c.list, c.hasList, nil
}

func (c *memoryCache) SetPostList(ctx context.Context, posts []*entity.Post) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list, c.hasList = posts, true
	return nil
}

func (c *memoryCache) InvalidatePostList(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list, c.hasList = nil, false
	c.invalidated = append(c.invalidated, "list")
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []entity.PostEvent
	fail   bool
}

func (p *recordingPublisher) Publish(ctx context.Context, event entity.PostEvent) error {
	if p.fail {
		return errors.New("broker unavailable")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []entity.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]entity.EventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type sequenceUUID struct {
	mu sync.Mutex
	n  int
}

func (g *sequenceUUID) NewUUID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("post-%d", g.n)
}

type testLogger struct {
	mu       sync.Mutex
	warnings []string
}

func (l *testLogger) Debugf(format string, args ...interface{}) {}
func (l *testLogger) Infof(format string, args ...interface{})  {}
func (l *testLogger) Errorf(format string, args ...interface{}) {}
func (l *testLogger) Fatalf(format string, args ...interface{}) {}

func (l *testLogger) Warnf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}

func (l *testLogger) warned(s string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, w := range l.warnings {
		if strings.Contains(w, s) {
			return true
		}
	}
	return false
}
