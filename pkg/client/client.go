package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// IdentityHeader is the request header carrying the anonymous identifier.
const IdentityHeader = "userid"

// Post is a post as returned by the API.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	LikeCount int       `json:"likeCount"`
	Liked     bool      `json:"liked"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type NewPost struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
	Author  string `json:"author,omitempty"`
}

// LikeResult is the state after a toggle or a status read.
type LikeResult struct {
	PostID    string `json:"postId"`
	Liked     bool   `json:"liked"`
	LikeCount int    `json:"likeCount"`
}

// APIError is a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string `json:"message"`
	Detail     string `json:"error"`
	// DBState is set when the server refused the request because its
	// database was not connected.
	DBState *int `json:"status"`
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("likeboard api: %d %s: %s", e.StatusCode, e.Message, e.Detail)
	}
	return fmt.Sprintf("likeboard api: %d %s", e.StatusCode, e.Message)
}

// Client calls the posts API, sending the resolved identity on every request.
type Client struct {
	baseURL  string
	http     *http.Client
	identity *IdentityResolver
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func New(baseURL string, identity *IdentityResolver, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		http:     &http.Client{Timeout: 10 * time.Second},
		identity: identity,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) ListPosts(ctx context.Context) ([]Post, error) {
	var posts []Post
	err := c.do(ctx, http.MethodGet, "/api/posts", nil, &posts)
	return posts, err
}

func (c *Client) CreatePost(ctx context.Context, in NewPost) (*Post, error) {
	var post Post
	if err := c.do(ctx, http.MethodPost, "/api/posts", in, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) GetPost(ctx context.Context, id string) (*Post, error) {
	var post Post
	if err := c.do(ctx, http.MethodGet, "/api/posts/"+id, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) DeletePost(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/posts/"+id, nil, nil)
}

// ToggleLike flips the caller's like on a post.
func (c *Client) ToggleLike(ctx context.Context, id string) (*LikeResult, error) {
	var res LikeResult
	if err := c.do(ctx, http.MethodPatch, "/api/posts/"+id+"/like", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) LikeStatus(ctx context.Context, id string) (*LikeResult, error) {
	var res LikeResult
	if err := c.do(ctx, http.MethodGet, "/api/posts/"+id+"/like", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.identity != nil {
		id, err := c.identity.Resolve()
		if err != nil {
			return err
		}
		req.Header.Set(IdentityHeader, id)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
