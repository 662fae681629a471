package entity

import "time"

// EventType names a post lifecycle event published to the event stream.
type EventType string

const (
	EventPostCreated EventType = "post.created"
	EventPostDeleted EventType = "post.deleted"
	EventPostLiked   EventType = "post.liked"
	EventPostUnliked EventType = "post.unliked"
)

// PostEvent is published after a post mutation has been committed.
type PostEvent struct {
	Type       EventType `json:"type"`
	PostID     string    `json:"post_id"`
	ClientID   ClientID  `json:"client_id,omitempty"`
	LikeCount  int       `json:"like_count"`
	OccurredAt time.Time `json:"occurred_at"`
}
