package entity

import (
	"time"
)

// Post represents a published post and the anonymous likes it has received.
type Post struct {
	ID        string     `bson:"_id,omitempty" json:"id"`
	Title     string     `bson:"title" json:"title"`
	Content   string     `bson:"content" json:"content"`
	Author    string     `bson:"author" json:"author"`
	LikeCount int        `bson:"like_count" json:"likeCount"`
	LikedBy   []ClientID `bson:"liked_by" json:"likedBy"`
	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updatedAt"`
}

// IsLikedBy reports whether the client is currently in the post's liked set.
func (p *Post) IsLikedBy(clientID ClientID) bool {
	if clientID.IsZero() {
		return false
	}
	for _, id := range p.LikedBy {
		if id == clientID {
			return true
		}
	}
	return false
}

// LikeState is the membership of one client in a post's liked set.
type LikeState string

const (
	LikeStateLiked   LikeState = "liked"
	LikeStateUnliked LikeState = "unliked"
)

// ToggleResult is what the like toggle hands back so the caller can render
// the new state without a second read.
type ToggleResult struct {
	PostID    string
	State     LikeState
	LikeCount int
}

// Liked reports whether the toggle left the client in the liked set.
func (r ToggleResult) Liked() bool {
	return r.State == LikeStateLiked
}
