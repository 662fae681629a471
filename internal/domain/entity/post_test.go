package entity

import (
	"testing"

	"github.com/mikiasgoitom/likeboard/internal/domain/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPost_IsLikedBy(t *testing.T) {
	p := &Post{LikedBy: []ClientID{"a", "b"}, LikeCount: 2}

	assert.True(t, p.IsLikedBy("a"))
	assert.False(t, p.IsLikedBy("c"))
	assert.False(t, p.IsLikedBy(""))
}

func TestToggleResult_Liked(t *testing.T) {
	assert.True(t, ToggleResult{State: LikeStateLiked}.Liked())
	assert.False(t, ToggleResult{State: LikeStateUnliked}.Liked())
	assert.False(t, ToggleResult{}.Liked())
}

func TestParseClientID(t *testing.T) {
	id, err := ParseClientID("  user_1700000000000_abc123xyz ")
	require.NoError(t, err)
	assert.Equal(t, ClientID("user_1700000000000_abc123xyz"), id)

	for _, raw := range []string{"", "   ", "\t"} {
		_, err := ParseClientID(raw)
		assert.ErrorIs(t, err, errs.MissingIdentity)
	}
}
