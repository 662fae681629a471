package uuidgen

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	g := NewGenerator()
	a, b := g.NewUUID(), g.NewUUID()

	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, a, b)
}

func TestNewUUID_TimeOrdered(t *testing.T) {
	g := NewGenerator()
	prev := g.NewUUID()
	for i := 0; i < 100; i++ {
		next := g.NewUUID()
		assert.Less(t, prev, next)
		prev = next
	}
}
