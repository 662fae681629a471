package randomgenerator

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBase36(t *testing.T) {
	rg := NewRandomGenerator()
	s, err := rg.GenerateBase36(9)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-z]{9}$`), s)

	empty, err := rg.GenerateBase36(0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGenerateBase36_Varies(t *testing.T) {
	rg := NewRandomGenerator()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		s, err := rg.GenerateBase36(9)
		require.NoError(t, err)
		seen[s] = true
	}
	assert.Greater(t, len(seen), 45)
}
