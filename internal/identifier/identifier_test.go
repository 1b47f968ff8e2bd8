package identifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-catalog/internal/identifier"
)

func TestNewReturnsDistinctIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := identifier.New(nil)
		require.NotEmpty(t, id)
		assert.False(t, seen[id], "id %s repeated", id)
		seen[id] = true
	}
}

func TestNewRegeneratesOnCollision(t *testing.T) {
	calls := 0
	taken := func(string) bool {
		calls++
		return calls == 1 // reject the first candidate
	}

	id := identifier.New(taken)
	assert.NotEmpty(t, id)
	assert.Equal(t, 2, calls)
}
