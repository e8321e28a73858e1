package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalPair(t *testing.T) {
	t.Run("Already ordered", func(t *testing.T) {
		lo, hi, swapped := CanonicalPair("alice", "bob")
		assert.Equal(t, "alice", lo)
		assert.Equal(t, "bob", hi)
		assert.False(t, swapped)
	})

	t.Run("Reversed input is swapped", func(t *testing.T) {
		lo, hi, swapped := CanonicalPair("bob", "alice")
		assert.Equal(t, "alice", lo)
		assert.Equal(t, "bob", hi)
		assert.True(t, swapped)
	})

	t.Run("Symmetric under argument order", func(t *testing.T) {
		pairs := [][2]string{
			{"u1", "u2"},
			{"zed", "aardvark"},
			{"user-10", "user-9"},
			{"same", "same"},
		}
		for _, p := range pairs {
			lo1, hi1, _ := CanonicalPair(p[0], p[1])
			lo2, hi2, _ := CanonicalPair(p[1], p[0])
			assert.Equal(t, lo1, lo2)
			assert.Equal(t, hi1, hi2)
		}
	})

	t.Run("Equal identifiers are not swapped", func(t *testing.T) {
		lo, hi, swapped := CanonicalPair("same", "same")
		assert.Equal(t, "same", lo)
		assert.Equal(t, "same", hi)
		assert.False(t, swapped)
	})
}

func TestPairKey(t *testing.T) {
	assert.Equal(t, "alice:bob", PairKey("alice", "bob"))
	assert.Equal(t, "alice:bob", PairKey("bob", "alice"))
}
