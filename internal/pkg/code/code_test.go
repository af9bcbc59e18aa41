package code

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_LengthAndAlphabet(t *testing.T) {
	for _, length := range []int{1, 6, 12} {
		got, err := Generate(length)
		require.NoError(t, err)
		assert.Len(t, got, length)
		for _, r := range got {
			assert.True(t, strings.ContainsRune(Alphabet, r), "unexpected character %q", r)
		}
	}
}

func TestGenerate_DefaultLength(t *testing.T) {
	got, err := Generate(0)
	require.NoError(t, err)
	assert.Len(t, got, DefaultLength)
}

func TestGenerate_NotConstant(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		c, err := Generate(6)
		require.NoError(t, err)
		seen[c] = true
	}
	// 50 draws from a 36^6 space colliding down to one value would mean
	// the generator is broken.
	assert.Greater(t, len(seen), 1)
}

func TestDigest_Deterministic(t *testing.T) {
	assert.Equal(t, Digest("ABC123"), Digest("ABC123"))
	assert.Len(t, Digest("ABC123"), 64)
}

func TestDigest_SingleCharacterMutationNeverMatches(t *testing.T) {
	base := "X7K2PQ"
	baseDigest := Digest(base)

	for i := 0; i < len(base); i++ {
		for _, r := range Alphabet {
			mutated := base[:i] + string(r) + base[i+1:]
			if mutated == base {
				continue
			}
			assert.NotEqual(t, baseDigest, Digest(mutated), "mutation %q collided", mutated)
		}
	}
}

func TestDigest_CaseSensitive(t *testing.T) {
	assert.NotEqual(t, Digest("abc123"), Digest("ABC123"))
}
