package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/weaver/builder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomWords(t *testing.T) {
	a, err := builder.RandomWords(50, 4, "abc", builder.WithSeed(3))
	require.NoError(t, err)
	b, err := builder.RandomWords(50, 4, "abc", builder.WithRand(rand.New(rand.NewSource(3))))
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed, same words")

	seen := map[string]bool{}
	for _, w := range a {
		assert.Len(t, w, 4)
		assert.False(t, seen[w], "duplicate %q", w)
		seen[w] = true
	}

	all, err := builder.RandomWords(9, 2, "ab"+"c", builder.WithSeed(1))
	require.NoError(t, err)
	assert.Len(t, all, 9, "the whole space can be drawn")
}

func TestRandomWords_Errors(t *testing.T) {
	_, err := builder.RandomWords(-1, 4, "abc", builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrBadSize)
	_, err = builder.RandomWords(3, 0, "abc", builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrBadSize)
	_, err = builder.RandomWords(3, 2, "", builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
	_, err = builder.RandomWords(3, 2, "aA", builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
	_, err = builder.RandomWords(3, 2, "aab", builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
	_, err = builder.RandomWords(5, 2, "ab", builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	_, err = builder.RandomWords(3, 2, "ab")
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}
