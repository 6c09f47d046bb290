package bplustree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsSmallBranchingFactor(t *testing.T) {
	for _, b := range []int{-1, 0, 1, 2, 3} {
		_, err := New[int, string](b)
		assert.ErrorIs(t, err, ErrInvalidCapacity, "branching factor %d", b)
	}
}

func TestNewAcceptsMinimumBranchingFactor(t *testing.T) {
	tree, err := New[int, string](4)
	require.NoError(t, err)
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Size())
}

func TestInsertAndGet(t *testing.T) {
	tree, err := New[int, string](4)
	require.NoError(t, err)

	for _, kv := range []struct {
		key   int
		value string
	}{
		{10, "ten"}, {20, "twenty"}, {5, "five"}, {15, "fifteen"},
		{25, "twenty-five"}, {1, "one"}, {30, "thirty"},
	} {
		inserted := tree.Insert(kv.key, kv.value)
		assert.True(t, inserted)
	}

	tests := []struct {
		key      int
		expected string
		found    bool
	}{
		{10, "ten", true},
		{20, "twenty", true},
		{5, "five", true},
		{15, "fifteen", true},
		{25, "twenty-five", true},
		{1, "one", true},
		{30, "thirty", true},
		{100, "", false},
		{0, "", false},
	}
	for _, tc := range tests {
		value, found := tree.Get(tc.key)
		assert.Equal(t, tc.found, found, "Get(%d)", tc.key)
		if tc.found {
			assert.Equal(t, tc.expected, value, "Get(%d)", tc.key)
		}
		assert.Equal(t, tc.found, tree.Contains(tc.key))
	}
	require.NoError(t, tree.Validate())
}

func TestInsertUpdatesExistingKeyInPlace(t *testing.T) {
	tree, err := New[int, string](4)
	require.NoError(t, err)

	assert.True(t, tree.Insert(10, "original"))
	assert.False(t, tree.Insert(10, "updated"))

	value, found := tree.Get(10)
	require.True(t, found)
	assert.Equal(t, "updated", value)
	assert.Equal(t, 1, tree.Size())
}

func TestDeleteRemovesKey(t *testing.T) {
	tree, err := New[int, string](4)
	require.NoError(t, err)

	tree.Insert(10, "ten")
	tree.Insert(20, "twenty")
	tree.Insert(5, "five")

	value, err := tree.Delete(10)
	require.NoError(t, err)
	assert.Equal(t, "ten", value)

	_, found := tree.Get(10)
	assert.False(t, found)

	_, err = tree.Delete(100)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	assert.Equal(t, 2, tree.Size())
	require.NoError(t, tree.Validate())
}

func TestDeleteSingleElementEmptiesTree(t *testing.T) {
	tree, err := New[int, int](4)
	require.NoError(t, err)

	tree.Insert(1, 10)
	value, err := tree.Delete(1)
	require.NoError(t, err)
	assert.Equal(t, 10, value)

	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Size())
	require.NoError(t, tree.Validate())
}

func TestEmptyTreeOperations(t *testing.T) {
	tree, err := New[int, string](4)
	require.NoError(t, err)

	_, found := tree.Get(1)
	assert.False(t, found)

	_, delErr := tree.Delete(1)
	assert.ErrorIs(t, delErr, ErrKeyNotFound)

	assert.Equal(t, 0, tree.Size())
	assert.True(t, tree.IsEmpty())

	it := tree.Iterate()
	_, ok, err := it.Next()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClearResetsTreeForReuse(t *testing.T) {
	tree, err := New[int, int](4)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		tree.Insert(i, i*10)
	}
	require.Equal(t, 50, tree.Size())

	tree.Clear()
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Size())
	_, found := tree.Get(0)
	assert.False(t, found)

	assert.True(t, tree.Insert(7, 70))
	value, found := tree.Get(7)
	require.True(t, found)
	assert.Equal(t, 70, value)
	require.NoError(t, tree.Validate())
}

func TestStringKeys(t *testing.T) {
	tree, err := New[string, int](4)
	require.NoError(t, err)

	tree.Insert("apple", 1)
	tree.Insert("banana", 2)
	tree.Insert("cherry", 3)
	tree.Insert("date", 4)

	value, found := tree.Get("banana")
	require.True(t, found)
	assert.Equal(t, 2, value)
	require.NoError(t, tree.Validate())
}

func TestDeleteOfMissingKeyIsDistinguishedStatus(t *testing.T) {
	tree, err := New[int, int](4)
	require.NoError(t, err)

	tree.Insert(1, 1)
	_, delErr := tree.Delete(2)
	require.Error(t, delErr)
	assert.True(t, errors.Is(delErr, ErrKeyNotFound))
}
