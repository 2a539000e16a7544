package kv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, ok, err := store.Get(KeyIdentity)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(KeyIdentity, `{"id":1}`))

	value, ok, err := store.Get(KeyIdentity)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"id":1}`, value)
}

func TestFileStoreOverwrite(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyNeeds, "[]"))
	require.NoError(t, store.Set(KeyNeeds, `[{"id":5}]`))

	value, ok, err := store.Get(KeyNeeds)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":5}]`, value)
}

func TestFileStoreRemove(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	// Removing an absent key is not an error.
	require.NoError(t, store.Remove(KeyIdentity))

	require.NoError(t, store.Set(KeyIdentity, "x"))
	require.NoError(t, store.Remove(KeyIdentity))

	_, ok, err := store.Get(KeyIdentity)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyNeeds, `[{"id":9}]`))

	reopened, err := NewFileStore(dir)
	require.NoError(t, err)

	value, ok, err := reopened.Get(KeyNeeds)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":9}]`, value)
}
