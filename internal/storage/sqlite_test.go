package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create test storage.
func createTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err, "failed to create storage")
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestSQLiteStore_SetGet(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok, "missing key should not exist")

	require.NoError(t, store.Set(ctx, "k1", `{"a":1}`))

	value, ok, err := store.Get(ctx, "k1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"a":1}`, value)
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k1", "old"))
	require.NoError(t, store.Set(ctx, "k1", "new"))

	value, ok, err := store.Get(ctx, "k1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "new", value)
}

func TestSQLiteStore_Remove(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k1", "v"))
	require.NoError(t, store.Remove(ctx, "k1"))

	_, ok, err := store.Get(ctx, "k1")
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing a missing key is not an error.
	require.NoError(t, store.Remove(ctx, "k1"))
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "k1", "v1"))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	value, ok, err := reopened.Get(ctx, "k1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v1", value)
}

func TestSQLiteStore_ValidatesParameters(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	_, _, err := store.Get(ctx, "  ")
	assert.ErrorIs(t, err, ErrEmptyString)

	err = store.Set(ctx, "", "v")
	assert.ErrorIs(t, err, ErrEmptyString)

	err = store.Remove(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyString)
}
