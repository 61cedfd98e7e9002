package db_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dasdy/kle2kmk/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage(t *testing.T) {
	t.Run("should store and get correctly", func(t *testing.T) {
		storage, err := db.NewStorageFromPath(":memory:")
		require.NoError(t, err)
		defer storage.Close()

		_, ok, err := storage.Get("abc")
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, storage.Put("abc", []byte(`[{"index":0}]`)))
		require.NoError(t, storage.Put("def", []byte(`[]`)))

		payload, ok, err := storage.Get("abc")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.JSONEq(t, `[{"index":0}]`, string(payload))
	})

	t.Run("should overwrite existing digest", func(t *testing.T) {
		storage, err := db.NewStorageFromPath(":memory:")
		require.NoError(t, err)
		defer storage.Close()

		require.NoError(t, storage.Put("abc", []byte("one")))
		require.NoError(t, storage.Put("abc", []byte("two")))

		payload, ok, err := storage.Get("abc")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "two", string(payload))
	})

	t.Run("should clear everything", func(t *testing.T) {
		conn, err := sql.Open("sqlite3", ":memory:")
		require.NoError(t, err)

		storage, err := db.NewStorageFromConnection(conn)
		require.NoError(t, err)
		defer storage.Close()

		require.NoError(t, storage.Put("a", []byte("1")))
		require.NoError(t, storage.Put("b", []byte("2")))

		n, err := storage.Clear()
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		_, ok, err := storage.Get("a")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestFileStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "normalized.sqlite")

	storage, err := db.NewStorageFromPath(path)
	require.NoError(t, err)
	require.NoError(t, storage.Put("abc", []byte("payload")))
	storage.Close()

	reopened, err := db.NewStorageFromPath(path)
	require.NoError(t, err)
	defer reopened.Close()

	payload, ok, err := reopened.Get("abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "payload", string(payload))
}
