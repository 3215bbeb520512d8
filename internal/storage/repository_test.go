package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repositories(t *testing.T) map[string]Repository {
	t.Helper()
	db, err := OpenAndMigrate(filepath.Join(t.TempDir(), "nested", "joust.db"))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return map[string]Repository{
		"sqlite": NewSQLiteRepository(db),
		"memory": NewMemoryRepo(),
	}
}

func TestRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			_, err := repo.LoadBlob(ctx, "slot")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, repo.SaveBlob(ctx, "slot", []byte(`{"v":1}`)))
			got, err := repo.LoadBlob(ctx, "slot")
			require.NoError(t, err)
			assert.Equal(t, `{"v":1}`, string(got))

			// Saving again replaces the blob under the same key.
			require.NoError(t, repo.SaveBlob(ctx, "slot", []byte(`{"v":2}`)))
			got, err = repo.LoadBlob(ctx, "slot")
			require.NoError(t, err)
			assert.Equal(t, `{"v":2}`, string(got))

			_, err = repo.LoadBlob(ctx, "other")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, repo.DeleteBlob(ctx, "slot"))
			_, err = repo.LoadBlob(ctx, "slot")
			assert.ErrorIs(t, err, ErrNotFound)

			// Deleting a missing slot is not an error.
			require.NoError(t, repo.DeleteBlob(ctx, "slot"))
			require.NoError(t, repo.SaveBlob(ctx, "slot", []byte("again")))
		})
	}
}

func TestSQLiteRepository_SingleRowPerKey(t *testing.T) {
	db, err := OpenAndMigrate(filepath.Join(t.TempDir(), "joust.db"))
	require.NoError(t, err)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.SaveBlob(ctx, "slot", []byte{byte(i)}))
	}
	var count int64
	require.NoError(t, db.Model(&SaveSlot{}).Where("slot_key = ?", "slot").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMemoryRepo_CopiesBlobs(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	blob := []byte("abc")
	require.NoError(t, repo.SaveBlob(ctx, "k", blob))
	blob[0] = 'z'
	got, err := repo.LoadBlob(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
	got[1] = 'z'
	again, _ := repo.LoadBlob(ctx, "k")
	assert.Equal(t, "abc", string(again))
	assert.Equal(t, 1, repo.Saves())
}
