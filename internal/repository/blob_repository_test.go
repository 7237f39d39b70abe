package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/solanum/internal/db"
)

func newTestRepository(t *testing.T) *BlobRepository {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = database.Close()
	})
	return NewBlobRepository(database)
}

func TestBlobRepositoryGetMissing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Get(context.Background(), "completedSessions")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.UpdatedAt(context.Background(), "completedSessions")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBlobRepositoryPutOverwrites(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	stamp := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	repo.now = func() time.Time { return stamp }

	require.NoError(t, repo.Put(ctx, "completedSessions", []byte(`[1]`)))
	require.NoError(t, repo.Put(ctx, "completedSessions", []byte(`[1,2]`)))

	value, err := repo.Get(ctx, "completedSessions")
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(value))

	updatedAt, err := repo.UpdatedAt(ctx, "completedSessions")
	require.NoError(t, err)
	assert.True(t, stamp.Equal(updatedAt))
}

func TestBlobRepositoryPutEmptyValue(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "empty", nil))

	value, err := repo.Get(ctx, "empty")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestBlobRepositoryDelete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "k", []byte("v")))
	require.NoError(t, repo.Delete(ctx, "k"))
	require.NoError(t, repo.Delete(ctx, "k"))

	_, err := repo.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestParseUpdatedAtAcceptsBothLayouts(t *testing.T) {
	nano, err := parseUpdatedAt("2026-10-18T09:30:00.123456789Z")
	require.NoError(t, err)
	assert.Equal(t, 123456789, nano.Nanosecond())

	plain, err := parseUpdatedAt("2026-10-18T11:30:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, plain.Location())
	assert.Equal(t, 9, plain.Hour())

	zero, err := parseUpdatedAt("")
	require.NoError(t, err)
	assert.True(t, zero.IsZero())

	_, err = parseUpdatedAt("yesterday")
	assert.Error(t, err)
}
