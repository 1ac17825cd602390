package repository

import (
	"context"
	"testing"

	"github.com/Chilos/project-gantt/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteBlockRepo_CreateAndGet(t *testing.T) {
	repo := NewSQLiteBlockRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateBlock(ctx, "b-1", "hello"))

	b, err := repo.GetBlock(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, "b-1", b.ID)
	assert.Equal(t, "hello", b.Content)
	assert.False(t, b.CreatedAt.IsZero())
}

func TestSQLiteBlockRepo_GetMissing(t *testing.T) {
	repo := NewSQLiteBlockRepo(testutil.NewTestDB(t))

	_, err := repo.GetBlock(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrBlockNotFound)
}

func TestSQLiteBlockRepo_Update(t *testing.T) {
	repo := NewSQLiteBlockRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateBlock(ctx, "b-1", "v1"))
	require.NoError(t, repo.UpdateBlock(ctx, "b-1", "v2"))

	b, err := repo.GetBlock(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, "v2", b.Content)

	assert.ErrorIs(t, repo.UpdateBlock(ctx, "ghost", "x"), ErrBlockNotFound)
}

func TestSQLiteBlockRepo_DeleteAndList(t *testing.T) {
	repo := NewSQLiteBlockRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateBlock(ctx, "b-1", "one"))
	require.NoError(t, repo.CreateBlock(ctx, "b-2", "two"))

	blocks, err := repo.ListBlocks(ctx)
	require.NoError(t, err)
	assert.Len(t, blocks, 2)

	require.NoError(t, repo.DeleteBlock(ctx, "b-1"))
	blocks, err = repo.ListBlocks(ctx)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "b-2", blocks[0].ID)
}

func TestSQLiteBlockRepo_DuplicateCreateFails(t *testing.T) {
	repo := NewSQLiteBlockRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateBlock(ctx, "b-1", "one"))
	assert.Error(t, repo.CreateBlock(ctx, "b-1", "again"))
}
