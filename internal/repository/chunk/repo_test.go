package chunk_test

import (
	"testing"

	"github.com/mike-pete/cms/internal/entities"
	testhelpers "github.com/mike-pete/cms/internal/test_helpers"

	"github.com/stretchr/testify/require"
)

func TestRepo_LedgerLifecycle(t *testing.T) {
	// given
	container := testhelpers.GetClean(t)
	stored := testhelpers.CreateFile(t, container, "alice@example.com", "contacts.csv")

	// when
	for i := 0; i < 3; i++ {
		chunkID, err := container.RepoChunk.Create(container.Ctx, stored.ID, i, 5000)
		require.NoError(t, err)
		require.NotZero(t, chunkID)
	}

	// then
	chunks, err := container.RepoChunk.GetByFile(container.Ctx, stored.ID)
	require.NoError(t, err)
	require.Len(t, chunks, 3)
	for i, c := range chunks {
		require.Equal(t, i, c.ChunkNumber)
		require.Equal(t, entities.ChunkStatusPending, c.Status)
	}

	total, done, err := container.RepoChunk.CountByFile(container.Ctx, stored.ID)
	require.NoError(t, err)
	require.Equal(t, 3, total)
	require.Equal(t, 0, done)

	t.Run("should flip status to done", func(t *testing.T) {
		// when
		tx, err := container.DB.Client().BeginTxx(container.Ctx, nil)
		require.NoError(t, err)
		require.NoError(t, container.RepoChunk.MarkDone(container.Ctx, tx, stored.ID, 1))
		require.NoError(t, tx.Commit())

		// then
		total, done, err = container.RepoChunk.CountByFile(container.Ctx, stored.ID)
		require.NoError(t, err)
		require.Equal(t, 3, total)
		require.Equal(t, 1, done)
	})

	t.Run("should tolerate re-marking a done chunk", func(t *testing.T) {
		// when
		tx, err := container.DB.Client().BeginTxx(container.Ctx, nil)
		require.NoError(t, err)
		require.NoError(t, container.RepoChunk.MarkDone(container.Ctx, tx, stored.ID, 1))
		require.NoError(t, tx.Commit())

		// then
		total, done, err = container.RepoChunk.CountByFile(container.Ctx, stored.ID)
		require.NoError(t, err)
		require.Equal(t, 1, done)
	})

	t.Run("should reject unknown ledger row", func(t *testing.T) {
		tx, err := container.DB.Client().BeginTxx(container.Ctx, nil)
		require.NoError(t, err)
		defer func() {
			require.NoError(t, tx.Rollback())
		}()
		require.ErrorIs(t, container.RepoChunk.MarkDone(container.Ctx, tx, stored.ID, 42), entities.ErrChunkNotFound)
	})
}

func TestRepo_ProgressByOwner(t *testing.T) {
	// given
	container := testhelpers.GetClean(t)
	fileA := testhelpers.CreateFile(t, container, "alice@example.com", "a.csv")
	fileB := testhelpers.CreateFile(t, container, "alice@example.com", "b.csv")
	testhelpers.CreateFile(t, container, "bob@example.com", "other.csv")

	for i := 0; i < 2; i++ {
		_, err := container.RepoChunk.Create(container.Ctx, fileA.ID, i, 100)
		require.NoError(t, err)
	}
	tx, err := container.DB.Client().BeginTxx(container.Ctx, nil)
	require.NoError(t, err)
	require.NoError(t, container.RepoChunk.MarkDone(container.Ctx, tx, fileA.ID, 0))
	require.NoError(t, tx.Commit())

	// when
	result, err := container.RepoChunk.ProgressByOwner(container.Ctx, "alice@example.com")

	// then
	require.NoError(t, err)
	require.Len(t, result, 2)
	byID := make(map[int64]*entities.FileProgress, len(result))
	for _, p := range result {
		byID[p.FileID] = p
	}
	require.Equal(t, 2, byID[fileA.ID].TotalChunks)
	require.Equal(t, 1, byID[fileA.ID].DoneChunks)
	require.Equal(t, 0, byID[fileB.ID].TotalChunks)
	require.Equal(t, 0, byID[fileB.ID].DoneChunks)
}

func TestRepo_RejectsDuplicateChunkNumber(t *testing.T) {
	// given
	container := testhelpers.GetClean(t)
	stored := testhelpers.CreateFile(t, container, "alice@example.com", "contacts.csv")
	_, err := container.RepoChunk.Create(container.Ctx, stored.ID, 0, 100)
	require.NoError(t, err)

	// when
	_, err = container.RepoChunk.Create(container.Ctx, stored.ID, 0, 100)

	// then
	require.Error(t, err)
}
