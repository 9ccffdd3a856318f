package contact_test

import (
	"fmt"
	"testing"

	"github.com/mike-pete/cms/internal/entities"
	testhelpers "github.com/mike-pete/cms/internal/test_helpers"

	"github.com/stretchr/testify/require"
)

func TestRepo_InsertBatch(t *testing.T) {
	// given
	container := testhelpers.GetClean(t)
	owner := testhelpers.RandomOwner()
	batch := make([]*entities.Contact, 0, 5)
	for i := 0; i < 5; i++ {
		batch = append(batch, &entities.Contact{
			Email:     fmt.Sprintf("user%d@example.com", i),
			FirstName: fmt.Sprintf("First%d", i),
			LastName:  fmt.Sprintf("Last%d", i),
			CreatedBy: owner,
		})
	}

	// when
	tx, err := container.DB.Client().BeginTxx(container.Ctx, nil)
	require.NoError(t, err)
	require.NoError(t, container.RepoContact.InsertBatch(container.Ctx, tx, batch))
	require.NoError(t, tx.Commit())

	// then
	count, err := container.RepoContact.CountByOwner(container.Ctx, owner)
	require.NoError(t, err)
	require.Equal(t, 5, count)

	t.Run("should tolerate empty batch", func(t *testing.T) {
		tx, err = container.DB.Client().BeginTxx(container.Ctx, nil)
		require.NoError(t, err)
		require.NoError(t, container.RepoContact.InsertBatch(container.Ctx, tx, nil))
		require.NoError(t, tx.Commit())
	})

	t.Run("should roll back with the transaction", func(t *testing.T) {
		// when
		tx, err = container.DB.Client().BeginTxx(container.Ctx, nil)
		require.NoError(t, err)
		require.NoError(t, container.RepoContact.InsertBatch(container.Ctx, tx, batch[:2]))
		require.NoError(t, tx.Rollback())

		// then
		count, err = container.RepoContact.CountByOwner(container.Ctx, owner)
		require.NoError(t, err)
		require.Equal(t, 5, count)
	})
}

func TestRepo_ListByOwner(t *testing.T) {
	// given
	container := testhelpers.GetClean(t)
	owner := testhelpers.RandomOwner()
	batch := make([]*entities.Contact, 0, 10)
	for i := 0; i < 10; i++ {
		batch = append(batch, &entities.Contact{
			Email:     fmt.Sprintf("user%d@example.com", i),
			CreatedBy: owner,
		})
	}
	tx, err := container.DB.Client().BeginTxx(container.Ctx, nil)
	require.NoError(t, err)
	require.NoError(t, container.RepoContact.InsertBatch(container.Ctx, tx, batch))
	require.NoError(t, tx.Commit())

	// when
	pageOne, err := container.RepoContact.ListByOwner(container.Ctx, owner, 6, 0)
	require.NoError(t, err)
	pageTwo, err := container.RepoContact.ListByOwner(container.Ctx, owner, 6, 6)
	require.NoError(t, err)

	// then
	require.Len(t, pageOne, 6)
	require.Len(t, pageTwo, 4)
	seen := make(map[string]bool, 10)
	for _, c := range append(pageOne, pageTwo...) {
		require.False(t, seen[c.Email])
		seen[c.Email] = true
	}

	t.Run("should not leak other owners", func(t *testing.T) {
		other, err := container.RepoContact.ListByOwner(container.Ctx, "bob@example.com", 10, 0)
		require.NoError(t, err)
		require.Empty(t, other)
	})
}
