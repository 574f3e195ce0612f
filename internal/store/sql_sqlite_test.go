package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/avkarpov/itemvault/internal/config"
	"github.com/avkarpov/itemvault/internal/logger"
	"github.com/avkarpov/itemvault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestSQLiteDB opens a throwaway file-backed database with the schema
// applied, exercising the same code path the local development mode uses.
func newTestSQLiteDB(t *testing.T) *DB {
	t.Helper()

	ctx := context.Background()
	cfg := config.DB{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "itemvault_test.db"),
	}

	db, err := NewConnectSQLite(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())
	return db
}

func TestSQLite_CreateAndFindUser(t *testing.T) {
	db := newTestSQLiteDB(t)
	repos := NewRepositories(db)
	ctx := context.Background()

	created, err := repos.UserRepository.CreateUser(ctx, models.User{
		Email:          "alice@example.com",
		HashedPassword: "$2a$10$hash",
		FullName:       "Alice",
		IsActive:       true,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := repos.UserRepository.FindUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestSQLite_DuplicateEmail(t *testing.T) {
	db := newTestSQLiteDB(t)
	repos := NewRepositories(db)
	ctx := context.Background()

	_, err := repos.UserRepository.CreateUser(ctx, models.User{Email: "dup@example.com", HashedPassword: "h"})
	require.NoError(t, err)

	_, err = repos.UserRepository.CreateUser(ctx, models.User{Email: "dup@example.com", HashedPassword: "h"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestSQLite_DeleteUserCascadesItems(t *testing.T) {
	db := newTestSQLiteDB(t)
	repos := NewRepositories(db)
	ctx := context.Background()

	owner, err := repos.UserRepository.CreateUser(ctx, models.User{Email: "owner@example.com", HashedPassword: "h", IsActive: true})
	require.NoError(t, err)

	item, err := repos.ItemRepository.CreateItem(ctx, models.Item{Title: "desk", OwnerID: owner.ID})
	require.NoError(t, err)

	require.NoError(t, repos.UserRepository.DeleteUser(ctx, owner.ID))

	_, err = repos.ItemRepository.FindItemByID(ctx, item.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestSQLite_ItemLifecycle(t *testing.T) {
	db := newTestSQLiteDB(t)
	repos := NewRepositories(db)
	ctx := context.Background()

	owner, err := repos.UserRepository.CreateUser(ctx, models.User{Email: "owner@example.com", HashedPassword: "h", IsActive: true})
	require.NoError(t, err)

	created, err := repos.ItemRepository.CreateItem(ctx, models.Item{Title: "desk", Description: "standing", OwnerID: owner.ID})
	require.NoError(t, err)

	title := "desk v2"
	updated, err := repos.ItemRepository.UpdateItem(ctx, created.ID, models.ItemPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "desk v2", updated.Title)
	assert.Equal(t, "standing", updated.Description)

	mine, err := repos.ItemRepository.ListItemsByOwner(ctx, owner.ID, models.Pagination{Limit: models.DefaultPageLimit})
	require.NoError(t, err)
	require.Len(t, mine, 1)

	require.NoError(t, repos.ItemRepository.DeleteItem(ctx, created.ID))
	assert.ErrorIs(t, repos.ItemRepository.DeleteItem(ctx, created.ID), ErrItemNotFound)
}
