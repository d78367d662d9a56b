//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/Mumbi286/DukaYetu/internal/domain/users"
	"github.com/Mumbi286/DukaYetu/internal/infrastructure/persistence/models"
	"github.com/Mumbi286/DukaYetu/internal/pkg/config"
	"github.com/Mumbi286/DukaYetu/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := testutil.NewTestUser(t)
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))
	assert.NotZero(t, user.ID)

	var stored models.UserModel
	require.NoError(t, ctx.DB.First(&stored, "id = ?", user.ID).Error)
	assert.Equal(t, user.Username, stored.Username)
	assert.Equal(t, user.Email, stored.Email)
}

func TestUserSqliteRepository_CreateDuplicate(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, ctx)

	duplicate := testutil.NewTestUser(t)
	duplicate.Username = user.Username

	err := ctx.UserRepo.Create(context.Background(), duplicate)
	assert.ErrorIs(t, err, users.ErrUserExists)
}

func TestUserSqliteRepository_CreateInvalid(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := testutil.NewTestUser(t)
	user.Email = "not-an-email"

	err := ctx.UserRepo.Create(context.Background(), user)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestUserSqliteRepository_GetByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, ctx)

	fetched, err := ctx.UserRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Username, fetched.Username)
	assert.True(t, fetched.IsActive)

	_, err = ctx.UserRepo.GetByID(context.Background(), user.ID+100)
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestUserSqliteRepository_GetByUsername(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, ctx)

	fetched, err := ctx.UserRepo.GetByUsername(context.Background(), user.Username)
	require.NoError(t, err)
	assert.Equal(t, user.ID, fetched.ID)

	_, err = ctx.UserRepo.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestUserSqliteRepository_ExistsByUsernameOrEmail(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, ctx)

	tests := []struct {
		name     string
		username string
		email    string
		expected bool
	}{
		{"same username", user.Username, "other@example.com", true},
		{"same email", "other", user.Email, true},
		{"neither", "other", "other@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exists, err := ctx.UserRepo.ExistsByUsernameOrEmail(context.Background(), tt.username, tt.email)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, exists)
		})
	}
}
