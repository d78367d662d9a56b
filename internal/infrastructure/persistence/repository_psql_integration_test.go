//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/Mumbi286/DukaYetu/internal/domain/carts"
	"github.com/Mumbi286/DukaYetu/internal/domain/products"
	"github.com/Mumbi286/DukaYetu/internal/domain/users"
	"github.com/Mumbi286/DukaYetu/internal/pkg/config"
	"github.com/Mumbi286/DukaYetu/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPsqlRepositories_UserProductCartFlow(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	user := CreateTestUser(t, ctx)

	duplicate := testutil.NewTestUser(t)
	duplicate.Email = user.Email
	assert.ErrorIs(t, ctx.UserRepo.Create(context.Background(), duplicate), users.ErrUserExists)

	product := CreateTestProduct(t, ctx, user.ID, "Kanga")

	item, err := ctx.CartRepo.AddOrIncrement(context.Background(), user.ID, product.ID, 2)
	require.NoError(t, err)
	item, err = ctx.CartRepo.AddOrIncrement(context.Background(), user.ID, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, item.Quantity)

	require.NoError(t, ctx.ProductRepo.DeleteByID(context.Background(), product.ID))

	_, err = ctx.CartRepo.GetByID(context.Background(), user.ID, item.ID)
	assert.ErrorIs(t, err, carts.ErrCartItemNotFound)

	_, err = ctx.ProductRepo.GetByID(context.Background(), product.ID)
	assert.ErrorIs(t, err, products.ErrProductNotFound)
}

func TestPsqlMigrate_Idempotent(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	require.NoError(t, Migrate(ctx.DB))
	assert.Empty(t, PendingTables(ctx.DB))
}
